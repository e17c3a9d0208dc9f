// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package admin

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/rahad-campaign/models"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

var labels = map[string]models.LocalizedString{
	"title":      {BN: "অ্যাডমিন ড্যাশবোর্ড", EN: "Admin Dashboard"},
	"volunteers": {BN: "স্বেচ্ছাসেবক", EN: "Volunteers"},
	"problems":   {BN: "সমস্যা", EN: "Problems"},
	"meetings":   {BN: "সভা", EN: "Meetings"},
	"poll":       {BN: "জরিপ (প্রকৃত ভোট)", EN: "Poll (real votes)"},
	"export":     {BN: "CSV ডাউনলোড", EN: "Download CSV"},
	"analyze":    {BN: "এআই বিশ্লেষণ", EN: "AI Analysis Summary"},
	"clear":      {BN: "সব ডেটা মুছুন", EN: "Clear all data"},
	"logout":     {BN: "লগআউট", EN: "Log out"},
	"empty":      {BN: "কোনো তথ্য নেই", EN: "No entries yet"},
	"total":      {BN: "মোট জমা", EN: "Total submissions"},
}

var dashboardTemplate = template.Must(
	template.New("dashboard.html").
		Funcs(template.FuncMap{
			"comma": func(n int) string { return humanize.Comma(int64(n)) },
		}).
		ParseFS(templateFS, "templates/dashboard.html"),
)

type dashboardData struct {
	View
	Labels map[string]string
}

// RenderDashboard writes the admin page for view.
func RenderDashboard(w io.Writer, view View) error {
	lang := models.Language(view.Language)
	data := dashboardData{View: view, Labels: make(map[string]string, len(labels))}
	for key, l := range labels {
		data.Labels[key] = l.In(lang)
	}
	if err := dashboardTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	return nil
}
