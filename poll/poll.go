// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package poll

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"math/rand/v2"
	"strconv"
	"sync"
	"time"

	"github.com/danielhkuo/rahad-campaign/i18n"
	"github.com/danielhkuo/rahad-campaign/models"
	"github.com/danielhkuo/rahad-campaign/storage"
)

var (
	ErrNoDevice      = errors.New("device id required")
	ErrUnknownOption = errors.New("unknown poll option")
	ErrAlreadyVoted  = errors.New("device has already voted")
)

// maxSimulatedVotes bounds the per-option growth added on a visit (exclusive)
const maxSimulatedVotes = 3

// DefaultOptions returns the seed options and their starting counts.
func DefaultOptions() []models.PollOption {
	return []models.PollOption{
		{ID: "edu", Label: models.LocalizedString{BN: "মানসম্মত শিক্ষা", EN: "Quality Education"}, Votes: 450},
		{ID: "job", Label: models.LocalizedString{BN: "আইটি ও কর্মসংস্থান", EN: "IT & Employment"}, Votes: 580},
		{ID: "road", Label: models.LocalizedString{BN: "উন্নত রাস্তাঘাট", EN: "Better Roads"}, Votes: 320},
		{ID: "health", Label: models.LocalizedString{BN: "স্বাস্থ্যসেবা উন্নয়ন", EN: "Healthcare Expansion"}, Votes: 290},
	}
}

// Poll is the "top priority" widget.
//
// Displayed counts (rahad_poll_data) mix seed counts, simulated activity and
// real votes. Real votes are also kept on their own in rahad_poll_tally.
type Poll struct {
	mu  sync.Mutex
	kv  storage.KV
	gap time.Duration

	now  func() time.Time
	intN func(n int) int
}

func New(kv storage.KV, gap time.Duration) *Poll {
	return &Poll{
		kv:   kv,
		gap:  gap,
		now:  time.Now,
		intN: rand.IntN,
	}
}

// Mount loads the poll for a visit. When nothing is stored yet, or the last
// visit is older than the gap, every option grows by 0-2 simulated votes.
func (p *Poll) Mount(ctx context.Context, device string, lang models.Language) models.PollView {
	p.mu.Lock()
	defer p.mu.Unlock()

	options, seeded := p.loadOptions(ctx)
	now := p.now()

	if seeded || now.Sub(p.lastVisit(ctx, now)) > p.gap {
		for i := range options {
			options[i].Votes += p.intN(maxSimulatedVotes)
		}
	}

	storage.Save(ctx, p.kv, storage.KeyPollData, options)
	if err := p.kv.Set(ctx, storage.KeyLastVisit, strconv.FormatInt(now.UnixMilli(), 10)); err != nil {
		slog.Warn("failed to store poll last visit", "error", err)
	}

	return p.view(options, p.hasVoted(ctx, device), lang)
}

// Vote records one real vote for optionID. A device votes once; a second
// attempt returns ErrAlreadyVoted and changes nothing.
func (p *Poll) Vote(ctx context.Context, device, optionID string, lang models.Language) (models.PollView, error) {
	if device == "" {
		return models.PollView{}, ErrNoDevice
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	options, _ := p.loadOptions(ctx)

	if p.hasVoted(ctx, device) {
		return p.view(options, true, lang), ErrAlreadyVoted
	}

	idx := -1
	for i, opt := range options {
		if opt.ID == optionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return p.view(options, false, lang), ErrUnknownOption
	}

	options[idx].Votes++
	tally := p.loadTally(ctx)
	tally[optionID]++

	storage.Save(ctx, p.kv, storage.KeyPollData, options)
	storage.SaveValue(ctx, p.kv, storage.KeyPollTally, tally)
	if err := p.kv.Set(ctx, votedKey(device), "true"); err != nil {
		slog.Warn("failed to store poll vote flag", "error", err)
	}

	slog.Info("poll vote recorded", "option_id", optionID)

	return p.view(options, true, lang), nil
}

// Tally returns the real votes per option, without seeds or simulated growth.
func (p *Poll) Tally(ctx context.Context) map[string]int {
	p.mu.Lock()
	defer p.mu.Unlock()

	tally := p.loadTally(ctx)
	for _, opt := range DefaultOptions() {
		if _, ok := tally[opt.ID]; !ok {
			tally[opt.ID] = 0
		}
	}
	return tally
}

func (p *Poll) HasVoted(ctx context.Context, device string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasVoted(ctx, device)
}

func (p *Poll) loadOptions(ctx context.Context) ([]models.PollOption, bool) {
	options := storage.Load[models.PollOption](ctx, p.kv, storage.KeyPollData)
	if len(options) == 0 {
		return DefaultOptions(), true
	}
	return options, false
}

func (p *Poll) loadTally(ctx context.Context) map[string]int {
	tally := make(map[string]int)
	if !storage.LoadValue(ctx, p.kv, storage.KeyPollTally, &tally) || tally == nil {
		return make(map[string]int)
	}
	return tally
}

// lastVisit returns now when no usable timestamp is stored.
func (p *Poll) lastVisit(ctx context.Context, now time.Time) time.Time {
	raw, ok, err := p.kv.Get(ctx, storage.KeyLastVisit)
	if err != nil || !ok {
		return now
	}
	ms, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return now
	}
	return time.UnixMilli(ms)
}

func (p *Poll) hasVoted(ctx context.Context, device string) bool {
	if device == "" {
		return false
	}
	_, ok, err := p.kv.Get(ctx, votedKey(device))
	if err != nil {
		slog.Warn("failed to read poll vote flag", "error", err)
		return false
	}
	return ok
}

func votedKey(device string) string {
	return storage.KeyVotedPrefix + device
}

// Counts and percentages are only revealed after voting.
func (p *Poll) view(options []models.PollOption, voted bool, lang models.Language) models.PollView {
	total := 0
	for _, opt := range options {
		total += opt.Votes
	}

	view := models.PollView{
		Question:            i18n.T(i18n.PollQuestion, lang),
		Options:             make([]models.PollOptionView, 0, len(options)),
		Voted:               voted,
		LastActivityMinutes: p.intN(5) + 1,
	}

	for _, opt := range options {
		ov := models.PollOptionView{ID: opt.ID, Label: opt.Label.In(lang)}
		if voted {
			votes := opt.Votes
			pct := Percentage(opt.Votes, total)
			ov.Votes = &votes
			ov.Percentage = &pct
		}
		view.Options = append(view.Options, ov)
	}
	if voted {
		view.TotalVotes = &total
	}

	return view
}

// Percentage rounds votes/total to the nearest whole percent.
func Percentage(votes, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(votes) / float64(total) * 100))
}
