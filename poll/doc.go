// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package poll implements the "live" priority poll.

This is an engagement widget, not a ballot. Counts start from fixed seeds and
grow by 0-2 simulated votes per option whenever the site has not been visited
for longer than the configured gap (30s by default). Each device may cast one
real vote; the flag is stored under rahad_poll_voted:<device>.

Real votes are also counted in a separate tally so the admin view can show
honest numbers:

	p := poll.New(kv, cfg.PollActivityGap)
	view := p.Mount(ctx, deviceUUID, lang)
	view, err = p.Vote(ctx, deviceUUID, "edu", lang)
	real := p.Tally(ctx)
*/
package poll
