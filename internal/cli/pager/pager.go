package pager

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/yndnr/beagle-go/internal/beagle"
	"github.com/yndnr/beagle-go/internal/cli/connection"
	"github.com/yndnr/beagle-go/internal/cli/output"
	"github.com/yndnr/beagle-go/internal/cli/prompt"
	"github.com/yndnr/beagle-go/internal/cli/session"
)

// Pager pages through a listing after its first page has been rendered.
type Pager struct {
	Client    *connection.Client
	Store     *session.Store
	Prompt    *prompt.Reader
	Formatter output.Formatter
	Out       io.Writer
}

// Browse persists the cursors carried by the first page, then loops:
// offer a direction, fetch the chosen cursor URL, render the page,
// persist its cursors, repeat. The first page itself is not re-rendered.
func (p *Pager) Browse(ctx context.Context, first *connection.Result) error {
	if err := p.refresh(first); err != nil {
		return err
	}

	for {
		cursor, err := p.choose()
		if err != nil || cursor == "" {
			return err
		}

		res, err := p.Client.GetURL(ctx, cursor)
		if err != nil {
			return fmt.Errorf("pager: fetch page: %w", err)
		}
		if err := p.Formatter.Format(p.Out, res.Body); err != nil {
			return err
		}
		if err := p.refresh(res); err != nil {
			return err
		}
	}
}

// choose prompts for a direction based on which cursors remain and
// returns the selected cursor URL. An empty return ends the loop.
func (p *Pager) choose() (string, error) {
	rec := p.Store.Record()
	next, prev := rec.NextCursor, rec.PrevCursor

	switch {
	case next != "" && prev != "":
		answer, err := p.Prompt.Line("Another page (next, prev): ")
		if err != nil {
			return "", nil // end of input ends the loop
		}
		switch answer {
		case "next":
			return next, nil
		case "prev":
			return prev, nil
		}
		return "", nil

	case next != "":
		answer, err := p.Prompt.Line("Another page (next): ")
		if err != nil || answer != "next" {
			return "", nil
		}
		return next, nil

	case prev != "":
		// With only a previous page left, any non-empty answer takes it.
		answer, err := p.Prompt.Line("Another page (prev): ")
		if err != nil || answer == "" {
			return "", nil
		}
		return prev, nil
	}
	return "", nil
}

// refresh persists the cursors from a page response. A response that is
// not an envelope clears both cursors.
func (p *Pager) refresh(res *connection.Result) error {
	var env beagle.Envelope
	if err := json.Unmarshal(res.Body, &env); err != nil {
		return p.Store.SetCursors("", "")
	}
	next, prev := env.Cursors()
	return p.Store.SetCursors(next, prev)
}
