// Package transcript renders and archives the immutable record of a closed
// ticket: its metadata, rating, and captured message history.
package transcript

import (
	"bytes"
	_ "embed"
	"fmt"
	"html/template"
	"sort"
	"time"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/shared/markdown"
)

// TimestampLayout is the fixed locale format used for every timestamp in a
// transcript: day/month/year, 12-hour clock with seconds and AM/PM marker.
const TimestampLayout = "2/01/2006, 03:04:05 PM"

//go:embed template.html
var templateHTML string

// Document is a rendered transcript ready for delivery.
type Document struct {
	FileName string
	Content  []byte
}

// Generator is a pure transformation from ticket state to a self-contained
// HTML document. No network or storage access.
type Generator struct {
	tmpl *template.Template
	md   markdown.Service
}

func NewGenerator(md markdown.Service) (*Generator, error) {
	tmpl, err := template.New("transcript").Parse(templateHTML)
	if err != nil {
		return nil, fmt.Errorf("failed to parse transcript template: %w", err)
	}
	return &Generator{tmpl: tmpl, md: md}, nil
}

type templateData struct {
	Title     string
	TicketID  string
	Requester string
	CreatedAt string
	ClosedAt  string
	Rate      string
	RateClass string
	Messages  []templateMessage
}

type templateMessage struct {
	AuthorName  string
	CreatedAt   string
	ContentHTML template.HTML
}

// Render produces the transcript document for a closed ticket. Messages are
// ordered by creation time ascending, stable on ties. Message bodies are
// markdown-rendered and sanitized before being embedded.
func (g *Generator) Render(t *ticket.Ticket, messages []*ticket.TranscriptMessage) (*Document, error) {
	if t == nil {
		return nil, fmt.Errorf("ticket is required")
	}

	ordered := make([]*ticket.TranscriptMessage, len(messages))
	copy(ordered, messages)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].CreatedAt().Before(ordered[j].CreatedAt())
	})

	data := templateData{
		Title:     fmt.Sprintf("Ticket history %s", t.TicketID()),
		TicketID:  t.TicketID(),
		Requester: t.RequesterLabel(),
		CreatedAt: formatTimestamp(t.CreatedAt()),
		Messages:  make([]templateMessage, 0, len(ordered)),
	}
	if t.ClosedAt() != nil {
		data.ClosedAt = formatTimestamp(*t.ClosedAt())
	}
	if t.Rating() != nil {
		data.Rate = t.Rating().Display()
		data.RateClass = t.Rating().String()
	}

	for _, m := range ordered {
		rendered, err := g.md.ToHTMLSanitized(m.Content())
		if err != nil {
			return nil, fmt.Errorf("failed to render message content: %w", err)
		}
		data.Messages = append(data.Messages, templateMessage{
			AuthorName:  m.AuthorName(),
			CreatedAt:   formatTimestamp(m.CreatedAt()),
			ContentHTML: template.HTML(rendered),
		})
	}

	var buf bytes.Buffer
	if err := g.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render transcript: %w", err)
	}

	return &Document{
		FileName: data.Title + ".html",
		Content:  buf.Bytes(),
	}, nil
}

func formatTimestamp(ts time.Time) string {
	return ts.Format(TimestampLayout)
}
