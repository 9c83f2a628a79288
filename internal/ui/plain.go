package ui

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/five82/roster/internal/source"
	"github.com/five82/roster/internal/state"
)

const directoryTitle = "User Profile Directory"

// Format selects the non-interactive rendering.
type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// ParseFormat validates an --output value. Blank means text.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(FormatText):
		return FormatText, nil
	case string(FormatJSON):
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (want text or json)", s)
	}
}

// PlainOptions control WritePlain.
type PlainOptions struct {
	Format Format
	Expand bool // show secondary fields on every card
}

// WritePlain renders the visible cards of a Ready view without a terminal UI.
func WritePlain(w io.Writer, v state.View, opts PlainOptions) error {
	records := v.Visible()
	if opts.Format == FormatJSON {
		if records == nil {
			records = []source.Person{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(records); err != nil {
			return fmt.Errorf("encode records: %w", err)
		}
		return nil
	}

	var b strings.Builder
	b.WriteString(directoryTitle)
	b.WriteString("\n")
	if v.Query != "" {
		fmt.Fprintf(&b, "Search: %s\n", v.Query)
	}
	for _, p := range records {
		b.WriteString("\n")
		b.WriteString(cardHeading(p))
		b.WriteString("\n")
		lines := primaryLines(p)
		if opts.Expand || v.IsExpanded(p.ID) {
			lines = append(lines, detailLines(p)...)
		}
		for _, line := range lines {
			b.WriteString("   ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(footerSummary(len(records), len(v.Records)))
	b.WriteString("\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

func footerSummary(shown, total int) string {
	return fmt.Sprintf("Showing %d of %d", shown, total)
}
