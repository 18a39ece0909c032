// Package statusline derives the one-line console summary of the link.
package statusline

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/five82/openlplink/internal/openlp"
)

const (
	titleLimit = 30
	untitled   = "untitled item"
)

// Input is everything the status line reflects.
type Input struct {
	Item        openlp.Item
	Slide       int
	BlankStatus string
	Enabled     bool
	Network     string
	IO          string
}

// Build renders the status line, e.g.
// "Amazing Grace slide 2/4 (blacked out!) (disabled!)".
func Build(in Input) string {
	var b strings.Builder
	b.WriteString(title(in.Item))

	switch n := len(in.Item.Slides); {
	case n > 1:
		position := "-"
		if in.Slide >= 0 && in.Slide < n {
			position = strconv.Itoa(in.Slide + 1)
		}
		fmt.Fprintf(&b, " slide %s/%d", position, n)
	case n == 0:
		b.WriteString(" (no overlay)")
	}

	disabled := ""
	if !in.Enabled {
		disabled = "disabled"
	}
	for _, tag := range []string{in.BlankStatus, disabled, in.Network, in.IO} {
		if tag != "" {
			fmt.Fprintf(&b, " (%s!)", tag)
		}
	}
	return b.String()
}

func title(item openlp.Item) string {
	switch {
	case item.Footer != "":
		return truncate(item.Footer, titleLimit)
	case item.Title != "":
		return truncate(item.Title, titleLimit)
	default:
		return untitled
	}
}

// truncate cuts value to at most limit runes.
func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit])
}
