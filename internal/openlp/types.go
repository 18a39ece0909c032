package openlp

import "slices"

// Plugin names reported by OpenLP for service items.
const (
	PluginBibles = "bibles"
	PluginCustom = "custom"
	PluginSongs  = "songs"
)

// Slide is one unit of displayable text within an item.
type Slide struct {
	Text string `json:"text"`
}

// Item is the thing currently being presented. The zero value is the empty
// item and means nothing is displayed.
type Item struct {
	ID     string
	Plugin string
	Title  string
	Notes  string
	Footer string
	Slides []Slide
}

// IsEmpty reports whether the item is the canonical empty item.
func (i Item) IsEmpty() bool {
	return i.ID == ""
}

// Poll mirrors the results of /api/poll. Absent keys decode to zero values.
type Poll struct {
	Item    string `json:"item"`
	Slide   int    `json:"slide"`
	Display bool   `json:"display"`
	Blank   bool   `json:"blank"`
	Theme   bool   `json:"theme"`
}

// BlankStatus describes how the remote output is suppressed, or returns ""
// when the live item is visible.
func (p Poll) BlankStatus() string {
	switch {
	case p.Display:
		return "showing desktop"
	case p.Blank:
		return "blacked out"
	case p.Theme:
		return "blanked to theme"
	default:
		return ""
	}
}

// LiveText mirrors the results of /api/controller/live/text.
type LiveText struct {
	Item   string  `json:"item"`
	Slides []Slide `json:"slides"`
}

// ServiceList mirrors the results of /api/service/list.
type ServiceList struct {
	Items []ServiceItem `json:"items"`
}

// ServiceItem is one entry of the service list.
type ServiceItem struct {
	ID     string `json:"id"`
	Plugin string `json:"plugin"`
	Title  string `json:"title"`
	Notes  string `json:"notes"`
}

func (s ServiceItem) withSlides(slides []Slide) Item {
	return Item{
		ID:     s.ID,
		Plugin: s.Plugin,
		Title:  s.Title,
		Notes:  s.Notes,
		Slides: slices.Clone(slides),
	}
}
