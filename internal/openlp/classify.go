package openlp

import "regexp"

// chapterVerse matches "[chapter:]verse[letter][-verse[letter]]". The chapter
// is optional because some books have none.
const chapterVerse = `(?:[1-9][0-9]*:)?[1-9][0-9]*[a-z]?(?:-[1-9][0-9]*[a-z]?)?`

var referencePattern = regexp.MustCompile(
	`^[A-Za-z0-9 ]+ ` + chapterVerse + `(?:, ` + chapterVerse + `)*(?: [A-Z]{3,})?`,
)

// ParseReference returns the Bible reference at the start of title, such as
// "John 3:16 NIV", or "" when title does not start with one.
func ParseReference(title string) string {
	return referencePattern.FindString(title)
}

// Classify derives the footer of a freshly fetched item from its plugin and
// title. Items from plugins other than bibles, custom and songs lose their
// slides so they never reach the overlay.
func Classify(item Item) Item {
	item.Footer = ""
	switch item.Plugin {
	case PluginCustom, PluginBibles:
		// Custom slides are often used to reformat a passage.
		item.Footer = ParseReference(item.Title)
	case PluginSongs:
		item.Footer = item.Title
	default:
		item.Slides = nil
	}
	return item
}
