// Package item defines the catalog model for the strip: the items it shows
// and the section headers bound to them.
package item

import "strings"

// Item is one cell of the strip. Items are ordered by Position and identified
// by a stable string ID; the positioner and the stores never change them.
type Item struct {
	ID       string
	Title    string
	Section  string
	Position int
}

// Header is the payload drawn in the sticky header lane. A header binds to
// the item that starts its section; most items carry none.
type Header struct {
	Title string
}

// Slug derives a stable item ID from a section and title, e.g.
// ("Synthwave", "Night Drive") -> "synthwave/night-drive".
func Slug(section, title string) string {
	return slugPart(section) + "/" + slugPart(title)
}

func slugPart(s string) string {
	var b strings.Builder
	lastDash := true // trim leading dashes
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
