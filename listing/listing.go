// Package listing renders card records into a sectioned plain-text listing.
package listing

import (
	"strings"

	"github.com/drpriver/format-cards-xml/cards"
)

// Build produces the full listing: cards sorted into their color groups,
// each contiguous group introduced by a "=== Header ===" line, and every
// header and card block separated by one blank line. A non-empty listing
// ends with a newline; an empty card list yields an empty string.
func Build(in []cards.Card) string {
	if len(in) == 0 {
		return ""
	}

	sorted := Sort(in)

	parts := make([]string, 0, len(sorted)+1)
	lastHeader := ""

	for _, card := range sorted {
		if header := Header(card); header != lastHeader {
			parts = append(parts, "=== "+header+" ===")
			lastHeader = header
		}
		parts = append(parts, Render(card))
	}

	return strings.Join(parts, "\n\n") + "\n"
}
