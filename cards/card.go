// Package cards reads card records from an XML card database.
package cards

// Card is a single card record. Every field holds display-ready text as it
// appeared in the document; elements missing from the input come through as
// empty strings and CMC defaults to 0. A Card is never modified after the
// parser builds it.
type Card struct {
	// Name of the card
	Name string
	// Rarity is the lowercase rarity category ("common", "uncommon", …)
	Rarity string
	// Colors is the color identity, one letter per color (W, U, B, R, G)
	Colors string
	// ManaCost is the printed mana cost, e.g. "{1}{R}"
	ManaCost string
	// CMC is the converted mana cost, always >= 0
	CMC int
	// Type is the full type line
	Type string
	// MainType is the primary card category, e.g. "Land" or "Creature"
	MainType string
	// PT is the power/toughness, empty for non-creatures
	PT string
	// Text is the rules text
	Text string
}
