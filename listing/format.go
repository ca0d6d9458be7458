package listing

import (
	"strings"
	"unicode"

	"github.com/drpriver/format-cards-xml/cards"
)

// Render produces the text block for a single card:
//
//	name and mana cost
//	type line
//	rarity
//	rules text
//	power/toughness
//
// Lines whose source field is empty are left out, except the type line,
// which is part of every block.
func Render(card cards.Card) string {
	lines := make([]string, 0, 5)

	title := card.Name
	if len(card.ManaCost) > 0 {
		title += " " + card.ManaCost
	}
	lines = append(lines, title)

	lines = append(lines, strings.TrimSpace(card.Type))

	if len(card.Rarity) > 0 {
		lines = append(lines, titleCase(card.Rarity))
	}

	if len(card.Text) > 0 {
		lines = append(lines, card.Text)
	}

	if len(card.PT) > 0 {
		lines = append(lines, card.PT)
	}

	return strings.Join(lines, "\n")
}

// titleCase capitalizes the first letter of every word.
func titleCase(s string) string {
	words := strings.Fields(s)

	for i, word := range words {
		a := []rune(word)
		a[0] = unicode.ToUpper(a[0])
		words[i] = string(a)
	}

	return strings.Join(words, " ")
}
