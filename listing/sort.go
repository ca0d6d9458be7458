package listing

import (
	"sort"
	"strings"

	"github.com/drpriver/format-cards-xml/cards"
)

// Color group buckets, in listing order.
const (
	groupMono = iota
	groupMulticolor
	groupColorless
	groupLand
)

const landType = "Land"

// colorOrder fixes both the order of mono-colored cards in the listing and
// the display name used for their section headers. The W, U, B, R, G
// sequence is the canonical one; don't reorder.
var colorOrder = []struct {
	Code rune
	Name string
}{
	{'W', "White"},
	{'U', "Blue"},
	{'B', "Black"},
	{'R', "Red"},
	{'G', "Green"},
}

// rarityOrder fixes the order of rarities within a color group. Rarities
// not listed here sort after every listed one.
var rarityOrder = []string{"common", "uncommon", "rare", "mythic"}

type sortKey struct {
	group  int
	color  int
	rarity int
	name   string
}

func (k sortKey) less(other sortKey) bool {
	if k.group != other.group {
		return k.group < other.group
	}
	if k.color != other.color {
		return k.color < other.color
	}
	if k.rarity != other.rarity {
		return k.rarity < other.rarity
	}
	return k.name < other.name
}

func keyOf(card cards.Card) sortKey {
	group, color := colorGroup(card)

	return sortKey{
		group:  group,
		color:  color,
		rarity: rarityRank(card.Rarity),
		name:   card.Name,
	}
}

// colorGroup returns the primary bucket of a card and, for mono-colored
// cards, the index of the color in colorOrder. The land check comes first:
// a land stays a land no matter what its colors field says.
func colorGroup(card cards.Card) (group, color int) {
	if card.MainType == landType {
		return groupLand, 0
	}

	codes := []rune(card.Colors)

	if len(codes) == 1 {
		for i, c := range colorOrder {
			if codes[0] == c.Code {
				return groupMono, i
			}
		}
		// A single unrecognized code is not one of the five colors, so the
		// card is treated as colorless.
		return groupColorless, 0
	}

	if len(codes) > 1 {
		return groupMulticolor, 0
	}

	return groupColorless, 0
}

func rarityRank(rarity string) int {
	lower := strings.ToLower(rarity)

	for i, r := range rarityOrder {
		if lower == r {
			return i
		}
	}

	return len(rarityOrder)
}

// Header returns the section label a card is listed under: "Land" for
// lands, the color name for mono-colored cards, "Multicolor" or
// "Colorless" otherwise.
func Header(card cards.Card) string {
	if card.MainType == landType {
		return landType
	}

	codes := []rune(card.Colors)

	if len(codes) == 1 {
		for _, c := range colorOrder {
			if codes[0] == c.Code {
				return c.Name
			}
		}
	}

	if len(codes) > 1 {
		return "Multicolor"
	}

	return "Colorless"
}

// Sort orders cards by color group (mono-colored in W, U, B, R, G order,
// then multicolor, colorless and lands), rarity and name. It returns a new
// slice and leaves its input untouched.
func Sort(in []cards.Card) []cards.Card {
	sorted := make([]cards.Card, len(in))
	copy(sorted, in)

	sort.SliceStable(sorted, func(i, j int) bool {
		return keyOf(sorted[i]).less(keyOf(sorted[j]))
	})

	return sorted
}
