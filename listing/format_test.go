package listing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/drpriver/format-cards-xml/cards"
)

func TestRender(t *testing.T) {
	block := Render(cards.Card{
		Name:     "Grizzly Bears",
		Rarity:   "common",
		Colors:   "G",
		ManaCost: "{1}{G}",
		CMC:      2,
		Type:     "Creature — Bear",
		MainType: "Creature",
		PT:       "2/2",
		Text:     "",
	})
	assert.Equal(t, "Grizzly Bears {1}{G}\nCreature — Bear\nCommon\n2/2", block)
}

func TestRenderTitleWithoutManaCost(t *testing.T) {
	block := Render(cards.Card{Name: "Forest", MainType: "Land"})
	title := strings.Split(block, "\n")[0]
	assert.Equal(t, "Forest", title)
}

func TestRenderTypeLineAlwaysPresent(t *testing.T) {
	// The type line stays in the block even when it is empty
	block := Render(cards.Card{Name: "Forest", Rarity: "common"})
	assert.Equal(t, "Forest\n\nCommon", block)

	// and leading/trailing whitespace is trimmed
	block = Render(cards.Card{Name: "Shock", Type: "  Instant "})
	assert.Equal(t, "Shock\nInstant", block)
}

func TestRenderMultilineText(t *testing.T) {
	text := "Flying\nWhen Mulldrifter enters the battlefield, draw two cards.\nEvoke {2}{U}"
	block := Render(cards.Card{
		Name:     "Mulldrifter",
		ManaCost: "{4}{U}",
		Type:     "Creature — Elemental",
		Text:     text,
		PT:       "2/2",
	})
	assert.Equal(t, "Mulldrifter {4}{U}\nCreature — Elemental\n"+text+"\n2/2", block)
}

func TestTitleCase(t *testing.T) {
	assert.Equal(t, "Common", titleCase("common"))
	assert.Equal(t, "Mythic Rare", titleCase("mythic rare"))
	assert.Equal(t, "Rare", titleCase("rare"))
	assert.Equal(t, "", titleCase(""))
}
