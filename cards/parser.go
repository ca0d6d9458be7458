package cards

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"

	"github.com/drpriver/format-cards-xml/log"
)

// Parse reads an XML document and returns every card element found in it,
// in document order. Optional sub-elements that are missing become empty
// fields rather than errors; only a malformed document fails.
func Parse(r io.Reader) ([]Card, error) {
	doc, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse the card document: %w", err)
	}

	var parsed []Card

	for _, node := range xmlquery.Find(doc, "//card") {
		parsed = append(parsed, cardFromNode(node))
	}

	log.Debugf("Found %d card(s)", len(parsed))

	return parsed, nil
}

// ParseFile reads the card document at path.
func ParseFile(path string) ([]Card, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("file %s not found: %w", path, err)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		cerr := file.Close()
		if cerr != nil {
			log.Error(cerr)
		}
	}()

	return Parse(file)
}

func cardFromNode(node *xmlquery.Node) Card {
	card := Card{
		Name: childText(node, "name"),
		Text: childText(node, "text"),
	}

	if set := node.SelectElement("set"); set != nil {
		card.Rarity = set.SelectAttr("rarity")
	}

	prop := node.SelectElement("prop")
	if prop == nil {
		return card
	}

	card.Colors = childText(prop, "colors")
	card.ManaCost = childText(prop, "manacost")
	card.Type = childText(prop, "type")
	card.MainType = childText(prop, "maintype")
	card.PT = childText(prop, "pt")
	card.CMC = parseCMC(childText(prop, "cmc"), card.Name)

	return card
}

func childText(node *xmlquery.Node, name string) string {
	child := node.SelectElement(name)
	if child == nil {
		return ""
	}

	return child.InnerText()
}

// parseCMC converts the cmc element text to a non-negative integer. Card
// databases contain non-numeric costs ("X", "*"), so anything that doesn't
// parse becomes 0 instead of failing the whole document.
func parseCMC(text, cardName string) int {
	text = strings.TrimSpace(text)
	if len(text) == 0 {
		return 0
	}

	cmc, err := strconv.Atoi(text)
	if err != nil || cmc < 0 {
		log.Debugw(
			"Unparseable converted mana cost, defaulting to 0",
			"cmc", text,
			"card", cardName,
		)
		return 0
	}

	return cmc
}
