// Package formatcards turns a card XML document into a human-readable,
// sectioned text listing.
package formatcards

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/drpriver/format-cards-xml/cards"
	"github.com/drpriver/format-cards-xml/listing"
	"github.com/drpriver/format-cards-xml/log"
)

// ReadFunc supplies the raw input document.
type ReadFunc func() ([]byte, error)

// WriteFunc delivers the finished listing.
type WriteFunc func(listing string) error

// Convert runs the pipeline: read the document, parse its cards, build the
// listing and hand it to write. It returns the number of cards converted.
// Failures before the listing exists come back as *InputError and delivery
// failures as *OutputError; write is never called with a partial listing.
func Convert(read ReadFunc, write WriteFunc) (int, error) {
	data, err := read()
	if err != nil {
		return 0, &InputError{Err: err}
	}

	parsed, err := cards.Parse(bytes.NewReader(data))
	if err != nil {
		return 0, &InputError{Err: err}
	}

	log.Debugf("Converting %d card(s)", len(parsed))

	if err := write(listing.Build(parsed)); err != nil {
		return 0, &OutputError{Err: err}
	}

	return len(parsed), nil
}

// FileReader reads the document at path.
func FileReader(path string) ReadFunc {
	return func() ([]byte, error) {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, fmt.Errorf("file %s not found: %w", path, err)
		}
		return os.ReadFile(path)
	}
}

// StdinReader reads the document from standard input.
func StdinReader() ReadFunc {
	return func() ([]byte, error) {
		return io.ReadAll(os.Stdin)
	}
}

// FileWriter overwrites path with the listing.
func FileWriter(path string) WriteFunc {
	return func(listing string) error {
		return os.WriteFile(path, []byte(listing), 0o644)
	}
}

// ClipboardWriter places the listing on the system clipboard.
func ClipboardWriter() WriteFunc {
	return func(listing string) error {
		return clipboard.WriteAll(listing)
	}
}
