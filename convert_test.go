package formatcards

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

const testDocument = `<carddatabase>
  <cards>
    <card>
      <name>Shock</name>
      <set rarity="common">M20</set>
      <prop>
        <colors>R</colors>
        <manacost>{R}</manacost>
        <cmc>1</cmc>
        <type>Instant</type>
        <maintype>Instant</maintype>
      </prop>
      <text>Shock deals 2 damage to any target.</text>
    </card>
    <card>
      <name>Forest</name>
      <set rarity="common">M20</set>
      <prop>
        <maintype>Land</maintype>
      </prop>
    </card>
  </cards>
</carddatabase>`

const testListing = `=== Red ===

Shock {R}
Instant
Common
Shock deals 2 damage to any target.

=== Land ===

Forest

Common
`

func TestConvert(t *testing.T) {
	var written string

	count, err := Convert(
		func() ([]byte, error) {
			return []byte(testDocument), nil
		},
		func(listing string) error {
			written = listing
			return nil
		},
	)
	assert.Nil(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, testListing, written)
}

func TestConvertReadError(t *testing.T) {
	readErr := errors.New("no such file")
	writeCalled := false

	count, err := Convert(
		func() ([]byte, error) {
			return nil, readErr
		},
		func(listing string) error {
			writeCalled = true
			return nil
		},
	)
	assert.Equal(t, 0, count)
	assert.False(t, writeCalled)

	var inputErr *InputError
	assert.True(t, errors.As(err, &inputErr))
	assert.True(t, errors.Is(err, readErr))
}

func TestConvertParseError(t *testing.T) {
	writeCalled := false

	count, err := Convert(
		func() ([]byte, error) {
			return []byte("<cards><card></cards>"), nil
		},
		func(listing string) error {
			writeCalled = true
			return nil
		},
	)
	assert.Equal(t, 0, count)
	assert.False(t, writeCalled)

	var inputErr *InputError
	assert.True(t, errors.As(err, &inputErr))
}

func TestConvertWriteError(t *testing.T) {
	writeErr := errors.New("disk full")

	count, err := Convert(
		func() ([]byte, error) {
			return []byte(testDocument), nil
		},
		func(listing string) error {
			return writeErr
		},
	)
	assert.Equal(t, 0, count)

	var outputErr *OutputError
	assert.True(t, errors.As(err, &outputErr))
	assert.True(t, errors.Is(err, writeErr))
}

func TestFileReaderAndWriter(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "cards.xml")
	output := filepath.Join(dir, "cards.txt")

	err := os.WriteFile(input, []byte(testDocument), 0o644)
	assert.Nil(t, err)

	count, err := Convert(FileReader(input), FileWriter(output))
	assert.Nil(t, err)
	assert.Equal(t, 2, count)

	written, err := os.ReadFile(output)
	assert.Nil(t, err)
	assert.Equal(t, testListing, string(written))
}

func TestFileReaderMissingFile(t *testing.T) {
	_, err := FileReader(filepath.Join(t.TempDir(), "missing.xml"))()
	assert.Error(t, err)
}
