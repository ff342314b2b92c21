package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseProductInput_Success(t *testing.T) {
	in, err := ParseProductInput("Widget | 1500 | blue")
	assert.NoError(t, err)
	assert.Equal(t, "Widget", in.Name)
	assert.Equal(t, int64(1500), in.Price)
	assert.Equal(t, "blue", in.Description)
}

func TestParseProductInput_NoDescription(t *testing.T) {
	in, err := ParseProductInput("Widget | 1500")
	assert.NoError(t, err)
	assert.Equal(t, "Widget", in.Name)
	assert.Equal(t, int64(1500), in.Price)
	assert.Equal(t, "", in.Description)
}

func TestParseProductInput_BadPrice(t *testing.T) {
	_, err := ParseProductInput("Widget | abc")
	assert.ErrorIs(t, err, ErrPrice)
}

func TestParseProductInput_MissingParts(t *testing.T) {
	_, err := ParseProductInput("Widget")
	assert.ErrorIs(t, err, ErrFormat)

	_, err = ParseProductInput("a | b | c | d")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParseProductInput_EmptyName(t *testing.T) {
	_, err := ParseProductInput("  | 1500 | x")
	assert.ErrorIs(t, err, ErrFormat)
}

func TestParsePrice_Separators(t *testing.T) {
	cases := map[string]int64{
		"1500":      1500,
		" 1,500 ":   1500,
		"1٬500":     1500,
		"1 500":     1500,
		"1_500_000": 1500000,
	}
	for raw, want := range cases {
		got, err := ParsePrice(raw)
		assert.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
}

func TestParsePrice_ArabicDigits(t *testing.T) {
	got, err := ParsePrice("١٥٠٠")
	assert.NoError(t, err)
	assert.Equal(t, int64(1500), got)

	got, err = ParsePrice("۲۵")
	assert.NoError(t, err)
	assert.Equal(t, int64(25), got)
}

func TestParsePrice_Invalid(t *testing.T) {
	for _, raw := range []string{"abc", "", "  ", "12a", "-5", "1.5"} {
		_, err := ParsePrice(raw)
		assert.ErrorIs(t, err, ErrPrice, raw)
	}
}
