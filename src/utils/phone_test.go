package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	cases := map[string]string{
		"+1 (555) 010-2030": "+15550102030",
		"+15550102030":      "+15550102030",
		"":                  "",
		"   ":               "",
	}
	for raw, want := range cases {
		assert.Equal(t, want, NormalizePhone(raw), "input %q", raw)
	}
}

func TestNormalizePhoneSameNumberDifferentFormatting(t *testing.T) {
	a := NormalizePhone("+44 20 7946 0958")
	b := NormalizePhone("+442079460958")
	assert.Equal(t, a, b)
	assert.NotEmpty(t, a)
}

func TestNormalizePhoneUnparseableFallsBackToDigits(t *testing.T) {
	// not a valid number anywhere, keep digits so exact matching still
	// works on what the visitor typed
	assert.Equal(t, "12345", NormalizePhone("1-2-3-4-5"))
	assert.Equal(t, "+999123", NormalizePhone("+999 123"))
}
