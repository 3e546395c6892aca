package symbol

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestLookupKnownSource(t *testing.T) {
	assert.Equal(t, "🌐", Lookup("Reuters"))
	assert.Equal(t, "💻", Lookup("TechCrunch"))
	assert.Equal(t, "▼", Lookup("The Verge"))
}

func TestLookupIsTotal(t *testing.T) {
	assert.Equal(t, DefaultSymbol, Lookup("Some Local Paper"))
	assert.Equal(t, DefaultSymbol, Lookup(""))
	// Lookup is exact-match: close names do not resolve.
	assert.Equal(t, DefaultSymbol, Lookup("reuters"))
}
