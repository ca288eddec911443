package country

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveFallbackOrder(t *testing.T) {
	sel := Resolve(map[string]string{
		"ISO_A2": "DE",
		"iso_a2": "FR",
		"ADMIN":  "Germany",
		"name":   "Deutschland",
	})
	assert.Equal(t, "DE", sel.Code)
	assert.Equal(t, "Germany", sel.Name)

	// Primary key empty, fallback takes over.
	sel = Resolve(map[string]string{
		"ISO_A2": "",
		"iso_a2": "fr",
		"NAME":   "France",
	})
	assert.Equal(t, "fr", sel.Code)
	assert.Equal(t, "France", sel.Name)
}

func TestResolveMissingKeys(t *testing.T) {
	sel := Resolve(map[string]string{"population": "83000000"})
	assert.Equal(t, "", sel.Code)
	assert.Equal(t, UnnamedPlaceholder, sel.Name)

	sel = Resolve(nil)
	assert.Equal(t, "", sel.Code)
	assert.Equal(t, UnnamedPlaceholder, sel.Name)
}

func TestFlagEmoji(t *testing.T) {
	assert.Equal(t, "\U0001F1FA\U0001F1F8", FlagEmoji("US"))
	assert.Equal(t, "\U0001F1E9\U0001F1EA", FlagEmoji("de"))
	assert.Equal(t, "", FlagEmoji(""))
	assert.Equal(t, "", FlagEmoji("USA"))
	assert.Equal(t, "", FlagEmoji("U"))
	assert.Equal(t, "", FlagEmoji("1A"))
}
