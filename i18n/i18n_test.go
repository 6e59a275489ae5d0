package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupported(t *testing.T) {
	assert.True(t, Supported("fr"))
	assert.True(t, Supported("en"))
	assert.False(t, Supported("de"))
	assert.False(t, Supported(""))
	assert.False(t, Supported("FR"))
}

func TestResolve(t *testing.T) {
	assert.Equal(t, French, Resolve("fr"))
	assert.Equal(t, English, Resolve("en"))
	assert.Equal(t, French, Resolve(""))
	assert.Equal(t, French, Resolve("es"))
}

func TestMessages(t *testing.T) {
	fr := Messages(French)
	en := Messages(English)

	require.NotEmpty(t, fr)
	assert.Equal(t, len(fr), len(en), "both bundles must carry the same keys")
	for key := range fr {
		_, ok := en[key]
		assert.True(t, ok, "key %q missing from the English bundle", key)
	}

	assert.Equal(t, fr, Messages(Locale("de")), "unknown locale gets the default bundle")
}
