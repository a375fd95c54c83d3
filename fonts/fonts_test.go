package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults(16, 12, 24))

	assert.NotNil(t, Regular.Get())
	assert.NotNil(t, Small.Get())
	assert.Greater(t, Title.Get().Metrics().Height, Small.Get().Metrics().Height)
}

func TestLoadFontWithSize_RejectsGarbage(t *testing.T) {
	err := LoadFontWithSize("broken", []byte("not a font"), 12)
	assert.ErrorContains(t, err, "parse font broken")
}

func TestGet_UnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
