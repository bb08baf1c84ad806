package staging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSignerKind(t *testing.T) {
	t.Run("accepts the three defined kinds", func(t *testing.T) {
		kind, err := ParseSignerKind("coordinated")
		require.NoError(t, err)
		assert.Equal(t, KindCoordinated, kind)

		kind, err = ParseSignerKind("legacy")
		require.NoError(t, err)
		assert.Equal(t, KindLegacy, kind)

		kind, err = ParseSignerKind("direct")
		require.NoError(t, err)
		assert.Equal(t, KindDirect, kind)
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		kind, err := ParseSignerKind("  Coordinated ")
		require.NoError(t, err)
		assert.Equal(t, KindCoordinated, kind)

		kind, err = ParseSignerKind("LEGACY")
		require.NoError(t, err)
		assert.Equal(t, KindLegacy, kind)
	})

	t.Run("rejects unrecognized kinds", func(t *testing.T) {
		_, err := ParseSignerKind("hsm")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnsupportedSignerKind)
		assert.Contains(t, err.Error(), "hsm")
	})

	t.Run("rejects the empty string", func(t *testing.T) {
		_, err := ParseSignerKind("")
		assert.ErrorIs(t, err, ErrUnsupportedSignerKind)
	})
}

func TestSignerKindString(t *testing.T) {
	assert.Equal(t, "coordinated", KindCoordinated.String())
	assert.Equal(t, "legacy", KindLegacy.String())
	assert.Equal(t, "direct", KindDirect.String())
}
