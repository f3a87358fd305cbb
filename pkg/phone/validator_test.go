package phone

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("Success - US number without prefix", func(t *testing.T) {
		result, err := Normalize("(212) 555-0123", "US")

		require.NoError(t, err)
		assert.Equal(t, "+12125550123", result.E164)
		assert.Equal(t, "US", result.CountryCode)
	})

	t.Run("Success - E.164 input preserved", func(t *testing.T) {
		result, err := Normalize("+442071838750", "US")

		require.NoError(t, err)
		assert.Equal(t, "+442071838750", result.E164)
		assert.Equal(t, "GB", result.CountryCode)
	})

	t.Run("Success - default region falls back to US", func(t *testing.T) {
		result, err := Normalize("2125550123", "")

		require.NoError(t, err)
		assert.Equal(t, "+12125550123", result.E164)
	})

	t.Run("Error - empty number", func(t *testing.T) {
		result, err := Normalize("", "US")

		assert.Error(t, err)
		assert.Nil(t, result)
	})

	t.Run("Error - unparseable input", func(t *testing.T) {
		result, err := Normalize("not-a-number", "US")

		assert.Error(t, err)
		assert.Nil(t, result)
	})
}

func TestIsUSNumber(t *testing.T) {
	assert.True(t, IsUSNumber("+12125550123"))
	assert.False(t, IsUSNumber("+447911123456"))
	assert.False(t, IsUSNumber("garbage"))
}
