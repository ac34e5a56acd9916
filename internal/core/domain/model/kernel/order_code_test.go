package kernel_test

import (
	"strings"
	"testing"

	"garmenttrack/internal/core/domain/model/kernel"
	"garmenttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderCode(t *testing.T) {
	t.Run("should generate code in canonical format", func(t *testing.T) {
		code := kernel.NewOrderCode()

		require.NoError(t, code.Validate())
		assert.True(t, strings.HasPrefix(code.String(), "GT-"))
		assert.Len(t, code.String(), 11)
	})

	t.Run("should round-trip through parsing", func(t *testing.T) {
		code := kernel.NewOrderCode()

		parsed, err := kernel.OrderCodeFromString(code.String())

		require.NoError(t, err)
		assert.True(t, code.IsEqual(parsed))
	})

	t.Run("should not contain ambiguous characters", func(t *testing.T) {
		for range 50 {
			code := kernel.NewOrderCode()
			suffix := strings.TrimPrefix(code.String(), "GT-")

			assert.NotContains(t, suffix, "O")
			assert.NotContains(t, suffix, "I")
			assert.NotContains(t, suffix, "0")
			assert.NotContains(t, suffix, "1")
		}
	})
}

func TestOrderCodeFromString(t *testing.T) {
	t.Run("should parse valid code", func(t *testing.T) {
		code, err := kernel.OrderCodeFromString("GT-7KFQ2M9X")

		require.NoError(t, err)
		assert.Equal(t, "GT-7KFQ2M9X", code.String())
	})

	t.Run("should reject empty string", func(t *testing.T) {
		_, err := kernel.OrderCodeFromString("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject malformed codes", func(t *testing.T) {
		invalidCodes := []string{
			"7KFQ2M9X",     // missing prefix
			"GT-7KFQ2M",    // too short
			"GT-7KFQ2M9XZ", // too long
			"gt-7kfq2m9x",  // lowercase
			"GT-7KFQ2M0X",  // ambiguous character
			"XX-7KFQ2M9X",  // wrong prefix
		}

		for _, s := range invalidCodes {
			_, err := kernel.OrderCodeFromString(s)
			require.Error(t, err, "expected %q to be rejected", s)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})
}

func TestOrderCode_Validate(t *testing.T) {
	t.Run("should reject zero value", func(t *testing.T) {
		var code kernel.OrderCode

		err := code.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrOrderCodeIsNotConstructed, err)
	})
}
