package errs_test

import (
	"errors"
	"testing"

	"garmenttrack/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "123")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("orderId", "123", cause)

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: orderId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("email")

		assert.Equal(t, "email", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: email", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("email", cause)

		assert.Equal(t, "email", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: email (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", 3, 10, 10000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, 3, err.Value)
		assert.Equal(t, 10, err.Min)
		assert.Equal(t, 10000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 3 is quantity, min value is 10, max value is 10000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("location")

		assert.Equal(t, "location", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: location", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("location", cause)

		assert.Equal(t, "location", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: location (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestInvalidTransitionError(t *testing.T) {
	t.Run("NewInvalidTransitionError", func(t *testing.T) {
		err := errs.NewInvalidTransitionError("123", "Approved", "Cancelled")

		assert.Equal(t, "123", err.OrderID)
		assert.Equal(t, "Approved", err.From)
		assert.Equal(t, "Cancelled", err.To)
		require.NoError(t, err.Cause)
		assert.Equal(t, "invalid transition: order 123 cannot go from Approved to Cancelled", err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})

	t.Run("NewInvalidTransitionErrorWithCause", func(t *testing.T) {
		cause := errors.New("concurrent update")
		err := errs.NewInvalidTransitionErrorWithCause("123", "Pending", "Approved", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"invalid transition: order 123 cannot go from Pending to Approved (cause: concurrent update)",
			err.Error())
		assert.Equal(t, errs.ErrInvalidTransition, err.Unwrap())
	})
}

func TestInvalidOrderStateError(t *testing.T) {
	t.Run("NewInvalidOrderStateError", func(t *testing.T) {
		err := errs.NewInvalidOrderStateError("123", "Pending", "tracking update")

		assert.Equal(t, "123", err.OrderID)
		assert.Equal(t, "Pending", err.Status)
		assert.Equal(t, "tracking update", err.Operation)
		assert.Equal(t,
			"invalid order state: tracking update is not allowed while order 123 is Pending",
			err.Error())
		assert.Equal(t, errs.ErrInvalidOrderState, err.Unwrap())
	})
}

func TestInvalidCheckpointError(t *testing.T) {
	t.Run("NewInvalidCheckpointError", func(t *testing.T) {
		err := errs.NewInvalidCheckpointError("Pressed")

		assert.Equal(t, "Pressed", err.Value)
		assert.Equal(t, "invalid checkpoint: Pressed is not in the production sequence", err.Error())
		assert.Equal(t, errs.ErrInvalidCheckpoint, err.Unwrap())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrInvalidTransition)
		require.Error(t, errs.ErrInvalidOrderState)
		require.Error(t, errs.ErrInvalidCheckpoint)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "invalid transition", errs.ErrInvalidTransition.Error())
		assert.Equal(t, "invalid order state", errs.ErrInvalidOrderState.Error())
		assert.Equal(t, "invalid checkpoint", errs.ErrInvalidCheckpoint.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("email"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 3, 10, 10000), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("location"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewInvalidTransitionError("123", "Approved", "Cancelled"), errs.ErrInvalidTransition)
		require.ErrorIs(t, errs.NewInvalidOrderStateError("123", "Pending", "tracking update"), errs.ErrInvalidOrderState)
		require.ErrorIs(t, errs.NewInvalidCheckpointError("Pressed"), errs.ErrInvalidCheckpoint)
	})
}
