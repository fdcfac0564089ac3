package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "revision"}
		assert.Equal(t, "revision not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "revision"}
		err2 := &NotFoundError{Entity: "revision"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "revision"}
		err2 := &NotFoundError{Entity: "hardware item"}
		assert.False(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is with predefined errors", func(t *testing.T) {
		assert.True(t, errors.Is(ErrRevisionNotFound, ErrRevisionNotFound))
		assert.False(t, errors.Is(ErrRevisionNotFound, ErrHardwareNotFound))
	})

	t.Run("errors.Is through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("failed to get growth test: %w", ErrGrowthTestNotFound)
		assert.True(t, errors.Is(wrapped, ErrGrowthTestNotFound))
		assert.True(t, IsNotFound(wrapped))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrDatasetNotFound))
		assert.False(t, IsNotFound(ErrRevisionExists))
	})
}

func TestAlreadyExistsError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "hardware item", Context: "in the revision"}
		assert.Equal(t, "hardware item already exists in the revision", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &AlreadyExistsError{Entity: "revision"}
		assert.Equal(t, "revision already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		err1 := &AlreadyExistsError{Entity: "revision", Context: "a"}
		err2 := &AlreadyExistsError{Entity: "revision", Context: "b"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("IsAlreadyExists helper", func(t *testing.T) {
		assert.True(t, IsAlreadyExists(ErrHardwareExists))
		assert.False(t, IsAlreadyExists(ErrHardwareNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "voltage_rated", Message: "attribute is required"}
		assert.Equal(t, "validation error: voltage_rated - attribute is required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "invalid format"}
		assert.Equal(t, "validation error: invalid format", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		err := NewValidationError("quantity", "must be at least 1")
		assert.True(t, IsValidation(err))
		assert.False(t, IsValidation(ErrRevisionNotFound))
	})
}

func TestCalculationError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := NewCalculationError("resistor/film", "model produced a non-finite hazard rate")
		assert.Equal(t, "calculation failed for resistor/film: model produced a non-finite hazard rate", err.Error())
	})

	t.Run("IsCalculation helper", func(t *testing.T) {
		assert.True(t, IsCalculation(NewCalculationError("x", "y")))
		assert.True(t, IsCalculation(fmt.Errorf("%w: capacitor/\"foo\"", ErrUnknownSubcategory)))
		assert.True(t, IsCalculation(ErrEnvironmentNotApplicable))
		assert.True(t, IsCalculation(ErrNonConvergence))
		assert.True(t, IsCalculation(ErrAssemblyCycle))
		assert.False(t, IsCalculation(ErrRevisionNotFound))
		assert.False(t, IsCalculation(errors.New("database is down")))
	})
}

func TestAuthenticationAndConfigurationErrors(t *testing.T) {
	t.Run("IsAuthentication helper", func(t *testing.T) {
		assert.True(t, IsAuthentication(ErrMissingToken))
		assert.True(t, IsAuthentication(NewAuthenticationError("expired")))
		assert.False(t, IsAuthentication(ErrDefaultJWTSecret))
	})

	t.Run("IsConfiguration helper", func(t *testing.T) {
		assert.True(t, IsConfiguration(ErrDatabaseNameEmpty))
		assert.Equal(t, "database name is required", ErrDatabaseNameEmpty.Error())
		assert.False(t, IsConfiguration(ErrInvalidToken))
	})
}

func TestHelperFunctions(t *testing.T) {
	t.Run("NewNotFoundError", func(t *testing.T) {
		err := NewNotFoundError("custom entity")
		assert.Equal(t, "custom entity not found", err.Error())
		assert.True(t, IsNotFound(err))
	})

	t.Run("NewAlreadyExistsError", func(t *testing.T) {
		err := NewAlreadyExistsError("custom", "in scope")
		assert.Equal(t, "custom already exists in scope", err.Error())
		assert.True(t, IsAlreadyExists(err))
	})

	t.Run("NewConfigurationError", func(t *testing.T) {
		err := NewConfigurationError("bad")
		assert.True(t, IsConfiguration(err))
	})
}
