package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "in revision"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// CalculationError reports a part or data set the engine could not evaluate.
type CalculationError struct {
	Subject string
	Reason  string
}

func (e *CalculationError) Error() string {
	return fmt.Sprintf("calculation failed for %s: %s", e.Subject, e.Reason)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// ConfigurationError represents configuration-related errors
type ConfigurationError struct {
	Message string
}

func (e *ConfigurationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrRevisionNotFound       = &NotFoundError{Entity: "revision"}
	ErrHardwareNotFound       = &NotFoundError{Entity: "hardware item"}
	ErrParentHardwareNotFound = &NotFoundError{Entity: "parent assembly"}
	ErrGrowthTestNotFound     = &NotFoundError{Entity: "growth test"}
	ErrGrowthRecordNotFound   = &NotFoundError{Entity: "growth record"}
	ErrDatasetNotFound        = &NotFoundError{Entity: "survival dataset"}
	ErrSurvivalRecordNotFound = &NotFoundError{Entity: "survival record"}
)

// Already Exists Errors
var (
	ErrRevisionExists   = &AlreadyExistsError{Entity: "revision", Context: "with this name"}
	ErrHardwareExists   = &AlreadyExistsError{Entity: "hardware item", Context: "with this reference designator in the revision"}
	ErrGrowthTestExists = &AlreadyExistsError{Entity: "growth test", Context: "with this name in the revision"}
	ErrDatasetExists    = &AlreadyExistsError{Entity: "survival dataset", Context: "with this name in the revision"}
)

// Prediction Errors
var (
	ErrUnknownCategory          = errors.New("unknown part category")
	ErrUnknownSubcategory       = errors.New("unknown part subcategory")
	ErrUnknownQuality           = errors.New("unknown quality level")
	ErrEnvironmentNotApplicable = errors.New("environment not applicable to this part type")
	ErrUnknownMethod            = errors.New("unknown prediction method")
	ErrAssemblyCycle            = errors.New("hardware tree contains a cycle")
	ErrParentNotAssembly        = errors.New("parent hardware item is not an assembly")
)

// Statistics Errors
var (
	ErrInsufficientData        = errors.New("insufficient data for fit")
	ErrNonConvergence          = errors.New("iterative estimate did not converge")
	ErrUnknownDistribution     = errors.New("unknown distribution")
	ErrInvalidConfidence       = errors.New("confidence level must be between 0 and 1")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
)

// Authentication Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "authorization header is required"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid token"}
)

// Configuration Errors
var (
	ErrDefaultJWTSecret  = &ConfigurationError{Message: "JWT_SECRET must be set in production"}
	ErrDatabaseNameEmpty = &ConfigurationError{Message: "database name is required"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsCalculation checks if an error is a CalculationError or a prediction input error
func IsCalculation(err error) bool {
	var calcErr *CalculationError
	if errors.As(err, &calcErr) {
		return true
	}
	for _, sentinel := range []error{
		ErrUnknownCategory,
		ErrUnknownSubcategory,
		ErrUnknownQuality,
		ErrEnvironmentNotApplicable,
		ErrUnknownMethod,
		ErrAssemblyCycle,
		ErrParentNotAssembly,
		ErrInsufficientData,
		ErrNonConvergence,
		ErrUnknownDistribution,
		ErrInvalidConfidence,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var configErr *ConfigurationError
	return errors.As(err, &configErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewCalculationError creates a new CalculationError
func NewCalculationError(subject, reason string) error {
	return &CalculationError{Subject: subject, Reason: reason}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewConfigurationError creates a new ConfigurationError
func NewConfigurationError(message string) error {
	return &ConfigurationError{Message: message}
}
