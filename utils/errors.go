package utils

import "fmt"

// CustomError is used for errors that carry a specific HTTP status code.
type CustomError struct {
	StatusCode int    `json:"-"`
	Message    string `json:"message"`
}

func (e *CustomError) Error() string {
	return e.Message
}

// NewCustomError is a helper to build a CustomError
func NewCustomError(statusCode int, message string) *CustomError {
	return &CustomError{StatusCode: statusCode, Message: message}
}

// RequestError means an upstream menu endpoint answered with a non-2xx
// status. It is raised before any JSON parsing is attempted.
type RequestError struct {
	Endpoint   string
	StatusCode int
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request to %s failed with status %d", e.Endpoint, e.StatusCode)
}

func NewRequestError(endpoint string, statusCode int) *RequestError {
	return &RequestError{Endpoint: endpoint, StatusCode: statusCode}
}

// ValidationError means an upstream payload did not look like a list of menu
// records (not an array, or elements missing an id).
type ValidationError struct {
	Category string
	Endpoint string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid payload from %s for category %s: %v", e.Endpoint, e.Category, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidationError(category, endpoint string, err error) *ValidationError {
	return &ValidationError{Category: category, Endpoint: endpoint, Err: err}
}

// ConfigError means a category has no endpoints mapped to it. That is a
// static configuration bug and should be unreachable in a correct deployment.
type ConfigError struct {
	Category string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("no endpoints configured for category %s", e.Category)
}

func NewConfigError(category string) *ConfigError {
	return &ConfigError{Category: category}
}

// CategoryUnavailableError means every endpoint for a category failed or
// yielded zero usable items.
type CategoryUnavailableError struct {
	Category string
}

func (e *CategoryUnavailableError) Error() string {
	return fmt.Sprintf("no menu items available for category %s", e.Category)
}

func NewCategoryUnavailableError(category string) *CategoryUnavailableError {
	return &CategoryUnavailableError{Category: category}
}

// CatalogUnavailableError means every category failed: nothing to show at all.
type CatalogUnavailableError struct{}

func (e *CatalogUnavailableError) Error() string {
	return "menu catalog is unavailable"
}

func NewCatalogUnavailableError() *CatalogUnavailableError {
	return &CatalogUnavailableError{}
}
