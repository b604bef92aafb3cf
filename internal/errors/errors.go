package errors

import "fmt"

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeNotFound indicates the requested key was not found
	ErrorTypeNotFound ErrorType = "NOT_FOUND"
	// ErrorTypeInvalidInput indicates invalid input parameters
	ErrorTypeInvalidInput ErrorType = "INVALID_INPUT"
	// ErrorTypeStorage indicates a storage-related error
	ErrorTypeStorage ErrorType = "STORAGE"
)

// KVError represents a custom error with additional context
type KVError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *KVError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Err.Error())
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the wrapped error
func (e *KVError) Unwrap() error {
	return e.Err
}

// New creates a new KVError
func New(errType ErrorType, message string, err error) *KVError {
	return &KVError{
		Type:    errType,
		Message: message,
		Err:     err,
	}
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	if kvErr, ok := err.(*KVError); ok {
		return kvErr.Type == ErrorTypeNotFound
	}
	return false
}

// IsInvalidInput checks if the error is an invalid input error
func IsInvalidInput(err error) bool {
	if kvErr, ok := err.(*KVError); ok {
		return kvErr.Type == ErrorTypeInvalidInput
	}
	return false
}

// IsStorage checks if the error is a storage error
func IsStorage(err error) bool {
	if kvErr, ok := err.(*KVError); ok {
		return kvErr.Type == ErrorTypeStorage
	}
	return false
}
