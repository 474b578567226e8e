package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/deploymenttheory/go-afp/internal/afperr"
)

// CommonError represents application-level errors
type CommonError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CommonError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CommonError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeInvalidInput   = "INVALID_INPUT"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeNoMetadata     = "NO_METADATA"
	ErrCodeDataCorrupt    = "DATA_CORRUPT"
	ErrCodePermission     = "PERMISSION_DENIED"
	ErrCodeBadDescriptor  = "BAD_DESCRIPTOR"
	ErrCodeNotSupported   = "NOT_SUPPORTED"
	ErrCodeIO             = "IO_ERROR"
	ErrCodeTimeout        = "TIMEOUT"
	ErrCodeNotImplemented = "NOT_IMPLEMENTED"
)

var kindCodes = map[afperr.Kind]string{
	afperr.Io:               ErrCodeIO,
	afperr.NotFound:         ErrCodeNotFound,
	afperr.NoMetadata:       ErrCodeNoMetadata,
	afperr.DataCorrupt:      ErrCodeDataCorrupt,
	afperr.PermissionDenied: ErrCodePermission,
	afperr.BadDescriptor:    ErrCodeBadDescriptor,
	afperr.InvalidArgument:  ErrCodeInvalidInput,
	afperr.NotSupported:     ErrCodeNotSupported,
}

// NewError creates a new CommonError
func NewError(code, message string, cause error) *CommonError {
	return &CommonError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapError classifies a service error into a CommonError. Errors that are
// already CommonErrors are returned unchanged.
func WrapError(message string, err error) error {
	if err == nil {
		return nil
	}
	var common *CommonError
	if errors.As(err, &common) {
		return err
	}
	return NewError(ErrorCode(err), message, err)
}

// ErrorCode returns the CommonError code matching err
func ErrorCode(err error) string {
	var common *CommonError
	if errors.As(err, &common) {
		return common.Code
	}
	if isTimeout(err) {
		return ErrCodeTimeout
	}
	if code, ok := kindCodes[afperr.KindOf(err)]; ok {
		return code
	}
	return ErrCodeIO
}

func isTimeout(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}
