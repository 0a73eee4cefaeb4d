package errors

import (
	"errors"
)

// As is errors.As narrowed to *Error
func As(err error, target **Error) bool {
	return errors.As(err, target)
}

// Is is errors.Is, re-exported so callers need only this package
func Is(err, target error) bool {
	return errors.Is(err, target)
}

func asError(err error) *Error {
	var e *Error
	if err != nil && errors.As(err, &e) {
		return e
	}
	return nil
}

// GetCode returns the code of err: OK for nil, Internal for plain errors
func GetCode(err error) Code {
	if err == nil {
		return CodeOK
	}
	if e := asError(err); e != nil {
		return e.Code
	}
	return CodeInternal
}

// GetMeta returns the metadata of the outermost *Error in err's chain
func GetMeta(err error) map[string]any {
	if e := asError(err); e != nil {
		return e.Meta
	}
	return nil
}

// GetFieldErrors returns the per-field validation messages carried by err, if any
func GetFieldErrors(err error) map[string][]string {
	fields, _ := GetMeta(err)[metaValidationErrors].(map[string][]string)
	return fields
}

func IsNotFound(err error) bool           { return GetCode(err) == CodeNotFound }
func IsInvalidArgument(err error) bool    { return GetCode(err) == CodeInvalidArgument }
func IsAlreadyExists(err error) bool      { return GetCode(err) == CodeAlreadyExists }
func IsPermissionDenied(err error) bool   { return GetCode(err) == CodePermissionDenied }
func IsInternal(err error) bool           { return GetCode(err) == CodeInternal }
func IsUnavailable(err error) bool        { return GetCode(err) == CodeUnavailable }
func IsUnauthenticated(err error) bool    { return GetCode(err) == CodeUnauthenticated }
func IsResourceExhausted(err error) bool  { return GetCode(err) == CodeResourceExhausted }
func IsFailedPrecondition(err error) bool { return GetCode(err) == CodeFailedPrecondition }
