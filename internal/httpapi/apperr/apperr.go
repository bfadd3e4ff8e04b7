package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the failure categories every service operation can
// produce. Handlers map these to HTTP status codes with errors.Is; nothing
// else in the codebase inspects error strings.
var (
	ErrNotFound        = errors.New("resource not found")
	ErrConflict        = errors.New("resource conflict")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrAuthFailed      = errors.New("authentication failed")
)

func NotFoundf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

func Conflictf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrConflict)...)
}

func InvalidArgumentf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrInvalidArgument)...)
}

func AuthFailedf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, ErrAuthFailed)...)
}
