// Package apperr classifies the failures surfaced to the UI so the
// driver can pick notification levels without string matching.
package apperr

import (
	"errors"
	"fmt"
)

// Code identifies the failure class.
type Code int

const (
	// CodeGeneral is the catch-all for errors with no better home.
	CodeGeneral Code = iota
	// CodeConfig covers config file read/write/parse failures.
	CodeConfig
	// CodeProfile covers missing or invalid profiles.
	CodeProfile
	// CodeParse covers malformed identifiers such as ARNs.
	CodeParse
	// CodeResourceNotFound covers lookups of unknown resources.
	CodeResourceNotFound
	// CodeAuth covers credential and permission failures.
	CodeAuth
	// CodeNetwork covers transport failures from the provider.
	CodeNetwork
)

func (c Code) String() string {
	switch c {
	case CodeConfig:
		return "config"
	case CodeProfile:
		return "profile"
	case CodeParse:
		return "parse"
	case CodeResourceNotFound:
		return "resource not found"
	case CodeAuth:
		return "auth"
	case CodeNetwork:
		return "network"
	default:
		return "general"
	}
}

// Error carries a Code alongside the underlying cause.
type Error struct {
	Code Code
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports code equality so errors.Is can match against sentinel
// *Error values that carry only a Code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// New creates a coded error with no underlying cause.
func New(code Code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...)}
}

// Wrap annotates err with a code and message. Returns nil if err is nil.
func Wrap(code Code, err error, format string, args ...interface{}) *Error {
	if err == nil {
		return nil
	}
	return &Error{Code: code, Msg: fmt.Sprintf(format, args...), Err: err}
}

// CodeOf extracts the Code from err, walking the wrap chain.
// Unclassified errors report CodeGeneral.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeGeneral
}
