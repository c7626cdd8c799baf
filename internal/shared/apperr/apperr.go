// Package apperr defines the application-wide result codes and the error type
// that carries them from usecases to the HTTP boundary.
package apperr

import "fmt"

// Code is a numeric, client-visible result code. Codes are grouped by HTTP
// status class: the leading three digits are the HTTP status, the last digit
// disambiguates conditions sharing a status.
type Code int

const (
	OK                      Code = 2000
	InvalidInput            Code = 4000
	InvalidUID              Code = 4001
	WrongPassword           Code = 4010
	InvalidToken            Code = 4011
	SessionExpired          Code = 4012
	UserNotFound            Code = 4040
	VerificationUIDNotFound Code = 4041
	UserSessionNotFound     Code = 4042
	ResourceNotFound        Code = 4043
	UserAlreadyRegistered   Code = 4090
	UserAlreadyOnboarded    Code = 4091
	FailedDependency        Code = 4240
	ServerError             Code = 5000
)

// messages maps each code to its stable, client-safe message. Messages never
// include internal details such as SQL errors or stack traces.
var messages = map[Code]string{
	OK:                      "ok",
	InvalidInput:            "invalid input",
	InvalidUID:              "invalid verification link",
	WrongPassword:           "wrong email or password",
	InvalidToken:            "invalid token",
	SessionExpired:          "session expired",
	UserNotFound:            "user not found",
	VerificationUIDNotFound: "verification link not found",
	UserSessionNotFound:     "no active session",
	ResourceNotFound:        "resource not found",
	UserAlreadyRegistered:   "email already registered",
	UserAlreadyOnboarded:    "user already verified",
	FailedDependency:        "delivery failed, please retry",
	ServerError:             "internal server error",
}

// HTTPStatus returns the HTTP status class the code belongs to.
func (c Code) HTTPStatus() int {
	return int(c) / 10
}

// Message returns the client-safe message for the code.
func (c Code) Message() string {
	if m, ok := messages[c]; ok {
		return m
	}
	return messages[ServerError]
}

// Error is the error type returned by usecases for expected failure
// conditions. The wrapped cause, if any, is for logging only and must never
// reach the client.
type Error struct {
	Code  Code
	cause error
}

// New returns an Error for the given code.
func New(code Code) *Error {
	return &Error{Code: code}
}

// Wrap returns an Error for the given code retaining cause for logs.
func Wrap(code Code, cause error) *Error {
	return &Error{Code: code, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s (code %d): %v", e.Code.Message(), e.Code, e.cause)
	}
	return fmt.Sprintf("%s (code %d)", e.Code.Message(), e.Code)
}

// Unwrap exposes the cause for errors.Is/As chains.
func (e *Error) Unwrap() error {
	return e.cause
}

// Is makes two Errors with the same code match under errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// CodeOf extracts the result code from err. Unclassified errors map to
// ServerError so unexpected failures never leak their contents.
func CodeOf(err error) Code {
	if err == nil {
		return OK
	}
	for e := err; e != nil; {
		if ae, ok := e.(*Error); ok {
			return ae.Code
		}
		u, ok := e.(interface{ Unwrap() error })
		if !ok {
			break
		}
		e = u.Unwrap()
	}
	return ServerError
}
