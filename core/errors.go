package core

import (
	"errors"
	"fmt"
	"os"
)

// General error codes
const (
	NOERROR   int = 0
	EMISSING  int = 122 // resource does not exist
	EINVALID  int = 123 // validation failed
	EINTERNAL int = 125 // internal error
)

// Error codes of the conversion pipeline
const (
	EUNKNOWNPLUGIN int = 130 // vocabulary references an unregistered plugin
	EUNBALANCED    int = 131 // closing delimiter without matching opener
	EUNCLOSED      int = 132 // opening delimiter never closed
	EINCOMPLETE    int = 133 // keyword lacks operands
	EUNKNOWNSYMBOL int = 134 // lexer and vocabulary disagree
	ETOODEEP       int = 135 // nesting exceeds the configured maximum
)

// Sentinel errors, wrapped by the errors each stage returns. Clients may
// test for them with errors.Is.
var (
	ErrUnknownPlugin       = errors.New("unknown plugin")
	ErrUnbalancedDelimiter = errors.New("unbalanced delimiter")
	ErrUnclosedDelimiter   = errors.New("unclosed delimiter")
	ErrIncompleteConstruct = errors.New("incomplete construct")
	ErrUnknownSymbol       = errors.New("unknown symbol")
	ErrTooDeeplyNested     = errors.New("too deeply nested")
	ErrInvalid             = errors.New("invalid")
)

func errorText(ecode int) string {
	switch ecode {
	case NOERROR:
		return "OK"
	case EMISSING:
		return "not found"
	case EINVALID:
		return "invalid"
	case EINTERNAL:
		return "internal error"
	case EUNKNOWNPLUGIN:
		return "unknown plugin"
	case EUNBALANCED:
		return "unbalanced delimiter"
	case EUNCLOSED:
		return "unclosed delimiter"
	case EINCOMPLETE:
		return "incomplete construct"
	case EUNKNOWNSYMBOL:
		return "unknown symbol"
	case ETOODEEP:
		return "too deeply nested"
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

type coreError struct {
	error
	code int
	msg  string
}

func (e coreError) Unwrap() error {
	return e.error
}

func (e coreError) Error() string {
	if e.msg == "" || e.msg == e.error.Error() {
		return fmt.Sprintf("[%d] %v", e.code, e.error)
	}
	return fmt.Sprintf("[%d] %v: %s", e.code, e.error, e.msg)
}

func (e coreError) ErrorCode() int {
	return e.code
}

func (e coreError) UserMessage() string {
	return e.msg
}

var _ AppError = coreError{}

// ErrorWithCode adds an error code to err's error chain.
// Unlike pkg/errors, ErrorWithCode will wrap nil error.
func ErrorWithCode(err error, code int) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	return coreError{err, code, errorText(code)}
}

// WrapError wraps an error in a core error, featuring an error code and
// a user message.
// If err is nil, an error denoting the code's text is wrapped.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(errorText(code))
	}
	msg := fmt.Sprintf(format, v...)
	return coreError{err, code, msg}
}

// Code returns the status code associated with an error.
// If no status code is found, it returns EINTERNAL.
// If err is nil, NOERROR is returned.
func Code(err error) (code int) {
	if err == nil {
		return NOERROR
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message associated with an error.
// If no message is found, it checks StatusCode and returns that message.
// If err is nil, it returns "".
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if e := AppError(nil); errors.As(err, &e) {
		return e.UserMessage()
	}
	return errorText(Code(err))
}

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return coreError{
		errors.New(errorText(code)),
		code,
		fmt.Sprintf(format, v...),
	}
}

// UserError prints err to stderr, preferring the user message if err
// carries one.
func UserError(err error) {
	if e := AppError(nil); errors.As(err, &e) {
		fmt.Fprintf(os.Stderr, "[%d] %s\n", e.ErrorCode(), e.UserMessage())
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}
