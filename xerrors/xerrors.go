// Package xerrors provides the error-handling helpers used across jsonptr:
// caller-stack annotation (via github.com/pkg/errors) and key-value formatted
// error messages in the form `|key: value`, so that a failure can carry
// structured context (e.g. the pointer prefix at which navigation diverged)
// without a custom error type per call site.
package xerrors

import (
	"fmt"

	"github.com/pkg/errors"
)

// Well-known keys used in KV-formatted error messages.
const (
	KeyReason  = "reason"
	KeyPointer = "pointer"
	KeyFile    = "file"
	KeyFormat  = "format"
)

// WithStack annotates err with a stack trace at the point WithStack was
// called. If err is nil, WithStack returns nil.
func WithStack(err error) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(err)
}

// Errorf formats according to a format specifier and returns the string as a
// value that satisfies error. Errorf also records the stack trace at the
// point it was called.
func Errorf(format string, args ...any) error {
	return errors.Errorf(format, args...)
}

// ErrorKV formats the key-value pairs as `[|key: value]...` followed by
// `|reason: msg` and returns the string as a value that satisfies error.
// ErrorKV also records the stack trace at the point it was called.
func ErrorKV(msg string, keysAndValues ...any) error {
	return errors.New(CombineKV(keysAndValues...) + CombineKV(KeyReason, msg))
}

// WrapKV annotates err with the key-value pairs as `[|key: value]...` string
// and records the stack trace at the point it was called.
// If err is nil, WrapKV returns nil.
func WrapKV(err error, keysAndValues ...any) error {
	if err == nil {
		return nil
	}
	return errors.WithStack(&withMessage{cause: err, message: CombineKV(keysAndValues...)})
}

// WithMessageKV annotates err with the key-value pairs as `[|key: value]...`
// string, without a caller stack. If err is nil, WithMessageKV returns nil.
func WithMessageKV(err error, keysAndValues ...any) error {
	if err == nil {
		return nil
	}
	return &withMessage{cause: err, message: CombineKV(keysAndValues...)}
}

// Wrapf returns an error annotating err with a stack trace at the point
// Wrapf is called, and the format specifier. If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}

// CombineKV formats the key-value pairs as a `[|key: value]...` string.
func CombineKV(keysAndValues ...any) string {
	var msg string
	for i := 0; i < len(keysAndValues); i += 2 {
		if i == len(keysAndValues)-1 {
			panic("invalid Key-Value pairs: odd number")
		}
		key, val := keysAndValues[i], keysAndValues[i+1]
		msg += fmt.Sprintf("|%v: %v", key, val)
	}
	return msg
}

// withMessage is an error that has a cause error and a KV message.
type withMessage struct {
	cause   error
	message string
}

func (w *withMessage) Error() string {
	content := w.message
	if w.cause != nil {
		content += ": " + w.cause.Error()
	}
	return content
}

// Unwrap provides compatibility for Go 1.13 error chains.
func (w *withMessage) Unwrap() error { return w.cause }

func (w *withMessage) Cause() error { return w.cause }
