// Package errs defines the error vocabulary shared by every case-mapping
// and comparison entrypoint in this module.
//
// The underlying ICU engine reports failures through an out-parameter error
// slot that is sticky: once set, later operations on the same call chain
// become no-ops. This package keeps that sticky-error property (see the
// edits package, which carries exactly this kind of internal slot) but
// surfaces it to Go callers as an ordinary error return instead of an
// out-parameter, so normal errors.Is/errors.As chains work.
package errs

import "github.com/pkg/errors"

// Code classifies a failure the way the original engine's four error
// kinds do: argument, capacity, arithmetic, and resource.
type Code int

const (
	// IllegalArgument covers null/negative/overlap argument violations.
	IllegalArgument Code = iota + 1
	// BufferOverflow means the destination capacity was too small; the
	// returned length is still authoritative and safe to allocate against.
	BufferOverflow
	// StringNotTerminated is a non-fatal warning: the result filled the
	// destination exactly and could not be NUL-terminated.
	StringNotTerminated
	// IndexOutOfBounds covers signed-length or delta-accumulator overflow.
	IndexOutOfBounds
	// MemoryAllocation covers a failed edit-log growth allocation.
	MemoryAllocation
)

func (c Code) String() string {
	switch c {
	case IllegalArgument:
		return "illegal argument"
	case BufferOverflow:
		return "buffer overflow"
	case StringNotTerminated:
		return "string not terminated"
	case IndexOutOfBounds:
		return "index out of bounds"
	case MemoryAllocation:
		return "memory allocation"
	default:
		return "unknown error"
	}
}

// Error is the concrete error value returned by this module's public
// functions. It always carries a Code so callers can branch on failure
// kind with errors.As, the same way the original distinguishes its four
// error families.
type Error struct {
	code Code
	msg  string
}

// New builds an Error with the given code and message.
func New(code Code, msg string) *Error {
	return &Error{code: code, msg: msg}
}

func (e *Error) Error() string {
	if e.msg == "" {
		return e.code.String()
	}
	return e.code.String() + ": " + e.msg
}

// Code returns the error's classification.
func (e *Error) Code() Code {
	return e.code
}

// Wrap attaches context to an allocation or overflow failure without
// losing the Code an errors.As chain needs, using github.com/pkg/errors
// so the wrapped error still satisfies error and keeps a stack-aware
// message chain.
func Wrap(code Code, cause error, context string) error {
	return errors.Wrap(&Error{code: code, msg: cause.Error()}, context)
}

// Is reports whether err is an *Error carrying the given code.
func Is(err error, code Code) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.code == code
}
