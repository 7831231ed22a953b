package core

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

var (
	// ErrUsage marks malformed invocations: missing or invalid arguments.
	ErrUsage = errors.New("usage error")
	// ErrOperation marks commands that ran but whose outcome is a failure.
	ErrOperation = errors.New("operation failed")
)

const (
	maxTraceDepth = 32
	maxChainLinks = 16
)

// Error is a classified command error. Message is the user-facing text; the
// marker and any cause stay reachable through errors.Is/As.
type Error struct {
	marker  error
	command string
	message string
	cause   error
	frames  []uintptr
}

func (e *Error) Error() string {
	if e.cause != nil && e.message == "" {
		return e.cause.Error()
	}
	if e.cause != nil {
		return e.message + ": " + e.cause.Error()
	}
	if e.message == "" {
		return e.marker.Error()
	}
	return e.message
}

// Unwrap exposes both the marker and the cause to errors.Is.
func (e *Error) Unwrap() []error {
	out := []error{e.marker}
	if e.cause != nil {
		out = append(out, e.cause)
	}
	return out
}

// ExitCode satisfies the command layer's exit-coder contract.
func (e *Error) ExitCode() int {
	return Classify(e).ExitCode()
}

// Command returns the subcommand the error was raised for, if known.
func (e *Error) Command() string {
	return e.command
}

// Wrap tags err with marker and command context. The marker should be one of
// the sentinels above; nil defaults to ErrOperation.
func Wrap(marker error, command, message string, err error) error {
	if marker == nil {
		marker = ErrOperation
	}
	e := &Error{
		marker:  marker,
		command: strings.TrimSpace(command),
		message: strings.TrimSpace(message),
		cause:   err,
	}
	if errors.Is(marker, ErrOperation) {
		e.frames = callers(3)
	}
	return e
}

// UsageErrorf builds a usage error with a formatted message.
func UsageErrorf(format string, args ...any) error {
	return &Error{marker: ErrUsage, message: fmt.Sprintf(format, args...)}
}

// NewFailure builds an operation failure for command, recording the caller's stack.
func NewFailure(command, message string) error {
	return &Error{
		marker:  ErrOperation,
		command: strings.TrimSpace(command),
		message: message,
		frames:  callers(3),
	}
}

// Classify maps an error to the status the dispatcher should report.
// Unclassified errors are treated as failures.
func Classify(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrUsage):
		return StatusUsageError
	default:
		return StatusFailure
	}
}

// Trace renders the error chain, followed by the frames captured when an
// operation failure was created. Errors built without a stack (usage errors,
// foreign errors) render the chain only.
func Trace(err error) string {
	if err == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("error chain:\n")
	for i, link := range chain(err) {
		fmt.Fprintf(&b, "  %d: %s\n", i, link)
	}

	var ce *Error
	if !errors.As(err, &ce) || len(ce.frames) == 0 {
		return b.String()
	}
	b.WriteString("frames:\n")
	frames := runtime.CallersFrames(ce.frames)
	for {
		frame, more := frames.Next()
		if frame.Function != "" {
			fmt.Fprintf(&b, "  %s\n      %s:%d\n", frame.Function, frame.File, frame.Line)
		}
		if !more {
			break
		}
	}
	return b.String()
}

func chain(err error) []string {
	var links []string
	queue := []error{err}
	for len(queue) > 0 && len(links) < maxChainLinks {
		cur := queue[0]
		queue = queue[1:]
		if cur == nil {
			continue
		}
		links = append(links, fmt.Sprintf("%T: %s", cur, cur.Error()))
		switch u := cur.(type) {
		case interface{ Unwrap() []error }:
			queue = append(queue, u.Unwrap()...)
		case interface{ Unwrap() error }:
			queue = append(queue, u.Unwrap())
		}
	}
	return links
}

func callers(skip int) []uintptr {
	pcs := make([]uintptr, maxTraceDepth)
	n := runtime.Callers(skip, pcs)
	return pcs[:n]
}
