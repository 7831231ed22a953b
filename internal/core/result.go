package core

// Status is the terminal classification of a single invocation.
type Status int

const (
	StatusSuccess Status = iota
	StatusFailure
	StatusUsageError
)

// Exit codes shared by every subcommand.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ExitCode maps a status to the process exit code.
func (s Status) ExitCode() int {
	switch s {
	case StatusSuccess:
		return ExitOK
	case StatusUsageError:
		return ExitUsage
	default:
		return ExitError
	}
}

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	case StatusUsageError:
		return "usage_error"
	default:
		return "unknown"
	}
}

// Result is the outcome of running one subcommand.
type Result struct {
	Status  Status
	Message string
	// Payload is the structured form rendered in JSON mode.
	Payload any
	Err     error
}

// Succeeded constructs a successful Result.
func Succeeded(message string, payload any) Result {
	return Result{Status: StatusSuccess, Message: message, Payload: payload}
}

// Failed constructs a non-success Result whose status is derived from err.
func Failed(err error) Result {
	msg := ""
	if err != nil {
		msg = err.Error()
	}
	return Result{Status: Classify(err), Message: msg, Err: err}
}

// OK reports whether the result is a success.
func (r Result) OK() bool {
	return r.Status == StatusSuccess
}
