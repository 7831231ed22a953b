package core

// Mode selects the simulated outcome of the check command.
type Mode string

const (
	ModeOK   Mode = "ok"
	ModeFail Mode = "fail"
)

const (
	checkPassedMessage = "check passed"
	checkFailedMessage = "intentional failure: check mode set to 'fail'"
)

// ParseMode validates a --mode value. Only the exact lower-case names are
// accepted.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeOK, ModeFail:
		return Mode(value), nil
	case "":
		return "", UsageErrorf("missing required option --mode")
	default:
		return "", UsageErrorf("invalid mode %q: use 'ok' or 'fail'", value)
	}
}

// Check simulates an operation: ModeOK succeeds and ModeFail fails with a
// fixed diagnostic. Any other mode is a usage error.
func Check(mode Mode) Result {
	mode, err := ParseMode(string(mode))
	if err != nil {
		return Failed(err)
	}
	if mode == ModeFail {
		return Failed(NewFailure("check", checkFailedMessage))
	}
	return Succeeded(checkPassedMessage, nil)
}
