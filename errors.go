package chroma

import "fmt"

// InvalidInputError reports an input value that could not be turned
// into a color, or a keyed representation handed to a conversion of
// the wrong kind. Input holds the offending raw value for diagnostics.
type InvalidInputError struct {
	Input  any
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("chroma: invalid color input %#v: %s", e.Input, e.Reason)
}

// UndefinedChannelError reports a channel accessor used with a channel
// the color does not define.
type UndefinedChannelError struct {
	Channel Channel
}

func (e *UndefinedChannelError) Error() string {
	return fmt.Sprintf("chroma: undefined channel %d", int(e.Channel))
}

// errInvalid builds an *InvalidInputError with a formatted reason.
func errInvalid(input any, format string, args ...any) error {
	return &InvalidInputError{Input: input, Reason: fmt.Sprintf(format, args...)}
}
