package svn

import "fmt"

// CommandError reports a client invocation that exited non-zero.
// Stderr holds the tool's own diagnostic text and is usually suitable for
// showing to the user verbatim.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return e.Stderr
	}
	return fmt.Sprintf("svn exited with code %d", e.ExitCode)
}

// ParseError reports malformed XML or an unexpected report shape.
// RawInput retains the full original report so failures can be replayed
// against the parser in a test.
type ParseError struct {
	Message  string
	RawInput string
	Cause    error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *ParseError) Unwrap() error { return e.Cause }

// EmptyInputError reports an empty report for an operation that has no
// legitimate empty result, such as info.
type EmptyInputError struct {
	Op string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("svn %s produced an empty report", e.Op)
}
