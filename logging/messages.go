package logging

import "fmt"

// LogMessage is the interface implemented by everything the logger can handle
type LogMessage interface {
	display()
	isError() bool
}

// TextPosition represents a positional range in the source text
type TextPosition struct {
	StartLn, StartCol int // starting line, starting 0-indexed column
	EndLn, EndCol     int // ending Line, column trailing token (one over)
}

// Enumeration of the kinds of compile messages
const (
	LMKImport = iota
	LMKModule
)

// CompileMessage is an error or warning attached to a location in a user file
type CompileMessage struct {
	// FilePath is the path to the file the message refers to.  It may be empty
	// if the message is not attached to a specific file.
	FilePath string

	Message string

	// Kind must be one of the enumerated compile message kinds
	Kind int

	// Position may be nil if the message has no meaningful position
	Position *TextPosition

	IsError bool
}

func (cm *CompileMessage) isError() bool {
	return cm.IsError
}

func (cm *CompileMessage) String() string {
	if cm.Position == nil {
		return fmt.Sprintf("%s: %s", cm.FilePath, cm.Message)
	}

	return fmt.Sprintf("%s:%d:%d: %s", cm.FilePath, cm.Position.StartLn, cm.Position.StartCol+1, cm.Message)
}

// ConfigError is an error related to project or compiler configuration
type ConfigError struct {
	Kind    string
	Message string
}

func (ce *ConfigError) isError() bool {
	return true
}

func (ce *ConfigError) String() string {
	return ce.Kind + " Error: " + ce.Message
}

// ConfigWarning is a non-fatal problem with project configuration
type ConfigWarning struct {
	Kind    string
	Message string
}

func (cw *ConfigWarning) isError() bool {
	return false
}

func (cw *ConfigWarning) String() string {
	return cw.Kind + " Warning: " + cw.Message
}

// InternalError is the value a failed internal invariant check panics with.
// It indicates a bug in the compiler rather than in the code being compiled.
type InternalError struct {
	Message string
}

func (ie *InternalError) Error() string {
	return "internal compiler error: " + ie.Message
}
