package logging

import (
	"fmt"
)

// logger is a global reference to a shared Logger.  It starts out verbose so
// that messages logged before initialization are not lost.
var logger = newLogger(LogLevelVerbose)

// Initialize replaces the global logger with a fresh one using the provided
// log level.  All previously logged messages are discarded.
func Initialize(loglevelname string) {
	logger = newLogger(ParseLogLevel(loglevelname))
}

// ParseLogLevel converts the name of a log level into its enumerated value
func ParseLogLevel(loglevelname string) int {
	switch loglevelname {
	case "silent":
		return LogLevelSilent
	case "error":
		return LogLevelError
	case "warn", "warning":
		return LogLevelWarning
	// everything else (including invalid log levels) should default to verbose
	default:
		return LogLevelVerbose
	}
}

// ShouldProceed indicates whether or not the log module has encountered an errors.
func ShouldProceed() bool {
	return ErrorCount() == 0
}

// ErrorCount returns the number of errors logged since initialization
func ErrorCount() int {
	logger.m.Lock()
	defer logger.m.Unlock()

	return logger.errorCount
}

// Messages returns a copy of all the messages logged since initialization
func Messages() []LogMessage {
	logger.m.Lock()
	defer logger.m.Unlock()

	return append([]LogMessage(nil), logger.messages...)
}

// -----------------------------------------------------------------------------
// NOTE: All log functions will only display if the appropriate log level is
// set.  Most log functions will simply fail silently if below their appropriate
// log level.

// LogImportError logs an error in an import declaration
func LogImportError(filePath string, pos *TextPosition, message string, args ...interface{}) {
	logger.handleMsg(&CompileMessage{
		FilePath: filePath,
		Message:  fmt.Sprintf(message, args...),
		Kind:     LMKImport,
		Position: pos,
		IsError:  true,
	})
}

// LogImportWarning logs a problematic, but legal, import declaration
func LogImportWarning(filePath string, pos *TextPosition, message string, args ...interface{}) {
	logger.handleMsg(&CompileMessage{
		FilePath: filePath,
		Message:  fmt.Sprintf(message, args...),
		Kind:     LMKImport,
		Position: pos,
		IsError:  false,
	})
}

// LogModuleError logs an error caused by a module named in the file at
// filePath rather than by the declaration itself: eg. a module that cannot be
// found or loaded
func LogModuleError(filePath string, pos *TextPosition, message string, args ...interface{}) {
	logger.handleMsg(&CompileMessage{
		FilePath: filePath,
		Message:  fmt.Sprintf(message, args...),
		Kind:     LMKModule,
		Position: pos,
		IsError:  true,
	})
}

// LogConfigError logs an error related to project or compiler configuration
func LogConfigError(kind, message string) {
	logger.handleMsg(&ConfigError{Kind: kind, Message: message})
}

// LogConfigWarning logs a warning related to project configuration
func LogConfigWarning(kind, message string) {
	logger.handleMsg(&ConfigWarning{Kind: kind, Message: message})
}

// LogInfo prints an informational message if the log level is verbose
func LogInfo(tag, message string) {
	if logger.LogLevel == LogLevelVerbose {
		PrintInfoMessage(tag, message)
	}
}

// LogFinished displays all pending warnings followed by the closing message
func LogFinished() {
	logger.flushWarnings()

	if logger.LogLevel > LogLevelSilent {
		displayFinished(ShouldProceed(), ErrorCount())
	}
}
