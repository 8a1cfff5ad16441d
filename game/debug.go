package game

import (
	"fmt"
	"log"
	"strings"
)

var EnableDebug = false

// LogLevel selects the console method a message is routed to.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelWarn
	LevelError
)

func (l LogLevel) String() string {
	switch l {
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "DEBUG"
	}
}

// LogSink receives every message that passes the debug gate.
type LogSink func(level LogLevel, msg string)

var logSink LogSink = func(level LogLevel, msg string) {
	log.Printf("[%s] %s", level, msg)
}

// SetLogSink replaces the output of Debug and friends. A nil sink restores
// the default log.Printf output.
func SetLogSink(sink LogSink) {
	if sink == nil {
		sink = func(level LogLevel, msg string) {
			log.Printf("[%s] %s", level, msg)
		}
	}
	logSink = sink
}

// sprint joins args with spaces like console.log does.
func sprint(args ...interface{}) string {
	return strings.TrimSuffix(fmt.Sprintln(args...), "\n")
}

// Debug logs a message if debug mode is enabled.
func Debug(args ...interface{}) {
	if EnableDebug {
		logSink(LevelDebug, sprint(args...))
	}
}

// Debugf logs a formatted message if debug mode is enabled.
func Debugf(format string, args ...interface{}) {
	if EnableDebug {
		logSink(LevelDebug, fmt.Sprintf(format, args...))
	}
}

// DebugWarn logs a warning if debug mode is enabled.
func DebugWarn(args ...interface{}) {
	if EnableDebug {
		logSink(LevelWarn, sprint(args...))
	}
}

// DebugError logs an error. Errors are reported even with debug disabled.
func DebugError(args ...interface{}) {
	logSink(LevelError, sprint(args...))
}
