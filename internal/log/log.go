package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// logger writes to stderr so results on stdout stay machine readable.
var logger = log.New(os.Stderr)

func InitLog(appName string, logLevel string) {
	InitLogTo(os.Stderr, appName, logLevel)
}

// InitLogTo is InitLog with an explicit destination.
func InitLogTo(w io.Writer, appName string, logLevel string) {
	logger = log.New(w)
	logger.SetPrefix(appName)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	logger.SetReportCaller(true)
	SetLevel(logLevel)
}

// SetLevel changes the level of the running logger. Unknown names fall back
// to info.
func SetLevel(logLevel string) {
	logger.SetLevel(ParseLevel(logLevel))
}

// ParseLevel maps a level name to a charmbracelet level.
func ParseLevel(logLevel string) log.Level {
	switch strings.ToLower(logLevel) {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	}
	return log.InfoLevel
}

func Fatal(format string, args ...any) {
	logger.Helper()
	if len(args) == 0 {
		logger.Fatalf("%s", format)
	} else {
		logger.Fatalf(format, args...)
	}
}

func Info(format string, args ...any) {
	logger.Helper()
	if len(args) == 0 {
		logger.Infof("%s", format)
	} else {
		logger.Infof(format, args...)
	}
}

func Warn(format string, args ...any) {
	logger.Helper()
	if len(args) == 0 {
		logger.Warnf("%s", format)
	} else {
		logger.Warnf(format, args...)
	}
}

func Error(format string, args ...any) {
	logger.Helper()
	if len(args) == 0 {
		logger.Errorf("%s", format)
	} else {
		logger.Errorf(format, args...)
	}
}

func Debug(format string, args ...any) {
	logger.Helper()
	if len(args) == 0 {
		logger.Debugf("%s", format)
	} else {
		logger.Debugf(format, args...)
	}
}
