package log

import "go.uber.org/zap/zapcore"

var defaultLogger Logger

var Debugf func(template string, args ...interface{})
var Infof func(template string, args ...interface{})
var Warnf func(template string, args ...interface{})
var Errorf func(template string, args ...interface{})
var Error func(err error)
var With func(args ...interface{}) Logger

func init() {
	InitDefault(NewInput{
		Level: zapcore.InfoLevel,
	})
}

// InitDefault will create a new logger with the given settings and will
// set it as the default global logger. This function IS NOT thread-safe
// and cannot be used while other routines are using the existing global
// default logger.
func InitDefault(input NewInput) {
	defaultLogger = New(input)

	Debugf = defaultLogger.Debugf
	Infof = defaultLogger.Infof
	Warnf = defaultLogger.Warnf
	Errorf = defaultLogger.Errorf
	Error = defaultLogger.Error
	With = defaultLogger.With
}

// Default returns the current default global logger.
func Default() Logger {
	return defaultLogger
}
