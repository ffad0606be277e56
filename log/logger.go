// Package log wraps zap behind a small Logger interface, with a process
// wide default logger and package-level logging functions bound to it.
package log

import (
	"errors"

	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})

	// Error logs an error. If the error is (or wraps) a stackerr error,
	// the captured stack traces are attached as a field.
	Error(err error)

	With(args ...interface{}) Logger
}

type logger struct {
	*zap.SugaredLogger
}

func (l logger) With(args ...interface{}) Logger {
	return logger{l.SugaredLogger.With(args...)}
}

func (l logger) Error(err error) {
	if serr, ok := err.(stackerr.Error); ok || errors.As(err, &serr) {
		l.SugaredLogger.Errorw(serr.Error(), "stacks", serr.Stacks())
		return
	}
	l.SugaredLogger.Error(err)
}

type NewInput struct {
	Name          string
	Level         zapcore.Level
	IsDevelopment bool
}

// New will create a new logger with the given settings.
func New(input NewInput) Logger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "msg",
		StacktraceKey:  "stacktraces",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.SecondsDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	var encoder zapcore.Encoder
	if input.IsDevelopment {
		// If it's development mode, modify some settings
		encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		encoderConfig.EncodeDuration = zapcore.StringDurationEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderConfig)
	}

	sink, _, err := zap.Open("stdout")
	if err != nil {
		panic(err)
	}

	buildOpts := []zap.Option{
		zap.AddCaller(),
	}
	if input.IsDevelopment {
		buildOpts = append(buildOpts, zap.Development())
	}

	z := zap.New(zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(input.Level)), buildOpts...)
	if input.Name != "" {
		z = z.Named(input.Name)
	}
	return logger{z.Sugar()}
}
