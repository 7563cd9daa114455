// Package log wraps zap behind a small Logger interface with registerable
// write hooks, so callers (and tests) can observe log writes without
// touching the output pipeline.
package log

import (
	"sort"

	"github.com/Invicton-Labs/go-stackerr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// WriteHook is called for each log write that passes the level check, with
// the entry and its structured fields.
type WriteHook func(entry zapcore.Entry, fields []zapcore.Field)

type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})

	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Warnw(msg string, keysAndValues ...interface{})
	Errorw(msg string, keysAndValues ...interface{})

	// Error will add the error's fields as log fields and log it at the
	// Error level.
	Error(err error)

	With(args ...interface{}) Logger
	WithOptions(opts ...zap.Option) Logger

	// RegisterWriteHook will register a function hook that will be called
	// for each log write.
	RegisterWriteHook(key string, hook WriteHook) stackerr.Error

	// DeregisterWriteHook will deregister a hook that was registered with
	// RegisterWriteHook.
	DeregisterWriteHook(key string) stackerr.Error

	// Config gets the config values that can be used to re-create this logger.
	Config() NewInput

	// Clone returns a copy of the logger.
	Clone() Logger
}

type logger struct {
	*zap.SugaredLogger
	config NewInput
}

func (l logger) Clone() Logger {
	return logger{
		SugaredLogger: l.SugaredLogger.With(),
		config:        l.config.Clone(),
	}
}

func (l logger) Config() NewInput {
	return l.config.Clone()
}

func (l logger) RegisterWriteHook(key string, hook WriteHook) stackerr.Error {
	if _, ok := l.config.WriteHooks[key]; ok {
		return stackerr.Errorf("Write hook key `%s` is already registered", key)
	}
	l.config.WriteHooks[key] = hook
	return nil
}

func (l logger) DeregisterWriteHook(key string) stackerr.Error {
	if _, ok := l.config.WriteHooks[key]; !ok {
		return stackerr.Errorf("Write hook key `%s` is not registered", key)
	}
	delete(l.config.WriteHooks, key)
	return nil
}

// Error will add the error fields as log fields and log the error at the
// Error level.
func (l logger) Error(err error) {
	serr := stackerr.Wrap(err)
	kvp := make([]any, 0, 2*len(serr.Fields()))
	for k, v := range serr.Fields() {
		kvp = append(kvp, k, v)
	}
	l.SugaredLogger.Errorw(err.Error(), kvp...)
}

func (l logger) With(args ...interface{}) Logger {
	return logger{l.SugaredLogger.With(args...), l.config.Clone()}
}

func (l logger) WithOptions(opts ...zap.Option) Logger {
	return logger{l.SugaredLogger.WithOptions(opts...), l.config.Clone()}
}

type NewInput struct {
	Name          string
	Level         zapcore.Level
	IsDevelopment bool
	WriteHooks    map[string]WriteHook
	InitialFields map[string]any
}

func (ni *NewInput) Clone() NewInput {
	hooks := make(map[string]WriteHook, len(ni.WriteHooks))
	for k, v := range ni.WriteHooks {
		hooks[k] = v
	}
	fields := make(map[string]any, len(ni.InitialFields))
	for k, v := range ni.InitialFields {
		fields[k] = v
	}
	return NewInput{
		Name:          ni.Name,
		Level:         ni.Level,
		IsDevelopment: ni.IsDevelopment,
		WriteHooks:    hooks,
		InitialFields: fields,
	}
}

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

	sink, closeOut, err := zap.Open("stdout")
	if err != nil {
		panic(err)
	}
	errSink, _, err := zap.Open("stderr")
	if err != nil {
		closeOut()
		panic(err)
	}

	buildOpts := []zap.Option{
		zap.ErrorOutput(errSink),
	}

	if input.IsDevelopment {
		buildOpts = append(buildOpts, zap.Development())
	}

	// Add the caller field
	buildOpts = append(buildOpts, zap.AddCaller())

	// Add the stacktraces
	buildOpts = append(buildOpts, zap.AddStacktrace(zap.WarnLevel))

	if input.WriteHooks == nil {
		input.WriteHooks = map[string]WriteHook{}
	}
	if input.InitialFields == nil {
		input.InitialFields = map[string]any{}
	}

	// Add any initial field as a build option
	if len(input.InitialFields) > 0 {
		fs := make([]zap.Field, 0, len(input.InitialFields))
		keys := make([]string, 0, len(input.InitialFields))
		for k := range input.InitialFields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fs = append(fs, zap.Any(k, input.InitialFields[k]))
		}
		buildOpts = append(buildOpts, zap.Fields(fs...))
	}

	base := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(input.Level))

	zapLogger := zap.New(
		&hookCore{
			Core:          base,
			getWriteHooks: func() map[string]WriteHook { return input.WriteHooks },
		},
		buildOpts...,
	)

	return &logger{zapLogger.Named(input.Name).Sugar(), input}
}
