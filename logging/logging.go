// Package logging builds the zap logger; the terminal owns stdout, so output
// goes to a file or nowhere
package logging

import (
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/lixenwraith/star-hauler/parameter"
)

// Options locates the log file; zero values use the parameter defaults
// MaxSize is in megabytes
type Options struct {
	Debug      bool
	Dir        string
	File       string
	MaxSize    int
	MaxBackups int
}

func (o Options) withDefaults() Options {
	if o.Dir == "" {
		o.Dir = parameter.LogDir
	}
	if o.File == "" {
		o.File = parameter.LogFileName
	}
	if o.MaxSize <= 0 {
		o.MaxSize = parameter.LogMaxSizeMB
	}
	if o.MaxBackups <= 0 {
		o.MaxBackups = parameter.LogMaxBackups
	}
	return o
}

// Path returns the active log file path
func (o Options) Path() string {
	o = o.withDefaults()
	return filepath.Join(o.Dir, o.File)
}

// New returns a file-backed debug logger, or a no-op logger when debug is off
// The file rotates through lumberjack once it reaches MaxSize; the returned
// cleanup flushes and closes it
func New(opts Options) (*zap.Logger, func(), error) {
	if !opts.Debug {
		return zap.NewNop(), func() {}, nil
	}
	opts = opts.withDefaults()

	sink := &lumberjack.Logger{
		Filename:   opts.Path(),
		MaxSize:    opts.MaxSize,
		MaxBackups: opts.MaxBackups,
		LocalTime:  true,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.AddSync(sink),
		zap.NewAtomicLevelAt(zapcore.DebugLevel),
	)
	logger := zap.New(core)

	cleanup := func() {
		_ = logger.Sync()
		_ = sink.Close()
	}
	return logger, cleanup, nil
}
