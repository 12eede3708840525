// Package logx builds the zap loggers used by the binaries.
package logx

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var levels = map[string]zapcore.Level{
	"debug": zapcore.DebugLevel,
	"info":  zapcore.InfoLevel,
	"warn":  zapcore.WarnLevel,
	"error": zapcore.ErrorLevel,
	"fatal": zapcore.FatalLevel,
}

// ParseLevel maps a level name to a zap level. Unknown names fall back to info.
func ParseLevel(name string) (zapcore.Level, bool) {
	lvl, ok := levels[name]
	if !ok {
		return zapcore.InfoLevel, false
	}
	return lvl, true
}

// New returns a logger writing to w, or to stdout with console set. dev selects the
// development encoder settings; console selects human readable output over JSON.
func New(level string, dev, console bool, w io.Writer) *zap.Logger {
	lvl, _ := ParseLevel(level)

	sink := zapcore.AddSync(w)
	if console || w == nil {
		sink = zapcore.AddSync(os.Stdout)
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	if dev {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	}
	encoderCfg.LevelKey = "level"
	encoderCfg.TimeKey = "time"
	encoderCfg.MessageKey = "msg"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	encoder := zapcore.NewJSONEncoder(encoderCfg)
	if console {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(lvl))
	return zap.New(core, zap.AddCaller())
}
