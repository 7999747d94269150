// SPDX-License-Identifier: GPL-2.0-or-later
package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// NewLogger builds the game logger: console output always, a rotated
// log file when one is configured.
func (lc LoggingConfig) NewLogger() *zap.Logger {
	lvl := parseLevel(lc.Level)

	consoleEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		MessageKey:       "msg",
		EncodeTime:       zapcore.TimeEncoderOfLayout("15:04:05"),
		EncodeLevel:      zapcore.CapitalColorLevelEncoder,
		ConsoleSeparator: " ",
	})
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(os.Stdout), lvl),
	}

	if lc.LogFile != "" {
		fileWriter := &lumberjack.Logger{
			Filename:   lc.LogFile,
			MaxSize:    20, // MB
			MaxBackups: 3,
			MaxAge:     7, // days
			Compress:   true,
			LocalTime:  true,
		}
		fileEncoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
			TimeKey:          "time",
			LevelKey:         "level",
			MessageKey:       "msg",
			EncodeTime:       zapcore.ISO8601TimeEncoder,
			EncodeLevel:      zapcore.CapitalLevelEncoder,
			ConsoleSeparator: " ",
		})
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(fileWriter), lvl))
	}

	return zap.New(zapcore.NewTee(cores...))
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
