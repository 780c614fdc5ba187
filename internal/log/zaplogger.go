// Tencent is pleased to support the open source community by making trpc-accept available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-accept is licensed under the Apache License Version 2.0.

// Package log provides the default zap-backed logger implementation.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger is the default implementation of logger based on zap.logger.
type ZapLogger struct {
	logger *zap.SugaredLogger
}

// Debug logs a debug message.
func (z *ZapLogger) Debug(args ...interface{}) {
	z.logger.Debug(args...)
}

// Debugf logs a formatted debug message.
func (z *ZapLogger) Debugf(format string, args ...interface{}) {
	z.logger.Debugf(format, args...)
}

// Info logs an info message.
func (z *ZapLogger) Info(args ...interface{}) {
	z.logger.Info(args...)
}

// Infof logs a formatted info message.
func (z *ZapLogger) Infof(format string, args ...interface{}) {
	z.logger.Infof(format, args...)
}

// Warn logs a warning message.
func (z *ZapLogger) Warn(args ...interface{}) {
	z.logger.Warn(args...)
}

// Warnf logs a formatted warning message.
func (z *ZapLogger) Warnf(format string, args ...interface{}) {
	z.logger.Warnf(format, args...)
}

// Error logs an error message.
func (z *ZapLogger) Error(args ...interface{}) {
	z.logger.Error(args...)
}

// Errorf logs a formatted error message.
func (z *ZapLogger) Errorf(format string, args ...interface{}) {
	z.logger.Errorf(format, args...)
}

// Fatal logs a fatal message and exits.
func (z *ZapLogger) Fatal(args ...interface{}) {
	z.logger.Fatal(args...)
}

// Fatalf logs a formatted fatal message and exits.
func (z *ZapLogger) Fatalf(format string, args ...interface{}) {
	z.logger.Fatalf(format, args...)
}

// NewZapLogger creates a ZapLogger writing console-encoded lines to stderr
// at info level.
func NewZapLogger() *ZapLogger {
	encoderConfig := zapcore.EncoderConfig{
		TimeKey:        "T",
		LevelKey:       "L",
		NameKey:        "N",
		CallerKey:      "C",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "M",
		StacktraceKey:  "S",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.TimeEncoderOfLayout("2006-01-02 15:04:05.000"),
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(os.Stderr),
		zap.NewAtomicLevelAt(zapcore.InfoLevel),
	)

	// Caller skip 2 so log sites report the caller of the Logger interface.
	logger := zap.New(
		core,
		zap.AddCaller(),
		zap.AddCallerSkip(2),
	)

	return &ZapLogger{logger: logger.Sugar()}
}
