// Tencent is pleased to support the open source community by making trpc-accept available.
//
// Copyright (C) 2025 Tencent.  All rights reserved.
//
// trpc-accept is licensed under the Apache License Version 2.0.

package accept

import (
	"trpc.group/trpc-go/trpc-accept/internal/log"
)

// Logger defines the logging interface used by the negotiation middleware.
type Logger interface {
	Debug(args ...interface{})
	Debugf(format string, args ...interface{})
	Info(args ...interface{})
	Infof(format string, args ...interface{})
	Warn(args ...interface{})
	Warnf(format string, args ...interface{})
	Error(args ...interface{})
	Errorf(format string, args ...interface{})
	Fatal(args ...interface{})
	Fatalf(format string, args ...interface{})
}

// NewZapLogger returns a Logger backed by zap, hiding the zap details.
func NewZapLogger() Logger {
	return log.NewZapLogger()
}

var (
	defaultLogger Logger = NewZapLogger()
)

// SetDefaultLogger sets the global default logger.
func SetDefaultLogger(l Logger) {
	defaultLogger = l
}

// GetDefaultLogger returns the global default logger.
func GetDefaultLogger() Logger {
	return defaultLogger
}
