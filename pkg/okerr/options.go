package okerr

import (
	"context"

	"github.com/apex/log"
)

type OptionKey string

const (
	LoggerOptionKey OptionKey = "logger_options"
)

type LoggerOptions struct {
	Logger log.Interface
}

// WithLogger attaches a logger used by adapters and deferred values started
// with the returned context. Sync adapters see it through ResultifyContext.
func WithLogger(ctx context.Context, logger log.Interface) context.Context {
	return context.WithValue(ctx, LoggerOptionKey, LoggerOptions{Logger: logger})
}

// LoggerFrom returns the logger attached by WithLogger, or apex's package
// logger. Everything logged by this module is at debug level.
func LoggerFrom(ctx context.Context) log.Interface {
	if ctx != nil {
		options, ok := ctx.Value(LoggerOptionKey).(LoggerOptions)
		if ok && options.Logger != nil {
			return options.Logger
		}
	}
	return log.Log
}
