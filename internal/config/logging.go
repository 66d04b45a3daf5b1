package config

import "github.com/Faultbox/projective/internal/logger"

// Options converts the logging section into logger options.
func (l LoggingConfig) Options() logger.Options {
	opts := logger.DefaultOptions()
	opts.Level = l.Level
	opts.File = l.LogFile
	if l.MaxSizeMB > 0 {
		opts.MaxSizeMB = l.MaxSizeMB
	}
	if l.MaxBackups > 0 {
		opts.MaxBackups = l.MaxBackups
	}
	if l.MaxAgeDays > 0 {
		opts.MaxAgeDays = l.MaxAgeDays
	}
	return opts
}
