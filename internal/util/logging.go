// Package util provides common utilities including logging helpers,
// file system operations, and string matching functions.
package util

import "go.uber.org/zap"

// LogError logs an error with context if it is non-nil.
func LogError(logger *zap.Logger, context string, err error) {
	if err != nil && logger != nil {
		logger.Error(context, zap.Error(err))
	}
}
