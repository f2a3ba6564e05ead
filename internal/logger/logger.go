// Package logger holds the process-wide zap logger.
package logger

import "go.uber.org/zap"

// Log is usable before Init and discards everything until then.
var Log = zap.NewNop()

// Init replaces Log with a development logger when debug is set and a
// production logger otherwise.
func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}

// Sync flushes buffered entries. The error is dropped because syncing
// stderr fails on some terminals.
func Sync() {
	_ = Log.Sync()
}
