package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestInitCanSwitchModes(t *testing.T) {
	defer func(l *zap.Logger) { Log = l }(Log)

	if err := Init(false); err != nil {
		t.Fatalf("Init(false): %v", err)
	}
	if Log.Core().Enabled(zap.DebugLevel) {
		t.Error("production logger has debug enabled")
	}

	if err := Init(true); err != nil {
		t.Fatalf("Init(true): %v", err)
	}
	if !Log.Core().Enabled(zap.DebugLevel) {
		t.Error("development logger has debug disabled")
	}
}
