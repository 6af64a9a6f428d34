package logger

import (
	"testing"

	"go.uber.org/zap"
)

func TestNewLevels(t *testing.T) {
	log, err := New(false)
	if err != nil {
		t.Fatal(err)
	}
	if log.Core().Enabled(zap.DebugLevel) {
		t.Error("debug enabled without --debug")
	}
	if !log.Core().Enabled(zap.InfoLevel) {
		t.Error("info disabled")
	}

	log, err = New(true)
	if err != nil {
		t.Fatal(err)
	}
	if !log.Core().Enabled(zap.DebugLevel) {
		t.Error("debug disabled with --debug")
	}
}
