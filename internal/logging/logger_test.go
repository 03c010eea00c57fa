package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
)

func TestSetLogLevel(t *testing.T) {
	defer GetLogger().SetLevel(logrus.InfoLevel)

	if err := SetLogLevel("debug"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := GetLogger().GetLevel(); got != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %v", got)
	}
	if err := SetLogLevel("loud"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
	if got := GetLogger().GetLevel(); got != logrus.DebugLevel {
		t.Fatalf("expected level unchanged after bad input, got %v", got)
	}
}
