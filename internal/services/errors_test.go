package services_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"vidmatch/internal/services"
)

func TestWrapIncludesContext(t *testing.T) {
	base := errors.New("boom")
	err := services.Wrap(services.ErrConfiguration, "config", "load", "failed", base)
	if err == nil {
		t.Fatal("expected error")
	}
	if !errors.Is(err, services.ErrConfiguration) {
		t.Fatalf("expected marker to be retained, got %v", err)
	}
	if !errors.Is(err, base) {
		t.Fatalf("expected wrapped error to contain base error, got %v", err)
	}
	msg := err.Error()
	for _, fragment := range []string{"config", "load", "failed"} {
		if !strings.Contains(msg, fragment) {
			t.Fatalf("expected %q in error string %q", fragment, msg)
		}
	}
}

func TestWrapWithoutMarker(t *testing.T) {
	err := services.Wrap(nil, "", "", "", nil)
	if err == nil || err.Error() != "service failure" {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestExitCodeMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, services.ExitOK},
		{"config", services.Wrap(services.ErrConfiguration, "config", "load", "bad", nil), services.ExitUsage},
		{"validation", services.Wrap(services.ErrValidation, "catalog", "load", "bad", nil), services.ExitUsage},
		{"cancelled", fmt.Errorf("match: %w", context.Canceled), services.ExitCancelled},
		{"other", errors.New("io"), services.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := services.ExitCode(tt.err); got != tt.want {
				t.Fatalf("ExitCode = %d, want %d", got, tt.want)
			}
		})
	}
}
