package version

import (
	"strings"
	"testing"
)

func withBuildDate(t *testing.T, date string) {
	t.Helper()
	old := BuildDate
	BuildDate = date
	t.Cleanup(func() { BuildDate = old })
}

func TestGetWithoutBuildDate(t *testing.T) {
	withBuildDate(t, "")

	info := Get()
	if info.Calculated {
		t.Error("empty BuildDate must not calculate an ID")
	}
	if info.Error == "" {
		t.Error("expected an error description")
	}
}

func TestGetCalculatesDaysSinceEpoch(t *testing.T) {
	withBuildDate(t, "2024-11-11")

	info := Get()
	if !info.Calculated {
		t.Fatalf("not calculated: %s", info.Error)
	}
	if info.BuildID != 10 {
		t.Errorf("build id = %d, want 10", info.BuildID)
	}
}

func TestGetRejectsDateBeforeEpoch(t *testing.T) {
	withBuildDate(t, "2024-10-01")

	if info := Get(); info.Calculated {
		t.Error("date before epoch must not calculate")
	}
}

func TestStringFallsBackToUnknown(t *testing.T) {
	withBuildDate(t, "not-a-date")

	if s := String(); !strings.HasPrefix(s, "Build unknown") {
		t.Errorf("String() = %q", s)
	}
}
