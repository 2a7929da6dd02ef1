package model

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestIsActiveNoDeadline(t *testing.T) {
	l := Listing{CompanyName: "Acme"}
	if !l.IsActive(date(2025, time.March, 1)) {
		t.Fatalf("listing without deadline must be active")
	}
}

func TestIsActivePastDeadline(t *testing.T) {
	dl := date(2025, time.February, 28)
	l := Listing{Deadline: &dl}
	if l.IsActive(date(2025, time.March, 1)) {
		t.Fatalf("listing with yesterday's deadline must be inactive")
	}
}

func TestIsActiveDeadlineToday(t *testing.T) {
	dl := date(2025, time.March, 1)
	l := Listing{Deadline: &dl}
	if !l.IsActive(date(2025, time.March, 1)) {
		t.Fatalf("deadline on the current day is inclusive")
	}
}

func TestIsActiveFutureDeadline(t *testing.T) {
	dl := date(2025, time.March, 10)
	l := Listing{Deadline: &dl}
	if !l.IsActive(date(2025, time.March, 1)) {
		t.Fatalf("listing with future deadline must be active")
	}
}

func TestIsActiveIgnoresTimeOfDay(t *testing.T) {
	// Deadline stored at midnight, "now" late in the evening of the same day.
	dl := date(2025, time.March, 1)
	l := Listing{Deadline: &dl}
	now := time.Date(2025, time.March, 1, 23, 59, 0, 0, time.UTC)
	if !l.IsActive(now) {
		t.Fatalf("comparison must use calendar dates, not timestamps")
	}
}
