package model

import "time"

// Listing mirrors the `details` table.  Created and Deadline are DATE
// columns; Deadline is nullable and a nil pointer means the listing has no
// deadline at all.
type Listing struct {
	ID              uint64     // details.id
	Location        string     // details.location
	CompanyName     string     // details.companyName
	Designation     string     // details.designation
	Description     string     // details.description
	Image           string     // details.image
	Created         time.Time  // details.created
	Deadline        *time.Time // details.deadline (nil = no deadline)
	ApplicationLink string     // details.applicationLink
	Salary          string     // details.salary
	Batch           string     // details.batch
}

// IsActive reports whether the listing should appear in the public feed.
// A listing is active when it has no deadline, or when its deadline has not
// yet passed.  The comparison is between calendar dates, inclusive: a
// listing whose deadline is today is still active.
func (l *Listing) IsActive(today time.Time) bool {
	if l.Deadline == nil {
		return true
	}
	return !DateOnly(*l.Deadline).Before(DateOnly(today))
}

// DateOnly truncates t to its calendar date at midnight UTC.  Deadline
// checks must not depend on the time-of-day portion of a timestamp.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
