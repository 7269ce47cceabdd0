// Package task turns calendar events into markdown checklist tasks of
// the form "- [ ] name dd/mm/yyyy", the vault convention for a to-do
// with a due date.
package task

import (
	"time"

	"ics2md/internal/model"
)

// DateOrder selects the token order for rendered due dates.
type DateOrder int

const (
	// DayFirst renders dd/mm/yyyy, the default due-date convention.
	DayFirst DateOrder = iota
	// YearFirst renders yyyy/mm/dd, the american-format convention.
	YearFirst
)

// Task is one checklist entry: an event name and the date it is due.
type Task struct {
	Name string
	Due  time.Time
}

// FromEvent derives the task for a calendar event.
func FromEvent(e model.Event) Task {
	return Task{Name: e.Summary, Due: e.Start}
}

// Line renders the task as an unchecked markdown checklist item: the
// checkbox marker, the name, and the zero-padded due date, separated by
// single spaces. Time of day is dropped, and the date is written in the
// event's own timezone rather than converted.
func (t Task) Line(order DateOrder) string {
	layout := "02/01/2006"
	if order == YearFirst {
		layout = "2006/01/02"
	}
	return "- [ ] " + t.Name + " " + t.Due.Format(layout)
}
