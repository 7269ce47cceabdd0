package task

import (
	"time"

	appLog "ics2md/internal/log"
	"ics2md/internal/model"
)

// Future returns the events that start strictly after now, preserving
// input order. An event starting exactly at now is excluded. A positive
// horizon additionally drops events starting later than now+horizon;
// zero means no upper bound.
func Future(events []model.Event, now time.Time, horizon time.Duration) []model.Event {
	kept := make([]model.Event, 0, len(events))
	for _, e := range events {
		if !e.Start.After(now) {
			appLog.Debug("event not in the future, dropped", "uid", e.UID, "start", e.Start)
			continue
		}
		if horizon > 0 && e.Start.After(now.Add(horizon)) {
			appLog.Debug("event beyond horizon, dropped", "uid", e.UID, "start", e.Start)
			continue
		}
		kept = append(kept, e)
	}
	return kept
}
