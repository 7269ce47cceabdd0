package ics

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"

	appLog "ics2md/internal/log"
	"ics2md/internal/model"
)

// ErrFloatingTime reports a DTSTART date-time that carries neither a UTC
// designator nor a TZID parameter. Comparing such a value against an
// absolute instant would mean silently assuming a zone, so parsing fails
// instead.
var ErrFloatingTime = errors.New("floating date-time without timezone")

// Parse converts a raw ICS payload into events, preserving document
// order. ICS grammar (line unfolding, escaping, component and property
// structure) is handled entirely by github.com/arran4/golang-ical; this
// function only extracts the fields the converter consumes.
func Parse(body []byte) ([]model.Event, error) {
	if len(body) == 0 {
		return nil, errors.New("empty calendar body")
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse calendar: %w", err)
	}

	comps := cal.Events()
	events := make([]model.Event, 0, len(comps))
	for _, ve := range comps {
		ev, perr := parseVEvent(ve)
		if perr != nil {
			return nil, perr
		}
		events = append(events, ev)
	}

	appLog.Info("calendar parsed", "event_count", len(events))
	return events, nil
}

func parseVEvent(ve *ical.VEvent) (model.Event, error) {
	var out model.Event

	if p := ve.GetProperty(ical.ComponentPropertyUniqueId); p != nil {
		out.UID = p.Value
	}
	if p := ve.GetProperty(ical.ComponentPropertySummary); p != nil {
		out.Summary = p.Value
	}

	dtStart := ve.GetProperty(ical.ComponentPropertyDtStart)
	if dtStart == nil {
		return out, fmt.Errorf("event uid=%q summary=%q: missing DTSTART", out.UID, out.Summary)
	}
	value := strings.TrimSpace(dtStart.Value)

	// DATE values have no time part. VALUE=DATE makes it explicit; a
	// value without 'T' means the same thing.
	allDay := !strings.Contains(value, "T")
	if params := dtStart.ICalParameters; params != nil {
		if vs, ok := params["VALUE"]; ok && len(vs) > 0 && strings.EqualFold(vs[0], "DATE") {
			allDay = true
		}
		if tzs, ok := params["TZID"]; ok && len(tzs) > 0 {
			out.StartTZ = tzs[0]
		}
	}

	start, err := resolveStart(value, out.StartTZ, allDay)
	if err != nil {
		return out, fmt.Errorf("event uid=%q: %w", out.UID, err)
	}

	out.Start = start
	out.AllDay = allDay
	return out, nil
}

// resolveStart converts a DTSTART value into an absolute instant.
//
// Date-only values become midnight UTC: the source carries no zone for
// them, and UTC midnight keeps them comparable against the UTC reference
// instant. A local date-time without a TZID is rejected with
// ErrFloatingTime rather than being pinned to an arbitrary zone.
func resolveStart(value, tzid string, allDay bool) (time.Time, error) {
	if allDay {
		t, err := time.Parse("20060102", value)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse DTSTART date %q: %w", value, err)
		}
		return t, nil
	}

	if strings.HasSuffix(value, "Z") {
		t, err := time.Parse("20060102T150405Z", value)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse DTSTART %q: %w", value, err)
		}
		return t, nil
	}

	if tzid == "" {
		return time.Time{}, fmt.Errorf("DTSTART %q: %w", value, ErrFloatingTime)
	}
	loc, err := time.LoadLocation(tzid)
	if err != nil {
		return time.Time{}, fmt.Errorf("resolve TZID %q: %w", tzid, err)
	}
	t, err := time.ParseInLocation("20060102T150405", value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse DTSTART %q: %w", value, err)
	}
	return t, nil
}
