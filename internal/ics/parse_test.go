package ics

import (
	"errors"
	"strings"
	"testing"
	"time"
	_ "time/tzdata" // TZID resolution must not depend on host zoneinfo
)

func wrapCalendar(events string) []byte {
	return []byte("BEGIN:VCALENDAR\nVERSION:2.0\nPRODID:-//ics2md//EN\n" + events + "END:VCALENDAR\n")
}

func TestParseDocumentOrder(t *testing.T) {
	body := wrapCalendar(
		"BEGIN:VEVENT\nUID:a\nSUMMARY:First\nDTSTART:20300101T100000Z\nEND:VEVENT\n" +
			"BEGIN:VEVENT\nUID:b\nSUMMARY:Second\nDTSTART:20290101T100000Z\nEND:VEVENT\n" +
			"BEGIN:VEVENT\nUID:c\nSUMMARY:Third\nDTSTART:20310101T100000Z\nEND:VEVENT\n")

	events, err := Parse(body)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}
	for i, want := range []string{"First", "Second", "Third"} {
		if events[i].Summary != want {
			t.Fatalf("event %d: got summary %q, want %q", i, events[i].Summary, want)
		}
	}
}

func TestParseUTCDateTime(t *testing.T) {
	body := wrapCalendar("BEGIN:VEVENT\nUID:u\nSUMMARY:Review\nDTSTART:20300615T090000Z\nEND:VEVENT\n")

	events, err := Parse(body)
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2030, 6, 15, 9, 0, 0, 0, time.UTC)
	if !events[0].Start.Equal(want) {
		t.Fatalf("got start %v, want %v", events[0].Start, want)
	}
	if events[0].AllDay {
		t.Fatal("date-time event marked all-day")
	}
}

func TestParseTZID(t *testing.T) {
	body := wrapCalendar("BEGIN:VEVENT\nUID:p\nSUMMARY:Paris\nDTSTART;TZID=Europe/Paris:20300615T090000\nEND:VEVENT\n")

	events, err := Parse(body)
	if err != nil {
		t.Fatal(err)
	}
	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2030, 6, 15, 9, 0, 0, 0, paris)
	if !events[0].Start.Equal(want) {
		t.Fatalf("got start %v, want %v", events[0].Start, want)
	}
	if events[0].StartTZ != "Europe/Paris" {
		t.Fatalf("got tz %q, want Europe/Paris", events[0].StartTZ)
	}
}

func TestParseAllDay(t *testing.T) {
	cases := map[string]string{
		"explicit value param": "BEGIN:VEVENT\nUID:d\nSUMMARY:Launch\nDTSTART;VALUE=DATE:20300701\nEND:VEVENT\n",
		"bare date value":      "BEGIN:VEVENT\nUID:d\nSUMMARY:Launch\nDTSTART:20300701\nEND:VEVENT\n",
	}
	want := time.Date(2030, 7, 1, 0, 0, 0, 0, time.UTC)

	for name, vevent := range cases {
		events, err := Parse(wrapCalendar(vevent))
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !events[0].AllDay {
			t.Fatalf("%s: event not marked all-day", name)
		}
		if !events[0].Start.Equal(want) {
			t.Fatalf("%s: got start %v, want UTC midnight %v", name, events[0].Start, want)
		}
	}
}

func TestParseFloatingTimeRejected(t *testing.T) {
	body := wrapCalendar("BEGIN:VEVENT\nUID:f\nSUMMARY:Floaty\nDTSTART:20300615T090000\nEND:VEVENT\n")

	_, err := Parse(body)
	if !errors.Is(err, ErrFloatingTime) {
		t.Fatalf("got %v, want ErrFloatingTime", err)
	}
	if !strings.Contains(err.Error(), "uid=\"f\"") {
		t.Fatalf("error %q does not name the offending event", err)
	}
}

func TestParseUnknownTZID(t *testing.T) {
	body := wrapCalendar("BEGIN:VEVENT\nUID:z\nSUMMARY:Nowhere\nDTSTART;TZID=Not/AZone:20300615T090000\nEND:VEVENT\n")

	if _, err := Parse(body); err == nil {
		t.Fatal("expected error for unresolvable TZID")
	}
}

func TestParseMissingDTStart(t *testing.T) {
	body := wrapCalendar("BEGIN:VEVENT\nUID:m\nSUMMARY:No Start\nEND:VEVENT\n")

	_, err := Parse(body)
	if err == nil || !strings.Contains(err.Error(), "missing DTSTART") {
		t.Fatalf("got %v, want missing DTSTART error", err)
	}
}

func TestParseEmptySummary(t *testing.T) {
	body := wrapCalendar("BEGIN:VEVENT\nUID:s\nDTSTART:20300615T090000Z\nEND:VEVENT\n")

	events, err := Parse(body)
	if err != nil {
		t.Fatal(err)
	}
	if events[0].Summary != "" {
		t.Fatalf("got summary %q, want empty", events[0].Summary)
	}
}

func TestParseEmptyCalendar(t *testing.T) {
	events, err := Parse(wrapCalendar(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Fatalf("got %d events, want 0", len(events))
	}
}

func TestParseBadInput(t *testing.T) {
	for name, body := range map[string][]byte{
		"empty":   nil,
		"garbage": []byte("this is not a calendar\n"),
	} {
		if _, err := Parse(body); err == nil {
			t.Fatalf("%s: expected parse error", name)
		}
	}
}
