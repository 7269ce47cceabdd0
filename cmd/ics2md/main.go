package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"ics2md/internal/config"
	"ics2md/internal/ics"
	appLog "ics2md/internal/log"
	"ics2md/internal/task"
)

func main() {
	if err := run(os.Args[1:], time.Now().UTC(), os.Stdout); err != nil {
		appLog.Error("ics2md failed", err)
		os.Exit(1)
	}
}

// run executes one convert pass: read the calendar at args[0], keep the
// events starting strictly after now, and write one checklist line per
// event. now is an explicit parameter so tests can pin the reference
// instant; main passes the current UTC time.
func run(args []string, now time.Time, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("usage: ics2md <calendar.ics>")
	}

	conf, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}
	level, err := appLog.ParseLevel(conf.LogLevel)
	if err != nil {
		return err
	}
	appLog.SetLevel(level)
	appLog.Debug("effective config",
		"use_american_format", conf.UseAmericanFormat,
		"horizon_days", conf.HorizonDays,
		"log_level", conf.LogLevel,
	)

	body, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read calendar: %w", err)
	}
	events, err := ics.Parse(body)
	if err != nil {
		return err
	}

	future := task.Future(events, now, conf.Horizon())

	order := task.DayFirst
	if conf.UseAmericanFormat {
		order = task.YearFirst
	}
	for _, e := range future {
		if _, err := fmt.Fprintln(stdout, task.FromEvent(e).Line(order)); err != nil {
			return fmt.Errorf("write checklist: %w", err)
		}
	}

	appLog.Info("calendar converted", "events", len(events), "future", len(future))
	return nil
}
