// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/danielhkuo/qotd/cliparse"
)

// Trigger name constants
const (
	TriggerPurge       = "purge"
	TriggerPreAnnounce = "preannounce"
	TriggerPost        = "post"
	TriggerWarn        = "warn"
	TriggerClose       = "close"
	TriggerVoteOpen    = "vote-open"
	TriggerVoteClose   = "vote-close"
)

// Clock abstracts wall-clock time so the schedule can be driven in tests.
type Clock interface {
	Now() time.Time
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// RealClock is the production clock.
var RealClock Clock = realClock{}

// Schedule holds the daily post instant and the phase offsets around it.
type Schedule struct {
	PostHour   int
	PostMinute int

	PurgeBefore       time.Duration
	PreAnnounceBefore time.Duration
	WarnAfter         time.Duration
	CloseAfter        time.Duration
	VoteOpenAfter     time.Duration
	VoteCloseAfter    time.Duration
}

// ScheduleFromConfig lifts the parsed flags into a Schedule.
func ScheduleFromConfig(cfg cliparse.Config) (Schedule, error) {
	postAt, err := time.Parse("15:04", cfg.PostTime)
	if err != nil {
		return Schedule{}, fmt.Errorf("invalid post time: %w", err)
	}
	return Schedule{
		PostHour:          postAt.Hour(),
		PostMinute:        postAt.Minute(),
		PurgeBefore:       cfg.PurgeBefore,
		PreAnnounceBefore: cfg.PreAnnounceBefore,
		WarnAfter:         cfg.WarnAfter,
		CloseAfter:        cfg.CloseAfter,
		VoteOpenAfter:     cfg.VoteOpenAfter,
		VoteCloseAfter:    cfg.VoteCloseAfter,
	}, nil
}

// postInstant returns the post time on the same calendar day as d.
func (s Schedule) postInstant(d time.Time) time.Time {
	y, m, day := d.Date()
	return time.Date(y, m, day, s.PostHour, s.PostMinute, 0, 0, d.Location())
}

// Firing is one scheduled trigger instant. PostAt is the post instant of
// the day the trigger belongs to.
type Firing struct {
	Name   string
	At     time.Time
	PostAt time.Time
}

// firingsFor lists the day's triggers in order.
func (s Schedule) firingsFor(postAt time.Time) []Firing {
	return []Firing{
		{TriggerPurge, postAt.Add(-s.PurgeBefore), postAt},
		{TriggerPreAnnounce, postAt.Add(-s.PreAnnounceBefore), postAt},
		{TriggerPost, postAt, postAt},
		{TriggerWarn, postAt.Add(s.WarnAfter), postAt},
		{TriggerClose, postAt.Add(s.CloseAfter), postAt},
		{TriggerVoteOpen, postAt.Add(s.VoteOpenAfter), postAt},
		{TriggerVoteClose, postAt.Add(s.VoteCloseAfter), postAt},
	}
}

// Next returns the earliest trigger strictly after now. Triggers whose
// instant has already passed are simply missed; there is no catch-up.
func (s Schedule) Next(now time.Time) Firing {
	for _, day := range []time.Time{now.AddDate(0, 0, -1), now, now.AddDate(0, 0, 1)} {
		for _, f := range s.firingsFor(s.postInstant(day)) {
			if f.At.After(now) {
				return f
			}
		}
	}
	// Unreachable: tomorrow's purge is always in the future.
	return Firing{Name: TriggerPurge, At: s.postInstant(now.AddDate(0, 0, 1))}
}

// Scheduler fires the daily triggers against a DayCycle. One bad trigger
// never wedges the loop: cycle methods log their own failures and return.
type Scheduler struct {
	cycle *DayCycle
	sched Schedule
	clock Clock
}

// NewScheduler wires a schedule to a cycle. A nil clock means wall time.
func NewScheduler(c *DayCycle, s Schedule, clock Clock) *Scheduler {
	if clock == nil {
		clock = RealClock
	}
	return &Scheduler{cycle: c, sched: s, clock: clock}
}

// Run blocks until the context is cancelled, firing each trigger at its
// instant. If the process was down at a trigger time, that transition is
// skipped for the day.
func (s *Scheduler) Run(ctx context.Context) {
	for {
		now := s.clock.Now()
		next := s.sched.Next(now)
		timer := time.NewTimer(next.At.Sub(now))

		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-timer.C:
			s.Fire(next)
		}
	}
}

// FireNow runs a trigger immediately, anchored to today's post instant.
// This is the admin test path: the same transitions the daily schedule
// drives, just fired by hand.
func (s *Scheduler) FireNow(name string) error {
	switch name {
	case TriggerPurge, TriggerPreAnnounce, TriggerPost, TriggerWarn,
		TriggerClose, TriggerVoteOpen, TriggerVoteClose:
	default:
		return fmt.Errorf("unknown trigger %q", name)
	}
	now := s.clock.Now()
	s.Fire(Firing{Name: name, At: now, PostAt: s.sched.postInstant(now)})
	return nil
}

// Fire dispatches one trigger to the cycle.
func (s *Scheduler) Fire(f Firing) {
	slog.Info("trigger fired", "trigger", f.Name, "at", f.At)
	switch f.Name {
	case TriggerPurge:
		s.cycle.Purge()
	case TriggerPreAnnounce:
		s.cycle.PreAnnounce(f.PostAt)
	case TriggerPost:
		s.cycle.Post(f.PostAt)
	case TriggerWarn:
		s.cycle.Warn(f.PostAt.Add(s.sched.CloseAfter))
	case TriggerClose:
		s.cycle.Close()
	case TriggerVoteOpen:
		s.cycle.VoteOpen()
	case TriggerVoteClose:
		s.cycle.VoteClose(f.PostAt)
	default:
		slog.Error("unknown trigger", "trigger", f.Name)
	}
}
