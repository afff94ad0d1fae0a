package domain

import "time"

// TaskStatistics tracks when a task was worked on and for how long.
// WasStartedAt remembers the first entry into in_progress and is never
// overwritten; WasTakenAt tracks the most recent entry.
type TaskStatistics struct {
	WasStartedAt *time.Time
	WasTakenAt   *time.Time
	WasStoppedAt *time.Time
	LastsMinutes int
}

type statusPair struct {
	from TaskStatus
	to   TaskStatus
}

type transitionEffect func(s *TaskStatistics, now time.Time)

// transitionEffects maps every status change with a statistics side effect.
// Pairs not present here (including old == new) leave statistics untouched.
var transitionEffects = map[statusPair]transitionEffect{
	{TaskStatusPending, TaskStatusInProgress}: enterProgress,
	{TaskStatusDone, TaskStatusInProgress}:    enterProgress,
	{TaskStatusBlocked, TaskStatusInProgress}: enterProgress,

	{TaskStatusInProgress, TaskStatusPending}: leaveProgress,
	{TaskStatusInProgress, TaskStatusDone}:    leaveProgress,
	{TaskStatusInProgress, TaskStatusBlocked}: leaveProgress,
}

func enterProgress(s *TaskStatistics, now time.Time) {
	taken := now
	s.WasTakenAt = &taken
	if s.WasStartedAt == nil {
		started := now
		s.WasStartedAt = &started
	}
}

func leaveProgress(s *TaskStatistics, now time.Time) {
	stopped := now
	s.WasStoppedAt = &stopped
	if s.WasTakenAt != nil {
		elapsed := now.Sub(*s.WasTakenAt)
		if elapsed > 0 {
			s.LastsMinutes += int(elapsed.Minutes())
		}
	}
}

// ApplyStatusChange applies the statistics side effect of moving a task
// from one status to another at the given instant.
func (s *TaskStatistics) ApplyStatusChange(from, to TaskStatus, now time.Time) {
	if from == to {
		return
	}
	if effect, ok := transitionEffects[statusPair{from, to}]; ok {
		effect(s, now)
	}
}

// AddMinutes applies a manual correction to the accumulated working time.
// Negative values are ignored.
func (s *TaskStatistics) AddMinutes(minutes int) {
	if minutes > 0 {
		s.LastsMinutes += minutes
	}
}
