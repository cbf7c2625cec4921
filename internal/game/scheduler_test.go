package game

import (
	"testing"
	"time"
)

func TestSchedulerFires(t *testing.T) {
	s := NewScheduler()
	fired := make(chan struct{}, 1)

	s.Schedule(5*time.Millisecond, func() { fired <- struct{}{} })

	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled task never fired")
	}
	if s.Pending() {
		t.Error("nothing should be pending after the task ran")
	}
}

func TestSchedulerCancelPreventsFire(t *testing.T) {
	s := NewScheduler()
	fired := make(chan struct{}, 1)

	s.Schedule(20*time.Millisecond, func() { fired <- struct{}{} })
	s.Cancel()

	select {
	case <-fired:
		t.Fatal("cancelled task fired anyway")
	case <-time.After(100 * time.Millisecond):
	}
	if s.Pending() {
		t.Error("cancel left a task pending")
	}
}

func TestSchedulerRescheduleSupersedes(t *testing.T) {
	s := NewScheduler()
	fired := make(chan int, 2)

	s.Schedule(20*time.Millisecond, func() { fired <- 1 })
	s.Schedule(20*time.Millisecond, func() { fired <- 2 })

	select {
	case got := <-fired:
		if got != 2 {
			t.Fatalf("superseded task fired first: got %d", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no task fired")
	}

	// The first task must never fire, even after its own delay.
	select {
	case got := <-fired:
		t.Fatalf("stale task fired late: got %d", got)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSchedulerCancelIdempotent(t *testing.T) {
	s := NewScheduler()

	s.Cancel()
	s.Cancel()

	s.Schedule(10*time.Millisecond, func() {})
	s.Cancel()
	s.Cancel()

	if s.Pending() {
		t.Error("cancel left a task pending")
	}
}
