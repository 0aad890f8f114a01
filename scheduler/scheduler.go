// Package scheduler runs cooperative tasks off a periodic trigger.
//
// The trigger plays the role of a timer interrupt: it counts down the
// scheduler's timers and marks every registered task as pending in a shared
// bit mask. Once, called from a single goroutine, clears each task's bit with
// one atomic read-modify-write and executes the task if its bit was set.
// Trigger is the only method that may be called concurrently with the others.
package scheduler

import (
	"context"
	"fmt"
	"math/bits"
	"reflect"
	"sync/atomic"
	"time"
)

// TaskBit is the bit a task owns in the pending mask.
type TaskBit uint32

// Task is executed at most once per trigger.
type Task interface {
	Execute(frame *Frame)
}

// TaskFunc adapts a function to the Task interface.
type TaskFunc func(frame *Frame)

func (f TaskFunc) Execute(frame *Frame) {
	f(frame)
}

// Frame is passed to every task executed by one call to Once.
type Frame struct {
	// Tick is the number of triggers seen so far.
	Tick   uint64
	Timers *Timers
}

// Stats provides statistics about scheduler execution.
type Stats struct {
	TaskCount       int
	Triggers        uint64
	TotalExecutions int64
	Tasks           []TaskStats
}

// TaskStats provides execution statistics for a single task.
type TaskStats struct {
	Name           string
	Bit            TaskBit
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type taskStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type registeredTask struct {
	bit   TaskBit
	task  Task
	stats *taskStatsInternal
}

// Scheduler manages and executes tasks in registration order.
type Scheduler struct {
	pending atomic.Uint32
	mask    atomic.Uint32
	ticks   atomic.Uint64
	wake    chan struct{}
	timers  *Timers
	tasks   []registeredTask
}

// New creates a scheduler without tasks.
func New() *Scheduler {
	return &Scheduler{
		wake:   make(chan struct{}, 1),
		timers: newTimers(),
	}
}

// Register adds a task owning bit. Tasks must be registered before Run is
// started. Register panics if bit is not a single bit or is already taken.
func (s *Scheduler) Register(bit TaskBit, task Task) {
	if bits.OnesCount32(uint32(bit)) != 1 {
		panic(fmt.Sprintf("scheduler: task bit %#x must have exactly one bit set", uint32(bit)))
	}
	if s.mask.Load()&uint32(bit) != 0 {
		panic(fmt.Sprintf("scheduler: task bit %#x already registered", uint32(bit)))
	}

	taskType := reflect.TypeOf(task)
	if taskType.Kind() == reflect.Ptr {
		taskType = taskType.Elem()
	}

	s.tasks = append(s.tasks, registeredTask{
		bit:  bit,
		task: task,
		stats: &taskStatsInternal{
			name:        taskType.Name(),
			minDuration: time.Duration(1<<63 - 1),
		},
	})
	s.mask.Or(uint32(bit))
}

// Timers returns the countdown timers decremented by Trigger.
func (s *Scheduler) Timers() *Timers {
	return s.timers
}

// Trigger counts down the timers and marks every registered task pending.
// It is safe to call from any goroutine.
func (s *Scheduler) Trigger() {
	s.ticks.Add(1)
	s.timers.countDown()
	s.pending.Or(s.mask.Load())

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

// Pending returns the bits of tasks waiting to run.
func (s *Scheduler) Pending() TaskBit {
	return TaskBit(s.pending.Load())
}

// Once executes every pending task once and returns how many ran.
func (s *Scheduler) Once() int {
	frame := &Frame{
		Tick:   s.ticks.Load(),
		Timers: s.timers,
	}

	executed := 0
	for _, entry := range s.tasks {
		bit := uint32(entry.bit)
		if s.pending.And(^bit)&bit == 0 {
			continue
		}

		start := time.Now()
		entry.task.Execute(frame)
		duration := time.Since(start)
		executed++

		stats := entry.stats
		stats.executionCount++
		stats.lastDuration = duration
		stats.totalDuration += duration

		if duration < stats.minDuration {
			stats.minDuration = duration
		}
		if duration > stats.maxDuration {
			stats.maxDuration = duration
		}
	}

	return executed
}

// Step triggers and then drains, as one timer period with no other work
// queued. Useful for driving the scheduler from an external loop.
func (s *Scheduler) Step() int {
	s.Trigger()
	return s.Once()
}

// Run triggers at the given interval from a background goroutine and executes
// pending tasks on the calling goroutine until the context is cancelled.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)

	go func() {
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				s.Trigger()
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.wake:
			s.Once()
		}
	}
}

// GetStats returns statistics about task execution.
func (s *Scheduler) GetStats() *Stats {
	stats := &Stats{
		TaskCount: len(s.tasks),
		Triggers:  s.ticks.Load(),
		Tasks:     make([]TaskStats, len(s.tasks)),
	}

	var totalExecs int64
	for i, entry := range s.tasks {
		internal := entry.stats
		avgDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
		}

		stats.Tasks[i] = TaskStats{
			Name:           internal.name,
			Bit:            entry.bit,
			ExecutionCount: internal.executionCount,
			MinDuration:    internal.minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
