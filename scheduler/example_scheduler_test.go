package scheduler_test

import (
	"context"
	"fmt"
	"time"

	"github.com/plus3/ledblocks/scheduler"
)

// ExampleScheduler drives two tasks by hand. Each Step stands in for one
// timer interrupt: it marks both tasks pending and runs each of them once.
func ExampleScheduler() {
	s := scheduler.New()

	s.Register(0x01, scheduler.TaskFunc(func(frame *scheduler.Frame) {
		fmt.Println("display", frame.Tick)
	}))
	s.Register(0x02, scheduler.TaskFunc(func(frame *scheduler.Frame) {
		fmt.Println("buttons", frame.Tick)
	}))

	s.Step()
	s.Step()

	// Output:
	// display 1
	// buttons 1
	// display 2
	// buttons 2
}

// ExampleScheduler_Run runs the scheduler off a real ticker until the context
// is cancelled.
func ExampleScheduler_Run() {
	s := scheduler.New()
	s.Register(0x01, scheduler.TaskFunc(func(*scheduler.Frame) {}))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s.Run(ctx, 5*time.Millisecond)

	fmt.Println("Scheduler stopped")
	// Output:
	// Scheduler stopped
}
