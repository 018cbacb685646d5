package bench

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSchedule is returned when a schedule cannot produce any runs
var ErrInvalidSchedule = errors.New("invalid schedule")

const (
	// DefaultStartThreads is the first thread count of the default schedule
	DefaultStartThreads = 1
	// DefaultMaxThreads is the largest thread count of the default schedule
	DefaultMaxThreads = 128
	// DefaultIterations is how often each thread count is run
	DefaultIterations = 1
)

// Step is one entry of a run schedule: a thread count and how many times to
// run it.
type Step struct {
	Threads     int `json:"threads"`
	Repetitions int `json:"repetitions"`
}

// Schedule doubles the thread count from Start up to and including Max,
// running each count Iterations times.
type Schedule struct {
	Start      int
	Max        int
	Iterations int
}

// DefaultSchedule returns 1, 2, 4, ... 128 threads, one run each.
func DefaultSchedule() Schedule {
	return Schedule{
		Start:      DefaultStartThreads,
		Max:        DefaultMaxThreads,
		Iterations: DefaultIterations,
	}
}

// Validate checks that the schedule yields at least one run
func (s Schedule) Validate() error {
	if s.Start < 1 {
		return fmt.Errorf("%w: start threads must be at least 1, got %d", ErrInvalidSchedule, s.Start)
	}
	if s.Max < s.Start {
		return fmt.Errorf("%w: max threads (%d) below start threads (%d)", ErrInvalidSchedule, s.Max, s.Start)
	}
	if s.Iterations < 1 {
		return fmt.Errorf("%w: iterations must be at least 1, got %d", ErrInvalidSchedule, s.Iterations)
	}
	return nil
}

// Steps expands the schedule. It returns nil for an invalid schedule.
func (s Schedule) Steps() []Step {
	if s.Validate() != nil {
		return nil
	}
	var steps []Step
	for threads := s.Start; threads <= s.Max; threads *= 2 {
		steps = append(steps, Step{Threads: threads, Repetitions: s.Iterations})
	}
	return steps
}

// ParseThreads builds steps from a comma-separated list of thread counts
// such as "1,2,8", each run repetitions times.
func ParseThreads(list string, repetitions int) ([]Step, error) {
	if repetitions < 1 {
		return nil, fmt.Errorf("%w: repetitions must be at least 1, got %d", ErrInvalidSchedule, repetitions)
	}

	var steps []Step
	for _, field := range strings.Split(list, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		threads, err := strconv.Atoi(field)
		if err != nil {
			return nil, fmt.Errorf("%w: thread count %q: %w", ErrInvalidSchedule, field, err)
		}
		if threads < 1 {
			return nil, fmt.Errorf("%w: thread count must be at least 1, got %d", ErrInvalidSchedule, threads)
		}
		steps = append(steps, Step{Threads: threads, Repetitions: repetitions})
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: no thread counts in %q", ErrInvalidSchedule, list)
	}
	return steps, nil
}
