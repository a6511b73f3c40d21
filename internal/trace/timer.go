// Package trace provides a dependency-free phase timer for the compiler
// pipeline (SPEC_FULL.md §5), grounded on the teacher's internal/trace +
// internal/observ span-timing idiom but stripped of the teacher's
// streaming/ring-buffer tracer machinery: this front end has six fixed
// stages run at most once per Compile call, not an open-ended event stream, so a
// slice of named durations is enough.
package trace

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// Phase records one completed stage's wall-clock duration.
type Phase struct {
	Name     string
	Duration time.Duration
}

// Timer accumulates Phase entries across one Compile call. The zero value
// is ready to use. Not safe for concurrent Begin calls from multiple
// goroutines against the same Timer.
type Timer struct {
	phases []Phase
}

// Begin starts timing a stage and returns a func that stops it and
// records the elapsed duration. Call the returned func exactly once.
func (t *Timer) Begin(name string) func() {
	start := time.Now()
	return func() {
		t.phases = append(t.phases, Phase{Name: name, Duration: time.Since(start)})
	}
}

// Phases returns the recorded phases in recording order.
func (t *Timer) Phases() []Phase {
	return t.phases
}

// Total returns the sum of every recorded phase's duration.
func (t *Timer) Total() time.Duration {
	var sum time.Duration
	for _, p := range t.phases {
		sum += p.Duration
	}
	return sum
}

// Summary renders a human-readable breakdown, slowest phase first, for
// the CLI driver's --timings flag.
func (t *Timer) Summary() string {
	phases := make([]Phase, len(t.phases))
	copy(phases, t.phases)
	sort.SliceStable(phases, func(i, j int) bool {
		return phases[i].Duration > phases[j].Duration
	})

	var b strings.Builder
	for _, p := range phases {
		fmt.Fprintf(&b, "%-12s %v\n", p.Name, p.Duration.Round(time.Microsecond))
	}
	fmt.Fprintf(&b, "%-12s %v\n", "total", t.Total().Round(time.Microsecond))
	return b.String()
}
