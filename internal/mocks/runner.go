// Package mocks provides test doubles for the command runner and the
// process environment.
package mocks

import (
	"context"
	"strings"
	"sync"

	"github.com/iamkroot/trakt-scrobbler/internal/command"
)

// Runner implements command.Runner by recording every call and replaying
// scripted results.
type Runner struct {
	mu sync.Mutex
	// Calls records each command line in dispatch order.
	Calls []string
	// Results maps a full command line to its outcome. Unlisted commands
	// succeed with empty output.
	Results map[string]command.Result
	// Errors maps a full command line to a launch failure.
	Errors map[string]error
	// OnRun, when set, is invoked before each result is returned.
	OnRun func(cmdline string)
}

// NewRunner creates a Runner where every command succeeds.
func NewRunner() *Runner {
	return &Runner{
		Results: make(map[string]command.Result),
		Errors:  make(map[string]error),
	}
}

// Run records the call and returns the scripted outcome.
func (r *Runner) Run(_ context.Context, name string, args ...string) (command.Result, error) {
	line := command.Format(name, args...)

	r.mu.Lock()
	r.Calls = append(r.Calls, line)
	res, err := r.Results[line], r.Errors[line]
	hook := r.OnRun
	r.mu.Unlock()

	if hook != nil {
		hook(line)
	}
	return res, err
}

// Called reports whether a command line starting with prefix was run.
func (r *Runner) Called(prefix string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.Calls {
		if strings.HasPrefix(c, prefix) {
			return true
		}
	}
	return false
}

// Compile-time check that Runner implements command.Runner.
var _ command.Runner = (*Runner)(nil)
