package ui

import (
	"github.com/sandfly/dawnpatrol/internal/advisor"
)

// Message types for async operations

// runCompletedMsg is sent when an advisory run has finished. stale marks a
// cached result substituted after a failed run.
type runCompletedMsg struct {
	result *advisor.RunResult
	stale  bool
}

// errMsg is sent when a run failed and no cached advisory could stand in.
type errMsg struct {
	err error
}
