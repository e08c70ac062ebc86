// Package tui provides the Bubble Tea integration for the sandbox.
// It handles the terminal UI loop, input mapping, and session orchestration.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one loop iteration of the model identified by loop.
type TickMsg struct {
	Time time.Time
	loop int64
}

// loopIDs hands out loop identifiers, so ticks scheduled by a finished
// session are not picked up by the next one.
var loopIDs atomic.Int64

// tickCmd returns a Bubble Tea command that sends a tick message after interval.
func tickCmd(loop int64, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, loop: loop}
	})
}

// loopInterval is the polling interval of the session loop: the shorter of
// the tick and frame intervals, so neither phase is starved.
func loopInterval(tick, frame time.Duration) time.Duration {
	return max(min(tick, frame), time.Millisecond)
}
