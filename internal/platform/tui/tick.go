// Package tui provides the Bubble Tea integration for the shooter.
// It handles the terminal UI loop, input mapping, audio dispatch and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxTickRate bounds --fps; faster rates only burn CPU in a terminal.
const maxTickRate = 240

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickInterval returns the frame budget for a tick rate.
func tickInterval(tickRate int) time.Duration {
	tickRate = min(max(tickRate, 1), maxTickRate)
	return time.Second / time.Duration(tickRate)
}

// frameClock schedules ticks against absolute deadlines, so the time spent
// updating and drawing a frame comes out of its budget.
type frameClock struct {
	interval time.Duration
	deadline time.Time
}

func newFrameClock(tickRate int) frameClock {
	return frameClock{interval: tickInterval(tickRate)}
}

// Next returns how long to wait before the next tick. A frame that overran
// its budget is not made up: the next tick fires at once and the schedule
// restarts from now, so a slow terminal slows the game down.
func (c *frameClock) Next(now time.Time) time.Duration {
	if c.deadline.IsZero() {
		c.deadline = now
	}
	c.deadline = c.deadline.Add(c.interval)
	if c.deadline.Before(now) {
		c.deadline = now
	}
	return c.deadline.Sub(now)
}

// tickCmd schedules the next tick after d.
func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
