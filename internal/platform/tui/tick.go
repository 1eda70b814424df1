// Package tui runs SwiftBox screens on Bubble Tea, locally or over SSH.
// Games stay pure; this package maps keys to actions, drives fixed ticks
// and turns core.Screen buffers into styled terminal output.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg drives one game tick. Gen ties it to the game model that
// scheduled it so a replaced game never receives a stale tick.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

var tickGen atomic.Uint64

func nextTickGen() uint64 {
	return tickGen.Add(1)
}

// tickCmd schedules the next TickMsg at tickRate per second.
func tickCmd(tickRate int, gen uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 30
	}
	return tea.Tick(time.Second/time.Duration(tickRate), func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}
