package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/qtyi/luna-sub005/internal/driver"
)

func TestProgressModelAppliesEvents(t *testing.T) {
	events := make(chan driver.Event)
	model := NewProgressModel("diag", []string{"a.lua", "b.lua"}, events).(*progressModel)

	model.Update(eventMsg{File: "a.lua", Stage: driver.StageParse, Status: driver.StatusWorking})
	require.Equal(t, "parsing", model.items[0].status)
	require.InDelta(t, 0.25, model.percent(), 1e-9)

	model.Update(eventMsg{File: "a.lua", Stage: driver.StageParse, Status: driver.StatusError, Diagnostics: 3})
	model.Update(eventMsg{File: "b.lua", Stage: driver.StageParse, Status: driver.StatusDone, Cached: true})
	model.Update(eventMsg{File: "unknown.lua", Stage: driver.StageParse, Status: driver.StatusDone})
	require.InDelta(t, 1.0, model.percent(), 1e-9)
	require.Equal(t, 3, model.diagnostics)
	require.Equal(t, 1, model.cached)

	view := model.View()
	require.Contains(t, view, "a.lua (3)")
	require.Contains(t, view, "b.lua [cached]")
	require.Contains(t, view, "2 files, 3 diagnostics, 1 cached")

	_, cmd := model.Update(doneMsg{})
	require.True(t, model.done)
	require.NotNil(t, cmd)
	require.True(t, strings.HasPrefix(stripANSI(model.View()), "done: diag"))
}

func TestProgressModelResize(t *testing.T) {
	model := NewProgressModel("diag", []string{"x.lua"}, nil).(*progressModel)
	model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 120, model.width)
	require.Equal(t, 116, model.prog.Width)
}

func TestProgressModelEmpty(t *testing.T) {
	model := NewProgressModel("diag", nil, nil)
	require.Empty(t, model.View())
}

func TestTruncate(t *testing.T) {
	require.Equal(t, "short", truncate("short", 10))
	require.Equal(t, "abcdefg...", truncate("abcdefghijklmnop", 10))
	require.Equal(t, "ab", truncate("abcdef", 2))
	require.Equal(t, "日本...", truncate("日本語のファイル", 7))
}

func stripANSI(s string) string {
	var b strings.Builder
	inEsc := false
	for _, r := range s {
		switch {
		case r == '\x1b':
			inEsc = true
		case inEsc:
			if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
				inEsc = false
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
