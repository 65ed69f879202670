package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dharanetra/dhara/internal/router"
	"github.com/dharanetra/dhara/internal/screen"
	"github.com/dharanetra/dhara/internal/screens/result"
	"github.com/dharanetra/dhara/internal/store"
	"github.com/dharanetra/dhara/internal/ui/layout"
	"github.com/dharanetra/dhara/internal/ui/theme"
)

// pageLimit caps how many records the screen loads.
const pageLimit = 100

type historyLoadedMsg struct {
	Records []store.Record
	Err     error
}

// HistoryScreen lists saved classifications, newest first.
type HistoryScreen struct {
	env      screen.Env
	records  []store.Record
	selected int
	offset   int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)
var _ screen.StatusProvider = (*HistoryScreen)(nil)

// New creates a history screen reading from env.History, scoped to
// env.Project when one is set.
func New(env screen.Env) *HistoryScreen {
	return &HistoryScreen{env: env}
}

func (s *HistoryScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HistoryScreen) load() tea.Cmd {
	repo, project := s.env.History, s.env.Project
	return func() tea.Msg {
		recs, err := repo.List(context.Background(), store.QueryOpts{Limit: pageLimit, Project: project})
		return historyLoadedMsg{Records: recs, Err: err}
	}
}

func (s *HistoryScreen) Title() string {
	return "History"
}

func (s *HistoryScreen) Status() string {
	if !s.loaded {
		return ""
	}
	if len(s.records) == 1 {
		return "1 record"
	}
	return fmt.Sprintf("%d records", len(s.records))
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Open"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.records = msg.Records
		s.selected = min(s.selected, max(len(s.records)-1, 0))
		return s, nil

	case router.ResumedMsg:
		return s, s.load()

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.records)-1 {
				s.selected++
			}
		case "enter":
			if s.selected < len(s.records) {
				next := result.FromRecord(s.env, s.records[s.selected])
				return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.records) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No saved classifications yet.")
	}

	// Keep the selection inside the visible window.
	visible := max(height-2, 1)
	if s.selected < s.offset {
		s.offset = s.selected
	}
	if s.selected >= s.offset+visible {
		s.offset = s.selected - visible + 1
	}
	end := min(s.offset+visible, len(s.records))

	var b strings.Builder
	b.WriteString("\n")
	for i := s.offset; i < end; i++ {
		rec := s.records[i]
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-7s %-6s %s",
			prefix, rec.CreatedAt.Local().Format("Jan 02, 2006 15:04"), rec.Code, rec.Kind, describe(rec))

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}
	return b.String()
}

// describe returns the label and project of a record, when set.
func describe(rec store.Record) string {
	var parts []string
	if rec.Label != "" {
		parts = append(parts, rec.Label)
	}
	if rec.Project != "" {
		parts = append(parts, "["+rec.Project+"]")
	}
	return strings.Join(parts, " ")
}
