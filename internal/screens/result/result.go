package result

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dharanetra/dhara/internal/report"
	"github.com/dharanetra/dhara/internal/router"
	"github.com/dharanetra/dhara/internal/screen"
	"github.com/dharanetra/dhara/internal/soil"
	"github.com/dharanetra/dhara/internal/store"
	"github.com/dharanetra/dhara/internal/ui/layout"
	"github.com/dharanetra/dhara/internal/ui/theme"
)

type savedMsg struct {
	ID  string
	Err error
}

type reportWrittenMsg struct {
	Path string
	Err  error
}

// Screen shows one classification result with its chart position.
type Screen struct {
	env     screen.Env
	sample  soil.Sample
	result  *soil.Result
	at      time.Time
	savedID string
	notice  string
	failed  bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.StatusProvider = (*Screen)(nil)

// New creates a result screen for a fresh classification.
func New(env screen.Env, s soil.Sample, r *soil.Result) *Screen {
	return &Screen{env: env, sample: s, result: r, at: time.Now()}
}

// FromRecord creates a result screen for a stored classification.
func FromRecord(env screen.Env, rec store.Record) *Screen {
	return &Screen{
		env:     env,
		sample:  rec.Sample,
		result:  rec.Result,
		at:      rec.CreatedAt.Local(),
		savedID: rec.ID,
	}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Result " + s.result.Code
}

func (s *Screen) Status() string {
	switch {
	case s.savedID != "":
		return "saved"
	case s.env.CanSave():
		return "unsaved"
	default:
		return ""
	}
}

func (s *Screen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{{Key: "w", Description: "Write report"}}
	if s.env.CanSave() && s.savedID == "" {
		hints = append(hints, layout.KeyHint{Key: "s", Description: "Save"})
	}
	return append(hints,
		layout.KeyHint{Key: "h", Description: "Home"},
		layout.KeyHint{Key: "Esc", Description: "Back"},
	)
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			s.notice, s.failed = "Save failed: "+msg.Err.Error(), true
			return s, nil
		}
		s.savedID = msg.ID
		s.notice, s.failed = "Saved to history", false
		return s, nil

	case reportWrittenMsg:
		if msg.Err != nil {
			s.notice, s.failed = "Report failed: "+msg.Err.Error(), true
			return s, nil
		}
		s.notice, s.failed = "Report written to "+msg.Path, false
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "s":
			if s.env.CanSave() && s.savedID == "" {
				return s, s.save()
			}
		case "w":
			return s, s.writeReport()
		case "h":
			return s, func() tea.Msg { return router.PopToRootMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) save() tea.Cmd {
	repo, project := s.env.History, s.env.Project
	rec := &store.Record{Project: project, Sample: s.sample.Clone(), Result: s.result}
	return func() tea.Msg {
		err := repo.Append(context.Background(), rec)
		return savedMsg{ID: rec.ID, Err: err}
	}
}

func (s *Screen) writeReport() tea.Cmd {
	name := fmt.Sprintf("dhara-report-%s-%s.txt", s.result.Code, s.at.Format("20060102-150405"))
	path := filepath.Join(s.env.ReportDir, name)
	sample, result, at := s.sample, s.result, s.at
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return reportWrittenMsg{Err: err}
		}
		if err := report.Plain(f, sample, result, at); err != nil {
			f.Close()
			return reportWrittenMsg{Err: err}
		}
		return reportWrittenMsg{Path: path, Err: f.Close()}
	}
}

// Chart grid drawn next to results with Atterberg limits.
const (
	plotCols = 41
	plotRows = 16
)

func (s *Screen) View(width, height int) string {
	cardWidth := min(width-4, 64)
	card := report.Styled(s.result, cardWidth)

	body := card
	if s.result.Plasticity != nil {
		chart := soil.PlasticityChart(1).WithSample(*s.result.Plasticity)
		plot := renderPlot(chart)
		if lipgloss.Width(card)+lipgloss.Width(plot)+2 <= width {
			body = lipgloss.JoinHorizontal(lipgloss.Top, card, "  ", plot)
		} else {
			body = card + "\n" + plot
		}
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(layout.Centered(body, width))
	if s.notice != "" {
		style := theme.OK
		if s.failed {
			style = theme.Failure
		}
		b.WriteString("\n\n")
		b.WriteString(layout.Centered(style.Render(s.notice), width))
	}
	return b.String()
}
