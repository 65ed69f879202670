package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dharanetra/dhara/internal/router"
	"github.com/dharanetra/dhara/internal/screen"
	"github.com/dharanetra/dhara/internal/screens/chart"
	"github.com/dharanetra/dhara/internal/screens/classify"
	"github.com/dharanetra/dhara/internal/screens/history"
	"github.com/dharanetra/dhara/internal/soil"
	"github.com/dharanetra/dhara/internal/ui/components"
	"github.com/dharanetra/dhara/internal/ui/layout"
	"github.com/dharanetra/dhara/internal/ui/theme"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	env  screen.Env
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// open returns a menu action that pushes a fresh screen from build.
func open(build func() screen.Screen) func() tea.Cmd {
	return func() tea.Cmd {
		s := build()
		return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
	}
}

// New creates the home screen. History browsing is disabled when env has
// no store.
func New(env screen.Env) *HomeScreen {
	items := []components.MenuItem{
		{
			Label:  "Classify fine-grained soil",
			Hint:   "Atterberg limits",
			Action: open(func() screen.Screen { return classify.New(env, soil.KindFine) }),
		},
		{
			Label:  "Classify coarse-grained soil",
			Hint:   "grain size distribution",
			Action: open(func() screen.Screen { return classify.New(env, soil.KindCoarse) }),
		},
		{
			Label:  "Plasticity chart",
			Hint:   "A-line, U-line and zones",
			Action: open(func() screen.Screen { return chart.New(nil) }),
		},
		{
			Label:    "History",
			Hint:     "saved classifications",
			Disabled: !env.CanSave(),
			Action:   open(func() screen.Screen { return history.New(env) }),
		},
		{
			Label:  "Quit",
			Action: func() tea.Cmd { return tea.Quit },
		},
	}

	return &HomeScreen{
		env:  env,
		menu: components.NewMenu(items),
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) Status() string {
	if h.env.Project != "" {
		return "project " + h.env.Project
	}
	return ""
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := theme.Title.Render("D H A R A")
	subtitle := theme.Subtitle.Render("Soil classification to IS 1498:1970")
	sections = append(sections, title+"\n"+subtitle)

	sections = append(sections, theme.Card.Render(strings.TrimRight(h.menu.View(), "\n")))

	if !h.env.CanSave() {
		sections = append(sections, theme.Hint.Render("No database open; results cannot be saved."))
	}

	top := "\n"
	if !layout.IsCompactWidth(width) && height > 20 {
		top = "\n\n\n"
	}

	var b strings.Builder
	b.WriteString(top)
	for i, s := range sections {
		if i > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(layout.Centered(s, width))
	}
	return b.String()
}
