package screen

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/dharanetra/dhara/internal/store"
	"github.com/dharanetra/dhara/internal/ui/layout"
)

// Screen is one page of the interactive app.
type Screen interface {
	// Init returns an initial command when the screen is pushed.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is implemented by screens with their own footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that show a short status in
// the right side of the header, such as whether a result has been saved.
type StatusProvider interface {
	Status() string
}

// CapturesInput is implemented by screens with focused text fields. While
// CapturingInput reports true the app leaves letter keys to the screen
// instead of treating them as shortcuts.
type CapturesInput interface {
	CapturingInput() bool
}

// Env carries the services screens share. History is nil when no database
// could be opened; screens then hide saving and history browsing.
type Env struct {
	History store.HistoryRepo
	Project string
	// ReportDir is where report files are written.
	ReportDir string
	Logger    *slog.Logger
}

// CanSave reports whether results can be stored.
func (e Env) CanSave() bool {
	return e.History != nil
}
