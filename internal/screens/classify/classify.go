package classify

import (
	"errors"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/dharanetra/dhara/internal/report"
	"github.com/dharanetra/dhara/internal/router"
	"github.com/dharanetra/dhara/internal/screen"
	"github.com/dharanetra/dhara/internal/screens/result"
	"github.com/dharanetra/dhara/internal/soil"
	"github.com/dharanetra/dhara/internal/ui/components"
	"github.com/dharanetra/dhara/internal/ui/layout"
	"github.com/dharanetra/dhara/internal/ui/theme"
)

// Screen is the input form for one classification.
type Screen struct {
	env    screen.Env
	kind   soil.Kind
	fields []components.DecimalField
	focus  int
	err    error
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)
var _ screen.CapturesInput = (*Screen)(nil)

// New creates a form for the given kind with the first field focused.
func New(env screen.Env, kind soil.Kind) *Screen {
	var props []soil.Property
	required := map[soil.Property]bool{}
	switch kind {
	case soil.KindCoarse:
		props = soil.CoarseProperties()
		required[soil.GravelFraction] = true
		required[soil.SandFraction] = true
		required[soil.FinesFraction] = true
	default:
		kind = soil.KindFine
		props = soil.FineProperties()
		required[soil.LiquidLimit] = true
		required[soil.PlasticLimit] = true
	}

	fields := make([]components.DecimalField, len(props))
	for i, p := range props {
		fields[i] = components.NewDecimalField(p, required[p])
	}
	s := &Screen{env: env, kind: kind, fields: fields}
	s.fields[0].Focus()
	return s
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Classify " + strings.ToLower(s.kind.DisplayName()) + " soil"
}

func (s *Screen) CapturingInput() bool {
	return true
}

func (s *Screen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Classify"},
		{Key: "Ctrl+R", Description: "Clear"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "tab", "down":
			return s, s.setFocus(s.focus + 1)
		case "shift+tab", "up":
			return s, s.setFocus(s.focus - 1)
		case "ctrl+r":
			for i := range s.fields {
				s.fields[i].SetValue("")
			}
			s.err = nil
			return s, s.setFocus(0)
		case "enter":
			return s, s.submit()
		}
	}

	var cmd tea.Cmd
	s.fields[s.focus], cmd = s.fields[s.focus].Update(msg)
	return s, cmd
}

// setFocus moves focus to field i, wrapping at both ends.
func (s *Screen) setFocus(i int) tea.Cmd {
	n := len(s.fields)
	i = ((i % n) + n) % n
	s.fields[s.focus].Blur()
	s.focus = i
	return s.fields[i].Focus()
}

// Sample collects the filled fields. A field that does not parse is
// reported against its property.
func (s *Screen) Sample() (soil.Sample, error) {
	sample := soil.Sample{}
	for _, f := range s.fields {
		v, ok, err := f.Float()
		if err != nil {
			return nil, &soil.InputError{Property: f.Property, Reason: "not a number"}
		}
		if ok {
			sample[f.Property] = v
		}
	}
	return sample, nil
}

func (s *Screen) submit() tea.Cmd {
	s.err = nil
	sample, err := s.Sample()
	if err == nil {
		var r *soil.Result
		if s.kind == soil.KindCoarse {
			r, err = soil.ClassifyCoarse(sample)
		} else {
			r, err = soil.ClassifyFine(sample)
		}
		if err == nil {
			if s.env.Logger != nil {
				s.env.Logger.Debug("classified", "kind", s.kind, "code", r.Code)
			}
			env := s.env
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: result.New(env, sample, r)}
			}
		}
	}

	var ierr *soil.InputError
	if errors.As(err, &ierr) && ierr.Property != "" {
		for i := range s.fields {
			if s.fields[i].Property == ierr.Property {
				s.fields[i].SetError(ierr.Reason)
				return s.setFocus(i)
			}
		}
	}
	s.err = err
	return nil
}

func (s *Screen) View(width, height int) string {
	labelWidth := components.LabelWidth(s.fields)

	var b strings.Builder
	b.WriteString(theme.Heading.Render(s.kind.DisplayName() + " soil properties"))
	b.WriteString("\n\n")
	for _, f := range s.fields {
		b.WriteString(f.View(labelWidth))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render("* required. Leave a field empty if the test was not run."))
	if s.err != nil {
		b.WriteString("\n\n")
		b.WriteString(report.StyledError(s.err))
	}

	return "\n" + layout.Centered(theme.Card.Render(b.String()), width)
}
