package components

import (
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/dharanetra/dhara/internal/soil"
	"github.com/dharanetra/dhara/internal/ui/theme"
)

// fieldCharLimit bounds what a decimal field accepts.
const fieldCharLimit = 10

// DecimalField is a labelled text input for one soil property. It accepts
// digits and a single decimal point; an empty field means not measured.
type DecimalField struct {
	Property soil.Property
	Required bool
	Model    textinput.Model
	err      string
}

// NewDecimalField creates a blurred field for the property.
func NewDecimalField(p soil.Property, required bool) DecimalField {
	ti := textinput.New()
	ti.CharLimit = fieldCharLimit
	if required {
		ti.Placeholder = "required"
	} else {
		ti.Placeholder = "optional"
	}
	return DecimalField{
		Property: p,
		Required: required,
		Model:    ti,
	}
}

// Focus focuses the field.
func (f *DecimalField) Focus() tea.Cmd {
	return f.Model.Focus()
}

// Blur removes focus from the field.
func (f *DecimalField) Blur() {
	f.Model.Blur()
}

// Focused reports whether the field has focus.
func (f DecimalField) Focused() bool {
	return f.Model.Focused()
}

// Update handles key input, dropping anything that cannot be part of a
// non-negative decimal number.
func (f DecimalField) Update(msg tea.Msg) (DecimalField, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		key := kmsg.String()
		if len(key) == 1 {
			c := key[0]
			switch {
			case c >= '0' && c <= '9':
			case c == '.' && !strings.Contains(f.Model.Value(), "."):
			default:
				return f, nil
			}
		}
	}

	f.err = ""
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// SetValue replaces the field contents.
func (f *DecimalField) SetValue(v string) {
	f.Model.SetValue(v)
	f.err = ""
}

// SetError marks the field with a validation message until it is edited.
func (f *DecimalField) SetError(msg string) {
	f.err = msg
}

// Err returns the validation message, if any.
func (f DecimalField) Err() string {
	return f.err
}

// Float returns the parsed value and whether the field holds one.
func (f DecimalField) Float() (float64, bool, error) {
	s := strings.TrimSpace(f.Model.Value())
	if s == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}

// View renders the label and input on one line, the label padded to
// labelWidth.
func (f DecimalField) View(labelWidth int) string {
	labelStyle := theme.Label
	if f.Focused() {
		labelStyle = theme.Selected
	}
	label := f.Property.DisplayName()
	if f.Property.IsPercent() {
		label += " (%)"
	}
	if f.Required {
		label += " *"
	}

	view := labelStyle.Width(labelWidth).Render(label) + f.Model.View()
	if f.err != "" {
		view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗ "+f.err)
	}
	return view
}

// LabelWidth returns the rendered label width of the widest field.
func LabelWidth(fields []DecimalField) int {
	w := 0
	for _, f := range fields {
		w = max(w, lipgloss.Width(f.Property.DisplayName())+6)
	}
	return w
}
