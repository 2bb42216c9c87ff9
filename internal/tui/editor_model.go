package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/rs/zerolog"

	"github.com/balkashynov/themegen/internal/audit"
	"github.com/balkashynov/themegen/internal/color"
	"github.com/balkashynov/themegen/internal/editor"
	"github.com/balkashynov/themegen/internal/parser"
	"github.com/balkashynov/themegen/internal/theme"
)

const (
	editorTitle    = "🎨 themegen · mpro5 Saturn"
	leftPanelWidth = 48
	minWideWidth   = 100
)

// editorField is one editable role in the left panel.
type editorField struct {
	family theme.Family
	role   theme.Role
}

var editorFields = func() []editorField {
	fields := make([]editorField, 0, len(theme.Families)*len(theme.Roles))
	for _, f := range theme.Families {
		for _, r := range theme.Roles {
			fields = append(fields, editorField{family: f, role: r})
		}
	}
	return fields
}()

var roleLabels = map[theme.Role]string{
	theme.Base:     "Base",
	theme.Contrast: "Contrast",
	theme.Shade:    "Shade",
	theme.Tint:     "Tint",
}

// shimmerTickMsg is sent when shimmer should update
type shimmerTickMsg struct{}

// EditorModel is the interactive theme editor: role fields on the left,
// the mock app painted with the theme on the right.
type EditorModel struct {
	ctx     context.Context
	session *editor.Session
	logger  zerolog.Logger

	// snap is what the session holds; preview additionally reflects a
	// complete color typed into the focused field but not yet applied.
	snap    editor.Snapshot
	preview theme.Colors

	inputs []textinput.Model
	focus  int
	screen Screen

	width  int
	height int

	shimmer *ShimmerState

	status    string
	statusErr bool
	quitting  bool
	saved     bool

	// Save confirmation modal
	showSaveModal   bool
	saveModalChoice bool // true for Yes, false for No
}

// NewEditorModel creates the editor over s.
func NewEditorModel(ctx context.Context, s *editor.Session, opts Options) EditorModel {
	inputs := make([]textinput.Model, len(editorFields))
	for i := range inputs {
		inputs[i] = textinput.New()
		inputs[i].Prompt = ""
		inputs[i].Placeholder = "#rrggbb"
		inputs[i].CharLimit = 7
		inputs[i].Width = 8
		inputs[i].TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText))
		inputs[i].PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText))
		inputs[i].Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}
	inputs[0].Focus()

	shimmerConfig := DefaultShimmerConfig()
	shimmerConfig.Enabled = opts.Animations

	snap := s.Snapshot()
	m := EditorModel{
		ctx:             ctx,
		session:         s,
		logger:          opts.Logger,
		snap:            snap,
		preview:         snap.Colors,
		inputs:          inputs,
		shimmer:         NewShimmerState(shimmerConfig),
		saveModalChoice: true,
	}
	m.syncInputs()
	return m
}

func (m EditorModel) tick() tea.Cmd {
	return tea.Tick(m.shimmer.TickInterval(), func(time.Time) tea.Msg {
		return shimmerTickMsg{}
	})
}

// Init initializes the model
func (m EditorModel) Init() tea.Cmd {
	cmds := []tea.Cmd{textinput.Blink}
	if m.shimmer.Active() {
		cmds = append(cmds, m.tick())
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m EditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case shimmerTickMsg:
		if !m.shimmer.Active() {
			return m, nil
		}
		m.shimmer.Advance(len([]rune(editorTitle)), time.Now())
		return m, m.tick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.showSaveModal {
			return m.updateSaveModal(msg)
		}

		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "esc":
			if !m.session.Dirty() {
				m.quitting = true
				return m, tea.Quit
			}
			m.showSaveModal = true
			m.saveModalChoice = true
			return m, nil

		case "enter":
			return m.commit(), nil

		case "up":
			return m.moveFocus(-1)

		case "down":
			return m.moveFocus(1)

		case "tab":
			m.screen = m.screen.Next()
			return m, nil

		case "shift+tab":
			m.screen = m.screen.Prev()
			return m, nil

		case "ctrl+s":
			return m.save(), nil

		case "ctrl+r":
			return m.reset(), nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	m.updatePreview()
	return m, cmd
}

func (m EditorModel) updateSaveModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "left", "right":
		m.saveModalChoice = !m.saveModalChoice
		return m, nil
	case "y", "Y":
		m.saveModalChoice = true
		return m.handleSaveChoice()
	case "n", "N":
		m.saveModalChoice = false
		return m.handleSaveChoice()
	case "enter":
		return m.handleSaveChoice()
	case "esc":
		m.showSaveModal = false
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleSaveChoice handles the save confirmation modal response
func (m EditorModel) handleSaveChoice() (tea.Model, tea.Cmd) {
	m.showSaveModal = false
	if !m.saveModalChoice {
		m.quitting = true
		return m, tea.Quit
	}

	m = m.save()
	if m.statusErr {
		return m, nil
	}
	m.quitting = true
	return m, tea.Quit
}

func (m EditorModel) current() editorField {
	return editorFields[m.focus]
}

// updatePreview reflects the focused field's text in the preview once it
// is a complete color.
func (m *EditorModel) updatePreview() {
	m.preview = m.snap.Colors
	value, err := parser.NormalizeHexInput(m.inputs[m.focus].Value())
	if err != nil {
		return
	}
	f := m.current()
	if f.role == theme.Base {
		m.preview = m.snap.Colors.SetBase(f.family, value)
		return
	}
	m.preview = m.snap.Colors.Set(f.family, f.role, value)
}

func (m EditorModel) moveFocus(delta int) (EditorModel, tea.Cmd) {
	m.inputs[m.focus].Blur()
	m.inputs[m.focus].SetValue(m.snap.Colors.Get(m.current().family, m.current().role))
	m.preview = m.snap.Colors

	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.status = ""
	return m, m.inputs[m.focus].Focus()
}

func (m EditorModel) commit() EditorModel {
	f := m.current()
	raw := m.inputs[m.focus].Value()

	snap, ok := m.session.Input(f.family, f.role, raw)
	if !ok {
		return m.setStatus(fmt.Sprintf("Invalid color %q. Use #rrggbb or #rgb", raw), true)
	}
	m.snap = snap
	m.preview = snap.Colors
	m.syncInputs()
	return m.setStatus(fmt.Sprintf("%s set to %s", theme.Field(f.family, f.role), snap.Colors.Get(f.family, f.role)), false)
}

func (m EditorModel) save() EditorModel {
	if err := m.session.Save(m.ctx); err != nil {
		return m.setStatus("Save failed: "+err.Error(), true)
	}
	m.saved = true
	return m.setStatus("Theme saved", false)
}

func (m EditorModel) reset() EditorModel {
	snap, err := m.session.Reset(m.ctx)
	if err != nil {
		return m.setStatus("Reset failed: "+err.Error(), true)
	}
	m.snap = snap
	m.preview = snap.Colors
	m.syncInputs()
	return m.setStatus("Theme reset to default", false)
}

func (m EditorModel) setStatus(text string, isErr bool) EditorModel {
	m.status = text
	m.statusErr = isErr
	if isErr {
		m.logger.Warn().Msg(text)
	}
	return m
}

// syncInputs copies the session's values into every field.
func (m *EditorModel) syncInputs() {
	for i, f := range editorFields {
		m.inputs[i].SetValue(m.snap.Colors.Get(f.family, f.role))
	}
}

// View renders the TUI
func (m EditorModel) View() string {
	if m.quitting {
		return ""
	}

	left := m.renderFields()
	var mainView string
	if m.width < minWideWidth {
		mainView = lipgloss.NewStyle().Padding(1).Render(left)
	} else {
		leftPanel := lipgloss.NewStyle().
			Width(leftPanelWidth).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(ColorBorder)).
			Padding(1).
			Render(left)

		previewWidth := m.width - leftPanelWidth - 8
		if previewWidth > 64 {
			previewWidth = 64
		}
		rightPanel := lipgloss.NewStyle().
			Padding(0, 1).
			Render(RenderPreview(m.screen, m.preview, previewWidth))

		mainView = lipgloss.JoinHorizontal(lipgloss.Top, leftPanel, " ", rightPanel)
	}

	if m.showSaveModal {
		return m.renderSaveModal()
	}
	return mainView
}

func (m EditorModel) renderFields() string {
	var b strings.Builder

	b.WriteString(m.shimmer.Render(editorTitle))
	if m.session.Dirty() {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(ColorWarning)).Render("  ● unsaved"))
	}
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSecondaryText))
	focusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright)).Bold(true)
	familyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPrimaryText)).Bold(true)

	threshold := m.session.Threshold()
	for i, f := range editorFields {
		if f.role == theme.Base {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(familyStyle.Render(f.family.Title()))
			b.WriteString("  ")
			b.WriteString(ratioLabel(m.preview, f.family, threshold))
			b.WriteString("\n")
		}

		cursor, label := "  ", labelStyle.Render(fmt.Sprintf("%-9s", roleLabels[f.role]))
		if i == m.focus {
			cursor, label = focusStyle.Render("▶ "), focusStyle.Render(fmt.Sprintf("%-9s", roleLabels[f.role]))
		}
		b.WriteString(cursor + label + " " + m.inputs[i].View() + " " + swatch(m.preview.Get(f.family, f.role)) + "\n")
	}
	b.WriteString("\n")

	b.WriteString(m.renderWarnings(audit.Audit(m.preview, threshold)))
	b.WriteString("\n")

	if m.status != "" {
		statusColor := ColorSuccess
		if m.statusErr {
			statusColor = ColorError
		}
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(statusColor)).Render(m.status))
		b.WriteString("\n")
	}

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorHelpText))
	b.WriteString(helpStyle.Render(wordwrap.String(
		"↑/↓: Field | Enter: Apply | Tab: Screen | Ctrl+S: Save | Ctrl+R: Reset | Esc: Quit", leftPanelWidth-4)))
	return b.String()
}

// ratioLabel shows a family's base/contrast ratio, colored by pass or fail.
func ratioLabel(c theme.Colors, f theme.Family, threshold float64) string {
	ratio := color.SentinelRatio
	bg, okBg := color.Parse(c.Get(f, theme.Base))
	fg, okFg := color.Parse(c.Get(f, theme.Contrast))
	if okBg && okFg {
		ratio = color.RatioRGB(bg, fg)
	}
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess))
	if ratio < threshold {
		style = style.Foreground(lipgloss.Color(ColorError))
	}
	return style.Render(audit.FormatRatio(ratio) + ":1")
}

func (m EditorModel) renderWarnings(warnings []audit.Warning) string {
	if len(warnings) == 0 {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render("✓ Contrast looks good") + "\n"
	}
	var lines []string
	for _, w := range warnings {
		lines = append(lines, wordwrap.String("⚠ "+w.Message, leftPanelWidth-8))
	}
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorWarning)).
		Foreground(lipgloss.Color(ColorWarning)).
		Padding(0, 1).
		Render(strings.Join(lines, "\n")) + "\n"
}

func swatch(hex string) string {
	if _, ok := color.Parse(hex); !ok {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDisabledText)).Render(" ?? ")
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
}

// renderSaveModal renders the save confirmation modal overlay
func (m EditorModel) renderSaveModal() string {
	var content strings.Builder
	content.WriteString("Save changes?\n\n")

	yesStyle := lipgloss.NewStyle().Padding(0, 2)
	noStyle := lipgloss.NewStyle().Padding(0, 2)
	if m.saveModalChoice {
		yesStyle = yesStyle.
			Background(lipgloss.Color(ColorAccentBright)).
			Foreground(lipgloss.Color("#000000")).
			Bold(true)
	} else {
		noStyle = noStyle.
			Background(lipgloss.Color(ColorError)).
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true)
	}

	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, yesStyle.Render("Yes"), "   ", noStyle.Render("No")))
	content.WriteString("\n\n")
	content.WriteString("← → or Y/N to choose, Enter to confirm\nEsc to keep editing")

	modal := lipgloss.NewStyle().
		Width(50).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccentBright)).
		Background(lipgloss.Color(ColorCardBackground)).
		Padding(1).
		Align(lipgloss.Center).
		Render(content.String())

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, modal)
}
