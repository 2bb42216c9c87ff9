package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"github.com/balkashynov/themegen/internal/color"
	"github.com/balkashynov/themegen/internal/theme"
)

// Screen is one of the mock app screens in the preview panel.
type Screen int

const (
	ScreenJobs Screen = iota
	ScreenCustomers
	ScreenFlow
	ScreenSection
	screenCount
)

var screenTitles = [...]string{"Jobs Screen", "Customers Screen", "Flow Details", "Section Details"}

// Title returns the caption shown above the screen.
func (s Screen) Title() string {
	if s < 0 || s >= screenCount {
		return ""
	}
	return screenTitles[s]
}

// Next cycles forward through the screens.
func (s Screen) Next() Screen {
	return (s + 1) % screenCount
}

// Prev cycles backward through the screens.
func (s Screen) Prev() Screen {
	return (s + screenCount - 1) % screenCount
}

const minPreviewWidth = 30

var dashedBorder = lipgloss.Border{
	Top:         "╌",
	Bottom:      "╌",
	Left:        "╎",
	Right:       "╎",
	TopLeft:     "╭",
	TopRight:    "╮",
	BottomLeft:  "╰",
	BottomRight: "╯",
}

// palette holds the theme colors the mock screens are painted with.
// Colors that do not parse fall back to a neutral grey.
type palette struct {
	primary     lipgloss.Color
	onPrimary   lipgloss.Color
	primaryTint lipgloss.Color
	secondary   lipgloss.Color
	onSecondary lipgloss.Color

	surface lipgloss.Color
	canvas  lipgloss.Color
	text    lipgloss.Color
	muted   lipgloss.Color
}

func newPalette(c theme.Colors) palette {
	return palette{
		primary:     paint(c.Primary, ColorDisabledText),
		onPrimary:   paint(c.PrimaryContrast, ColorAppSurface),
		primaryTint: paint(c.PrimaryTint, ColorDisabledText),
		secondary:   paint(c.Secondary, ColorAppCanvas),
		onSecondary: paint(c.SecondaryContrast, ColorAppText),
		surface:     lipgloss.Color(ColorAppSurface),
		canvas:      lipgloss.Color(ColorAppCanvas),
		text:        lipgloss.Color(ColorAppText),
		muted:       lipgloss.Color(ColorAppMuted),
	}
}

func paint(hex, fallback string) lipgloss.Color {
	if _, ok := color.Parse(hex); ok {
		return lipgloss.Color(hex)
	}
	return lipgloss.Color(fallback)
}

// RenderPreview draws screen s painted with c, width columns wide.
func RenderPreview(s Screen, c theme.Colors, width int) string {
	if width < minPreviewWidth {
		width = minPreviewWidth
	}
	inner := width - 2
	p := newPalette(c)

	var lines []string
	switch s {
	case ScreenCustomers:
		lines = p.customersScreen(inner)
	case ScreenFlow:
		lines = p.flowScreen(inner)
	case ScreenSection:
		lines = p.sectionScreen(inner)
	default:
		lines = p.jobsScreen(inner)
	}

	caption := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorPrimaryText)).
		Render(s.Title())
	frame := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorBorder)).
		Render(strings.Join(lines, "\n"))
	return lipgloss.JoinVertical(lipgloss.Left, caption, frame)
}

func (p palette) seg(text string, fg, bg lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(fg).Background(bg).Render(text)
}

func (p palette) bold(text string, fg, bg lipgloss.Color) string {
	return lipgloss.NewStyle().Bold(true).Foreground(fg).Background(bg).Render(text)
}

func (p palette) blank(w int, bg lipgloss.Color) string {
	return p.seg(strings.Repeat(" ", w), bg, bg)
}

// spread places left and right at the edges of a w-wide line.
func (p palette) spread(left, right string, w int, bg lipgloss.Color) string {
	gap := w - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + p.blank(gap, bg) + right
}

func clip(text string, w int) string {
	if w <= 0 {
		return ""
	}
	return truncate.StringWithTail(text, uint(w), "…")
}

func (p palette) cell(text string, w int, fg, bg lipgloss.Color, bold bool) string {
	return lipgloss.NewStyle().
		Width(w).
		Align(lipgloss.Center).
		Bold(bold).
		Foreground(fg).
		Background(bg).
		Render(clip(text, w))
}

func cellWidths(n, w int) []int {
	widths := make([]int, n)
	for i := range widths {
		widths[i] = w / n
	}
	widths[n-1] += w % n
	return widths
}

func (p palette) appHeader(avatar, title, icons string, w int) string {
	left := p.bold(" "+avatar+" ", p.onPrimary, p.primary) +
		p.bold(" "+title, p.text, p.surface)
	return p.spread(p.blank(1, p.surface)+left, p.seg(icons+" ", p.muted, p.surface), w, p.surface)
}

func (p palette) backHeader(label, icons string, w int) string {
	left := p.seg(" ← ", p.text, p.surface) + p.bold(label, p.text, p.surface)
	return p.spread(left, p.seg(icons+" ", p.muted, p.surface), w, p.surface)
}

// segmented is the pill style tab bar of the Jobs screen.
func (p palette) segmented(labels []string, active, w int) string {
	var b strings.Builder
	for i, width := range cellWidths(len(labels), w) {
		if i == active {
			b.WriteString(p.cell(labels[i], width, p.onPrimary, p.primary, true))
			continue
		}
		b.WriteString(p.cell(labels[i], width, p.onSecondary, p.secondary, false))
	}
	return b.String()
}

// underlined is the tab bar with an underline under the active tab.
func (p palette) underlined(labels []string, active, w int) []string {
	var top, bottom strings.Builder
	for i, width := range cellWidths(len(labels), w) {
		if i == active {
			top.WriteString(p.cell(labels[i], width, p.primary, p.surface, true))
			bottom.WriteString(p.seg(strings.Repeat("━", width), p.primary, p.surface))
			continue
		}
		top.WriteString(p.cell(labels[i], width, p.muted, p.surface, false))
		bottom.WriteString(p.seg(strings.Repeat("─", width), p.canvas, p.surface))
	}
	return []string{top.String(), bottom.String()}
}

// bottomNav draws the tab bar; active < 0 highlights nothing.
func (p palette) bottomNav(active, w int) []string {
	icons := []string{"▥", "?", "▤", "▦", "⊞"}
	badges := map[int]string{0: sampleJobsBadge, 3: sampleActionsBadge}

	var top, bottom strings.Builder
	for i, width := range cellWidths(len(sampleNavItems), w) {
		fg := p.muted
		if i == active {
			fg = p.primary
		}
		icon := p.seg(icons[i], fg, p.surface)
		if badge, ok := badges[i]; ok {
			icon += p.bold(" "+badge+" ", p.onPrimary, p.primary)
		}
		pad := width - lipgloss.Width(icon)
		if pad < 0 {
			pad = 0
		}
		top.WriteString(p.blank(pad/2, p.surface) + icon + p.blank(pad-pad/2, p.surface))
		bottom.WriteString(p.cell(sampleNavItems[i], width, fg, p.surface, i == active))
	}
	return []string{p.blank(w, p.canvas), top.String(), bottom.String()}
}

func (p palette) jobsScreen(w int) []string {
	lines := []string{
		p.appHeader("●", "Jobs", "⌕ ◔ ⇪", w),
		p.blank(w, p.surface),
		p.segmented([]string{"All", "Active", "Scheduled"}, 0, w),
	}

	const rightWidth = 15
	leftWidth := w - rightWidth - 3
	for _, job := range sampleJobs {
		stripe := p.seg("▌ ", lipgloss.Color(ColorAppJobStripe), p.surface)
		lines = append(lines,
			p.blank(w, p.canvas),
			p.spread(stripe+p.bold(clip(job.Title, leftWidth), p.text, p.surface),
				p.seg("▦ "+job.Date+" ", p.muted, p.surface), w, p.surface),
			p.spread(stripe+p.seg(clip(job.Client, leftWidth), p.muted, p.surface),
				p.seg("◷ "+job.Time+" ", p.muted, p.surface), w, p.surface),
			p.spread(stripe+p.seg(clip("Client Ref: "+job.Ref, leftWidth), p.muted, p.surface),
				"", w, p.surface),
		)
	}
	return append(lines, p.bottomNav(0, w)...)
}

func (p palette) customersScreen(w int) []string {
	lines := []string{
		p.appHeader(sampleProfileLetter, "Flows", "⌕ ◔ ⇪", w),
		p.blank(w, p.canvas),
		p.spread(p.bold(" Customers", p.text, p.canvas), "", w, p.canvas),
		p.blank(w, p.canvas),
	}
	for _, c := range sampleCustomers {
		left := p.blank(1, p.surface) +
			p.bold(" "+c.Initial+" ", p.onPrimary, p.primary) +
			p.seg(" "+clip(c.Name, w-9), p.text, p.surface)
		lines = append(lines, p.spread(left, p.seg("› ", p.muted, p.surface), w, p.surface))
	}
	return append(lines, p.bottomNav(-1, w)...)
}

func (p palette) flowScreen(w int) []string {
	lines := []string{p.backHeader("Flow", "◔", w)}
	lines = append(lines, p.underlined([]string{"Details", "Resources"}, 0, w)...)
	lines = append(lines,
		p.blank(w, p.canvas),
		p.spread(p.bold(" "+sampleFlowTitle, p.text, p.canvas), "", w, p.canvas),
		p.spread(p.seg(" "+clip(sampleFlowCrumbs, w-2), p.muted, p.canvas), "", w, p.canvas),
		p.blank(w, p.canvas),
	)

	box := lipgloss.NewStyle().
		Border(dashedBorder).
		BorderForeground(p.primary).
		BorderBackground(p.canvas).
		Background(p.canvas).
		Foreground(p.primary).
		Bold(true).
		Width(w - 2).
		Align(lipgloss.Center).
		Render("+ Start a New Flow")
	lines = append(lines, strings.Split(box, "\n")...)

	lines = append(lines,
		p.blank(w, p.canvas),
		p.spread(p.bold(" Last 5 Flows", p.text, p.canvas), "", w, p.canvas),
	)
	for _, f := range sampleFlows {
		left := p.blank(1, p.surface) +
			p.bold(" "+f.Initial+" ", p.onPrimary, p.primary) +
			p.bold(" "+f.Title, p.text, p.surface)
		lines = append(lines,
			p.spread(left, p.seg(f.DateTime+" › ", p.muted, p.surface), w, p.surface),
		)
	}
	return append(lines,
		p.blank(w, p.canvas),
		p.spread("", p.bold(" + ", p.onPrimary, p.primary)+p.blank(1, p.canvas), w, p.canvas),
	)
}

func (p palette) sectionScreen(w int) []string {
	lines := []string{p.backHeader("Back", "⌕ ◔", w)}
	lines = append(lines, p.underlined([]string{"Sections", "History", "Resources"}, 0, w)...)
	lines = append(lines,
		p.blank(w, p.canvas),
		p.spread(p.bold(" "+sampleSectionTitle, p.text, p.canvas), "", w, p.canvas),
		p.blank(w, p.canvas),
		p.spread(p.bold(" Sections complete", p.text, p.surface), p.seg(sampleSectionDone+" ", p.muted, p.surface), w, p.surface),
		p.blank(1, p.surface)+p.seg(strings.Repeat("━", w-2), p.primaryTint, p.surface)+p.blank(1, p.surface),
		p.blank(w, p.canvas),
		p.spread(p.seg(" ○ ", p.muted, p.surface)+p.seg("*", lipgloss.Color(ColorError), p.surface)+p.bold(sampleSectionName, p.text, p.surface),
			p.seg("› ", p.muted, p.surface), w, p.surface),
		p.blank(w, p.canvas),
		p.blank(w, p.canvas),
		p.cell("Start Section", w, p.onPrimary, p.primary, true),
	)
	return lines
}
