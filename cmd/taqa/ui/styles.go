package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Message type constants for consistent UI messaging.
const (
	MessageTypeError   = "error"
	MessageTypeSuccess = "success"
	MessageTypeWarning = "warning"
	MessageTypeInfo    = "info"
)

// Layout dimensions in character cells / terminal rows.
var (
	SidebarWidth      = 26
	SidebarCollapsedW = 4
	HeaderHeight      = 3
	FooterHeight      = 2
)

// palette is one theme's color set. Two palettes ship: a dark "harbor"
// theme and a light "paper" theme, toggled from the settings screen.
type palette struct {
	bgBase     lipgloss.Color
	bgPanel    lipgloss.Color
	bgRaised   lipgloss.Color
	textMain   lipgloss.Color
	textSoft   lipgloss.Color
	textFaint  lipgloss.Color
	accent     lipgloss.Color
	accentAlt  lipgloss.Color
	good       lipgloss.Color
	warn       lipgloss.Color
	bad        lipgloss.Color
	info       lipgloss.Color
	borderDim  lipgloss.Color
	borderMain lipgloss.Color
}

var darkPalette = palette{
	bgBase:     lipgloss.Color("#101418"),
	bgPanel:    lipgloss.Color("#171c22"),
	bgRaised:   lipgloss.Color("#222a33"),
	textMain:   lipgloss.Color("#e6edf3"),
	textSoft:   lipgloss.Color("#aab4bf"),
	textFaint:  lipgloss.Color("#5c6670"),
	accent:     lipgloss.Color("#4fc3a1"),
	accentAlt:  lipgloss.Color("#e0a83c"),
	good:       lipgloss.Color("#58d68d"),
	warn:       lipgloss.Color("#f0a843"),
	bad:        lipgloss.Color("#ef6461"),
	info:       lipgloss.Color("#5dade2"),
	borderDim:  lipgloss.Color("#2b3440"),
	borderMain: lipgloss.Color("#4fc3a1"),
}

var lightPalette = palette{
	bgBase:     lipgloss.Color("#f7f7f2"),
	bgPanel:    lipgloss.Color("#edece4"),
	bgRaised:   lipgloss.Color("#e0e0d8"),
	textMain:   lipgloss.Color("#1f2933"),
	textSoft:   lipgloss.Color("#52606d"),
	textFaint:  lipgloss.Color("#9aa5b1"),
	accent:     lipgloss.Color("#0d7a5f"),
	accentAlt:  lipgloss.Color("#a3660a"),
	good:       lipgloss.Color("#1e7a40"),
	warn:       lipgloss.Color("#b26a00"),
	bad:        lipgloss.Color("#b3261e"),
	info:       lipgloss.Color("#0b5fa5"),
	borderDim:  lipgloss.Color("#cbd2d9"),
	borderMain: lipgloss.Color("#0d7a5f"),
}

// The style set screens render with. Rebuilt on theme switch.
var (
	HeaderStyle              lipgloss.Style
	HeaderTitleStyle         lipgloss.Style
	BreadcrumbStyle          lipgloss.Style
	BreadcrumbSeparatorStyle lipgloss.Style
	BreadcrumbActiveStyle    lipgloss.Style

	SidebarStyle             lipgloss.Style
	SidebarHeaderStyle       lipgloss.Style
	SidebarItemStyle         lipgloss.Style
	SidebarItemHoverStyle    lipgloss.Style
	SidebarItemSelectedStyle lipgloss.Style
	SidebarToggleStyle       lipgloss.Style

	FooterStyle      lipgloss.Style
	FooterKeyStyle   lipgloss.Style
	FooterLabelStyle lipgloss.Style
	FooterHelpStyle  lipgloss.Style

	ContentStyle lipgloss.Style

	TitleStyle    lipgloss.Style
	SubtitleStyle lipgloss.Style

	MenuItemStyle         lipgloss.Style
	SelectedMenuItemStyle lipgloss.Style
	CursorStyle           lipgloss.Style

	StatusActiveStyle   lipgloss.Style
	StatusInactiveStyle lipgloss.Style
	StatusPendingStyle  lipgloss.Style
	StatusInfoStyle     lipgloss.Style
	StatusOfflineStyle  lipgloss.Style

	TableHeaderStyle lipgloss.Style

	LabelStyle lipgloss.Style

	ErrorStyle   lipgloss.Style
	SuccessStyle lipgloss.Style
	WarningStyle lipgloss.Style
	InfoStyle    lipgloss.Style

	BoxStyle lipgloss.Style

	DetailKeyStyle   lipgloss.Style
	DetailValueStyle lipgloss.Style

	CardStyle           lipgloss.Style
	CardHeaderStyle     lipgloss.Style
	CardSectionStyle    lipgloss.Style
	CardFieldLabelStyle lipgloss.Style
	CardFieldValueStyle lipgloss.Style
	CardDividerStyle    lipgloss.Style
)

func init() {
	SetDarkMode(true)
}

// SetDarkMode rebuilds the style set for the chosen theme.
func SetDarkMode(dark bool) {
	p := darkPalette
	if !dark {
		p = lightPalette
	}

	HeaderStyle = lipgloss.NewStyle().
		Background(p.bgPanel).
		Foreground(p.textMain).
		Bold(true).
		Padding(0, 2).
		Height(HeaderHeight).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottomForeground(p.borderMain)

	HeaderTitleStyle = lipgloss.NewStyle().Foreground(p.accent).Bold(true)
	BreadcrumbStyle = lipgloss.NewStyle().Foreground(p.textFaint)
	BreadcrumbSeparatorStyle = lipgloss.NewStyle().Foreground(p.accentAlt)
	BreadcrumbActiveStyle = lipgloss.NewStyle().Foreground(p.accent).Bold(true)

	SidebarStyle = lipgloss.NewStyle().
		Background(p.bgBase).
		Padding(1, 0).
		BorderRight(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderRightForeground(p.borderDim)

	SidebarHeaderStyle = lipgloss.NewStyle().Foreground(p.accentAlt).Bold(true).Padding(0, 2).MarginBottom(1)
	SidebarItemStyle = lipgloss.NewStyle().Foreground(p.textSoft).Padding(0, 2)
	SidebarItemHoverStyle = lipgloss.NewStyle().Background(p.bgRaised).Foreground(p.accent).Padding(0, 2)
	SidebarItemSelectedStyle = lipgloss.NewStyle().Background(p.bgRaised).Foreground(p.accent).Bold(true).Padding(0, 2)
	SidebarToggleStyle = lipgloss.NewStyle().Foreground(p.accentAlt).Padding(0, 1)

	FooterStyle = lipgloss.NewStyle().
		Background(p.bgBase).
		Foreground(p.textSoft).
		Padding(0, 2).
		Height(FooterHeight).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderTopForeground(p.borderMain)

	FooterKeyStyle = lipgloss.NewStyle().Foreground(p.good).Bold(true)
	FooterLabelStyle = lipgloss.NewStyle().Foreground(p.textMain)
	FooterHelpStyle = lipgloss.NewStyle().Foreground(p.textFaint)

	ContentStyle = lipgloss.NewStyle().Background(p.bgBase).Padding(1, 2)

	TitleStyle = lipgloss.NewStyle().Bold(true).Foreground(p.accent).MarginBottom(1)
	SubtitleStyle = lipgloss.NewStyle().Foreground(p.accentAlt).MarginBottom(1)

	MenuItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(p.textSoft)
	SelectedMenuItemStyle = lipgloss.NewStyle().PaddingLeft(2).Foreground(p.accent).Bold(true)
	CursorStyle = lipgloss.NewStyle().Foreground(p.accentAlt).Bold(true)

	StatusActiveStyle = lipgloss.NewStyle().Foreground(p.good).Bold(true)
	StatusInactiveStyle = lipgloss.NewStyle().Foreground(p.bad).Bold(true)
	StatusPendingStyle = lipgloss.NewStyle().Foreground(p.warn).Bold(true)
	StatusInfoStyle = lipgloss.NewStyle().Foreground(p.info).Bold(true)
	StatusOfflineStyle = lipgloss.NewStyle().Foreground(p.textFaint)

	TableHeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(p.accent).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.borderDim)

	LabelStyle = lipgloss.NewStyle().Foreground(p.accentAlt)

	ErrorStyle = lipgloss.NewStyle().Foreground(p.bad).Bold(true).MarginTop(1)
	SuccessStyle = lipgloss.NewStyle().Foreground(p.good).Bold(true).MarginTop(1)
	WarningStyle = lipgloss.NewStyle().Foreground(p.warn).Bold(true).MarginTop(1)
	InfoStyle = lipgloss.NewStyle().Foreground(p.info).MarginTop(1)

	BoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.accent).
		Padding(1, 2)

	DetailKeyStyle = lipgloss.NewStyle().Foreground(p.accentAlt).Width(20)
	DetailValueStyle = lipgloss.NewStyle().Foreground(p.textMain)

	CardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.borderDim).
		Padding(1, 2).
		MarginBottom(1)

	CardHeaderStyle = lipgloss.NewStyle().
		Foreground(p.accent).
		Bold(true).
		BorderBottom(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(p.borderDim).
		MarginBottom(1).
		PaddingBottom(1)

	CardSectionStyle = lipgloss.NewStyle().Foreground(p.accentAlt).Bold(true).MarginTop(1).MarginBottom(1)
	CardFieldLabelStyle = lipgloss.NewStyle().Foreground(p.textFaint).Width(18)
	CardFieldValueStyle = lipgloss.NewStyle().Foreground(p.textMain)
	CardDividerStyle = lipgloss.NewStyle().Foreground(p.borderDim)
}

// FormatStatus returns a styled status string for the billing domain.
// Matching is case-insensitive.
func FormatStatus(status string) string {
	normalized := strings.ToUpper(status)
	switch normalized {
	case "ACTIVE", "PAID", "COMPLETED":
		return StatusActiveStyle.Render(normalized)
	case "PPAID", "PENDING", "IN_PROGRESS", "POSTPAID":
		return StatusPendingStyle.Render(normalized)
	case "UNPAID", "CANCELED", "EXPIRED":
		return StatusInactiveStyle.Render(normalized)
	case "INACTIVE", "DISABLED":
		return StatusOfflineStyle.Render(normalized)
	default:
		return StatusInfoStyle.Render(normalized)
	}
}

// FormatBool returns a styled Yes/No.
func FormatBool(b bool) string {
	if b {
		return StatusActiveStyle.Render("Yes")
	}
	return StatusInactiveStyle.Render("No")
}

// FormatHelpItem renders a footer shortcut as "Key Label".
func FormatHelpItem(key, label string) string {
	return FooterKeyStyle.Render(key) + " " + FooterLabelStyle.Render(label)
}

// CardField is one label/value row in a detail card.
type CardField struct {
	Label string
	Value string
}

// CardSection groups fields under a heading.
type CardSection struct {
	Title  string
	Fields []CardField
}

// RenderCardHeader renders a card header line.
func RenderCardHeader(title string) string {
	return CardHeaderStyle.Render("■ " + title)
}

// RenderCardField renders one field row.
func RenderCardField(f CardField) string {
	return "  " + CardFieldLabelStyle.Render(f.Label) + CardFieldValueStyle.Render(f.Value)
}

// RenderCardSection renders a section heading plus its fields.
func RenderCardSection(s CardSection) string {
	var b strings.Builder
	if s.Title != "" {
		b.WriteString(CardSectionStyle.Render(s.Title) + "\n")
	}
	for _, f := range s.Fields {
		b.WriteString(RenderCardField(f) + "\n")
	}
	return b.String()
}

// RenderCardDivider renders a horizontal divider.
func RenderCardDivider(width int) string {
	return CardDividerStyle.Render(strings.Repeat("─", width))
}

// RenderCard renders a bordered card with divided sections.
func RenderCard(header string, sections []CardSection, width int) string {
	var b strings.Builder
	b.WriteString(header + "\n\n")
	for i, s := range sections {
		b.WriteString(RenderCardSection(s))
		if i < len(sections)-1 {
			b.WriteString(RenderCardDivider(width-6) + "\n")
		}
	}
	return CardStyle.Width(width).Render(b.String())
}
