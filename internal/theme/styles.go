package theme

import "github.com/charmbracelet/lipgloss"

// Main UI styles
var (
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	PaneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Auth status styles
var (
	ReadyStyle = lipgloss.NewStyle().
			Foreground(ColorReady)

	NotConfiguredStyle = lipgloss.NewStyle().
				Foreground(ColorNotConfigured)

	NotInstalledStyle = lipgloss.NewStyle().
				Foreground(ColorNotInstalled)

	CheckingStyle = lipgloss.NewStyle().
			Foreground(ColorChecking)
)

// Issue rendering styles
var (
	IssueKeyStyle = lipgloss.NewStyle().
			Foreground(ColorIssueKey).
			Bold(true)

	IssueStatusStyle = lipgloss.NewStyle().
				Foreground(ColorSubtle)

	CommentHeaderStyle = lipgloss.NewStyle().
				Foreground(ColorComment).
				Bold(true)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	TaglineStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Help screen styles
var (
	HelpDescStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	HelpGroupStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHelpGroup).
			MarginTop(1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorHighlight).
			Bold(true).
			Width(16)

	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// Spinner style
var SpinnerStyle = lipgloss.NewStyle().
	Foreground(ColorSpinner)

// Error style
var ErrorStyle = lipgloss.NewStyle().
	Foreground(ColorError).
	Bold(true)
