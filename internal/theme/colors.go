package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles, pane titles
)

// Auth status colors
const (
	ColorReady         Color = "2" // Green - authenticated
	ColorNotConfigured Color = "3" // Yellow - needs jira init
	ColorNotInstalled  Color = "1" // Red - binary missing
	ColorChecking      Color = "8" // Gray - check in flight
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorSpinner   Color = "205" // Pink
	ColorIssueKey  Color = "33"  // Blue - issue keys
	ColorComment   Color = "178" // Gold - comment headers
)
