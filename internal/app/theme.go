package app

import "github.com/charmbracelet/lipgloss/v2"

var (
	headerStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	helpStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	statusStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	statusErrorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	statusInfoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("114"))
	noteTitleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	noteDraftStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true)
	selectedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("230")).Background(lipgloss.Color("236"))
	categoryStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	tagStyle           = lipgloss.NewStyle().Foreground(lipgloss.Color("108"))
	dividerStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	searchLabelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("69")).Bold(true)
	fieldLabelStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	fieldActiveStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("75")).Bold(true)
	dialogHeaderStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("251")).Background(lipgloss.Color("235")).Bold(true)
	dialogBodyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("235"))
	confirmBorderStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("208"))
	previewFrameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("238")).Padding(0, 1)
)
