package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/SeamusWaldron/cubealg/internal/cube"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	stepStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	moveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("82"))

	refStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("141"))

	cancelledStyle = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("241"))

	resultStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	currentStyle = lipgloss.NewStyle().
			Bold(true).
			Reverse(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// stickerColors maps sticker colors to terminal colors.
var stickerColors = map[cube.Color]lipgloss.Color{
	cube.White:  lipgloss.Color("255"),
	cube.Yellow: lipgloss.Color("226"),
	cube.Green:  lipgloss.Color("34"),
	cube.Blue:   lipgloss.Color("27"),
	cube.Red:    lipgloss.Color("196"),
	cube.Orange: lipgloss.Color("208"),
	cube.Masked: lipgloss.Color("238"),
}

// sticker renders one facelet as a colored block, or as its letter when
// plain output is requested.
func sticker(c cube.Color, plain bool) string {
	if plain {
		return c.String() + " "
	}
	bg, ok := stickerColors[c]
	if !ok {
		return "? "
	}
	return lipgloss.NewStyle().Background(bg).Foreground(lipgloss.Color("0")).Render(c.String()) + " "
}
