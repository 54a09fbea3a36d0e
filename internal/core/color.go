package core

// Color represents a foreground color for a screen cell.
// The platform layer maps these to terminal colors.
type Color uint8

// Colors used by the board, the gallows and the on-screen keyboard.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorCyan
	ColorIndigo
	ColorWhite
	ColorBrightWhite
	ColorGray
	ColorDim
)
