package core

// Color is a foreground colour for a screen cell.
type Color uint8

// Palette used by the ring game. The platform maps each entry to an ANSI
// 256-colour code.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
	ColorGray
	ColorPink
	ColorLime
)

// PlayerColors are the vivid colours a player can be recoloured to.
var PlayerColors = []Color{
	ColorYellow,
	ColorCyan,
	ColorMagenta,
	ColorLime,
	ColorOrange,
	ColorPink,
	ColorRed,
	ColorBlue,
}
