package core

// Color is the foreground color of a screen cell.
// The platform maps each value to an ANSI 256-color code.
type Color uint8

// Palette used by the game. ColorDefault leaves the terminal's own color.
const (
	ColorDefault Color = iota
	ColorRoad
	ColorLane
	ColorBrick
	ColorBrickHit
	ColorCar
	ColorEffect
	ColorScore
	ColorLives
	ColorTurbo
	ColorExtreme
	ColorGameOver
)
