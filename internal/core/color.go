package core

// Color identifies the palette entry of a screen cell.
// The host maps each entry to a terminal color.
type Color uint8

// Palette entries for game elements.
const (
	ColorDefault Color = iota
	ColorGround
	ColorBlock
	ColorPipe
	ColorMoving
	ColorBubu
	ColorDudu
	ColorGoomba
	ColorKoopa
	ColorCoin
	ColorPowerUp
	ColorHUD
	ColorAlert
)
