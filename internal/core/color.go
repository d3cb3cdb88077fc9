package core

// Color is a semantic foreground color for a screen cell.
// The platform layer maps each value to a terminal color.
type Color uint8

const (
	ColorDefault Color = iota
	ColorIce           // icicles
	ColorPlayer        // the Icicles player
	ColorRain          // raindrops
	ColorBucket        // the Drop bucket
	ColorGround        // floor line
	ColorHUD           // score and status text
	ColorAlert         // hit flash, warnings
)
