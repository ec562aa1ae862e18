package constant

// Glyphs
const (
	// BallChar is the ball glyph
	BallChar = '●'

	// BlockChar is used for paddles and the horizontal walls
	BlockChar = '█'
)
