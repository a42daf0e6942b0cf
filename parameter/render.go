package parameter

// Terminal rendering
const (
	// StatusLines is the number of rows reserved below the playfield
	StatusLines = 1

	EnemyGlyphA     = 'W'
	EnemyGlyphB     = 'V'
	PlayerGlyph     = 'A'
	ProjectileGlyph = '|'
	PathGlyph       = '·'
	FireMarkGlyph   = '*'
	HitboxGlyph     = '░'
)
