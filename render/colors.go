package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbPlayer     = tcell.NewRGBColor(100, 150, 255) // Normal Blue
	RgbPlayerHurt = tcell.NewRGBColor(60, 100, 200)  // Dark Blue, invulnerable blink
	RgbEnemy      = tcell.NewRGBColor(255, 80, 80)   // Normal Red
	RgbShotPlayer = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbShotEnemy  = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbPath       = tcell.NewRGBColor(80, 80, 80)    // Dim gray
	RgbFireMark   = tcell.NewRGBColor(180, 50, 50)   // Dark Red
	RgbHitbox     = tcell.NewRGBColor(0, 139, 139)   // Dark Cyan
)
