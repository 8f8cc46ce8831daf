package render

import (
	"image/color"

	"caticorn/internal/assets"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// --- Colors ---
var (
	ColBg       = color.RGBA{0x00, 0x00, 0x00, 0xff}
	ColFur      = color.RGBA{0xff, 0xf4, 0xfa, 0xff}
	ColPink     = color.RGBA{0xff, 0x8f, 0xc7, 0xff}
	ColHorn     = color.RGBA{0xff, 0xd7, 0x3a, 0xff}
	ColEye      = color.RGBA{0x20, 0x10, 0x30, 0xff}
	ColDough    = color.RGBA{0xd9, 0x9a, 0x5b, 0xff}
	ColIcing    = color.RGBA{0xf2, 0x6d, 0xb0, 0xff}
	ColSprinkle = []color.RGBA{
		{0x5b, 0xd3, 0xff, 0xff},
		{0xff, 0xf1, 0x5b, 0xff},
		{0x8a, 0xff, 0x8a, 0xff},
		{0xff, 0xff, 0xff, 0xff},
	}
)

// Sprite sizes in pixels
const (
	CaticornSize = 96
	DonutSize    = 64
)

var spriteBook = map[string]func() *ebiten.Image{
	assets.SpriteCaticorn: drawCaticorn,
	assets.SpriteDonut:    drawDonut,
}

// drawCaticorn paints the player: a round white cat with a horn.
func drawCaticorn() *ebiten.Image {
	img := ebiten.NewImage(CaticornSize, CaticornSize)
	const cx, cy = CaticornSize / 2, 58

	// 1. Ears
	vector.DrawFilledCircle(img, cx-22, cy-24, 11, ColFur, true)
	vector.DrawFilledCircle(img, cx+22, cy-24, 11, ColFur, true)
	vector.DrawFilledCircle(img, cx-22, cy-24, 6, ColPink, true)
	vector.DrawFilledCircle(img, cx+22, cy-24, 6, ColPink, true)

	// 2. Horn
	vector.StrokeLine(img, cx, cy-26, cx, 4, 7, ColHorn, true)
	vector.StrokeLine(img, cx-3, cy-34, cx+3, cy-38, 1.5, ColEye, true)
	vector.StrokeLine(img, cx-3, cy-44, cx+3, cy-48, 1.5, ColEye, true)

	// 3. Head
	vector.DrawFilledCircle(img, cx, cy, 30, ColFur, true)

	// 4. Eyes
	vector.DrawFilledCircle(img, cx-11, cy-4, 5, ColEye, true)
	vector.DrawFilledCircle(img, cx+11, cy-4, 5, ColEye, true)
	vector.DrawFilledCircle(img, cx-10, cy-6, 1.5, ColFur, true)
	vector.DrawFilledCircle(img, cx+12, cy-6, 1.5, ColFur, true)

	// 5. Nose and whiskers
	vector.DrawFilledCircle(img, cx, cy+6, 3, ColPink, true)
	for _, dy := range []float32{4, 9} {
		vector.StrokeLine(img, cx-8, cy+6, cx-28, cy+dy, 1, ColEye, true)
		vector.StrokeLine(img, cx+8, cy+6, cx+28, cy+dy, 1, ColEye, true)
	}

	// 6. Cheeks
	vector.DrawFilledCircle(img, cx-18, cy+10, 4, ColPink, true)
	vector.DrawFilledCircle(img, cx+18, cy+10, 4, ColPink, true)

	return img
}

// drawDonut paints a candy: iced ring with sprinkles.
func drawDonut() *ebiten.Image {
	img := ebiten.NewImage(DonutSize, DonutSize)
	const c = DonutSize / 2

	vector.DrawFilledCircle(img, c, c, 29, ColDough, true)
	vector.DrawFilledCircle(img, c, c, 24, ColIcing, true)

	// Sprinkles on a fixed pattern around the ring
	spots := [][4]float32{
		{c - 14, c - 10, c - 10, c - 14},
		{c + 8, c - 16, c + 13, c - 13},
		{c + 15, c + 4, c + 17, c + 9},
		{c - 4, c + 15, c + 1, c + 17},
		{c - 17, c + 6, c - 15, c + 11},
		{c + 3, c + 11, c + 8, c + 8},
	}
	for i, s := range spots {
		vector.StrokeLine(img, s[0], s[1], s[2], s[3], 2.5, ColSprinkle[i%len(ColSprinkle)], true)
	}

	// Hole
	vector.DrawFilledCircle(img, c, c, 9, ColDough, true)
	vector.DrawFilledCircle(img, c, c, 7, ColBg, true)

	return img
}
