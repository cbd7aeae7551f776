package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"

	"github.com/milk9111/duel/common"
)

// World boxes keep their top edge in B; screen space adds the gauge strip.

func drawBox(screen *ebiten.Image, bb cp.BB, c color.Color) {
	vector.FillRect(screen, float32(bb.L), float32(bb.B)+arenaTop, float32(common.Width(bb)), float32(common.Height(bb)), c, false)
}

func strokeBox(screen *ebiten.Image, bb cp.BB, c color.Color) {
	vector.StrokeRect(screen, float32(bb.L), float32(bb.B)+arenaTop, float32(common.Width(bb)), float32(common.Height(bb)), 1, c, false)
}
