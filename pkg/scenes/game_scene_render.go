package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/emberwave/pkg/components"
	"github.com/decker502/emberwave/pkg/geom"
	"github.com/decker502/emberwave/pkg/types"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	colorBackground = color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 0xff}
	colorPlatform   = color.RGBA{R: 0x47, G: 0x55, B: 0x69, A: 0xff}
	colorDoor       = color.RGBA{R: 0x92, G: 0x40, B: 0x0e, A: 0xff}
	colorDoorOpen   = color.RGBA{R: 0x92, G: 0x40, B: 0x0e, A: 0x40}
	colorPlate      = color.RGBA{R: 0xa1, G: 0xa1, B: 0xaa, A: 0xff}
	colorPlateOn    = color.RGBA{R: 0xfa, G: 0xcc, B: 0x15, A: 0xff}
	colorCrate      = color.RGBA{R: 0xa1, G: 0x62, B: 0x07, A: 0xff}
	colorEnemy      = color.RGBA{R: 0x7c, G: 0x3a, B: 0xed, A: 0xff}
	colorWater      = color.RGBA{R: 0x38, G: 0xbd, B: 0xf8, A: 0x60}
	colorTether     = color.RGBA{R: 0xe2, G: 0xe8, B: 0xf0, A: 0xff}
	colorTaut       = color.RGBA{R: 0xf8, G: 0x71, B: 0x71, A: 0xff}
	colorOverlay    = color.RGBA{A: 0x99}

	actorColors = map[types.ActorColor]color.RGBA{
		types.ColorRed:  {R: 0xef, G: 0x44, B: 0x44, A: 0xff},
		types.ColorBlue: {R: 0x3b, G: 0x82, B: 0xf6, A: 0xff},
	}

	hazardColors = map[types.HazardKind]color.RGBA{
		types.HazardFire:   {R: 0xf9, G: 0x73, B: 0x16, A: 0xff},
		types.HazardWater:  {R: 0x0e, G: 0xa5, B: 0xe9, A: 0xff},
		types.HazardPoison: {R: 0x22, G: 0xc5, B: 0x5e, A: 0xff},
	}
)

// Draw 绘制关卡、角色和 HUD
func (s *GameScene) Draw(screen *ebiten.Image) {
	w := s.sim.World()
	screen.Fill(colorBackground)

	for _, p := range w.Platforms {
		clr := colorPlatform
		if p.Color != types.ColorNone {
			clr = actorColors[p.Color]
			clr.A = 0x80
		}
		fillRect(screen, p.Rect, clr)
	}
	for _, d := range w.Doors {
		if d.Open() {
			fillRect(screen, d.Rect, colorDoorOpen)
		} else {
			fillRect(screen, d.Rect, colorDoor)
		}
	}
	for _, p := range w.Plates {
		if p.Active {
			fillRect(screen, p.Rect, colorPlateOn)
		} else {
			fillRect(screen, p.Rect, colorPlate)
		}
	}
	for _, h := range w.Hazards {
		fillRect(screen, h.Rect, hazardColors[h.Kind])
	}
	for _, e := range w.Exits {
		strokeRect(screen, e.Rect, actorColors[e.Color])
	}
	for _, g := range w.Gems {
		if !g.Collected {
			fillRect(screen, g.Rect, actorColors[g.Color])
		}
	}
	for _, c := range w.Crates {
		fillRect(screen, c.Rect(), colorCrate)
	}
	for _, e := range w.Enemies {
		fillRect(screen, e.Rect(), colorEnemy)
	}

	if w.Tether != nil && s.deps.Settings.GetSettings().ShowTether {
		s.drawTether(screen, w.Actors[0], w.Actors[1], w.Tether.MaxLength)
	}
	for _, a := range w.Actors {
		fillRect(screen, a.Rect(), actorColors[a.Color])
	}

	if w.Rising != nil && w.Rising.Level < w.Height {
		fillRect(screen, geom.NewRect(0, w.Rising.Level, w.Width, w.Height-w.Rising.Level), colorWater)
	}

	s.drawHUD(screen)
}

func (s *GameScene) drawTether(screen *ebiten.Image, a, b *components.Actor, maxLength float64) {
	ca, cb := a.Center(), b.Center()
	clr := colorTether
	if s.last.TetherDistance >= maxLength*0.95 {
		clr = colorTaut
	}
	vector.StrokeLine(screen, float32(ca.X()), float32(ca.Y()), float32(cb.X()), float32(cb.Y()), 2, clr, true)
}

func (s *GameScene) drawHUD(screen *ebiten.Image) {
	w := s.sim.World()
	r := s.last

	hud := fmt.Sprintf("Level %s  Time %.1fs  Deaths %d  Gems %d/%d",
		w.ID, r.Elapsed, r.Deaths, r.GemsCollected, len(w.Gems))
	if w.Tether != nil {
		hud += fmt.Sprintf("  Chain %.0f / %.0f", r.TetherDistance, w.Tether.MaxLength)
	}
	ebitenutil.DebugPrintAt(screen, hud, 8, 6)
	ebitenutil.DebugPrintAt(screen, "P pause  R reset  T chain", 8, 22)

	if s.messageTimer > 0 && s.message != "" {
		ebitenutil.DebugPrintAt(screen, s.message, 8, 38)
	}

	bounds := screen.Bounds()
	cx, cy := bounds.Dx()/2-80, bounds.Dy()/2
	switch {
	case r.Completed:
		vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), colorOverlay, false)
		msg := "Level Complete!"
		if r.AllGemsCollected {
			msg += " + Gem Master!"
		}
		ebitenutil.DebugPrintAt(screen, msg, cx, cy)
		ebitenutil.DebugPrintAt(screen, "Enter: next level", cx, cy+16)
	case r.Paused:
		vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), colorOverlay, false)
		ebitenutil.DebugPrintAt(screen, "Paused", cx, cy)
	}
}

func fillRect(screen *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

func strokeRect(screen *ebiten.Image, r geom.Rect, clr color.Color) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 2, clr, false)
}
