package main

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/critterswap/common"
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
	"golang.org/x/image/colornames"
)

// view maps y-up world units onto the base resolution, centred on the camera.
type view struct {
	cx, cy float64
	ppu    float64
}

func (v view) point(x, y float64) (float32, float32) {
	sx := (x-v.cx)*v.ppu + common.BaseWidth/2
	sy := common.BaseHeight/2 - (y-v.cy)*v.ppu
	return float32(sx), float32(sy)
}

// rect returns the top-left corner and size of a box centred on (x, y).
func (v view) rect(x, y, w, h float64) (float32, float32, float32, float32) {
	sx, sy := v.point(x-w/2, y+h/2)
	return sx, sy, float32(w * v.ppu), float32(h * v.ppu)
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	w := g.session.World
	camEntity, ok := w.First(component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent)
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent)
	if !ok {
		return
	}

	if g.world == nil {
		g.world = ebiten.NewImage(common.BaseWidth, common.BaseHeight)
	}
	g.world.Clear()

	ppu := common.PixelsPerUnit
	if cam.ViewHalfHeight > 0 {
		ppu = common.BaseHeight / (2 * cam.ViewHalfHeight)
	}
	v := view{cx: camTransform.X, cy: camTransform.Y, ppu: ppu}

	ecs.ForEach3(w, component.GroundTagComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, _ *component.GroundTag, t *component.Transform, b *component.PhysicsBody) {
		x, y, bw, bh := v.rect(t.X, t.Y, b.Width, b.Height)
		vector.FillRect(g.world, x, y, bw, bh, colornames.Darkolivegreen, false)
	})

	ecs.ForEach2(w, component.CollectibleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, c *component.Collectible, t *component.Transform) {
		x, y, cw, ch := v.rect(t.X, t.Y, c.Width/2, c.Height/2)
		vector.FillRect(g.world, x, y, cw, ch, colornames.Black, false)
		if g.debug {
			bx, by, bw, bh := v.rect(t.X, t.Y, c.Width, c.Height)
			vector.StrokeRect(g.world, bx, by, bw, bh, 1, colornames.Gray, false)
		}
	})

	ecs.ForEach3(w, component.CritterComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(e ecs.Entity, c *component.Critter, t *component.Transform, b *component.PhysicsBody) {
		if !c.Visible && !g.debug {
			return
		}
		x, y, bw, bh := v.rect(t.X, t.Y, b.Width, b.Height)
		if !c.Visible {
			vector.StrokeRect(g.world, x, y, bw, bh, 1, color.RGBA{R: 0x80, G: 0x80, B: 0x80, A: 0x80}, false)
			return
		}

		vector.FillRect(g.world, x, y, bw, bh, g.colors[c.Name], false)

		switch id := uint64(e); {
		case g.presenter.flag(id, "sprint"):
			vector.StrokeRect(g.world, x, y, bw, bh, 3, colornames.Orangered, false)
		case g.presenter.flag(id, "charge"):
			vector.StrokeRect(g.world, x, y, bw, bh, 2, colornames.Gold, false)
		}

		// eye sits toward the facing side on the critter's top, in local space
		lx, ly := b.Width*0.3, b.Height*0.2
		if c.FacingLeft {
			lx = -lx
		}
		rad := t.Rotation * math.Pi / 180
		ex := t.X + lx*math.Cos(rad) - ly*math.Sin(rad)
		ey := t.Y + lx*math.Sin(rad) + ly*math.Cos(rad)
		px, py := v.point(ex, ey)
		vector.FillCircle(g.world, px, py, float32(b.Height*v.ppu*0.12), colornames.White, true)

		if g.debug && b.Body != nil {
			vel := b.Body.Velocity()
			cx, cy := v.point(t.X, t.Y)
			tx, ty := v.point(t.X+vel.X*0.2, t.Y+vel.Y*0.2)
			vector.StrokeLine(g.world, cx, cy, tx, ty, 1, colornames.Red, true)
		}
	})

	if g.debug {
		drawSpace(g.world, g.session.Physics.Space(), v)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-common.BaseWidth/2, -common.BaseHeight/2)
	op.GeoM.Rotate(cam.Roll * math.Pi / 180)
	op.GeoM.Translate(common.BaseWidth/2, common.BaseHeight/2)
	screen.DrawImage(g.world, op)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	w := g.session.World
	var lines []string

	if e, ok := g.session.ActiveCritter(); ok {
		c, _ := ecs.Get(w, e, component.CritterComponent)
		phase := ""
		if loco, ok := ecs.Get(w, e, component.LocomotionComponent); ok && loco.Controller != nil {
			phase = loco.Controller.Phase()
		}
		lines = append(lines, fmt.Sprintf("%s (%s)", c.Name, phase))
	}

	collected, unlocked := g.session.Progression()
	total := 0
	if p, ok := ecs.Get(w, g.session.Roster, component.ProgressComponent); ok {
		total = p.Total
	}
	lines = append(lines,
		fmt.Sprintf("flies %d/%d  critters %d/%d", collected, total, unlocked, len(g.session.Slots)),
		volumeLabel(g.store.Settings().Volume),
	)
	if notice := g.session.Notice(); notice != "" {
		lines = append(lines, notice)
	}
	if g.debug {
		lines = append(lines, fmt.Sprintf("frames %d  fps %.1f  tps %.1f", g.frames, ebiten.ActualFPS(), ebiten.ActualTPS()))
	}
	lines = append(lines, "A/D move  Space ability  Shift sprint  1-3/Tab switch  Esc settings")

	op := &text.DrawOptions{}
	op.GeoM.Translate(12, 10)
	op.ColorScale.ScaleWithColor(colornames.Black)
	op.LineSpacing = 16
	text.Draw(screen, strings.Join(lines, "\n"), g.face, op)
}
