package main

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/critterswap/ecs"
	"github.com/milk9111/critterswap/ecs/component"
)

// Terminal cells are about twice as tall as wide.
const (
	cellsPerUnitX = 4.0
	cellsPerUnitY = 2.0
	hudRows       = 2
)

var (
	groundStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkOliveGreen)
	flyStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	hudStyle    = tcell.StyleDefault.Foreground(tcell.ColorSilver)
	chargeStyle = tcell.StyleDefault.Foreground(tcell.ColorGold).Bold(true)
	sprintStyle = tcell.StyleDefault.Foreground(tcell.ColorOrangeRed).Bold(true)
)

type termView struct {
	cx, cy        float64
	width, height int
}

func (v termView) cell(x, y float64) (int, int) {
	col := int(math.Round((x-v.cx)*cellsPerUnitX)) + v.width/2
	row := int(math.Round(-(y-v.cy)*cellsPerUnitY)) + hudRows + (v.height-hudRows)/2
	return col, row
}

func (g *Game) draw() {
	g.screen.Clear()
	w := g.session.World

	v := termView{width: g.width, height: g.height}
	if camEntity, ok := w.First(component.CameraComponent.Kind()); ok {
		if t, ok := ecs.Get(w, camEntity, component.TransformComponent); ok {
			v.cx, v.cy = t.X, t.Y
		}
	}

	ecs.ForEach3(w, component.GroundTagComponent.Kind(), component.TransformComponent.Kind(), component.PhysicsBodyComponent.Kind(), func(_ ecs.Entity, _ *component.GroundTag, t *component.Transform, b *component.PhysicsBody) {
		c0, r0 := v.cell(t.X-b.Width/2, t.Y+b.Height/2)
		c1, r1 := v.cell(t.X+b.Width/2, t.Y-b.Height/2)
		for row := max(r0, hudRows); row < min(r1, g.height); row++ {
			for col := max(c0, 0); col < min(c1, g.width); col++ {
				g.screen.SetContent(col, row, '█', nil, groundStyle)
			}
		}
	})

	ecs.ForEach2(w, component.CollectibleComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.Collectible, t *component.Transform) {
		g.put(v, t.X, t.Y, '*', flyStyle)
	})

	ecs.ForEach2(w, component.CritterComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, c *component.Critter, t *component.Transform) {
		if !c.Visible {
			return
		}
		cs, ok := g.styles[c.Name]
		if !ok {
			cs = critterStyle{glyph: '@', style: tcell.StyleDefault}
		}
		style := cs.style
		switch id := uint64(e); {
		case g.presenter.flag(id, "sprint"):
			style = sprintStyle
		case g.presenter.flag(id, "charge"):
			style = chargeStyle
		}
		if math.Abs(t.Rotation-180) < 90 {
			style = style.Reverse(true)
		}
		g.put(v, t.X, t.Y, cs.glyph, style)

		eye := '>'
		if c.FacingLeft {
			eye = '<'
		}
		dx := 0.25
		if c.FacingLeft {
			dx = -dx
		}
		g.put(v, t.X+dx, t.Y, eye, style)
	})

	g.drawHUD()
	g.screen.Show()
}

func (g *Game) put(v termView, x, y float64, r rune, style tcell.Style) {
	col, row := v.cell(x, y)
	if col < 0 || col >= g.width || row < hudRows || row >= g.height {
		return
	}
	g.screen.SetContent(col, row, r, nil, style)
}

func (g *Game) drawHUD() {
	w := g.session.World
	status := "no critter"
	if e, ok := g.session.ActiveCritter(); ok {
		c, _ := ecs.Get(w, e, component.CritterComponent)
		phase := ""
		if loco, ok := ecs.Get(w, e, component.LocomotionComponent); ok && loco.Controller != nil {
			phase = loco.Controller.Phase()
		}
		status = fmt.Sprintf("%s (%s)", c.Name, phase)
	}

	collected, unlocked := g.session.Progression()
	total := 0
	if p, ok := ecs.Get(w, g.session.Roster, component.ProgressComponent); ok {
		total = p.Total
	}

	line := fmt.Sprintf("%s  flies %d/%d  critters %d/%d  vol %.0f%%",
		status, collected, total, unlocked, len(g.session.Slots), g.store.Settings().Volume*100)
	if notice := g.session.Notice(); notice != "" {
		line += "  " + notice
	}
	g.text(0, 0, line, hudStyle)
	g.text(0, 1, "a/d move  space ability  f sprint  1-3/tab switch  +/- volume  q quit", hudStyle)
}

func (g *Game) text(col, row int, s string, style tcell.Style) {
	for _, r := range s {
		if col >= g.width {
			return
		}
		g.screen.SetContent(col, row, r, nil, style)
		col++
	}
}
