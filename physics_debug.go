package main

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/jakecoffman/cp"
)

// drawSpace outlines every shape currently in the space. Frozen critters are
// out of the space, so only the active one shows up.
func drawSpace(dst *ebiten.Image, space *cp.Space, v view) {
	if dst == nil || space == nil {
		return
	}
	cp.DrawSpace(space, &spaceDrawer{dst: dst, view: v})
}

type spaceDrawer struct {
	dst  *ebiten.Image
	view view
}

func (d *spaceDrawer) line(a, b cp.Vector, c color.Color) {
	ax, ay := d.view.point(a.X, a.Y)
	bx, by := d.view.point(b.X, b.Y)
	vector.StrokeLine(d.dst, ax, ay, bx, by, 1, c, false)
}

func (d *spaceDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	cx, cy := d.view.point(pos.X, pos.Y)
	vector.StrokeCircle(d.dst, cx, cy, float32(radius*d.view.ppu), 1, c, false)
	d.line(pos, cp.Vector{X: pos.X + math.Cos(angle)*radius, Y: pos.Y + math.Sin(angle)*radius}, c)
}

func (d *spaceDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(fill))
}

func (d *spaceDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.line(a, b, fcolorToRGBA(outline))
}

func (d *spaceDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	c := fcolorToRGBA(outline)
	for i := 0; i < count; i++ {
		d.line(verts[i], verts[(i+1)%count], c)
	}
}

func (d *spaceDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	x, y := d.view.point(pos.X, pos.Y)
	vector.FillRect(d.dst, x-float32(size)/2, y-float32(size)/2, float32(size), float32(size), fcolorToRGBA(fill), false)
}

func (d *spaceDrawer) Flags() uint {
	return cp.DRAW_SHAPES | cp.DRAW_COLLISION_POINTS
}

func (d *spaceDrawer) OutlineColor() cp.FColor {
	return cp.FColor{R: 0.2, G: 1.0, B: 0.2, A: 1.0}
}

func (d *spaceDrawer) ShapeColor(shape *cp.Shape, data interface{}) cp.FColor {
	if shape == nil {
		return cp.FColor{R: 1, G: 1, B: 1, A: 1}
	}
	if shape.Sensor() {
		return cp.FColor{R: 1.0, G: 0.85, B: 0.2, A: 1.0}
	}
	if shape.Body() != nil && shape.Body().GetType() == cp.BODY_STATIC {
		return cp.FColor{R: 0.4, G: 0.7, B: 1.0, A: 1.0}
	}
	return cp.FColor{R: 0.9, G: 0.4, B: 0.9, A: 1.0}
}

func (d *spaceDrawer) ConstraintColor() cp.FColor {
	return cp.FColor{R: 0.7, G: 0.7, B: 0.7, A: 1.0}
}

func (d *spaceDrawer) CollisionPointColor() cp.FColor {
	return cp.FColor{R: 1.0, G: 0.1, B: 0.1, A: 1.0}
}

func (d *spaceDrawer) Data() interface{} {
	return nil
}

func fcolorToRGBA(c cp.FColor) color.RGBA {
	return color.RGBA{
		R: uint8(math.Round(float64(c.R) * 255)),
		G: uint8(math.Round(float64(c.G) * 255)),
		B: uint8(math.Round(float64(c.B) * 255)),
		A: uint8(math.Round(float64(c.A) * 255)),
	}
}
