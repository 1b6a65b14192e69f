// Package render draws a simulation snapshot onto an ebiten image. It is a
// pure consumer: it never mutates the snapshot and keeps no frame state
// beyond the reusable vertex buffers.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"pond-pet/widget/internal/config"
	"pond-pet/widget/internal/phase"
	"pond-pet/widget/internal/pond"
	"pond-pet/widget/internal/sim"
)

// whiteImage backs the path triangles. SubImage avoids bleeding at the
// texture edge when antialiasing samples outside the pixel.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Renderer paints snapshots for a fixed widget size and palette.
type Renderer struct {
	cfg    config.Config
	layout pond.Layout
	theme  Theme

	vertices []ebiten.Vertex
	indices  []uint16
}

// New builds a renderer for the configured widget geometry.
func New(cfg config.Config) *Renderer {
	return &Renderer{
		cfg:    cfg,
		layout: pond.NewLayout(cfg.Window.Width, cfg.Window.Height),
		theme:  DefaultTheme(),
	}
}

// Draw paints a full frame, back to front: sky, celestial bodies, the rare
// mountain scene, rain, lotus, pond, fish, ripples, drops.
func (r *Renderer) Draw(dst *ebiten.Image, snap sim.Snapshot) {
	r.drawSky(dst, snap.Phase.Phase)
	r.drawStars(dst, snap)
	r.drawMoon(dst, snap.Phase)
	r.drawSun(dst, snap.Phase)
	if snap.Uptime.Unlocked {
		r.drawMountains(dst)
	}
	r.drawRain(dst, snap.Pond.Rain)
	r.drawLotus(dst, snap.Pond.Leaves)
	r.drawPond(dst)
	r.drawFish(dst, snap.Pond.Fish)
	r.drawRipples(dst, snap.Pond.Ripples)
	r.drawDrops(dst, snap.Pond.Drops)
}

// DrawTooltip prints the key help line centered near the top edge.
func (r *Renderer) DrawTooltip(dst *ebiten.Image, text string) {
	// DebugPrint glyphs are 6px wide.
	x := (r.cfg.Window.Width - len(text)*6) / 2
	if x < 0 {
		x = 0
	}
	ebitenutil.DebugPrintAt(dst, text, x, 14)
}

func (r *Renderer) drawSky(dst *ebiten.Image, p phase.Phase) {
	w := float32(r.layout.Width)
	h := float32(r.layout.Height)
	vector.DrawFilledRect(dst, 0, 0, w, h, r.theme.SkyColor(p), false)
}

func (r *Renderer) drawStars(dst *ebiten.Image, snap sim.Snapshot) {
	dim := phase.StarBrightness(snap.Phase.Phase)
	if dim <= 0 {
		return
	}
	base := r.cfg.Stars.BaseBrightness
	swing := r.cfg.Stars.TwinkleRange
	for _, s := range snap.Pond.Stars {
		if !s.Visible {
			continue
		}
		clr := r.theme.Star
		clr.A = uint8(float64(clr.A) * s.Brightness(base, swing) * dim)
		vector.DrawFilledCircle(dst, float32(s.Pos.X), float32(s.Pos.Y), float32(s.Size), clr, true)
	}
}

func (r *Renderer) drawMoon(dst *ebiten.Image, ph phase.State) {
	if !ph.MoonVisible {
		return
	}
	x := float32(r.layout.Width - 70)
	y := float32(60)
	glow := r.theme.Moon
	glow.A = 30
	vector.DrawFilledCircle(dst, x, y, 40, glow, true)
	glow.A = 50
	vector.DrawFilledCircle(dst, x, y, 30, glow, true)
	vector.DrawFilledCircle(dst, x, y, 20, r.theme.Moon, true)
	// Offset overlay disc carves the crescent.
	vector.DrawFilledCircle(dst, x+8, y-3, 16, r.theme.MoonShadow, true)
}

func (r *Renderer) drawSun(dst *ebiten.Image, ph phase.State) {
	if ph.SunElevation <= 0 {
		return
	}
	x := float32(r.layout.Width / 2)
	y := float32(r.layout.Height*0.6875 - r.layout.Height*0.5*ph.SunElevation)
	clr := r.theme.SunColor(ph.Phase)
	const sunRadius = 25
	for i := 3; i > 0; i-- {
		glow := clr
		glow.A = uint8(20 + i*10)
		vector.DrawFilledCircle(dst, x, y, float32(sunRadius+i*15), glow, true)
	}
	vector.DrawFilledCircle(dst, x, y, sunRadius, clr, true)
}

// drawMountains paints the sunlit peaks, the scene long uptime unlocks.
// Coordinates scale from the classic 320x320 arrangement.
func (r *Renderer) drawMountains(dst *ebiten.Image) {
	sx := r.layout.Width / 320
	sy := r.layout.Height / 320
	pt := func(x, y float64) (float32, float32) {
		return float32(x * sx), float32(y * sy)
	}
	bx1, by1 := pt(30, 220)
	bx2, by2 := pt(160, 80)
	bx3, by3 := pt(290, 220)
	r.fillTriangle(dst, r.theme.MountainBack, bx1, by1, bx2, by2, bx3, by3)
	fx1, fy1 := pt(70, 200)
	fx2, fy2 := pt(160, 100)
	fx3, fy3 := pt(250, 200)
	r.fillTriangle(dst, r.theme.MountainFront, fx1, fy1, fx2, fy2, fx3, fy3)
	gx1, gy1 := pt(140, 105)
	gx2, gy2 := pt(160, 80)
	gx3, gy3 := pt(180, 105)
	r.fillTriangle(dst, r.theme.MountainGlow, gx1, gy1, gx2, gy2, gx3, gy3)
}

func (r *Renderer) drawRain(dst *ebiten.Image, rain []pond.RainDrop) {
	for _, drop := range rain {
		x := float32(drop.Pos.X)
		y := float32(drop.Pos.Y)
		vector.StrokeLine(dst, x, y, x, y+float32(drop.Length), 1, r.theme.Rain, false)
	}
}

func (r *Renderer) drawLotus(dst *ebiten.Image, leaves []pond.LotusLeaf) {
	for _, leaf := range leaves {
		cx := float32(leaf.Pos.X + leaf.SwayOffset())
		cy := float32(leaf.Pos.Y)
		rx := float32(leaf.Size)
		ry := float32(leaf.Size / 2)
		r.fillEllipse(dst, cx, cy, rx, ry, r.theme.LotusLeaf)
		vector.StrokeLine(dst, cx, cy-ry, cx, cy+ry, 1, r.theme.LotusVein, false)
	}
}

func (r *Renderer) drawPond(dst *ebiten.Image) {
	w := r.layout.Width
	h := r.layout.Height
	r.fillEllipse(dst,
		float32(w/2), float32(h-31), float32(w/2-48), 21, r.theme.WaterShadow)
	r.fillEllipse(dst,
		float32(w/2), float32(h-32.5), float32(w/2-45), 22.5, r.theme.WaterMain)
	r.fillEllipse(dst,
		float32(w/2), float32(h-44.5), float32(w/2-70), 7.5, r.theme.WaterHighlight)
}

func (r *Renderer) drawFish(dst *ebiten.Image, fish []pond.Fish) {
	for _, f := range fish {
		cx := float32(f.Pos.X)
		cy := float32(f.Pos.Y)
		size := float32(f.Size)
		// Body leads in the swim direction, tail trails behind.
		bodyOffset := float32(f.Dir) * size * 0.25
		r.fillEllipse(dst, cx+bodyOffset, cy, size*0.75, size/2, r.theme.FishBody)
		tailX := cx - float32(f.Dir)*size*0.5
		tipX := tailX - float32(f.Dir)*size*0.5
		r.fillTriangle(dst, r.theme.FishTail,
			tipX, cy,
			tailX, cy-size/2,
			tailX, cy+size/2,
		)
		eyeX := cx + float32(f.Dir)*size*0.6
		vector.DrawFilledCircle(dst, eyeX, cy-size/6, 2, r.theme.FishEye, true)
	}
}

func (r *Renderer) drawRipples(dst *ebiten.Image, ripples []pond.Ripple) {
	for _, rip := range ripples {
		if rip.Opacity <= 0 {
			continue
		}
		clr := r.theme.Ripple
		clr.A = uint8(float64(clr.A) * rip.Opacity)
		// Flattened to a quarter-height ellipse to read as a surface ring.
		r.strokeEllipse(dst,
			float32(rip.Center.X), float32(rip.Center.Y),
			float32(rip.Radius), float32(rip.Radius/4), clr)
	}
}

func (r *Renderer) drawDrops(dst *ebiten.Image, drops []pond.WaterDrop) {
	for _, d := range drops {
		clr := r.theme.Drop
		clr.A = uint8(float64(clr.A) * d.FadeRatio())
		vector.DrawFilledCircle(dst, float32(d.Pos.X), float32(d.Pos.Y), float32(d.Size/2), clr, true)
	}
}

// kappa approximates a quarter ellipse with one cubic segment.
const kappa = 0.5522847

func appendEllipse(p *vector.Path, cx, cy, rx, ry float32) {
	kx := kappa * rx
	ky := kappa * ry
	p.MoveTo(cx+rx, cy)
	p.CubicTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	p.CubicTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	p.CubicTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	p.CubicTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	p.Close()
}

func (r *Renderer) fillEllipse(dst *ebiten.Image, cx, cy, rx, ry float32, clr color.NRGBA) {
	var p vector.Path
	appendEllipse(&p, cx, cy, rx, ry)
	r.fillPath(dst, &p, clr)
}

func (r *Renderer) strokeEllipse(dst *ebiten.Image, cx, cy, rx, ry float32, clr color.NRGBA) {
	var p vector.Path
	appendEllipse(&p, cx, cy, rx, ry)
	var opts vector.StrokeOptions
	opts.Width = 1
	r.vertices, r.indices = p.AppendVerticesAndIndicesForStroke(r.vertices[:0], r.indices[:0], &opts)
	r.drawTriangles(dst, clr)
}

func (r *Renderer) fillTriangle(dst *ebiten.Image, clr color.NRGBA, x0, y0, x1, y1, x2, y2 float32) {
	var p vector.Path
	p.MoveTo(x0, y0)
	p.LineTo(x1, y1)
	p.LineTo(x2, y2)
	p.Close()
	r.fillPath(dst, &p, clr)
}

func (r *Renderer) fillPath(dst *ebiten.Image, p *vector.Path, clr color.NRGBA) {
	r.vertices, r.indices = p.AppendVerticesAndIndicesForFilling(r.vertices[:0], r.indices[:0])
	r.drawTriangles(dst, clr)
}

func (r *Renderer) drawTriangles(dst *ebiten.Image, clr color.NRGBA) {
	cr, cg, cb, ca := premultiply(clr)
	for i := range r.vertices {
		r.vertices[i].SrcX = 1
		r.vertices[i].SrcY = 1
		r.vertices[i].ColorR = cr
		r.vertices[i].ColorG = cg
		r.vertices[i].ColorB = cb
		r.vertices[i].ColorA = ca
	}
	opts := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  ebiten.FillRuleNonZero,
	}
	dst.DrawTriangles(r.vertices, r.indices, whiteSubImage, opts)
}

func premultiply(clr color.NRGBA) (cr, cg, cb, ca float32) {
	a := float32(clr.A) / 0xff
	return float32(clr.R) / 0xff * a, float32(clr.G) / 0xff * a, float32(clr.B) / 0xff * a, a
}
