package render

import (
	"math"
	"strings"

	"github.com/lixenwraith/muckpond/garden"
	"github.com/lixenwraith/muckpond/parameter"
)

// BackgroundLayer paints the pond water
type BackgroundLayer struct{}

func (l *BackgroundLayer) Render(ctx Context, buf *Buffer) {
	for y := 0; y < ctx.View.Height; y++ {
		for x := 0; x < ctx.View.Width; x++ {
			buf.SetBg(x, y, RgbWater, BlendReplace, 1)
		}
	}
}

// CellLayer draws the cell graph: glyph by ripeness, tint by muck
type CellLayer struct{}

func (l *CellLayer) Render(ctx Context, buf *Buffer) {
	if !ctx.View.Drawable() {
		return
	}
	for i := range ctx.Snapshot.Cells {
		c := &ctx.Snapshot.Cells[i]
		x, y, ok := ctx.View.ToScreen(c.Position)
		if !ok {
			continue
		}
		glyph, fg := cellGlyph(c.Ripe, c.Mucky)
		if c.Occupant != garden.NoAgent && c.Ripe {
			glyph, fg = parameter.GlyphLanding, RgbLanding
		}
		if c.Mucky {
			buf.SetBg(x, y, RgbMuckBg, BlendAlpha, 0.8)
		}
		buf.SetRune(x, y, glyph, fg)
	}
}

func cellGlyph(ripe, mucky bool) (rune, RGB) {
	switch {
	case ripe && mucky:
		return parameter.GlyphCellRipe, RgbCellMucky
	case ripe:
		return parameter.GlyphCellRipe, RgbCellRipe
	case mucky:
		return parameter.GlyphCellMucky, RgbCellMucky
	default:
		return parameter.GlyphCellBare, RgbCellBare
	}
}

// FeederLayer shades each cluster as a metaball field sampled at terminal cell centers
type FeederLayer struct{}

func (l *FeederLayer) Render(ctx Context, buf *Buffer) {
	if !ctx.View.Drawable() {
		return
	}
	for _, cl := range ctx.Snapshot.Clusters {
		if len(cl.Balls) == 0 {
			continue
		}

		// Bounding box in terminal cells around every ball and its halo
		minX, minY := ctx.View.Width, ctx.View.Height
		maxX, maxY := -1, -1
		for _, b := range cl.Balls {
			x, y, _ := ctx.View.ToScreen(b.Position)
			dx, dy := ctx.View.Span(b.Radius * 2)
			minX, maxX = min(minX, x-dx), max(maxX, x+dx)
			minY, maxY = min(minY, y-dy), max(maxY, y+dy)
		}
		minX, minY = max(minX, 0), max(minY, 0)
		maxX, maxY = min(maxX, ctx.View.Width-1), min(maxY, ctx.View.Height-1)

		alpha := max(cl.Opacity, 0.25)
		for y := minY; y <= maxY; y++ {
			for x := minX; x <= maxX; x++ {
				p := ctx.View.ToPond(x, y)
				field := 0.0
				for _, b := range cl.Balls {
					d2 := max(p.DistanceSq(b.Position), 1)
					field += b.Radius * b.Radius / d2
				}
				switch {
				case field >= parameter.MetaballThreshold:
					buf.SetBg(x, y, RgbFeeder, BlendAlpha, alpha)
					if cl.Glow > 0 {
						buf.SetBg(x, y, RgbSeedGlow, BlendAdd, cl.Glow*parameter.MetaballGlowBoost)
					}
				case field >= parameter.MetaballEdge:
					buf.SetBg(x, y, RgbFeederHalo, BlendMax, alpha)
				}
			}
		}
	}
}

// ForagerLayer draws each placed forager as an arrow along its heading
type ForagerLayer struct{}

func (l *ForagerLayer) Render(ctx Context, buf *Buffer) {
	if !ctx.View.Drawable() {
		return
	}
	for _, f := range ctx.Snapshot.Foragers {
		if f.Cell == garden.NoCell {
			continue
		}
		x, y, ok := ctx.View.ToScreen(f.Position)
		if !ok {
			continue
		}
		buf.SetRune(x, y, headingGlyph(f.Heading), RgbForager)
	}
}

// headingGlyph picks the nearest of eight compass arrows
func headingGlyph(heading float64) rune {
	sector := int(math.Round(heading / (math.Pi / 4)))
	sector %= len(parameter.GlyphHeading)
	if sector < 0 {
		sector += len(parameter.GlyphHeading)
	}
	return parameter.GlyphHeading[sector]
}

// FadeLayer darkens the pond while a board reset is in progress
type FadeLayer struct{}

func (l *FadeLayer) Render(ctx Context, buf *Buffer) {
	if ctx.Snapshot.Resetting {
		buf.Darken(ctx.Snapshot.Fade * 0.85)
	}
}

// hudKeys are the metrics shown in the status line, in order, with their labels
var hudKeys = []struct{ key, label string }{
	{"garden.mucky", "muck"},
	{"garden.ripe", "ripe"},
	{"feeder.clusters", "clusters"},
	{"feeder.bursts", "bursts"},
	{"endgame.resets", "resets"},
}

// HUDLayer draws the status line below the pond
type HUDLayer struct {
	Visible bool
}

func (l *HUDLayer) IsVisible() bool { return l.Visible }

func (l *HUDLayer) Render(ctx Context, buf *Buffer) {
	_, h := buf.Size()
	y := h - 1
	if y < 0 {
		return
	}
	buf.FillRow(y, RgbHUDBg)

	x := 0
	round := ctx.Snapshot.Round.String()
	x = buf.DrawText(x, y, " "+round[:8]+" ", RgbHUDBg, RgbHUDRound)

	values := make(map[string]string, len(ctx.Metrics))
	for _, m := range ctx.Metrics {
		values[m.Key] = m.Value
	}
	var sb strings.Builder
	for _, k := range hudKeys {
		v, ok := values[k.key]
		if !ok {
			continue
		}
		sb.WriteString(" ")
		sb.WriteString(k.label)
		sb.WriteString(" ")
		sb.WriteString(v)
	}
	x = buf.DrawText(x, y, sb.String()+" ", RgbHUDText, RgbHUDBg)

	if ctx.Snapshot.CanEnd {
		x = buf.DrawText(x, y, " "+parameter.TextCanEnd+" ", RgbHUDAlert, RgbHUDBg)
	}
	if ctx.Paused {
		x = buf.DrawText(x, y, parameter.TextPaused, RgbHUDBg, RgbHUDPaused)
	}
	if ctx.Muted {
		buf.DrawText(x, y, parameter.TextMuted, RgbHUDText, RgbHUDBg)
	} else {
		buf.DrawText(x, y, " "+parameter.AudioStr, RgbHUDText, RgbHUDBg)
	}
}

// OverlayLayer centers the reset message over the fading pond
type OverlayLayer struct{}

func (l *OverlayLayer) Render(ctx Context, buf *Buffer) {
	if !ctx.Snapshot.Resetting || ctx.View.Height == 0 {
		return
	}
	text := parameter.TextResetting
	n := len([]rune(text))
	x := max((ctx.View.Width-n)/2, 0)
	y := ctx.View.Height / 2
	fg := RgbOverlayTxt.Scale(1 - ctx.Snapshot.Fade*0.5)
	for i, r := range []rune(text) {
		buf.SetRune(x+i, y, r, fg)
	}
}
