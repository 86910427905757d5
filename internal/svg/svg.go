// Package svg implements the sketch drawing surface as an SVG document.
// Drawing calls append elements in order; nothing is rasterized, so output
// bytes are a pure function of the command stream.
package svg

import (
	"fmt"
	"io"
	"strings"

	"github.com/ray-zero3/hatchlog/internal/sketch"
)

// paperColor is the document background.
const paperColor = "#faf8f3"

// Canvas is an SVG-backed sketch.Surface. It also acts as a BufferFactory:
// offscreen buffers become nested <svg> viewports, which clip like real
// offscreen targets when blitted.
type Canvas struct {
	w, h  float64
	elems []string

	stroke       sketch.RGB
	strokeAlpha  float64
	strokeWeight float64
	fill         sketch.RGB
	fillAlpha    float64
	hasStroke    bool
	hasFill      bool
}

// New creates an empty canvas of the given pixel size.
func New(w, h float64) *Canvas {
	return &Canvas{w: w, h: h, strokeWeight: 1, hasStroke: true}
}

func (c *Canvas) SetStroke(col sketch.RGB, alpha float64) {
	c.stroke = col
	c.strokeAlpha = alpha
	c.hasStroke = true
}

func (c *Canvas) SetStrokeWeight(px float64) { c.strokeWeight = px }

func (c *Canvas) SetFill(col sketch.RGB, alpha float64) {
	c.fill = col
	c.fillAlpha = alpha
	c.hasFill = true
}

func (c *Canvas) NoFill()   { c.hasFill = false }
func (c *Canvas) NoStroke() { c.hasStroke = false }

func (c *Canvas) Line(x1, y1, x2, y2 float64) {
	c.elems = append(c.elems, fmt.Sprintf(`<line x1="%s" y1="%s" x2="%s" y2="%s"%s/>`,
		num(x1), num(y1), num(x2), num(y2), c.strokeAttrs()))
}

func (c *Canvas) Rect(x, y, w, h float64) {
	c.elems = append(c.elems, fmt.Sprintf(`<rect x="%s" y="%s" width="%s" height="%s"%s%s/>`,
		num(x), num(y), num(w), num(h), c.fillAttrs(), c.strokeAttrs()))
}

// Ellipse takes a center point and full diameters, matching the surface
// contract rather than SVG's radius convention.
func (c *Canvas) Ellipse(x, y, w, h float64) {
	c.elems = append(c.elems, fmt.Sprintf(`<ellipse cx="%s" cy="%s" rx="%s" ry="%s"%s%s/>`,
		num(x), num(y), num(w/2), num(h/2), c.fillAttrs(), c.strokeAttrs()))
}

// NewBuffer allocates an offscreen canvas for tiled rendering.
func (c *Canvas) NewBuffer(w, h float64) sketch.Buffer {
	return &Buffer{Canvas: New(w, h)}
}

// WriteTo writes the complete SVG document.
func (c *Canvas) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`+"\n",
		num(c.w), num(c.h), num(c.w), num(c.h))
	fmt.Fprintf(&b, `<rect width="%s" height="%s" fill="%s"/>`+"\n", num(c.w), num(c.h), paperColor)
	for _, e := range c.elems {
		b.WriteString(e)
		b.WriteByte('\n')
	}
	b.WriteString("</svg>\n")

	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (c *Canvas) strokeAttrs() string {
	if !c.hasStroke {
		return ` stroke="none"`
	}
	return fmt.Sprintf(` stroke="rgb(%d,%d,%d)" stroke-opacity="%s" stroke-width="%s"`,
		c.stroke.R, c.stroke.G, c.stroke.B, num(c.strokeAlpha/255), num(c.strokeWeight))
}

func (c *Canvas) fillAttrs() string {
	if !c.hasFill {
		return ` fill="none"`
	}
	return fmt.Sprintf(` fill="rgb(%d,%d,%d)" fill-opacity="%s"`,
		c.fill.R, c.fill.G, c.fill.B, num(c.fillAlpha/255))
}

// Buffer is an offscreen canvas stitched into a destination as a nested,
// clipping <svg> viewport.
type Buffer struct {
	*Canvas
}

// BlitTo places the buffer at (x, y) on dst. Only SVG destinations are
// supported; blitting onto any other surface is a no-op.
func (b *Buffer) BlitTo(dst sketch.Surface, x, y float64) {
	target, ok := dst.(*Canvas)
	if !ok {
		return
	}
	var nested strings.Builder
	fmt.Fprintf(&nested, `<svg x="%s" y="%s" width="%s" height="%s" viewBox="0 0 %s %s">`,
		num(x), num(y), num(b.w), num(b.h), num(b.w), num(b.h))
	for _, e := range b.elems {
		nested.WriteString(e)
	}
	nested.WriteString("</svg>")
	target.elems = append(target.elems, nested.String())
}

// num formats a coordinate with three decimals, trimming trailing zeros so
// integral values stay short.
func num(v float64) string {
	s := fmt.Sprintf("%.3f", v)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
