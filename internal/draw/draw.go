// Package draw renders a 2D-tree: its points in black, the vertical
// splitting segments in red and the horizontal ones in blue.
package draw

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/peterstace/kdtree"
)

var (
	background = color.RGBA{255, 255, 255, 255}
	pointColor = color.RGBA{0, 0, 0, 255}
	// VerticalColor is used for splits on X.
	VerticalColor = color.RGBA{255, 0, 0, 255}
	// HorizontalColor is used for splits on Y.
	HorizontalColor = color.RGBA{0, 0, 255, 255}
)

type canvas struct {
	img    *image.RGBA
	domain kdtree.Rect
	size   int
}

// Render draws t onto a size by size image covering t's domain.
func Render(t *kdtree.Tree, size, pointRadius int) *image.RGBA {
	r := image.Rect(0, 0, size, size)
	c := canvas{img: image.NewRGBA(r), domain: t.Domain(), size: size}
	draw.Draw(c.img, r, &image.Uniform{background}, image.Point{}, draw.Src)

	t.Walk(func(p kdtree.Point, region kdtree.Rect, axis kdtree.Axis) bool {
		if axis == kdtree.Vertical {
			c.line(kdtree.Point{X: p.X, Y: region.MinY}, kdtree.Point{X: p.X, Y: region.MaxY}, VerticalColor)
		} else {
			c.line(kdtree.Point{X: region.MinX, Y: p.Y}, kdtree.Point{X: region.MaxX, Y: p.Y}, HorizontalColor)
		}
		return true
	})
	// Points go last to be on top of the lines.
	t.Walk(func(p kdtree.Point, _ kdtree.Rect, _ kdtree.Axis) bool {
		x, y := c.pixel(p)
		dot := image.Rect(x-pointRadius, y-pointRadius, x+pointRadius+1, y+pointRadius+1)
		draw.Draw(c.img, dot, &image.Uniform{pointColor}, image.Point{}, draw.Src)
		return true
	})
	return c.img
}

// Encode renders t and writes it to w as a PNG.
func Encode(w io.Writer, t *kdtree.Tree, size, pointRadius int) error {
	return png.Encode(w, Render(t, size, pointRadius))
}

// pixel maps p to image coordinates. The image's y axis points down.
func (c canvas) pixel(p kdtree.Point) (int, int) {
	scale := float64(c.size - 1)
	var fx, fy float64
	if w := c.domain.MaxX - c.domain.MinX; w > 0 {
		fx = (p.X - c.domain.MinX) / w
	}
	if h := c.domain.MaxY - c.domain.MinY; h > 0 {
		fy = (p.Y - c.domain.MinY) / h
	}
	return int(fx*scale + 0.5), int((1-fy)*scale + 0.5)
}

// line draws an axis-parallel segment.
func (c canvas) line(from, to kdtree.Point, col color.RGBA) {
	x0, y0 := c.pixel(from)
	x1, y1 := c.pixel(to)
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	draw.Draw(c.img, image.Rect(x0, y0, x1+1, y1+1), &image.Uniform{col}, image.Point{}, draw.Src)
}
