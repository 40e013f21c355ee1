// Package render rasterizes generated mazes into images, one square tile per
// cell. Each of the 16 wall codes maps to a tile whose corridor opens toward
// the open sides.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/beka-birhanu/mazegen-api/mazegen"
	"github.com/yalue/image_utils"
)

const defaultTileSize = 16

// Renderer draws maze tile grids. The zero value is not usable; create one
// with NewRenderer.
type Renderer struct {
	tileSize  int
	wallColor color.Color
	pathColor color.Color
}

// NewRenderer creates a Renderer with the given tile edge length in pixels.
// Sizes below four fall back to the default.
func NewRenderer(tileSize int) *Renderer {
	if tileSize < 4 {
		tileSize = defaultTileSize
	}
	return &Renderer{
		tileSize:  tileSize,
		wallColor: color.Black,
		pathColor: color.White,
	}
}

// Render draws the wall grid as tiles. Corridors run from the tile center to
// every open side; closed sides stay solid.
func (r *Renderer) Render(m *mazegen.Maze) *image.RGBA {
	size := r.tileSize
	inset := size / 4
	img := image.NewRGBA(image.Rect(0, 0, m.Width*size, m.Height*size))
	draw.Draw(img, img.Bounds(), image.NewUniform(r.wallColor), image.Point{}, draw.Src)

	path := image.NewUniform(r.pathColor)
	carve := func(rect image.Rectangle) {
		draw.Draw(img, rect, path, image.Point{}, draw.Src)
	}

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			mask := m.At(x, y)
			ox, oy := x*size, y*size
			carve(image.Rect(ox+inset, oy+inset, ox+size-inset, oy+size-inset))
			if mask&mazegen.WallLeft != 0 {
				carve(image.Rect(ox, oy+inset, ox+inset, oy+size-inset))
			}
			if mask&mazegen.WallRight != 0 {
				carve(image.Rect(ox+size-inset, oy+inset, ox+size, oy+size-inset))
			}
			if mask&mazegen.WallTop != 0 {
				carve(image.Rect(ox+inset, oy, ox+size-inset, oy+inset))
			}
			if mask&mazegen.WallBottom != 0 {
				carve(image.Rect(ox+inset, oy+size-inset, ox+size-inset, oy+size))
			}
		}
	}
	return img
}

// RenderAnnotated draws the tile grid with an arrow pointing into the maze at
// the entrance and out of it at the exit.
func (r *Renderer) RenderAnnotated(m *mazegen.Maze) image.Image {
	base := r.Render(m)
	composite := image_utils.NewCompositeImage()
	composite.AddImage(base, image.Pt(0, 0))

	entry := outwardWall(m, m.Start)
	exit := outwardWall(m, m.Exit)
	arrowSize := r.tileSize / 2
	if arrowSize < 4 {
		arrowSize = 4
	}

	addArrow := func(pos mazegen.Position, wall uint8, inward bool, tint color.Color) {
		direction := wall
		if inward {
			direction = oppositeWall(wall)
		}
		arrow := image_utils.ResizeImage(arrowImage(direction, tint), arrowSize, arrowSize)
		offset := (r.tileSize - arrowSize) / 2
		composite.AddImage(arrow, image.Pt(pos.X*r.tileSize+offset, pos.Y*r.tileSize+offset))
	}
	addArrow(m.Start, entry, true, color.RGBA{R: 20, G: 160, B: 20, A: 255})
	addArrow(m.Exit, exit, false, color.RGBA{R: 230, G: 20, B: 20, A: 255})

	return image_utils.ToRGBA(composite)
}

// EncodePNG writes the annotated maze image as PNG.
func (r *Renderer) EncodePNG(w io.Writer, m *mazegen.Maze) error {
	return png.Encode(w, r.RenderAnnotated(m))
}

// outwardWall finds the open wall of a border cell that faces outside the
// grid. Start and exit cells have exactly one.
func outwardWall(m *mazegen.Maze, pos mazegen.Position) uint8 {
	mask := m.At(pos.X, pos.Y)
	switch {
	case pos.X == 0 && mask&mazegen.WallLeft != 0:
		return mazegen.WallLeft
	case pos.Y == 0 && mask&mazegen.WallTop != 0:
		return mazegen.WallTop
	case pos.X == m.Width-1 && mask&mazegen.WallRight != 0:
		return mazegen.WallRight
	default:
		return mazegen.WallBottom
	}
}

func oppositeWall(wall uint8) uint8 {
	switch wall {
	case mazegen.WallLeft:
		return mazegen.WallRight
	case mazegen.WallRight:
		return mazegen.WallLeft
	case mazegen.WallTop:
		return mazegen.WallBottom
	default:
		return mazegen.WallTop
	}
}

func arrowImage(wall uint8, tint color.Color) image.Image {
	switch wall {
	case mazegen.WallLeft:
		return image_utils.LeftArrow(tint)
	case mazegen.WallRight:
		return image_utils.RightArrow(tint)
	case mazegen.WallTop:
		return image_utils.UpArrow(tint)
	default:
		return image_utils.DownArrow(tint)
	}
}
