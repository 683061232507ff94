// Package imageview renders a decoded raster image into a terminal cell
// grid. The decoder itself is the named external collaborator; Decoder
// defines that boundary and StdDecoder is a default adapter over the
// standard image codecs.
package imageview

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Decoder turns raw bytes into a decoded image. A real deployment can
// substitute a richer decoder (e.g. one supporting WebP/AVIF) without this
// package changing.
type Decoder interface {
	Decode(r io.Reader) (image.Image, error)
}

// StdDecoder decodes PNG/JPEG/GIF via the standard library's registered
// codecs.
type StdDecoder struct{}

func (StdDecoder) Decode(r io.Reader) (image.Image, error) {
	img, _, err := image.Decode(r)
	return img, err
}

// Cell is one downsampled terminal cell's average color.
type Cell struct {
	R, G, B uint8
}

// Downsample reduces img to a cols x rows grid of average colors for
// terminal block rendering.
func Downsample(img image.Image, cols, rows int) [][]Cell {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if cols <= 0 || rows <= 0 || w == 0 || h == 0 {
		return nil
	}
	grid := make([][]Cell, rows)
	for y := 0; y < rows; y++ {
		grid[y] = make([]Cell, cols)
		for x := 0; x < cols; x++ {
			x0 := bounds.Min.X + x*w/cols
			x1 := bounds.Min.X + (x+1)*w/cols
			y0 := bounds.Min.Y + y*h/rows
			y1 := bounds.Min.Y + (y+1)*h/rows
			grid[y][x] = averageColor(img, x0, y0, x1, y1)
		}
	}
	return grid
}

func averageColor(img image.Image, x0, y0, x1, y1 int) Cell {
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	var rSum, gSum, bSum, n uint64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r, g, b, _ := color.RGBAModel.Convert(img.At(x, y)).RGBA()
			rSum += uint64(r >> 8)
			gSum += uint64(g >> 8)
			bSum += uint64(b >> 8)
			n++
		}
	}
	if n == 0 {
		return Cell{}
	}
	return Cell{R: uint8(rSum / n), G: uint8(gSum / n), B: uint8(bSum / n)}
}

// Render paints grid as a block of colored terminal cells.
func Render(grid [][]Cell) string {
	out := ""
	for _, row := range grid {
		for _, c := range row {
			style := lipgloss.NewStyle().Background(lipgloss.Color(rgbHex(c)))
			out += style.Render(" ")
		}
		out += "\n"
	}
	return out
}

func rgbHex(c Cell) string {
	const hexDigits = "0123456789abcdef"
	buf := make([]byte, 7)
	buf[0] = '#'
	for i, v := range [3]uint8{c.R, c.G, c.B} {
		buf[1+i*2] = hexDigits[v>>4]
		buf[2+i*2] = hexDigits[v&0xF]
	}
	return string(buf)
}
