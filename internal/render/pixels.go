package render

import "image/color"

// Palette holds the colours used to paint a binary grid.
type Palette struct {
	Alive color.Color
	Even  color.Color
	Odd   color.Color
}

// DefaultPalette draws black cells on a faint checkerboard.
var DefaultPalette = Palette{
	Alive: color.Black,
	Even:  color.RGBA{R: 245, G: 245, B: 245, A: 255},
	Odd:   color.RGBA{R: 250, G: 250, B: 250, A: 255},
}

// fillBinaryRGBA converts binary cell data (0/1) for a grid w cells wide into
// RGBA pixels in buf. Dead cells alternate between the even and odd colours.
func fillBinaryRGBA(buf []byte, cells []uint8, w int, p Palette) {
	if w <= 0 {
		return
	}
	on := rgba(p.Alive)
	even := rgba(p.Even)
	odd := rgba(p.Odd)
	for i, c := range cells {
		base := i * 4
		px := on
		if c == 0 {
			x, y := i%w, i/w
			px = even
			if (x+y)%2 != 0 {
				px = odd
			}
		}
		buf[base+0] = px[0]
		buf[base+1] = px[1]
		buf[base+2] = px[2]
		buf[base+3] = px[3]
	}
}

func rgba(c color.Color) [4]uint8 {
	r, g, b, a := c.RGBA()
	return [4]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
