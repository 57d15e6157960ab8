package render

import "image/color"

// Palette holds the colours used for live and dead cells.
type Palette struct {
	On  color.Color
	Off color.Color
}

// DefaultPalette draws live cells white on black.
func DefaultPalette() Palette {
	return Palette{On: color.White, Off: color.Black}
}

// FillBinaryRGBA converts cell data (0 dead, anything else alive) into RGBA
// pixels in buf. buf must hold at least 4*len(cells) bytes.
func FillBinaryRGBA(buf []byte, cells []uint8, p Palette) {
	on := rgba8(p.On)
	off := rgba8(p.Off)
	for i, c := range cells {
		px := off
		if c != 0 {
			px = on
		}
		copy(buf[i*4:i*4+4], px[:])
	}
}

func rgba8(c color.Color) [4]byte {
	if c == nil {
		return [4]byte{}
	}
	r, g, b, a := c.RGBA()
	return [4]byte{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}
