package viz

import (
	"image"
	"image/color"
	"image/gif"
	"os"
)

const (
	cellW, cellH = 8, 16
	// gifDelay is in hundredths of a second and matches the default tick.
	gifDelay = 5
)

var gifPalette = color.Palette{color.Black, color.RGBA{R: 0, G: 230, B: 170, A: 255}}

// gifRecorder collects rasterised canvas frames while recording is on.
type gifRecorder struct {
	frames []*image.Paletted
}

func (r *gifRecorder) capture(c *Canvas) {
	r.frames = append(r.frames, rasterize(c))
}

func (r *gifRecorder) Len() int { return len(r.frames) }

// save writes the collected frames as a looping GIF. An empty recording
// writes nothing.
func (r *gifRecorder) save(path string) error {
	if len(r.frames) == 0 {
		return nil
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, gifDelay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gif.EncodeAll(f, &anim); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// rasterize paints each lit braille dot as a block of pixels.
func rasterize(c *Canvas) *image.Paletted {
	img := image.NewPaletted(image.Rect(0, 0, c.Width*cellW, c.Height*cellH), gifPalette)
	dotW, dotH := cellW/2, cellH/4
	w, h := c.Dots()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if !c.IsSet(x, y) {
				continue
			}
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(x*dotW+px, y*dotH+py, 1)
				}
			}
		}
	}
	return img
}
