package render

import (
	"errors"
	"image"
	"image/color"
	"image/gif"
	"io"
	"os"

	"golang.org/x/image/draw"

	"github.com/san-kum/isingsim/internal/lattice"
)

var ErrNoFrames = errors.New("render: no frames to animate")

var (
	UpColor   = color.RGBA{R: 0x8e, G: 0x82, B: 0xfe, A: 0xff}
	DownColor = color.RGBA{R: 0x58, G: 0x0f, B: 0x41, A: 0xff}
)

// AnimationOptions controls GIF output. Zero Width or Height keeps one
// pixel per spin along that axis.
type AnimationOptions struct {
	Width     int
	Height    int
	Delay     int // hundredths of a second per frame
	UpColor   color.Color
	DownColor color.Color
}

func DefaultAnimationOptions() AnimationOptions {
	return AnimationOptions{Delay: 10, UpColor: UpColor, DownColor: DownColor}
}

func (o AnimationOptions) palette() color.Palette {
	up, down := o.UpColor, o.DownColor
	if up == nil {
		up = UpColor
	}
	if down == nil {
		down = DownColor
	}
	return color.Palette{up, down}
}

// Frame draws l as a paletted image, index 0 for Up and 1 for Down, scaled
// with nearest-neighbour sampling to the requested size.
func Frame(l *lattice.Lattice, opts AnimationOptions) *image.Paletted {
	pal := opts.palette()
	src := image.NewPaletted(image.Rect(0, 0, l.Cols(), l.Rows()), pal)
	for r := 0; r < l.Rows(); r++ {
		for c := 0; c < l.Cols(); c++ {
			if l.At(r, c) == lattice.Down {
				src.SetColorIndex(c, r, 1)
			}
		}
	}

	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = l.Cols()
	}
	if h <= 0 {
		h = l.Rows()
	}
	if w == l.Cols() && h == l.Rows() {
		return src
	}

	dst := image.NewPaletted(image.Rect(0, 0, w, h), pal)
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

// Animate encodes frames as a GIF that loops forever.
func Animate(w io.Writer, frames []*lattice.Lattice, opts AnimationOptions) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	anim := gif.GIF{LoopCount: 0}
	for _, l := range frames {
		anim.Image = append(anim.Image, Frame(l, opts))
		anim.Delay = append(anim.Delay, opts.Delay)
	}
	return gif.EncodeAll(w, &anim)
}

func AnimateFile(path string, frames []*lattice.Lattice, opts AnimationOptions) error {
	if len(frames) == 0 {
		return ErrNoFrames
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Animate(f, frames, opts); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
