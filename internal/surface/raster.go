package surface

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// arcStep is the maximum angle covered by one flattened arc segment.
const arcStep = math.Pi / 36

// Raster paints onto an RGBA image. Strokes are anti-aliased through rasterx;
// text is drawn with the Go fonts.
type Raster struct {
	img    *image.RGBA
	dasher *rasterx.Dasher

	// Background is what ClearRect paints. The zero value clears to
	// transparent.
	Background color.Color
	// LineWidth is the stroke width in device pixels.
	LineWidth float64

	m       Matrix
	stroke  color.Color
	fill    color.Color
	family  string
	size    float64
	subpath [][]fixed.Point26_6
}

// NewRaster allocates a w×h surface.
func NewRaster(w, h int) *Raster {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	return &Raster{
		img:        img,
		dasher:     rasterx.NewDasher(w, h, scanner),
		Background: color.Transparent,
		LineWidth:  2,
		m:          Identity,
		stroke:     color.Black,
		fill:       color.Black,
		family:     "sans",
		size:       16,
	}
}

// Image exposes the backing image.
func (r *Raster) Image() *image.RGBA { return r.img }

func (r *Raster) BeginPath() { r.subpath = r.subpath[:0] }

func (r *Raster) device(x, y float64) fixed.Point26_6 {
	dx, dy := r.m.Apply(x, y)
	return rasterx.ToFixedP(dx, dy)
}

func (r *Raster) MoveTo(x, y float64) {
	r.subpath = append(r.subpath, []fixed.Point26_6{r.device(x, y)})
}

func (r *Raster) LineTo(x, y float64) {
	if len(r.subpath) == 0 {
		r.MoveTo(x, y)
		return
	}
	last := len(r.subpath) - 1
	r.subpath[last] = append(r.subpath[last], r.device(x, y))
}

func (r *Raster) Arc(cx, cy, radius, start, end float64) {
	sweep := end - start
	n := int(math.Ceil(math.Abs(sweep) / arcStep))
	if n < 1 {
		n = 1
	}
	for i := 0; i <= n; i++ {
		a := start + sweep*float64(i)/float64(n)
		// LineTo opens a subpath when none is open, otherwise the arc
		// connects from the current point
		r.LineTo(cx+radius*math.Cos(a), cy+radius*math.Sin(a))
	}
}

func (r *Raster) Stroke() {
	r.strokePolys(r.subpath, false)
}

func (r *Raster) StrokeRect(x, y, w, h float64) {
	poly := []fixed.Point26_6{
		r.device(x, y), r.device(x+w, y), r.device(x+w, y+h), r.device(x, y+h),
	}
	r.strokePolys([][]fixed.Point26_6{poly}, true)
}

func (r *Raster) strokePolys(polys [][]fixed.Point26_6, closed bool) {
	d := r.dasher
	d.SetStroke(fixed.Int26_6(r.LineWidth*64), fixed.I(4), rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round, nil, 0)
	drew := false
	for _, p := range polys {
		if len(p) == 0 {
			continue
		}
		d.Start(p[0])
		for _, q := range p[1:] {
			d.Line(q)
		}
		if len(p) == 1 {
			// a lone point still leaves a dot under round caps
			d.Line(p[0].Add(fixed.Point26_6{X: 1}))
		}
		d.Stop(closed)
		drew = true
	}
	if drew {
		d.SetColor(r.stroke)
		d.Draw()
	}
	d.Clear()
}

func (r *Raster) ClearRect(x, y, w, h float64) {
	x0, y0 := r.m.Apply(x, y)
	x1, y1 := r.m.Apply(x+w, y+h)
	rect := image.Rect(int(math.Floor(x0)), int(math.Floor(y0)), int(math.Ceil(x1)), int(math.Ceil(y1))).Canon()
	draw.Draw(r.img, rect.Intersect(r.img.Bounds()), image.NewUniform(r.Background), image.Point{}, draw.Src)
}

func (r *Raster) SetStrokeColor(c color.Color) { r.stroke = c }
func (r *Raster) SetFillColor(c color.Color)   { r.fill = c }

func (r *Raster) SetFont(family string, size float64) {
	r.family = family
	r.size = size
}

func (r *Raster) MeasureText(s string) float64 {
	face, err := Face(r.family, r.size)
	if err != nil {
		return 0
	}
	return float64(font.MeasureString(face, s)) / 64
}

func (r *Raster) FillText(s string, x, y float64) {
	face, err := Face(r.family, r.size)
	if err != nil {
		return
	}
	dx, dy := r.m.Apply(x, y)
	d := font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(r.fill),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.Int26_6(dx * 64), Y: fixed.Int26_6(dy * 64)},
	}
	d.DrawString(s)
}

func (r *Raster) Transform() Matrix { return r.m }

func (r *Raster) Translate(dx, dy float64) {
	r.m = r.m.Mul(Translation(dx, dy))
}
