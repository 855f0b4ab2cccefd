package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/credao/gardengrid/internal/core/boundary"
	"github.com/credao/gardengrid/internal/core/domain"
	"github.com/credao/gardengrid/internal/pkg/geospatial"
)

// Map palette.
var (
	BackgroundColor = color.RGBA{237, 245, 236, 255}
	GuideColor      = color.RGBA{220, 230, 219, 255}
	FillColor       = color.NRGBA{123, 179, 122, 77}
	CoverageColor   = color.NRGBA{76, 154, 79, 40}
	StrokeColor     = color.RGBA{76, 154, 79, 255}
	PointColor      = color.RGBA{58, 140, 62, 255}
	LabelColor      = color.RGBA{102, 112, 106, 255}
)

// Map drawing defaults.
const (
	DefaultMapWidth   = 600
	DefaultMapHeight  = 400
	DefaultMapPadding = 40
	DefaultGuideLines = 10
	PointRadius       = 5
	StrokeWidth       = 3
	DraftStrokeWidth  = 2
	circleSegments    = 24
)

// MapRenderer draws a garden boundary scaled into a padded canvas.
type MapRenderer struct {
	Viewport   domain.Viewport
	Epsilon    float64
	GuideLines int
	// ShowCells tints the grid cells whose centres fall inside the boundary.
	ShowCells bool
}

// NewMapRenderer returns a renderer with the default canvas.
func NewMapRenderer() MapRenderer {
	return MapRenderer{
		Viewport:   domain.Viewport{Width: DefaultMapWidth, Height: DefaultMapHeight, Padding: DefaultMapPadding},
		Epsilon:    geospatial.DefaultRangeEpsilon,
		GuideLines: DefaultGuideLines,
	}
}

// Render draws g. A garden without boundary points gets the background,
// the guide lines and its labels only.
func (r MapRenderer) Render(g domain.Garden) *image.RGBA {
	vp := r.Viewport
	img := newCanvas(vp)
	r.drawGuides(img)

	pad := vp.Padding
	label(img, int(pad), int(pad)-12, g.Name)
	label(img, int(pad), int(vp.Height-pad)+24, fmt.Sprintf("%d boundary points", len(g.Boundary)))

	if len(g.Boundary) == 0 {
		return img
	}

	proj := geospatial.NewProjection(geospatial.BoundsOf(g.Boundary), vp, r.Epsilon)
	pts := make([]domain.Pixel, len(g.Boundary))
	for i, c := range g.Boundary {
		pts[i] = proj.ToPixel(c)
	}

	if len(pts) >= boundary.MinClosablePoints {
		fillPolygon(img, pts, FillColor)
		if r.ShowCells {
			r.drawCoverage(img, g)
		}
	}
	strokePath(img, pts, len(pts) >= boundary.MinClosablePoints, StrokeWidth, StrokeColor)
	for _, p := range pts {
		fillCircle(img, p, PointRadius, PointColor)
	}
	return img
}

// WritePNG renders g and encodes it as PNG.
func (r MapRenderer) WritePNG(w io.Writer, g domain.Garden) error {
	if err := png.Encode(w, r.Render(g)); err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	return nil
}

// RenderDraft draws a boundary being edited on the unpadded drawing surface.
// The path is closed once it has enough points.
func RenderDraft(s boundary.Surface, b *boundary.Boundary) *image.RGBA {
	img := newCanvas(domain.Viewport{Width: s.Width, Height: s.Height})
	pts := b.Points()
	px := make([]domain.Pixel, len(pts))
	for i, c := range pts {
		px[i] = s.PixelOf(c)
	}
	closed := b.IsClosable()
	if closed {
		fillPolygon(img, px, FillColor)
	}
	strokePath(img, px, closed, DraftStrokeWidth, StrokeColor)
	for _, p := range px {
		fillCircle(img, p, PointRadius, PointColor)
	}
	return img
}

func newCanvas(vp domain.Viewport) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, int(vp.Width), int(vp.Height)))
	draw.Draw(img, img.Bounds(), image.NewUniform(BackgroundColor), image.Point{}, draw.Src)
	return img
}

// drawGuides draws GuideLines+1 evenly spaced lines each way across the
// padded area.
func (r MapRenderer) drawGuides(img *image.RGBA) {
	if r.GuideLines <= 0 {
		return
	}
	vp := r.Viewport
	left, top := vp.Padding, vp.Padding
	right, bottom := vp.Width-vp.Padding, vp.Height-vp.Padding
	for i := 0; i <= r.GuideLines; i++ {
		f := float64(i) / float64(r.GuideLines)
		x := left + f*(right-left)
		y := top + f*(bottom-top)
		strokeSegment(img, domain.Pixel{X: x, Y: top}, domain.Pixel{X: x, Y: bottom}, 1, GuideColor)
		strokeSegment(img, domain.Pixel{X: left, Y: y}, domain.Pixel{X: right, Y: y}, 1, GuideColor)
	}
}

// drawCoverage tints the cells of g's grid that lie inside its boundary. The
// grid is stretched over the boundary's bounding box, which is exactly the
// padded area.
func (r MapRenderer) drawCoverage(img *image.RGBA, g domain.Garden) {
	cov := boundary.Coverage(g.Boundary, g.Width, g.Height)
	vp := r.Viewport
	cellW := (vp.Width - 2*vp.Padding) / float64(g.Width)
	cellH := (vp.Height - 2*vp.Padding) / float64(g.Height)
	for y, row := range cov {
		for x, in := range row {
			if !in {
				continue
			}
			x0 := vp.Padding + float64(x)*cellW
			y0 := vp.Padding + float64(y)*cellH
			fillPolygon(img, []domain.Pixel{
				{X: x0 + 1, Y: y0 + 1},
				{X: x0 + cellW - 1, Y: y0 + 1},
				{X: x0 + cellW - 1, Y: y0 + cellH - 1},
				{X: x0 + 1, Y: y0 + cellH - 1},
			}, CoverageColor)
		}
	}
}

// fillPolygon fills the polygon through pts with the non-zero rule.
func fillPolygon(img *image.RGBA, pts []domain.Pixel, c color.Color) {
	if len(pts) < 3 {
		return
	}
	b := img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		z.LineTo(float32(p.X), float32(p.Y))
	}
	z.ClosePath()
	z.Draw(img, b, image.NewUniform(c), image.Point{})
}

// strokePath draws each segment of the path as a quad, plus the closing
// segment when closed is set.
func strokePath(img *image.RGBA, pts []domain.Pixel, closed bool, width float64, c color.Color) {
	for i := 0; i+1 < len(pts); i++ {
		strokeSegment(img, pts[i], pts[i+1], width, c)
	}
	if closed && len(pts) > 2 {
		strokeSegment(img, pts[len(pts)-1], pts[0], width, c)
	}
}

func strokeSegment(img *image.RGBA, a, b domain.Pixel, width float64, c color.Color) {
	dx, dy := b.X-a.X, b.Y-a.Y
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	nx, ny := -dy/length*width/2, dx/length*width/2
	fillPolygon(img, []domain.Pixel{
		{X: a.X + nx, Y: a.Y + ny},
		{X: b.X + nx, Y: b.Y + ny},
		{X: b.X - nx, Y: b.Y - ny},
		{X: a.X - nx, Y: a.Y - ny},
	}, c)
}

func fillCircle(img *image.RGBA, centre domain.Pixel, radius float64, c color.Color) {
	pts := make([]domain.Pixel, circleSegments)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / circleSegments
		pts[i] = domain.Pixel{X: centre.X + radius*math.Cos(a), Y: centre.Y + radius*math.Sin(a)}
	}
	fillPolygon(img, pts, c)
}

func label(img *image.RGBA, x, y int, text string) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(LabelColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(text)
}
