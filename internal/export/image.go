package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"os"
	"sync"
	"time"

	"github.com/akyairhashvil/pomo/internal/config"
	"github.com/akyairhashvil/pomo/internal/models"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Image dimensions of the progress report.
const (
	ImageWidth  = 800
	ImageHeight = 600
)

// Palette holds the report colours for one theme.
type Palette struct {
	BackgroundFrom color.NRGBA
	BackgroundTo   color.NRGBA
	Card           color.NRGBA
	Text           color.NRGBA
	SecondaryText  color.NRGBA
	Primary        color.NRGBA
	Accent         color.NRGBA
	Success        color.NRGBA
}

var (
	lightPalette = Palette{
		BackgroundFrom: hex(0xf8f4ff),
		BackgroundTo:   hex(0xe9d5ff),
		Card:           hex(0xffffff),
		Text:           hex(0x1d1d1f),
		SecondaryText:  hex(0x86868b),
		Primary:        hex(0x9333ea),
		Accent:         hex(0xa855f7),
		Success:        hex(0x10b981),
	}
	darkPalette = Palette{
		BackgroundFrom: hex(0x1c1c1e),
		BackgroundTo:   hex(0x2c2c2e),
		Card:           hex(0x2c2c2e),
		Text:           hex(0xffffff),
		SecondaryText:  hex(0x86868b),
		Primary:        hex(0x9333ea),
		Accent:         hex(0xa855f7),
		Success:        hex(0x10b981),
	}
)

// PaletteFor returns the dark or light palette.
func PaletteFor(dark bool) Palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

func hex(rgb uint32) color.NRGBA {
	return color.NRGBA{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb), A: 0xff}
}

func withAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

var (
	regularFont = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(goregular.TTF) })
	boldFont    = sync.OnceValues(func() (*opentype.Font, error) { return opentype.Parse(gobold.TTF) })
)

type faceSet struct {
	title, value, heading, percent, banner font.Face
	date, label, footer                    font.Face
}

func newFaceSet() (*faceSet, error) {
	regular, err := regularFont()
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := boldFont()
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	mk := func(f *opentype.Font, size float64) (font.Face, error) {
		return opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	}

	fs := &faceSet{}
	specs := []struct {
		dst  *font.Face
		f    *opentype.Font
		size float64
	}{
		{&fs.title, bold, 36},
		{&fs.value, bold, 24},
		{&fs.heading, bold, 24},
		{&fs.percent, bold, 18},
		{&fs.banner, bold, 20},
		{&fs.date, regular, 18},
		{&fs.label, regular, 14},
		{&fs.footer, regular, 14},
	}
	for _, s := range specs {
		face, err := mk(s.f, s.size)
		if err != nil {
			fs.Close()
			return nil, fmt.Errorf("create face: %w", err)
		}
		*s.dst = face
	}
	return fs, nil
}

func (fs *faceSet) Close() {
	for _, f := range []font.Face{fs.title, fs.value, fs.heading, fs.percent, fs.banner, fs.date, fs.label, fs.footer} {
		if f != nil {
			_ = f.Close()
		}
	}
}

type align int

const (
	alignLeft align = iota
	alignCenter
)

func drawText(dst draw.Image, face font.Face, c color.Color, s string, x, y int, a align) {
	d := &font.Drawer{Dst: dst, Src: image.NewUniform(c), Face: face}
	if a == alignCenter {
		x -= d.MeasureString(s).Round() / 2
	}
	d.Dot = fixed.P(x, y)
	d.DrawString(s)
}

// fillRoundRect fills the rectangle (x, y, w, h) with corner radius r.
func fillRoundRect(dst draw.Image, src image.Image, x, y, w, h, r float32) {
	if w <= 0 || h <= 0 {
		return
	}
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	b := dst.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(x+r, y)
	z.LineTo(x+w-r, y)
	z.QuadTo(x+w, y, x+w, y+r)
	z.LineTo(x+w, y+h-r)
	z.QuadTo(x+w, y+h, x+w-r, y+h)
	z.LineTo(x+r, y+h)
	z.QuadTo(x, y+h, x, y+h-r)
	z.LineTo(x, y+r)
	z.QuadTo(x, y, x+r, y)
	z.ClosePath()
	z.Draw(dst, b, src, image.Point{})
}

// linearGradient is an image whose colour varies along the vector from
// (x0, y0) to (x1, y1).
type linearGradient struct {
	x0, y0   float64
	dx, dy   float64
	len2     float64
	from, to color.NRGBA
}

func newLinearGradient(x0, y0, x1, y1 float64, from, to color.NRGBA) *linearGradient {
	dx, dy := x1-x0, y1-y0
	l := dx*dx + dy*dy
	if l == 0 {
		l = 1
	}
	return &linearGradient{x0: x0, y0: y0, dx: dx, dy: dy, len2: l, from: from, to: to}
}

func (g *linearGradient) ColorModel() color.Model { return color.NRGBAModel }

func (g *linearGradient) Bounds() image.Rectangle {
	return image.Rect(-1e9, -1e9, 1e9, 1e9)
}

func (g *linearGradient) At(x, y int) color.Color {
	t := ((float64(x)-g.x0)*g.dx + (float64(y)-g.y0)*g.dy) / g.len2
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	lerp := func(a, b uint8) uint8 { return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5) }
	return color.NRGBA{
		R: lerp(g.from.R, g.to.R),
		G: lerp(g.from.G, g.to.G),
		B: lerp(g.from.B, g.to.B),
		A: lerp(g.from.A, g.to.A),
	}
}

// RenderImage draws the progress report for snap.
func RenderImage(snap models.Snapshot, dark bool) (*image.RGBA, error) {
	faces, err := newFaceSet()
	if err != nil {
		return nil, err
	}
	defer faces.Close()

	p := PaletteFor(dark)
	img := image.NewRGBA(image.Rect(0, 0, ImageWidth, ImageHeight))
	const w, h = float32(ImageWidth), float32(ImageHeight)

	bg := newLinearGradient(0, 0, ImageWidth, ImageHeight, p.BackgroundFrom, p.BackgroundTo)
	draw.Draw(img, img.Bounds(), bg, image.Point{}, draw.Src)

	// Card with a soft drop shadow.
	fillRoundRect(img, image.NewUniform(color.NRGBA{A: 0x1a}), 50, 60, w-100, h-100, 20)
	fillRoundRect(img, image.NewUniform(withAlpha(p.Card, 0xf0)), 50, 50, w-100, h-100, 20)

	drawText(img, faces.title, p.Text, "Pomodoro Progress Report", ImageWidth/2, 120, alignCenter)
	drawText(img, faces.date, p.SecondaryText, snap.Date.Format(HumanDateLayout), ImageWidth/2, 150, alignCenter)

	tiles := []struct {
		label, value string
	}{
		{"Study Sessions", fmt.Sprintf("%d", snap.StudySessionsCompleted)},
		{"Study Time", fmt.Sprintf("%d min", snap.TotalStudyMinutes)},
		{"Break Time", fmt.Sprintf("%d min", snap.TotalBreakMinutes)},
	}
	for i, tile := range tiles {
		x := 150 + i*200
		const y = 250
		fx, fy := float32(x-60), float32(y-40)
		fillRoundRect(img, image.NewUniform(withAlpha(p.Primary, 0x20)), fx, fy, 120, 80, 12)
		fillRoundRect(img, image.NewUniform(p.Card), fx+2, fy+2, 116, 76, 10)
		drawText(img, faces.value, p.Primary, tile.value, x, y+5, alignCenter)
		drawText(img, faces.label, p.SecondaryText, tile.label, x, y+28, alignCenter)
	}

	if snap.DailyGoalMinutes > 0 {
		const goalY = 400
		drawText(img, faces.heading, p.Text, "Daily Goal Progress", 100, goalY, alignLeft)
		drawText(img, faces.date, p.SecondaryText,
			fmt.Sprintf("%d / %d minutes", snap.TotalStudyMinutes, snap.DailyGoalMinutes), 100, goalY+30, alignLeft)

		fillRoundRect(img, image.NewUniform(withAlpha(p.Primary, 0x20)), 100, goalY+50, 600, 20, 10)
		progressWidth := float32(600 * snap.GoalProgressPercent / 100)
		if progressWidth > 0 {
			fill := newLinearGradient(100, 0, 100+float64(progressWidth), 0, p.Primary, p.Accent)
			fillRoundRect(img, fill, 100, goalY+50, progressWidth, 20, 10)
		}
		drawText(img, faces.percent, p.Primary, fmt.Sprintf("%d%%", snap.GoalProgressPercent), 400, goalY+65, alignCenter)

		if snap.GoalProgressPercent >= 100 {
			drawText(img, faces.banner, p.Success, "Goal Achieved!", ImageWidth/2, goalY+100, alignCenter)
		}
	}

	drawText(img, faces.footer, p.SecondaryText, "Generated by "+config.DesktopTitle, ImageWidth/2, ImageHeight-30, alignCenter)
	return img, nil
}

// SaveImage renders snap and writes pomodoro-progress-<date>.jpg into dir.
func SaveImage(dir string, snap models.Snapshot, dark bool, now time.Time) (string, error) {
	img, err := RenderImage(snap, dark)
	if err != nil {
		return "", err
	}
	path, err := artifactPath(dir, config.ImageExportPattern, now)
	if err != nil {
		return "", err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return "", err
	}
	if err := jpeg.Encode(f, img, &jpeg.Options{Quality: config.ImageQuality}); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("encode jpeg: %w", err)
	}
	return path, f.Close()
}
