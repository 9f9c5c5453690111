// Package certificate draws the carbon offset certificate as a PNG.
package certificate

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"
	"strings"
	"sync"

	"carbon_zero/utils"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

const (
	Width  = 2000
	Height = 1414

	qrSize = 220
)

var (
	background  = color.RGBA{0xFB, 0xF6, 0xE9, 0xFF}
	borderColor = color.RGBA{0xC8, 0x93, 0x1D, 0xFF}
	nameColor   = color.RGBA{0xC8, 0x93, 0x1D, 0xFF}
	amountColor = color.RGBA{0xC8, 0x93, 0x1D, 0xFF}
	dateColor   = color.RGBA{0x6F, 0x4C, 0x00, 0xFF}
	codeColor   = color.RGBA{0x6F, 0x4C, 0x00, 0xFF}
)

type Data struct {
	Name   string
	Amount float64 // kg CO2
	Date   string
	Code   string
}

type faces struct {
	title, name, amount, date, code font.Face
}

var (
	loadOnce   sync.Once
	loaded     faces
	loadErr    error
	renderLock sync.Mutex
)

func loadFaces() (faces, error) {
	loadOnce.Do(func() {
		bold, err := opentype.Parse(gobold.TTF)
		if err != nil {
			loadErr = fmt.Errorf("parse bold font: %w", err)
			return
		}
		regular, err := opentype.Parse(goregular.TTF)
		if err != nil {
			loadErr = fmt.Errorf("parse regular font: %w", err)
			return
		}
		face := func(f *opentype.Font, size float64) font.Face {
			if loadErr != nil {
				return nil
			}
			ff, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
			if err != nil {
				loadErr = fmt.Errorf("font face %.0f: %w", size, err)
			}
			return ff
		}
		loaded = faces{
			title:  face(bold, 72),
			name:   face(bold, 100),
			amount: face(bold, 60),
			date:   face(regular, 28),
			code:   face(regular, 32),
		}
	})
	return loaded, loadErr
}

// FormatAmount prints an amount the way it appears on the certificate, e.g. "12.5 KGS CO2".
func FormatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64) + " KGS CO2"
}

// Render draws the certificate and returns PNG bytes.
func Render(d Data) ([]byte, error) {
	f, err := loadFaces()
	if err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, Width, Height))
	draw.Draw(canvas, canvas.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	drawBorder(canvas, 40, 12, borderColor)
	drawBorder(canvas, 70, 3, borderColor)

	// opentype faces keep a glyph cache that is not safe for concurrent use
	renderLock.Lock()
	drawCentered(canvas, f.title, "CERTIFICATE OF CARBON OFFSET", Height/2-360, dateColor)
	drawCentered(canvas, f.name, strings.ToUpper(d.Name), Height/2-120, nameColor)
	drawCentered(canvas, f.amount, FormatAmount(d.Amount), Height/2+90, amountColor)
	drawText(canvas, f.date, d.Date, Width/2-840, Height/2-560, dateColor)
	drawText(canvas, f.code, d.Code, Width/2-640, Height/2+440, codeColor)
	renderLock.Unlock()

	if d.Code != "" {
		qr, err := utils.QRImage(d.Code, qrSize)
		if err != nil {
			return nil, fmt.Errorf("certificate qr: %w", err)
		}
		at := image.Pt(Width-120-qrSize, Height-120-qrSize)
		draw.Draw(canvas, image.Rectangle{Min: at, Max: at.Add(image.Pt(qrSize, qrSize))}, qr, image.Point{}, draw.Over)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, canvas); err != nil {
		return nil, fmt.Errorf("encode certificate: %w", err)
	}
	return buf.Bytes(), nil
}

func drawCentered(dst draw.Image, face font.Face, text string, y int, c color.Color) {
	w := font.MeasureString(face, text).Ceil()
	drawText(dst, face, text, (Width-w)/2, y, c)
}

// drawText places text with its top edge at y, matching how the template was laid out.
func drawText(dst draw.Image, face font.Face, text string, x, y int, c color.Color) {
	ascent := face.Metrics().Ascent.Ceil()
	dr := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y+ascent),
	}
	dr.DrawString(text)
}

func drawBorder(dst draw.Image, inset, thickness int, c color.Color) {
	src := image.NewUniform(c)
	b := dst.Bounds().Inset(inset)
	edges := []image.Rectangle{
		image.Rect(b.Min.X, b.Min.Y, b.Max.X, b.Min.Y+thickness),
		image.Rect(b.Min.X, b.Max.Y-thickness, b.Max.X, b.Max.Y),
		image.Rect(b.Min.X, b.Min.Y, b.Min.X+thickness, b.Max.Y),
		image.Rect(b.Max.X-thickness, b.Min.Y, b.Max.X, b.Max.Y),
	}
	for _, r := range edges {
		draw.Draw(dst, r, src, image.Point{}, draw.Src)
	}
}
