// Package render draws a ranked recommendation list as a PNG card.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	"github.com/lox/dotoo/internal/activity"
)

const (
	CardWidth  = 1200
	padding    = 48
	headerH    = 140
	rowH       = 56
	badgeW     = 220
	DefaultMax = 12
)

var (
	fontTitle font.Face
	fontBody  font.Face
	fontBold  font.Face
	fontOnce  sync.Once
	fontErr   error
)

func loadFonts() {
	fontOnce.Do(func() {
		regular, err := opentype.Parse(goregular.TTF)
		if err != nil {
			fontErr = fmt.Errorf("parse regular font: %w", err)
			return
		}
		bold, err := opentype.Parse(gobold.TTF)
		if err != nil {
			fontErr = fmt.Errorf("parse bold font: %w", err)
			return
		}
		if fontTitle, err = newFace(bold, 44); err != nil {
			fontErr = err
			return
		}
		if fontBody, err = newFace(regular, 26); err != nil {
			fontErr = err
			return
		}
		if fontBold, err = newFace(bold, 24); err != nil {
			fontErr = err
		}
	})
}

func newFace(f *opentype.Font, size float64) (font.Face, error) {
	face, err := opentype.NewFace(f, &opentype.FaceOptions{Size: size, DPI: 72, Hinting: font.HintingFull})
	if err != nil {
		return nil, fmt.Errorf("create %.0fpt face: %w", size, err)
	}
	return face, nil
}

var (
	background = color.RGBA{22, 27, 34, 255}
	textMain   = color.RGBA{240, 240, 240, 255}
	textMuted  = color.RGBA{160, 168, 178, 255}
	rowStripe  = color.RGBA{30, 36, 44, 255}
)

// tierColor is the badge colour for each suitability.
func tierColor(s activity.Suitability) color.RGBA {
	switch s {
	case activity.Yay:
		return color.RGBA{46, 160, 67, 255}
	case activity.Yeah:
		return color.RGBA{56, 139, 253, 255}
	case activity.IGuessICouldDo:
		return color.RGBA{187, 128, 9, 255}
	default:
		return color.RGBA{110, 118, 129, 255}
	}
}

type Card struct {
	Title    string
	Subtitle string
	// MaxRows caps the rows drawn; zero means DefaultMax.
	MaxRows int
}

// Render draws the first rows of ranked. Failed rules are skipped.
func Render(ranked []activity.Recommendation, card Card) ([]byte, error) {
	loadFonts()
	if fontErr != nil {
		return nil, fmt.Errorf("load fonts: %w", fontErr)
	}

	limit := card.MaxRows
	if limit <= 0 {
		limit = DefaultMax
	}
	var rows []activity.Recommendation
	for _, rec := range ranked {
		if len(rows) == limit {
			break
		}
		if !rec.Failed {
			rows = append(rows, rec)
		}
	}

	height := headerH + len(rows)*rowH + padding
	img := image.NewRGBA(image.Rect(0, 0, CardWidth, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)

	drawText(img, card.Title, padding, 70, textMain, fontTitle)
	drawText(img, card.Subtitle, padding, 112, textMuted, fontBody)

	for i, rec := range rows {
		top := headerH + i*rowH
		if i%2 == 1 {
			fill(img, image.Rect(0, top, CardWidth, top+rowH), rowStripe)
		}
		badge := image.Rect(padding, top+10, padding+badgeW, top+rowH-10)
		fill(img, badge, tierColor(rec.Result.Suitability))
		drawText(img, rec.Result.Suitability.String(), badge.Min.X+12, top+rowH/2+8, textMain, fontBold)

		textX := badge.Max.X + 24
		line := activity.DisplayName(rec.Activity)
		if len(rec.Result.Notes) > 0 {
			line += " - " + strings.Join(rec.Result.Notes, "; ")
		}
		drawText(img, fitText(line, fontBody, CardWidth-textX-padding), textX, top+rowH/2+9, textMain, fontBody)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode card: %w", err)
	}
	return buf.Bytes(), nil
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func drawText(img *image.RGBA, text string, x, y int, col color.Color, face font.Face) {
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.Point26_6{X: fixed.I(x), Y: fixed.I(y)},
	}
	d.DrawString(text)
}

// fitText trims s with an ellipsis until it is at most width pixels wide.
func fitText(s string, face font.Face, width int) string {
	limit := fixed.I(width)
	if font.MeasureString(face, s) <= limit {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 {
		runes = runes[:len(runes)-1]
		candidate := strings.TrimSpace(string(runes)) + "..."
		if font.MeasureString(face, candidate) <= limit {
			return candidate
		}
	}
	return ""
}
