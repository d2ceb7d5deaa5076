package export

import (
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"tracker-cli/internal/model"
)

// Layout in pixels.
const (
	imgPadding   = 20.0
	imgNameW     = 160.0
	imgPenaltyW  = 80.0
	imgCellW     = 110.0
	imgHeaderH   = 36.0
	imgRowH      = 32.0
	imgFooterH   = 30.0
	imgFontSize  = 13.0
	imgCardW     = 14.0
	imgCardH     = 20.0
	imgCardSpace = 8.0
)

var (
	colorGrid       = color.RGBA{0xcc, 0xcc, 0xcc, 0xff}
	colorHeaderFill = color.RGBA{0xf2, 0xf2, 0xf2, 0xff}
	colorText       = color.Black
	colorTick       = color.RGBA{0x2e, 0x9e, 0x44, 0xff}
	colorCross      = color.RGBA{0xd3, 0x2f, 0x2f, 0xff}
	colorQuestion   = color.RGBA{0x1e, 0x63, 0xc4, 0xff}
)

func backgroundColor(b model.Background) (color.Color, bool) {
	switch b {
	case model.BackgroundLightGreen:
		return color.RGBA{0x90, 0xee, 0x90, 0xff}, true
	case model.BackgroundYellow:
		return color.RGBA{0xff, 0xeb, 0x3b, 0xff}, true
	case model.BackgroundOrange:
		return color.RGBA{0xff, 0xa5, 0x00, 0xff}, true
	case model.BackgroundDarkRed:
		return color.RGBA{0x8b, 0x00, 0x00, 0xff}, true
	}
	return nil, false
}

func penaltyColor(p model.PenaltyState) color.Color {
	switch p {
	case model.PenaltyYellow:
		return color.RGBA{0xff, 0xd6, 0x00, 0xff}
	case model.PenaltyOrange:
		return color.RGBA{0xff, 0x8c, 0x00, 0xff}
	case model.PenaltyRed:
		return color.RGBA{0xe5, 0x39, 0x35, 0xff}
	}
	return color.White
}

func loadFace() (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    imgFontSize,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// RenderImage paints the chart as a table with a "<name> - <time>" footer.
// Selection highlights are never drawn.
func RenderImage(c model.Chart, now time.Time) (image.Image, error) {
	face, err := loadFace()
	if err != nil {
		return nil, ExportError{Op: "render", Err: err}
	}

	tableW := imgNameW + imgPenaltyW + imgCellW*float64(len(c.Headers))
	tableH := imgHeaderH + imgRowH*float64(len(c.Rows))
	w := int(tableW + 2*imgPadding)
	h := int(tableH + imgFooterH + 2*imgPadding)

	dc := gg.NewContext(w, h)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetFontFace(face)
	dc.SetLineWidth(1)

	x0, y0 := imgPadding, imgPadding

	// Header row.
	dc.SetColor(colorHeaderFill)
	dc.DrawRectangle(x0, y0, tableW, imgHeaderH)
	dc.Fill()
	cols := append([]string{"Names", "Penalty"}, c.Headers...)
	x := x0
	for i, title := range cols {
		cw := columnWidth(i)
		drawCellText(dc, title, x, y0, cw, imgHeaderH, colorText)
		x += cw
	}

	// Body.
	for r, row := range c.Rows {
		y := y0 + imgHeaderH + imgRowH*float64(r)
		drawCellText(dc, row.Name, x0, y, imgNameW, imgRowH, colorText)
		drawPenalty(dc, row.Penalty, x0+imgNameW, y)
		x := x0 + imgNameW + imgPenaltyW
		for _, cell := range row.Data {
			drawDataCell(dc, cell, x, y)
			x += imgCellW
		}
	}

	// Grid.
	dc.SetColor(colorGrid)
	x = x0
	for i := 0; i <= len(cols); i++ {
		dc.DrawLine(x, y0, x, y0+tableH)
		if i < len(cols) {
			x += columnWidth(i)
		}
	}
	dc.DrawLine(x0, y0, x0+tableW, y0)
	for r := 0; r <= len(c.Rows); r++ {
		y := y0 + imgHeaderH + imgRowH*float64(r)
		dc.DrawLine(x0, y, x0+tableW, y)
	}
	dc.Stroke()

	dc.SetColor(colorText)
	footer := fmt.Sprintf("%s - %s", c.Name, now.Format("2006-01-02 15:04:05"))
	dc.DrawStringAnchored(footer, x0, y0+tableH+imgFooterH/2, 0, 0.5)

	return dc.Image(), nil
}

func columnWidth(i int) float64 {
	switch i {
	case 0:
		return imgNameW
	case 1:
		return imgPenaltyW
	default:
		return imgCellW
	}
}

func drawCellText(dc *gg.Context, s string, x, y, w, h float64, col color.Color) {
	s = fitText(dc, s, w-12)
	dc.SetColor(col)
	dc.DrawStringAnchored(s, x+6, y+h/2, 0, 0.5)
}

// fitText shortens s with an ellipsis until it fits maxW.
func fitText(dc *gg.Context, s string, maxW float64) string {
	if tw, _ := dc.MeasureString(s); tw <= maxW {
		return s
	}
	rs := []rune(s)
	for len(rs) > 0 {
		rs = rs[:len(rs)-1]
		out := string(rs) + "..."
		if tw, _ := dc.MeasureString(out); tw <= maxW {
			return out
		}
	}
	return ""
}

func drawPenalty(dc *gg.Context, slots [model.PenaltySlots]model.PenaltyState, x, y float64) {
	total := float64(model.PenaltySlots)*imgCardW + float64(model.PenaltySlots-1)*imgCardSpace
	cx := x + (imgPenaltyW-total)/2
	cy := y + (imgRowH-imgCardH)/2
	for _, p := range slots {
		dc.DrawRoundedRectangle(cx, cy, imgCardW, imgCardH, 2)
		dc.SetColor(penaltyColor(p))
		dc.FillPreserve()
		dc.SetColor(colorGrid)
		dc.Stroke()
		cx += imgCardW + imgCardSpace
	}
}

func drawDataCell(dc *gg.Context, cell model.Cell, x, y float64) {
	if col, ok := backgroundColor(cell.Background); ok {
		dc.SetColor(col)
		dc.DrawRectangle(x, y, imgCellW, imgRowH)
		dc.Fill()
	}
	if cell.Background == model.BackgroundDiagonal {
		dc.Push()
		dc.DrawRectangle(x, y, imgCellW, imgRowH)
		dc.Clip()
		dc.SetColor(color.RGBA{0x99, 0x99, 0x99, 0xff})
		for off := -imgRowH; off < imgCellW; off += 8 {
			dc.DrawLine(x+off, y+imgRowH, x+off+imgRowH, y)
		}
		dc.Stroke()
		dc.Pop()
	}

	cx, cy := x+imgCellW/2, y+imgRowH/2
	switch cell.Mark {
	case model.MarkTick:
		dc.SetColor(colorTick)
		dc.SetLineWidth(3)
		dc.MoveTo(cx-7, cy)
		dc.LineTo(cx-2, cy+6)
		dc.LineTo(cx+8, cy-7)
		dc.Stroke()
		dc.SetLineWidth(1)
	case model.MarkCross:
		dc.SetColor(colorCross)
		dc.SetLineWidth(3)
		dc.DrawLine(cx-6, cy-6, cx+6, cy+6)
		dc.DrawLine(cx-6, cy+6, cx+6, cy-6)
		dc.Stroke()
		dc.SetLineWidth(1)
	case model.MarkQuestion:
		dc.SetColor(colorQuestion)
		dc.DrawStringAnchored("?", cx, cy, 0.5, 0.5)
	}
}
