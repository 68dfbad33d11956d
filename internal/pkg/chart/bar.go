// Package chart renders the suggested study-hours bar chart as a PNG image.
package chart

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	"github.com/fogleman/gg"
	"github.com/yigit/cgpatracker/internal/pkg/apperrors"
)

// Bar is one horizontal bar: a label on the y axis and its length in hours.
type Bar struct {
	Label string
	Value int
}

// Options controls the chart canvas.
type Options struct {
	Width    int
	Height   int
	Title    string
	XLabel   string
	YLabel   string
	FontPath string  // optional TTF; the built-in bitmap face is used when empty
	FontSize float64 // only used with FontPath
}

// DefaultOptions matches the 8x6 figure the report embeds.
func DefaultOptions() Options {
	return Options{
		Width:  800,
		Height: 600,
		Title:  "Suggested Study Hours vs Grades",
		XLabel: "Hours of Study",
		YLabel: "Grades",
	}
}

const (
	marginLeft   = 90.0
	marginRight  = 40.0
	marginTop    = 60.0
	marginBottom = 70.0
	barFill      = 0.8
	maxTicks     = 8
)

// RenderStudyHours draws bars top to bottom in the given order and returns PNG bytes.
func RenderStudyHours(bars []Bar, opts Options) ([]byte, error) {
	if len(bars) == 0 {
		return nil, fmt.Errorf("%w: chart needs at least one bar", apperrors.ErrEmptyInput)
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		d := DefaultOptions()
		opts.Width, opts.Height = d.Width, d.Height
	}

	dc := gg.NewContext(opts.Width, opts.Height)
	if opts.FontPath != "" {
		size := opts.FontSize
		if size <= 0 {
			size = 12
		}
		if err := dc.LoadFontFace(opts.FontPath, size); err != nil {
			return nil, fmt.Errorf("failed to load chart font: %w", err)
		}
	}

	dc.SetRGB(1, 1, 1)
	dc.Clear()

	plotX := marginLeft
	plotY := marginTop
	plotW := float64(opts.Width) - marginLeft - marginRight
	plotH := float64(opts.Height) - marginTop - marginBottom

	step, axisMax := ticks(maxValue(bars))
	scale := plotW / float64(axisMax)

	// grid and x tick labels
	dc.SetLineWidth(1)
	for v := 0; v <= axisMax; v += step {
		x := plotX + float64(v)*scale
		dc.SetRGB(0.85, 0.85, 0.85)
		dc.DrawLine(x, plotY, x, plotY+plotH)
		dc.Stroke()
		dc.SetRGB(0, 0, 0)
		dc.DrawStringAnchored(strconv.Itoa(v), x, plotY+plotH+6, 0.5, 1)
	}

	slot := plotH / float64(len(bars))
	barH := slot * barFill
	for i, b := range bars {
		y := plotY + float64(i)*slot + (slot-barH)/2
		w := float64(b.Value) * scale

		dc.DrawRectangle(plotX, y, w, barH)
		dc.SetRGB255(135, 206, 235) // skyblue
		dc.FillPreserve()
		dc.SetRGB(0, 0, 0)
		dc.Stroke()

		dc.DrawStringAnchored(b.Label, plotX-8, y+barH/2, 1, 0.5)
	}

	// axes
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(1.5)
	dc.DrawLine(plotX, plotY, plotX, plotY+plotH)
	dc.DrawLine(plotX, plotY+plotH, plotX+plotW, plotY+plotH)
	dc.Stroke()

	dc.DrawStringAnchored(opts.Title, float64(opts.Width)/2, marginTop/2, 0.5, 0.5)
	dc.DrawStringAnchored(opts.XLabel, plotX+plotW/2, float64(opts.Height)-marginBottom/3, 0.5, 0.5)

	dc.Push()
	dc.RotateAbout(gg.Radians(-90), marginLeft/4, plotY+plotH/2)
	dc.DrawStringAnchored(opts.YLabel, marginLeft/4, plotY+plotH/2, 0.5, 0.5)
	dc.Pop()

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode chart: %w", err)
	}
	return buf.Bytes(), nil
}

func maxValue(bars []Bar) int {
	max := 0
	for _, b := range bars {
		if b.Value > max {
			max = b.Value
		}
	}
	return max
}

// ticks picks an integer tick step and an axis end that covers max.
func ticks(max int) (step, axisMax int) {
	if max <= 0 {
		return 1, 1
	}
	step = int(math.Ceil(float64(max) / maxTicks))
	if step < 1 {
		step = 1
	}
	axisMax = int(math.Ceil(float64(max)/float64(step))) * step
	return step, axisMax
}
