package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/motorwave/internal/trace"
	"github.com/san-kum/motorwave/internal/waveform"
)

const (
	background = "#0a0a0a"
	gridColor  = "#222222"
	barColor   = "#ffa500"
)

func header(sb *strings.Builder, width, height int) {
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))
}

// TraceToSVG draws a polyline of points over the time range [t0, t1] and
// value range [lo, hi].
func TraceToSVG(points []trace.Point, t0, t1, lo, hi float64, width, height int, strokeColor string) string {
	if len(points) < 2 {
		return ""
	}
	if t1 <= t0 {
		t1 = t0 + 1
	}
	if hi <= lo {
		hi = lo + 1
	}

	var sb strings.Builder
	header(&sb, width, height)

	zero := float64(height) - (0-lo)/(hi-lo)*float64(height)
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="%s"/>
`, zero, width, zero, gridColor))

	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="2" d="M`, strokeColor))
	for i, p := range points {
		x := (p.T - t0) / (t1 - t0) * float64(width)
		y := float64(height) - (p.V-lo)/(hi-lo)*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

// BarsToSVG draws one rectangle per motor bar inside [lo, hi].
func BarsToSVG(bars []waveform.Bar, lo, hi float64, width, height int) string {
	if len(bars) == 0 {
		return ""
	}
	if hi <= lo {
		hi = lo + 1
	}

	var sb strings.Builder
	header(&sb, width, height)

	slot := float64(width) / float64(len(bars))
	barW := slot * 0.5
	scale := float64(height) / (hi - lo)

	zero := float64(height) - (0-lo)*scale
	sb.WriteString(fmt.Sprintf(`<line x1="0" y1="%.1f" x2="%d" y2="%.1f" stroke="%s"/>
<g fill="%s">
`, zero, width, zero, gridColor, barColor))

	for i, b := range bars {
		x := float64(i)*slot + (slot-barW)/2
		y := float64(height) - (b.Top()-lo)*scale
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, x, y, barW, b.Height*scale))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
