package show

import (
	"math"

	"github.com/lixenwraith/heartburst/parameter"
	"github.com/lixenwraith/heartburst/vmath"
)

// Layout holds every size and anchor derived from the surface dimensions
type Layout struct {
	Width, Height float64
	Mobile        bool

	MainFont   float64
	MainAnchor float64
	Stride     int

	HeartCenter vmath.Point
	HeartScale  float64
	GlyphFont   float64

	FinalFont    float64
	FinalAnchors [2]float64

	RocketSpeed  float64
	ParticleSize float64
}

// ComputeLayout derives the layout for a width×height surface and a message of
// messageLen characters
func ComputeLayout(width, height, messageLen int) Layout {
	w, h := float64(max(width, 0)), float64(max(height, 0))
	short := math.Min(w, h)
	usable := math.Max(w-2*parameter.LayoutMargin, 0)

	l := Layout{
		Width:       w,
		Height:      h,
		Mobile:      w < parameter.MobileBreakpoint,
		MainAnchor:  h * parameter.MainTextAnchorFraction,
		HeartCenter: vmath.Point{X: w / 2, Y: h / parameter.HeartCenterDivisor},
		HeartScale:  short / parameter.HeartScaleDivisor,
		GlyphFont:   short / parameter.GlyphFontDivisor,
	}

	if l.Mobile {
		l.MainFont = math.Min(usable/(parameter.MobileCharsPerLine*parameter.GlyphWidthEstimate), parameter.MainFontMaxMobile)
		l.Stride = parameter.StrideMobile
		l.FinalFont = short / parameter.FinalFontDivisorMobile
		l.FinalAnchors = [2]float64{h * parameter.FinalLine1Mobile, h * parameter.FinalLine2Mobile}
		l.RocketSpeed = h * parameter.RocketSpeedMobileFactor
		l.ParticleSize = parameter.ParticleSizeMobile
	} else {
		n := float64(max(messageLen, 1))
		l.MainFont = math.Min(usable/(n*parameter.GlyphWidthEstimate), parameter.MainFontMaxDesktop)
		l.Stride = parameter.StrideDesktop
		l.FinalFont = short / parameter.FinalFontDivisorDesktop
		l.FinalAnchors = [2]float64{h * parameter.FinalLine1Desktop, h * parameter.FinalLine2Desktop}
		// Capped so the apex v²/2g stays inside the apex fraction of the surface
		apex := math.Sqrt(2 * parameter.RocketGravity * parameter.RocketApexFraction * h)
		l.RocketSpeed = math.Min(parameter.RocketSpeedDesktop, apex)
		l.ParticleSize = parameter.ParticleSizeDesktop
	}
	return l
}

// HeartCount is the number of contour points for a main text of textPoints points
func HeartCount(textPoints int) int {
	return int(math.Floor(float64(textPoints) * parameter.HeartContourRatio))
}
