package parameter

import "time"

// Phase delays
const (
	// LaunchDelay is the time from session init to main rocket launch
	LaunchDelay = 1000 * time.Millisecond
	// MorphDelay is the time from text formation to heart morph
	MorphDelay = 5000 * time.Millisecond
	// FinaleDelay is the time from heart morph to the final message
	FinaleDelay = 2000 * time.Millisecond
)

// Per-tick spawn chances
const (
	DecorativeRocketChance = 0.04
	StreakChance           = 0.01
)

// Layout
const (
	// MobileBreakpoint is the surface width under which the compact layout applies
	MobileBreakpoint = 600.0
	// LayoutMargin is the horizontal margin used when deriving font sizes
	LayoutMargin = 20.0
	// MobileCharsPerLine is the target wrap length on compact surfaces
	MobileCharsPerLine = 15
	// GlyphWidthEstimate is the assumed advance of one glyph as a fraction of font size
	GlyphWidthEstimate = 0.6
	MainFontMaxMobile  = 80.0
	MainFontMaxDesktop = 150.0
	// MainTextAnchorFraction places the main text block at height * fraction
	MainTextAnchorFraction = 1.0 / 3.0
	// MaxWidthFraction is the share of surface width a wrapped line may occupy
	MaxWidthFraction = 0.9
	// LineHeightFactor multiplies font size into line height
	LineHeightFactor = 1.2

	StrideMobile  = 2
	StrideDesktop = 3
	// StrideGlyph is the sampling stride of the initial inside the heart
	StrideGlyph = 4

	// HeartCenterDivisor places the heart center at height / divisor
	HeartCenterDivisor = 2.5
	// HeartScaleDivisor derives curve scale from min(width, height) / divisor
	HeartScaleDivisor = 35.0
	// HeartContourRatio is the contour point count as a share of main text points
	HeartContourRatio = 0.6
	// GlyphFontDivisor derives the initial's font size from min(width, height) / divisor
	GlyphFontDivisor = 5.0

	FinalFontDivisorMobile  = 15.0
	FinalFontDivisorDesktop = 25.0
	FinalLine1Mobile        = 0.65
	FinalLine2Mobile        = 0.78
	FinalLine1Desktop       = 0.60
	FinalLine2Desktop       = 0.68

	ParticleSizeMobile  = 2.5
	ParticleSizeDesktop = 2.0
)

// Glyph sampling
const (
	// AlphaThreshold is the exclusive alpha above which a sampled pixel becomes a point
	AlphaThreshold = 128
)

// HeartbeatInterval is one heart pulse period, 2π / PulseFrequency ms
const HeartbeatInterval = 2094 * time.Millisecond
