package parameter

// Rocket
const (
	// RocketGravity is added to rocket vertical velocity every step
	RocketGravity = 0.15
	// RocketTrailFade is subtracted from every trail entry alpha every step
	RocketTrailFade = 0.08
	// RocketSpeedDesktop is the launch speed above the mobile breakpoint (px/step)
	RocketSpeedDesktop = 13.0
	// RocketSpeedMobileFactor scales surface height into launch speed below the breakpoint
	RocketSpeedMobileFactor = 0.015
	// RocketApexFraction caps desktop launch speed so the apex stays inside this fraction of surface height
	RocketApexFraction = 0.75
	// RocketMainAltitudeFraction triggers the main rocket explosion once y rises above height * fraction
	RocketMainAltitudeFraction = 1.0 / 3.0
	// RocketDecorativeApexVelocity triggers decorative explosion once vy >= this value
	RocketDecorativeApexVelocity = -1.0
)

// Text particles
const (
	// TextFriction damps text particle velocity every step
	TextFriction = 0.94
	// TextHomingRate is the fraction of remaining distance covered per step once settled
	TextHomingRate = 0.03
	// TextSettleSpeed is the per-axis speed under which homing engages
	TextSettleSpeed = 0.5
	// TextExplosionForce is the maximum initial speed of formation particles
	TextExplosionForce = 10.0
	// TextShimmerChance is the per-step chance of a glitter or base color switch
	TextShimmerChance = 0.05
	// TextReleaseVelocity is the half-range of the per-axis velocity kick at heart morph
	TextReleaseVelocity = 2.5
	// FinalMinSpeed and FinalSpeedRange bound the outward speed of final message particles
	FinalMinSpeed   = 2.0
	FinalSpeedRange = 5.0
)

// Burst particles
const (
	BurstFriction = 0.95
	BurstGravity  = 0.05
	BurstFade     = 0.015
	// BurstMaxSpeed is the exclusive upper bound of initial burst speed
	BurstMaxSpeed = 6.0
	// BurstCount is the number of particles spawned by one decorative explosion
	BurstCount = 50
)

// Streak particles
const (
	StreakAngle      = 0.7853981633974483 // π/4
	StreakFade       = 0.02
	StreakMinLength  = 20.0
	StreakLenRange   = 80.0
	StreakMinSpeed   = 10.0
	StreakSpeedRange = 10.0
	StreakLineWidth  = 2.0
)

// Heartbeat
const (
	// PulseFrequency multiplies elapsed milliseconds inside the pulse sine
	PulseFrequency = 0.003
	// PulseAmplitude is the peak radial scale deviation of heart targets
	PulseAmplitude = 0.05
)
