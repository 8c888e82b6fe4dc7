package parameter

// Default palette, hex encoded so the config layer can override it
var DefaultPalette = []string{
	"#ff0055", // passion red
	"#ff3366", // hot pink
	"#ff99b3", // soft pink
	"#ffe6eb", // pale pink
	"#ffffff", // white
	"#ffd700", // gold
	"#ffcc00", // golden yellow
}

// GlowColors tint the inner glyph and the closing lines
var GlowColors = []string{"#ffffff", "#ffd700"}

// HeartColors tint the heart contour
var HeartColors = []string{"#ff0055", "#ff99b3"}

// Default texts
const (
	DefaultMessage = "Hola MILY SOLO PARA RECORDARTE QUE TU PUEDES CON TODO ERES INCREIBLE"
	DefaultInitial = "M"
)

var DefaultFinalLines = [2]string{
	"NUNCA LO OLVIDES MILY",
	"ANIMO SE TE APRECIA MUCHO TE QUIERO MILY",
}

// Fade trail
const (
	// TrailFadeAlpha is the opacity of the black wash painted each frame
	TrailFadeAlpha = 0.15
)

// Rocket drawing
const (
	RocketBodyWidth   = 4.0
	RocketBodyHeight  = 15.0
	RocketBodyOffsetY = 10.0
	RocketTrailSize   = 2.0
	BurstSize         = 3.0
)

// Terminal presentation
const (
	// DefaultDotSize is the number of canvas pixels per half-block dot edge
	DefaultDotSize = 4
	DefaultFPS     = 60
	// HUDSpringFrequency and HUDSpringDamping tune the overlay slide animation
	HUDSpringFrequency = 7.0
	HUDSpringDamping   = 0.8
)
