package tui

// Editor chrome colors. The preview itself is painted with the theme being
// edited, not with these.
const (
	ColorCardBackground = "#1B1530" // Dark purple
	ColorBorder         = "#3A3F55" // Grey-blue

	ColorPrimaryText   = "#E6EAF2"
	ColorSecondaryText = "#B1B8C7"
	ColorDisabledText  = "#6D7383"
	ColorHelpText      = "240"

	ColorAccentMain   = "#7C3AED" // Logo, active borders
	ColorAccentBright = "#A78BFA" // Focused field, highlights

	ColorError   = "#EF4444"
	ColorSuccess = "#22C55E"
	ColorWarning = "#F59E0B"

	// Mock app surface
	ColorAppSurface   = "#FFFFFF"
	ColorAppCanvas    = "#F3F4F6"
	ColorAppText      = "#111827"
	ColorAppMuted     = "#6B7280"
	ColorAppJobStripe = "#FBBF24"
)
