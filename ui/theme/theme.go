package theme

// Centralized theming and styling initialization for the crop tool UI.
// Provides palette constants and InitStyles to activate a base theme and
// configure semantic widget styles.

import (
	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets. The tool
// keeps a terminal look: black surfaces, green text.
const (
	ColorBg       = "#000000" // pure black background
	ColorText     = "#33FF33" // terminal green
	ColorAccent   = "#00FF00" // brighter green for highlights
	ColorHover    = "#003300" // dark green hover
	ColorBorder   = "#33FF33"
	ColorWarn     = "#FFB000" // amber for failure status
	ColorDim      = "#1A661A" // muted green for secondary text
	ColorKeycapBg = "#001A00"
)

// style names used with Style("action.TButton") etc.
const (
	StyleActionButton = "action.TButton"
	StyleToggleButton = "toggle.TButton"
	StyleStatusLabel  = "status.TLabel"
	StyleRecordLabel  = "record.TLabel"
	StyleTitleLabel   = "title.TLabel"
)

// InitStyles applies the terminal palette to the application styles.
func InitStyles() {
	_ = ActivateTheme("azure dark") // baseline metrics
	App.Configure(Background(ColorBg))

	StyleConfigure(StyleActionButton,
		Background(ColorBg),
		Foreground(ColorText),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleToggleButton,
		Background(ColorKeycapBg),
		Foreground(ColorText),
		Padding("4p 3p"),
		Borderwidth(1),
		Relief("ridge"),
	)
	StyleConfigure(StyleStatusLabel,
		Foreground(ColorAccent),
		Background(ColorBg),
		Padding("2p 1p"),
	)
	StyleConfigure(StyleRecordLabel,
		Foreground(ColorDim),
		Background(ColorBg),
		Padding("2p 1p"),
	)
	StyleConfigure(StyleTitleLabel,
		Foreground(ColorAccent),
		Background(ColorBg),
		Padding("4p 2p"),
	)
}
