package ui

// The ColorX accessors read from the current theme so callers never cache an
// escape code across an InitTheme call.

func ColorReset() string { return GetCurrentTheme().Reset }

func ColorRed() string { return GetCurrentTheme().Error }

func ColorGreen() string { return GetCurrentTheme().Success }

func ColorYellow() string { return GetCurrentTheme().Warning }

func ColorBlue() string { return GetCurrentTheme().Primary }

func ColorMagenta() string { return GetCurrentTheme().Info }

func ColorCyan() string { return GetCurrentTheme().Secondary }

func ColorBold() string { return GetCurrentTheme().Bold }

func ColorUnderline() string { return GetCurrentTheme().Underline }
