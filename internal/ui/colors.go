package ui

// Semantic color accessors reading the active theme. They return raw ANSI
// sequences, empty when coloring is disabled, so call sites can interpolate
// them directly into format strings.

// ColorPrimary returns the accent color for headings and strategy names.
func ColorPrimary() string { return GetCurrentTheme().Primary }

// ColorSecondary returns the color for supporting text.
func ColorSecondary() string { return GetCurrentTheme().Secondary }

// ColorSuccess returns the color for successful outcomes.
func ColorSuccess() string { return GetCurrentTheme().Success }

// ColorWarning returns the color for cautionary output.
func ColorWarning() string { return GetCurrentTheme().Warning }

// ColorError returns the color for failures.
func ColorError() string { return GetCurrentTheme().Error }

// ColorBold returns the bold attribute sequence.
func ColorBold() string { return GetCurrentTheme().Bold }

// ColorUnderline returns the underline attribute sequence.
func ColorUnderline() string { return GetCurrentTheme().Underline }

// ColorReset returns the formatting reset sequence.
func ColorReset() string { return GetCurrentTheme().Reset }
