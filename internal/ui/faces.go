package ui

import (
	"fyne.io/fyne/v2"
	"github.com/tartampluch/go-countdown/internal/config"
)

// fontFaces maps engine font-cycle names onto concrete text styles. The
// names are purely aesthetic identifiers; only this table gives them
// meaning.
var fontFaces = map[string]fyne.TextStyle{
	config.FontRegular:        {},
	config.FontBold:           {Bold: true},
	config.FontItalic:         {Italic: true},
	config.FontBoldItalic:     {Bold: true, Italic: true},
	config.FontMono:           {Monospace: true},
	config.FontMonoBold:       {Monospace: true, Bold: true},
	config.FontMonoItalic:     {Monospace: true, Italic: true},
	config.FontMonoBoldItalic: {Monospace: true, Bold: true, Italic: true},
	config.FontUnderline:      {Underline: true},
	config.FontBoldUnderline:  {Bold: true, Underline: true},
	config.FontItalicUnder:    {Italic: true, Underline: true},
	config.FontMonoUnderline:  {Monospace: true, Underline: true},
}

// faceStyle resolves a font-cycle name to its text style, falling back to
// the regular face for unknown names.
func faceStyle(name string) fyne.TextStyle {
	if style, ok := fontFaces[name]; ok {
		return style
	}
	return fyne.TextStyle{}
}
