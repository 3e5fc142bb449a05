package render

import (
	"io"
)

// Title returns s rendered bold, for banners and section headers.
func Title(s string) string {
	return colorBold.Sprint(s)
}

// Success writes a green confirmation line.
func Success(w io.Writer, format string, args ...any) {
	_, _ = colorGreen.Fprintf(w, format+"\n", args...)
}

// Warn writes a yellow notice line.
func Warn(w io.Writer, format string, args ...any) {
	_, _ = colorYellow.Fprintf(w, format+"\n", args...)
}
