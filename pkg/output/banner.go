package output

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerColors = []string{"#818cf8", "#a78bfa", "#c084fc", "#e879f9"}

// PrintBanner writes the welcome banner; colors are dropped when w is not a terminal
func PrintBanner(w io.Writer, welcome, title, version string) {
	o := termenv.NewOutput(w)

	lines := []string{
		"-------------------------------",
		fmt.Sprintf("  %s", welcome),
		fmt.Sprintf("  %s", title),
		fmt.Sprintf("  version %s", version),
	}

	fmt.Fprintln(w)
	for i, line := range lines {
		color := bannerColors[i%len(bannerColors)]
		fmt.Fprintln(w, o.String(line).Foreground(o.Color(color)))
	}
	fmt.Fprintln(w)
}
