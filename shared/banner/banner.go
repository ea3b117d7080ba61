// Package banner prints the application title banner.
package banner

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

const titleColor = "\x1b[38;2;255;153;0m" // Amazon Orange

var titleLines = []string{
	"  █████╗  ██╗    ██╗ ███████╗        ██████╗  ███████╗ ██████╗   ██████╗  ██████╗  ████████╗ ███████╗ ██████╗ ",
	" ██╔══██╗ ██║    ██║ ██╔════╝        ██╔══██╗ ██╔════╝ ██╔══██╗ ██╔═══██╗ ██╔══██╗ ╚══██╔══╝ ██╔════╝ ██╔══██╗",
	" ███████║ ██║ █╗ ██║ ███████╗ █████╗ ██████╔╝ █████╗   ██████╔╝ ██║   ██║ ██████╔╝    ██║    █████╗   ██████╔╝",
	" ██╔══██║ ██║███╗██║ ╚════██║ ╚════╝ ██╔══██╗ ██╔══╝   ██╔═══╝  ██║   ██║ ██╔══██╗    ██║    ██╔══╝   ██╔══██╗",
	" ██║  ██║ ╚███╔███╔╝ ███████║        ██║  ██║ ███████╗ ██║      ╚██████╔╝ ██║  ██║    ██║    ███████╗ ██║  ██║",
	" ╚═╝  ╚═╝  ╚══╝╚══╝  ╚══════╝        ╚═╝  ╚═╝ ╚══════╝ ╚═╝       ╚═════╝  ╚═╝  ╚═╝    ╚═╝    ╚══════╝ ╚═╝  ╚═╝",
}

// DrawBannerTitle prints the application title banner to stdout.
// It is a no-op when stdout is not a terminal.
func DrawBannerTitle() {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	fmt.Print(titleColor)
	for _, line := range titleLines {
		pad := 0
		if width > len(line) {
			pad = (width - len(line)) / 2
		}
		if pad > 0 {
			fmt.Print(strings.Repeat(" ", pad))
		}
		fmt.Println(line)
	}
	fmt.Print("\x1b[0m")
}
