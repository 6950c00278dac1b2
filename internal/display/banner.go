package display

import (
	"fmt"
	"os"

	"github.com/backmassage/webpify/internal/term"
)

// PrintBanner prints the ASCII art banner; uses Magenta if colors are enabled.
func PrintBanner() {
	if term.Enabled() {
		fmt.Fprint(os.Stdout, term.Magenta)
	}
	fmt.Fprint(os.Stdout, ` __        __   _     ____  _  __
 \ \      / /__| |__ |  _ \(_)/ _|_   _
  \ \ /\ / / _ \ '_ \| |_) | | |_| | | |
   \ V  V /  __/ |_) |  __/| |  _| |_| |
    \_/\_/ \___|_.__/|_|   |_|_|  \__, |
                                  |___/
`)
	if term.Enabled() {
		fmt.Fprintln(os.Stdout, term.NC)
	}
}
