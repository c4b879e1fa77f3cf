// Package display provides the terminal banner.
package display

import (
	"fmt"
	"os"

	"github.com/backmassage/videocheck/internal/term"
)

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner() {
	fmt.Fprint(os.Stdout, term.Magenta(`       _     _                _               _
__   _(_) __| | ___  ___  ___| |__   ___  ___| | __
\ \ / / |/ _`+"`"+` |/ _ \/ _ \/ __| '_ \ / _ \/ __| |/ /
 \ V /| | (_| |  __/ (_) | (__| | | |  __/ (__|   <
  \_/ |_|\__,_|\___|\___/ \___|_| |_|\___|\___|_|\_\
`))
	fmt.Fprintln(os.Stdout)
}
