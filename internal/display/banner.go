package display

import (
	"fmt"
	"io"

	"github.com/backmassage/firmbuild/internal/term"
)

const banner = ` _____ _                 _           _ _     _
|  ___(_)_ __ _ __ ___ | |__  _   _(_) | __| |
| |_  | | '__| '_ ` + "`" + ` _ \| '_ \| | | | | |/ _` + "`" + ` |
|  _| | | |  | | | | | | |_) | |_| | | | (_| |
|_|   |_|_|  |_| |_| |_|_.__/ \__,_|_|_|\__,_|
`

// PrintBanner writes the ASCII art banner to w; Magenta if colors are enabled.
func PrintBanner(w io.Writer) {
	fmt.Fprintln(w, term.Paint(term.Magenta, banner))
}
