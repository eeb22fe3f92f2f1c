// Package input collects the list of source and header filenames a build
// runs over. Tokens are whitespace-separated, so several names may share a
// line, and collection ends at the sentinel token.
package input

import (
	"bufio"
	"fmt"
	"io"
)

// Prompt is written before interactive collection starts.
const Prompt = "Enter your C source and header file names (type 'END' to finish):"

// Collect writes the prompt to w (when non-nil) and reads tokens from r until
// one equals sentinel exactly. End of input before the sentinel, or a read
// failure, is an [InputError] wrapping [ErrRead]. An empty list is an
// [InputError] wrapping [ErrNoFiles].
func Collect(r io.Reader, w io.Writer, sentinel string) ([]string, error) {
	if w != nil {
		fmt.Fprintln(w, Prompt)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	sc.Split(bufio.ScanWords)

	var files []string
	for {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, &InputError{Err: ErrRead, Detail: err}
			}
			return nil, &InputError{Err: ErrRead, Detail: io.ErrUnexpectedEOF}
		}
		tok := sc.Text()
		if tok == sentinel {
			break
		}
		files = append(files, tok)
	}

	if len(files) == 0 {
		return nil, &InputError{Err: ErrNoFiles}
	}
	return files, nil
}
