package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// writeStartBanner announces target index of total before it runs.
func writeStartBanner(w io.Writer, index, total int, e manifestEntry) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintln(bw, strings.Repeat("-", 54))
	_, _ = fmt.Fprintf(bw, "| [%d/%d] => start test package: %s target: %s\n", index, total, e.Package, e.Target)
	_, _ = fmt.Fprintln(bw, strings.Repeat("-", 54))
	return bw.Flush()
}

// writeSuccessBanner closes a passing target with a trailing blank line. The
// title line ends in two spaces.
func writeSuccessBanner(w io.Writer, index, total int, e manifestEntry) error {
	bw := bufio.NewWriter(w)
	_, _ = fmt.Fprintln(bw, strings.Repeat("-", 57))
	_, _ = fmt.Fprintf(bw, "| [%d/%d] => test SUCCESS! package: %s target: %s  \n", index, total, e.Package, e.Target)
	_, _ = fmt.Fprintln(bw, strings.Repeat("-", 57))
	_, _ = fmt.Fprintln(bw)
	return bw.Flush()
}
