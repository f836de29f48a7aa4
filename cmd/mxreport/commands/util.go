package commands

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/Dynom/mxreport/report"
)

// printInputProblem explains how to fix a missing or empty input file. Other errors are left to the caller.
func printInputProblem(w io.Writer, fileName string, err error) {
	var reason string
	switch {
	case errors.Is(err, fs.ErrNotExist):
		reason = fmt.Sprintf("The file '%s' does not exist.", fileName)
	case errors.Is(err, report.ErrEmptyInput):
		reason = fmt.Sprintf("The file '%s' is empty.", fileName)
	default:
		return
	}

	_, _ = fmt.Fprintf(w, "\n--- PLEASE FIX THE FOLLOWING ERROR: %s\n", strings.Repeat("-", 56))
	_, _ = fmt.Fprintf(w, "= %s\n", reason)
	_, _ = fmt.Fprintf(w, "= Create the file %s, save the email addresses, one line per email address.\n", fileName)
	_, _ = fmt.Fprintf(w, "%s\n\n", strings.Repeat("-", 92))
}
