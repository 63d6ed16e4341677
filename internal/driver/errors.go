package driver

import (
	"fmt"

	"github.com/andb/andb/internal/errs"
)

// FormatError renders err the way spec.md §7 specifies: a parse failure as
// "FAILED: <query>" followed by "ERROR: <msg> L = <line> C = <col>"; every
// other recognized error kind as "EXCEPTION: <message>". Each statement is
// processed in its own error boundary (Run returns a statement failure as
// an error; it does not recover panics), and
// FormatError is the last step before handing the text to whatever
// out-of-scope driver prints it; Run's caller always proceeds to the next
// statement afterward.
func FormatError(query string, err error) string {
	if err == nil {
		return ""
	}

	var pe *errs.ParseErr
	if errs.ErrParse.Is(err) {
		if cause := unwrapParseErr(err); cause != nil {
			pe = cause
		}
	}
	if pe != nil {
		return fmt.Sprintf("FAILED: %s\nERROR: %s L = %d C = %d", query, pe.Msg, pe.Line, pe.Col)
	}

	return fmt.Sprintf("EXCEPTION: %s", err.Error())
}

func unwrapParseErr(err error) *errs.ParseErr {
	type causer interface{ Cause() error }
	for err != nil {
		if pe, ok := err.(*errs.ParseErr); ok {
			return pe
		}
		c, ok := err.(causer)
		if !ok {
			return nil
		}
		err = c.Cause()
	}
	return nil
}
