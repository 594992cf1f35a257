package s3probe

import (
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/input-output-hk/catalyst-forge-libs/aws/s3probe/errors"
)

// WriteReport renders a probe result as the diagnostic lines printed to
// standard output.
//
// An answered request prints:
//
//	OK <key count>
//	<key>                                      one line per object, or
//	No Contents, response keys: [<fields>]     when no item list came back
//
// A rejected request prints:
//
//	ERROR <code> '<message>'
//	Full metadata map[...]
func WriteReport(w io.Writer, r *Result) error {
	switch {
	case r == nil:
		return fmt.Errorf("write report: nil result")
	case r.Failure != nil:
		return writeFailure(w, r.Failure)
	case r.Listing != nil:
		return writeListing(w, r.Listing)
	default:
		return fmt.Errorf("write report: result has neither a listing nor a failure")
	}
}

func writeListing(w io.Writer, l *Listing) error {
	if _, err := fmt.Fprintf(w, "OK %d\n", l.KeyCount); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	if !l.HasContents {
		if _, err := fmt.Fprintf(w, "No Contents, response keys: %v\n", l.Fields); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		return nil
	}

	for _, obj := range l.Objects {
		if _, err := fmt.Fprintln(w, obj.Key); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
	}
	return nil
}

func writeFailure(w io.Writer, f *errors.ServiceError) error {
	if _, err := fmt.Fprintf(w, "ERROR %s %s\n", f.Code, quoteMessage(f.Message)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if _, err := fmt.Fprintf(w, "Full metadata %v\n", f.Metadata.Map()); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// quoteMessage wraps s in single quotes. Backslashes, single quotes and
// non-printable runes are escaped so the message stays on one line.
func quoteMessage(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('\'')
	for _, r := range s {
		switch r {
		case '\'', '\\':
			b.WriteByte('\\')
			b.WriteRune(r)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			switch {
			case unicode.IsPrint(r):
				b.WriteRune(r)
			case r < 0x100:
				fmt.Fprintf(&b, `\x%02x`, r)
			case r < 0x10000:
				fmt.Fprintf(&b, `\u%04x`, r)
			default:
				fmt.Fprintf(&b, `\U%08x`, r)
			}
		}
	}
	b.WriteByte('\'')
	return b.String()
}
