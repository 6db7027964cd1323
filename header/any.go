package header

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipfield/internal/errorutil"
	"github.com/ghettovoice/sipfield/internal/grammar"
	"github.com/ghettovoice/sipfield/internal/log"
	"github.com/ghettovoice/sipfield/internal/util"
)

// Any keeps a header this package has no dedicated type for, e.g. Via or Contact.
// [Parse] falls back to it when no [Parser] is registered for the name.
// The value is stored verbatim, use [Any.ParseParams] to get at its parameters.
type Any struct {
	Name  string
	Value string
}

func (hdr *Any) CanonicName() Name { return CanonicName(hdr.Name) }

// CompactName is the canonical name, compact forms are never emitted for unknown headers.
func (hdr *Any) CompactName() Name { return CanonicName(hdr.Name) }

func (hdr *Any) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderRawHdr(w, hdr.CanonicName(), hdr.Value))
}

func (hdr *Any) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (hdr *Any) String() string {
	return hdr.RenderValue()
}

// RenderValue returns the stored value as is.
func (hdr *Any) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.Value
}

func (hdr *Any) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		if f.Flag('+') {
			hdr.RenderTo(f, nil) //nolint:errcheck
			return
		}
		fmt.Fprint(f, hdr.String())
		return
	case 'q':
		if f.Flag('+') {
			fmt.Fprint(f, strconv.Quote(hdr.Render(nil)))
			return
		}
		fmt.Fprint(f, strconv.Quote(hdr.String()))
		return
	default:
		type hideMethods Any
		type Any hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Any)(hdr))
		return
	}
}

func (hdr *Any) Clone() Header {
	if hdr == nil {
		return nil
	}

	hdr2 := *hdr
	return &hdr2
}

// Equal reports whether val is an Any with the same canonical name and exactly the same value.
func (hdr *Any) Equal(val any) bool {
	var other *Any
	switch v := val.(type) {
	case Any:
		other = &v
	case *Any:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return hdr.CanonicName() == other.CanonicName() && hdr.Value == other.Value
}

// IsValid reports whether the name is a token and the value is a single line.
func (hdr *Any) IsValid() bool {
	return hdr != nil && grammar.IsToken(hdr.Name) && !strings.ContainsAny(hdr.Value, "\r\n")
}

// ParseParams parses the value as a list of name[=value] pairs delimited by sep.
// Malformed pairs are kept as [Token] values and reported to the debug log.
func (hdr *Any) ParseParams(sep string) (*Params, error) {
	if hdr == nil {
		return nil, errtrace.Wrap(grammar.ErrEmptyInput)
	}

	params, err := ParseParams(hdr.Value, sep)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if !params.IsValid() {
		log.Logger().Debug("malformed header parameters",
			"header", hdr.Name,
			"params", params,
		)
	}
	return params, nil
}

func (hdr *Any) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

var zeroAny Any

func (hdr *Any) UnmarshalJSON(data []byte) error {
	gh, err := FromJSON(data)
	if err != nil {
		*hdr = zeroAny
		if errors.Is(err, errNotHeaderJSON) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	h, ok := gh.(*Any)
	if !ok {
		*hdr = zeroAny
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", gh, hdr))
	}

	*hdr = *h
	return nil
}
