package header

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipfield/internal/errorutil"
	"github.com/ghettovoice/sipfield/internal/util"
)

// WWWAuthenticate represents the WWW-Authenticate header, the challenge of a user agent server.
// Raw holds the header value: the auth scheme followed by the auth-param list.
type WWWAuthenticate struct {
	Raw string
}

// NewWWWAuthenticate builds the challenge from the scheme and the parameters.
func NewWWWAuthenticate(scheme string, params *Params) (*WWWAuthenticate, error) {
	if scheme == "" {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("empty auth scheme"))
	}
	raw, err := buildAuthValue(scheme, params)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &WWWAuthenticate{Raw: raw}, nil
}

func (*WWWAuthenticate) CanonicName() Name { return "WWW-Authenticate" }

func (*WWWAuthenticate) CompactName() Name { return "WWW-Authenticate" }

// AuthScheme returns the leading scheme token, e.g. "Digest".
func (hdr *WWWAuthenticate) AuthScheme() (string, bool) {
	if hdr == nil {
		return "", false
	}
	scheme, _ := splitAuthScheme(hdr.Raw)
	return scheme, scheme != ""
}

// Params returns the auth-param list following the scheme.
func (hdr *WWWAuthenticate) Params() AuthParams {
	if hdr == nil {
		return ""
	}
	_, params := splitAuthScheme(hdr.Raw)
	return params
}

func (hdr *WWWAuthenticate) HasParam(name string) bool { return hdr.Params().Has(name) }

func (hdr *WWWAuthenticate) Param(name string) (string, bool) { return hdr.Params().Get(name) }

func (hdr *WWWAuthenticate) ParamNames() []string { return hdr.Params().Names() }

func (hdr *WWWAuthenticate) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderRawHdr(w, hdr.CanonicName(), hdr.Raw))
}

func (hdr *WWWAuthenticate) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (hdr *WWWAuthenticate) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.Raw
}

func (hdr *WWWAuthenticate) String() string { return hdr.RenderValue() }

func (hdr *WWWAuthenticate) Format(f fmt.State, verb rune) {
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
		type hideMethods WWWAuthenticate
		type WWWAuthenticate hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*WWWAuthenticate)(hdr))
		return
	}
}

func (hdr *WWWAuthenticate) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

// Equal compares schemes case-insensitively and parameters regardless of their order.
func (hdr *WWWAuthenticate) Equal(val any) bool {
	var other *WWWAuthenticate
	switch v := val.(type) {
	case WWWAuthenticate:
		other = &v
	case *WWWAuthenticate:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return equalSchemeValues(hdr.Raw, other.Raw)
}

func (hdr *WWWAuthenticate) IsValid() bool { return hdr != nil && validSchemeValue(hdr.Raw) }

func (hdr *WWWAuthenticate) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

var zeroWWWAuthenticate WWWAuthenticate

func (hdr *WWWAuthenticate) UnmarshalJSON(data []byte) error {
	gh, err := FromJSON(data)
	if err != nil {
		*hdr = zeroWWWAuthenticate
		if errors.Is(err, errNotHeaderJSON) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	h, ok := gh.(*WWWAuthenticate)
	if !ok {
		*hdr = zeroWWWAuthenticate
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", gh, hdr))
	}

	*hdr = *h
	return nil
}
