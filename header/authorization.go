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

// Authorization represents the Authorization header, the credentials of a user agent client.
// Raw holds the header value: the auth scheme followed by the auth-param list.
type Authorization struct {
	Raw string
}

// NewAuthorization builds the credentials from the scheme and the parameters.
func NewAuthorization(scheme string, params *Params) (*Authorization, error) {
	if scheme == "" {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("empty auth scheme"))
	}
	raw, err := buildAuthValue(scheme, params)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Authorization{Raw: raw}, nil
}

func (*Authorization) CanonicName() Name { return "Authorization" }

func (*Authorization) CompactName() Name { return "Authorization" }

func (hdr *Authorization) AuthScheme() (string, bool) {
	if hdr == nil {
		return "", false
	}
	scheme, _ := splitAuthScheme(hdr.Raw)
	return scheme, scheme != ""
}

func (hdr *Authorization) Params() AuthParams {
	if hdr == nil {
		return ""
	}
	_, params := splitAuthScheme(hdr.Raw)
	return params
}

func (hdr *Authorization) HasParam(name string) bool { return hdr.Params().Has(name) }

func (hdr *Authorization) Param(name string) (string, bool) { return hdr.Params().Get(name) }

func (hdr *Authorization) ParamNames() []string { return hdr.Params().Names() }

func (hdr *Authorization) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderRawHdr(w, hdr.CanonicName(), hdr.Raw))
}

func (hdr *Authorization) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (hdr *Authorization) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.Raw
}

func (hdr *Authorization) String() string { return hdr.RenderValue() }

func (hdr *Authorization) Format(f fmt.State, verb rune) {
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
		type hideMethods Authorization
		type Authorization hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*Authorization)(hdr))
		return
	}
}

func (hdr *Authorization) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

// Equal compares schemes case-insensitively and parameters regardless of their order.
func (hdr *Authorization) Equal(val any) bool {
	var other *Authorization
	switch v := val.(type) {
	case Authorization:
		other = &v
	case *Authorization:
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

func (hdr *Authorization) IsValid() bool { return hdr != nil && validSchemeValue(hdr.Raw) }

func (hdr *Authorization) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

var zeroAuthorization Authorization

func (hdr *Authorization) UnmarshalJSON(data []byte) error {
	gh, err := FromJSON(data)
	if err != nil {
		*hdr = zeroAuthorization
		if errors.Is(err, errNotHeaderJSON) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	h, ok := gh.(*Authorization)
	if !ok {
		*hdr = zeroAuthorization
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", gh, hdr))
	}

	*hdr = *h
	return nil
}
