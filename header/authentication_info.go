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

// AuthenticationInfo represents the Authentication-Info header.
// Raw holds the header value, a bare auth-param list without a scheme, e.g.
//
//	nextnonce="47364c23432d2e131a5fb210812c", qop=auth, rspauth="8f2e1f"
type AuthenticationInfo struct {
	Raw string
}

// NewAuthenticationInfo builds the header from the non-empty parameters.
func NewAuthenticationInfo(params *Params) (*AuthenticationInfo, error) {
	raw, err := buildAuthValue("", params)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &AuthenticationInfo{Raw: raw}, nil
}

func (*AuthenticationInfo) CanonicName() Name { return "Authentication-Info" }

func (*AuthenticationInfo) CompactName() Name { return "Authentication-Info" }

// AuthScheme always reports no scheme, the header carries parameters only.
func (*AuthenticationInfo) AuthScheme() (string, bool) { return "", false }

func (hdr *AuthenticationInfo) Params() AuthParams {
	if hdr == nil {
		return ""
	}
	return AuthParams(hdr.Raw)
}

func (hdr *AuthenticationInfo) HasParam(name string) bool { return hdr.Params().Has(name) }

func (hdr *AuthenticationInfo) Param(name string) (string, bool) { return hdr.Params().Get(name) }

func (hdr *AuthenticationInfo) ParamNames() []string { return hdr.Params().Names() }

func (hdr *AuthenticationInfo) RenderTo(w io.Writer, _ *RenderOptions) (num int, err error) {
	if hdr == nil {
		return 0, nil
	}
	return errtrace.Wrap2(renderRawHdr(w, hdr.CanonicName(), hdr.Raw))
}

func (hdr *AuthenticationInfo) Render(opts *RenderOptions) string {
	if hdr == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	hdr.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (hdr *AuthenticationInfo) RenderValue() string {
	if hdr == nil {
		return ""
	}
	return hdr.Raw
}

func (hdr *AuthenticationInfo) String() string { return hdr.RenderValue() }

func (hdr *AuthenticationInfo) Format(f fmt.State, verb rune) {
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
		type hideMethods AuthenticationInfo
		type AuthenticationInfo hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*AuthenticationInfo)(hdr))
		return
	}
}

func (hdr *AuthenticationInfo) Clone() Header {
	if hdr == nil {
		return nil
	}
	hdr2 := *hdr
	return &hdr2
}

func (hdr *AuthenticationInfo) Equal(val any) bool {
	var other *AuthenticationInfo
	switch v := val.(type) {
	case AuthenticationInfo:
		other = &v
	case *AuthenticationInfo:
		other = v
	default:
		return false
	}

	if hdr == other {
		return true
	} else if hdr == nil || other == nil {
		return false
	}

	return hdr.Params().ToParams().Equal(other.Params().ToParams())
}

func (hdr *AuthenticationInfo) IsValid() bool { return hdr != nil && hdr.Params().IsValid() }

func (hdr *AuthenticationInfo) MarshalJSON() ([]byte, error) {
	return errtrace.Wrap2(ToJSON(hdr))
}

var zeroAuthenticationInfo AuthenticationInfo

func (hdr *AuthenticationInfo) UnmarshalJSON(data []byte) error {
	gh, err := FromJSON(data)
	if err != nil {
		*hdr = zeroAuthenticationInfo
		if errors.Is(err, errNotHeaderJSON) {
			return nil
		}
		return errtrace.Wrap(err)
	}

	h, ok := gh.(*AuthenticationInfo)
	if !ok {
		*hdr = zeroAuthenticationInfo
		return errtrace.Wrap(errorutil.Errorf("unexpected header: got %T, want %T", gh, hdr))
	}

	*hdr = *h
	return nil
}
