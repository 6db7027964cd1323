package sdp

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipfield/internal/errorutil"
	"github.com/ghettovoice/sipfield/internal/grammar"
)

// URI is the SDP URI field "u=<uri>", a pointer to additional information about the session.
type URI struct {
	url *url.URL
}

// NewURI creates the field from the URL. A nil URL is an error.
func NewURI(u *url.URL) (*URI, error) {
	if u == nil {
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("nil URL"))
	}
	return &URI{url: cloneURL(u)}, nil
}

// ParseURI parses the field with or without the "u=" prefix.
func ParseURI(s string) (*URI, error) {
	s = strings.TrimPrefix(strings.Trim(s, grammar.WSPCRLF), "u=")
	if s == "" {
		return nil, errtrace.Wrap(grammar.ErrEmptyInput)
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, errtrace.Wrap(grammar.NewMalformedInputErr(err))
	}
	return &URI{url: u}, nil
}

// URL returns a copy of the URL.
func (u *URI) URL() *url.URL {
	if u == nil {
		return nil
	}
	return cloneURL(u.url)
}

// SetURL replaces the URL. A nil URL is an error and leaves the field unchanged.
func (u *URI) SetURL(v *url.URL) error {
	if v == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil URL"))
	}
	u.url = cloneURL(v)
	return nil
}

func cloneURL(u *url.URL) *url.URL {
	if u == nil {
		return nil
	}
	u2 := *u
	if u.User != nil {
		u2.User = new(url.Userinfo)
		*u2.User = *u.User
	}
	return &u2
}

func (u *URI) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	if u == nil {
		return 0, nil
	}
	return errtrace.Wrap2(io.WriteString(w, u.Render(opts)))
}

func (u *URI) Render(*RenderOptions) string {
	if u == nil || u.url == nil {
		return ""
	}
	return "u=" + u.url.String()
}

func (u *URI) String() string { return u.Render(nil) }

func (u *URI) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprint(f, strconv.Quote(u.String()))
	default:
		fmt.Fprint(f, u.String())
	}
}

func (u *URI) Clone() Value {
	if u == nil {
		return (*URI)(nil)
	}
	return &URI{url: cloneURL(u.url)}
}

func (u *URI) Equal(val any) bool {
	other, ok := val.(*URI)
	if !ok {
		return false
	}
	if u == other {
		return true
	} else if u == nil || other == nil || u.url == nil || other.url == nil {
		return false
	}
	return u.url.String() == other.url.String()
}

func (u *URI) IsValid() bool { return u != nil && u.url != nil && u.url.String() != "" }
