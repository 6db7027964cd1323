package header

//go:generate go tool errtrace -w .

import (
	"encoding/json"
	"fmt"
	"net/textproto"
	"strings"
	"sync"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipfield/internal/errorutil"
	"github.com/ghettovoice/sipfield/internal/grammar"
	"github.com/ghettovoice/sipfield/internal/log"
	"github.com/ghettovoice/sipfield/internal/types"
	"github.com/ghettovoice/sipfield/internal/util"
)

// RenderOptions contains options for rendering headers.
type RenderOptions = types.RenderOptions

// Value is a structured value that can be stored in [Params].
type Value = types.Value

// Token is a parameter value rendered as is.
type Token = types.Token

// Quoted is a parameter value rendered as a quoted-string.
type Quoted = types.Quoted

// Param is a single entry of [Params].
type Param = types.Param

// Params is a case-insensitive set of header parameters.
type Params = types.Params

// NewParams creates an empty [Params] that is not safe for concurrent use.
func NewParams() *Params { return types.NewParams() }

// NewSharedParams creates an empty [Params] that is safe for concurrent use.
func NewSharedParams() *Params { return types.NewSharedParams() }

// ParseParams parses a list of name[=value] pairs delimited by sep.
func ParseParams(s, sep string) (*Params, error) { return errtrace.Wrap2(types.ParseParams(s, sep)) }

// Header represents a generic SIP header.
type Header interface {
	types.Renderer
	types.Cloneable[Header]
	types.ValidFlag
	types.Equalable
	CanonicName() Name
	CompactName() Name
	RenderValue() string
}

// Name represents a SIP header name.
type Name string

// ToCanonic converts the Name to its canonical form.
func (n Name) ToCanonic() Name { return CanonicName(n) }

// IsValid checks whether the Name is syntactically valid.
func (n Name) IsValid() bool { return grammar.IsToken(n) }

// Equal compares this Name with another for equality.
func (n Name) Equal(val any) bool {
	var other Name
	switch v := val.(type) {
	case Name:
		other = v
	case *Name:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return CanonicName(n) == CanonicName(other)
}

var hdrNames = map[string]Name{
	"c":                "Content-Type",
	"e":                "Content-Encoding",
	"f":                "From",
	"i":                "Call-ID",
	"k":                "Supported",
	"l":                "Content-Length",
	"m":                "Contact",
	"s":                "Subject",
	"t":                "To",
	"v":                "Via",
	"Call-Id":          "Call-ID",
	"Cseq":             "CSeq",
	"Mime-Version":     "MIME-Version",
	"Www-Authenticate": "WWW-Authenticate",
}

// CanonicName converts name to the canonical form.
// The first letter and any letter following a hyphen are converted to upper case,
// the rest to lower case, e.g. "www-authenticate" becomes "WWW-Authenticate".
// Compact names are expanded, e.g. "c" becomes "Content-Type".
func CanonicName[T ~string](name T) Name {
	name = util.TrimSP(name)
	if n, ok := hdrNames[string(name)]; ok {
		return n
	}

	name = T(textproto.CanonicalMIMEHeaderKey(string(name)))
	if n, ok := hdrNames[string(name)]; ok {
		return n
	}
	return Name(name)
}

// Parser is a function type for parsing a custom SIP header.
type Parser func(name string, value []byte) Header

var customParsers sync.Map // map[string]Parser

// RegisterParser registers a custom SIP header parser.
func RegisterParser(name string, parser Parser) {
	customParsers.Store(util.LCase(name), parser)
}

// UnregisterParser unregisters a custom SIP header parser.
func UnregisterParser(name string) {
	customParsers.Delete(util.LCase(name))
}

// Parse parses a SIP header line "Name: value" from the given input s (string or []byte).
//
// Authentication headers are returned as their own types, headers with a registered
// [Parser] are built by the parser, any other header is returned as [Any].
// Only an empty input or an invalid header name is an error, values are kept as is.
//
// Example usage:
//
//	hdr, err := header.Parse(`WWW-Authenticate: Digest realm="atlanta.com", qop="auth"`)
func Parse[T ~string | ~[]byte](s T) (Header, error) {
	str := strings.Trim(string(s), grammar.WSPCRLF)
	if str == "" {
		return nil, errtrace.Wrap(grammar.ErrEmptyInput)
	}

	sc := grammar.NewScanner(str)
	name := strings.TrimRight(sc.ReadWord(":"), grammar.WSP)
	if !grammar.IsToken(name) {
		return nil, errtrace.Wrap(grammar.NewMalformedInputErr("invalid header name %q", name))
	}
	if _, ok := sc.Peek(); !ok {
		return nil, errtrace.Wrap(grammar.NewMalformedInputErr("missing colon after header name %q", name))
	}
	value := strings.Trim(sc.SkipChar().Rest(), grammar.WSPCRLF)

	switch CanonicName(name) {
	case "WWW-Authenticate":
		return &WWWAuthenticate{Raw: value}, nil
	case "Proxy-Authenticate":
		return &ProxyAuthenticate{Raw: value}, nil
	case "Authorization":
		return &Authorization{Raw: value}, nil
	case "Proxy-Authorization":
		return &ProxyAuthorization{Raw: value}, nil
	case "Authentication-Info":
		return &AuthenticationInfo{Raw: value}, nil
	}

	if prs, ok := customParsers.Load(util.LCase(name)); ok && prs != nil {
		//nolint:forcetypeassert
		if hdr := prs.(Parser)(name, []byte(value)); hdr != nil {
			return hdr, nil
		}
	}

	log.Logger().Debug("no parser for header, fall back to generic header", "name", name)
	return &Any{Name: name, Value: value}, nil
}

type headerData struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// ToJSON encodes the header as {"name":"<CanonicName>","value":"<RenderValue>"}.
func ToJSON(hdr Header) ([]byte, error) {
	var hd *headerData
	if hdr != nil {
		hd = &headerData{
			Name:  string(hdr.CanonicName()),
			Value: hdr.RenderValue(),
		}
	}
	return errtrace.Wrap2(json.Marshal(hd))
}

var errNotHeaderJSON errorutil.Error = "not a header JSON"

// FromJSON decodes a header encoded with [ToJSON] by re-parsing it with [Parse].
func FromJSON[T ~string | ~[]byte](data T) (Header, error) {
	var hd *headerData
	if err := json.Unmarshal([]byte(data), &hd); err != nil {
		return nil, errtrace.Wrap(err)
	}
	if hd == nil {
		return nil, errtrace.Wrap(errNotHeaderJSON)
	}

	hdr, err := Parse(hd.Name + ":" + hd.Value)
	if err != nil {
		return nil, errtrace.Wrap(fmt.Errorf("parse header %q: %w", hd.Name, err))
	}
	return hdr, nil
}
