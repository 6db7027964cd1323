package header

import (
	"io"
	"iter"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipfield/internal/errorutil"
	"github.com/ghettovoice/sipfield/internal/grammar"
	"github.com/ghettovoice/sipfield/internal/ioutil"
	"github.com/ghettovoice/sipfield/internal/log"
	"github.com/ghettovoice/sipfield/internal/types"
	"github.com/ghettovoice/sipfield/internal/util"
)

// AuthHeader is implemented by the authentication headers:
// [WWWAuthenticate], [ProxyAuthenticate], [Authorization], [ProxyAuthorization]
// and [AuthenticationInfo].
type AuthHeader interface {
	Header
	// AuthScheme returns the leading authentication scheme token, if the header has one.
	AuthScheme() (string, bool)
	// Params returns the parameters part of the header value.
	Params() AuthParams
	// HasParam reports whether the parameter with the given name is present.
	HasParam(name string) bool
	// Param returns the unquoted value of the parameter with the given name.
	Param(name string) (string, bool)
	// ParamNames returns names of all parameters in the order they appear in the header.
	ParamNames() []string
}

var (
	_ AuthHeader = (*WWWAuthenticate)(nil)
	_ AuthHeader = (*ProxyAuthenticate)(nil)
	_ AuthHeader = (*Authorization)(nil)
	_ AuthHeader = (*ProxyAuthorization)(nil)
	_ AuthHeader = (*AuthenticationInfo)(nil)
)

// AuthParams is the comma separated auth-param list of an authentication header.
//
// AuthParams is not parsed up front, every query scans the text again.
// Parameter names are matched case-insensitively.
// The scan never fails: malformed parameters are returned as best as possible,
// e.g. a value with an unterminated quoted-string is returned with the rest of the text as is.
type AuthParams string

type authParam struct {
	name     string
	value    string
	hasValue bool
	quoted   bool
	degraded bool
}

func (s AuthParams) scan() iter.Seq[authParam] {
	return func(yield func(authParam) bool) {
		sc := grammar.NewScanner(string(s))
		sc.SkipWSPCRLF()
		for sc.HasMore() {
			start := sc.Pos()
			end, ok := sc.IndexOfCommaSeparator()
			if !ok {
				end = sc.Len()
			}

			// each parameter is scanned on its own bounded by the next comma
			psc := grammar.NewScanner(string(s[start:end]))
			p := authParam{name: psc.ReadWord("=" + grammar.WSPCRLF)}
			if c, ok := psc.SkipWSPCRLF().Peek(); ok && c == '=' {
				psc.SkipChar().SkipWSPCRLF()
				c, _ = psc.Peek()
				v, ok := psc.ReadUnquoted()
				p.value = v
				p.hasValue = true
				p.quoted = c == '"' && ok
				p.degraded = !ok
			}
			if psc.SkipWSPCRLF().HasMore() {
				p.degraded = true
			}
			if p.name != "" && !yield(p) {
				return
			}

			sc.SetPos(end).SkipCommaSeparator()
		}
	}
}

func (s AuthParams) lookup(name string) (authParam, bool) {
	name = util.TrimSP(name)
	for p := range s.scan() {
		if util.EqFold(p.name, name) {
			return p, true
		}
	}
	return authParam{}, false
}

// Has reports whether the parameter with the given name is present.
func (s AuthParams) Has(name string) bool {
	_, ok := s.lookup(name)
	return ok
}

// Get returns the value of the parameter with the given name.
// Quoted values are returned unquoted. Parameters without a value are reported
// as present with an empty string.
func (s AuthParams) Get(name string) (string, bool) {
	p, ok := s.lookup(name)
	if ok && p.degraded {
		log.Logger().Debug("malformed auth parameter",
			"param", p.name,
			"value", log.StringValue(p.value),
		)
	}
	return p.value, ok
}

// Names returns parameter names in the order they appear.
func (s AuthParams) Names() []string {
	var names []string
	for p := range s.scan() {
		names = append(names, p.name)
	}
	return names
}

// All returns an iterator over parameter names and unquoted values in the order they appear.
func (s AuthParams) All() iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for p := range s.scan() {
			if !yield(p.name, p.value) {
				return
			}
		}
	}
}

// Len returns the number of parameters.
func (s AuthParams) Len() int {
	var n int
	for range s.scan() {
		n++
	}
	return n
}

// ToParams converts the list to the structured [Params] container with ", " separator.
// Quoted values become [Quoted], other values [Token], parameters without a value become flags.
// If the same parameter appears more than once, the last one wins.
func (s AuthParams) ToParams() *Params {
	ps := types.NewParams()
	ps.SetSeparator(", ") //nolint:errcheck
	for p := range s.scan() {
		switch {
		case !p.hasValue:
			ps.Set(p.name, nil)
		case p.quoted:
			ps.Set(p.name, types.Quoted(p.value))
		default:
			ps.Set(p.name, types.Token(p.value))
		}
	}
	return ps
}

// IsValid reports whether the list contains at least one parameter,
// all names are tokens and all parameters are well-formed.
func (s AuthParams) IsValid() bool {
	var n int
	for p := range s.scan() {
		if !grammar.IsToken(p.name) || p.degraded {
			return false
		}
		n++
	}
	return n > 0
}

func (s AuthParams) String() string { return string(s) }

// splitAuthScheme splits a challenge or credentials value into the scheme and parameters.
// When the first word is not a token, there is no scheme and the whole value holds parameters.
func splitAuthScheme(raw string) (string, AuthParams) {
	sc := grammar.NewScanner(raw)
	start := sc.SkipWSPCRLF().Pos()
	scheme := sc.ReadWord(grammar.WSPCRLF + ",")
	if !grammar.IsToken(scheme) {
		return "", AuthParams(raw[start:])
	}
	return scheme, AuthParams(sc.SkipWSPCRLF().Rest())
}

func buildAuthValue(scheme string, params *Params) (string, error) {
	if scheme != "" && !grammar.IsToken(scheme) {
		return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid auth scheme %q", scheme))
	}
	if params.Len() == 0 {
		if scheme == "" {
			return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("empty auth parameters"))
		}
		return scheme, nil
	}
	if !params.IsValid() {
		return "", errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid auth parameters %q", params.String()))
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if scheme != "" {
		sb.WriteString(scheme)
		sb.WriteByte(' ')
	}
	var i int
	for name, val := range params.All() {
		if i > 0 {
			sb.WriteString(", ")
		}
		types.Param{Name: name, Value: val}.RenderTo(sb, nil) //nolint:errcheck
		i++
	}
	return sb.String(), nil
}

// renderRawHdr writes the "Name: value" header line.
func renderRawHdr(w io.Writer, name Name, raw string) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(string(name)) //nolint:errcheck
	cw.WriteString(": ")         //nolint:errcheck
	cw.WriteString(raw)          //nolint:errcheck
	return errtrace.Wrap2(cw.Result())
}

func equalSchemeValues(raw1, raw2 string) bool {
	scheme1, params1 := splitAuthScheme(raw1)
	scheme2, params2 := splitAuthScheme(raw2)
	return util.EqFold(scheme1, scheme2) && params1.ToParams().Equal(params2.ToParams())
}

func validSchemeValue(raw string) bool {
	scheme, params := splitAuthScheme(raw)
	if scheme == "" {
		return false
	}
	return strings.TrimSpace(string(params)) == "" || params.IsValid()
}
