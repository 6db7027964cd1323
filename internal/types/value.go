package types

import (
	"io"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipfield/internal/grammar"
	"github.com/ghettovoice/sipfield/internal/util"
)

// Token is a plain text value rendered as is.
// Tokens are compared case-insensitively.
type Token string

func (v Token) Render(*RenderOptions) string { return string(v) }

func (v Token) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, string(v)))
}

func (v Token) String() string { return string(v) }

func (v Token) Clone() Value { return v }

func (v Token) Equal(val any) bool {
	switch other := val.(type) {
	case Token:
		return util.EqFold(v, other)
	case *Token:
		return other != nil && util.EqFold(v, *other)
	default:
		return false
	}
}

// IsValid reports whether the value is a token or a host.
func (v Token) IsValid() bool {
	return grammar.IsToken(v) || (v != "" && Host(string(v)).IsValid())
}

// Quoted is a text value rendered as a quoted-string.
// Quoted values are compared case-sensitively.
type Quoted string

func (v Quoted) Render(*RenderOptions) string { return grammar.Quote(string(v)) }

func (v Quoted) RenderTo(w io.Writer, _ *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, grammar.Quote(string(v))))
}

func (v Quoted) String() string { return string(v) }

func (v Quoted) Clone() Value { return v }

func (v Quoted) Equal(val any) bool {
	switch other := val.(type) {
	case Quoted:
		return v == other
	case *Quoted:
		return other != nil && v == *other
	default:
		return false
	}
}

func (v Quoted) IsValid() bool { return !strings.ContainsAny(string(v), "\r\n") }
