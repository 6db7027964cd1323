// Package grammar provides low-level helpers for the SIP/SDP field text grammar:
// character classes, quoting and the [Scanner] cursor.
package grammar

//go:generate go tool errtrace -w .

import (
	"strings"

	"github.com/ghettovoice/sipfield/internal/errorutil"
)

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	ErrEmptyInput     Error = "empty input"
	ErrMalformedInput Error = "malformed input"
)

// NewMalformedInputErr creates a new error with [ErrMalformedInput] or wraps provided error.
func NewMalformedInputErr(args ...any) error {
	return errorutil.NewWrapperError(ErrMalformedInput, args...) //errtrace:skip
}

const (
	// WSP is the set of linear whitespace characters.
	WSP = " \t"
	// WSPCRLF is the set of whitespace and line break characters.
	WSPCRLF = " \t\r\n"
)

// IsWSP reports whether c is SP or HTAB.
func IsWSP(c byte) bool { return c == ' ' || c == '\t' }

// IsWSPCRLF reports whether c is SP, HTAB, CR or LF.
func IsWSPCRLF(c byte) bool { return IsWSP(c) || c == '\r' || c == '\n' }

// IsTokenChar reports whether c may appear in an RFC 3261 token.
func IsTokenChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	}
	return strings.IndexByte("-.!%*_+`'~", c) >= 0
}

// IsToken reports whether s is a non-empty RFC 3261 token.
func IsToken[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}
	for i := range len(s) {
		if !IsTokenChar(s[i]) {
			return false
		}
	}
	return true
}

// IsQuoted reports whether s is exactly one quoted-string.
func IsQuoted[T ~string | ~[]byte](s T) bool {
	if len(s) < 2 || s[0] != '"' {
		return false
	}
	sc := NewScanner(string(s))
	_, ok := sc.ReadUnquoted()
	return ok && !sc.HasMore()
}

// Quote renders s as a quoted-string, escaping backslashes and double quotes.
func Quote(s string) string {
	if strings.IndexAny(s, `"\`) < 0 {
		return `"` + s + `"`
	}

	var sb strings.Builder
	sb.Grow(len(s) + 4)
	sb.WriteByte('"')
	for i := range len(s) {
		if s[i] == '"' || s[i] == '\\' {
			sb.WriteByte('\\')
		}
		sb.WriteByte(s[i])
	}
	sb.WriteByte('"')
	return sb.String()
}

// Unquote returns the interior of the quoted-string s with quoted-pairs unescaped.
// If s is not a well-formed quoted-string it is returned as is.
func Unquote(s string) string {
	if !IsQuoted(s) {
		return s
	}
	qs, _ := NewScanner(s).ReadUnquoted()
	return qs
}
