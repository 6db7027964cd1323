package grammar

import "strings"

// Scanner is a cursor over a raw header or field value.
//
// Scanner knows nothing about particular header semantics, it only moves the cursor
// and extracts spans of text. Lookup methods never fail: when nothing is found the
// cursor stops at the end of the input.
// Most cursor methods return the scanner itself, so calls can be chained:
//
//	sc.SkipTo('=').SkipChar().SkipWSP()
type Scanner struct {
	str string
	pos int
}

// NewScanner returns a scanner positioned at the start of s.
func NewScanner(s string) *Scanner { return &Scanner{str: s} }

// NewScannerAt returns a scanner over s positioned at pos.
// Out of range positions are clamped to the input bounds.
func NewScannerAt(s string, pos int) *Scanner {
	sc := &Scanner{str: s}
	sc.SetPos(pos)
	return sc
}

// Pos returns the cursor offset.
func (sc *Scanner) Pos() int { return sc.pos }

// SetPos moves the cursor to pos, clamped to the input bounds.
func (sc *Scanner) SetPos(pos int) *Scanner {
	sc.pos = min(max(pos, 0), len(sc.str))
	return sc
}

// Len returns the length of the whole input.
func (sc *Scanner) Len() int { return len(sc.str) }

// HasMore reports whether there are unread characters.
func (sc *Scanner) HasMore() bool { return sc.pos < len(sc.str) }

// Rest returns the unread part of the input without moving the cursor.
func (sc *Scanner) Rest() string { return sc.str[sc.pos:] }

// Peek returns the character under the cursor.
func (sc *Scanner) Peek() (byte, bool) {
	if !sc.HasMore() {
		return 0, false
	}
	return sc.str[sc.pos], true
}

// Next consumes and returns the next n characters, or less at the end of input.
func (sc *Scanner) Next(n int) string {
	end := min(sc.pos+max(n, 0), len(sc.str))
	s := sc.str[sc.pos:end]
	sc.pos = end
	return s
}

// SkipChar moves the cursor one character forward.
func (sc *Scanner) SkipChar() *Scanner {
	if sc.HasMore() {
		sc.pos++
	}
	return sc
}

// SkipWSP skips spaces and tabs.
func (sc *Scanner) SkipWSP() *Scanner {
	for sc.pos < len(sc.str) && IsWSP(sc.str[sc.pos]) {
		sc.pos++
	}
	return sc
}

// SkipWSPCRLF skips spaces, tabs, CR and LF.
func (sc *Scanner) SkipWSPCRLF() *Scanner {
	for sc.pos < len(sc.str) && IsWSPCRLF(sc.str[sc.pos]) {
		sc.pos++
	}
	return sc
}

// SkipTo moves the cursor onto the next c, or to the end of input if there is no c.
func (sc *Scanner) SkipTo(c byte) *Scanner {
	if i := strings.IndexByte(sc.str[sc.pos:], c); i >= 0 {
		sc.pos += i
	} else {
		sc.pos = len(sc.str)
	}
	return sc
}

// ReadWord consumes characters until one of stops or the end of input.
// The stop character itself is not consumed. The result may be empty.
func (sc *Scanner) ReadWord(stops string) string {
	start := sc.pos
	if i := strings.IndexAny(sc.str[sc.pos:], stops); i >= 0 {
		sc.pos += i
	} else {
		sc.pos = len(sc.str)
	}
	return sc.str[start:sc.pos]
}

// IndexOfSeparator returns the offset of the next sep that is not inside a quoted-string.
// Backslash-escaped quotes inside a quoted-string do not terminate it.
func (sc *Scanner) IndexOfSeparator(sep byte) (int, bool) {
	var quoted bool
	for i := sc.pos; i < len(sc.str); i++ {
		switch c := sc.str[i]; {
		case quoted && c == '\\':
			i++
		case c == '"':
			quoted = !quoted
		case !quoted && c == sep:
			return i, true
		}
	}
	return -1, false
}

// IndexOfCommaSeparator returns the offset of the next comma that separates header parameters.
func (sc *Scanner) IndexOfCommaSeparator() (int, bool) { return sc.IndexOfSeparator(',') }

// SkipToSeparator moves the cursor onto the next top-level sep, or to the end of input.
func (sc *Scanner) SkipToSeparator(sep byte) *Scanner {
	if i, ok := sc.IndexOfSeparator(sep); ok {
		sc.pos = i
	} else {
		sc.pos = len(sc.str)
	}
	return sc
}

// SkipToCommaSeparator moves the cursor onto the next top-level comma, or to the end of input.
func (sc *Scanner) SkipToCommaSeparator() *Scanner { return sc.SkipToSeparator(',') }

// SkipCommaSeparator moves the cursor past the next top-level comma and the whitespace after it.
// It is used to step from one header parameter to the next one.
func (sc *Scanner) SkipCommaSeparator() *Scanner {
	return sc.SkipToCommaSeparator().SkipChar().SkipWSPCRLF()
}

// ReadUnquoted reads the next token, skipping leading whitespace.
//
// If the token is a quoted-string, its interior is returned with quoted-pairs unescaped.
// Otherwise, the characters up to the next whitespace are returned unchanged.
// A quoted-string without the closing quote is not an error: the raw rest of the input
// is returned as is, right-trimmed, and ok is false.
func (sc *Scanner) ReadUnquoted() (s string, ok bool) {
	sc.SkipWSPCRLF()
	if c, more := sc.Peek(); !more || c != '"' {
		return sc.ReadWord(WSPCRLF), true
	}

	var (
		sb  strings.Builder
		esc bool
	)
	for i := sc.pos + 1; i < len(sc.str); i++ {
		c := sc.str[i]
		switch {
		case c == '\\' && i+1 < len(sc.str):
			if !esc {
				sb.WriteString(sc.str[sc.pos+1 : i])
				esc = true
			}
			i++
			sb.WriteByte(sc.str[i])
		case c == '"':
			if esc {
				s = sb.String()
			} else {
				s = sc.str[sc.pos+1 : i]
			}
			sc.pos = i + 1
			return s, true
		case esc:
			sb.WriteByte(c)
		}
	}

	s = strings.TrimRight(sc.str[sc.pos:], WSPCRLF)
	sc.pos = len(sc.str)
	return s, false
}
