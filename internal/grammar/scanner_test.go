package grammar_test

import (
	"testing"

	"github.com/ghettovoice/sipfield/internal/grammar"
)

func TestScanner_SkipWSPCRLF(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		str     string
		pos     int
		wantPos int
	}{
		{"empty", "", 0, 0},
		{"no whitespace", "abc", 0, 0},
		{"mixed", " \t\r\n abc", 0, 5},
		{"from middle", "a  \r\nb", 1, 5},
		{"only whitespace", " \r\n", 0, 3},
		{"at end", "abc", 3, 3},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			sc := grammar.NewScannerAt(c.str, c.pos)
			if got := sc.SkipWSPCRLF().Pos(); got != c.wantPos {
				t.Errorf("sc.SkipWSPCRLF().Pos() = %d, want %d", got, c.wantPos)
			}
			if got := sc.SkipWSPCRLF().Pos(); got != c.wantPos {
				t.Errorf("second sc.SkipWSPCRLF().Pos() = %d, want %d", got, c.wantPos)
			}
		})
	}
}

func TestScanner_ReadWord(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		str      string
		stops    string
		want     string
		wantRest string
	}{
		{"empty", "", "=", "", ""},
		{"to stop", "realm=test", "= \t", "realm", "=test"},
		{"to space", "realm =test", "= \t", "realm", " =test"},
		{"no stop", "realm", "=", "realm", ""},
		{"at stop", "=test", "=", "", "=test"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			sc := grammar.NewScanner(c.str)
			if got := sc.ReadWord(c.stops); got != c.want {
				t.Errorf("sc.ReadWord(%q) = %q, want %q", c.stops, got, c.want)
			}
			if got := sc.Rest(); got != c.wantRest {
				t.Errorf("sc.Rest() = %q, want %q", got, c.wantRest)
			}
		})
	}
}

func TestScanner_SkipTo(t *testing.T) {
	t.Parallel()

	sc := grammar.NewScanner("a=b=c")
	if got := sc.SkipTo('=').Pos(); got != 1 {
		t.Errorf("sc.SkipTo('=').Pos() = %d, want 1", got)
	}
	if got := sc.SkipTo('=').Pos(); got != 1 {
		t.Errorf("repeated sc.SkipTo('=').Pos() = %d, want 1", got)
	}
	if got := sc.SkipChar().SkipTo('=').Pos(); got != 3 {
		t.Errorf("sc.SkipChar().SkipTo('=').Pos() = %d, want 3", got)
	}
	if got := sc.SkipTo('x').Pos(); got != 5 {
		t.Errorf("sc.SkipTo('x').Pos() = %d, want 5", got)
	}
	if got := sc.SkipChar().Pos(); got != 5 {
		t.Errorf("sc.SkipChar().Pos() at end = %d, want 5", got)
	}
}

func TestScanner_IndexOfCommaSeparator(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		str    string
		pos    int
		want   int
		wantOk bool
	}{
		{"empty", "", 0, -1, false},
		{"no comma", `realm="test"`, 0, -1, false},
		{"plain", `qop=auth,realm="x"`, 0, 8, true},
		{"quoted comma", `realm="a,b",qop=auth`, 0, 11, true},
		{"escaped quote", `realm="a\",b",qop=auth`, 0, 13, true},
		{"only quoted comma", `qop="auth,auth-int"`, 0, -1, false},
		{"from position", `a=1,b=2,c=3`, 4, 7, true},
		{"unbalanced quote", `realm="a,b`, 0, -1, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, ok := grammar.NewScannerAt(c.str, c.pos).IndexOfCommaSeparator()
			if got != c.want || ok != c.wantOk {
				t.Errorf("sc.IndexOfCommaSeparator() = (%d, %v), want (%d, %v)", got, ok, c.want, c.wantOk)
			}
		})
	}
}

func TestScanner_SkipCommaSeparator(t *testing.T) {
	t.Parallel()

	sc := grammar.NewScanner("a=\"1,2\" ,\r\n b=2, c")
	var rests []string
	for sc.HasMore() {
		sc.SkipCommaSeparator()
		rests = append(rests, sc.Rest())
	}
	want := []string{"b=2, c", "c", ""}
	if len(rests) != len(want) {
		t.Fatalf("visited %q, want %q", rests, want)
	}
	for i := range want {
		if rests[i] != want[i] {
			t.Errorf("rest[%d] = %q, want %q", i, rests[i], want[i])
		}
	}
}

func TestScanner_ReadUnquoted(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		str      string
		want     string
		wantOk   bool
		wantRest string
	}{
		{"empty", "", "", true, ""},
		{"token", "auth", "auth", true, ""},
		{"token with tail", " auth int", "auth", true, " int"},
		{"quoted", `"test"`, "test", true, ""},
		{"quoted with space", ` "a b" c`, "a b", true, " c"},
		{"empty quoted", `""`, "", true, ""},
		{"escaped", `"a\"b\\c"`, `a"b\c`, true, ""},
		{"unterminated", `"test`, `"test`, false, ""},
		{"unterminated with space", "\"te st \r\n", `"te st`, false, ""},
		{"trailing backslash", `"test\`, `"test\`, false, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			sc := grammar.NewScanner(c.str)
			got, ok := sc.ReadUnquoted()
			if got != c.want || ok != c.wantOk {
				t.Errorf("sc.ReadUnquoted() = (%q, %v), want (%q, %v)", got, ok, c.want, c.wantOk)
			}
			if got := sc.Rest(); got != c.wantRest {
				t.Errorf("sc.Rest() = %q, want %q", got, c.wantRest)
			}
		})
	}
}

func TestScanner_Next(t *testing.T) {
	t.Parallel()

	sc := grammar.NewScannerAt("realm=x,qop=auth", 6)
	if got := sc.Next(1); got != "x" {
		t.Errorf("sc.Next(1) = %q, want %q", got, "x")
	}
	if c, ok := sc.Peek(); !ok || c != ',' {
		t.Errorf("sc.Peek() = (%q, %v), want (',', true)", c, ok)
	}
	if got := sc.Next(100); got != ",qop=auth" {
		t.Errorf("sc.Next(100) = %q, want %q", got, ",qop=auth")
	}
	if _, ok := sc.Peek(); ok {
		t.Error("sc.Peek() at end ok = true, want false")
	}
	if got := grammar.NewScannerAt("abc", 10).Pos(); got != 3 {
		t.Errorf("grammar.NewScannerAt(\"abc\", 10).Pos() = %d, want 3", got)
	}
}
