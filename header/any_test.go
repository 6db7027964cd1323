package header_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/ghettovoice/sipfield/header"
	"github.com/ghettovoice/sipfield/internal/errorutil"
	"github.com/ghettovoice/sipfield/internal/grammar"
)

func errorsIsGrammar(err error) bool {
	return errorutil.IsGrammarErr(err) && errors.Is(err, grammar.ErrMalformedInput)
}

func TestAny(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		hdr       *header.Any
		wantStr   string
		wantValid bool
	}{
		{"nil", nil, "", false},
		{"zero", &header.Any{}, ": ", false},
		{"empty value", &header.Any{Name: "x-custom"}, "X-Custom: ", true},
		{"full", &header.Any{Name: "x-custom", Value: "abc"}, "X-Custom: abc", true},
		{"line break", &header.Any{Name: "x-custom", Value: "a\r\nb"}, "X-Custom: a\r\nb", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.hdr.Render(nil); got != c.wantStr {
				t.Errorf("hdr.Render(nil) = %q, want %q", got, c.wantStr)
			}
			if got := c.hdr.IsValid(); got != c.wantValid {
				t.Errorf("hdr.IsValid() = %v, want %v", got, c.wantValid)
			}
		})
	}
}

func TestAny_Equal(t *testing.T) {
	t.Parallel()

	hdr := &header.Any{Name: "x-custom", Value: "abc"}
	if !hdr.Equal(header.Any{Name: "X-CUSTOM", Value: "abc"}) {
		t.Errorf("hdr.Equal() ignores name case, want equal")
	}
	if hdr.Equal(&header.Any{Name: "x-custom", Value: "ABC"}) {
		t.Errorf("hdr.Equal() compared values case-insensitively")
	}
	if !hdr.Clone().Equal(hdr) {
		t.Errorf("hdr.Clone() is not equal to the source")
	}
}

func TestAny_ParseParams(t *testing.T) {
	t.Parallel()

	hdr := &header.Any{Name: "X-Params", Value: `b=2;a="x y";lr`}
	params, err := hdr.ParseParams(";")
	if err != nil {
		t.Fatalf("hdr.ParseParams(\";\") error = %v, want nil", err)
	}
	if got, want := params.String(), `a="x y";b=2;lr`; got != want {
		t.Errorf("params.String() = %q, want %q", got, want)
	}
}

func TestAny_JSON(t *testing.T) {
	t.Parallel()

	hdr := &header.Any{Name: "X-Custom", Value: "abc"}
	data, err := json.Marshal(hdr)
	if err != nil {
		t.Fatalf("json.Marshal(hdr) error = %v, want nil", err)
	}
	var got header.Any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("json.Unmarshal(data, &got) error = %v, want nil", err)
	}
	if !got.Equal(hdr) {
		t.Errorf("round trip = %+v, want %+v", got, hdr)
	}
}
