package sdp_test

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/mock/gomock"

	"github.com/ghettovoice/sipfield/internal/grammar"
	"github.com/ghettovoice/sipfield/internal/testutil/valuemock"
	"github.com/ghettovoice/sipfield/internal/types"
	"github.com/ghettovoice/sipfield/sdp"
)

func TestConnectionAddress_Render(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ca   *sdp.ConnectionAddress
		want string
	}{
		{"nil", nil, ""},
		{"zero", &sdp.ConnectionAddress{}, ""},
		{"address only", &sdp.ConnectionAddress{Address: sdp.NewHost("224.2.1.1")}, "224.2.1.1"},
		{"ttl", &sdp.ConnectionAddress{Address: sdp.NewHost("224.2.1.1"), TTL: 127}, "224.2.1.1/127"},
		{"ttl and port", &sdp.ConnectionAddress{Address: sdp.NewHost("224.2.1.1"), TTL: 127, Port: 3}, "224.2.1.1/127/3"},
		{"port without ttl", &sdp.ConnectionAddress{Address: sdp.NewHost("224.2.1.1"), Port: 3}, "224.2.1.1"},
		{"no address", &sdp.ConnectionAddress{TTL: 16, Port: 2}, "/16/2"},
		{"IPv6", &sdp.ConnectionAddress{Address: sdp.NewHost("FF15::101"), TTL: 1}, "ff15::101/1"},
		{"domain", &sdp.ConnectionAddress{Address: sdp.NewHost("host.atlanta.example.com")}, "host.atlanta.example.com"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.ca.Render(nil); got != c.want {
				t.Errorf("ca.Render(nil) = %q, want %q", got, c.want)
			}

			var sb strings.Builder
			num, err := c.ca.RenderTo(&sb, nil)
			if err != nil {
				t.Fatalf("ca.RenderTo(sb, nil) error = %v, want nil", err)
			}
			if got := sb.String(); got != c.want || num != len(c.want) {
				t.Errorf("ca.RenderTo(sb, nil) = (%d, %q), want (%d, %q)", num, got, len(c.want), c.want)
			}
		})
	}
}

func TestParseConnectionAddress(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    *sdp.ConnectionAddress
		wantStr string
		wantErr error
	}{
		{"empty", "  ", nil, "", grammar.ErrEmptyInput},
		{"ipv4", "192.0.2.10", &sdp.ConnectionAddress{Address: sdp.NewHost("192.0.2.10")}, "192.0.2.10", nil},
		{
			"multicast",
			"224.2.1.1/127/3",
			&sdp.ConnectionAddress{Address: sdp.NewHost("224.2.1.1"), TTL: 127, Port: 3},
			"224.2.1.1/127/3",
			nil,
		},
		{
			"bad ttl",
			"224.2.1.1/abc/3",
			&sdp.ConnectionAddress{Address: sdp.NewHost("224.2.1.1"), Port: 3},
			"224.2.1.1",
			nil,
		},
		{
			"bad port",
			"224.2.1.1/16/-1",
			&sdp.ConnectionAddress{Address: sdp.NewHost("224.2.1.1"), TTL: 16},
			"224.2.1.1/16",
			nil,
		},
		{
			"not a host",
			"$bad$/16",
			&sdp.ConnectionAddress{Address: sdp.Token("$bad$"), TTL: 16},
			"$bad$/16",
			nil,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := sdp.ParseConnectionAddress(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Fatalf("sdp.ParseConnectionAddress(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if c.wantErr != nil {
				return
			}
			if !got.Equal(c.want) {
				t.Errorf("sdp.ParseConnectionAddress(%q) = %+v, want %+v", c.in, got, c.want)
			}
			if s := got.String(); s != c.wantStr {
				t.Errorf("ca.String() = %q, want %q", s, c.wantStr)
			}
		})
	}
}

func TestConnectionAddress_Clone(t *testing.T) {
	t.Parallel()

	ca := &sdp.ConnectionAddress{Address: sdp.NewHost("224.2.1.1"), TTL: 127, Port: 3}
	got, ok := ca.Clone().(*sdp.ConnectionAddress)
	if !ok || got == ca || !got.Equal(ca) {
		t.Fatalf("ca.Clone() = %+v, want an equal copy", got)
	}
	if got.Address.(*sdp.Host) == ca.Address.(*sdp.Host) {
		t.Errorf("ca.Clone() shares the address with the source")
	}

	got.TTL = 1
	if ca.TTL != 127 {
		t.Errorf("modifying clone changed the source TTL to %d", ca.TTL)
	}

	if got := (&sdp.ConnectionAddress{}).Clone(); !got.Equal(&sdp.ConnectionAddress{}) {
		t.Errorf("zero ca.Clone() = %v, want zero address", got)
	}
}

func TestConnectionAddress_Equal(t *testing.T) {
	t.Parallel()

	ca := &sdp.ConnectionAddress{Address: sdp.NewHost("Example.com"), TTL: 16}

	cases := []struct {
		name string
		val  any
		want bool
	}{
		{"nil", nil, false},
		{"nil address", (*sdp.ConnectionAddress)(nil), false},
		{"same", &sdp.ConnectionAddress{Address: sdp.NewHost("example.COM"), TTL: 16}, true},
		{"value", sdp.ConnectionAddress{Address: sdp.NewHost("example.com"), TTL: 16}, true},
		{"ttl", &sdp.ConnectionAddress{Address: sdp.NewHost("example.com"), TTL: 17}, false},
		{"port", &sdp.ConnectionAddress{Address: sdp.NewHost("example.com"), TTL: 16, Port: 1}, false},
		{"no address", &sdp.ConnectionAddress{TTL: 16}, false},
		{"token address", &sdp.ConnectionAddress{Address: sdp.Token("example.com"), TTL: 16}, false},
		{"host", sdp.NewHost("example.com"), false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := ca.Equal(c.val); got != c.want {
				t.Errorf("ca.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func TestConnectionAddress_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ca   *sdp.ConnectionAddress
		want bool
	}{
		{"nil", nil, false},
		{"zero", &sdp.ConnectionAddress{}, false},
		{"host", &sdp.ConnectionAddress{Address: sdp.NewHost("224.2.1.1"), TTL: 127}, true},
		{"bad host", &sdp.ConnectionAddress{Address: sdp.NewHost("bad host")}, false},
		{"token", &sdp.ConnectionAddress{Address: sdp.Token("example")}, true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.ca.IsValid(); got != c.want {
				t.Errorf("ca.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestConnectionAddress_Format(t *testing.T) {
	t.Parallel()

	ca := &sdp.ConnectionAddress{Address: sdp.NewHost("224.2.1.1"), TTL: 127}
	if got, want := fmt.Sprintf("%s|%v|%q", ca, ca, ca), `224.2.1.1/127|224.2.1.1/127|"224.2.1.1/127"`; got != want {
		t.Errorf("fmt.Sprintf() = %q, want %q", got, want)
	}
}

func TestConnectionAddress_CustomAddress(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	addr := valuemock.NewMockValue(ctrl)
	cloned := valuemock.NewMockValue(ctrl)

	addr.EXPECT().RenderTo(gomock.Any(), gomock.Any()).DoAndReturn(func(w io.Writer, _ *types.RenderOptions) (int, error) {
		return io.WriteString(w, "custom")
	})
	addr.EXPECT().Clone().Return(cloned)

	ca := &sdp.ConnectionAddress{Address: addr, TTL: 5, Port: 2}
	if got, want := ca.String(), "custom/5/2"; got != want {
		t.Errorf("ca.String() = %q, want %q", got, want)
	}
	if got := ca.Clone().(*sdp.ConnectionAddress); got.Address != cloned {
		t.Errorf("ca.Clone().Address = %v, want the cloned value", got.Address)
	}
}
