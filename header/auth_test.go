package header_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ghettovoice/sipfield/header"
)

func TestAuthParams_Get(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		params header.AuthParams
		param  string
		want   string
		wantOk bool
	}{
		{"quoted", `realm="test",nonce="abc123",qop=auth`, "realm", "test", true},
		{"second", `realm="test",nonce="abc123",qop=auth`, "nonce", "abc123", true},
		{"token", `realm="test",nonce="abc123",qop=auth`, "qop", "auth", true},
		{"missing", `realm="test",nonce="abc123",qop=auth`, "missing", "", false},
		{"empty", "", "realm", "", false},
		{"name case", `realm="test"`, "REALM", "test", true},
		{"quoted comma", `realm="a,b", qop="auth,auth-int"`, "qop", "auth,auth-int", true},
		{"quoted pair", `realm="say \"hi\", ok"`, "realm", `say "hi", ok`, true},
		{"spaces around equal", "realm = \"x\" ,\r\n qop = auth", "qop", "auth", true},
		{"flag", `stale, realm="x"`, "stale", "", true},
		{"no prefix match", `nonce-count=1, nonce="n"`, "nonce", "n", true},
		{"unterminated quote", `realm="test`, "realm", `"test`, true},
		{"unterminated before comma", `realm="a, nonce=b`, "realm", `"a, nonce=b`, true},
		{"missing equal does not leak", `realm, nonce="n"`, "realm", "", true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, ok := c.params.Get(c.param)
			if got != c.want || ok != c.wantOk {
				t.Errorf("params.Get(%q) = (%q, %v), want (%q, %v)", c.param, got, ok, c.want, c.wantOk)
			}
			if has := c.params.Has(c.param); has != c.wantOk {
				t.Errorf("params.Has(%q) = %v, want %v", c.param, has, c.wantOk)
			}
		})
	}
}

func TestAuthParams_Names(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		params header.AuthParams
		want   []string
	}{
		{"empty", "", nil},
		{"wire order", `realm="test",nonce="abc123",qop=auth`, []string{"realm", "nonce", "qop"}},
		{"case kept", `Realm="x", QOP=auth`, []string{"Realm", "QOP"}},
		{"empty items", ` , ,realm="x",, qop=auth ,`, []string{"realm", "qop"}},
		{"quoted comma", `realm="a,b=c", qop=auth`, []string{"realm", "qop"}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if diff := cmp.Diff(c.params.Names(), c.want); diff != "" {
				t.Errorf("params.Names() = %v, want %v\ndiff (-got +want):\n%v", c.params.Names(), c.want, diff)
			}
			if got, want := c.params.Len(), len(c.want); got != want {
				t.Errorf("params.Len() = %d, want %d", got, want)
			}
		})
	}
}

func TestAuthParams_All(t *testing.T) {
	t.Parallel()

	params := header.AuthParams(`username="bob", uri="sip:bob@biloxi.com", nc=00000001`)

	var got [][2]string
	for k, v := range params.All() {
		got = append(got, [2]string{k, v})
		if k == "uri" {
			break
		}
	}

	want := [][2]string{{"username", "bob"}, {"uri", "sip:bob@biloxi.com"}}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("params.All() = %v, want %v\ndiff (-got +want):\n%v", got, want, diff)
	}
}

func TestAuthParams_ToParams(t *testing.T) {
	t.Parallel()

	got := header.AuthParams(`realm="atlanta.com", qop=auth, stale`).ToParams()
	want := header.NewParams().
		Set("realm", header.Quoted("atlanta.com")).
		Set("qop", header.Token("auth")).
		Set("stale", nil)
	if !got.Equal(want) {
		t.Errorf("params.ToParams() = %v, want %v", got, want)
	}
	if got, want := got.String(), `qop=auth, realm="atlanta.com", stale`; got != want {
		t.Errorf("params.ToParams().String() = %q, want %q", got, want)
	}
}

func TestAuthParams_IsValid(t *testing.T) {
	t.Parallel()

	cases := []struct {
		params header.AuthParams
		want   bool
	}{
		{"", false},
		{`realm="x"`, true},
		{`realm="x", stale`, true},
		{`realm="x`, false},
		{`re alm="x"`, false},
		{`"x"="y"`, false},
	}

	for _, c := range cases {
		t.Run(string(c.params), func(t *testing.T) {
			t.Parallel()

			if got := c.params.IsValid(); got != c.want {
				t.Errorf("params.IsValid() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestAuthHeader_Params(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name       string
		hdr        header.AuthHeader
		wantScheme string
		wantOk     bool
		wantNames  []string
	}{
		{
			"www-authenticate",
			&header.WWWAuthenticate{Raw: `Digest realm="test"`},
			"Digest", true,
			[]string{"realm"},
		},
		{
			"proxy-authenticate",
			&header.ProxyAuthenticate{Raw: ` Digest  realm="test", nonce="n"`},
			"Digest", true,
			[]string{"realm", "nonce"},
		},
		{
			"authorization",
			&header.Authorization{Raw: `Digest username="bob", realm="test", response="42"`},
			"Digest", true,
			[]string{"username", "realm", "response"},
		},
		{
			"proxy-authorization",
			&header.ProxyAuthorization{Raw: `Bearer token="abc"`},
			"Bearer", true,
			[]string{"token"},
		},
		{
			"authentication-info",
			&header.AuthenticationInfo{Raw: `nextnonce="xyz"`},
			"", false,
			[]string{"nextnonce"},
		},
		{
			"no scheme",
			&header.WWWAuthenticate{Raw: `realm="test",qop=auth`},
			"", false,
			[]string{"realm", "qop"},
		},
		{
			"scheme only",
			&header.Authorization{Raw: "Basic"},
			"Basic", true,
			nil,
		},
		{"empty", &header.WWWAuthenticate{}, "", false, nil},
		{"nil", (*header.WWWAuthenticate)(nil), "", false, nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			scheme, ok := c.hdr.AuthScheme()
			if scheme != c.wantScheme || ok != c.wantOk {
				t.Errorf("hdr.AuthScheme() = (%q, %v), want (%q, %v)", scheme, ok, c.wantScheme, c.wantOk)
			}
			if diff := cmp.Diff(c.hdr.ParamNames(), c.wantNames); diff != "" {
				t.Errorf("hdr.ParamNames() = %v, want %v\ndiff (-got +want):\n%v", c.hdr.ParamNames(), c.wantNames, diff)
			}
			for _, name := range c.wantNames {
				if !c.hdr.HasParam(name) {
					t.Errorf("hdr.HasParam(%q) = false, want true", name)
				}
			}
		})
	}
}

func TestAuthHeader_ResponseParam(t *testing.T) {
	t.Parallel()

	hdr := &header.AuthenticationInfo{Raw: `nextnonce="xyz"`}
	if got, ok := hdr.Param("nextnonce"); !ok || got != "xyz" {
		t.Errorf("hdr.Param(\"nextnonce\") = (%q, %v), want (\"xyz\", true)", got, ok)
	}

	// Raw is reassignable, parameters are always scanned from the current value.
	hdr.Raw = `qop=auth`
	if hdr.HasParam("nextnonce") {
		t.Errorf("hdr.HasParam(\"nextnonce\") = true after Raw reassignment, want false")
	}
}
