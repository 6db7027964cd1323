// Package header provides facilities for working with SIP message headers,
// focused on the authentication header family of RFC 3261 and RFC 2617.
//
// # Overview
//
// The package provides types for the authentication headers:
//
//   - [WWWAuthenticate] and [ProxyAuthenticate] carry challenges of servers and proxies
//   - [Authorization] and [ProxyAuthorization] carry credentials of clients
//   - [AuthenticationInfo] carries the mutual authentication info, parameters only
//
// Any other header is represented by the generic [Any] type unless a custom parser
// is registered for it.
//
// All header types implement the [Header] interface, which combines [types.Renderer],
// [types.Cloneable[Header]], [types.ValidFlag], and [types.Equalable].
// Authentication headers additionally implement [AuthHeader].
//
// # Authentication parameters
//
// Authentication headers keep the header value as is in the Raw field.
// Parameters are not materialized on construction, every query scans the value:
//
//	hdr := &header.WWWAuthenticate{Raw: `Digest realm="atlanta.com", nonce="ea9c8e88", qop=auth`}
//	scheme, _ := hdr.AuthScheme()  // "Digest"
//	realm, _ := hdr.Param("realm") // "atlanta.com"
//	names := hdr.ParamNames()      // ["realm", "nonce", "qop"]
//
// Parameter names are matched case-insensitively. Quoted values are returned unquoted.
// The scan never fails: a value with an unterminated quoted-string is returned with
// the rest of the text as is, since some peers send such headers.
//
// Headers can also be built from a structured parameter list with constructors like
// [NewWWWAuthenticate]. Use [AuthParams.ToParams] to get a structured copy of the parameters.
//
// # Parsing
//
// Use [Parse] to parse a header line from string or []byte input:
//
//	hdr, err := header.Parse(`Authentication-Info: nextnonce="47364c23432d2e131a5fb210812c"`)
//
// Header names are canonicalized using [textproto.CanonicalMIMEHeaderKey] combined
// with an internal mapping for SIP-specific capitalization rules and compact names.
// Use [CanonicName] to normalize any header name.
//
// # Custom Parsers
//
// Applications can register custom parsers for extension headers via [RegisterParser]
// and remove them with [UnregisterParser]:
//
//	func init() {
//		header.RegisterParser("x-custom", func(name string, value []byte) header.Header {
//			return &MyCustomHeader{Value: string(value)}
//		})
//	}
//
// If a custom parser returns nil, the header is parsed as [Any].
//
// # JSON Serialization
//
// Headers can be serialized to and from JSON using [ToJSON] and [FromJSON].
// The JSON format is:
//
//	{"name":"<CanonicName>","value":"<RenderValue>"}
//
// # References
//
//   - RFC 3261 - SIP: Session Initiation Protocol
//   - RFC 2617 - HTTP Authentication: Basic and Digest Access Authentication
package header
