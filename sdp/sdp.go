// Package sdp provides structured SDP fields of RFC 4566 that carry network addresses:
// the connection address, the connection data field "c=" and the URI field "u=".
//
// Field values implement [Value], so they can be rendered, cloned and compared
// the same way as SIP header parameters and may be stored in [Params].
//
//	addr, _ := sdp.ParseConnectionAddress("224.2.1.1/127/3")
//	c := sdp.NewConnection(addr)
//	fmt.Println(c) // c=IN IP4 224.2.1.1/127/3
package sdp

//go:generate go tool errtrace -w .

import "github.com/ghettovoice/sipfield/internal/types"

// RenderOptions contains options for rendering fields.
type RenderOptions = types.RenderOptions

// Value is a structured field value.
type Value = types.Value

// Token is a plain text value rendered as is.
type Token = types.Token

// Params is a case-insensitive set of named parameters.
type Params = types.Params

// Network and address types of the connection data field.
const (
	NetTypeIN   = "IN"
	AddrTypeIP4 = "IP4"
	AddrTypeIP6 = "IP6"
)
