package sdp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipfield/internal/grammar"
	"github.com/ghettovoice/sipfield/internal/ioutil"
	"github.com/ghettovoice/sipfield/internal/util"
)

// Connection is the SDP connection data field:
//
//	c=<nettype> <addrtype> <connection-address>
type Connection struct {
	NetType  string
	AddrType string
	Address  *ConnectionAddress
}

// NewConnection creates an "IN" connection field, the address type is taken
// from the address host.
func NewConnection(addr *ConnectionAddress) *Connection {
	c := &Connection{
		NetType:  NetTypeIN,
		AddrType: AddrTypeIP4,
		Address:  addr,
	}
	if addr != nil {
		if h, ok := addr.Address.(*Host); ok {
			c.AddrType = h.AddrType()
		}
	}
	return c
}

// ParseConnection parses the connection data field with or without the "c=" prefix.
func ParseConnection(s string) (*Connection, error) {
	s = strings.Trim(s, grammar.WSPCRLF)
	s = strings.TrimPrefix(s, "c=")
	if s == "" {
		return nil, errtrace.Wrap(grammar.ErrEmptyInput)
	}

	fields := strings.Fields(s)
	if len(fields) != 3 {
		return nil, errtrace.Wrap(grammar.NewMalformedInputErr("expected 3 fields in connection data, got %d", len(fields)))
	}
	addr, err := ParseConnectionAddress(fields[2])
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return &Connection{
		NetType:  fields[0],
		AddrType: fields[1],
		Address:  addr,
	}, nil
}

func (c *Connection) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if c == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.Fprint("c=", c.NetType, " ", c.AddrType, " ")
	cw.Call(func(w io.Writer) (int, error) {
		return errtrace.Wrap2(c.Address.RenderTo(w, opts))
	})
	return errtrace.Wrap2(cw.Result())
}

func (c *Connection) Render(opts *RenderOptions) string {
	if c == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	c.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (c *Connection) String() string { return c.Render(nil) }

func (c *Connection) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprint(f, strconv.Quote(c.String()))
	default:
		fmt.Fprint(f, c.String())
	}
}

func (c *Connection) Clone() Value {
	if c == nil {
		return (*Connection)(nil)
	}
	c2 := *c
	if c.Address != nil {
		c2.Address, _ = c.Address.Clone().(*ConnectionAddress)
	}
	return &c2
}

func (c *Connection) Equal(val any) bool {
	var other *Connection
	switch v := val.(type) {
	case Connection:
		other = &v
	case *Connection:
		other = v
	default:
		return false
	}

	if c == other {
		return true
	} else if c == nil || other == nil {
		return false
	}

	return util.EqFold(c.NetType, other.NetType) &&
		util.EqFold(c.AddrType, other.AddrType) &&
		c.Address.Equal(other.Address)
}

// IsValid reports whether the field has token network and address types, a valid address,
// and the address type matches the host.
func (c *Connection) IsValid() bool {
	if c == nil || !grammar.IsToken(c.NetType) || !grammar.IsToken(c.AddrType) || !c.Address.IsValid() {
		return false
	}
	if h, ok := c.Address.Address.(*Host); ok && h.IP() != nil {
		return util.EqFold(h.AddrType(), c.AddrType)
	}
	return true
}
