package sdp

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipfield/internal/grammar"
	"github.com/ghettovoice/sipfield/internal/ioutil"
	"github.com/ghettovoice/sipfield/internal/log"
	"github.com/ghettovoice/sipfield/internal/types"
	"github.com/ghettovoice/sipfield/internal/util"
)

// ConnectionAddress is the connection-address of the SDP connection data field:
//
//	<address>[/<ttl>[/<port>]]
//
// The zero value has no address and zero TTL and port.
type ConnectionAddress struct {
	// Address is usually a *Host, any other [Value] is rendered with its own RenderTo.
	Address Value
	// TTL is the multicast time to live, zero means absent.
	TTL uint
	// Port is rendered only together with a non-zero TTL.
	Port uint
}

// ParseConnectionAddress parses "address[/ttl[/port]]".
//
// Parsing is best-effort: an address that is neither an IP nor a domain name is kept
// as [Token], a malformed TTL or port is treated as absent. Only an empty input is an error.
func ParseConnectionAddress(s string) (*ConnectionAddress, error) {
	s = util.TrimSP(s)
	if s == "" {
		return nil, errtrace.Wrap(grammar.ErrEmptyInput)
	}

	parts := strings.SplitN(s, "/", 3)
	var ca ConnectionAddress
	if host, err := ParseHost(parts[0]); err == nil {
		ca.Address = host
	} else {
		ca.Address = Token(parts[0])
		log.Logger().Debug("connection address is not a host, keep it as token",
			"address", ca.Address,
			"error", err,
		)
	}
	if len(parts) > 1 {
		ca.TTL = parseConnAddrNum(parts[1], "ttl")
	}
	if len(parts) > 2 {
		ca.Port = parseConnAddrNum(parts[2], "port")
	}
	return &ca, nil
}

func parseConnAddrNum(s, name string) uint {
	n, err := strconv.ParseUint(util.TrimSP(s), 10, 32)
	if err != nil {
		log.Logger().Debug("malformed connection address number, treat as absent",
			"field", name,
			"value", log.StringValue(s),
			"error", err,
		)
		return 0
	}
	return uint(n)
}

func (ca *ConnectionAddress) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	if ca == nil {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if ca.Address != nil {
		cw.Call(func(w io.Writer) (int, error) {
			return errtrace.Wrap2(ca.Address.RenderTo(w, opts))
		})
	}
	if ca.TTL != 0 {
		cw.Fprint("/", ca.TTL)
		if ca.Port != 0 {
			cw.Fprint("/", ca.Port)
		}
	}
	return errtrace.Wrap2(cw.Result())
}

func (ca *ConnectionAddress) Render(opts *RenderOptions) string {
	if ca == nil {
		return ""
	}

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	ca.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (ca *ConnectionAddress) String() string { return ca.Render(nil) }

func (ca *ConnectionAddress) Format(f fmt.State, verb rune) {
	switch verb {
	case 's':
		fmt.Fprint(f, ca.String())
		return
	case 'q':
		fmt.Fprint(f, strconv.Quote(ca.String()))
		return
	default:
		if !f.Flag('+') && !f.Flag('#') {
			fmt.Fprint(f, ca.String())
			return
		}

		type hideMethods ConnectionAddress
		type ConnectionAddress hideMethods
		fmt.Fprintf(f, fmt.FormatString(f, verb), (*ConnectionAddress)(ca))
		return
	}
}

// Clone returns a copy with a deep copy of the address.
func (ca *ConnectionAddress) Clone() Value {
	if ca == nil {
		return (*ConnectionAddress)(nil)
	}
	ca2 := *ca
	ca2.Address = types.Clone[Value](ca.Address)
	return &ca2
}

func (ca *ConnectionAddress) Equal(val any) bool {
	var other *ConnectionAddress
	switch v := val.(type) {
	case ConnectionAddress:
		other = &v
	case *ConnectionAddress:
		other = v
	default:
		return false
	}

	if ca == other {
		return true
	} else if ca == nil || other == nil {
		return false
	}

	if ca.TTL != other.TTL || ca.Port != other.Port {
		return false
	}
	if ca.Address == nil || other.Address == nil {
		return ca.Address == nil && other.Address == nil
	}
	return ca.Address.Equal(other.Address)
}

// IsValid reports whether the address is set and valid.
func (ca *ConnectionAddress) IsValid() bool {
	return ca != nil && ca.Address != nil && types.IsValid(ca.Address)
}
