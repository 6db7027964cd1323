package sdp

import (
	"fmt"
	"io"
	"net"
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipfield/internal/types"
)

// Host is an IP literal or a domain name used as an SDP address.
// IPv6 literals are rendered without square brackets as SDP requires.
type Host struct {
	addr types.Addr
}

// NewHost creates a host from an IP literal or a domain name.
func NewHost(host string) *Host { return &Host{addr: types.Host(host)} }

// ParseHost parses and validates an IP literal or a domain name.
func ParseHost(s string) (*Host, error) {
	addr, err := types.ParseAddr(s)
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	if _, ok := addr.Port(); ok {
		return &Host{addr: types.Host(addr.Host())}, nil
	}
	return &Host{addr: addr}, nil
}

// Name returns the host as it was provided.
func (h *Host) Name() string {
	if h == nil {
		return ""
	}
	return h.addr.Host()
}

// IP returns the parsed IP when the host is an IP literal, otherwise nil.
func (h *Host) IP() net.IP {
	if h == nil {
		return nil
	}
	return h.addr.IP()
}

// AddrType returns the SDP address type: [AddrTypeIP6] for IPv6 literals,
// [AddrTypeIP4] for anything else.
func (h *Host) AddrType() string {
	if ip := h.IP(); ip != nil && ip.To4() == nil {
		return AddrTypeIP6
	}
	return AddrTypeIP4
}

// IsMulticast reports whether the host is a multicast IP address.
func (h *Host) IsMulticast() bool {
	ip := h.IP()
	return ip != nil && ip.IsMulticast()
}

func (h *Host) Render(*RenderOptions) string {
	if h == nil {
		return ""
	}
	if ip := h.addr.IP(); ip != nil {
		return ip.String()
	}
	return h.addr.Host()
}

func (h *Host) RenderTo(w io.Writer, opts *RenderOptions) (int, error) {
	return errtrace.Wrap2(io.WriteString(w, h.Render(opts)))
}

func (h *Host) String() string { return h.Render(nil) }

func (h *Host) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprint(f, strconv.Quote(h.String()))
	default:
		fmt.Fprint(f, h.String())
	}
}

func (h *Host) Clone() Value {
	if h == nil {
		return (*Host)(nil)
	}
	return &Host{addr: h.addr.Clone()}
}

// Equal compares IP literals by value and domain names case-insensitively.
func (h *Host) Equal(val any) bool {
	var other *Host
	switch v := val.(type) {
	case Host:
		other = &v
	case *Host:
		other = v
	default:
		return false
	}

	if h == other {
		return true
	} else if h == nil || other == nil {
		return false
	}

	return h.addr.Equal(other.addr)
}

func (h *Host) IsValid() bool { return h != nil && h.addr.IsValid() }

func (h *Host) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

func (h *Host) UnmarshalText(text []byte) error {
	h2, err := ParseHost(string(text))
	if err != nil {
		return errtrace.Wrap(err)
	}
	*h = *h2
	return nil
}
