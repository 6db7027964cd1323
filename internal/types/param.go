package types

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipfield/internal/grammar"
	"github.com/ghettovoice/sipfield/internal/ioutil"
	"github.com/ghettovoice/sipfield/internal/util"
)

// Param is a single named entry of [Params].
// A nil Value makes the entry a flag parameter that is rendered as the bare name.
type Param struct {
	Name  string
	Value Value
}

// IsFlag reports whether the parameter has no value.
func (p Param) IsFlag() bool { return p.Value == nil }

func (p Param) Render(opts *RenderOptions) string {
	if p.Value == nil {
		return p.Name
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (p Param) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString(p.Name) //nolint:errcheck
	if p.Value != nil {
		cw.WriteString("=") //nolint:errcheck
		cw.Call(func(w io.Writer) (int, error) {
			return errtrace.Wrap2(p.Value.RenderTo(w, opts))
		})
	}
	return errtrace.Wrap2(cw.Result())
}

func (p Param) String() string { return p.Render(nil) }

// Clone returns a copy of the parameter with a deep copy of the value.
func (p Param) Clone() Param {
	if p.Value != nil {
		p.Value = p.Value.Clone()
	}
	return p
}

// Equal compares names case-insensitively and values with their own Equal method.
func (p Param) Equal(val any) bool {
	var other Param
	switch v := val.(type) {
	case Param:
		other = v
	case *Param:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if !util.EqFold(p.Name, other.Name) {
		return false
	}
	if p.Value == nil || other.Value == nil {
		return p.Value == nil && other.Value == nil
	}
	return p.Value.Equal(other.Value)
}

// IsValid reports whether the name is a token and the value, if any, is valid.
func (p Param) IsValid() bool {
	return grammar.IsToken(p.Name) && (p.Value == nil || IsValid(p.Value))
}
