package types

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"

	"braces.dev/errtrace"

	"github.com/ghettovoice/sipfield/internal/errorutil"
	"github.com/ghettovoice/sipfield/internal/grammar"
	"github.com/ghettovoice/sipfield/internal/ioutil"
	"github.com/ghettovoice/sipfield/internal/syncutil"
	"github.com/ghettovoice/sipfield/internal/util"
)

// DefaultSeparator is the separator used by [Params] unless another one is set.
const DefaultSeparator = ";"

type paramsMode uint8

const (
	plainParams paramsMode = iota
	sharedParams
	stripedParams
)

// Params is a case-insensitive set of named parameters.
//
// Names keep their original case for rendering, lookups ignore case.
// Setting a parameter that already exists replaces it.
// Entries are rendered joined with the separator, ordered by the lower-cased name.
//
// The zero value is an empty container that is not safe for concurrent use.
// Use [NewSharedParams] or [NewStripedParams] to get a container that may be used
// from multiple goroutines.
type Params struct {
	mode   paramsMode
	shards syncutil.ShardsNum
	store  syncutil.Map[string, Param]
	sep    atomic.Pointer[string]
}

// NewParams creates an empty container that is not safe for concurrent use.
func NewParams() *Params { return &Params{} }

// NewSharedParams creates an empty container guarded by a single read-write lock.
func NewSharedParams() *Params {
	return &Params{
		mode:  sharedParams,
		store: new(syncutil.RWMap[string, Param]),
	}
}

// NewStripedParams creates an empty container that spreads entries over shards,
// each guarded by its own lock. Zero shards means [syncutil.DefShardsNum].
func NewStripedParams(shards uint) *Params {
	m := syncutil.NewShardMap[string, Param](syncutil.ShardsNum(shards))
	return &Params{
		mode:   stripedParams,
		shards: m.ShardsNum(),
		store:  m,
	}
}

func (p *Params) clone() *Params {
	switch p.mode {
	case sharedParams:
		return NewSharedParams()
	case stripedParams:
		return NewStripedParams(uint(p.shards))
	default:
		return NewParams()
	}
}

func (p *Params) write() syncutil.Map[string, Param] {
	if p.store == nil {
		p.store = make(syncutil.PlainMap[string, Param])
	}
	return p.store
}

// IsConcurrent reports whether the container is safe for concurrent use.
func (p *Params) IsConcurrent() bool { return p != nil && p.mode != plainParams }

// Set adds or replaces the parameter with the given name.
// A nil value makes a flag parameter. Empty names are ignored.
func (p *Params) Set(name string, val Value) *Params {
	name = util.TrimSP(name)
	if name == "" {
		return p
	}
	p.write().Set(util.LCase(name), Param{Name: name, Value: val})
	return p
}

// Entry returns the parameter with the given name.
func (p *Params) Entry(name string) (Param, bool) {
	if p == nil || p.store == nil {
		return Param{}, false
	}
	return p.store.Get(util.LCase(util.TrimSP(name)))
}

// Get returns the value of the parameter with the given name.
// Flag parameters are reported as present with a nil value.
func (p *Params) Get(name string) (Value, bool) {
	e, ok := p.Entry(name)
	return e.Value, ok
}

// GetString returns the text of the parameter with the given name.
// Quoted values are returned unquoted, flag parameters as an empty string.
func (p *Params) GetString(name string) (string, bool) {
	v, ok := p.Get(name)
	if !ok || v == nil {
		return "", ok
	}
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), true
	}
	return v.Render(nil), true
}

// Has reports whether the parameter with the given name exists.
func (p *Params) Has(name string) bool {
	if p == nil || p.store == nil {
		return false
	}
	return p.store.Has(util.LCase(util.TrimSP(name)))
}

// Del removes the parameter with the given name and reports whether it existed.
func (p *Params) Del(name string) bool {
	if p == nil || p.store == nil {
		return false
	}
	_, ok := p.store.Del(util.LCase(util.TrimSP(name)))
	return ok
}

// Len returns the number of parameters.
func (p *Params) Len() int {
	if p == nil || p.store == nil {
		return 0
	}
	return p.store.Len()
}

// Clear removes all parameters.
func (p *Params) Clear() {
	if p == nil || p.store == nil {
		return
	}
	p.store.Clear()
}

func (p *Params) sorted() []Param {
	if p == nil || p.store == nil {
		return nil
	}
	type kv struct {
		key string
		Param
	}
	kvs := make([]kv, 0, p.store.Len())
	for k, e := range p.store.All() {
		kvs = append(kvs, kv{k, e})
	}
	slices.SortFunc(kvs, func(a, b kv) int { return cmp.Compare(a.key, b.key) })

	entries := make([]Param, len(kvs))
	for i := range kvs {
		entries[i] = kvs[i].Param
	}
	return entries
}

// Names returns parameter names in rendering order.
func (p *Params) Names() []string {
	entries := p.sorted()
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return names
}

// All returns an iterator over a snapshot of parameters in rendering order.
func (p *Params) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, e := range p.sorted() {
			if !yield(e.Name, e.Value) {
				return
			}
		}
	}
}

// SetSeparator sets the text placed between rendered parameters.
// The separator must be one of ";", "," or "&", optionally followed by spaces.
func (p *Params) SetSeparator(sep string) error {
	if p == nil {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("nil parameters"))
	}
	if !isParamsSep(sep) {
		return errtrace.Wrap(errorutil.NewInvalidArgumentError("invalid parameters separator %q", sep))
	}
	p.sep.Store(&sep)
	return nil
}

// Separator returns the text placed between rendered parameters.
func (p *Params) Separator() string {
	if p == nil {
		return DefaultSeparator
	}
	if sep := p.sep.Load(); sep != nil {
		return *sep
	}
	return DefaultSeparator
}

func isParamsSep(sep string) bool {
	if sep == "" || strings.IndexByte(";,&", sep[0]) < 0 {
		return false
	}
	return strings.Trim(sep[1:], " ") == ""
}

func (p *Params) Render(opts *RenderOptions) string {
	if p.Len() == 0 {
		return ""
	}
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	p.RenderTo(sb, opts) //nolint:errcheck
	return sb.String()
}

func (p *Params) RenderTo(w io.Writer, opts *RenderOptions) (num int, err error) {
	entries := p.sorted()
	if len(entries) == 0 {
		return 0, nil
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	sep := p.Separator()
	for i, e := range entries {
		if i > 0 {
			cw.WriteString(sep) //nolint:errcheck
		}
		cw.Call(func(w io.Writer) (int, error) {
			return errtrace.Wrap2(e.RenderTo(w, opts))
		})
	}
	return errtrace.Wrap2(cw.Result())
}

func (p *Params) String() string { return p.Render(nil) }

func (p *Params) Format(f fmt.State, verb rune) {
	switch verb {
	case 'q':
		fmt.Fprint(f, strconv.Quote(p.String()))
	default:
		fmt.Fprint(f, p.String())
	}
}

// Clone returns a deep copy with the same separator and concurrency mode.
func (p *Params) Clone() Value {
	if p == nil {
		return (*Params)(nil)
	}
	p2 := p.clone()
	if sep := p.sep.Load(); sep != nil {
		p2.sep.Store(sep)
	}
	if p.store != nil {
		for k, e := range p.store.All() {
			p2.write().Set(k, e.Clone())
		}
	}
	return p2
}

// Equal reports whether val is a *Params with the same set of parameters.
// The separator and the concurrency mode do not take part in the comparison.
func (p *Params) Equal(val any) bool {
	other, ok := val.(*Params)
	if !ok {
		return false
	}
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return p.Len() == 0 && other.Len() == 0
	}
	if p.Len() != other.Len() {
		return false
	}
	for _, e := range p.sorted() {
		oe, ok := other.Entry(e.Name)
		if !ok || !e.Equal(oe) {
			return false
		}
	}
	return true
}

// IsValid reports whether all parameter names are tokens and all values are valid.
func (p *Params) IsValid() bool {
	if p == nil {
		return false
	}
	for _, e := range p.sorted() {
		if !e.IsValid() {
			return false
		}
	}
	return true
}

// ParseParams parses a list of name[=value] pairs delimited by sep.
//
// Quoted values become [Quoted], other values become [Token], parameters without
// a value become flags. Malformed pairs are kept as is, the only error is an invalid separator.
// The resulting container is not safe for concurrent use and keeps sep as its separator.
func ParseParams(s, sep string) (*Params, error) {
	p := NewParams()
	if err := p.SetSeparator(sep); err != nil {
		return nil, errtrace.Wrap(err)
	}

	sc := grammar.NewScanner(s)
	for sc.SkipWSPCRLF().HasMore() {
		start := sc.Pos()
		end := sc.SkipToSeparator(sep[0]).Pos()
		name, val, hasVal := strings.Cut(s[start:end], "=")
		sc.SkipChar()

		name = strings.Trim(name, grammar.WSPCRLF)
		if name == "" {
			continue
		}
		if !hasVal {
			p.Set(name, nil)
			continue
		}
		p.Set(name, parseParamValue(val))
	}
	return p, nil
}

func parseParamValue(s string) Value {
	s = strings.Trim(s, grammar.WSPCRLF)
	if strings.HasPrefix(s, `"`) {
		sc := grammar.NewScanner(s)
		if v, ok := sc.ReadUnquoted(); ok && !sc.HasMore() {
			return Quoted(v)
		}
	}
	return Token(s)
}
