package component

import (
	"unicode/utf8"

	"golang.org/x/xerrors"
)

var (
	ErrOutOfBounds = xerrors.New("component: string repr outside linear memory")
	ErrInvalidUTF8 = xerrors.New("component: lifted bytes are not valid utf-8")
)

// StringRepr is the lowered shape of the primitive string type, a
// pointer/length pair into the call's linear memory.
type StringRepr struct {
	Ptr uint32
	Len uint32
}

// LowerContext owns the linear memory for one outbound boundary call.
// Lowered values are appended to the arena and referenced by their repr.
type LowerContext struct {
	mem []byte
}

func NewLowerContext() *LowerContext {
	return &LowerContext{}
}

// LowerString copies the text into linear memory and returns its repr.
func (cx *LowerContext) LowerString(s string) (StringRepr, error) {
	ptr := uint32(len(cx.mem))
	cx.mem = append(cx.mem, s...)
	return StringRepr{Ptr: ptr, Len: uint32(len(s))}, nil
}

// Memory exposes the arena so the receiving side of a call can be given
// a LiftContext over the same bytes.
func (cx *LowerContext) Memory() []byte {
	return cx.mem
}

// LiftContext wraps the linear memory of one inbound boundary call.
type LiftContext struct {
	mem []byte
}

func NewLiftContext(mem []byte) *LiftContext {
	return &LiftContext{mem: mem}
}

// LiftString reads the repr's bytes back out of linear memory. The text
// must be in-bounds and valid UTF-8.
func (cx *LiftContext) LiftString(r StringRepr) (string, error) {
	end := uint64(r.Ptr) + uint64(r.Len)
	if end > uint64(len(cx.mem)) {
		return "", ErrOutOfBounds
	}
	b := cx.mem[r.Ptr:end]
	if !utf8.Valid(b) {
		return "", ErrInvalidUTF8
	}
	return string(b), nil
}
