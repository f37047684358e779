package component

// Val is the dynamic value model of the boundary type system. It is a
// closed set of cases; the marker method keeps the set sealed to this
// package so consumers can type-switch exhaustively.
//
// Nested payloads (Variant, Option, Result) use a nil Val for "absent".
type Val interface {
	isVal()
}

type Bool bool

type S8 int8

type U8 uint8

type S16 int16

type U16 uint16

type S32 int32

type U32 uint32

type S64 int64

type U64 uint64

type Float32 float32

type Float64 float64

type Char rune

type String string

type List []Val

// Field is one named slot of a Record. Order is significant and names
// are not required to be unique at this layer.
type Field struct {
	Name string
	Val  Val
}

type Record []Field

type Tuple []Val

// Variant is a named case with an optional payload.
type Variant struct {
	Name    string
	Payload Val
}

type Enum string

// Option holds an optional payload; a nil Val means none.
type Option struct {
	Val Val
}

// Result holds either an ok or an err slot, each itself optional.
type Result struct {
	IsErr bool
	Val   Val
}

type Flags []string

// Resource is an opaque handle into the host's resource table. It cannot
// be serialized or structurally hashed.
type Resource struct {
	Rep uint32
}

func (Bool) isVal()     {}
func (S8) isVal()       {}
func (U8) isVal()       {}
func (S16) isVal()      {}
func (U16) isVal()      {}
func (S32) isVal()      {}
func (U32) isVal()      {}
func (S64) isVal()      {}
func (U64) isVal()      {}
func (Float32) isVal()  {}
func (Float64) isVal()  {}
func (Char) isVal()     {}
func (String) isVal()   {}
func (List) isVal()     {}
func (Record) isVal()   {}
func (Tuple) isVal()    {}
func (Variant) isVal()  {}
func (Enum) isVal()     {}
func (Option) isVal()   {}
func (Result) isVal()   {}
func (Flags) isVal()    {}
func (Resource) isVal() {}
