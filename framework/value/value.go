package value

// SerializableVal is a tagged-variant mirror of the boundary's dynamic
// value model, one variant per shape the model can take. It is sealed
// to this package; consumers get values through FromVal or Thaw and
// inspect them by type switch.
//
// Values are immutable by convention: conversions copy, hashing reads.
type SerializableVal interface {
	Kind() Kind
	isSerializable()
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

type List []SerializableVal

// Field is one named slot of a Record. Order is preserved; uniqueness
// of names is a convention of the producer, not enforced here.
type Field struct {
	Name string
	Val  SerializableVal
}

type Record []Field

type Tuple []SerializableVal

// Variant is a case name with an optional payload (nil for none).
type Variant struct {
	Name    string
	Payload SerializableVal
}

type Enum string

// Option mirrors an optional value; a nil Val means none.
type Option struct {
	Val SerializableVal
}

// Result mirrors a fallible value: one of the ok/err slots is
// populated, and the populated slot's payload is itself optional.
type Result struct {
	IsErr bool
	Val   SerializableVal
}

type Flags []string

// Resource mirrors an opaque handle. It exists so the variant set is
// complete, but conversion and hashing both refuse it with
// ErrUnsupportedResource.
type Resource struct {
	Rep uint32
}

func (Bool) Kind() Kind     { return KindBool }
func (S8) Kind() Kind       { return KindS8 }
func (U8) Kind() Kind       { return KindU8 }
func (S16) Kind() Kind      { return KindS16 }
func (U16) Kind() Kind      { return KindU16 }
func (S32) Kind() Kind      { return KindS32 }
func (U32) Kind() Kind      { return KindU32 }
func (S64) Kind() Kind      { return KindS64 }
func (U64) Kind() Kind      { return KindU64 }
func (Float32) Kind() Kind  { return KindFloat32 }
func (Float64) Kind() Kind  { return KindFloat64 }
func (Char) Kind() Kind     { return KindChar }
func (String) Kind() Kind   { return KindString }
func (List) Kind() Kind     { return KindList }
func (Record) Kind() Kind   { return KindRecord }
func (Tuple) Kind() Kind    { return KindTuple }
func (Variant) Kind() Kind  { return KindVariant }
func (Enum) Kind() Kind     { return KindEnum }
func (Option) Kind() Kind   { return KindOption }
func (Result) Kind() Kind   { return KindResult }
func (Flags) Kind() Kind    { return KindFlags }
func (Resource) Kind() Kind { return KindResource }

func (Bool) isSerializable()     {}
func (S8) isSerializable()       {}
func (U8) isSerializable()       {}
func (S16) isSerializable()      {}
func (U16) isSerializable()      {}
func (S32) isSerializable()      {}
func (U32) isSerializable()      {}
func (S64) isSerializable()      {}
func (U64) isSerializable()      {}
func (Float32) isSerializable()  {}
func (Float64) isSerializable()  {}
func (Char) isSerializable()     {}
func (String) isSerializable()   {}
func (List) isSerializable()     {}
func (Record) isSerializable()   {}
func (Tuple) isSerializable()    {}
func (Variant) isSerializable()  {}
func (Enum) isSerializable()     {}
func (Option) isSerializable()   {}
func (Result) isSerializable()   {}
func (Flags) isSerializable()    {}
func (Resource) isSerializable() {}
