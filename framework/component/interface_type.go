package component

// InterfaceType identifies the declared boundary type of a single call
// argument or result. The boundary type system is fixed and pre-agreed;
// values crossing the boundary must lower to one of these shapes.
type InterfaceType int

const (
	TypeBool InterfaceType = iota + 1
	TypeS8
	TypeU8
	TypeS16
	TypeU16
	TypeS32
	TypeU32
	TypeS64
	TypeU64
	TypeFloat32
	TypeFloat64
	TypeChar
	TypeString
	TypeList
	TypeRecord
	TypeTuple
	TypeVariant
	TypeEnum
	TypeOption
	TypeResult
	TypeFlags
	TypeOwn
	TypeBorrow
)

func (it InterfaceType) String() string {
	switch it {
	case TypeBool:
		return "bool"
	case TypeS8:
		return "s8"
	case TypeU8:
		return "u8"
	case TypeS16:
		return "s16"
	case TypeU16:
		return "u16"
	case TypeS32:
		return "s32"
	case TypeU32:
		return "u32"
	case TypeS64:
		return "s64"
	case TypeU64:
		return "u64"
	case TypeFloat32:
		return "float32"
	case TypeFloat64:
		return "float64"
	case TypeChar:
		return "char"
	case TypeString:
		return "string"
	case TypeList:
		return "list"
	case TypeRecord:
		return "record"
	case TypeTuple:
		return "tuple"
	case TypeVariant:
		return "variant"
	case TypeEnum:
		return "enum"
	case TypeOption:
		return "option"
	case TypeResult:
		return "result"
	case TypeFlags:
		return "flags"
	case TypeOwn:
		return "own"
	case TypeBorrow:
		return "borrow"
	default:
		return "unknown"
	}
}
