package value

// Kind is the discriminant of a SerializableVal variant. It is mixed
// into every structural hash first and doubles as the envelope tag in
// the frozen form.
type Kind int

const (
	KindBool Kind = iota + 1
	KindS8
	KindU8
	KindS16
	KindU16
	KindS32
	KindU32
	KindS64
	KindU64
	KindFloat32
	KindFloat64
	KindChar
	KindString
	KindList
	KindRecord
	KindTuple
	KindVariant
	KindEnum
	KindOption
	KindResult
	KindFlags
	KindResource
)

var kindNames = map[Kind]string{
	KindBool:     "bool",
	KindS8:       "s8",
	KindU8:       "u8",
	KindS16:      "s16",
	KindU16:      "u16",
	KindS32:      "s32",
	KindU32:      "u32",
	KindS64:      "s64",
	KindU64:      "u64",
	KindFloat32:  "float32",
	KindFloat64:  "float64",
	KindChar:     "char",
	KindString:   "string",
	KindList:     "list",
	KindRecord:   "record",
	KindTuple:    "tuple",
	KindVariant:  "variant",
	KindEnum:     "enum",
	KindOption:   "option",
	KindResult:   "result",
	KindFlags:    "flags",
	KindResource: "resource",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

func kindForName(name string) (Kind, bool) {
	for k, s := range kindNames {
		if s == name {
			return k, true
		}
	}
	return 0, false
}
