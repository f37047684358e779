package value

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// envelope is the frozen form of one value: a kind tag and a
// kind-shaped payload. Nesting recurses through envelopes so arbitrary
// value trees freeze to a single JSON document, ready to be carried as
// an event payload.
type envelope struct {
	T string          `json:"t"`
	P json.RawMessage `json:"p,omitempty"`
}

type fieldEnvelope struct {
	N string          `json:"n"`
	V json.RawMessage `json:"v"`
}

type variantEnvelope struct {
	N string          `json:"n"`
	V json.RawMessage `json:"v,omitempty"`
}

type optionEnvelope struct {
	V json.RawMessage `json:"v,omitempty"`
}

type resultEnvelope struct {
	S string          `json:"s"`
	V json.RawMessage `json:"v,omitempty"`
}

// Freeze encodes a value for transport or embedding in an event
// payload. Resource handles can't be frozen; see ErrUnsupportedResource.
func Freeze(v SerializableVal) ([]byte, error) {
	p, err := freezePayload(v)
	if err != nil {
		return nil, err
	}
	return json.Marshal(envelope{T: v.Kind().String(), P: p})
}

func freezePayload(v SerializableVal) (json.RawMessage, error) {
	switch v := v.(type) {
	case Bool:
		return json.Marshal(bool(v))
	case S8:
		return json.Marshal(int8(v))
	case U8:
		return json.Marshal(uint8(v))
	case S16:
		return json.Marshal(int16(v))
	case U16:
		return json.Marshal(uint16(v))
	case S32:
		return json.Marshal(int32(v))
	case U32:
		return json.Marshal(uint32(v))
	case S64:
		return json.Marshal(int64(v))
	case U64:
		return json.Marshal(uint64(v))
	case Float32:
		return json.Marshal(float32(v))
	case Float64:
		return json.Marshal(float64(v))
	case Char:
		return json.Marshal(string(rune(v)))
	case String:
		return json.Marshal(string(v))
	case List:
		return freezeSeq(v)
	case Record:
		out := make([]fieldEnvelope, 0, len(v))
		for _, f := range v {
			fb, err := Freeze(f.Val)
			if err != nil {
				return nil, err
			}
			out = append(out, fieldEnvelope{N: f.Name, V: fb})
		}
		return json.Marshal(out)
	case Tuple:
		return freezeSeq(v)
	case Variant:
		ve := variantEnvelope{N: v.Name}
		if v.Payload != nil {
			pb, err := Freeze(v.Payload)
			if err != nil {
				return nil, err
			}
			ve.V = pb
		}
		return json.Marshal(ve)
	case Enum:
		return json.Marshal(string(v))
	case Option:
		var oe optionEnvelope
		if v.Val != nil {
			vb, err := Freeze(v.Val)
			if err != nil {
				return nil, err
			}
			oe.V = vb
		}
		return json.Marshal(oe)
	case Result:
		re := resultEnvelope{S: "ok"}
		if v.IsErr {
			re.S = "err"
		}
		if v.Val != nil {
			vb, err := Freeze(v.Val)
			if err != nil {
				return nil, err
			}
			re.V = vb
		}
		return json.Marshal(re)
	case Flags:
		return json.Marshal([]string(v))
	case Resource:
		return nil, ErrUnsupportedResource
	default:
		return nil, ErrUnknownKind
	}
}

func freezeSeq(vs []SerializableVal) (json.RawMessage, error) {
	out := make([]json.RawMessage, 0, len(vs))
	for _, v := range vs {
		b, err := Freeze(v)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return json.Marshal(out)
}

// Thaw decodes a frozen value. Malformed documents fail without a
// partial result.
func Thaw(b []byte) (SerializableVal, error) {
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		return nil, errors.Wrap(err, "value: can't parse frozen envelope")
	}
	kind, ok := kindForName(env.T)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownKind, "value: envelope tag %q", env.T)
	}
	return thawPayload(kind, env.P)
}

func thawPayload(kind Kind, p json.RawMessage) (SerializableVal, error) {
	switch kind {
	case KindBool:
		var v bool
		if err := thawScalar(p, &v); err != nil {
			return nil, err
		}
		return Bool(v), nil
	case KindS8:
		var v int8
		if err := thawScalar(p, &v); err != nil {
			return nil, err
		}
		return S8(v), nil
	case KindU8:
		var v uint8
		if err := thawScalar(p, &v); err != nil {
			return nil, err
		}
		return U8(v), nil
	case KindS16:
		var v int16
		if err := thawScalar(p, &v); err != nil {
			return nil, err
		}
		return S16(v), nil
	case KindU16:
		var v uint16
		if err := thawScalar(p, &v); err != nil {
			return nil, err
		}
		return U16(v), nil
	case KindS32:
		var v int32
		if err := thawScalar(p, &v); err != nil {
			return nil, err
		}
		return S32(v), nil
	case KindU32:
		var v uint32
		if err := thawScalar(p, &v); err != nil {
			return nil, err
		}
		return U32(v), nil
	case KindS64:
		var v int64
		if err := thawScalar(p, &v); err != nil {
			return nil, err
		}
		return S64(v), nil
	case KindU64:
		var v uint64
		if err := thawScalar(p, &v); err != nil {
			return nil, err
		}
		return U64(v), nil
	case KindFloat32:
		var v float32
		if err := thawScalar(p, &v); err != nil {
			return nil, err
		}
		return Float32(v), nil
	case KindFloat64:
		var v float64
		if err := thawScalar(p, &v); err != nil {
			return nil, err
		}
		return Float64(v), nil
	case KindChar:
		var s string
		if err := thawScalar(p, &s); err != nil {
			return nil, err
		}
		runes := []rune(s)
		if len(runes) != 1 {
			return nil, errors.Errorf("value: char payload %q is not a single rune", s)
		}
		return Char(runes[0]), nil
	case KindString:
		var s string
		if err := thawScalar(p, &s); err != nil {
			return nil, err
		}
		return String(s), nil
	case KindList:
		elems, err := thawSeq(p)
		if err != nil {
			return nil, err
		}
		return List(elems), nil
	case KindRecord:
		var raw []fieldEnvelope
		if err := thawScalar(p, &raw); err != nil {
			return nil, err
		}
		out := make(Record, 0, len(raw))
		for _, f := range raw {
			fv, err := Thaw(f.V)
			if err != nil {
				return nil, err
			}
			out = append(out, Field{Name: f.N, Val: fv})
		}
		return out, nil
	case KindTuple:
		elems, err := thawSeq(p)
		if err != nil {
			return nil, err
		}
		return Tuple(elems), nil
	case KindVariant:
		var raw variantEnvelope
		if err := thawScalar(p, &raw); err != nil {
			return nil, err
		}
		out := Variant{Name: raw.N}
		if len(raw.V) > 0 {
			payload, err := Thaw(raw.V)
			if err != nil {
				return nil, err
			}
			out.Payload = payload
		}
		return out, nil
	case KindEnum:
		var s string
		if err := thawScalar(p, &s); err != nil {
			return nil, err
		}
		return Enum(s), nil
	case KindOption:
		var raw optionEnvelope
		if err := thawScalar(p, &raw); err != nil {
			return nil, err
		}
		var out Option
		if len(raw.V) > 0 {
			inner, err := Thaw(raw.V)
			if err != nil {
				return nil, err
			}
			out.Val = inner
		}
		return out, nil
	case KindResult:
		var raw resultEnvelope
		if err := thawScalar(p, &raw); err != nil {
			return nil, err
		}
		out := Result{IsErr: raw.S == "err"}
		if len(raw.V) > 0 {
			inner, err := Thaw(raw.V)
			if err != nil {
				return nil, err
			}
			out.Val = inner
		}
		return out, nil
	case KindFlags:
		var names []string
		if err := thawScalar(p, &names); err != nil {
			return nil, err
		}
		return Flags(names), nil
	case KindResource:
		return nil, ErrUnsupportedResource
	default:
		return nil, ErrUnknownKind
	}
}

func thawSeq(p json.RawMessage) ([]SerializableVal, error) {
	var raw []json.RawMessage
	if err := thawScalar(p, &raw); err != nil {
		return nil, err
	}
	out := make([]SerializableVal, 0, len(raw))
	for _, b := range raw {
		v, err := Thaw(b)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func thawScalar(p json.RawMessage, into interface{}) error {
	if err := json.Unmarshal(p, into); err != nil {
		return errors.Wrap(err, "value: can't parse frozen payload")
	}
	return nil
}
