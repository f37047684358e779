package value

import (
	"github.com/pkg/errors"

	"github.com/chain-framework/go-chain/framework/component"
)

// FromVal recursively maps a dynamic value to its mirror variant.
// Nested values convert depth-first in declaration order; the first
// failure aborts the whole conversion with no partial result.
func FromVal(val component.Val) (SerializableVal, error) {
	switch v := val.(type) {
	case component.Bool:
		return Bool(v), nil
	case component.S8:
		return S8(v), nil
	case component.U8:
		return U8(v), nil
	case component.S16:
		return S16(v), nil
	case component.U16:
		return U16(v), nil
	case component.S32:
		return S32(v), nil
	case component.U32:
		return U32(v), nil
	case component.S64:
		return S64(v), nil
	case component.U64:
		return U64(v), nil
	case component.Float32:
		return Float32(v), nil
	case component.Float64:
		return Float64(v), nil
	case component.Char:
		return Char(v), nil
	case component.String:
		return String(v), nil
	case component.List:
		elems, err := FromVals(v)
		if err != nil {
			return nil, err
		}
		return List(elems), nil
	case component.Record:
		out := make(Record, 0, len(v))
		for _, f := range v {
			fv, err := FromVal(f.Val)
			if err != nil {
				return nil, err
			}
			out = append(out, Field{Name: f.Name, Val: fv})
		}
		return out, nil
	case component.Tuple:
		elems, err := FromVals(v)
		if err != nil {
			return nil, err
		}
		return Tuple(elems), nil
	case component.Variant:
		payload, err := fromOptVal(v.Payload)
		if err != nil {
			return nil, err
		}
		return Variant{Name: v.Name, Payload: payload}, nil
	case component.Enum:
		return Enum(v), nil
	case component.Option:
		inner, err := fromOptVal(v.Val)
		if err != nil {
			return nil, err
		}
		return Option{Val: inner}, nil
	case component.Result:
		inner, err := fromOptVal(v.Val)
		if err != nil {
			return nil, err
		}
		return Result{IsErr: v.IsErr, Val: inner}, nil
	case component.Flags:
		out := make(Flags, len(v))
		copy(out, v)
		return out, nil
	case component.Resource:
		return nil, ErrUnsupportedResource
	default:
		return nil, errors.Errorf("value: no mirror for dynamic value case %T", val)
	}
}

// FromVals converts an ordered sequence element-wise with the same
// fail-fast semantics as FromVal.
func FromVals(vals []component.Val) ([]SerializableVal, error) {
	out := make([]SerializableVal, 0, len(vals))
	for _, v := range vals {
		sv, err := FromVal(v)
		if err != nil {
			return nil, err
		}
		out = append(out, sv)
	}
	return out, nil
}

func fromOptVal(val component.Val) (SerializableVal, error) {
	if val == nil {
		return nil, nil
	}
	return FromVal(val)
}
