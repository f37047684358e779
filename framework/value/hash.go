package value

import (
	"encoding/binary"
	"math"

	"github.com/cespare/xxhash/v2"
)

// Hash64 computes the structural hash of a value. The variant's
// discriminant is mixed in first, so payload-less shapes (an empty
// List, an empty Tuple) still hash apart. Containers hash their
// contents element-wise in order, length-framed.
//
// Floats are canonicalized to stay consistent with an equality notion
// where all NaNs are equivalent and the signed zeros are equivalent:
// every NaN bit pattern hashes as one canonical value, +0.0 and -0.0
// hash identically, and everything else hashes by its raw bit pattern.
func Hash64(v SerializableVal) (uint64, error) {
	d := xxhash.New()
	if err := mix(d, v); err != nil {
		return 0, err
	}
	return d.Sum64(), nil
}

func mix(d *xxhash.Digest, v SerializableVal) error {
	mixUint64(d, uint64(v.Kind()))
	switch v := v.(type) {
	case Bool:
		if v {
			d.Write([]byte{1})
		} else {
			d.Write([]byte{0})
		}
	case S8:
		d.Write([]byte{byte(v)})
	case U8:
		d.Write([]byte{byte(v)})
	case S16:
		mixUint64(d, uint64(uint16(v)))
	case U16:
		mixUint64(d, uint64(v))
	case S32:
		mixUint64(d, uint64(uint32(v)))
	case U32:
		mixUint64(d, uint64(v))
	case S64:
		mixUint64(d, uint64(v))
	case U64:
		mixUint64(d, uint64(v))
	case Float32:
		f := float32(v)
		switch {
		case f != f: // NaN, any payload
			mixUint64(d, uint64(math.MaxUint32))
		case f == 0: // collapses -0.0 and 0.0
			mixUint64(d, 0)
		default:
			mixUint64(d, uint64(math.Float32bits(f)))
		}
	case Float64:
		f := float64(v)
		switch {
		case f != f:
			mixUint64(d, math.MaxUint64)
		case f == 0:
			mixUint64(d, 0)
		default:
			mixUint64(d, math.Float64bits(f))
		}
	case Char:
		mixUint64(d, uint64(uint32(v)))
	case String:
		mixString(d, string(v))
	case List:
		return mixSeq(d, v)
	case Record:
		mixUint64(d, uint64(len(v)))
		for _, f := range v {
			mixString(d, f.Name)
			if err := mix(d, f.Val); err != nil {
				return err
			}
		}
	case Tuple:
		return mixSeq(d, v)
	case Variant:
		mixString(d, v.Name)
		return mixOpt(d, v.Payload)
	case Enum:
		mixString(d, string(v))
	case Option:
		return mixOpt(d, v.Val)
	case Result:
		if v.IsErr {
			d.Write([]byte{1})
		} else {
			d.Write([]byte{0})
		}
		return mixOpt(d, v.Val)
	case Flags:
		mixUint64(d, uint64(len(v)))
		for _, name := range v {
			mixString(d, name)
		}
	case Resource:
		return ErrUnsupportedResource
	default:
		return ErrUnknownKind
	}
	return nil
}

func mixSeq(d *xxhash.Digest, vs []SerializableVal) error {
	mixUint64(d, uint64(len(vs)))
	for _, v := range vs {
		if err := mix(d, v); err != nil {
			return err
		}
	}
	return nil
}

func mixOpt(d *xxhash.Digest, v SerializableVal) error {
	if v == nil {
		d.Write([]byte{0})
		return nil
	}
	d.Write([]byte{1})
	return mix(d, v)
}

func mixString(d *xxhash.Digest, s string) {
	mixUint64(d, uint64(len(s)))
	d.WriteString(s)
}

func mixUint64(d *xxhash.Digest, v uint64) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], v)
	d.Write(buf[:])
}
