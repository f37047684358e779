// +build unit

package value

import (
	"math"
	"testing"

	"golang.org/x/xerrors"

	test "github.com/chain-framework/go-chain/framework/test_helper"
)

func mustHash(t *testing.T, v SerializableVal) uint64 {
	t.Helper()
	h, err := Hash64(v)
	if err != nil {
		t.Fatalf("unexpected hash error: %v", err)
	}
	return h
}

func Test_Hash64_NaNCanonicalization(t *testing.T) {
	t.Run("float64", func(t *testing.T) {
		// two distinct NaN bit patterns
		a := Float64(math.Float64frombits(0x7ff8000000000000))
		b := Float64(math.Float64frombits(0xfff8000000000001))
		test.H(t).Uint64Eql(mustHash(t, a), mustHash(t, b))
	})
	t.Run("float32", func(t *testing.T) {
		a := Float32(math.Float32frombits(0x7fc00000))
		b := Float32(math.Float32frombits(0xffc00001))
		test.H(t).Uint64Eql(mustHash(t, a), mustHash(t, b))
	})
}

func Test_Hash64_SignedZero(t *testing.T) {
	test.H(t).Uint64Eql(mustHash(t, Float64(0.0)), mustHash(t, Float64(math.Copysign(0, -1))))
	test.H(t).Uint64Eql(mustHash(t, Float32(0.0)), mustHash(t, Float32(float32(math.Copysign(0, -1)))))
}

func Test_Hash64_FloatStability(t *testing.T) {
	test.H(t).Uint64Eql(mustHash(t, Float32(1.5)), mustHash(t, Float32(1.5)))
	if mustHash(t, Float32(1.5)) == mustHash(t, Float32(-1.5)) {
		t.Fatal("1.5 and -1.5 should hash apart")
	}
}

// The discriminant is mixed first, so shapes with identical payloads
// still hash apart.
func Test_Hash64_DiscriminantSeparatesVariants(t *testing.T) {
	if mustHash(t, List{}) == mustHash(t, Tuple{}) {
		t.Fatal("empty list and empty tuple should hash apart")
	}
	if mustHash(t, U8(1)) == mustHash(t, S8(1)) {
		t.Fatal("u8(1) and s8(1) should hash apart")
	}
	if mustHash(t, String("red")) == mustHash(t, Enum("red")) {
		t.Fatal("string and enum with equal text should hash apart")
	}
}

func Test_Hash64_RecursiveStructures(t *testing.T) {
	mk := func() SerializableVal {
		return Record{
			{Name: "id", Val: U64(7)},
			{Name: "samples", Val: List{Tuple{Option{Val: S32(1)}, Option{}}}},
		}
	}
	test.H(t).Uint64Eql(mustHash(t, mk()), mustHash(t, mk()))

	reordered := Record{
		{Name: "samples", Val: List{Tuple{Option{Val: S32(1)}, Option{}}}},
		{Name: "id", Val: U64(7)},
	}
	if mustHash(t, mk()) == mustHash(t, reordered) {
		t.Fatal("field order is significant and should change the hash")
	}
}

func Test_Hash64_ResultSides(t *testing.T) {
	ok := Result{Val: String("x")}
	errSide := Result{IsErr: true, Val: String("x")}
	if mustHash(t, ok) == mustHash(t, errSide) {
		t.Fatal("ok and err slots should hash apart")
	}
}

func Test_Hash64_Resource(t *testing.T) {
	_, err := Hash64(Resource{Rep: 1})
	if !xerrors.Is(err, ErrUnsupportedResource) {
		t.Fatalf("wanted ErrUnsupportedResource, got %v", err)
	}
	_, err = Hash64(List{Resource{Rep: 1}})
	if !xerrors.Is(err, ErrUnsupportedResource) {
		t.Fatalf("wanted ErrUnsupportedResource, got %v", err)
	}
}
