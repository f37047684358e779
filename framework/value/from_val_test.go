// +build unit

package value

import (
	"testing"

	"golang.org/x/xerrors"

	"github.com/chain-framework/go-chain/framework/component"
	test "github.com/chain-framework/go-chain/framework/test_helper"
)

func Test_FromVal_Scalars(t *testing.T) {
	cases := []struct {
		in   component.Val
		want SerializableVal
	}{
		{component.Bool(true), Bool(true)},
		{component.S8(-8), S8(-8)},
		{component.U8(8), U8(8)},
		{component.S16(-16), S16(-16)},
		{component.U16(16), U16(16)},
		{component.S32(-32), S32(-32)},
		{component.U32(32), U32(32)},
		{component.S64(-64), S64(-64)},
		{component.U64(64), U64(64)},
		{component.Float32(1.5), Float32(1.5)},
		{component.Float64(-2.5), Float64(-2.5)},
		{component.Char('λ'), Char('λ')},
		{component.String("hello"), String("hello")},
		{component.Enum("red"), Enum("red")},
	}
	for _, c := range cases {
		got, err := FromVal(c.in)
		test.H(t).IsNil(err)
		test.H(t).InterfaceEql(got, c.want)
	}
}

// A record holding a list of tuples of options must come through with
// field names, order and nesting untouched.
func Test_FromVal_RecursiveFidelity(t *testing.T) {

	// Arrange
	var in = component.Record{
		{Name: "id", Val: component.U64(7)},
		{Name: "samples", Val: component.List{
			component.Tuple{component.Option{Val: component.S32(1)}, component.Option{}},
			component.Tuple{component.Option{}, component.Option{Val: component.S32(2)}},
		}},
		{Name: "state", Val: component.Variant{Name: "running", Payload: component.String("ok")}},
		{Name: "outcome", Val: component.Result{IsErr: true, Val: component.String("boom")}},
		{Name: "caps", Val: component.Flags{"read", "write"}},
	}

	// Act
	got, err := FromVal(in)

	// Assert
	test.H(t).IsNil(err)
	want := Record{
		{Name: "id", Val: U64(7)},
		{Name: "samples", Val: List{
			Tuple{Option{Val: S32(1)}, Option{}},
			Tuple{Option{}, Option{Val: S32(2)}},
		}},
		{Name: "state", Val: Variant{Name: "running", Payload: String("ok")}},
		{Name: "outcome", Val: Result{IsErr: true, Val: String("boom")}},
		{Name: "caps", Val: Flags{"read", "write"}},
	}
	test.H(t).InterfaceEql(got, want)
}

func Test_FromVal_Resource(t *testing.T) {
	got, err := FromVal(component.Resource{Rep: 42})
	if got != nil {
		t.Fatalf("wanted no value, got %v", got)
	}
	if !xerrors.Is(err, ErrUnsupportedResource) {
		t.Fatalf("wanted ErrUnsupportedResource, got %v", err)
	}
}

func Test_FromVal_ResourceNested(t *testing.T) {
	_, err := FromVal(component.List{component.Bool(true), component.Resource{Rep: 1}})
	if !xerrors.Is(err, ErrUnsupportedResource) {
		t.Fatalf("wanted ErrUnsupportedResource, got %v", err)
	}
}

func Test_FromVals_FailFast(t *testing.T) {
	out, err := FromVals([]component.Val{
		component.String("fine"),
		component.Resource{Rep: 9},
		component.String("never reached"),
	})
	if out != nil {
		t.Fatalf("wanted no partial result, got %v", out)
	}
	if !xerrors.Is(err, ErrUnsupportedResource) {
		t.Fatalf("wanted ErrUnsupportedResource, got %v", err)
	}
}
