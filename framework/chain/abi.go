package chain

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"

	"github.com/chain-framework/go-chain/framework/component"
)

// ABIError describes a failed boundary conversion. The whole boundary
// call fails with it; nothing is partially constructed.
type ABIError struct {
	Op  string
	Err error
	Msg string
}

func (e ABIError) Error() string {
	return fmt.Sprintf("chain abi: op: %q err: %q msg: %q", e.Op, e.Err, e.Msg)
}

// Typecheck accepts only the boundary's primitive string type. A chain
// crosses the boundary as if it were a string; no other declared type
// is valid for it.
func Typecheck(ty component.InterfaceType) error {
	if ty == component.TypeString {
		return nil
	}
	return errors.Errorf("expected string, found %s", ty)
}

// Lower serializes the chain to its wire document and hands the text to
// the boundary's string-lowering primitive.
func (c *Chain) Lower(cx *component.LowerContext, ty component.InterfaceType) (component.StringRepr, error) {
	if err := Typecheck(ty); err != nil {
		return component.StringRepr{}, ABIError{Op: "lower", Err: err, Msg: "chain declares itself as a primitive string"}
	}
	b, err := json.Marshal(c)
	if err != nil {
		return component.StringRepr{}, ABIError{Op: "lower", Err: err, Msg: "can't encode chain wire document"}
	}
	return cx.LowerString(string(b))
}

// LiftChain obtains text via the boundary's string-lifting primitive
// and parses it back into a chain. Malformed text fails the call.
func LiftChain(cx *component.LiftContext, ty component.InterfaceType, repr component.StringRepr) (*Chain, error) {
	if err := Typecheck(ty); err != nil {
		return nil, ABIError{Op: "lift", Err: err, Msg: "chain declares itself as a primitive string"}
	}
	s, err := cx.LiftString(repr)
	if err != nil {
		return nil, ABIError{Op: "lift", Err: err, Msg: "can't lift chain text from linear memory"}
	}
	var c Chain
	if err := json.Unmarshal([]byte(s), &c); err != nil {
		return nil, ABIError{Op: "lift", Err: err, Msg: "malformed chain wire document"}
	}
	return &c, nil
}
