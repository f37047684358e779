package chain

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
)

// RawData is an opaque event payload. It marshals as a JSON array of
// byte values rather than Go's default base64 string so the wire
// document keeps the exact field shape other consumers of the format
// expect.
type RawData []byte

func (d RawData) MarshalJSON() ([]byte, error) {
	var b bytes.Buffer
	b.WriteByte('[')
	for i, v := range d {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatUint(uint64(v), 10))
	}
	b.WriteByte(']')
	return b.Bytes(), nil
}

func (d *RawData) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = nil
		return nil
	}
	var raw []int64
	if err := json.Unmarshal(b, &raw); err != nil {
		return errors.Wrap(err, "chain: can't parse data byte sequence")
	}
	// the wire format can't tell nil from empty; normalize to nil so a
	// decoded chain compares equal to the one that was encoded
	if len(raw) == 0 {
		*d = nil
		return nil
	}
	out := make(RawData, len(raw))
	for i, v := range raw {
		if v < 0 || v > 255 {
			return errors.Wrapf(ErrDataByteRange, "chain: value %d at index %d", v, i)
		}
		out[i] = byte(v)
	}
	*d = out
	return nil
}
