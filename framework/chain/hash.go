package chain

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// contentHash digests the event exactly as given. Chain.Add calls this
// before assigning the parent link, so for freshly constructed events
// the parent is always absent here and the result is a pure content
// address of (type tag, payload). Reordering hash and parent assignment
// would change every hash on the wire; see DESIGN.md.
//
// The layout is length-framed so that adjacent fields can't be confused
// for one another.
func (ev Event) contentHash() uint64 {
	var (
		d   = xxhash.New()
		buf [8]byte
	)
	binary.LittleEndian.PutUint64(buf[:], uint64(len(ev.Type)))
	d.Write(buf[:])
	d.WriteString(ev.Type)
	if ev.Parent == nil {
		d.Write([]byte{0})
	} else {
		d.Write([]byte{1})
		binary.LittleEndian.PutUint64(buf[:], *ev.Parent)
		d.Write(buf[:])
	}
	binary.LittleEndian.PutUint64(buf[:], uint64(len(ev.Data)))
	d.Write(buf[:])
	d.Write(ev.Data)
	return d.Sum64()
}
