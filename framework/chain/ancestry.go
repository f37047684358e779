package chain

import (
	"github.com/golang-collections/collections/stack"
)

// Ancestry walks parent links from the entry for hash back to the
// oldest reachable entry, collecting on a stack so the result pops out
// oldest-first. An unknown hash yields nil.
//
// Parent links always name earlier entries, so the walk is bounded by
// the chain length.
func (c *Chain) Ancestry(hash uint64) []*MetaEvent {
	var s stack.Stack
	node := c.GetEventByHash(hash)
	for node != nil {
		s.Push(node)
		if node.Event.Parent == nil {
			break
		}
		node = c.GetEventByHash(*node.Event.Parent)
	}
	if s.Len() == 0 {
		return nil
	}
	out := make([]*MetaEvent, 0, s.Len())
	for {
		v := s.Pop()
		if v == nil {
			break
		}
		out = append(out, v.(*MetaEvent))
	}
	return out
}
