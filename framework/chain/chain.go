package chain

// MetaEvent pairs an event with its identity hash. Entries are owned
// exclusively by the chain that created them and are never mutated
// after construction.
type MetaEvent struct {
	Hash  uint64 `json:"hash"`
	Event Event  `json:"event"`
}

// Chain is an ordered, append-only sequence of hash-identified events.
// Insertion order is chronological append order and is never revised.
//
// Alongside the arena a map records the FIRST position seen for each
// hash. Duplicate content produces duplicate hashes and both entries
// are kept; lookups resolve to the earliest, exactly as a linear scan
// in append order would.
//
// A Chain is a plain mutable aggregate with no internal locking. It
// assumes a single owner; anything sharing one across goroutines must
// serialize access itself.
type Chain struct {
	events []MetaEvent
	byHash map[uint64]int
}

func New() *Chain {
	return &Chain{byHash: make(map[uint64]int)}
}

// Add computes the event's identity hash, links the event to the
// current head and appends it. The hash is computed FIRST, over the
// event exactly as handed in, and the parent link is assigned second.
// Append is total; there are no error conditions.
func (c *Chain) Add(ev Event) uint64 {
	hash := ev.contentHash()
	if head, ok := c.Head(); ok {
		parent := head
		ev.Parent = &parent
	}
	c.events = append(c.events, MetaEvent{Hash: hash, Event: ev})
	if c.byHash == nil {
		c.byHash = make(map[uint64]int)
	}
	if _, seen := c.byHash[hash]; !seen {
		c.byHash[hash] = len(c.events) - 1
	}
	return hash
}

// GetEventByHash returns the earliest entry carrying the given hash, or
// nil if the chain holds none.
func (c *Chain) GetEventByHash(hash uint64) *MetaEvent {
	i, ok := c.byHash[hash]
	if !ok {
		return nil
	}
	return &c.events[i]
}

// GetParent resolves the entry for hash and then the entry its parent
// link names. Either lookup failing, or an absent parent link, yields
// nil.
func (c *Chain) GetParent(hash uint64) *MetaEvent {
	node := c.GetEventByHash(hash)
	if node == nil || node.Event.Parent == nil {
		return nil
	}
	return c.GetEventByHash(*node.Event.Parent)
}

// Head returns the hash of the most recently appended entry. The second
// return value is false for an empty chain.
func (c *Chain) Head() (uint64, bool) {
	if len(c.events) == 0 {
		return 0, false
	}
	return c.events[len(c.events)-1].Hash, true
}

func (c *Chain) Len() int {
	return len(c.events)
}

// Events returns a copy of the entries in append order. The copy keeps
// callers from disturbing the append-only arena.
func (c *Chain) Events() []MetaEvent {
	out := make([]MetaEvent, len(c.events))
	copy(out, c.events)
	return out
}
