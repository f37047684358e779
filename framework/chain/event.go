package chain

// Event is one immutable recorded unit of activity. The type tag
// classifies the event for callers and is opaque to this package, as is
// the payload. Parent is a non-owning back-reference to the entry that
// was head when the event was appended; it is assigned exactly once, by
// Chain.Add, and never touched again.
type Event struct {
	Type   string  `json:"type_"`
	Parent *uint64 `json:"parent"`
	Data   RawData `json:"data"`
}

// NewEvent returns an event with no parent link. The payload bytes are
// not inspected or validated.
func NewEvent(typeTag string, data []byte) Event {
	return Event{Type: typeTag, Data: RawData(data)}
}
