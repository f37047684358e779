package chain

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// wireChain is the textual wire document: a single top-level field
// holding the entries in append order. Field names and nesting are
// load-bearing; consumers expecting compatibility reproduce this shape
// verbatim.
type wireChain struct {
	Events []MetaEvent `json:"events"`
}

func (c *Chain) MarshalJSON() ([]byte, error) {
	evs := c.events
	if evs == nil {
		evs = []MetaEvent{}
	}
	return json.Marshal(wireChain{Events: evs})
}

// UnmarshalJSON parses a wire document. On any decode failure the
// receiver is left untouched; no partial chain is ever produced.
func (c *Chain) UnmarshalJSON(b []byte) error {
	var doc wireChain
	if err := json.Unmarshal(b, &doc); err != nil {
		return errors.Wrap(err, "chain: can't parse wire document")
	}
	byHash := make(map[uint64]int, len(doc.Events))
	for i, node := range doc.Events {
		if _, seen := byHash[node.Hash]; !seen {
			byHash[node.Hash] = i
		}
	}
	c.events = doc.Events
	c.byHash = byHash
	return nil
}
