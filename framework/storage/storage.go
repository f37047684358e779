package storage

import (
	"context"

	"github.com/chain-framework/go-chain/framework/chain"
)

// ChainStore keeps whole chains addressable by name. A chain is a plain
// single-owner aggregate with no locking of its own, so stores serialize
// access on the owner's behalf.
//
// Stores hold encoded wire documents rather than live chains; loading
// always yields a fresh chain the caller owns outright.
type ChainStore interface {
	Save(ctx context.Context, name string, c *chain.Chain) error
	Load(ctx context.Context, name string) (*chain.Chain, error)
	Names() []string
}
