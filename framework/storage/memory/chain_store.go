package memory

import (
	"bytes"
	"compress/zlib"
	"context"
	"encoding/json"
	"io/ioutil"
	"sort"
	"sync"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"

	"github.com/chain-framework/go-chain/framework/chain"
	"github.com/chain-framework/go-chain/framework/storage"
)

// ChainStore holds zlib-deflated chain wire documents keyed by name.
// Everything lives in process memory; nothing survives a restart.
//
// The mutex serializes access on behalf of the single-owner chains the
// documents decode to.
type ChainStore struct {
	mu sync.RWMutex
	o  map[string][]byte
}

func (cs *ChainStore) Save(ctx context.Context, name string, c *chain.Chain) error {

	spn, _ := opentracing.StartSpanFromContext(ctx, "memorystore.Save")
	defer spn.Finish()
	spn.SetTag("chain", name)

	doc, err := json.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "memorystore: can't encode chain wire document")
	}

	var b bytes.Buffer
	w := zlib.NewWriter(&b)
	w.Write(doc)
	w.Close()

	cs.mu.Lock()
	defer cs.mu.Unlock()
	if cs.o == nil {
		cs.o = make(map[string][]byte)
	}
	cs.o[name] = b.Bytes()
	return nil
}

func (cs *ChainStore) Load(ctx context.Context, name string) (*chain.Chain, error) {

	spn, _ := opentracing.StartSpanFromContext(ctx, "memorystore.Load")
	defer spn.Finish()
	spn.SetTag("chain", name)

	cs.mu.RLock()
	deflated, ok := cs.o[name]
	cs.mu.RUnlock()
	if !ok {
		return nil, storage.ErrNoSuchChain
	}

	r, err := zlib.NewReader(bytes.NewReader(deflated))
	if err != nil {
		return nil, storage.ErrUnableToInflate
	}
	doc, err := ioutil.ReadAll(r)
	r.Close()
	if err != nil {
		return nil, storage.ErrUnableToInflate
	}

	var c chain.Chain
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, errors.Wrap(err, "memorystore: can't decode chain wire document")
	}
	return &c, nil
}

func (cs *ChainStore) Names() []string {
	cs.mu.RLock()
	defer cs.mu.RUnlock()
	out := make([]string, 0, len(cs.o))
	for name := range cs.o {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
