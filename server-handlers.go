package main

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	opentracing "github.com/opentracing/opentracing-go"
	"golang.org/x/xerrors"

	"github.com/chain-framework/go-chain/framework/chain"
	"github.com/chain-framework/go-chain/framework/ctxkey"
	"github.com/chain-framework/go-chain/framework/manifest"
	"github.com/chain-framework/go-chain/framework/matcher"
	"github.com/chain-framework/go-chain/framework/storage"
	"github.com/chain-framework/go-chain/framework/value"
)

type manifestServer struct {
	m *manifest.Manifest
}

func (ms manifestServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	var enc = json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(ms.m.List()); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
}

type chainServer struct {
	store    storage.ChainStore
	manifest *manifest.Manifest
	logger   Logger
}

type appendRequest struct {
	Type  string          `json:"type_"`
	Data  chain.RawData   `json:"data"`
	Value json.RawMessage `json:"value"`
}

// AppendEvent appends one event to the named chain, creating the chain
// on first use. The type tag must be registered in the manifest.
func (srv chainServer) AppendEvent(w http.ResponseWriter, req *http.Request) {

	spn, ctx := opentracing.StartSpanFromContext(req.Context(), "chainServer.AppendEvent")
	defer spn.Finish()
	spn.SetTag("request_id", ctxkey.RequestID(ctx))

	name := mux.Vars(req)["name"]
	spn.SetTag("chain", name)

	var ar appendRequest
	if err := json.NewDecoder(req.Body).Decode(&ar); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if !srv.manifest.Has(ar.Type) {
		srv.logger.Infof("rejecting unregistered event type %q", ar.Type)
		http.Error(w, "unregistered event type", http.StatusUnprocessableEntity)
		return
	}

	// A frozen value may be given in place of raw bytes; it must parse
	// before it is carried as the event payload.
	if len(ar.Value) > 0 {
		if len(ar.Data) > 0 {
			http.Error(w, "give either data or value, not both", http.StatusBadRequest)
			return
		}
		if _, err := value.Thaw(ar.Value); err != nil {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return
		}
		ar.Data = chain.RawData(ar.Value)
	}

	c, err := srv.store.Load(ctx, name)
	if xerrors.Is(err, storage.ErrNoSuchChain) {
		c = chain.New()
	} else if err != nil {
		srv.logger.Error("can't load chain:", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	hash := c.Add(chain.NewEvent(ar.Type, ar.Data))

	if err := srv.store.Save(ctx, name, c); err != nil {
		srv.logger.Error("can't save chain:", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]uint64{"hash": hash})
}

// GetChain renders the whole chain as its wire document.
func (srv chainServer) GetChain(w http.ResponseWriter, req *http.Request) {

	spn, ctx := opentracing.StartSpanFromContext(req.Context(), "chainServer.GetChain")
	defer spn.Finish()
	spn.SetTag("request_id", ctxkey.RequestID(ctx))

	c, ok := srv.loadOr404(ctx, w, mux.Vars(req)["name"])
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	var enc = json.NewEncoder(w)
	enc.SetIndent("", "    ")
	if err := enc.Encode(c); err != nil {
		http.Error(w, err.Error(), 500)
		return
	}
}

func (srv chainServer) GetHead(w http.ResponseWriter, req *http.Request) {

	spn, ctx := opentracing.StartSpanFromContext(req.Context(), "chainServer.GetHead")
	defer spn.Finish()
	spn.SetTag("request_id", ctxkey.RequestID(ctx))

	c, ok := srv.loadOr404(ctx, w, mux.Vars(req)["name"])
	if !ok {
		return
	}

	head, ok := c.Head()
	if !ok {
		http.Error(w, "chain has no events", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]uint64{"hash": head})
}

func (srv chainServer) GetEvent(w http.ResponseWriter, req *http.Request) {

	spn, ctx := opentracing.StartSpanFromContext(req.Context(), "chainServer.GetEvent")
	defer spn.Finish()
	spn.SetTag("request_id", ctxkey.RequestID(ctx))

	c, ok := srv.loadOr404(ctx, w, mux.Vars(req)["name"])
	if !ok {
		return
	}

	hash, err := strconv.ParseUint(mux.Vars(req)["hash"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ev := c.GetEventByHash(hash)
	if ev == nil {
		http.Error(w, "no event with that hash", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ev)
}

func (srv chainServer) GetParent(w http.ResponseWriter, req *http.Request) {

	spn, ctx := opentracing.StartSpanFromContext(req.Context(), "chainServer.GetParent")
	defer spn.Finish()
	spn.SetTag("request_id", ctxkey.RequestID(ctx))

	c, ok := srv.loadOr404(ctx, w, mux.Vars(req)["name"])
	if !ok {
		return
	}

	hash, err := strconv.ParseUint(mux.Vars(req)["hash"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	parent := c.GetParent(hash)
	if parent == nil {
		http.Error(w, "no parent for that hash", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(parent)
}

func (srv chainServer) GetAncestry(w http.ResponseWriter, req *http.Request) {

	spn, ctx := opentracing.StartSpanFromContext(req.Context(), "chainServer.GetAncestry")
	defer spn.Finish()
	spn.SetTag("request_id", ctxkey.RequestID(ctx))

	c, ok := srv.loadOr404(ctx, w, mux.Vars(req)["name"])
	if !ok {
		return
	}

	hash, err := strconv.ParseUint(mux.Vars(req)["hash"], 10, 64)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ancestry := c.Ancestry(hash)
	if ancestry == nil {
		http.Error(w, "no event with that hash", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	var enc = json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.Encode(ancestry)
}

// ListEvents filters the chain's events by a glob over the type tag,
// ?type=actor_* style. No filter means everything.
func (srv chainServer) ListEvents(w http.ResponseWriter, req *http.Request) {

	spn, ctx := opentracing.StartSpanFromContext(req.Context(), "chainServer.ListEvents")
	defer spn.Finish()
	spn.SetTag("request_id", ctxkey.RequestID(ctx))

	c, ok := srv.loadOr404(ctx, w, mux.Vars(req)["name"])
	if !ok {
		return
	}

	pattern := req.URL.Query().Get("type")
	if pattern == "" {
		pattern = "*"
	}
	spn.SetTag("pattern", pattern)

	var (
		m   = matcher.NewGlobPattern(pattern)
		out = []chain.MetaEvent{}
	)
	for _, me := range c.Events() {
		matched, err := m.DoesMatch(me.Event.Type)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if matched {
			out = append(out, me)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	var enc = json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.Encode(out)
}

func (srv chainServer) ListChains(w http.ResponseWriter, req *http.Request) {

	spn, ctx := opentracing.StartSpanFromContext(req.Context(), "chainServer.ListChains")
	defer spn.Finish()
	spn.SetTag("request_id", ctxkey.RequestID(ctx))

	w.Header().Set("Content-Type", "application/json")
	var enc = json.NewEncoder(w)
	enc.SetIndent("", "    ")
	enc.Encode(srv.store.Names())
}

func (srv chainServer) loadOr404(ctx context.Context, w http.ResponseWriter, name string) (*chain.Chain, bool) {
	c, err := srv.store.Load(ctx, name)
	if xerrors.Is(err, storage.ErrNoSuchChain) {
		http.Error(w, "no such chain", http.StatusNotFound)
		return nil, false
	}
	if err != nil {
		srv.logger.Error("can't load chain:", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return nil, false
	}
	return c, true
}
