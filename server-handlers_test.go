// +build unit

package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/gorilla/mux"

	"github.com/chain-framework/go-chain/framework/manifest"
	"github.com/chain-framework/go-chain/framework/storage/memory"
	test "github.com/chain-framework/go-chain/framework/test_helper"
)

func serverFixture(t *testing.T) (chainServer, *mux.Router) {
	t.Helper()
	m := manifest.New()
	for _, tag := range []string{"actor_spawned", "call_made"} {
		if _, err := m.Register(tag); err != nil {
			t.Fatal(err)
		}
	}
	srv := chainServer{store: &memory.ChainStore{}, manifest: m, logger: NoopLogger{}}
	r := mux.NewRouter()
	r.HandleFunc("/chains/{name}", srv.GetChain).Methods(http.MethodGet)
	r.HandleFunc("/chains/{name}/head", srv.GetHead).Methods(http.MethodGet)
	r.HandleFunc("/chains/{name}/events", srv.AppendEvent).Methods(http.MethodPost)
	r.HandleFunc("/chains/{name}/events", srv.ListEvents).Methods(http.MethodGet)
	r.HandleFunc("/chains/{name}/events/{hash:[0-9]+}", srv.GetEvent).Methods(http.MethodGet)
	r.HandleFunc("/chains/{name}/ancestry/{hash:[0-9]+}", srv.GetAncestry).Methods(http.MethodGet)
	return srv, r
}

func postEvent(t *testing.T, r *mux.Router, name, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/chains/"+name+"/events", strings.NewReader(body))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func Test_Server_AppendAndReadBack(t *testing.T) {

	// Arrange
	_, r := serverFixture(t)

	// Act
	res := postEvent(t, r, "actor-123", `{"type_":"actor_spawned","data":[1,2,3]}`)

	// Assert
	test.H(t).IntEql(res.Code, http.StatusCreated)
	var created map[string]uint64
	test.H(t).IsNil(json.Unmarshal(res.Body.Bytes(), &created))
	if created["hash"] == 0 {
		t.Fatal("expected a hash in the append response")
	}

	req := httptest.NewRequest(http.MethodGet, "/chains/actor-123", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	test.H(t).IntEql(w.Code, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"type_": "actor_spawned"`) {
		t.Fatal("wire document missing appended event, got", w.Body.String())
	}
}

func Test_Server_AppendRejectsUnregisteredType(t *testing.T) {
	_, r := serverFixture(t)
	res := postEvent(t, r, "a", `{"type_":"reply_sent","data":[]}`)
	test.H(t).IntEql(res.Code, http.StatusUnprocessableEntity)
}

func Test_Server_AppendFrozenValuePayload(t *testing.T) {
	_, r := serverFixture(t)
	t.Run("well formed", func(t *testing.T) {
		res := postEvent(t, r, "a", `{"type_":"call_made","value":{"t":"string","p":"hi"}}`)
		test.H(t).IntEql(res.Code, http.StatusCreated)
	})
	t.Run("malformed envelope", func(t *testing.T) {
		res := postEvent(t, r, "a", `{"type_":"call_made","value":{"t":"wat","p":1}}`)
		test.H(t).IntEql(res.Code, http.StatusUnprocessableEntity)
	})
	t.Run("both data and value", func(t *testing.T) {
		res := postEvent(t, r, "a", `{"type_":"call_made","data":[1],"value":{"t":"bool","p":true}}`)
		test.H(t).IntEql(res.Code, http.StatusBadRequest)
	})
}

func Test_Server_HeadAndAncestry(t *testing.T) {

	// Arrange
	_, r := serverFixture(t)
	postEvent(t, r, "a", `{"type_":"actor_spawned","data":[]}`)
	res := postEvent(t, r, "a", `{"type_":"call_made","data":[9]}`)
	var created map[string]uint64
	test.H(t).IsNil(json.Unmarshal(res.Body.Bytes(), &created))

	// Act
	req := httptest.NewRequest(http.MethodGet, "/chains/a/head", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Assert
	test.H(t).IntEql(w.Code, http.StatusOK)
	var head map[string]uint64
	test.H(t).IsNil(json.Unmarshal(w.Body.Bytes(), &head))
	test.H(t).Uint64Eql(head["hash"], created["hash"])

	req = httptest.NewRequest(http.MethodGet, "/chains/a/ancestry/"+strconv.FormatUint(created["hash"], 10), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	test.H(t).IntEql(w.Code, http.StatusOK)
	if !strings.Contains(w.Body.String(), `"type_": "actor_spawned"`) {
		t.Fatal("ancestry should reach back to the first event, got", w.Body.String())
	}
}

func Test_Server_ListEventsGlobFilter(t *testing.T) {

	// Arrange
	_, r := serverFixture(t)
	postEvent(t, r, "a", `{"type_":"actor_spawned","data":[]}`)
	postEvent(t, r, "a", `{"type_":"call_made","data":[]}`)

	// Act
	req := httptest.NewRequest(http.MethodGet, "/chains/a/events?type=actor_*", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Assert
	test.H(t).IntEql(w.Code, http.StatusOK)
	body := w.Body.String()
	if !strings.Contains(body, "actor_spawned") || strings.Contains(body, "call_made") {
		t.Fatal("glob filter should keep only matching tags, got", body)
	}
}

func Test_Server_UnknownChainIs404(t *testing.T) {
	_, r := serverFixture(t)
	req := httptest.NewRequest(http.MethodGet, "/chains/nope/head", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	test.H(t).IntEql(w.Code, http.StatusNotFound)
}
