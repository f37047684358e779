package main

import (
	"crypto/rand"
	"fmt"
	"io/ioutil"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/namsral/flag"
	opentracing "github.com/opentracing/opentracing-go"
	zipkin "github.com/openzipkin/zipkin-go-opentracing"
	yaml "gopkg.in/yaml.v2"

	"github.com/chain-framework/go-chain/framework/ctxkey"
	"github.com/chain-framework/go-chain/framework/manifest"
	"github.com/chain-framework/go-chain/framework/storage/memory"
)

type config struct {
	ListenAddr string   `yaml:"listen_addr"`
	ZipkinAddr string   `yaml:"zipkin_addr"`
	EventTypes []string `yaml:"event_types"`
}

func main() {

	var (
		listenAddr string
		zipkinAddr string
		cfgPath    string
	)

	flag.StringVar(&listenAddr, "listen_addr", ":8080", "address to listen on")
	flag.StringVar(&zipkinAddr, "zipkin_addr", "", "zipkin http collector addr, empty disables tracing")
	flag.StringVar(&cfgPath, "config", "", "optional path to a yaml config file")
	flag.Parse()

	cfg := config{ListenAddr: listenAddr, ZipkinAddr: zipkinAddr}
	if cfgPath != "" {
		b, err := ioutil.ReadFile(cfgPath)
		if err != nil {
			log.Fatal(err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			log.Fatal(err)
		}
		if cfg.ListenAddr == "" {
			cfg.ListenAddr = listenAddr
		}
	}

	if cfg.ZipkinAddr != "" {
		collector, err := zipkin.NewHTTPCollector(cfg.ZipkinAddr)
		if err != nil {
			log.Fatal(err)
		}
		defer collector.Close()
		tracer, err := zipkin.NewTracer(
			zipkin.NewRecorder(collector, false, cfg.ListenAddr, "chain-server"),
		)
		if err != nil {
			log.Fatal(err)
		}
		opentracing.SetGlobalTracer(tracer)
	}

	m := manifest.New()
	if len(cfg.EventTypes) == 0 {
		cfg.EventTypes = []string{"actor_spawned", "call_made", "reply_sent"}
	}
	for _, tag := range cfg.EventTypes {
		if _, err := m.Register(tag); err != nil {
			log.Fatalf("can't register event type %q: %s", tag, err)
		}
	}

	srv := chainServer{
		store:    &memory.ChainStore{},
		manifest: m,
		logger:   StdLogger{},
	}

	r := mux.NewRouter()
	r.Handle("/manifest", manifestServer{m}).Methods(http.MethodGet)
	r.HandleFunc("/chains", srv.ListChains).Methods(http.MethodGet)
	r.HandleFunc("/chains/{name}", srv.GetChain).Methods(http.MethodGet)
	r.HandleFunc("/chains/{name}/head", srv.GetHead).Methods(http.MethodGet)
	r.HandleFunc("/chains/{name}/events", srv.AppendEvent).Methods(http.MethodPost)
	r.HandleFunc("/chains/{name}/events", srv.ListEvents).Methods(http.MethodGet)
	r.HandleFunc("/chains/{name}/events/{hash:[0-9]+}", srv.GetEvent).Methods(http.MethodGet)
	r.HandleFunc("/chains/{name}/events/{hash:[0-9]+}/parent", srv.GetParent).Methods(http.MethodGet)
	r.HandleFunc("/chains/{name}/ancestry/{hash:[0-9]+}", srv.GetAncestry).Methods(http.MethodGet)

	s := &http.Server{
		Addr:           cfg.ListenAddr,
		Handler:        handlers.RecoveryHandler()(handlers.LoggingHandler(os.Stdout, withRequestID(r))),
		ReadTimeout:    10 * time.Second,
		WriteTimeout:   10 * time.Second,
		MaxHeaderBytes: 1 << 20,
	}

	log.Println("chain-server listening on", cfg.ListenAddr)
	log.Fatal(s.ListenAndServe())
}

func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		b := make([]byte, 12)
		if _, err := rand.Read(b); err == nil {
			req = req.WithContext(ctxkey.WithRequestID(req.Context(), fmt.Sprintf("%x", b)))
		}
		next.ServeHTTP(w, req)
	})
}
