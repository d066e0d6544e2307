// Command example serves the casing conversions and rules over HTTP.
//
// Run:
//
//	go run ./_example -config _example/config.yml
//
// Then:
//
//	curl -d '{"mode":"capitalize","text":"hELLO"}' localhost:8080/convert
//	curl -d '{"country":"nl","email":"Ann@Example.com","name":"aNN"}' localhost:8080/profiles
//	curl localhost:8080/schema
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"

	c "github.com/Gobd/casing"
	"github.com/Gobd/casing/transform"
	"github.com/getkin/kin-openapi/openapi3"
	"go.uber.org/zap"
)

// Profile is a sample request/response type normalized by its case tags.
type Profile struct {
	Country string `json:"country" case:"upper"`
	Email   string `json:"email" case:"lower"`
	Name    string `json:"name" case:"capitalize"`
}

func (p *Profile) fields() []*c.FieldRules {
	return []*c.FieldRules{
		c.Field(&p.Country, c.Required, c.IsUpperCase()),
		c.Field(&p.Email, c.Required, c.IsLowerCase()),
		c.Field(&p.Name, c.IsCapitalized()),
	}
}

type convertRequest struct {
	Mode c.Mode `json:"mode"`
	Text string `json:"text"`
}

type convertResponse struct {
	Text string `json:"text"`
}

// ErrorResponse is a standard error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

type server struct {
	log *zap.Logger
}

func (s *server) convert(w http.ResponseWriter, r *http.Request) {
	var req convertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	if !req.Mode.Valid() {
		s.fail(w, http.StatusBadRequest, errors.New("mode is required"))
		return
	}
	out := req.Mode.Apply(req.Text)
	s.log.Debug("converted", zap.Stringer("mode", req.Mode), zap.Int("bytes", len(out)))
	s.write(w, http.StatusOK, convertResponse{Text: out})
}

func (s *server) profiles(w http.ResponseWriter, r *http.Request) {
	var p Profile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	if err := transform.StructByTag(&p); err != nil {
		s.fail(w, http.StatusInternalServerError, err)
		return
	}
	if err := c.ValidateStruct(&p, p.fields()...); err != nil {
		s.fail(w, http.StatusBadRequest, err)
		return
	}
	s.write(w, http.StatusOK, p)
}

func (s *server) schema(w http.ResponseWriter, _ *http.Request) {
	obj := openapi3.NewObjectSchema()
	for name, rules := range map[string][]c.Rule{
		"country": {c.Describe("ISO 3166 code."), c.IsUpperCase()},
		"email":   {c.IsLowerCase()},
		"name":    {c.IsCapitalized()},
	} {
		ref, err := c.StringSchema(rules...)
		if err != nil {
			s.fail(w, http.StatusInternalServerError, err)
			return
		}
		obj.WithPropertyRef(name, ref)
	}
	obj.Required = []string{"country", "email"}
	s.write(w, http.StatusOK, obj)
}

func (s *server) fail(w http.ResponseWriter, status int, err error) {
	s.log.Warn("request failed", zap.Int("status", status), zap.Error(err))
	s.write(w, status, ErrorResponse{Error: err.Error()})
}

func (s *server) write(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("encode response", zap.Error(err))
	}
}

func main() {
	path := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := LoadConfig(*path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, err := NewLogger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	s := &server{log: log}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /convert", s.convert)
	mux.HandleFunc("POST /profiles", s.profiles)
	mux.HandleFunc("GET /schema", s.schema)

	log.Info("listening", zap.String("addr", cfg.Listen))
	if err := http.ListenAndServe(cfg.Listen, mux); err != nil {
		log.Fatal("serve", zap.Error(err))
	}
}
