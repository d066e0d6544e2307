// Command chi serves the casing conversions with a chi router.
//
// Run:
//
//	cd _example/chi && go run .
//
// Then:
//
//	curl localhost:8080/convert/upper?text=hello
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	c "github.com/Gobd/casing"
	"github.com/go-chi/chi/v5"
)

type ConvertResponse struct {
	Mode string `json:"mode"`
	Text string `json:"text"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func main() {
	r := chi.NewRouter()

	r.Get("/convert/{mode}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		m, err := c.ParseMode(chi.URLParam(r, "mode"))
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(ErrorResponse{Error: err.Error()})
			return
		}
		_ = json.NewEncoder(w).Encode(ConvertResponse{
			Mode: m.String(),
			Text: m.Apply(r.URL.Query().Get("text")),
		})
	})

	fmt.Println("Listening on http://localhost:8080")
	log.Fatal(http.ListenAndServe(":8080", r))
}
