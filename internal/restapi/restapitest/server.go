// Package restapitest runs an in-process stand-in for the REST mock: plain
// JSON collections with list, create, get, replace, patch and delete.
package restapitest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	*httptest.Server

	mu     sync.Mutex
	data   map[string][]map[string]any
	nextID int
}

// New starts a server that is closed when t finishes.
func New(t testing.TB) *Server {
	s := &Server{data: map[string][]map[string]any{}, nextID: 1000}

	r := chi.NewRouter()
	r.Get("/{coll}", s.list)
	r.Post("/{coll}", s.create)
	r.Get("/{coll}/{id}", s.get)
	r.Put("/{coll}/{id}", s.replace)
	r.Patch("/{coll}/{id}", s.patch)
	r.Delete("/{coll}/{id}", s.remove)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Seed appends records to a collection as if they were in the db file.
func (s *Server) Seed(coll string, records ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			panic(err)
		}
		var m map[string]any
		if err := json.Unmarshal(b, &m); err != nil {
			panic(err)
		}
		s.data[coll] = append(s.data[coll], m)
	}
}

// Records returns the raw records of a collection.
func (s *Server) Records(coll string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]map[string]any(nil), s.data[coll]...)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := s.data[chi.URLParam(r, "coll")]
	if items == nil {
		items = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	var rec map[string]any
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if id, ok := rec["id"]; !ok || id == "" {
		s.nextID++
		rec["id"] = strconv.Itoa(s.nextID)
	}
	coll := chi.URLParam(r, "coll")
	s.data[coll] = append(s.data[coll], rec)
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) find(r *http.Request) (string, int) {
	coll, id := chi.URLParam(r, "coll"), chi.URLParam(r, "id")
	for i, rec := range s.data[coll] {
		if fmt.Sprint(rec["id"]) == id {
			return coll, i
		}
	}
	return coll, -1
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	coll, i := s.find(r)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return
	}
	writeJSON(w, http.StatusOK, s.data[coll][i])
}

func (s *Server) replace(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, false)
}

func (s *Server) patch(w http.ResponseWriter, r *http.Request) {
	s.update(w, r, true)
}

func (s *Server) update(w http.ResponseWriter, r *http.Request, merge bool) {
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	coll, i := s.find(r)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return
	}
	rec := body
	if merge {
		rec = s.data[coll][i]
		for k, v := range body {
			rec[k] = v
		}
	}
	rec["id"] = s.data[coll][i]["id"]
	s.data[coll][i] = rec
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	coll, i := s.find(r)
	if i < 0 {
		writeJSON(w, http.StatusNotFound, map[string]any{})
		return
	}
	s.data[coll] = append(s.data[coll][:i], s.data[coll][i+1:]...)
	writeJSON(w, http.StatusOK, map[string]any{})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
