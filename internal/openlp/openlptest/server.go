// Package openlptest runs a fake OpenLP remote for tests.
package openlptest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/gorilla/mux"

	"github.com/five82/openlplink/internal/openlp"
)

// Server serves the three OpenLP endpoints from mutable in-memory state.
type Server struct {
	*httptest.Server

	mu          sync.Mutex
	poll        openlp.Poll
	live        openlp.LiveText
	service     []openlp.ServiceItem
	failing     bool
	omitResults bool
	hits        map[string]int
}

// NewServer starts a Server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{hits: make(map[string]int)}

	r := mux.NewRouter()
	r.HandleFunc(openlp.PathPoll, s.handle(func() any { return s.poll })).Methods(http.MethodGet)
	r.HandleFunc(openlp.PathLiveText, s.handle(func() any { return s.live })).Methods(http.MethodGet)
	r.HandleFunc(openlp.PathServiceList, s.handle(func() any {
		return openlp.ServiceList{Items: s.service}
	})).Methods(http.MethodGet)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Show makes item live at slide with the given slide texts, updating all
// three endpoints consistently.
func (s *Server) Show(item openlp.ServiceItem, slide int, texts ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slides := make([]openlp.Slide, len(texts))
	for i, text := range texts {
		slides[i] = openlp.Slide{Text: text}
	}
	s.poll = openlp.Poll{Item: item.ID, Slide: slide}
	s.live = openlp.LiveText{Item: item.ID, Slides: slides}

	for i, existing := range s.service {
		if existing.ID == item.ID {
			s.service[i] = item
			return
		}
	}
	s.service = append(s.service, item)
}

// SetPoll replaces the /api/poll results.
func (s *Server) SetPoll(p openlp.Poll) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.poll = p
}

// SetLiveText replaces the /api/controller/live/text results.
func (s *Server) SetLiveText(l openlp.LiveText) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.live = l
}

// SetService replaces the /api/service/list items.
func (s *Server) SetService(items ...openlp.ServiceItem) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.service = items
}

// Fail makes every endpoint answer 500 until called with false.
func (s *Server) Fail(failing bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failing = failing
}

// OmitResults makes every endpoint answer 200 without a results member.
func (s *Server) OmitResults(omit bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.omitResults = omit
}

// Hits returns how many requests path has received.
func (s *Server) Hits(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func (s *Server) handle(results func() any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.hits[r.URL.Path]++
		if s.failing {
			http.Error(w, "unavailable", http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		payload := map[string]any{}
		if !s.omitResults {
			payload["results"] = results()
		}
		_ = json.NewEncoder(w).Encode(payload)
	}
}
