// Package comparetest provides fixtures and a fake comparison service for
// tests.
package comparetest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/colonyops/seqcmp/internal/core/compare"
)

// Differences returns n difference records in ascending position order,
// alternating mismatch and gap.
func Differences(n int) []compare.Difference {
	out := make([]compare.Difference, 0, n)
	for i := range n {
		d := compare.Difference{Position: i + 1, Seq1Char: "A", Seq2Char: "C", Type: compare.DiffMismatch}
		if i%2 == 1 {
			d.Seq2Char = "-"
			d.Type = compare.DiffGap
		}
		out = append(out, d)
	}
	return out
}

// Result returns a consistent result with n differences over n+10 positions.
func Result(n int) compare.Result {
	total := n + 10
	return compare.Result{
		Similarity:        float64(10) / float64(total) * 100,
		TotalPositions:    total,
		Matches:           10,
		Differences:       n,
		Visualization:     `<div class="sequence-visualization"><div class="sequence-line"><span class="sequence-label">Seq1:</span><span class="match">A</span></div></div>`,
		DifferencesDetail: Differences(n),
		AlignedSeq1:       strings.Repeat("A", total),
		AlignedSeq2:       strings.Repeat("A", 10) + strings.Repeat("C", n),
	}
}

// Identical is the result of comparing two equal 10-character sequences.
func Identical() compare.Result {
	return compare.Result{
		Similarity:        100,
		TotalPositions:    10,
		Matches:           10,
		Differences:       0,
		DifferencesDetail: []compare.Difference{},
		AlignedSeq1:       "ACGTACGTAC",
		AlignedSeq2:       "ACGTACGTAC",
	}
}

// Server is a fake comparison service.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	requests []*http.Request
	forms    []map[string]string
	reply    func(r *http.Request) (int, any)
	samples  map[string]string
}

// NewServer starts a fake service that answers /compare with reply and
// /sample_data/{name} from samples. The server is closed when the test ends.
func NewServer(t *testing.T, reply func(r *http.Request) (int, any), samples map[string]string) *Server {
	t.Helper()

	s := &Server{reply: reply, samples: samples}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /compare", s.handleCompare)
	mux.HandleFunc("GET /sample_data/{name}", s.handleSample)

	s.Server = httptest.NewServer(mux)
	t.Cleanup(s.Close)
	return s
}

// Success replies with a successful envelope around r.
func Success(r compare.Result) func(*http.Request) (int, any) {
	return func(*http.Request) (int, any) {
		return http.StatusOK, envelope(r)
	}
}

// Failure replies with the comparison service's error shape.
func Failure(status int, msg string) func(*http.Request) (int, any) {
	return func(*http.Request) (int, any) {
		return status, map[string]any{"success": false, "error": msg}
	}
}

func envelope(r compare.Result) map[string]any {
	raw, _ := json.Marshal(r)
	m := map[string]any{}
	_ = json.Unmarshal(raw, &m)
	m["success"] = true
	return m
}

// Requests returns the number of /compare requests received.
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.requests)
}

// LastForm returns the text fields and file names of the last request.
func (s *Server) LastForm() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.forms) == 0 {
		return nil
	}
	return s.forms[len(s.forms)-1]
}

func (s *Server) handleCompare(w http.ResponseWriter, r *http.Request) {
	form := map[string]string{}
	if err := r.ParseMultipartForm(1 << 20); err == nil {
		for k, v := range r.MultipartForm.Value {
			if len(v) > 0 {
				form[k] = v[0]
			}
		}
		for k, v := range r.MultipartForm.File {
			if len(v) > 0 {
				form[k] = v[0].Filename
			}
		}
	}

	s.mu.Lock()
	s.requests = append(s.requests, r)
	s.forms = append(s.forms, form)
	s.mu.Unlock()

	status, body := s.reply(r)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if str, ok := body.(string); ok {
		_, _ = w.Write([]byte(str))
		return
	}
	_ = json.NewEncoder(w).Encode(body)
}

func (s *Server) handleSample(w http.ResponseWriter, r *http.Request) {
	data, ok := s.samples[r.PathValue("name")]
	if !ok {
		http.Error(w, "file not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte(data))
}
