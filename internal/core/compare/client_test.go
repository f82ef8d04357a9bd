package compare

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const okBody = `{
  "success": true,
  "similarity": 91.67,
  "total_positions": 12,
  "matches": 11,
  "differences": 1,
  "visualization": "<div class=\"sequence-visualization\"></div>",
  "differences_detail": [{"position": 12, "seq1_char": "G", "seq2_char": "C", "type": "mismatch"}],
  "aligned_seq1": "ATCGATCGATCG",
  "aligned_seq2": "ATCGATCGATCC",
  "score": 21.0
}`

func TestClient_Compare_text_mode_sends_text_fields(t *testing.T) {
	var got map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/compare", r.URL.Path)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		got = map[string]string{
			FieldSeq1Text: r.FormValue(FieldSeq1Text),
			FieldSeq2Text: r.FormValue(FieldSeq2Text),
		}
		assert.Empty(t, r.MultipartForm.File)

		_, _ = io.WriteString(w, okBody)
	}))
	defer srv.Close()

	c := NewClient(srv.URL + "/")
	res, err := c.Compare(context.Background(), Request{
		Mode: ModeText,
		Seq1: Source{Text: "ATCGATCGATCG"},
		Seq2: Source{Text: "ATCGATCGATCC"},
	})
	require.NoError(t, err)

	assert.Equal(t, "ATCGATCGATCG", got[FieldSeq1Text])
	assert.Equal(t, "ATCGATCGATCC", got[FieldSeq2Text])
	assert.InDelta(t, 91.67, res.Similarity, 0.0001)
	assert.Equal(t, 12, res.TotalPositions)
	require.Len(t, res.DifferencesDetail, 1)
	assert.Equal(t, DiffMismatch, res.DifferencesDetail[0].Type)
	assert.True(t, res.Consistent())
}

func TestClient_Compare_file_mode_sends_file_parts(t *testing.T) {
	dir := t.TempDir()
	p1 := filepath.Join(dir, "seq1.fasta")
	p2 := filepath.Join(dir, "seq2.fasta")
	require.NoError(t, os.WriteFile(p1, []byte(">s1\nACGT\n"), 0o644))
	require.NoError(t, os.WriteFile(p2, []byte(">s2\nACGA\n"), 0o644))

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Empty(t, r.FormValue(FieldSeq1Text))

		f, hdr, err := r.FormFile(FieldSeq1File)
		require.NoError(t, err)
		data, _ := io.ReadAll(f)
		assert.Equal(t, "seq1.fasta", hdr.Filename)
		assert.Equal(t, ">s1\nACGT\n", string(data))

		_, hdr2, err := r.FormFile(FieldSeq2File)
		require.NoError(t, err)
		assert.Equal(t, "seq2.fasta", hdr2.Filename)

		_, _ = io.WriteString(w, okBody)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Compare(context.Background(), Request{
		Mode: ModeFile,
		Seq1: Source{Path: p1},
		Seq2: Source{Path: p2},
	})
	require.NoError(t, err)
}

func TestClient_Compare_failures(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		wantKind Kind
		wantMsg  string
	}{
		{
			name:     "success flag false",
			status:   http.StatusOK,
			body:     `{"success": false, "error": "invalid characters in sequence"}`,
			wantKind: KindService,
			wantMsg:  "invalid characters in sequence",
		},
		{
			name:     "error body without success flag",
			status:   http.StatusBadRequest,
			body:     `{"error": "please provide two sequences"}`,
			wantKind: KindService,
			wantMsg:  "please provide two sequences",
		},
		{
			name:     "failure without message",
			status:   http.StatusInternalServerError,
			body:     `{}`,
			wantKind: KindService,
			wantMsg:  "comparison failed",
		},
		{
			name:     "non JSON body",
			status:   http.StatusBadGateway,
			body:     `<html>bad gateway</html>`,
			wantKind: KindTransport,
			wantMsg:  "invalid response from server (status 502)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL).Compare(context.Background(), Request{
				Mode: ModeText,
				Seq1: Source{Text: "A"},
				Seq2: Source{Text: "C"},
			})
			require.Error(t, err)
			assert.True(t, IsKind(err, tt.wantKind), "kind: %v", err)

			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.wantMsg, e.Message)
		})
	}
}

func TestClient_Compare_network_error_is_transport(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url).Compare(context.Background(), Request{
		Mode: ModeText,
		Seq1: Source{Text: "A"},
		Seq2: Source{Text: "C"},
	})
	assert.True(t, IsKind(err, KindTransport))
}

func TestClient_Compare_timeout_is_transport(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(2 * time.Second):
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, WithTimeout(50*time.Millisecond), WithLogger(zerolog.Nop()))
	assert.Equal(t, 50*time.Millisecond, c.http.Timeout)

	_, err := c.Compare(context.Background(), Request{
		Mode: ModeText,
		Seq1: Source{Text: "A"},
		Seq2: Source{Text: "C"},
	})
	assert.True(t, IsKind(err, KindTransport))
}

func TestNewClient_does_not_share_http_client(t *testing.T) {
	a := NewClient("http://a", WithTimeout(time.Second))
	b := NewClient("http://b")

	assert.NotSame(t, a.http, b.http)
	assert.NotSame(t, http.DefaultClient, a.http)
	assert.Zero(t, b.http.Timeout)
}

func TestClient_SampleData(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sample_data/seq1.fasta" {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		_, _ = io.WriteString(w, ">seq1\nACGT\n")
	}))
	defer srv.Close()

	c := NewClient(srv.URL)

	got, err := c.SampleData(context.Background(), "seq1.fasta")
	require.NoError(t, err)
	assert.Equal(t, ">seq1\nACGT\n", got)

	_, err = c.SampleData(context.Background(), "missing.fasta")
	assert.ErrorContains(t, err, "status 404")
}

type countingSource struct {
	calls atomic.Int32
}

func (s *countingSource) SampleData(_ context.Context, name string) (string, error) {
	s.calls.Add(1)
	return "data:" + name, nil
}

func TestSampleLoader_caches(t *testing.T) {
	src := &countingSource{}
	l := NewSampleLoader(src, time.Minute)

	for range 3 {
		got, err := l.SampleData(context.Background(), "seq1.fasta")
		require.NoError(t, err)
		assert.Equal(t, "data:seq1.fasta", got)
	}
	assert.Equal(t, int32(1), src.calls.Load())
}

func TestSampleLoader_zero_ttl_disables_cache(t *testing.T) {
	src := &countingSource{}
	l := NewSampleLoader(src, 0)

	_, _ = l.SampleData(context.Background(), "a")
	_, _ = l.SampleData(context.Background(), "a")
	assert.Equal(t, int32(2), src.calls.Load())
}

func TestMatchesPatterns(t *testing.T) {
	tests := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"/tmp/seq1.fasta", DefaultFilePatterns, true},
		{"seq.FA", DefaultFilePatterns, true},
		{"notes.txt", DefaultFilePatterns, true},
		{"image.png", DefaultFilePatterns, false},
		{"image.png", nil, true},
		{"reads.fastq", []string{"*.fastq", "*.fasta"}, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchesPatterns(tt.path, tt.patterns), tt.path)
	}
}

func TestInputMode_Toggle(t *testing.T) {
	assert.Equal(t, ModeText, ModeFile.Toggle())
	assert.Equal(t, ModeFile, ModeText.Toggle())
}

func TestDiffType_Label(t *testing.T) {
	assert.Equal(t, "mismatch", DiffMismatch.Label())
	assert.Equal(t, "gap", DiffGap.Label())
	assert.Equal(t, "insertion", DiffType("insertion").Label())
}
