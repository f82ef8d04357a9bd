// Package export serializes the current comparison result to a JSON file.
package export

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/colonyops/seqcmp/internal/core/compare"
	"github.com/colonyops/seqcmp/internal/core/result"
	"github.com/colonyops/seqcmp/pkg/iojson"
)

// maxNameAttempts bounds the numeric suffixes tried when exports collide
// within the same second.
const maxNameAttempts = 100

// timestampLayout is ISO-8601 in UTC with millisecond precision.
const timestampLayout = "2006-01-02T15:04:05.000Z07:00"

// Record is the exported document. DifferencesDetail is always the full list.
type Record struct {
	Timestamp         string               `json:"timestamp"`
	Similarity        float64              `json:"similarity"`
	TotalPositions    int                  `json:"total_positions"`
	Matches           int                  `json:"matches"`
	Differences       int                  `json:"differences"`
	DifferencesDetail []compare.Difference `json:"differences_detail"`
	AlignedSequences  AlignedSequences     `json:"aligned_sequences"`
}

// AlignedSequences holds both sequences after alignment.
type AlignedSequences struct {
	Seq1 string `json:"seq1"`
	Seq2 string `json:"seq2"`
}

// Exporter writes the current result to a directory.
type Exporter struct {
	results result.Reader
	dir     string
	now     func() time.Time
}

// New returns an Exporter writing into dir. A nil now uses time.Now.
func New(results result.Reader, dir string, now func() time.Time) *Exporter {
	if now == nil {
		now = time.Now
	}
	if dir == "" {
		dir = "."
	}
	return &Exporter{results: results, dir: dir, now: now}
}

// Build returns the export record for the current result stamped with the
// current time. It fails with compare.ErrNoResult when there is no result.
func (e *Exporter) Build() (Record, error) {
	r, ok := e.results.Current()
	if !ok {
		return Record{}, compare.ErrNoResult
	}
	return NewRecord(r, e.now()), nil
}

// Export writes the current result and returns the path of the new file.
func (e *Exporter) Export() (string, error) {
	rec, err := e.Build()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	f, path, err := createUnique(e.dir, Filename(rec.Timestamp))
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}

	if err := Write(f, rec); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write export file: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}

	return path, nil
}

// createUnique creates name in dir without replacing an existing file. On a
// collision a numeric suffix is added before the extension: name-1.json,
// name-2.json and so on.
func createUnique(dir, name string) (*os.File, string, error) {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)

	for i := range maxNameAttempts {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s-%d%s", base, i, ext)
		}

		path := filepath.Join(dir, candidate)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if err == nil {
			return f, path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return nil, "", err
		}
	}
	return nil, "", fmt.Errorf("%s: %w", filepath.Join(dir, name), fs.ErrExist)
}

// NewRecord builds the export record for r at time t.
func NewRecord(r compare.Result, t time.Time) Record {
	detail := r.DifferencesDetail
	if detail == nil {
		detail = []compare.Difference{}
	}

	return Record{
		Timestamp:         Timestamp(t),
		Similarity:        r.Similarity,
		TotalPositions:    r.TotalPositions,
		Matches:           r.Matches,
		Differences:       r.Differences,
		DifferencesDetail: detail,
		AlignedSequences: AlignedSequences{
			Seq1: r.AlignedSeq1,
			Seq2: r.AlignedSeq2,
		},
	}
}

// Result rebuilds the comparison result carried by an exported record. The
// visualization is not exported and stays empty.
func (r Record) Result() compare.Result {
	return compare.Result{
		Similarity:        r.Similarity,
		TotalPositions:    r.TotalPositions,
		Matches:           r.Matches,
		Differences:       r.Differences,
		DifferencesDetail: r.DifferencesDetail,
		AlignedSeq1:       r.AlignedSequences.Seq1,
		AlignedSeq2:       r.AlignedSequences.Seq2,
	}
}

// Timestamp formats t as an ISO-8601 UTC timestamp.
func Timestamp(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

// Filename derives the export file name from an export timestamp: the
// timestamp is cut to whole seconds and colons become dashes.
func Filename(timestamp string) string {
	ts := timestamp
	if len(ts) > 19 {
		ts = ts[:19]
	}
	return "sequence_comparison_" + strings.ReplaceAll(ts, ":", "-") + ".json"
}

// Write encodes rec as indented JSON.
func Write(w io.Writer, rec Record) error {
	return iojson.WriteWith(w, io.Discard, rec)
}
