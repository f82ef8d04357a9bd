// Package compare defines the wire types of the remote comparison service and
// the HTTP client that talks to it.
package compare

// InputMode selects which pair of inputs is read on submit.
type InputMode string

const (
	ModeFile InputMode = "file"
	ModeText InputMode = "text"
)

// Toggle returns the other mode.
func (m InputMode) Toggle() InputMode {
	if m == ModeFile {
		return ModeText
	}
	return ModeFile
}

func (m InputMode) String() string { return string(m) }

// Multipart field names understood by the comparison service.
const (
	FieldSeq1File = "seq1_file"
	FieldSeq2File = "seq2_file"
	FieldSeq1Text = "seq1_text"
	FieldSeq2Text = "seq2_text"
)

// Source is one side of a comparison. Path is used in file mode and Text in
// text mode.
type Source struct {
	Path string
	Text string
}

// Request is a validated pair of sequence sources tagged with the mode that
// produced it.
type Request struct {
	Mode InputMode
	Seq1 Source
	Seq2 Source
}

// DiffType classifies a non-matching aligned position.
type DiffType string

const (
	DiffMismatch DiffType = "mismatch"
	DiffGap      DiffType = "gap"
)

// Label is the display label for the type. Unknown values display as-is.
func (t DiffType) Label() string {
	switch t {
	case DiffMismatch:
		return "mismatch"
	case DiffGap:
		return "gap"
	default:
		return string(t)
	}
}

// Difference is one non-matching aligned position.
type Difference struct {
	Position int      `json:"position"`
	Seq1Char string   `json:"seq1_char"`
	Seq2Char string   `json:"seq2_char"`
	Type     DiffType `json:"type"`
}

// Result is a successful comparison returned by the service.
type Result struct {
	Similarity        float64      `json:"similarity"`
	TotalPositions    int          `json:"total_positions"`
	Matches           int          `json:"matches"`
	Differences       int          `json:"differences"`
	Visualization     string       `json:"visualization"`
	DifferencesDetail []Difference `json:"differences_detail"`
	AlignedSeq1       string       `json:"aligned_seq1"`
	AlignedSeq2       string       `json:"aligned_seq2"`
	Score             float64      `json:"score,omitempty"`
}

// Consistent reports whether matches and differences add up to the total
// number of aligned positions.
func (r Result) Consistent() bool {
	return r.Matches+r.Differences == r.TotalPositions
}

// response is the envelope the service returns for both outcomes.
type response struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
	Result
}
