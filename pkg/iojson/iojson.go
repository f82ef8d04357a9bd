// Package iojson writes and reads JSON documents for command line output.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// failureDocument is written to the error stream when a value cannot be
// marshaled, so scripts reading stderr still receive JSON.
type failureDocument struct {
	Message string `json:"message"`
	Cause   string `json:"cause"`
}

// WriteWith writes obj as indented JSON to w. Marshaling failures are
// reported to ew as a JSON document and returned.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		doc, _ := json.Marshal(failureDocument{Message: "cannot encode output", Cause: err.Error()})
		_, _ = fmt.Fprintln(ew, string(doc))
		return fmt.Errorf("marshal json: %w", err)
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}
