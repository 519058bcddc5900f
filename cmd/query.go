package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/PaesslerAG/jsonpath"
)

// writeJSON writes v as indented JSON. A non empty query selects a part of
// the document with a JSONPath expression, such as "$.compoundTotal".
func writeJSON(w io.Writer, v any, query string) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("cannot marshal result: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("cannot read result: %w", err)
	}
	if query != "" {
		doc, err = jsonpath.Get(query, doc)
		if err != nil {
			return fmt.Errorf("invalid query %q: %w", query, err)
		}
	}
	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
