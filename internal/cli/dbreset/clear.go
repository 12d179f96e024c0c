package dbreset

import (
	"encoding/json"
	"os"
)

// emptyDocument renders an empty JSON array with two-space indentation.
func emptyDocument() ([]byte, error) {
	return json.MarshalIndent([]any{}, "", "  ")
}

func clearFile(path string) error {
	doc, err := emptyDocument()
	if err != nil {
		return err
	}
	return os.WriteFile(path, doc, 0o644)
}
