package main

import (
	"fmt"
	"os"
)

// openFile opens path as a plain file source for bulk replay via
// Decoder.InputFile.
func openFile(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file %s: %w", path, err)
	}
	return f, nil
}
