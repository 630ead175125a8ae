package main

import (
	"encoding/json"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/holloway-dev/variantsudoku/lib/builder"
)

// loadPuzzle reads a JSON-encoded builder.PuzzleDescription from path, or
// from stdin when path is "-".
func loadPuzzle(path string) (builder.PuzzleDescription, error) {
	var desc builder.PuzzleDescription

	var r io.Reader
	if path == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return desc, errors.Wrapf(err, "opening puzzle file %q", path)
		}
		defer f.Close()
		r = f
	}

	if err := json.NewDecoder(r).Decode(&desc); err != nil {
		return desc, errors.Wrap(err, "decoding puzzle description")
	}
	return desc, nil
}
