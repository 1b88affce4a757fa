// Package dataset loads the slang-definition dataset and its split files
// from JSON.
package dataset

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"

	"github.com/slanglab/slangvec/internal/domain/entities"
)

// Load reads and validates a dataset file.
func Load(path string) (*entities.Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset file: %w", err)
	}

	var ds entities.Dataset
	if err := json.Unmarshal(data, &ds); err != nil {
		return nil, fmt.Errorf("parsing dataset file: %w", err)
	}

	if err := validate(&ds); err != nil {
		return nil, fmt.Errorf("invalid dataset %s: %w", path, err)
	}

	return &ds, nil
}

// LoadSplits reads a split-index file and checks every index against the
// number of slang records.
func LoadSplits(path string, numRecords int) (*entities.SplitIndex, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading splits file: %w", err)
	}

	var splits entities.SplitIndex
	if err := json.Unmarshal(data, &splits); err != nil {
		return nil, fmt.Errorf("parsing splits file: %w", err)
	}

	for _, part := range []struct {
		name string
		ind  []int
	}{
		{entities.SplitTrain, splits.Train},
		{entities.SplitDev, splits.Dev},
		{entities.SplitTest, splits.Test},
	} {
		for _, i := range part.ind {
			if i < 0 || i >= numRecords {
				return nil, fmt.Errorf("split %s: index %d out of range [0,%d)", part.name, i, numRecords)
			}
		}
	}

	return &splits, nil
}

// validate checks structural invariants the encoders rely on: every vocab
// word has a conventional entry, and no slang record is empty.
func validate(ds *entities.Dataset) error {
	for _, word := range ds.Vocab {
		if _, ok := ds.Conv[word]; !ok {
			return fmt.Errorf("vocab word %q has no conventional definitions", word)
		}
	}
	for i, rec := range ds.Slang {
		if rec.Definition == "" {
			return fmt.Errorf("slang record %d has an empty definition", i)
		}
	}
	return nil
}
