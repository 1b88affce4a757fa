// Package vectorio writes encoded datasets to disk and reads them back:
// one .npy matrix per split plus a JSON manifest describing the run.
package vectorio

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"
	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/slanglab/slangvec/internal/domain/entities"
)

// ManifestFile is the manifest name inside an output directory.
const ManifestFile = "manifest.json"

// SplitFile locates one split's vectors within the output directory.
// File is empty for splits that were encoded but held no sentences.
type SplitFile struct {
	File  string `json:"file,omitempty"`
	Count int    `json:"count"`
}

// Manifest describes one encoding run.
type Manifest struct {
	Encoder string               `json:"encoder"`
	Dim     int                  `json:"dim"`
	Splits  map[string]SplitFile `json:"splits"`
}

// WriteEncoded writes every split of enc under dir as <name>_<split>.npy
// and a manifest.json. The test split is absent from the manifest when it
// was not encoded.
func WriteEncoded(dir, name, encoderName string, enc *entities.EncodedDataset) (*Manifest, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	manifest := &Manifest{
		Encoder: encoderName,
		Splits:  make(map[string]SplitFile),
	}

	for split, vectors := range enc.Splits() {
		if len(vectors) == 0 {
			manifest.Splits[split] = SplitFile{Count: 0}
			continue
		}
		if manifest.Dim == 0 {
			manifest.Dim = len(vectors[0])
		}

		file := fmt.Sprintf("%s_%s.npy", name, split)
		if err := writeMatrix(filepath.Join(dir, file), vectors); err != nil {
			return nil, fmt.Errorf("writing %s split: %w", split, err)
		}
		manifest.Splits[split] = SplitFile{File: file, Count: len(vectors)}
	}

	data, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("serializing manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), data, 0644); err != nil {
		return nil, fmt.Errorf("writing manifest: %w", err)
	}

	return manifest, nil
}

// ReadManifest reads the manifest from an output directory.
func ReadManifest(dir string) (*Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("reading manifest: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return &manifest, nil
}

// ReadSplit reads one split's vectors back from the output directory.
func ReadSplit(dir string, sf SplitFile) ([][]float32, error) {
	if sf.File == "" {
		return nil, nil
	}

	f, err := os.Open(filepath.Join(dir, sf.File))
	if err != nil {
		return nil, fmt.Errorf("opening split file: %w", err)
	}
	defer f.Close()

	var m mat.Dense
	if err := npyio.Read(f, &m); err != nil {
		return nil, fmt.Errorf("reading split matrix: %w", err)
	}

	rows, cols := m.Dims()
	if rows != sf.Count {
		return nil, fmt.Errorf("split file has %d rows, manifest says %d", rows, sf.Count)
	}

	vectors := make([][]float32, rows)
	for i := 0; i < rows; i++ {
		vec := make([]float32, cols)
		for j := 0; j < cols; j++ {
			vec[j] = float32(m.At(i, j))
		}
		vectors[i] = vec
	}
	return vectors, nil
}

func writeMatrix(path string, vectors [][]float32) error {
	rows := len(vectors)
	cols := len(vectors[0])

	flat := make([]float64, 0, rows*cols)
	for i, vec := range vectors {
		if len(vec) != cols {
			return fmt.Errorf("row %d has length %d, want %d", i, len(vec), cols)
		}
		for _, v := range vec {
			flat = append(flat, float64(v))
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}

	if err := npyio.Write(f, mat.NewDense(rows, cols, flat)); err != nil {
		_ = f.Close()
		return fmt.Errorf("writing matrix: %w", err)
	}
	return f.Close()
}
