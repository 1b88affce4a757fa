package entities

// Split names for the encoded dataset.
const (
	SplitTrain    = "train"
	SplitDev      = "dev"
	SplitTest     = "test"
	SplitStandard = "standard"
)

// EncodedDataset holds one sentence vector per definition, grouped by split.
// Vectors within a split are ordered exactly as the sentences were consumed.
// Test is nil when test encoding was not requested.
type EncodedDataset struct {
	Train    [][]float32
	Dev      [][]float32
	Test     [][]float32
	Standard [][]float32
}

// Splits returns the non-nil splits keyed by name. Test is present only
// when it was encoded.
func (e *EncodedDataset) Splits() map[string][][]float32 {
	splits := map[string][][]float32{
		SplitTrain:    e.Train,
		SplitDev:      e.Dev,
		SplitStandard: e.Standard,
	}
	if e.Test != nil {
		splits[SplitTest] = e.Test
	}
	return splits
}

// DefinitionVector is one encoded definition sentence ready for vector
// storage, with enough payload to trace it back to its split position.
type DefinitionVector struct {
	ID        string
	Split     string
	Position  int
	Embedding []float32
}
