// Package entities defines the core domain types for slang embedding encoding.
package entities

// SlangRecord is a single slang usage record with its definition sentence.
type SlangRecord struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

// Definition is one stored sense definition of a conventional word.
type Definition struct {
	Text string `json:"def"`
}

// ConvWord holds the sense definitions of one conventional vocabulary word,
// in their stored order.
type ConvWord struct {
	Definitions []Definition `json:"definitions"`
}

// Dataset is the slang-definition dataset consumed by the encoders.
// Vocab is the conventional vocabulary in its canonical order; every vocab
// word has an entry in Conv.
type Dataset struct {
	Vocab []string            `json:"vocab"`
	Slang []SlangRecord       `json:"slang"`
	Conv  map[string]ConvWord `json:"conventional"`
}

// SplitIndex partitions the slang records into train/dev/test by index
// into Dataset.Slang.
type SplitIndex struct {
	Train []int `json:"train"`
	Dev   []int `json:"dev"`
	Test  []int `json:"test"`
}
