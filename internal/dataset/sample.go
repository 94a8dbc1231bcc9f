package dataset

import (
	"bytes"
	_ "embed"
)

// sampleCSV is a small excerpt of published World Happiness Report data,
// bundled so the tool works out of the box with no dataset argument.
//
//go:embed sample.csv
var sampleCSV []byte

// LoadSample parses the bundled sample dataset.
func LoadSample() (*Store, *LoadReport, error) {
	return Parse(bytes.NewReader(sampleCSV))
}

// Open loads the dataset at path, or the bundled sample when path is empty.
func Open(path string) (*Store, *LoadReport, error) {
	if path == "" {
		return LoadSample()
	}
	return Load(path)
}
