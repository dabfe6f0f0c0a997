package fixture

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"housing-fixtures/internal/models"
)

// Historical output file names for the clean and anomaly variants.
const (
	CleanFileName   = "large_housing_data_with_years.json"
	AnomalyFileName = "large_housing_data_with_10_percent_anomalies.json"
)

const indent = "    "

// Encode writes the dataset to w as JSON indented with four spaces.
func Encode(w io.Writer, dataset *models.HousingDataset) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", indent)
	if err := enc.Encode(dataset); err != nil {
		return fmt.Errorf("fixture: failed to encode dataset: %w", err)
	}
	return nil
}

// Write encodes the dataset into path. The document is written to a temporary
// file in the same directory and renamed into place only once it is complete,
// so a failed write never leaves a file at path.
func Write(path string, dataset *models.HousingDataset) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("fixture: failed to create output file: %w", err)
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err = tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("fixture: failed to set output permissions: %w", err)
	}
	if err = Encode(tmp, dataset); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("fixture: failed to flush output file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("fixture: failed to close output file: %w", err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("fixture: failed to move output into place: %w", err)
	}
	return nil
}

// Decode reads a fixture document from r.
func Decode(r io.Reader) (*models.DatasetDocument, error) {
	var doc models.DatasetDocument
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("fixture: failed to decode dataset: %w", err)
	}
	return &doc, nil
}

// Read decodes the fixture file at path.
func Read(path string) (*models.DatasetDocument, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: failed to open file: %w", err)
	}
	defer file.Close()

	return Decode(file)
}
