package client

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MKhiriev/go-reward-keeper/models"
)

// readTransactions loads the JSON array of transactions stored at path.
func readTransactions(path string) ([]models.Transaction, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input file: %w", err)
	}

	var transactions []models.Transaction
	if err = json.Unmarshal(data, &transactions); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidInputFile, path, err)
	}

	return transactions, nil
}
