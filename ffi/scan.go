package main

import (
	"encoding/json"
	"fmt"

	"github.com/aicred/aicred/internal/engine"
	"github.com/aicred/aicred/internal/registry"
)

// scanJSON runs a scan from raw JSON options and serializes the result.
// It holds all the logic behind aicred_scan so it stays testable without
// crossing the C boundary.
func scanJSON(home string, optionsJSON []byte) ([]byte, error) {
	opts, err := engine.DecodeOptions(optionsJSON)
	if err != nil {
		return nil, err
	}
	res, err := engine.Scan(home, opts)
	if err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}
	return json.Marshal(res)
}

func providersJSON() []byte {
	b, _ := json.Marshal(registry.Default().ProviderNames())
	return b
}

func scannersJSON() []byte {
	b, _ := json.Marshal(registry.Default().ScannerNames())
	return b
}
