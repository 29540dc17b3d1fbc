package util

import (
	"encoding/json"
	"fmt"
	"os"

	"weather-dash/models/forecast"
)

// ReadForecastPayloadFromJSON loads a forecast Payload from JSON on disk.
func ReadForecastPayloadFromJSON(filePath string) (*forecast.Payload, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", filePath, err)
	}
	var p forecast.Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal forecast Payload: %w", err)
	}
	return &p, nil
}
