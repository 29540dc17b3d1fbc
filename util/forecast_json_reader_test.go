package util

import (
	"os"
	"path/filepath"
	"testing"
)

func createTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "forecast.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

func TestReadForecastPayloadFromJSON(t *testing.T) {
	// Arrange
	content := `{
		"cod": "200",
		"cnt": 1,
		"list": [
			{
				"dt": 1702980000,
				"main": {"temp": 300, "pressure": 1012, "humidity": 61},
				"weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}],
				"visibility": 8000,
				"dt_txt": "2023-12-19 09:00:00"
			}
		],
		"city": {"name": "Sylhet", "country": "BD", "timezone": 21600}
	}`
	path := createTempFile(t, content)

	// Act
	payload, err := ReadForecastPayloadFromJSON(path)

	// Assert
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if payload.City.Name != "Sylhet" {
		t.Errorf("Expected city 'Sylhet', got %s", payload.City.Name)
	}
	if len(payload.List) != 1 {
		t.Fatalf("Expected 1 entry, got %d", len(payload.List))
	}
	if payload.List[0].Visibility == nil || *payload.List[0].Visibility != 8000 {
		t.Errorf("Expected visibility 8000, got %v", payload.List[0].Visibility)
	}
	if payload.List[0].Wind != nil {
		t.Errorf("Expected missing wind to stay nil, got %+v", payload.List[0].Wind)
	}
}

func TestReadForecastPayloadFromJSON_MissingFile(t *testing.T) {
	_, err := ReadForecastPayloadFromJSON(filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("Expected an error for a missing file")
	}
}

func TestReadForecastPayloadFromJSON_InvalidJSON(t *testing.T) {
	path := createTempFile(t, `{"list": [}`)

	_, err := ReadForecastPayloadFromJSON(path)
	if err == nil {
		t.Fatal("Expected an error for invalid JSON")
	}
}
