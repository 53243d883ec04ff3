package llm

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Fixture represents a recorded extraction interaction for testing.
type Fixture struct {
	Name      string          `json:"name"`
	Input     json.RawMessage `json:"input"`
	Output    json.RawMessage `json:"output"`
	Model     string          `json:"model"`
	Timestamp time.Time       `json:"timestamp"`
}

// UnmarshalInput unmarshals the fixture input into the specified type.
func (f *Fixture) UnmarshalInput(v interface{}) error {
	return json.Unmarshal(f.Input, v)
}

// UnmarshalOutput unmarshals the fixture output into the specified type.
func (f *Fixture) UnmarshalOutput(v interface{}) error {
	return json.Unmarshal(f.Output, v)
}

// LoadFixture loads a recorded extraction from the testdata directory.
func LoadFixture(name string) (*Fixture, error) {
	fixturePath := filepath.Join("testdata", "fixtures", name+".json")

	data, err := os.ReadFile(fixturePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("fixture not found: %s", name)
		}
		return nil, fmt.Errorf("read fixture %s: %w", name, err)
	}

	var fixture Fixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parse fixture %s (invalid JSON): %w", name, err)
	}

	if fixture.Name == "" {
		return nil, fmt.Errorf("fixture %s: missing 'name' field", name)
	}
	if fixture.Model == "" {
		return nil, fmt.Errorf("fixture %s: missing 'model' field", name)
	}
	if len(fixture.Input) == 0 {
		return nil, fmt.Errorf("fixture %s: missing 'input' field", name)
	}
	if len(fixture.Output) == 0 {
		return nil, fmt.Errorf("fixture %s: missing 'output' field", name)
	}

	return &fixture, nil
}
