package llm

import (
	"encoding/json"
)

// MockClient is a mock extraction client for testing.
type MockClient struct {
	Response interface{} // The response to return
	Error    error       // Error to return (if any)
}

// GenerateStructuredMock is the generic counterpart of GenerateStructured
// for the mock client. The canned response is either *T already or gets
// there through a JSON round-trip.
func GenerateStructuredMock[T any](
	client *MockClient,
	validate func(*T) error,
) (*T, error) {
	if client.Error != nil {
		return nil, client.Error
	}

	if result, ok := client.Response.(*T); ok {
		if validate != nil {
			if err := validate(result); err != nil {
				return nil, err
			}
		}
		return result, nil
	}

	data, err := json.Marshal(client.Response)
	if err != nil {
		return nil, err
	}

	var result T
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	if validate != nil {
		if err := validate(&result); err != nil {
			return nil, err
		}
	}

	return &result, nil
}
