package secrets

import (
	"encoding/json"
	"fmt"
	"os"
)

// Secrets is a two-level lookup loaded from a JSON file: owner (which
// service the credential belongs to) to kind (token, password, ...) to
// value.
type Secrets struct {
	values map[string]map[string]string
}

func Load(path string) (*Secrets, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("secrets: %w", err)
	}

	var values map[string]map[string]string
	if err := json.Unmarshal(raw, &values); err != nil {
		return nil, fmt.Errorf("secrets: parsing %s: %w", path, err)
	}
	return &Secrets{values: values}, nil
}

// Get returns the credential for owner/kind. A missing owner or kind is an
// error; there are no fallback values.
func (s *Secrets) Get(owner, kind string) (string, error) {
	kinds, ok := s.values[owner]
	if !ok {
		return "", fmt.Errorf("secrets: no entry for %q", owner)
	}
	value, ok := kinds[kind]
	if !ok {
		return "", fmt.Errorf("secrets: no %q entry for %q", kind, owner)
	}
	return value, nil
}
