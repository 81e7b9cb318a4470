package registry

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-mintgate/internal/adapter"
)

// DenylistRegistry defines the interface for sender denylist lookups
//
//go:generate mockgen -source=denylist.go -destination=../mocks/denylist_registry.go -package=mocks -mock_names=DenylistRegistry=MockDenylistRegistry
type DenylistRegistry interface {
	// IsDenied checks if a sender address is denied
	IsDenied(address string) bool
}

// DenylistData represents the structure of the denylist.json file:
// a flat list of sender addresses
type DenylistData []string

// denylistRegistry is the internal implementation of DenylistRegistry
type denylistRegistry struct {
	// Fast lookup map: lowercased address -> true
	addresses map[string]bool
}

// DenylistRegistryLoader loads denylist registries from JSON files
type DenylistRegistryLoader struct {
	fs   adapter.FileSystem
	json adapter.JSON
}

// NewDenylistRegistryLoader creates a new denylist registry loader
func NewDenylistRegistryLoader(fs adapter.FileSystem, json adapter.JSON) *DenylistRegistryLoader {
	return &DenylistRegistryLoader{fs: fs, json: json}
}

// Load loads the denylist registry from a JSON file
func (l *DenylistRegistryLoader) Load(filePath string) (DenylistRegistry, error) {
	data, err := l.fs.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read denylist file: %w", err)
	}

	// Parse JSON
	var denylistData DenylistData
	if err := l.json.Unmarshal(data, &denylistData); err != nil {
		return nil, fmt.Errorf("failed to parse denylist JSON: %w", err)
	}

	// Build lookup map, normalized to lower case
	dl := &denylistRegistry{
		addresses: make(map[string]bool),
	}
	for _, addr := range denylistData {
		dl.addresses[strings.ToLower(addr)] = true
	}

	return dl, nil
}

// IsDenied checks if a sender address is denied
func (d *denylistRegistry) IsDenied(address string) bool {
	if d == nil {
		return false
	}
	return d.addresses[strings.ToLower(address)]
}
