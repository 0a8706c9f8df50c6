package profile

import (
	"fmt"
	"sort"
	"sync"
)

var (
	regMu    sync.RWMutex
	registry = map[string]Profile{}
)

// Register stores a profile under its name, replacing any earlier entry.
func Register(p Profile) {
	regMu.Lock()
	defer regMu.Unlock()
	registry[p.Name] = p
}

// Lookup returns the profile registered under name.
func Lookup(name string) (Profile, error) {
	regMu.RLock()
	defer regMu.RUnlock()
	p, ok := registry[name]
	if !ok {
		return Profile{}, fmt.Errorf("profile %q not found", name)
	}
	return p, nil
}

// Names returns the registered profile names, sorted.
func Names() []string {
	regMu.RLock()
	defer regMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
