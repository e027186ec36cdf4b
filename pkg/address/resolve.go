// Package address resolves the contract addresses for the active network by
// combining a protocol address registry with the webapp's own overlay.
package address

import (
	"github.com/lilnounsdao/webapp-config/pkg/network"
	"go.uber.org/zap"
)

// Registry is an authoritative source of protocol contract addresses. Lookup
// must either return a complete set or an error, never a partial set.
type Registry interface {
	Lookup(id network.ID) (Set, error)
}

// RegistryOutcome records how the registry layer was obtained.
type RegistryOutcome int

const (
	// RegistryFound means the registry answered for the network.
	RegistryFound RegistryOutcome = iota
	// RegistryAbsorbed means the registry failed and an empty layer was used.
	RegistryAbsorbed
)

func (o RegistryOutcome) String() string {
	if o == RegistryAbsorbed {
		return "absorbed"
	}
	return "found"
}

// Resolution is the result of Resolve. It always carries a usable Set.
type Resolution struct {
	Addresses Set
	Registry  RegistryOutcome
	// Err is the registry error that was absorbed, nil when Registry is
	// RegistryFound.
	Err error
	// Collisions lists names present in both layers, sorted. The overlay
	// value was kept for each.
	Collisions []string
}

// Resolve merges the registry layer and the overlay layer for id. A
// registry failure, or a nil registry, degrades to an empty registry layer.
// Overlay entries are applied last and win on collision, including entries
// that are explicitly absent.
func Resolve(id network.ID, reg Registry) Resolution {
	res := Resolution{Registry: RegistryFound}

	var registryLayer Set
	if reg == nil {
		res.Registry = RegistryAbsorbed
	} else if set, err := reg.Lookup(id); err != nil {
		res.Registry = RegistryAbsorbed
		res.Err = err
	} else {
		registryLayer = set
	}

	if res.Registry == RegistryAbsorbed {
		zap.L().Warn("address registry unavailable, using overlay only",
			zap.Stringer("network", id),
			zap.Error(res.Err))
	}

	overlay := OverlayFor(id).Set()
	merged := make(Set, len(registryLayer)+len(overlay))
	for name, addr := range registryLayer.Clone() {
		merged[name] = addr
	}
	for _, name := range overlay.Names() {
		if _, dup := merged[name]; dup {
			res.Collisions = append(res.Collisions, name)
		}
		merged[name] = overlay[name]
	}

	if len(res.Collisions) > 0 {
		zap.L().Warn("address overlay shadows registry entries",
			zap.Stringer("network", id),
			zap.Strings("names", res.Collisions))
	}

	res.Addresses = merged
	return res
}
