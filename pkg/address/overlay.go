package address

import (
	"fmt"

	"github.com/lilnounsdao/webapp-config/pkg/network"
)

// Overlay holds the addresses the webapp needs that the protocol registry
// does not know about.
type Overlay struct {
	// LidoToken is the stETH token accepted by the treasury, nil where Lido
	// is not deployed.
	LidoToken *string
}

// OverlayFor returns the overlay for id. Every supported network has an
// entry; an unsupported id panics.
func OverlayFor(id network.ID) Overlay {
	switch id {
	case network.Mainnet:
		return Overlay{LidoToken: strPtr("0xae7ab96520DE3A18E5e111B5EaAb095312D7fE84")}
	case network.Rinkeby:
		return Overlay{LidoToken: strPtr("0xF4242f9d78DB7218Ad72Ee3aE14469DBDE8731eD")}
	case network.Hardhat:
		return Overlay{LidoToken: nil}
	}
	panic(fmt.Sprintf("address: no overlay for %v", id))
}

// Set converts the overlay to an address set. Absent entries are kept as
// nil values so they cannot be filled in by another layer.
func (o Overlay) Set() Set {
	s := Set{LidoToken: nil}
	if o.LidoToken != nil {
		s[LidoToken] = ptr(*o.LidoToken)
	}
	return s
}

func strPtr(s string) *string {
	return &s
}
