package registry

import (
	_ "embed"
	"sync"
)

//go:embed lilnouns/addresses.json
var lilNounsAddresses []byte

var (
	lilNounsOnce sync.Once
	lilNounsBook *Book
)

// LilNouns returns the address book of the Lil Nouns mainnet deployment
// compiled into the binary. Other networks are unknown to it; load the
// SDK's addresses.json with FromAddressesFile to cover them.
func LilNouns() *Book {
	lilNounsOnce.Do(func() {
		b, err := FromAddresses(lilNounsAddresses)
		if err != nil {
			panic(err)
		}
		lilNounsBook = b
	})
	return lilNounsBook
}
