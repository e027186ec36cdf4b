// Command nouns-config prints the webapp configuration resolved from the
// environment and, optionally, checks it against the configured RPC node.
//
// Usage:
//
//	nouns-config [-env-file .env]... [-prefix REACT_APP_] [-registry lilnouns|ecosystem|none]
//	             [-format json|yaml] [-all] [-check] [-dial-timeout 5s] [-read-timeout 12s] [-debug]
//
// The ecosystem registry loads SingularityNET contracts. It only shows the
// networks artifact layout and does not describe the Lil Nouns deployment.
package main

import (
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
