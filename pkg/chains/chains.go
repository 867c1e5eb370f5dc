// Package chains maps symbolic network names to EIP-155 chain ids.
//
// The pre-EIP-155 "no replay protection" case is represented by the explicit
// Legacy value (a nil chain id), never by a magic zero: chain id 0 is a real,
// if unused, EIP-155 value and must not double as a sentinel.
package chains

import (
	"fmt"
	"math/big"
	"sort"
)

// Legacy selects the pre-EIP-155 v encoding (27/28) with no replay
// protection folded into the signature.
var Legacy *big.Int

// Well-known networks.
var (
	Mainnet     = big.NewInt(1)
	Optimism    = big.NewInt(10)
	BSC         = big.NewInt(56)
	Gnosis      = big.NewInt(100)
	Polygon     = big.NewInt(137)
	Base        = big.NewInt(8453)
	Holesky     = big.NewInt(17000)
	ArbitrumOne = big.NewInt(42161)
	Avalanche   = big.NewInt(43114)
	Sepolia     = big.NewInt(11155111)
)

var byName = map[string]*big.Int{
	"legacy":       Legacy,
	"mainnet":      Mainnet,
	"optimism":     Optimism,
	"bsc":          BSC,
	"gnosis":       Gnosis,
	"polygon":      Polygon,
	"base":         Base,
	"holesky":      Holesky,
	"arbitrum-one": ArbitrumOne,
	"avalanche":    Avalanche,
	"sepolia":      Sepolia,
}

// ByName resolves a symbolic network name to its chain id. The name "legacy"
// resolves to the Legacy sentinel.
func ByName(name string) (*big.Int, error) {
	id, ok := byName[name]
	if !ok {
		return nil, fmt.Errorf("unknown network %q", name)
	}
	return id, nil
}

// Name returns the symbolic name of a chain id, or an empty string for ids
// not in the table. The Legacy sentinel maps back to "legacy".
func Name(id *big.Int) string {
	for name, known := range byName {
		if IsLegacy(id) && IsLegacy(known) {
			return "legacy"
		}
		if known != nil && id != nil && known.Cmp(id) == 0 {
			return name
		}
	}
	return ""
}

// Names lists all known symbolic network names in sorted order.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsLegacy reports whether id is the pre-EIP-155 sentinel.
func IsLegacy(id *big.Int) bool {
	return id == nil
}
