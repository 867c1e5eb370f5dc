package wallet

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// AddressLength is the byte length of an Ethereum account address.
const AddressLength = 20

// Address is a 20-byte Ethereum account address.
type Address [AddressLength]byte

// PubkeyToAddress derives the account address of a public key: the last 20
// bytes of Keccak256(X || Y), where X || Y is the uncompressed point with its
// 0x04 tag dropped.
func PubkeyToAddress(pub *ecdsa.PublicKey) Address {
	uncompressed := ethcrypto.FromECDSAPub(pub)
	digest := ethcrypto.Keccak256(uncompressed[1:])
	var addr Address
	copy(addr[:], digest[len(digest)-AddressLength:])
	return addr
}

// ParseAddress decodes a 40-digit hex address, with or without the 0x prefix.
// Casing is ignored here; use ValidChecksum for strict EIP-55 validation.
func ParseAddress(s string) (Address, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return Address{}, fmt.Errorf("decode address hex: %w", err)
	}
	if len(raw) != AddressLength {
		return Address{}, fmt.Errorf("invalid address length: expected %d bytes, got %d", AddressLength, len(raw))
	}
	var addr Address
	copy(addr[:], raw)
	return addr, nil
}

// Bytes returns the raw 20-byte address.
func (a Address) Bytes() []byte {
	return a[:]
}

// Hex returns the 0x-prefixed EIP-55 mixed-case rendering of the address.
func (a Address) Hex() string {
	return "0x" + checksumHex(a)
}

// String implements the fmt.Stringer interface.
func (a Address) String() string {
	return a.Hex()
}

// checksumHex applies EIP-55 casing: render the address as lowercase hex,
// hash that ASCII text with Keccak-256, and uppercase every hex letter whose
// matching nibble in the hash is >= 8. Decimal digits are left untouched.
func checksumHex(a Address) string {
	out := []byte(hex.EncodeToString(a[:]))
	sum := ethcrypto.Keccak256(out)
	for i, c := range out {
		if c < 'a' || c > 'f' {
			continue
		}
		nibble := sum[i/2] >> 4
		if i%2 == 1 {
			nibble = sum[i/2] & 0x0f
		}
		if nibble >= 8 {
			out[i] = c - ('a' - 'A')
		}
	}
	return string(out)
}

// ValidChecksum reports whether s carries a correct EIP-55 checksum. Any
// flipped letter case, including an all-lowercase rendering, fails.
func ValidChecksum(s string) bool {
	addr, err := ParseAddress(s)
	if err != nil {
		return false
	}
	return strings.TrimPrefix(s, "0x") == checksumHex(addr)
}
