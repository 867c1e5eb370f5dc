package wallet

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// PrivateKeyLength is the byte length of a secp256k1 private scalar.
const PrivateKeyLength = 32

// curveOrder is n, the order of the secp256k1 group. Private scalars must lie
// in [1, n-1].
var curveOrder = ethcrypto.S256().Params().N

// KeyPair holds a secp256k1 private scalar together with its derived public
// point. The pair is immutable after construction: accessors return fresh
// copies or values computed on demand, and no operation mutates the key.
type KeyPair struct {
	priv *ecdsa.PrivateKey
}

// Generate draws a new private scalar from the process CSPRNG and derives its
// public point. The provider retries internally until the scalar falls in
// [1, n-1].
func Generate() (*KeyPair, error) {
	priv, err := ethcrypto.GenerateKey()
	if err != nil {
		return nil, fmt.Errorf("generate private key: %w", err)
	}
	return &KeyPair{priv: priv}, nil
}

// FromPrivateKey imports a raw 32-byte private scalar. Inputs of any other
// length, the all-zero scalar, and scalars >= n fail with ErrInvalidPrivateKey.
func FromPrivateKey(raw []byte) (*KeyPair, error) {
	if len(raw) != PrivateKeyLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidPrivateKey, PrivateKeyLength, len(raw))
	}
	d := new(big.Int).SetBytes(raw)
	if d.Sign() == 0 || d.Cmp(curveOrder) >= 0 {
		return nil, fmt.Errorf("%w: scalar outside [1, n-1]", ErrInvalidPrivateKey)
	}
	priv, err := ethcrypto.ToECDSA(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPrivateKey, err)
	}
	return &KeyPair{priv: priv}, nil
}

// FromPrivateKeyHex imports a hex-encoded private scalar, with or without the
// 0x prefix. Malformed hex surfaces as a decoding error; a well-formed string
// that is not a valid scalar fails with ErrInvalidPrivateKey.
func FromPrivateKeyHex(s string) (*KeyPair, error) {
	raw, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return nil, fmt.Errorf("decode private key hex: %w", err)
	}
	return FromPrivateKey(raw)
}

// FromPrivateKeyAuto imports a private key supplied either as raw 32 bytes or
// as hex text, detecting the encoding from the input itself.
func FromPrivateKeyAuto(input []byte) (*KeyPair, error) {
	if isHexKey(string(input)) {
		return FromPrivateKeyHex(string(input))
	}
	return FromPrivateKey(input)
}

// isHexKey reports whether s looks like a hex-encoded 32-byte key, with or
// without the 0x prefix. Raw 32-byte inputs can never satisfy this: they are
// too short once interpreted as text.
func isHexKey(s string) bool {
	s = strings.TrimPrefix(s, "0x")
	if len(s) != 2*PrivateKeyLength {
		return false
	}
	for _, c := range s {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// PrivateBytes returns the 32-byte big-endian private scalar.
func (k *KeyPair) PrivateBytes() []byte {
	return ethcrypto.FromECDSA(k.priv)
}

// PrivateHex returns the private scalar as unprefixed hex, matching the form
// accepted by FromPrivateKeyHex.
func (k *KeyPair) PrivateHex() string {
	return hex.EncodeToString(k.PrivateBytes())
}

// PublicBytes returns the public point in uncompressed form (0x04 tag, 65
// bytes) or compressed form (0x02/0x03 tag, 33 bytes).
func (k *KeyPair) PublicBytes(compressed bool) []byte {
	if compressed {
		return ethcrypto.CompressPubkey(&k.priv.PublicKey)
	}
	return ethcrypto.FromECDSAPub(&k.priv.PublicKey)
}

// PublicHex returns the serialized public point as unprefixed hex.
func (k *KeyPair) PublicHex(compressed bool) string {
	return hex.EncodeToString(k.PublicBytes(compressed))
}

// PublicKey returns a copy of the derived public point.
func (k *KeyPair) PublicKey() *ecdsa.PublicKey {
	pub := k.priv.PublicKey
	return &pub
}

// Address derives the EIP-55 checksummed account address from the
// uncompressed public point.
func (k *KeyPair) Address() Address {
	return PubkeyToAddress(&k.priv.PublicKey)
}

// PersonalSign signs an arbitrary message per the EIP-191 personal-sign
// convention and encodes the result as a 65-byte R || S || V signature.
// A nil chainID produces the pre-EIP-155 27/28 v encoding; otherwise the
// chain id is folded into v per EIP-155 for replay protection.
//
// Signing failures indicate a provider defect for a validly constructed
// KeyPair and are propagated unmasked, never retried.
func (k *KeyPair) PersonalSign(message []byte, chainID *big.Int) (Signature, error) {
	digest := PersonalDigest(message)
	raw, err := ethcrypto.Sign(digest, k.priv)
	if err != nil {
		return nil, fmt.Errorf("sign personal message: %w", err)
	}
	return withReplayProtection(raw, chainID)
}
