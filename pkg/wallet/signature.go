package wallet

import (
	"crypto/ecdsa"
	"encoding/json"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common/hexutil"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// SignatureLength is the byte length of a wire-format recoverable signature:
// 32-byte R, 32-byte S, one v byte.
const SignatureLength = 65

const (
	// legacyVOffset is added to the recovery id for pre-EIP-155 signatures.
	legacyVOffset = 27
	// eip155VOffset is added to chainID*2 + recoveryID for EIP-155 signatures.
	eip155VOffset = 35
)

// Signature is a 65-byte recoverable secp256k1 signature in R || S || V wire
// order.
type Signature []byte

// String returns the 0x-prefixed hex encoding of the signature.
func (s Signature) String() string {
	return hexutil.Encode(s)
}

// MarshalJSON implements the json.Marshaler interface, encoding the signature
// as a hex string.
func (s Signature) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *Signature) UnmarshalJSON(data []byte) error {
	var hexStr string
	if err := json.Unmarshal(data, &hexStr); err != nil {
		return err
	}
	decoded, err := hexutil.Decode(hexStr)
	if err != nil {
		return err
	}
	*s = decoded
	return nil
}

// ParseSignature decodes a 0x-prefixed hex signature and checks its length.
func ParseSignature(hexStr string) (Signature, error) {
	decoded, err := hexutil.Decode(hexStr)
	if err != nil {
		return nil, fmt.Errorf("decode signature hex: %w", err)
	}
	if len(decoded) != SignatureLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignature, SignatureLength, len(decoded))
	}
	return Signature(decoded), nil
}

// withReplayProtection turns a provider signature carrying a raw 0/1 recovery
// id into the wire form. A nil chainID selects the pre-EIP-155 27/28
// encoding; otherwise v = chainID*2 + 35 + recoveryID per EIP-155.
func withReplayProtection(raw []byte, chainID *big.Int) (Signature, error) {
	if len(raw) != SignatureLength {
		return nil, fmt.Errorf("%w: expected %d bytes from provider, got %d", ErrInvalidSignature, SignatureLength, len(raw))
	}
	recID := raw[64]
	if recID > 1 {
		return nil, fmt.Errorf("%w: recovery id %d out of range", ErrInvalidSignature, recID)
	}
	sig := make(Signature, SignatureLength)
	copy(sig, raw)
	if chainID == nil {
		sig[64] = legacyVOffset + recID
		return sig, nil
	}
	v := new(big.Int).Lsh(chainID, 1)
	v.Add(v, big.NewInt(int64(eip155VOffset+recID)))
	if v.BitLen() > 8 {
		return nil, fmt.Errorf("%w: chain id %s", ErrChainIDRange, chainID)
	}
	sig[64] = byte(v.Uint64())
	return sig, nil
}

// normalizeRecoveryID maps any accepted v encoding (raw 0/1, legacy 27/28,
// EIP-155) back to the 0/1 recovery id.
func normalizeRecoveryID(v byte) (byte, error) {
	switch {
	case v <= 1:
		return v, nil
	case v == 27 || v == 28:
		return v - legacyVOffset, nil
	case v >= eip155VOffset:
		return (v - eip155VOffset) % 2, nil
	default:
		return 0, fmt.Errorf("%w: v byte %d", ErrInvalidSignature, v)
	}
}

// RecoverPublicKey recovers the signing public key from a 32-byte digest and
// a recoverable signature in any of the accepted v encodings.
func RecoverPublicKey(digest []byte, sig Signature) (*ecdsa.PublicKey, error) {
	if len(digest) != DigestLength {
		return nil, fmt.Errorf("invalid digest length: expected %d bytes, got %d", DigestLength, len(digest))
	}
	if len(sig) != SignatureLength {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidSignature, SignatureLength, len(sig))
	}
	recID, err := normalizeRecoveryID(sig[64])
	if err != nil {
		return nil, err
	}
	plain := make([]byte, SignatureLength)
	copy(plain, sig)
	plain[64] = recID
	pub, err := ethcrypto.SigToPub(digest, plain)
	if err != nil {
		return nil, fmt.Errorf("recover public key: %w", err)
	}
	return pub, nil
}

// RecoverAddress recovers the signer address of an EIP-191 personal message.
func RecoverAddress(message []byte, sig Signature) (Address, error) {
	pub, err := RecoverPublicKey(PersonalDigest(message), sig)
	if err != nil {
		return Address{}, err
	}
	return PubkeyToAddress(pub), nil
}

// Verify reports whether sig is a valid personal-message signature over
// message by the holder of addr.
func Verify(message []byte, sig Signature, addr Address) (bool, error) {
	recovered, err := RecoverAddress(message, sig)
	if err != nil {
		return false, err
	}
	return recovered == addr, nil
}
