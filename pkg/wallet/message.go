package wallet

import (
	"strconv"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
)

// DigestLength is the byte length of a Keccak-256 message digest.
const DigestLength = 32

// personalPrefix is the EIP-191 "personal message" header. The leading 0x19
// byte can never start an RLP-encoded transaction, so a signed personal
// message cannot collide with a signed transaction.
const personalPrefix = "\x19Ethereum Signed Message:\n"

// PersonalMessage frames a message per EIP-191: the 0x19 prefix, the ASCII
// header, the decimal message length, then the message itself.
func PersonalMessage(message []byte) []byte {
	framed := make([]byte, 0, len(personalPrefix)+20+len(message))
	framed = append(framed, personalPrefix...)
	framed = strconv.AppendInt(framed, int64(len(message)), 10)
	return append(framed, message...)
}

// PersonalDigest returns the Keccak-256 digest of the framed message. This is
// the exact hash signed by PersonalSign and expected by RecoverAddress.
func PersonalDigest(message []byte) []byte {
	return ethcrypto.Keccak256(PersonalMessage(message))
}
