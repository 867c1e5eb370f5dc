package wallet_test

import (
	"strings"
	"testing"
	"unicode"

	"github.com/ethereum/go-ethereum/common"
	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianwallet/walletcore/pkg/wallet"
)

// The four checksum test addresses published with EIP-55.
var eip55Vectors = []string{
	"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",
	"0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359",
	"0xdbF03B407c01E7cD3CBea99509d93f8DDDC8C6FB",
	"0xD1220A0cf47c7B9Be7A2E6BA89F429762e7b9aDb",
}

func TestChecksumVectors(t *testing.T) {
	for _, vector := range eip55Vectors {
		addr, err := wallet.ParseAddress(strings.ToLower(vector))
		require.NoError(t, err)
		assert.Equal(t, vector, addr.Hex())
	}
}

func TestChecksumIdempotent(t *testing.T) {
	for i := 0; i < 8; i++ {
		kp, err := wallet.Generate()
		require.NoError(t, err)

		rendered := kp.Address().Hex()
		reparsed, err := wallet.ParseAddress(rendered)
		require.NoError(t, err)
		assert.Equal(t, rendered, reparsed.Hex())

		// go-ethereum renders addresses with the same checksum algorithm.
		assert.Equal(t, common.BytesToAddress(kp.Address().Bytes()).Hex(), rendered)
	}
}

func TestValidChecksum(t *testing.T) {
	for _, vector := range eip55Vectors {
		assert.True(t, wallet.ValidChecksum(vector), vector)
		assert.False(t, wallet.ValidChecksum(strings.ToLower(vector)), "all-lowercase must fail")
		assert.False(t, wallet.ValidChecksum(strings.ToUpper(vector)), "all-uppercase must fail")
		assert.False(t, wallet.ValidChecksum(flipOneCase(vector)), "single case flip must fail")
	}

	assert.False(t, wallet.ValidChecksum("0x1234"))
	assert.False(t, wallet.ValidChecksum("not an address"))
}

// flipOneCase inverts the case of the first hex letter after the prefix.
func flipOneCase(s string) string {
	out := []rune(s)
	for i := 2; i < len(out); i++ {
		if unicode.IsLetter(out[i]) {
			if unicode.IsUpper(out[i]) {
				out[i] = unicode.ToLower(out[i])
			} else {
				out[i] = unicode.ToUpper(out[i])
			}
			break
		}
	}
	return string(out)
}

func TestPubkeyToAddress(t *testing.T) {
	kp, err := wallet.FromPrivateKeyHex(refPrivateHex)
	require.NoError(t, err)

	addr := wallet.PubkeyToAddress(kp.PublicKey())
	assert.Equal(t, refAddress, addr.Hex())
	assert.Equal(t, addr, kp.Address())

	// Cross-check the raw 20 bytes against go-ethereum's derivation.
	expected := ethcrypto.PubkeyToAddress(*kp.PublicKey())
	assert.Equal(t, expected.Bytes(), addr.Bytes())
}

func TestParseAddress(t *testing.T) {
	t.Run("accepts bare and prefixed hex", func(t *testing.T) {
		withPrefix, err := wallet.ParseAddress(eip55Vectors[0])
		require.NoError(t, err)
		bare, err := wallet.ParseAddress(eip55Vectors[0][2:])
		require.NoError(t, err)
		assert.Equal(t, withPrefix, bare)
	})

	tests := []struct {
		name  string
		input string
	}{
		{"too short", "0x1234"},
		{"too long", eip55Vectors[0] + "00"},
		{"non-hex characters", "0xzz" + eip55Vectors[0][4:]},
		{"empty", ""},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := wallet.ParseAddress(test.input)
			assert.Error(t, err)
		})
	}
}
