// Package wallet implements the Ethereum account model: secp256k1 key pairs,
// EIP-191 personal-message signing with recoverable signatures, and EIP-55
// checksummed address derivation.
//
// The central type is KeyPair, an immutable value holding a private scalar and
// its derived public point. A KeyPair is created from the process CSPRNG or
// imported from raw bytes or a hex string; it is never mutated afterwards, and
// all derived views (hex exports, address) are computed on demand.
//
//	kp, err := wallet.Generate()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	sig, err := kp.PersonalSign([]byte("hello"), chains.Mainnet)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("address:", kp.Address())
//	fmt.Println("signature:", sig)
//
// Signatures are 65 bytes in R || S || V wire order. The v byte carries the
// recovery id either in the pre-EIP-155 27/28 form or folded together with a
// chain id per EIP-155 (chainID*2 + 35 + recoveryID). RecoverAddress and
// Verify accept any of the v encodings.
//
// All elliptic-curve arithmetic is delegated to go-ethereum's crypto package;
// this package never re-derives curve math. Signing is deterministic
// (RFC 6979) and the provider guarantees canonical low-s signatures. Every
// operation is a synchronous, CPU-only computation over immutable data and is
// safe for concurrent use.
package wallet
