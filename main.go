// Command walletcore is a thin CLI over the wallet core: key generation,
// address derivation, EIP-191 personal signing and verification.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/big"
	"os"

	"github.com/meridianwallet/walletcore/pkg/chains"
	"github.com/meridianwallet/walletcore/pkg/jsonrpc"
	"github.com/meridianwallet/walletcore/pkg/log"
	"github.com/meridianwallet/walletcore/pkg/wallet"
)

const usage = `Usage: walletcore [-config file] <command> [options]

Commands:
  generate                       create a new key pair and print it
  address                        print the address of the configured key
  sign -message <text>           personal-sign a message with the configured key
  verify -message <text> -signature <hex> -address <hex>
                                 check a personal-message signature
  chain-id                       print the resolved chain id
`

func main() {
	configPath := flag.String("config", "", "optional YAML config file")
	flag.Usage = func() { fmt.Fprint(os.Stderr, usage) }
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	lg := log.NewZapLogger(log.Config{Format: cfg.LogFormat, Level: level}, nil).WithName("walletcore")

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cmd := flag.Arg(0)
	args := flag.Args()[1:]
	if err := run(cmd, args, cfg, lg); err != nil {
		lg.Fatal("command failed", "command", cmd, "error", err)
	}
}

func run(cmd string, args []string, cfg Config, lg log.Logger) error {
	switch cmd {
	case "generate":
		return runGenerate()
	case "address":
		return runAddress(cfg)
	case "sign":
		return runSign(args, cfg, lg)
	case "verify":
		return runVerify(args)
	case "chain-id":
		return runChainID(cfg, lg)
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

func runGenerate() error {
	kp, err := wallet.Generate()
	if err != nil {
		return err
	}
	fmt.Printf("private key: %s\n", kp.PrivateHex())
	fmt.Printf("public key:  %s\n", kp.PublicHex(false))
	fmt.Printf("address:     %s\n", kp.Address())
	return nil
}

func runAddress(cfg Config) error {
	kp, err := configuredKey(cfg)
	if err != nil {
		return err
	}
	fmt.Println(kp.Address())
	return nil
}

func runSign(args []string, cfg Config, lg log.Logger) error {
	fs := flag.NewFlagSet("sign", flag.ExitOnError)
	message := fs.String("message", "", "message to sign")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *message == "" {
		return fmt.Errorf("sign: -message is required")
	}

	kp, err := configuredKey(cfg)
	if err != nil {
		return err
	}
	chainID, err := resolveChainID(cfg, lg)
	if err != nil {
		return err
	}

	sig, err := kp.PersonalSign([]byte(*message), chainID)
	if err != nil {
		return err
	}
	lg.Info("message signed", "address", kp.Address(), "chain", chains.Name(chainID))
	fmt.Println(sig)
	return nil
}

func runVerify(args []string) error {
	fs := flag.NewFlagSet("verify", flag.ExitOnError)
	message := fs.String("message", "", "signed message")
	sigHex := fs.String("signature", "", "0x-prefixed 65-byte signature")
	addrHex := fs.String("address", "", "expected signer address")
	if err := fs.Parse(args); err != nil {
		return err
	}

	sig, err := wallet.ParseSignature(*sigHex)
	if err != nil {
		return err
	}
	addr, err := wallet.ParseAddress(*addrHex)
	if err != nil {
		return err
	}

	ok, err := wallet.Verify([]byte(*message), sig, addr)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("signature does not match %s", addr)
	}
	fmt.Println("signature valid")
	return nil
}

func runChainID(cfg Config, lg log.Logger) error {
	chainID, err := resolveChainID(cfg, lg)
	if err != nil {
		return err
	}
	if chains.IsLegacy(chainID) {
		fmt.Println("legacy (no replay protection)")
		return nil
	}
	fmt.Println(chainID)
	return nil
}

func configuredKey(cfg Config) (*wallet.KeyPair, error) {
	if cfg.PrivateKey == "" {
		return nil, fmt.Errorf("no private key configured (set WALLETCORE_PRIVATE_KEY)")
	}
	return wallet.FromPrivateKeyHex(cfg.PrivateKey)
}

// resolveChainID prefers a live eth_chainId query when an RPC endpoint is
// configured and falls back to the static table otherwise.
func resolveChainID(cfg Config, lg log.Logger) (*big.Int, error) {
	if cfg.RPCURL == "" {
		return chains.ByName(cfg.Chain)
	}

	client, err := jsonrpc.NewClient(jsonrpc.Config{
		URL:      cfg.RPCURL,
		Username: cfg.RPCUsername,
		Password: cfg.RPCPassword,
		ProxyURL: cfg.RPCProxyURL,
		Logger:   lg,
	})
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), jsonrpc.DefaultTimeout)
	defer cancel()
	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, err
	}
	lg.Debug("resolved chain id from endpoint", "chain_id", chainID)
	return chainID, nil
}
