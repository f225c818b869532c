package wallet

import (
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
)

// Wallet pairs a signing key with its derived public address.
type Wallet struct {
	PrivateKey *ecdsa.PrivateKey
	Address    common.Address
}

// FromKey parses a hex-encoded private key (with or without the 0x prefix)
// and derives the public address.
func FromKey(privateKey string) (*Wallet, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(privateKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return &Wallet{
		PrivateKey: key,
		Address:    crypto.PubkeyToAddress(key.PublicKey),
	}, nil
}

// FromKeys parses a batch of private keys, failing on the first bad one.
func FromKeys(privateKeys []string) ([]*Wallet, error) {
	wallets := make([]*Wallet, 0, len(privateKeys))
	for i, key := range privateKeys {
		w, err := FromKey(key)
		if err != nil {
			return nil, fmt.Errorf("wallet %d: %w", i+1, err)
		}
		wallets = append(wallets, w)
	}
	return wallets, nil
}

// Generate creates a fresh random wallet and returns it together with the
// hex-encoded private key.
func Generate() (*Wallet, string, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate key: %w", err)
	}

	w := &Wallet{
		PrivateKey: key,
		Address:    crypto.PubkeyToAddress(key.PublicKey),
	}
	return w, "0x" + hex.EncodeToString(crypto.FromECDSA(key)), nil
}
