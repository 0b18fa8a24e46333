// Command mint-admin-key mints an admin API key and prints the argon2id
// hash to configure as ADMIN_KEY_HASH. The plaintext key is shown once
// and never stored.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/astrodaily/astrodaily/internal/auth"
)

type output struct {
	Key  string `json:"key"`
	Hash string `json:"hash"`
}

func main() {
	var (
		existing = flag.String("key", "", "Hash an existing key instead of minting a new one")
		format   = flag.String("format", "plain", "Output format: plain or json")
	)
	flag.Parse()

	out, err := mint(*existing)
	if err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}

	switch strings.ToLower(*format) {
	case "plain":
		fmt.Println("key: ", out.Key)
		fmt.Println("hash:", out.Hash)
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		_ = enc.Encode(out)
	default:
		fmt.Fprintln(os.Stderr, "invalid format; use plain or json")
		os.Exit(1)
	}
}

func mint(existing string) (*output, error) {
	if existing != "" {
		if !auth.ValidateKeyFormat(existing) {
			return nil, fmt.Errorf("key must match adm_ followed by %d hex characters", auth.KeySecretLen)
		}
		hash, err := auth.HashKey(existing)
		if err != nil {
			return nil, fmt.Errorf("hash key: %w", err)
		}
		return &output{Key: existing, Hash: hash}, nil
	}

	generated, err := auth.GenerateAdminKey()
	if err != nil {
		return nil, fmt.Errorf("generate admin key: %w", err)
	}
	return &output{Key: generated.Plaintext, Hash: generated.Hash}, nil
}
