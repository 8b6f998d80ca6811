package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/tidwall/gjson"
)

const defaultRPC = "https://api.mainnet-beta.solana.com"

// Config drives one run of feequote. Every field can come from the JSON file
// and be overridden by a flag.
type Config struct {
	RPC         string
	Commitment  rpc.CommitmentType
	Positions   []solana.PublicKey
	Whirlpool   *solana.PublicKey
	Owner       *solana.PublicKey
	Rewards     bool
	Debug       bool
	MetricsAddr string
}

func defaultConfig() *Config {
	return &Config{
		RPC:        defaultRPC,
		Commitment: rpc.CommitmentFinalized,
	}
}

// parseConfig reads a config document such as
//
//	{"rpc": "...", "commitment": "confirmed", "positions": ["..."], "whirlpool": "...", "owner": "...", "rewards": true}
func parseConfig(data []byte, cfg *Config) error {
	if !gjson.ValidBytes(data) {
		return errors.New("config is not valid JSON")
	}
	doc := gjson.ParseBytes(data)

	if v := doc.Get("rpc"); v.Exists() {
		cfg.RPC = v.String()
	}
	if v := doc.Get("commitment"); v.Exists() {
		commitment, err := parseCommitment(v.String())
		if err != nil {
			return err
		}
		cfg.Commitment = commitment
	}
	for _, v := range doc.Get("positions").Array() {
		key, err := parseKey("position", v.String())
		if err != nil {
			return err
		}
		cfg.Positions = append(cfg.Positions, key)
	}
	if v := doc.Get("whirlpool"); v.Exists() {
		key, err := parseKey("whirlpool", v.String())
		if err != nil {
			return err
		}
		cfg.Whirlpool = &key
	}
	if v := doc.Get("owner"); v.Exists() {
		key, err := parseKey("owner", v.String())
		if err != nil {
			return err
		}
		cfg.Owner = &key
	}
	cfg.Rewards = doc.Get("rewards").Bool()
	cfg.Debug = doc.Get("debug").Bool()
	cfg.MetricsAddr = doc.Get("metrics_addr").String()
	return nil
}

func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	return parseConfig(data, cfg)
}

func parseCommitment(s string) (rpc.CommitmentType, error) {
	switch c := rpc.CommitmentType(strings.ToLower(s)); c {
	case rpc.CommitmentProcessed, rpc.CommitmentConfirmed, rpc.CommitmentFinalized:
		return c, nil
	default:
		return "", fmt.Errorf("unknown commitment %q", s)
	}
}

func parseKey(what, s string) (solana.PublicKey, error) {
	key, err := solana.PublicKeyFromBase58(s)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("%s %q: %w", what, s, err)
	}
	return key, nil
}

func parsePositions(list string) ([]solana.PublicKey, error) {
	var out []solana.PublicKey
	for _, s := range strings.Split(list, ",") {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key, err := parseKey("position", s)
		if err != nil {
			return nil, err
		}
		out = append(out, key)
	}
	return out, nil
}

func (c *Config) validate() error {
	if c.RPC == "" {
		return errors.New("rpc endpoint is required")
	}
	if len(c.Positions) == 0 && c.Whirlpool == nil && c.Owner == nil {
		return errors.New("nothing to quote: set positions, whirlpool or owner")
	}
	return nil
}
