package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/Tyman14888/whirlpools/u128"
	"github.com/Tyman14888/whirlpools/whirlpool"
	"github.com/Tyman14888/whirlpools/whirlpool/math"
)

type tokenAmount struct {
	Mint     string `json:"mint"`
	Amount   string `json:"amount"`
	UIAmount string `json:"ui_amount,omitempty"`
}

type positionQuote struct {
	Position  string        `json:"position"`
	Whirlpool string        `json:"whirlpool"`
	FeeOwedA  tokenAmount   `json:"fee_owed_a"`
	FeeOwedB  tokenAmount   `json:"fee_owed_b"`
	Rewards   []tokenAmount `json:"rewards,omitempty"`
	Error     string        `json:"error,omitempty"`
}

// flagValues holds the command line; empty values leave the config untouched.
type flagValues struct {
	configPath  string
	rpc         string
	commitment  string
	positions   string
	whirlpool   string
	owner       string
	rewards     bool
	debug       bool
	metricsAddr string
}

func main() {
	var fv flagValues
	flag.StringVar(&fv.configPath, "config", "", "path to a JSON config file")
	flag.StringVar(&fv.rpc, "rpc", "", "solana RPC endpoint")
	flag.StringVar(&fv.commitment, "commitment", "", "processed, confirmed or finalized")
	flag.StringVar(&fv.positions, "positions", "", "comma separated position addresses")
	flag.StringVar(&fv.whirlpool, "whirlpool", "", "quote every position of this whirlpool")
	flag.StringVar(&fv.owner, "owner", "", "quote every position held by this wallet")
	flag.BoolVar(&fv.rewards, "rewards", false, "also quote rewards")
	flag.BoolVar(&fv.debug, "debug", false, "debug logging")
	flag.StringVar(&fv.metricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")
	flag.Parse()

	cfg := defaultConfig()
	if err := applyFlags(cfg, fv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := prometheus.NewRegistry()
	if cfg.MetricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
			if err := http.ListenAndServe(cfg.MetricsAddr, mux); err != nil {
				logger.Error("metrics server stopped", zap.Error(err))
			}
		}()
	}

	client := whirlpool.NewClient(
		rpc.New(cfg.RPC),
		whirlpool.WithCommitment(cfg.Commitment),
		whirlpool.WithLogger(logger.Named("whirlpool")),
		whirlpool.WithRegisterer(registry),
	)

	targets := cfg.Positions
	if cfg.Whirlpool != nil {
		list, err := client.GetPositionsByWhirlpool(ctx, *cfg.Whirlpool)
		if err != nil {
			logger.Fatal("list positions failed", zap.Stringer("whirlpool", cfg.Whirlpool), zap.Error(err))
		}
		for _, p := range list {
			targets = append(targets, p.Position)
		}
	}
	if cfg.Owner != nil {
		list, err := client.GetPositionsByOwner(ctx, *cfg.Owner)
		if err != nil {
			logger.Fatal("list positions failed", zap.Stringer("owner", cfg.Owner), zap.Error(err))
		}
		for _, p := range list {
			targets = append(targets, p.Position)
		}
	}

	out := jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(os.Stdout)
	out.SetIndent("", "  ")

	failed := 0
	for _, position := range targets {
		q := quotePosition(ctx, client, position, cfg.Rewards)
		if q.Error != "" {
			failed++
			logger.Warn("quote failed", zap.Stringer("position", position), zap.String("error", q.Error))
		}
		if err := out.Encode(q); err != nil {
			logger.Fatal("write quote failed", zap.Error(err))
		}
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func applyFlags(cfg *Config, fv flagValues) error {
	if fv.configPath != "" {
		if err := loadConfigFile(fv.configPath, cfg); err != nil {
			return err
		}
	}
	if fv.rpc != "" {
		cfg.RPC = fv.rpc
	}
	if fv.commitment != "" {
		c, err := parseCommitment(fv.commitment)
		if err != nil {
			return err
		}
		cfg.Commitment = c
	}
	if fv.positions != "" {
		list, err := parsePositions(fv.positions)
		if err != nil {
			return err
		}
		cfg.Positions = append(cfg.Positions, list...)
	}
	if fv.whirlpool != "" {
		key, err := parseKey("whirlpool", fv.whirlpool)
		if err != nil {
			return err
		}
		cfg.Whirlpool = &key
	}
	if fv.owner != "" {
		key, err := parseKey("owner", fv.owner)
		if err != nil {
			return err
		}
		cfg.Owner = &key
	}
	cfg.Rewards = cfg.Rewards || fv.rewards
	cfg.Debug = cfg.Debug || fv.debug
	if fv.metricsAddr != "" {
		cfg.MetricsAddr = fv.metricsAddr
	}
	return cfg.validate()
}

func newLogger(debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if debug {
		zc.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return zc.Build()
}

func quotePosition(ctx context.Context, client *whirlpool.Client, position solana.PublicKey, withRewards bool) positionQuote {
	q := positionQuote{Position: position.String()}

	snapshot, err := client.LoadPositionSnapshot(ctx, position)
	if err != nil {
		q.Error = err.Error()
		return q
	}
	q.Whirlpool = snapshot.Pool.Address.String()

	fees, err := snapshot.CollectFeesQuote()
	if err != nil {
		q.Error = err.Error()
		return q
	}
	q.FeeOwedA = tokenAmount{Mint: snapshot.Pool.TokenMintA.String(), Amount: u128.String(fees.FeeOwedA)}
	q.FeeOwedB = tokenAmount{Mint: snapshot.Pool.TokenMintB.String(), Amount: u128.String(fees.FeeOwedB)}
	if snapshot.MintA != nil {
		q.FeeOwedA.UIAmount = math.ToUIAmount(fees.FeeOwedA, snapshot.MintA.Decimals).String()
	}
	if snapshot.MintB != nil {
		q.FeeOwedB.UIAmount = math.ToUIAmount(fees.FeeOwedB, snapshot.MintB.Decimals).String()
	}

	if !withRewards {
		return q
	}
	rewards, err := snapshot.CollectRewardsQuote()
	if err != nil {
		q.Error = err.Error()
		return q
	}
	for i, info := range snapshot.Pool.RewardInfos {
		if !info.Initialized() {
			continue
		}
		amount := tokenAmount{Mint: info.Mint.String(), Amount: u128.String(rewards.Rewards[i].RewardsOwed)}
		if mint := snapshot.RewardMints[i]; mint != nil {
			amount.UIAmount = math.ToUIAmount(rewards.Rewards[i].RewardsOwed, mint.Decimals).String()
		}
		q.Rewards = append(q.Rewards, amount)
	}
	return q
}
