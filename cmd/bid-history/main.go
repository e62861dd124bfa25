package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/auction-history/internal/auction/history"
	"github.com/goodnatureofminers/auction-history/internal/auction/model"
	"github.com/goodnatureofminers/auction-history/internal/bootstrap"
	"github.com/goodnatureofminers/auction-history/internal/clock"
	"github.com/goodnatureofminers/auction-history/pkg/workerpool"
	"github.com/jessevdk/go-flags"
	"go.uber.org/zap"
)

type config struct {
	Workers      int           `long:"workers" env:"BID_HISTORY_WORKERS" description:"auctions walked in parallel" default:"4"`
	MaxAttempts  int           `long:"max-attempts" env:"BID_HISTORY_MAX_ATTEMPTS" description:"attempts per batch on network errors and timeouts" default:"5"`
	RetryInitial time.Duration `long:"retry-initial" env:"BID_HISTORY_RETRY_INITIAL" description:"first retry delay" default:"1s"`
	RetryMax     time.Duration `long:"retry-max" env:"BID_HISTORY_RETRY_MAX" description:"max retry delay" default:"30s"`
	JSON         bool          `long:"json" description:"print one JSON document per auction"`

	Walker bootstrap.WalkerOptions `group:"Walker"`

	Args struct {
		TxIDs []string `positional-arg-name:"tx-id" description:"current transaction of the auction" required:"1"`
	} `positional-args:"yes"`
}

type bidOutput struct {
	TxID      string    `json:"tx_id"`
	Amount    string    `json:"amount"`
	Value     uint64    `json:"value"`
	Timestamp time.Time `json:"timestamp"`
	Label     string    `json:"label"`
	URL       string    `json:"url"`
}

type auctionOutput struct {
	TxID  string      `json:"tx_id"`
	Bids  []bidOutput `json:"bids"`
	Error string      `json:"error,omitempty"`
}

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()

	if _, err := flags.ParseArgs(&cfg, os.Args[1:]); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}

	if err := run(ctx, cfg, os.Stdout, logger); err != nil {
		logger.Fatal("bid history failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, out io.Writer, logger *zap.Logger) error {
	walker, client, err := bootstrap.NewWalker(cfg.Walker, logger)
	if err != nil {
		return err
	}
	drainer := history.NewDrainer(
		cfg.Walker.BatchSize,
		cfg.MaxAttempts,
		clock.Backoff{Initial: cfg.RetryInitial, Max: cfg.RetryMax},
		logger,
	)

	results := workerpool.Map(ctx, cfg.Workers, cfg.Args.TxIDs, func(ctx context.Context, txID string) ([]model.BidRecord, error) {
		return drainer.Drain(ctx, history.NewSession(txID, txID, walker, logger))
	})

	failed := 0
	enc := json.NewEncoder(out)
	for i, res := range results {
		txID := cfg.Args.TxIDs[i]
		output := auctionOutput{TxID: txID, Bids: make([]bidOutput, 0, len(res.Value))}
		for _, r := range res.Value {
			output.Bids = append(output.Bids, bidOutput{
				TxID:      r.TxID,
				Amount:    r.Amount.String(),
				Value:     r.Value,
				Timestamp: r.Timestamp,
				Label:     r.Label(),
				URL:       client.TransactionURL(r.TxID),
			})
		}
		if res.Err != nil {
			failed++
			output.Error = res.Err.Error()
			logger.Error("auction history incomplete",
				zap.String("tx_id", txID),
				zap.Int("bids", len(res.Value)),
				zap.Error(res.Err),
			)
		}

		if cfg.JSON {
			if err := enc.Encode(output); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			continue
		}
		if err := writeText(out, output); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d auctions failed", failed, len(results))
	}
	return nil
}

func writeText(out io.Writer, auction auctionOutput) error {
	if _, err := fmt.Fprintf(out, "# %s (%d bids)\n", auction.TxID, len(auction.Bids)); err != nil {
		return err
	}
	for _, bid := range auction.Bids {
		if _, err := fmt.Fprintf(out, "%s\t%s ERG\t%s\n", bid.Label, bid.Amount, bid.URL); err != nil {
			return err
		}
	}
	return nil
}
