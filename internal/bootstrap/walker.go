// Package bootstrap wires the explorer-backed history walker from command line options.
package bootstrap

import (
	"errors"
	"fmt"
	"time"

	"github.com/goodnatureofminers/auction-history/internal/auction/chain"
	"github.com/goodnatureofminers/auction-history/internal/auction/explorer"
	"github.com/goodnatureofminers/auction-history/internal/auction/history"
	"github.com/goodnatureofminers/auction-history/internal/metrics"
	"go.uber.org/zap"
)

// WalkerOptions are shared by every binary that walks auction histories.
type WalkerOptions struct {
	Network         string        `long:"network" env:"AUCTION_HISTORY_NETWORK" description:"network name used in metric labels" default:"mainnet"`
	ExplorerURL     string        `long:"explorer-url" env:"AUCTION_HISTORY_EXPLORER_URL" description:"explorer API base URL" default:"https://api.ergoplatform.com"`
	ExplorerUIURL   string        `long:"explorer-ui-url" env:"AUCTION_HISTORY_EXPLORER_UI_URL" description:"explorer UI base URL used for transaction links" default:"https://explorer.ergoplatform.com"`
	ExplorerRPS     int           `long:"explorer-rps" env:"AUCTION_HISTORY_EXPLORER_RPS" description:"max explorer requests per second, 0 disables limiting" default:"20"`
	HTTPTimeout     time.Duration `long:"http-timeout" env:"AUCTION_HISTORY_HTTP_TIMEOUT" description:"HTTP timeout for explorer requests" default:"30s"`
	LookupTimeout   time.Duration `long:"lookup-timeout" env:"AUCTION_HISTORY_LOOKUP_TIMEOUT" description:"timeout of a single transaction or box lookup" default:"10s"`
	BatchSize       int           `long:"batch-size" env:"AUCTION_HISTORY_BATCH_SIZE" description:"default number of bids per batch" default:"10"`
	InputConvention string        `long:"input-convention" env:"AUCTION_HISTORY_INPUT_CONVENTION" description:"position of the auction box among bid inputs" choice:"last" choice:"first" default:"last"`
	AuctionTrees    []string      `long:"auction-tree" env:"AUCTION_HISTORY_AUCTION_TREES" env-delim:"," description:"ergo tree of a valid auction contract (repeatable)"`
	AuctionTreeFile string        `long:"auction-tree-file" env:"AUCTION_HISTORY_AUCTION_TREE_FILE" description:"file with one auction contract ergo tree per line"`
}

// AllowList builds the auction contract allow-list from flags and file.
func (o WalkerOptions) AllowList() (*chain.AllowList, error) {
	trees := append([]string(nil), o.AuctionTrees...)
	if o.AuctionTreeFile != "" {
		fromFile, err := chain.ReadAllowListFile(o.AuctionTreeFile)
		if err != nil {
			return nil, err
		}
		trees = append(trees, fromFile...)
	}
	list := chain.NewAllowList(trees...)
	if list.Len() == 0 {
		return nil, errors.New("at least one auction contract tree is required")
	}
	return list, nil
}

// NewWalker builds the explorer client and the walker on top of it.
func NewWalker(opts WalkerOptions, logger *zap.Logger) (*history.Walker, *explorer.Client, error) {
	allowList, err := opts.AllowList()
	if err != nil {
		return nil, nil, err
	}
	convention, err := chain.ParseInputConvention(opts.InputConvention)
	if err != nil {
		return nil, nil, err
	}

	client, err := explorer.NewClient(explorer.Config{
		APIURL:  opts.ExplorerURL,
		UIURL:   opts.ExplorerUIURL,
		Timeout: opts.HTTPTimeout,
		RPS:     opts.ExplorerRPS,
	}, metrics.NewExplorerClient(opts.Network))
	if err != nil {
		return nil, nil, fmt.Errorf("init explorer client: %w", err)
	}

	walker, err := history.NewWalker(
		chain.NewStepper(client, convention, opts.LookupTimeout),
		allowList,
		metrics.NewHistoryWalker(opts.Network),
		opts.BatchSize,
		logger.With(zap.String("network", opts.Network)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("init walker: %w", err)
	}

	logger.Info("walker configured",
		zap.String("explorer", opts.ExplorerURL),
		zap.Int("auction_trees", allowList.Len()),
		zap.String("input_convention", convention.String()),
	)
	return walker, client, nil
}
