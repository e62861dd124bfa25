// Package history reconstructs auction bid histories batch by batch.
package history

import (
	"context"
	"time"

	"github.com/goodnatureofminers/auction-history/internal/auction/chain"
	"github.com/goodnatureofminers/auction-history/internal/auction/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ChainStepper interface {
		Step(ctx context.Context, txID string) (chain.StepResult, error)
	}
	TerminationPolicy interface {
		IsAuctionState(script string) bool
	}
	BatchWalker interface {
		LoadNext(ctx context.Context, cursor model.Cursor, count int) (model.WalkResult, error)
	}
	WalkerMetrics interface {
		ObserveStep(err error, started time.Time)
		ObserveBatch(err error, records int, started time.Time)
		ObserveGenesis()
	}
	RegistryMetrics interface {
		ObserveOpen()
		ObserveClose(reason string)
	}
)
