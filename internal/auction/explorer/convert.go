package explorer

import (
	"fmt"
	"time"

	"github.com/goodnatureofminers/auction-history/internal/auction/chain"
	"github.com/goodnatureofminers/auction-history/internal/auction/model"
	"github.com/goodnatureofminers/auction-history/pkg/safe"
)

func convertTransaction(dto transactionDTO) (*model.Transaction, error) {
	if dto.ID == "" {
		return nil, fmt.Errorf("missing id: %w", chain.ErrMalformedResponse)
	}
	if dto.Timestamp <= 0 {
		return nil, fmt.Errorf("missing timestamp: %w", chain.ErrMalformedResponse)
	}

	inputs := make([]model.Input, 0, len(dto.Inputs))
	for _, in := range dto.Inputs {
		inputs = append(inputs, model.Input{BoxID: in.BoxID})
	}

	outputs := make([]model.Output, 0, len(dto.Outputs))
	for _, out := range dto.Outputs {
		value, err := safe.Uint64(out.Value)
		if err != nil {
			return nil, fmt.Errorf("output %s value: %v: %w", out.BoxID, err, chain.ErrMalformedResponse)
		}
		outputs = append(outputs, model.Output{
			BoxID:    out.BoxID,
			Value:    value,
			ErgoTree: out.ErgoTree,
		})
	}

	return &model.Transaction{
		ID:        dto.ID,
		Inputs:    inputs,
		Outputs:   outputs,
		Timestamp: time.UnixMilli(dto.Timestamp).UTC(),
	}, nil
}

func convertBox(dto outputDTO) (*model.Box, error) {
	if dto.BoxID == "" {
		return nil, fmt.Errorf("missing box id: %w", chain.ErrMalformedResponse)
	}
	value, err := safe.Uint64(dto.Value)
	if err != nil {
		return nil, fmt.Errorf("value: %v: %w", err, chain.ErrMalformedResponse)
	}
	return &model.Box{
		ID:       dto.BoxID,
		TxID:     dto.TransactionID,
		Value:    value,
		ErgoTree: dto.ErgoTree,
	}, nil
}
