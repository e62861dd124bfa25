package explorer

// transactionDTO mirrors the explorer API v1 transaction payload.
type transactionDTO struct {
	ID              string      `json:"id"`
	BlockID         string      `json:"blockId"`
	InclusionHeight int64       `json:"inclusionHeight"`
	Timestamp       int64       `json:"timestamp"`
	Inputs          []inputDTO  `json:"inputs"`
	Outputs         []outputDTO `json:"outputs"`
}

type inputDTO struct {
	BoxID               string `json:"boxId"`
	Value               int64  `json:"value"`
	OutputTransactionID string `json:"outputTransactionId"`
	ErgoTree            string `json:"ergoTree"`
}

// outputDTO is shared by transaction outputs and the box endpoint.
type outputDTO struct {
	BoxID         string `json:"boxId"`
	TransactionID string `json:"transactionId"`
	Value         int64  `json:"value"`
	Index         int    `json:"index"`
	ErgoTree      string `json:"ergoTree"`
	Address       string `json:"address"`
}
