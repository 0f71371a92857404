package account

import (
	"context"
	"time"

	"github/chapool/hdderive/internal/hdwallet"
)

// Account is one derived key pair, as handed to display or persistence.
type Account struct {
	Index         uint32 `json:"index"`
	Path          string `json:"path"`
	Address       string `json:"address"`
	PrivateKeyHex string `json:"privateKey"`
}

// Request describes a batch of consecutive account indices.
type Request struct {
	Mnemonic   string
	Passphrase string

	// PathTemplate defaults to hdwallet.DefaultPathTemplate.
	PathTemplate string

	Start uint32
	Count int
}

func (r Request) pathTemplate() string {
	if r.PathTemplate == "" {
		return hdwallet.DefaultPathTemplate
	}

	return r.PathTemplate
}

// Recorder receives the outcome of every batch.
type Recorder interface {
	ObserveBatch(accounts int, duration time.Duration, err error)
}

// Service derives accounts from a mnemonic
type Service interface {
	// Generate derives Count accounts starting at Start, in index order.
	// Any failure, including cancellation of ctx, aborts the whole batch and no accounts are returned.
	Generate(ctx context.Context, req Request) ([]Account, error)

	// Derive derives the single account at index (Start and Count of req are ignored).
	Derive(ctx context.Context, req Request, index uint32) (*Account, error)

	// Node derives the private node at an arbitrary path.
	Node(ctx context.Context, mnemonic string, passphrase string, path string) (*hdwallet.Node, error)
}
