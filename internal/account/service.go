package account

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github/chapool/hdderive/internal/address"
	"github/chapool/hdderive/internal/hdwallet"
	"github/chapool/hdderive/internal/util"
	"golang.org/x/sync/errgroup"
)

// ErrInvalidCount is returned for batches of zero or fewer accounts.
var ErrInvalidCount = errors.New("account count must be positive")

type service struct {
	workers  int
	recorder Recorder
}

type noopRecorder struct{}

func (noopRecorder) ObserveBatch(int, time.Duration, error) {}

// NewService creates a new account Service. workers <= 1 derives sequentially.
// recorder may be nil.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(workers int, recorder Recorder) Service {
	if recorder == nil {
		recorder = noopRecorder{}
	}

	return &service{
		workers:  workers,
		recorder: recorder,
	}
}

// Generate derives req.Count accounts along the path template.
// The seed, master node and the template's shared ancestors are derived once per batch.
func (s *service) Generate(ctx context.Context, req Request) (accounts []Account, err error) {
	log := util.LogFromContext(ctx).With().
		Str("component", "account_batch").
		Uint32("start", req.Start).
		Int("count", req.Count).
		Int("workers", s.workers).
		Logger()

	started := time.Now()
	defer func() {
		s.recorder.ObserveBatch(len(accounts), time.Since(started), err)
	}()

	if req.Count <= 0 {
		return nil, ErrInvalidCount
	}

	if uint64(req.Start)+uint64(req.Count) > uint64(hdwallet.HardenedKeyStart) {
		return nil, errors.Wrapf(hdwallet.ErrIndexOutOfRange, "batch %d..%d", req.Start, uint64(req.Start)+uint64(req.Count)-1)
	}

	template, err := hdwallet.ParsePathTemplate(req.pathTemplate())
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse path template")
	}

	base, err := s.node(req.Mnemonic, req.Passphrase, template.Base())
	if err != nil {
		return nil, err
	}

	accounts = make([]Account, req.Count)
	derive := func(i int) error {
		account, err := deriveAccount(base, template, req.Start+uint32(i))
		if err != nil {
			return err
		}
		accounts[i] = *account
		return nil
	}

	if s.workers <= 1 {
		for i := range req.Count {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrap(err, "batch cancelled")
			}
			if err := derive(i); err != nil {
				return nil, err
			}
		}
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(s.workers)
		for i := range req.Count {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				return derive(i)
			})
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}

		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "batch cancelled")
		}
	}

	log.Debug().Dur("duration", time.Since(started)).Msg("Derived account batch")
	return accounts, nil
}

// Derive derives the account at index.
func (s *service) Derive(ctx context.Context, req Request, index uint32) (*Account, error) {
	req.Start = index
	req.Count = 1

	accounts, err := s.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	return &accounts[0], nil
}

// Node derives the node at path.
func (s *service) Node(_ context.Context, mnemonic string, passphrase string, path string) (*hdwallet.Node, error) {
	parsed, err := hdwallet.ParsePath(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse derivation path")
	}

	return s.node(mnemonic, passphrase, parsed)
}

func (s *service) node(mnemonic string, passphrase string, path hdwallet.DerivationPath) (*hdwallet.Node, error) {
	seed := hdwallet.NewSeed(mnemonic, passphrase)

	master, err := hdwallet.NewMaster(seed.Bytes())
	if err != nil {
		return nil, errors.Wrap(err, "failed to create master key")
	}

	node, err := master.Derive(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to derive key from path")
	}

	return node, nil
}

func deriveAccount(base *hdwallet.Node, template hdwallet.PathTemplate, index uint32) (*Account, error) {
	path, err := template.At(index)
	if err != nil {
		return nil, err
	}

	leaf, err := base.Child(path[len(path)-1])
	if err != nil {
		return nil, errors.Wrapf(err, "failed to derive account %d", index)
	}

	addr, err := address.FromNode(leaf)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to derive address of account %d", index)
	}

	return &Account{
		Index:         index,
		Path:          path.String(),
		Address:       addr,
		PrivateKeyHex: leaf.PrivateKeyHex(),
	}, nil
}
