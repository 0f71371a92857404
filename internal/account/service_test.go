package account_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/hdderive/internal/account"
	"github/chapool/hdderive/internal/address"
	"github/chapool/hdderive/internal/hdwallet"
)

const referenceMnemonic = "distance replace obvious camera math express vacant reopen notice marble social page alley retire visa hockey title attract chunk secret pottery zoo caught poverty"

var referenceAccounts = []account.Account{
	{
		Index:         0,
		Path:          "m/44'/60'/0'/0/0",
		Address:       "0xbFaA91E6a8FDc391126C920A6e36cC6740935A6C",
		PrivateKeyHex: "cd136e0448f2a39fb088e934f90eba0e6faa0c300ad8ea2b0c22a5736b88e073",
	},
	{
		Index:         1,
		Path:          "m/44'/60'/0'/0/1",
		Address:       "0xcAB8a9E9d7F0C90e65362123fFa2892Dc74FEf18",
		PrivateKeyHex: "497ec2a8ab1d81a610279d0584efcf55c2ce3f873a05d307b7a792b88f108fde",
	},
	{
		Index:         2,
		Path:          "m/44'/60'/0'/0/2",
		Address:       "0x5751783c77d78Fb30c351F3ED2AFC6DC734e6FCa",
		PrivateKeyHex: "e6247224e6844a64543ee77801442bccca74de09eeace48e89082e5ce30ee27e",
	},
}

type recorder struct {
	mu       sync.Mutex
	batches  int
	accounts int
	errs     []error
}

func (r *recorder) ObserveBatch(accounts int, _ time.Duration, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.batches++
	r.accounts += accounts
	if err != nil {
		r.errs = append(r.errs, err)
	}
}

func TestGenerateReferenceAccounts(t *testing.T) {
	svc := account.NewService(1, nil)

	accounts, err := svc.Generate(t.Context(), account.Request{
		Mnemonic: referenceMnemonic,
		Count:    3,
	})
	require.NoError(t, err)
	assert.Equal(t, referenceAccounts, accounts)

	for _, a := range accounts {
		assert.True(t, address.IsChecksumValid(a.Address), a.Address)
	}
}

func TestGenerateParallelMatchesSequential(t *testing.T) {
	req := account.Request{
		Mnemonic:     referenceMnemonic,
		PathTemplate: "m/44'/60'/0'/0/",
		Count:        40,
	}

	sequential, err := account.NewService(1, nil).Generate(t.Context(), req)
	require.NoError(t, err)

	parallel, err := account.NewService(8, nil).Generate(t.Context(), req)
	require.NoError(t, err)

	assert.Equal(t, sequential, parallel)
	assert.Equal(t, referenceAccounts, parallel[:3])
	for i, a := range parallel {
		assert.Equal(t, uint32(i), a.Index)
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	svc := account.NewService(1, nil)
	req := account.Request{Mnemonic: referenceMnemonic, Count: 5}

	a, err := svc.Generate(t.Context(), req)
	require.NoError(t, err)
	b, err := svc.Generate(t.Context(), req)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestGenerateStartOffset(t *testing.T) {
	svc := account.NewService(1, nil)

	accounts, err := svc.Generate(t.Context(), account.Request{
		Mnemonic: referenceMnemonic,
		Start:    1,
		Count:    2,
	})
	require.NoError(t, err)
	assert.Equal(t, referenceAccounts[1:], accounts)
}

func TestGeneratePassphraseChangesEveryAccount(t *testing.T) {
	svc := account.NewService(1, nil)

	accounts, err := svc.Generate(t.Context(), account.Request{
		Mnemonic:   referenceMnemonic,
		Passphrase: "TREZOR",
		Count:      3,
	})
	require.NoError(t, err)

	assert.Equal(t, "0x788b02a2Fa60A2093b24e80886d28Eea53831031", accounts[0].Address)
	assert.Equal(t, "8588029f6a83c9c7953d84589a98f3974a146c23f4e5ce42c986debb040e6f61", accounts[0].PrivateKeyHex)
	for i := range accounts {
		assert.NotEqual(t, referenceAccounts[i].PrivateKeyHex, accounts[i].PrivateKeyHex)
		assert.NotEqual(t, referenceAccounts[i].Address, accounts[i].Address)
	}
}

func TestGenerateHardenedTemplate(t *testing.T) {
	svc := account.NewService(1, nil)

	accounts, err := svc.Generate(t.Context(), account.Request{
		Mnemonic:     referenceMnemonic,
		PathTemplate: "m/44'/60'/0'/0/0'",
		Count:        1,
	})
	require.NoError(t, err)

	assert.Equal(t, "m/44'/60'/0'/0/0'", accounts[0].Path)
	assert.Equal(t, "19e0acee4ece4b0a9c16c6a58c075627b46a815a861e57617281761a9b0d673f", accounts[0].PrivateKeyHex)
	assert.Equal(t, "0x5dc6294adef230659a632AFf9b6B44A130583E4d", accounts[0].Address)
}

func TestGenerateErrors(t *testing.T) {
	rec := &recorder{}
	svc := account.NewService(4, rec)

	_, err := svc.Generate(t.Context(), account.Request{Mnemonic: referenceMnemonic, Count: 0})
	assert.ErrorIs(t, err, account.ErrInvalidCount)

	accounts, err := svc.Generate(t.Context(), account.Request{
		Mnemonic:     referenceMnemonic,
		PathTemplate: "44'/60'/0'/0/",
		Count:        3,
	})
	var malformed *hdwallet.MalformedPathError
	assert.True(t, errors.As(err, &malformed))
	assert.Nil(t, accounts)

	_, err = svc.Generate(t.Context(), account.Request{
		Mnemonic: referenceMnemonic,
		Start:    hdwallet.HardenedKeyStart - 1,
		Count:    2,
	})
	assert.ErrorIs(t, err, hdwallet.ErrIndexOutOfRange)

	assert.Equal(t, 3, rec.batches)
	assert.Len(t, rec.errs, 3)
	assert.Equal(t, 0, rec.accounts)
}

func TestGenerateRecordsBatch(t *testing.T) {
	rec := &recorder{}
	svc := account.NewService(1, rec)

	_, err := svc.Generate(t.Context(), account.Request{Mnemonic: referenceMnemonic, Count: 3})
	require.NoError(t, err)

	assert.Equal(t, 1, rec.batches)
	assert.Equal(t, 3, rec.accounts)
	assert.Empty(t, rec.errs)
}

func TestDerive(t *testing.T) {
	svc := account.NewService(1, nil)

	acc, err := svc.Derive(t.Context(), account.Request{Mnemonic: referenceMnemonic, Count: 99}, 2)
	require.NoError(t, err)
	assert.Equal(t, referenceAccounts[2], *acc)
}

func TestNode(t *testing.T) {
	svc := account.NewService(1, nil)

	node, err := svc.Node(context.Background(), referenceMnemonic, "", "m/44'/60'/0'/0/1")
	require.NoError(t, err)
	assert.Equal(t, referenceAccounts[1].PrivateKeyHex, node.PrivateKeyHex())

	_, err = svc.Node(context.Background(), referenceMnemonic, "", "m/abc")
	var malformed *hdwallet.MalformedPathError
	assert.True(t, errors.As(err, &malformed))
}

func TestGenerateCancelled(t *testing.T) {
	for _, workers := range []int{1, 4} {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		accounts, err := account.NewService(workers, nil).Generate(ctx, account.Request{
			Mnemonic: referenceMnemonic,
			Count:    10,
		})
		require.ErrorIs(t, err, context.Canceled, "workers %d", workers)
		assert.Nil(t, accounts)
	}
}
