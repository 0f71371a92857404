package export

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github/chapool/hdderive/internal/account"
	"github/chapool/hdderive/internal/keystore"
	"github/chapool/hdderive/internal/util"
)

const (
	keystoreDirMode  = 0o700
	keystoreFileMode = 0o600
)

// KeystoreDir writes one encrypted keystore v3 file per account, named like geth does.
type KeystoreDir struct {
	dir      string
	password string
	params   keystore.ScryptParams
	now      func() time.Time
}

func NewKeystoreDir(dir string, password string, params keystore.ScryptParams) *KeystoreDir {
	return &KeystoreDir{
		dir:      dir,
		password: password,
		params:   params,
		now:      time.Now,
	}
}

// Export encrypts every account with the directory password.
func (k *KeystoreDir) Export(ctx context.Context, accounts []account.Account) error {
	log := util.LogFromContext(ctx).With().Str("component", "keystore_export").Str("dir", k.dir).Logger()

	if err := os.MkdirAll(k.dir, keystoreDirMode); err != nil {
		return errors.Wrap(err, "failed to create keystore directory")
	}

	for _, acc := range accounts {
		path, err := k.write(acc)
		if err != nil {
			log.Error().Err(err).Uint32("index", acc.Index).Msg("Failed to export account")
			return errors.Wrapf(err, "failed to export account %d", acc.Index)
		}

		log.Debug().Uint32("index", acc.Index).Str("file", path).Msg("Wrote keystore file")
	}

	log.Info().Int("accounts", len(accounts)).Msg("Exported accounts to keystore directory")
	return nil
}

func (k *KeystoreDir) write(acc account.Account) (string, error) {
	privateKey, err := hex.DecodeString(acc.PrivateKeyHex)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode private key")
	}

	// Clear private key after use
	defer func() {
		for i := range privateKey {
			privateKey[i] = 0
		}
	}()

	ks, err := keystore.Encrypt(privateKey, k.password, k.params)
	if err != nil {
		return "", err
	}

	data, err := json.Marshal(ks)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal keystore JSON")
	}

	path := filepath.Join(k.dir, keyFileName(k.now(), ks.Address))
	if err := os.WriteFile(path, data, keystoreFileMode); err != nil {
		return "", errors.Wrap(err, "failed to write keystore file")
	}

	return path, nil
}

// keyFileName returns UTC--<ISO8601 with dashes>--<address>, e.g.
// UTC--2026-10-15T08-30-00.000000000Z--bfaa91e6a8fdc391126c920a6e36cc6740935a6c
func keyFileName(t time.Time, addr string) string {
	t = t.UTC()
	return fmt.Sprintf("UTC--%04d-%02d-%02dT%02d-%02d-%02d.%09dZ--%s",
		t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), addr)
}
