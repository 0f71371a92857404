package export

import (
	"context"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/subosito/gotenv"
	"github/chapool/hdderive/internal/account"
	"github/chapool/hdderive/internal/util"
)

const envFileMode = 0o600

// EnvFile appends ACCOUNT_<index>_PRIVATE_KEY lines to a dotenv file.
type EnvFile struct {
	path           string
	includeAddress bool
}

func NewEnvFile(path string, includeAddress bool) *EnvFile {
	return &EnvFile{
		path:           path,
		includeAddress: includeAddress,
	}
}

// Export appends one block per account in request order. Existing content is kept.
func (e *EnvFile) Export(ctx context.Context, accounts []account.Account) error {
	log := util.LogFromContext(ctx).With().Str("component", "env_export").Str("path", e.path).Logger()

	var b strings.Builder
	for _, acc := range accounts {
		env := gotenv.Env{PrivateKeyVar(acc.Index): acc.PrivateKeyHex}
		if e.includeAddress {
			env[AddressVar(acc.Index)] = acc.Address
		}

		lines, err := gotenv.Marshal(env)
		if err != nil {
			return errors.Wrapf(err, "failed to render account %d", acc.Index)
		}
		b.WriteString(lines)
		b.WriteByte('\n')
	}

	f, err := os.OpenFile(e.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, envFileMode)
	if err != nil {
		return errors.Wrap(err, "failed to open env file")
	}

	if _, err := f.WriteString(b.String()); err != nil {
		_ = f.Close()
		return errors.Wrap(err, "failed to write env file")
	}

	if err := f.Close(); err != nil {
		return errors.Wrap(err, "failed to close env file")
	}

	log.Info().Int("accounts", len(accounts)).Msg("Exported accounts to env file")
	return nil
}
