package export_test

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/subosito/gotenv"
	"github/chapool/hdderive/internal/account"
	"github/chapool/hdderive/internal/export"
	"github/chapool/hdderive/internal/keystore"
)

const testPassword = "correct horse battery staple"

func testAccounts() []account.Account {
	return []account.Account{
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
}

func readEnv(t *testing.T, path string) gotenv.Env {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	env, err := gotenv.StrictParse(f)
	require.NoError(t, err)

	return env
}

func TestEnvFileExport(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	accounts := testAccounts()

	err := export.NewEnvFile(path, false).Export(context.Background(), accounts)
	require.NoError(t, err)

	env := readEnv(t, path)
	assert.Len(t, env, len(accounts))
	for _, acc := range accounts {
		assert.Equal(t, acc.PrivateKeyHex, env[export.PrivateKeyVar(acc.Index)])
		assert.NotContains(t, env, export.AddressVar(acc.Index))
	}

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestEnvFileExportWithAddress(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	accounts := testAccounts()

	err := export.NewEnvFile(path, true).Export(context.Background(), accounts)
	require.NoError(t, err)

	env := readEnv(t, path)
	assert.Len(t, env, 2*len(accounts))
	for _, acc := range accounts {
		assert.Equal(t, acc.PrivateKeyHex, env[export.PrivateKeyVar(acc.Index)])
		assert.Equal(t, acc.Address, env[export.AddressVar(acc.Index)])
	}
}

func TestEnvFileExportAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RPC_URL=http://localhost:8545\n"), 0o600))

	accounts := testAccounts()
	err := export.NewEnvFile(path, false).Export(context.Background(), accounts)
	require.NoError(t, err)

	env := readEnv(t, path)
	assert.Equal(t, "http://localhost:8545", env["RPC_URL"])
	assert.Equal(t, accounts[2].PrivateKeyHex, env["ACCOUNT_2_PRIVATE_KEY"])

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	// request order is preserved
	content := string(data)
	first := strings.Index(content, "ACCOUNT_0_PRIVATE_KEY")
	second := strings.Index(content, "ACCOUNT_1_PRIVATE_KEY")
	third := strings.Index(content, "ACCOUNT_2_PRIVATE_KEY")
	assert.Less(t, strings.Index(content, "RPC_URL"), first)
	assert.Less(t, first, second)
	assert.Less(t, second, third)
}

func TestEnvFileExportMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", ".env")

	err := export.NewEnvFile(path, false).Export(context.Background(), testAccounts())
	require.Error(t, err)
}

func TestVarNames(t *testing.T) {
	assert.Equal(t, "ACCOUNT_7_PRIVATE_KEY", export.PrivateKeyVar(7))
	assert.Equal(t, "ACCOUNT_7_ADDRESS", export.AddressVar(7))
}

func TestKeystoreDirExport(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "keystore")
	accounts := testAccounts()

	err := export.NewKeystoreDir(dir, testPassword, keystore.LightScryptParams()).
		Export(context.Background(), accounts)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, len(accounts))

	for _, acc := range accounts {
		suffix := "--" + strings.ToLower(strings.TrimPrefix(acc.Address, "0x"))

		var found string
		for _, entry := range entries {
			if strings.HasSuffix(entry.Name(), suffix) {
				found = entry.Name()
			}
		}
		require.NotEmpty(t, found, "no keystore file for account %d", acc.Index)
		assert.True(t, strings.HasPrefix(found, "UTC--"))

		info, err := os.Stat(filepath.Join(dir, found))
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

		data, err := os.ReadFile(filepath.Join(dir, found))
		require.NoError(t, err)

		var ks keystore.KeystoreJSON
		require.NoError(t, json.Unmarshal(data, &ks))

		privateKey, err := keystore.Decrypt(&ks, testPassword)
		require.NoError(t, err)
		assert.Equal(t, acc.PrivateKeyHex, hex.EncodeToString(privateKey))
	}
}

func TestKeystoreDirExportInvalidKey(t *testing.T) {
	accounts := testAccounts()
	accounts[1].PrivateKeyHex = "not-hex"

	err := export.NewKeystoreDir(t.TempDir(), testPassword, keystore.LightScryptParams()).
		Export(context.Background(), accounts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "account 1")
}
