package keystore

import (
	"crypto/aes"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"github.com/pkg/errors"
	"github/chapool/hdderive/internal/address"
	"golang.org/x/crypto/scrypt"
)

// ErrMACMismatch is returned when the password does not match the keystore.
var ErrMACMismatch = errors.New("invalid password: MAC mismatch")

// Decrypt decrypts a private key from Ethereum keystore v3 format
func Decrypt(keystoreJSON *KeystoreJSON, password string) ([]byte, error) {
	if keystoreJSON.Version != version || keystoreJSON.Crypto.Cipher != cipherName || keystoreJSON.Crypto.KDF != kdfName {
		return nil, fmt.Errorf("unsupported keystore: version %d, cipher %q, kdf %q",
			keystoreJSON.Version, keystoreJSON.Crypto.Cipher, keystoreJSON.Crypto.KDF)
	}

	salt, err := hex.DecodeString(keystoreJSON.Crypto.KDFParams.Salt)
	if err != nil {
		return nil, fmt.Errorf("failed to decode salt: %w", err)
	}

	//nolint:varnamelen // iv is a common abbreviation for initialization vector
	iv, err := hex.DecodeString(keystoreJSON.Crypto.CipherParams.IV)
	if err != nil {
		return nil, fmt.Errorf("failed to decode IV: %w", err)
	}

	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("IV must be %d bytes", aes.BlockSize)
	}

	ciphertext, err := hex.DecodeString(keystoreJSON.Crypto.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decode ciphertext: %w", err)
	}

	expectedMAC, err := hex.DecodeString(keystoreJSON.Crypto.MAC)
	if err != nil {
		return nil, fmt.Errorf("failed to decode MAC: %w", err)
	}

	params := keystoreJSON.Crypto.KDFParams
	if params.DKLen < minDKLen {
		return nil, fmt.Errorf("derived key length must be at least %d bytes", minDKLen)
	}

	derivedKey, err := scrypt.Key([]byte(password), salt, params.N, params.R, params.P, params.DKLen)
	if err != nil {
		return nil, fmt.Errorf("failed to derive key: %w", err)
	}

	mac := calculateMAC(derivedKey[16:32], ciphertext)
	if subtle.ConstantTimeCompare(mac, expectedMAC) != 1 {
		return nil, ErrMACMismatch
	}

	privateKey, err := aes128CTR(derivedKey[:16], iv, ciphertext)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt private key: %w", err)
	}

	addr, err := address.FromPrivateKey(privateKey)
	if err != nil {
		return nil, fmt.Errorf("decrypted key is invalid: %w", err)
	}

	if keystoreJSON.Address != "" && !address.Equal(addr, "0x"+keystoreJSON.Address) {
		return nil, errors.Errorf("decrypted key belongs to %s, keystore claims 0x%s", addr, keystoreJSON.Address)
	}

	return privateKey, nil
}
