package export

import (
	"context"
	"fmt"

	"github/chapool/hdderive/internal/account"
)

// Exporter persists derived accounts. It is only called after a batch has completed.
type Exporter interface {
	Export(ctx context.Context, accounts []account.Account) error
}

// PrivateKeyVar is the dotenv variable holding the private key of an account.
func PrivateKeyVar(index uint32) string {
	return fmt.Sprintf("ACCOUNT_%d_PRIVATE_KEY", index)
}

// AddressVar is the dotenv variable holding the address of an account.
func AddressVar(index uint32) string {
	return fmt.Sprintf("ACCOUNT_%d_ADDRESS", index)
}
