package config

import (
	"os"

	"github.com/pkg/errors"
	"github.com/subosito/gotenv"
)

// LoadDotEnv loads variables from a dotenv file without overriding the ones already set.
// A missing file is not an error.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, "failed to stat %s", path)
	}

	if err := gotenv.Load(path); err != nil {
		return errors.Wrapf(err, "failed to load %s", path)
	}

	return nil
}
