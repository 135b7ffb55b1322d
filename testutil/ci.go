package testutil

import (
	"os"
	"testing"
)

const envUseCI = "MASSCRYPTO_CI"

// SkipCI skips heavyweight tests unless the CI environment opts in.
func SkipCI(t *testing.T) {
	if os.Getenv(envUseCI) == "" {
		t.Skip("Skip MASSCRYPTO CI")
	}
}
