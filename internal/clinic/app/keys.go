package app

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aussiebroadwan/clinic/pkg/jwtx"
)

// InitKeys builds the KeyManager that signs and verifies identity tokens.
//
// With CLINIC_SIGNING_KEY_FILE set, the Ed25519 key in that file is used and
// tokens stay valid across restarts (sessions still live in the database).
// Otherwise fresh keys are generated in memory and every restart signs all
// users out.
func InitKeys(cfg Config, logger *slog.Logger) (*jwtx.KeyManager, error) {
	if cfg.SigningKeyFile != "" {
		pemKey, err := os.ReadFile(cfg.SigningKeyFile)
		if err != nil {
			return nil, fmt.Errorf("read signing key: %w", err)
		}

		km, err := jwtx.NewKeyManagerFromPEM(cfg.Issuer, pemKey)
		if err != nil {
			return nil, fmt.Errorf("load signing key: %w", err)
		}

		logger.Info("signing key loaded",
			"algorithm", km.Algorithm(),
			"kid", km.GetSigner().KID(),
			"issuer", cfg.Issuer,
		)
		return km, nil
	}

	logger.Info("initializing ephemeral key manager", "num_keys", cfg.NumKeys)

	km, err := jwtx.NewEphemeralKeyManager(jwtx.KeyManagerOptions{
		Issuer:  cfg.Issuer,
		NumKeys: cfg.NumKeys,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize ephemeral key manager: %w", err)
	}

	logger.Info("generated ephemeral signing keys",
		"algorithm", km.Algorithm(),
		"num_keys", km.NumSigners(),
		"issuer", cfg.Issuer,
	)
	logger.Warn("all existing tokens are now invalid due to key rotation on startup")

	return km, nil
}
