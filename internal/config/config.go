package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DefaultAddr is where the dealer listens and clients dial unless
// BARAHA_ADDR says otherwise.
const DefaultAddr = "127.0.0.1:2222"

// Addr resolves the session address. A .env file is honored in
// development; a missing one is not an error.
func Addr() string {
	_ = godotenv.Load()
	if addr := os.Getenv("BARAHA_ADDR"); addr != "" {
		return addr
	}
	return DefaultAddr
}
