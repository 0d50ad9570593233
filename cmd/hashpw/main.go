package main

import (
	"fmt"
	"os"
	"reservo/shared/logger"
	"reservo/shared/password"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

// Prints a bcrypt hash suitable for APP_STAFF_PASSWORD_HASH.
func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Password argument is required")
	}

	hash, err := password.Hash(os.Args[1])
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to hash password")
	}

	fmt.Println(hash)
}
