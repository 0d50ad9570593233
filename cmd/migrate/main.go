package main

import (
	"os"
	"reservo/config"
	"reservo/helper"
	"reservo/shared/logger"

	"github.com/rs/zerolog/log"
)

const (
	argLength = 2
)

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration direction (up/down) is required")
	}

	cfg := config.Get()
	logger.SetLogLevel(cfg)

	var err error

	switch os.Args[1] {
	case "up":
		err = helper.Up(cfg)
	case "down":
		err = helper.Down(cfg)
	case "drop":
		err = helper.Drop(cfg)
	case "step-up":
		err = helper.StepUp(cfg)
	default:
		log.Fatal().Str("direction", os.Args[1]).Msg("Invalid direction. Use 'up', 'down', 'drop' or 'step-up'")
	}

	if err != nil {
		log.Fatal().Err(err).Str("direction", os.Args[1]).Msg("Migration failed")
	}
}
