package main

import (
	"context"

	"github.com/rs/zerolog/log"

	promptx "github.com/Maadhav/rental-ai-agent/agent/prompt"
	storex "github.com/Maadhav/rental-ai-agent/agent/store"
	toolx "github.com/Maadhav/rental-ai-agent/agent/tool"
	configx "github.com/Maadhav/rental-ai-agent/pkg/config"
	_ "github.com/Maadhav/rental-ai-agent/pkg/logger/autoload"
)

func main() {
	ctx := context.Background()

	st := storex.MustOpen(ctx, *configx.MustNew[storex.Config]("STORE"))
	defer st.Close()

	infos, executor, err := toolx.Build(st)
	if err != nil {
		log.Fatal().Err(err).Msg("build leasing tool catalog")
	}
	_ = executor // handed to the hosting dialogue engine alongside the infos

	log.Info().
		Int("tools", len(infos)).
		Int("instruction_chars", len(promptx.LeasingInstruction())).
		Msg("leasing tool catalog ready")
}
