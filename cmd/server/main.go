package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"portfoliochat/internal/config"
	"portfoliochat/internal/gemini"
	"portfoliochat/internal/knowledge"
	"portfoliochat/internal/matcher"
	"portfoliochat/internal/resolver"
	"portfoliochat/internal/server"
)

func main() {
	ctx := context.Background()
	cfg := config.Load()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// Knowledge base, with optional overrides from config.yaml
	kb := knowledge.New()
	if yc, err := config.LoadYAMLConfig(); err != nil {
		log.Error("failed to load config file", "error", err)
		os.Exit(1)
	} else if yc != nil {
		kb, err = knowledge.NewWithOverrides(knowledgeOverrides(yc))
		if err != nil {
			log.Error("invalid knowledge overrides", "error", err)
			os.Exit(1)
		}
		log.Info("knowledge overrides applied", "topics", len(yc.Topics))
	}

	completion, err := gemini.New(ctx, cfg, kb, log)
	if err != nil {
		log.Error("failed to initialize completion client", "error", err)
		os.Exit(1)
	}

	res := resolver.New(kb, matcher.New(kb), completion, log)

	srv := server.New(cfg)
	srv.RegisterRoutes(res, log)

	go func() {
		if err := srv.Start(); err != nil {
			log.Error("server error", "error", err)
		}
	}()
	log.Info("server started", "addr", cfg.ServerAddr, "gemini_configured", cfg.HasAPIKey())

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := srv.Shutdown(); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}
	log.Info("server exited")
}

// knowledgeOverrides converts the YAML config shape into knowledge
// base overrides.
func knowledgeOverrides(yc *config.YAMLConfig) knowledge.Overrides {
	o := knowledge.Overrides{
		Keywords: yc.Keywords,
		Phrases:  yc.Phrases,
	}
	for _, t := range yc.Topics {
		topic := knowledge.Topic{ID: t.ID, Text: t.Text}
		for _, f := range t.FollowUps {
			topic.FollowUps = append(topic.FollowUps, knowledge.FollowUp{Label: f.Label, Next: f.Next})
		}
		o.Topics = append(o.Topics, topic)
	}
	return o
}
