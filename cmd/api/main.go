package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"customer-support-agents/config"
	"customer-support-agents/internal/agent"
	"customer-support-agents/internal/agent/knowledge"
	"customer-support-agents/internal/agent/orchestrator"
	"customer-support-agents/internal/agent/support"
	"customer-support-agents/internal/agent/tools"
	"customer-support-agents/internal/agent/validator"
	chatHTTP "customer-support-agents/internal/chat/delivery/http"
	"customer-support-agents/internal/httpserver"
	"customer-support-agents/internal/rag"
	"customer-support-agents/internal/store"
	userHTTP "customer-support-agents/internal/user/delivery/http"
	validateHTTP "customer-support-agents/internal/validate/delivery/http"
	"customer-support-agents/pkg/gemini"
	"customer-support-agents/pkg/llmprovider"
	"customer-support-agents/pkg/log"
	"customer-support-agents/pkg/qdrant"
	"customer-support-agents/pkg/voyage"
)

// @title       Customer Support Agents API
// @description Multi-agent customer support: intent routing, RAG answering, support tools and a validation harness.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Customer Support Agents...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Gemini LLM client, hardened as the shared oracle
	geminiClient, err := gemini.NewClient(gemini.Config{
		APIKey:      cfg.Gemini.APIKey,
		Model:       cfg.Gemini.Model,
		Timeout:     cfg.Gemini.Timeout,
		Temperature: cfg.Gemini.Temperature,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize Gemini client: ", err)
		return
	}

	oracle := llmprovider.NewManager(
		llmprovider.NewGeminiAdapter(geminiClient),
		&llmprovider.Config{
			RetryAttempts:  cfg.LLM.RetryAttempts,
			RetryDelay:     cfg.LLM.RetryDelay,
			CallTimeout:    cfg.LLM.CallTimeout,
			RequestsPerMin: cfg.LLM.RequestsPerMin,
		},
		logger,
	)

	// 4. Identity store and support tools
	st := store.New()
	st.Seed()

	toolRegistry := agent.NewToolRegistry()
	tools.RegisterAll(toolRegistry, st)

	// 5. Handler registry and specialized handlers
	registry := agent.NewRegistry()

	var retriever rag.Retriever
	if cfg.Voyage.APIKey != "" {
		embedder, vErr := voyage.New(cfg.Voyage.APIKey)
		if vErr != nil {
			logger.Error(ctx, "Failed to initialize Voyage client: ", vErr)
			return
		}
		retriever, err = rag.New(embedder, qdrant.NewClient(cfg.Qdrant.URL), rag.Config{
			Collection: cfg.Qdrant.CollectionName,
			TopK:       cfg.Retrieval.TopK,
			MinScore:   cfg.Retrieval.MinScore,
		}, logger)
		if err != nil {
			logger.Error(ctx, "Failed to initialize retriever: ", err)
			return
		}
	}

	if retriever != nil {
		knowledge.New(registry, retriever, oracle, logger)
	} else {
		logger.Warn(ctx, "VOYAGE_API_KEY missing, knowledge handler disabled")
	}

	support.New(registry, geminiClient, toolRegistry, logger)

	suite, err := validator.LoadSuite(cfg.Harness.SuitePath)
	if err != nil {
		logger.Warnf(ctx, "Failed to load validation suite: %v", err)
	}
	logger.Infof(ctx, "Validation suite loaded: %d cases", len(suite))
	harness := validator.New(registry, oracle, suite, logger)

	router := orchestrator.New(registry, oracle, logger)
	logger.Infof(ctx, "Handlers registered: %d", len(registry.All()))

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ChatHandler:     chatHTTP.New(logger, router),
		ValidateHandler: validateHTTP.New(logger, harness),
		UserHandler:     userHTTP.New(logger, st),
		Registry:        registry,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
