package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/network/netpoll"
	"github.com/spf13/cobra"

	"github.com/prxkc/instrat-mcp/internal/catalog"
	"github.com/prxkc/instrat-mcp/internal/config"
	"github.com/prxkc/instrat-mcp/internal/handler"
	"github.com/prxkc/instrat-mcp/internal/llm"
	"github.com/prxkc/instrat-mcp/internal/router"
	"github.com/prxkc/instrat-mcp/internal/usecase"
	"github.com/prxkc/instrat-mcp/pkg/logger"
)

var (
	cfgFile string
	version = "0.1.0"
)

var rootCmd = &cobra.Command{
	Use:   "mcp-server",
	Short: "MCP demo server exposing resources, tools, prompts, and chat",
	Long: `MCP demo server is an HTTP API server built with the Hertz framework.
It exposes a static catalog of resources, tools, and prompt templates, plus a
chat endpoint that assembles a language-model request from those primitives
and forwards it to the configured provider (OpenAI, Gemini, or an offline
mock fallback).`,
	Version: version,
	Run:     runServer,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "path to config file (optional)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func runServer(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.Setup(cfg.Log); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}

	slog.Info("MCP demo server starting...",
		"version", version,
		"provider", cfg.LLM.Provider,
		"mock", cfg.LLM.UseMock(),
	)

	// Route hertz framework logs through slog.
	hlog.SetLogger(logger.NewHertzSlogAdapter(slog.Default()))

	// Process-wide singletons: the catalog and the resolved provider client
	// are constructed once here and shared read-only by every request.
	cat := catalog.New()
	llmClient := llm.BuildClient(cfg.LLM, slog.Default())

	catalogUsecase := usecase.NewCatalogUsecase(cat, slog.Default())
	catalogHandler := handler.NewCatalogHandler(catalogUsecase, slog.Default())

	chatUsecase := usecase.NewChatUsecase(llmClient, cat, slog.Default())
	chatHandler := handler.NewChatHandler(chatUsecase, slog.Default())

	healthHandler := handler.NewHealthHandler()
	frontendHandler := handler.NewFrontendHandler(cfg.Frontend.IndexPath)

	h := server.Default(
		server.WithHostPorts(cfg.GetServerAddr()),
		server.WithReadTimeout(cfg.Server.ReadTimeout),
		server.WithWriteTimeout(cfg.Server.WriteTimeout),
		server.WithMaxRequestBodySize(cfg.Server.MaxRequestBodySize*1024*1024),
		server.WithTransport(netpoll.NewTransporter),
	)

	router.Setup(h, catalogHandler, chatHandler, healthHandler, frontendHandler)

	slog.Info("server started successfully",
		"address", cfg.GetServerAddr(),
		"mode", cfg.Server.Mode,
	)

	go func() {
		if err := h.Run(); err != nil {
			slog.Error("server run failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := h.Shutdown(ctx); err != nil {
		slog.Error("server shutdown failed", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
