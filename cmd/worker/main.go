package main

import (
  "context"
  "fmt"
  "os"
  "os/signal"
  "syscall"
  "github.com/yungbote/vectorbridge-backend/internal/platform/logger"
  "github.com/yungbote/vectorbridge-backend/internal/platform/envutil"
  "github.com/yungbote/vectorbridge-backend/internal/platform/embedder"
  "github.com/yungbote/vectorbridge-backend/internal/platform/gcp"
  "github.com/yungbote/vectorbridge-backend/internal/platform/milvus"
  "github.com/yungbote/vectorbridge-backend/internal/platform/natsx"
  "github.com/yungbote/vectorbridge-backend/internal/db"
  "github.com/yungbote/vectorbridge-backend/internal/repos"
  "github.com/yungbote/vectorbridge-backend/internal/ingestion/chunker"
  "github.com/yungbote/vectorbridge-backend/internal/ingestion/dispatcher"
  "github.com/yungbote/vectorbridge-backend/internal/ingestion/extractor"
  "github.com/yungbote/vectorbridge-backend/internal/ingestion/worker"
)

func main() {
  // Logger
  logMode := envutil.Str("LOG_MODE", "development")
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
  defer stop()

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Warn("Postgres auto migration failed", "error", err)
  }
  thePG := postgresService.DB()

  // Repos
  documentRepo := repos.NewDocumentRepo(thePG, log)
  connectorRepo := repos.NewConnectorRepo(thePG, log)

  // Platform clients
  natsCfg := natsx.ResolveConfigFromEnv()
  milvusCfg, err := milvus.ResolveConfigFromEnv()
  if err != nil {
    log.Error("Invalid Milvus config", "error", err)
    os.Exit(1)
  }
  store, err := milvus.NewStore(ctx, log, milvusCfg)
  if err != nil {
    log.Error("Could not init Milvus store", "error", err)
    os.Exit(1)
  }
  defer store.Close()
  embedClient, err := embedder.NewClient(log)
  if err != nil {
    log.Error("Could not init embedder client", "error", err)
    os.Exit(1)
  }
  bucketService, err := gcp.NewBucketService(log)
  if err != nil {
    log.Error("Could not init BucketService", "error", err)
    os.Exit(1)
  }
  converterClient, err := extractor.NewConverterClient()
  if err != nil {
    log.Warn("Converter client unavailable, PDF/DOC jobs will fail", "error", err)
  }
  transcriptClient, err := extractor.NewTranscriptClient()
  if err != nil {
    log.Warn("Transcript client unavailable, YT jobs will fail", "error", err)
  }

  // Dispatcher
  splitter := chunker.New(chunker.ConfigFromEnv())
  extractorDeps := extractor.Deps{
    Log:        log,
    Bucket:     bucketService,
    Converter:  converterClient,
    Transcript: transcriptClient,
    Crawl:      extractor.CrawlConfigFromEnv(),
  }
  jobDispatcher := dispatcher.New(log, documentRepo, connectorRepo, store, embedClient, splitter, extractorDeps, natsCfg.AckWait)

  // Supervisor
  probe := worker.NewProbe(log)
  w := worker.New(log, natsCfg, jobDispatcher, probe)
  log.Info("Worker starting", "stream", natsCfg.StreamName, "subject", natsCfg.StreamSubject)
  if err := w.Run(ctx); err != nil {
    log.Error("Worker exited with error", "error", err)
    os.Exit(1)
  }
  log.Info("Worker drained and stopped")
}
