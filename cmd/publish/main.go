package main

import (
  "context"
  "flag"
  "fmt"
  "os"
  "strings"
  "time"
  "google.golang.org/protobuf/proto"
  "github.com/yungbote/vectorbridge-backend/internal/platform/logger"
  "github.com/yungbote/vectorbridge-backend/internal/platform/envutil"
  "github.com/yungbote/vectorbridge-backend/internal/platform/natsx"
  pb "github.com/yungbote/vectorbridge-backend/internal/proto"
)

// Enqueues a single chunking job. Meant for local runs and smoke tests;
// production jobs come from the control plane.
func main() {
  var (
    url        = flag.String("url", "", "source url or blob ref (scheme:bucket:object)")
    documentID = flag.Int64("document-id", 0, "documents row id")
    fileType   = flag.String("file-type", "URL", "one of URL, PDF, DOC, TXT, MD, YT")
    recursive  = flag.Bool("recursive", false, "crawl beyond the seed page (URL only)")
    collection = flag.String("collection", "", "milvus collection name")
    model      = flag.String("model", "", "embedding model name")
    dimension  = flag.Int("dimension", 0, "embedding vector dimension")
  )
  flag.Parse()

  log, err := logger.New(envutil.Str("LOG_MODE", "development"))
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  ftValue, ok := pb.FileType_value[strings.ToUpper(*fileType)]
  if !ok || ftValue == int32(pb.FileType_UNKNOWN) {
    log.Error("Unknown file type", "file_type", *fileType)
    os.Exit(1)
  }
  if *url == "" || *documentID <= 0 || *collection == "" || *model == "" || *dimension <= 0 {
    flag.Usage()
    os.Exit(1)
  }

  job := &pb.ChunkingData{
    Url:            *url,
    DocumentId:     *documentID,
    FileType:       pb.FileType(ftValue),
    UrlRecursive:   *recursive,
    CollectionName: *collection,
    ModelName:      *model,
    ModelDimension: int32(*dimension),
  }
  data, err := proto.Marshal(job)
  if err != nil {
    log.Error("Failed to marshal job", "error", err)
    os.Exit(1)
  }

  publisher, err := natsx.NewPublisher(log, natsx.ResolveConfigFromEnv())
  if err != nil {
    log.Error("Invalid NATS config", "error", err)
    os.Exit(1)
  }
  if err := publisher.Connect(); err != nil {
    log.Error("Failed to connect publisher", "error", err)
    os.Exit(1)
  }
  defer publisher.Close()

  ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
  defer cancel()
  if err := publisher.Publish(ctx, data); err != nil {
    log.Error("Failed to publish job", "error", err)
    os.Exit(1)
  }
  log.Info("Job published", "document_id", *documentID, "file_type", strings.ToUpper(*fileType))
}
