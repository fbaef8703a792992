package embedder

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/yungbote/vectorbridge-backend/internal/platform/logger"
	pb "github.com/yungbote/vectorbridge-backend/internal/proto"
)

// Embedding payloads carry whole chunks both ways, so the frames are far
// above the gRPC 4 MiB default.
const maxMessageBytes = 100 * 1024 * 1024

type Client interface {
	Embed(ctx context.Context, content, model string) ([]float32, error)
}

type client struct {
	log    *logger.Logger
	target string
}

func NewClient(log *logger.Logger) (Client, error) {
	host := strings.TrimSpace(os.Getenv("EMBEDDER_GRPC_HOST"))
	port := strings.TrimSpace(os.Getenv("EMBEDDER_GRPC_PORT"))
	if host == "" {
		return nil, fmt.Errorf("EMBEDDER_GRPC_HOST is required")
	}
	if port == "" {
		port = "50051"
	}
	clientLog := log.With("service", "EmbedderClient")
	clientLog.Info("Embedder client configured", "target", host+":"+port)
	return &client{log: clientLog, target: host + ":" + port}, nil
}

// Embed opens a channel per call. The embedder sits on the same network
// segment and the per-dial cost is small next to the model inference time.
func (c *client) Embed(ctx context.Context, content, model string) ([]float32, error) {
	conn, err := grpc.NewClient(c.target,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallSendMsgSize(maxMessageBytes),
			grpc.MaxCallRecvMsgSize(maxMessageBytes),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("Failed to dial embedder at %s: %w", c.target, err)
	}
	defer conn.Close()

	resp, err := pb.NewEmbedServiceClient(conn).GetEmbedding(ctx, &pb.EmbedRequest{
		Content: content,
		Model:   model,
	})
	if err != nil {
		return nil, fmt.Errorf("GetEmbedding failed: %w", err)
	}
	return resp.GetVector(), nil
}
