package extractor

import (
	"context"

	"github.com/yungbote/vectorbridge-backend/internal/platform/gcp"
	"github.com/yungbote/vectorbridge-backend/internal/platform/logger"
	pb "github.com/yungbote/vectorbridge-backend/internal/proto"
)

// plainExtractor serves TXT and MD jobs: the whole blob is one Item, no
// conversion step.
type plainExtractor struct {
	log    *logger.Logger
	bucket gcp.BucketService
}

func NewPlainExtractor(log *logger.Logger, bucket gcp.BucketService) Extractor {
	return &plainExtractor{
		log:    log.With("extractor", "plain"),
		bucket: bucket,
	}
}

func (e *plainExtractor) Extract(ctx context.Context, job *pb.ChunkingData) ([]Item, error) {
	ref, err := gcp.ParseObjectRef(job.GetUrl())
	if err != nil {
		return nil, err
	}
	data, err := e.bucket.ReadObject(ctx, ref)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, nil
	}
	return []Item{{Ref: job.GetUrl(), Content: string(data)}}, nil
}
