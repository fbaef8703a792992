package extractor

import (
	"context"
	"fmt"

	"github.com/yungbote/vectorbridge-backend/internal/platform/gcp"
	"github.com/yungbote/vectorbridge-backend/internal/platform/logger"
	pb "github.com/yungbote/vectorbridge-backend/internal/proto"
)

// Item is one extracted unit of text: a crawled page, a markdown section,
// a whole plain document or a transcript.
type Item struct {
	Ref     string
	Content string
}

type Extractor interface {
	Extract(ctx context.Context, job *pb.ChunkingData) ([]Item, error)
}

// Deps carries the collaborators the individual extractors need.
type Deps struct {
	Log        *logger.Logger
	Bucket     gcp.BucketService
	Converter  ConverterClient
	Transcript TranscriptClient
	Crawl      CrawlConfig
}

// ForFileType selects the extractor for a job. An unknown file type is the
// caller's poison-message signal.
func ForFileType(fileType pb.FileType, deps Deps) (Extractor, error) {
	switch fileType {
	case pb.FileType_URL:
		return NewURLExtractor(deps.Log, deps.Crawl), nil
	case pb.FileType_PDF, pb.FileType_DOC:
		return NewDocumentExtractor(deps.Log, deps.Bucket, deps.Converter), nil
	case pb.FileType_TXT, pb.FileType_MD:
		return NewPlainExtractor(deps.Log, deps.Bucket), nil
	case pb.FileType_YT:
		return NewYoutubeExtractor(deps.Log, deps.Transcript), nil
	default:
		return nil, fmt.Errorf("unsupported file type %s", fileType)
	}
}
