package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/yungbote/vectorbridge-backend/internal/platform/gcp"
	"github.com/yungbote/vectorbridge-backend/internal/platform/logger"
	pb "github.com/yungbote/vectorbridge-backend/internal/proto"
)

// documentExtractor handles PDF and DOC jobs: download the blob, have the
// converter service turn it into markdown, then emit one Item per heading
// section.
type documentExtractor struct {
	log       *logger.Logger
	bucket    gcp.BucketService
	converter ConverterClient
}

func NewDocumentExtractor(log *logger.Logger, bucket gcp.BucketService, converter ConverterClient) Extractor {
	return &documentExtractor{
		log:       log.With("extractor", "document"),
		bucket:    bucket,
		converter: converter,
	}
}

func (e *documentExtractor) Extract(ctx context.Context, job *pb.ChunkingData) ([]Item, error) {
	ref, err := gcp.ParseObjectRef(job.GetUrl())
	if err != nil {
		return nil, err
	}
	data, err := e.bucket.ReadObject(ctx, ref)
	if err != nil {
		return nil, err
	}
	markdown, err := e.converter.ToMarkdown(ctx, ref.Filename(), data)
	if err != nil {
		return nil, fmt.Errorf("convert %s: %w", ref.Filename(), err)
	}
	sections := SplitMarkdownSections(markdown)
	items := make([]Item, 0, len(sections))
	for i, section := range sections {
		items = append(items, Item{
			Ref:     sectionRef(job.GetUrl(), i, section.Title),
			Content: section.Body,
		})
	}
	e.log.Info("Document extracted", "object", ref.Object, "sections", len(items))
	return items, nil
}

func sectionRef(docRef string, index int, title string) string {
	slug := strings.Join(strings.Fields(strings.ToLower(title)), "-")
	if slug == "" {
		return fmt.Sprintf("%s#section-%d", docRef, index)
	}
	return fmt.Sprintf("%s#%s", docRef, slug)
}
