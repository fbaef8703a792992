package extractor

import (
	"context"
	"net/url"
	"strings"

	"github.com/yungbote/vectorbridge-backend/internal/platform/logger"
	pb "github.com/yungbote/vectorbridge-backend/internal/proto"
)

// youtubeExtractor resolves a video id out of the job URL and asks the
// transcript service for the caption track. An unrecognized URL yields an
// empty result, not an error, so the job completes as not-analyzed.
type youtubeExtractor struct {
	log        *logger.Logger
	transcript TranscriptClient
}

func NewYoutubeExtractor(log *logger.Logger, transcript TranscriptClient) Extractor {
	return &youtubeExtractor{
		log:        log.With("extractor", "youtube"),
		transcript: transcript,
	}
}

func (e *youtubeExtractor) Extract(ctx context.Context, job *pb.ChunkingData) ([]Item, error) {
	videoID, ok := VideoID(job.GetUrl())
	if !ok {
		e.log.Warn("Not a recognizable YouTube URL", "url", job.GetUrl())
		return nil, nil
	}
	segments, err := e.transcript.Fetch(ctx, videoID)
	if err != nil {
		return nil, err
	}
	transcript := strings.TrimSpace(strings.Join(segments, "\n"))
	if transcript == "" {
		return nil, nil
	}
	return []Item{{Ref: job.GetUrl(), Content: transcript}}, nil
}

// VideoID extracts the video id from the URL shapes YouTube serves:
// youtu.be/<id>, /watch?v=<id>, /embed/<id> and /v/<id>.
func VideoID(rawURL string) (string, bool) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil {
		return "", false
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtu.be":
		id := strings.Trim(u.Path, "/")
		return id, id != ""
	case "youtube.com":
		if u.Path == "/watch" {
			id := u.Query().Get("v")
			return id, id != ""
		}
		for _, prefix := range []string{"/embed/", "/v/"} {
			if strings.HasPrefix(u.Path, prefix) {
				id := strings.SplitN(strings.TrimPrefix(u.Path, prefix), "/", 2)[0]
				return id, id != ""
			}
		}
	}
	return "", false
}
