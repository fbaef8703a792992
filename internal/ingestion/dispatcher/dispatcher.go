package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"

	"github.com/yungbote/vectorbridge-backend/internal/ingestion/chunker"
	"github.com/yungbote/vectorbridge-backend/internal/ingestion/extractor"
	"github.com/yungbote/vectorbridge-backend/internal/platform/embedder"
	"github.com/yungbote/vectorbridge-backend/internal/platform/logger"
	"github.com/yungbote/vectorbridge-backend/internal/platform/milvus"
	pb "github.com/yungbote/vectorbridge-backend/internal/proto"
	"github.com/yungbote/vectorbridge-backend/internal/repos"
	"github.com/yungbote/vectorbridge-backend/internal/types"
)

const insertBatchSize = 100

// Dispatcher runs one job end to end and owns the ack/nak decision. Every
// lower layer reports errors up; nothing below this point touches the
// message or the connector status.
type Dispatcher struct {
	log           *logger.Logger
	documentRepo  repos.DocumentRepo
	connectorRepo repos.ConnectorRepo
	store         milvus.Store
	embedder      embedder.Client
	splitter      *chunker.Splitter
	extractorDeps extractor.Deps
	ackWait       time.Duration
}

func New(
	log *logger.Logger,
	documentRepo repos.DocumentRepo,
	connectorRepo repos.ConnectorRepo,
	store milvus.Store,
	embedClient embedder.Client,
	splitter *chunker.Splitter,
	extractorDeps extractor.Deps,
	ackWait time.Duration,
) *Dispatcher {
	return &Dispatcher{
		log:           log.With("service", "Dispatcher"),
		documentRepo:  documentRepo,
		connectorRepo: connectorRepo,
		store:         store,
		embedder:      embedClient,
		splitter:      splitter,
		extractorDeps: extractorDeps,
		ackWait:       ackWait,
	}
}

// HandleMessage is the subscriber handler. Poison messages are acked so the
// queue drains; real failures nak so the broker redelivers within
// max_deliver.
func (d *Dispatcher) HandleMessage(ctx context.Context, msg *nats.Msg) (err error) {
	defer func() {
		if r := recover(); r != nil {
			d.log.Error("Panic while processing message", "panic", r)
			_ = msg.Nak()
			err = fmt.Errorf("panic while processing message: %v", r)
		}
	}()

	var job pb.ChunkingData
	if err := proto.Unmarshal(msg.Data, &job); err != nil {
		d.log.Error("Undecodable message, dropping", "error", err)
		_ = msg.Ack()
		return nil
	}
	log := d.log.With("document_id", job.GetDocumentId(), "file_type", job.GetFileType().String())

	if job.GetDocumentId() <= 0 {
		log.Error("Poison message: non-positive document id, dropping")
		_ = msg.Ack()
		return nil
	}
	doc, err := d.documentRepo.GetByID(ctx, nil, job.GetDocumentId())
	if err != nil {
		log.Error("Poison message: document row not found, dropping", "error", err)
		_ = msg.Ack()
		return nil
	}
	ext, err := extractor.ForFileType(job.GetFileType(), d.extractorDeps)
	if err != nil {
		log.Error("Poison message: no extractor for file type, dropping", "error", err)
		_ = msg.Ack()
		return nil
	}

	deadline := newDeadline(d.ackWait)
	if err := d.process(ctx, log, &job, doc, ext, deadline); err != nil {
		if isBadJob(err) {
			log.Error("Bad job, dropping", "elapsed", deadline.elapsed(), "error", err)
			_ = msg.Ack()
			return nil
		}
		log.Error("Job failed", "elapsed", deadline.elapsed(), "error", err)
		if stErr := d.connectorRepo.MarkError(ctx, nil, doc.ConnectorID); stErr != nil {
			log.Error("Failed to record connector error status", "connector_id", doc.ConnectorID, "error", stErr)
		}
		_ = msg.Nak()
		return err
	}
	_ = msg.Ack()
	return nil
}

func (d *Dispatcher) process(
	ctx context.Context,
	log *logger.Logger,
	job *pb.ChunkingData,
	doc *types.Document,
	ext extractor.Extractor,
	deadline *deadline,
) error {
	if err := d.connectorRepo.MarkProcessing(ctx, nil, doc.ConnectorID); err != nil {
		return err
	}
	log.Info("Job started", "connector_id", doc.ConnectorID, "url", job.GetUrl())

	items, err := ext.Extract(ctx, job)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}

	now := time.Now().UTC()
	if len(items) == 0 {
		// Nothing extractable is still a finished job; the parent row
		// records that no analysis happened.
		doc.Analyzed = false
		doc.LastUpdate = &now
		if err := d.documentRepo.Update(ctx, nil, doc); err != nil {
			return err
		}
		if err := d.connectorRepo.MarkSuccess(ctx, nil, doc.ConnectorID, 0); err != nil {
			return err
		}
		log.Info("Job finished with empty extraction")
		return nil
	}

	inserted, err := d.index(ctx, log, job, doc, items, deadline)
	if err != nil {
		return err
	}
	if err := d.connectorRepo.MarkSuccess(ctx, nil, doc.ConnectorID, inserted); err != nil {
		return err
	}
	log.Info("Job finished", "items", len(items), "chunks_inserted", inserted, "elapsed", deadline.elapsed())
	return nil
}

// index performs the idempotent replace: wipe prior vectors and child rows,
// then repopulate both under a fresh chunking session.
func (d *Dispatcher) index(
	ctx context.Context,
	log *logger.Logger,
	job *pb.ChunkingData,
	doc *types.Document,
	items []extractor.Item,
	deadline *deadline,
) (int64, error) {
	collection := job.GetCollectionName()
	dim := int(job.GetModelDimension())

	if err := d.store.ReplaceDocument(ctx, collection, doc.ID); err != nil {
		return 0, err
	}
	if err := d.store.EnsureCollection(ctx, collection, dim); err != nil {
		return 0, err
	}
	if _, err := d.documentRepo.DeleteByParentID(ctx, nil, doc.ID); err != nil {
		return 0, err
	}

	session := uuid.New()
	var staged []milvus.Chunk
	var inserted int64

	flush := func() error {
		if len(staged) == 0 {
			return nil
		}
		n, err := d.store.InsertChunks(ctx, collection, dim, staged)
		if err != nil {
			return err
		}
		inserted += n
		staged = staged[:0]
		return nil
	}

	for _, item := range items {
		if err := deadline.check(); err != nil {
			return 0, err
		}
		itemDocID := doc.ID
		if item.Ref != job.GetUrl() {
			child, err := d.childDocument(ctx, doc, item.Ref, session)
			if err != nil {
				return 0, err
			}
			itemDocID = child.ID
		}
		for _, piece := range d.splitter.Split(item.Content) {
			if err := deadline.check(); err != nil {
				return 0, err
			}
			content := milvus.TruncateContent(piece)
			vector, err := d.embedder.Embed(ctx, content, job.GetModelName())
			if err != nil {
				return 0, fmt.Errorf("embed chunk of %q: %w", item.Ref, err)
			}
			staged = append(staged, milvus.Chunk{
				DocumentID: itemDocID,
				ParentID:   doc.ID,
				Content:    content,
				Vector:     vector,
			})
			if len(staged) >= insertBatchSize {
				if err := flush(); err != nil {
					return 0, err
				}
			}
		}
	}
	if err := flush(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()
	doc.Analyzed = true
	doc.ChunkingSession = &session
	doc.LastUpdate = &now
	if err := d.documentRepo.Update(ctx, nil, doc); err != nil {
		return 0, err
	}
	log.Debug("Indexed document", "chunking_session", session, "chunks", inserted)
	return inserted, nil
}

// isBadJob reports a permanent validation failure, like a collection
// dimension mismatch. Redelivery cannot fix it, so the message is dropped
// the same way other poison messages are.
func isBadJob(err error) bool {
	var opError *milvus.OperationError
	return errors.As(err, &opError) && opError.Code == milvus.OperationErrorValidation
}

func (d *Dispatcher) childDocument(ctx context.Context, parent *types.Document, ref string, session uuid.UUID) (*types.Document, error) {
	now := time.Now().UTC()
	child := &types.Document{
		ParentID:        &parent.ID,
		ConnectorID:     parent.ConnectorID,
		SourceID:        ref,
		URL:             ref,
		ChunkingSession: &session,
		Analyzed:        true,
		CreationDate:    now,
		LastUpdate:      &now,
	}
	if err := d.documentRepo.Create(ctx, nil, child); err != nil {
		return nil, err
	}
	return child, nil
}
