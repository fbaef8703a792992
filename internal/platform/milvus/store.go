package milvus

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	milvus "github.com/milvus-io/milvus-sdk-go/v2/client"
	"github.com/milvus-io/milvus-sdk-go/v2/entity"

	"github.com/yungbote/vectorbridge-backend/internal/platform/logger"
)

const (
	ColumnNameID         = "id"
	ColumnNameDocumentID = "document_id"
	ColumnNameParentID   = "parent_id"
	ColumnNameContent    = "content"
	ColumnNameVector     = "vector"

	// Milvus VARCHAR/JSON hard cap; longer content is truncated, never rejected.
	MaxContentBytes = 65535

	searchListSize = 64
	defaultTopK    = 10
)

var responseColumns = []string{ColumnNameDocumentID, ColumnNameParentID, ColumnNameContent}

// Chunk is one staged vector-store row. ID is assigned by Milvus (auto pk).
type Chunk struct {
	DocumentID int64
	ParentID   int64
	Content    string
	Vector     []float32
}

type SearchHit struct {
	Score      float32
	DocumentID int64
	ParentID   int64
	Content    string
}

type Store interface {
	EnsureCollection(ctx context.Context, collection string, dim int) error
	ReplaceDocument(ctx context.Context, collection string, documentID int64) error
	InsertChunks(ctx context.Context, collection string, dim int, chunks []Chunk) (int64, error)
	Query(ctx context.Context, collection string, vector []float32, topK int) ([]SearchHit, error)
	Close() error
}

type store struct {
	log        *logger.Logger
	cfg        Config
	client     milvus.Client
	metricType entity.MetricType
}

func NewStore(ctx context.Context, log *logger.Logger, cfg Config) (Store, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}
	if err := ValidateConfig(cfg); err != nil {
		return nil, err
	}
	client, err := milvus.NewClient(ctx, milvus.Config{
		Address:  cfg.Address(),
		Username: cfg.Username,
		Password: cfg.Password,
	})
	if err != nil {
		return nil, opErr("connect", OperationErrorTransportFailed, "", err)
	}
	log.Info(
		"Milvus store connected",
		"address", cfg.Address(),
		"index_type", cfg.IndexType,
		"metric_type", cfg.MetricType,
	)
	return &store{
		log:        log.With("service", "MilvusStore"),
		cfg:        cfg,
		client:     client,
		metricType: entity.MetricType(cfg.MetricType),
	}, nil
}

func (s *store) Close() error {
	return s.client.Close()
}

// EnsureCollection creates the collection, its vector index and loads it.
// Safe to call on every job; an existing collection is only verified against
// the requested dimension.
func (s *store) EnsureCollection(ctx context.Context, collection string, dim int) error {
	const op = "ensure_collection"
	if collection == "" {
		return opErr(op, OperationErrorValidation, "collection name is required", nil)
	}
	if dim <= 0 {
		return opErr(op, OperationErrorValidation, fmt.Sprintf("vector dimension must be positive, got %d", dim), nil)
	}
	exists, err := s.client.HasCollection(ctx, collection)
	if err != nil {
		return opErr(op, OperationErrorTransportFailed, "", err)
	}
	if exists {
		if err := s.verifyDimension(ctx, collection, dim); err != nil {
			return err
		}
	} else {
		schema := entity.NewSchema().WithName(collection).
			WithField(entity.NewField().WithName(ColumnNameID).WithDataType(entity.FieldTypeInt64).WithIsPrimaryKey(true).WithIsAutoID(true)).
			WithField(entity.NewField().WithName(ColumnNameDocumentID).WithDataType(entity.FieldTypeInt64)).
			WithField(entity.NewField().WithName(ColumnNameParentID).WithDataType(entity.FieldTypeInt64)).
			WithField(entity.NewField().WithName(ColumnNameContent).WithDataType(entity.FieldTypeJSON)).
			WithField(entity.NewField().WithName(ColumnNameVector).WithDataType(entity.FieldTypeFloatVector).WithDim(int64(dim)))
		if err := s.client.CreateCollection(ctx, schema, 2, milvus.WithAutoID(true)); err != nil {
			return opErr(op, OperationErrorQueryFailed, fmt.Sprintf("create collection %q", collection), err)
		}
		index, err := entity.NewIndexDISKANN(s.metricType)
		if err != nil {
			return opErr(op, OperationErrorValidation, "", err)
		}
		if err := s.client.CreateIndex(ctx, collection, ColumnNameVector, index, true); err != nil {
			return opErr(op, OperationErrorQueryFailed, fmt.Sprintf("create index on %q", collection), err)
		}
	}
	if err := s.client.LoadCollection(ctx, collection, false); err != nil {
		return opErr(op, OperationErrorQueryFailed, fmt.Sprintf("load collection %q", collection), err)
	}
	return nil
}

func (s *store) verifyDimension(ctx context.Context, collection string, dim int) error {
	const op = "ensure_collection"
	desc, err := s.client.DescribeCollection(ctx, collection)
	if err != nil {
		return opErr(op, OperationErrorTransportFailed, "", err)
	}
	for _, field := range desc.Schema.Fields {
		if field.Name != ColumnNameVector {
			continue
		}
		raw, ok := field.TypeParams[entity.TypeParamDim]
		if !ok {
			continue
		}
		existing, err := strconv.Atoi(raw)
		if err != nil {
			return opErr(op, OperationErrorDecodeFailed, fmt.Sprintf("collection %q reports dim=%q", collection, raw), err)
		}
		if existing != dim {
			return opErr(
				op,
				OperationErrorValidation,
				fmt.Sprintf("collection %q dimension mismatch: existing=%d requested=%d", collection, existing, dim),
				nil,
			)
		}
	}
	return nil
}

// ReplaceDocument removes every entity belonging to the document, either as
// the document itself or as one of its crawled children. A missing collection
// is a no-op so first-time jobs replace nothing.
func (s *store) ReplaceDocument(ctx context.Context, collection string, documentID int64) error {
	const op = "replace_document"
	if documentID <= 0 {
		return opErr(op, OperationErrorValidation, fmt.Sprintf("document id must be positive, got %d", documentID), nil)
	}
	exists, err := s.client.HasCollection(ctx, collection)
	if err != nil {
		return opErr(op, OperationErrorTransportFailed, "", err)
	}
	if !exists {
		return nil
	}
	expr := fmt.Sprintf("%s == %d or %s == %d", ColumnNameDocumentID, documentID, ColumnNameParentID, documentID)
	result, err := s.client.Query(ctx, collection, nil, expr, []string{ColumnNameID})
	if err != nil {
		return opErr(op, OperationErrorQueryFailed, fmt.Sprintf("query pks for document %d", documentID), err)
	}
	var pks []int64
	for _, col := range result {
		if col.Name() != ColumnNameID {
			continue
		}
		ids, ok := col.(*entity.ColumnInt64)
		if !ok {
			return opErr(op, OperationErrorDecodeFailed, fmt.Sprintf("pk column has type %T", col), nil)
		}
		pks = ids.Data()
	}
	if len(pks) == 0 {
		return nil
	}
	if err := s.client.DeleteByPks(ctx, collection, "", entity.NewColumnInt64(ColumnNameID, pks)); err != nil {
		return opErr(op, OperationErrorQueryFailed, fmt.Sprintf("delete %d pks for document %d", len(pks), documentID), err)
	}
	if err := s.client.Flush(ctx, collection, false); err != nil {
		return opErr(op, OperationErrorQueryFailed, fmt.Sprintf("flush after delete on %q", collection), err)
	}
	s.log.Debug("Replaced document vectors", "collection", collection, "document_id", documentID, "deleted", len(pks))
	return nil
}

// InsertChunks writes one batch and flushes. Content is truncated to the
// Milvus cap and wrapped as a JSON object before insert.
func (s *store) InsertChunks(ctx context.Context, collection string, dim int, chunks []Chunk) (int64, error) {
	const op = "insert_chunks"
	if len(chunks) == 0 {
		return 0, nil
	}
	documentIDs := make([]int64, 0, len(chunks))
	parentIDs := make([]int64, 0, len(chunks))
	contents := make([][]byte, 0, len(chunks))
	vectors := make([][]float32, 0, len(chunks))
	for i, chunk := range chunks {
		if len(chunk.Vector) != dim {
			return 0, opErr(
				op,
				OperationErrorValidation,
				fmt.Sprintf("chunk %d vector dimension mismatch: expected=%d got=%d", i, dim, len(chunk.Vector)),
				nil,
			)
		}
		payload, err := json.Marshal(map[string]string{"content": TruncateContent(chunk.Content)})
		if err != nil {
			return 0, opErr(op, OperationErrorEncodeFailed, fmt.Sprintf("chunk %d content", i), err)
		}
		documentIDs = append(documentIDs, chunk.DocumentID)
		parentIDs = append(parentIDs, chunk.ParentID)
		contents = append(contents, payload)
		vectors = append(vectors, chunk.Vector)
	}
	if _, err := s.client.Insert(ctx, collection, "",
		entity.NewColumnInt64(ColumnNameDocumentID, documentIDs),
		entity.NewColumnInt64(ColumnNameParentID, parentIDs),
		entity.NewColumnJSONBytes(ColumnNameContent, contents),
		entity.NewColumnFloatVector(ColumnNameVector, dim, vectors),
	); err != nil {
		return 0, opErr(op, OperationErrorQueryFailed, fmt.Sprintf("insert %d chunks", len(chunks)), err)
	}
	if err := s.client.Flush(ctx, collection, false); err != nil {
		return 0, opErr(op, OperationErrorQueryFailed, fmt.Sprintf("flush after insert on %q", collection), err)
	}
	return int64(len(chunks)), nil
}

func (s *store) Query(ctx context.Context, collection string, vector []float32, topK int) ([]SearchHit, error) {
	const op = "query"
	if len(vector) == 0 {
		return nil, opErr(op, OperationErrorValidation, "query vector is required", nil)
	}
	if topK <= 0 {
		topK = defaultTopK
	}
	sp, err := entity.NewIndexDISKANNSearchParam(searchListSize)
	if err != nil {
		return nil, opErr(op, OperationErrorValidation, "", err)
	}
	vs := []entity.Vector{entity.FloatVector(vector)}
	results, err := s.client.Search(ctx, collection, nil, "", responseColumns, vs, ColumnNameVector, s.metricType, topK, sp)
	if err != nil {
		return nil, opErr(op, OperationErrorQueryFailed, "", err)
	}
	var hits []SearchHit
	for _, result := range results {
		for i := 0; i < result.ResultCount; i++ {
			hit := SearchHit{Score: result.Scores[i]}
			for _, field := range result.Fields {
				switch field.Name() {
				case ColumnNameDocumentID:
					hit.DocumentID, err = field.GetAsInt64(i)
				case ColumnNameParentID:
					hit.ParentID, err = field.GetAsInt64(i)
				case ColumnNameContent:
					var raw string
					raw, err = field.GetAsString(i)
					if err == nil {
						hit.Content = contentFromJSON(raw)
					}
				}
				if err != nil {
					return nil, opErr(op, OperationErrorDecodeFailed, fmt.Sprintf("field %q row %d", field.Name(), i), err)
				}
			}
			hits = append(hits, hit)
		}
	}
	return hits, nil
}

// TruncateContent enforces the Milvus byte cap without splitting a rune.
func TruncateContent(content string) string {
	if len(content) <= MaxContentBytes {
		return content
	}
	cut := MaxContentBytes
	for cut > 0 && !isRuneStart(content[cut]) {
		cut--
	}
	return content[:cut]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

func contentFromJSON(raw string) string {
	var payload struct {
		Content string `json:"content"`
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		return raw
	}
	return payload.Content
}
