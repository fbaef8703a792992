package dispatcher

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/nats-io/nats.go"
	"google.golang.org/protobuf/proto"
	"gorm.io/gorm"

	"github.com/yungbote/vectorbridge-backend/internal/ingestion/chunker"
	"github.com/yungbote/vectorbridge-backend/internal/ingestion/extractor"
	"github.com/yungbote/vectorbridge-backend/internal/platform/gcp"
	"github.com/yungbote/vectorbridge-backend/internal/platform/logger"
	"github.com/yungbote/vectorbridge-backend/internal/platform/milvus"
	pb "github.com/yungbote/vectorbridge-backend/internal/proto"
	"github.com/yungbote/vectorbridge-backend/internal/types"
)

type fakeDocumentRepo struct {
	docs       map[int64]*types.Document
	nextID     int64
	created    []*types.Document
	updated    []*types.Document
	deletedFor []int64
}

func newFakeDocumentRepo(docs ...*types.Document) *fakeDocumentRepo {
	repo := &fakeDocumentRepo{docs: map[int64]*types.Document{}, nextID: 1000}
	for _, doc := range docs {
		repo.docs[doc.ID] = doc
	}
	return repo
}

func (f *fakeDocumentRepo) Create(ctx context.Context, tx *gorm.DB, doc *types.Document) error {
	f.nextID++
	doc.ID = f.nextID
	f.docs[doc.ID] = doc
	f.created = append(f.created, doc)
	return nil
}

func (f *fakeDocumentRepo) CreateBatch(ctx context.Context, tx *gorm.DB, docs []*types.Document) ([]*types.Document, error) {
	for _, doc := range docs {
		if err := f.Create(ctx, tx, doc); err != nil {
			return nil, err
		}
	}
	return docs, nil
}

func (f *fakeDocumentRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Document, error) {
	doc, ok := f.docs[id]
	if !ok {
		return nil, fmt.Errorf("document %d not found", id)
	}
	return doc, nil
}

func (f *fakeDocumentRepo) Update(ctx context.Context, tx *gorm.DB, doc *types.Document) error {
	f.docs[doc.ID] = doc
	f.updated = append(f.updated, doc)
	return nil
}

func (f *fakeDocumentRepo) DeleteByParentID(ctx context.Context, tx *gorm.DB, parentID int64) (int64, error) {
	f.deletedFor = append(f.deletedFor, parentID)
	var removed int64
	for id, doc := range f.docs {
		if doc.ParentID != nil && *doc.ParentID == parentID {
			delete(f.docs, id)
			removed++
		}
	}
	return removed, nil
}

type fakeConnectorRepo struct {
	statuses []string
}

func (f *fakeConnectorRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Connector, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeConnectorRepo) Update(ctx context.Context, tx *gorm.DB, conn *types.Connector) error {
	return fmt.Errorf("not implemented")
}

func (f *fakeConnectorRepo) MarkProcessing(ctx context.Context, tx *gorm.DB, id int64) error {
	f.statuses = append(f.statuses, fmt.Sprintf("processing:%d", id))
	return nil
}

func (f *fakeConnectorRepo) MarkSuccess(ctx context.Context, tx *gorm.DB, id int64, docsIndexed int64) error {
	f.statuses = append(f.statuses, fmt.Sprintf("success:%d:%d", id, docsIndexed))
	return nil
}

func (f *fakeConnectorRepo) MarkError(ctx context.Context, tx *gorm.DB, id int64) error {
	f.statuses = append(f.statuses, fmt.Sprintf("error:%d", id))
	return nil
}

type fakeStore struct {
	calls      []string
	inserted   []milvus.Chunk
	ensureErr  error
	replaceErr error
	insertErr  error
}

func (f *fakeStore) EnsureCollection(ctx context.Context, collection string, dim int) error {
	f.calls = append(f.calls, fmt.Sprintf("ensure:%s:%d", collection, dim))
	return f.ensureErr
}

func (f *fakeStore) ReplaceDocument(ctx context.Context, collection string, documentID int64) error {
	f.calls = append(f.calls, fmt.Sprintf("replace:%s:%d", collection, documentID))
	return f.replaceErr
}

func (f *fakeStore) InsertChunks(ctx context.Context, collection string, dim int, chunks []milvus.Chunk) (int64, error) {
	if f.insertErr != nil {
		return 0, f.insertErr
	}
	f.calls = append(f.calls, fmt.Sprintf("insert:%d", len(chunks)))
	f.inserted = append(f.inserted, chunks...)
	return int64(len(chunks)), nil
}

func (f *fakeStore) Query(ctx context.Context, collection string, vector []float32, topK int) ([]milvus.SearchHit, error) {
	return nil, nil
}

func (f *fakeStore) Close() error { return nil }

type fakeEmbedder struct {
	dim   int
	err   error
	calls int
}

func (f *fakeEmbedder) Embed(ctx context.Context, content, model string) ([]float32, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return make([]float32, f.dim), nil
}

type fakeTranscript struct {
	segments []string
}

func (f *fakeTranscript) Fetch(ctx context.Context, videoID string) ([]string, error) {
	return f.segments, nil
}

type fakeConverter struct {
	markdown string
}

func (f *fakeConverter) ToMarkdown(ctx context.Context, filename string, data []byte) (string, error) {
	return f.markdown, nil
}

type fakeBucket struct{}

func (f *fakeBucket) DownloadFile(ctx context.Context, bucket, object string) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader("blob")), nil
}

func (f *fakeBucket) ReadObject(ctx context.Context, ref gcp.ObjectRef) ([]byte, error) {
	return []byte("blob"), nil
}

type fixture struct {
	dispatcher *Dispatcher
	docs       *fakeDocumentRepo
	connectors *fakeConnectorRepo
	store      *fakeStore
	embedder   *fakeEmbedder
}

func newFixture(t *testing.T, deps extractor.Deps, ackWait time.Duration, docs ...*types.Document) *fixture {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("init logger: %v", err)
	}
	if deps.Log == nil {
		deps.Log = log
	}
	f := &fixture{
		docs:       newFakeDocumentRepo(docs...),
		connectors: &fakeConnectorRepo{},
		store:      &fakeStore{},
		embedder:   &fakeEmbedder{dim: 4},
	}
	f.dispatcher = New(
		log,
		f.docs,
		f.connectors,
		f.store,
		f.embedder,
		chunker.New(chunker.Config{Size: 500, Overlap: 3}),
		deps,
		ackWait,
	)
	return f
}

func parentDoc() *types.Document {
	return &types.Document{
		ID:          42,
		ConnectorID: 7,
		SourceID:    "https://youtu.be/abc123",
		URL:         "https://youtu.be/abc123",
	}
}

func youtubeJob() *pb.ChunkingData {
	return &pb.ChunkingData{
		Url:            "https://youtu.be/abc123",
		DocumentId:     42,
		FileType:       pb.FileType_YT,
		CollectionName: "vectors",
		ModelName:      "m1",
		ModelDimension: 4,
	}
}

func message(t *testing.T, job *pb.ChunkingData) *nats.Msg {
	t.Helper()
	data, err := proto.Marshal(job)
	if err != nil {
		t.Fatalf("marshal job: %v", err)
	}
	return &nats.Msg{Data: data}
}

func TestHandleMessageSuccess(t *testing.T) {
	deps := extractor.Deps{Transcript: &fakeTranscript{segments: []string{"caption text for the video"}}}
	f := newFixture(t, deps, time.Hour, parentDoc())

	if err := f.dispatcher.HandleMessage(context.Background(), message(t, youtubeJob())); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	want := []string{"replace:vectors:42", "ensure:vectors:4", "insert:1"}
	if strings.Join(f.store.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("store calls = %v, want %v", f.store.calls, want)
	}
	if len(f.docs.deletedFor) != 1 || f.docs.deletedFor[0] != 42 {
		t.Fatalf("child rows not wiped for parent, got %v", f.docs.deletedFor)
	}
	if got := f.connectors.statuses; len(got) != 2 || got[0] != "processing:7" || got[1] != "success:7:1" {
		t.Fatalf("connector transitions = %v", got)
	}
	doc := f.docs.docs[42]
	if !doc.Analyzed || doc.ChunkingSession == nil || doc.LastUpdate == nil {
		t.Fatalf("parent row not finalized: %+v", doc)
	}
	for _, chunk := range f.store.inserted {
		if chunk.DocumentID != 42 || chunk.ParentID != 42 {
			t.Fatalf("chunk ids wrong: %+v", chunk)
		}
	}
}

func TestHandleMessageRedelivery(t *testing.T) {
	// A redelivered job must replace, not append.
	deps := extractor.Deps{Transcript: &fakeTranscript{segments: []string{"caption text for the video"}}}
	f := newFixture(t, deps, time.Hour, parentDoc())

	msg := message(t, youtubeJob())
	if err := f.dispatcher.HandleMessage(context.Background(), msg); err != nil {
		t.Fatalf("first delivery: %v", err)
	}
	firstSession := *f.docs.docs[42].ChunkingSession
	if err := f.dispatcher.HandleMessage(context.Background(), msg); err != nil {
		t.Fatalf("second delivery: %v", err)
	}

	if len(f.docs.deletedFor) != 2 {
		t.Fatalf("each run must wipe child rows, got %v", f.docs.deletedFor)
	}
	if *f.docs.docs[42].ChunkingSession == firstSession {
		t.Fatalf("rerun must mint a fresh chunking session")
	}
	if f.store.calls[3] != "replace:vectors:42" {
		t.Fatalf("second run must delete vectors before inserting: %v", f.store.calls)
	}
}

func TestHandleMessageChildDocuments(t *testing.T) {
	deps := extractor.Deps{
		Bucket:    &fakeBucket{},
		Converter: &fakeConverter{markdown: "# One\nbody of section one\n# Two\nbody of section two\n"},
	}
	f := newFixture(t, deps, time.Hour, &types.Document{ID: 42, ConnectorID: 7, URL: "blob:materials:upload-1-a.pdf", SourceID: "blob:materials:upload-1-a.pdf"})

	job := youtubeJob()
	job.Url = "blob:materials:upload-1-a.pdf"
	job.FileType = pb.FileType_PDF
	if err := f.dispatcher.HandleMessage(context.Background(), message(t, job)); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}

	if len(f.docs.created) != 2 {
		t.Fatalf("expected one child row per section, got %d", len(f.docs.created))
	}
	session := f.docs.docs[42].ChunkingSession
	for _, child := range f.docs.created {
		if child.ParentID == nil || *child.ParentID != 42 {
			t.Fatalf("child not linked to parent: %+v", child)
		}
		if child.ChunkingSession == nil || *child.ChunkingSession != *session {
			t.Fatalf("child session differs from parent: %+v", child)
		}
	}
	for _, chunk := range f.store.inserted {
		if chunk.ParentID != 42 {
			t.Fatalf("chunk parent id = %d", chunk.ParentID)
		}
		if chunk.DocumentID == 42 {
			t.Fatalf("section chunks must carry the child document id")
		}
	}
}

func TestHandleMessageBatchedInserts(t *testing.T) {
	var lines []string
	for i := 0; i < 150; i++ {
		lines = append(lines, fmt.Sprintf("caption line number %04d", i))
	}
	deps := extractor.Deps{Transcript: &fakeTranscript{segments: lines}}
	f := newFixture(t, deps, time.Hour, parentDoc())
	f.dispatcher.splitter = chunker.New(chunker.Config{Size: 25, Overlap: 0})

	if err := f.dispatcher.HandleMessage(context.Background(), message(t, youtubeJob())); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	var batches []string
	for _, call := range f.store.calls {
		if strings.HasPrefix(call, "insert:") {
			batches = append(batches, call)
		}
	}
	if len(batches) != 2 || batches[0] != "insert:100" || batches[1] != "insert:50" {
		t.Fatalf("staging must flush in batches of 100, got %v", batches)
	}
	if got := f.connectors.statuses[1]; got != "success:7:150" {
		t.Fatalf("success count = %q", got)
	}
}

func TestHandleMessageEmptyExtraction(t *testing.T) {
	deps := extractor.Deps{Transcript: &fakeTranscript{}}
	f := newFixture(t, deps, time.Hour, parentDoc())

	if err := f.dispatcher.HandleMessage(context.Background(), message(t, youtubeJob())); err != nil {
		t.Fatalf("HandleMessage: %v", err)
	}
	if len(f.store.calls) != 0 {
		t.Fatalf("no extraction means no vector store traffic, got %v", f.store.calls)
	}
	if got := f.connectors.statuses; len(got) != 2 || got[1] != "success:7:0" {
		t.Fatalf("connector transitions = %v", got)
	}
	doc := f.docs.docs[42]
	if doc.Analyzed || doc.LastUpdate == nil {
		t.Fatalf("empty extraction must record analyzed=false: %+v", doc)
	}
}

func TestHandleMessageEmbedderFailure(t *testing.T) {
	deps := extractor.Deps{Transcript: &fakeTranscript{segments: []string{"caption text for the video"}}}
	f := newFixture(t, deps, time.Hour, parentDoc())
	f.embedder.err = fmt.Errorf("model overloaded")

	if err := f.dispatcher.HandleMessage(context.Background(), message(t, youtubeJob())); err == nil {
		t.Fatalf("embedder failure must surface for redelivery")
	}
	if got := f.connectors.statuses; len(got) != 2 || got[1] != "error:7" {
		t.Fatalf("connector transitions = %v", got)
	}
	for _, call := range f.store.calls {
		if strings.HasPrefix(call, "insert:") {
			t.Fatalf("nothing may be inserted after an embed failure: %v", f.store.calls)
		}
	}
}

func TestHandleMessageDeadlineExceeded(t *testing.T) {
	deps := extractor.Deps{Transcript: &fakeTranscript{segments: []string{"caption text for the video"}}}
	f := newFixture(t, deps, 0, parentDoc())

	err := f.dispatcher.HandleMessage(context.Background(), message(t, youtubeJob()))
	if err == nil || !strings.Contains(err.Error(), "deadline exceeded") {
		t.Fatalf("expected deadline error, got %v", err)
	}
	if got := f.connectors.statuses; len(got) != 2 || got[1] != "error:7" {
		t.Fatalf("connector transitions = %v", got)
	}
}

func TestHandleMessageUndecodable(t *testing.T) {
	f := newFixture(t, extractor.Deps{}, time.Hour)
	msg := &nats.Msg{Data: []byte{0x08}}
	if err := f.dispatcher.HandleMessage(context.Background(), msg); err != nil {
		t.Fatalf("undecodable message must be dropped without error, got %v", err)
	}
	if len(f.connectors.statuses) != 0 {
		t.Fatalf("poison message must not touch connector status: %v", f.connectors.statuses)
	}
}

func TestHandleMessageNonPositiveDocumentID(t *testing.T) {
	f := newFixture(t, extractor.Deps{}, time.Hour)
	job := youtubeJob()
	job.DocumentId = 0
	if err := f.dispatcher.HandleMessage(context.Background(), message(t, job)); err != nil {
		t.Fatalf("missing document id must be dropped without error, got %v", err)
	}
	if len(f.connectors.statuses) != 0 || len(f.store.calls) != 0 {
		t.Fatalf("poison message caused side effects")
	}
}

func TestHandleMessageMissingDocumentRow(t *testing.T) {
	f := newFixture(t, extractor.Deps{Transcript: &fakeTranscript{}}, time.Hour)
	if err := f.dispatcher.HandleMessage(context.Background(), message(t, youtubeJob())); err != nil {
		t.Fatalf("unknown document row must be dropped without error, got %v", err)
	}
	if len(f.connectors.statuses) != 0 {
		t.Fatalf("poison message must not touch connector status: %v", f.connectors.statuses)
	}
}

func TestHandleMessageUnknownFileType(t *testing.T) {
	f := newFixture(t, extractor.Deps{}, time.Hour, parentDoc())
	job := youtubeJob()
	job.FileType = pb.FileType(99)
	if err := f.dispatcher.HandleMessage(context.Background(), message(t, job)); err != nil {
		t.Fatalf("unknown file type must be dropped without error, got %v", err)
	}
	if len(f.connectors.statuses) != 0 {
		t.Fatalf("poison message must not touch connector status: %v", f.connectors.statuses)
	}
}

func TestHandleMessageDimensionMismatch(t *testing.T) {
	// A collection whose vectors have a different dimension can never accept
	// this job; the message must drain instead of cycling through redelivery.
	deps := extractor.Deps{Transcript: &fakeTranscript{segments: []string{"caption text for the video"}}}
	f := newFixture(t, deps, time.Hour, parentDoc())
	f.store.ensureErr = &milvus.OperationError{
		Code:      milvus.OperationErrorValidation,
		Operation: "ensure_collection",
		Message:   `collection "vectors" dimension mismatch: existing=768 requested=4`,
	}

	if err := f.dispatcher.HandleMessage(context.Background(), message(t, youtubeJob())); err != nil {
		t.Fatalf("dimension mismatch must be dropped without error, got %v", err)
	}
	if got := f.connectors.statuses; len(got) != 1 || got[0] != "processing:7" {
		t.Fatalf("bad job must not mark the connector errored: %v", got)
	}
	if len(f.docs.deletedFor) != 0 {
		t.Fatalf("bad job must not touch the registry's child rows")
	}
	for _, call := range f.store.calls {
		if strings.HasPrefix(call, "insert:") {
			t.Fatalf("bad job must not insert: %v", f.store.calls)
		}
	}
}

func TestHandleMessageReplaceFailure(t *testing.T) {
	deps := extractor.Deps{Transcript: &fakeTranscript{segments: []string{"caption text for the video"}}}
	f := newFixture(t, deps, time.Hour, parentDoc())
	f.store.replaceErr = fmt.Errorf("milvus unavailable")

	if err := f.dispatcher.HandleMessage(context.Background(), message(t, youtubeJob())); err == nil {
		t.Fatalf("store failure must surface for redelivery")
	}
	if got := f.connectors.statuses; len(got) != 2 || got[1] != "error:7" {
		t.Fatalf("connector transitions = %v", got)
	}
	if len(f.docs.deletedFor) != 0 {
		t.Fatalf("registry rows must survive when the vector wipe fails")
	}
}
