package repos

import (
  "context"
  "errors"
  "fmt"
  "github.com/jackc/pgx/v5/pgconn"
  "gorm.io/gorm"
  "github.com/yungbote/vectorbridge-backend/internal/platform/logger"
  "github.com/yungbote/vectorbridge-backend/internal/types"
)

// Postgres error codes surfaced through the pgx driver.
const (
  pgErrForeignKeyViolation = "23503"
  pgErrUniqueViolation     = "23505"
)

func pgErrorCode(err error) string {
  var pgErr *pgconn.PgError
  if errors.As(err, &pgErr) {
    return pgErr.Code
  }
  return ""
}

type DocumentRepo interface {
  Create(ctx context.Context, tx *gorm.DB, doc *types.Document) error
  CreateBatch(ctx context.Context, tx *gorm.DB, docs []*types.Document) ([]*types.Document, error)
  GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Document, error)
  Update(ctx context.Context, tx *gorm.DB, doc *types.Document) error
  DeleteByParentID(ctx context.Context, tx *gorm.DB, parentID int64) (int64, error)
}

type documentRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewDocumentRepo(db *gorm.DB, baseLog *logger.Logger) DocumentRepo {
  repoLog := baseLog.With("repo", "DocumentRepo")
  return &documentRepo{db: db, log: repoLog}
}

func (r *documentRepo) Create(ctx context.Context, tx *gorm.DB, doc *types.Document) error {
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).Create(doc).Error; err != nil {
    switch pgErrorCode(err) {
    case pgErrForeignKeyViolation:
      // Parent row was deleted between the lookup and this insert.
      return fmt.Errorf("Parent of document %q no longer exists: %w", doc.SourceID, err)
    case pgErrUniqueViolation:
      return fmt.Errorf("Document %q already registered: %w", doc.SourceID, err)
    }
    r.log.Error("Failed to create document", "error", err)
    return fmt.Errorf("Failed to create document: %w", err)
  }
  return nil
}

func (r *documentRepo) CreateBatch(ctx context.Context, tx *gorm.DB, docs []*types.Document) ([]*types.Document, error) {
  if len(docs) == 0 {
    return docs, nil
  }
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).CreateInBatches(docs, 100).Error; err != nil {
    r.log.Error("Failed to batch create documents", "error", err)
    return nil, fmt.Errorf("Failed to batch create documents: %w", err)
  }
  return docs, nil
}

func (r *documentRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Document, error) {
  if id <= 0 {
    return nil, fmt.Errorf("document id must be positive, got %d", id)
  }
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var doc types.Document
  if err := transaction.WithContext(ctx).First(&doc, "id = ?", id).Error; err != nil {
    return nil, fmt.Errorf("Failed to get document %d: %w", id, err)
  }
  return &doc, nil
}

func (r *documentRepo) Update(ctx context.Context, tx *gorm.DB, doc *types.Document) error {
  if doc.ID <= 0 {
    return fmt.Errorf("document id must be positive, got %d", doc.ID)
  }
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).Save(doc).Error; err != nil {
    r.log.Error("Failed to update document", "document_id", doc.ID, "error", err)
    return fmt.Errorf("Failed to update document %d: %w", doc.ID, err)
  }
  return nil
}

func (r *documentRepo) DeleteByParentID(ctx context.Context, tx *gorm.DB, parentID int64) (int64, error) {
  if parentID <= 0 {
    return 0, fmt.Errorf("parent id must be positive, got %d", parentID)
  }
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  res := transaction.WithContext(ctx).Where("parent_id = ?", parentID).Delete(&types.Document{})
  if res.Error != nil {
    r.log.Error("Failed to delete child documents", "parent_id", parentID, "error", res.Error)
    return 0, fmt.Errorf("Failed to delete child documents of %d: %w", parentID, res.Error)
  }
  return res.RowsAffected, nil
}
