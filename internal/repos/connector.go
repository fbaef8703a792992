package repos

import (
  "context"
  "fmt"
  "time"
  "gorm.io/gorm"
  "github.com/yungbote/vectorbridge-backend/internal/platform/logger"
  "github.com/yungbote/vectorbridge-backend/internal/types"
)

type ConnectorRepo interface {
  GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Connector, error)
  Update(ctx context.Context, tx *gorm.DB, conn *types.Connector) error
  MarkProcessing(ctx context.Context, tx *gorm.DB, id int64) error
  MarkSuccess(ctx context.Context, tx *gorm.DB, id int64, docsIndexed int64) error
  MarkError(ctx context.Context, tx *gorm.DB, id int64) error
}

type connectorRepo struct {
  db  *gorm.DB
  log *logger.Logger
}

func NewConnectorRepo(db *gorm.DB, baseLog *logger.Logger) ConnectorRepo {
  repoLog := baseLog.With("repo", "ConnectorRepo")
  return &connectorRepo{db: db, log: repoLog}
}

func (r *connectorRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*types.Connector, error) {
  if id <= 0 {
    return nil, fmt.Errorf("connector id must be positive, got %d", id)
  }
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  var conn types.Connector
  if err := transaction.WithContext(ctx).First(&conn, "id = ?", id).Error; err != nil {
    return nil, fmt.Errorf("Failed to get connector %d: %w", id, err)
  }
  return &conn, nil
}

func (r *connectorRepo) Update(ctx context.Context, tx *gorm.DB, conn *types.Connector) error {
  if conn.ID <= 0 {
    return fmt.Errorf("connector id must be positive, got %d", conn.ID)
  }
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  if err := transaction.WithContext(ctx).Save(conn).Error; err != nil {
    r.log.Error("Failed to update connector", "connector_id", conn.ID, "error", err)
    return fmt.Errorf("Failed to update connector %d: %w", conn.ID, err)
  }
  return nil
}

func (r *connectorRepo) MarkProcessing(ctx context.Context, tx *gorm.DB, id int64) error {
  return r.setStatus(ctx, tx, id, map[string]interface{}{
    "last_attempt_status": types.ConnectorStatusWorking,
    "last_update":         time.Now().UTC(),
  })
}

func (r *connectorRepo) MarkSuccess(ctx context.Context, tx *gorm.DB, id int64, docsIndexed int64) error {
  now := time.Now().UTC()
  return r.setStatus(ctx, tx, id, map[string]interface{}{
    "last_attempt_status":        types.ConnectorStatusSuccess,
    "last_successful_index_date": now,
    "total_docs_indexed":         docsIndexed,
    "last_update":                now,
  })
}

func (r *connectorRepo) MarkError(ctx context.Context, tx *gorm.DB, id int64) error {
  return r.setStatus(ctx, tx, id, map[string]interface{}{
    "last_attempt_status": types.ConnectorStatusError,
    "last_update":         time.Now().UTC(),
  })
}

func (r *connectorRepo) setStatus(ctx context.Context, tx *gorm.DB, id int64, updates map[string]interface{}) error {
  if id <= 0 {
    return fmt.Errorf("connector id must be positive, got %d", id)
  }
  transaction := tx
  if transaction == nil {
    transaction = r.db
  }
  res := transaction.WithContext(ctx).Model(&types.Connector{}).Where("id = ?", id).Updates(updates)
  if res.Error != nil {
    r.log.Error("Failed to update connector status", "connector_id", id, "error", res.Error)
    return fmt.Errorf("Failed to update connector %d status: %w", id, res.Error)
  }
  if res.RowsAffected == 0 {
    return fmt.Errorf("connector %d not found", id)
  }
  return nil
}
