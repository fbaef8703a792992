package repos

import (
  "context"
  "strings"
  "testing"

  "github.com/yungbote/vectorbridge-backend/internal/repos/testutil"
  "github.com/yungbote/vectorbridge-backend/internal/types"
)

func TestConnectorRepoStatusTransitions(t *testing.T) {
  db := testutil.DB(t)
  tx := testutil.Tx(t, db)
  ctx := context.Background()
  repo := NewConnectorRepo(db, testutil.Logger(t))
  conn := seedConnector(t, tx)

  if err := repo.MarkProcessing(ctx, tx, conn.ID); err != nil {
    t.Fatalf("mark processing: %v", err)
  }
  got, err := repo.GetByID(ctx, tx, conn.ID)
  if err != nil {
    t.Fatalf("get: %v", err)
  }
  if got.Status != types.ConnectorStatusWorking {
    t.Fatalf("status = %q, want %q", got.Status, types.ConnectorStatusWorking)
  }
  if got.LastUpdate == nil {
    t.Fatalf("mark processing must touch last_update")
  }

  if err := repo.MarkSuccess(ctx, tx, conn.ID, 17); err != nil {
    t.Fatalf("mark success: %v", err)
  }
  got, err = repo.GetByID(ctx, tx, conn.ID)
  if err != nil {
    t.Fatalf("get: %v", err)
  }
  if got.Status != types.ConnectorStatusSuccess {
    t.Fatalf("status = %q, want %q", got.Status, types.ConnectorStatusSuccess)
  }
  if got.TotalDocsIndexed != 17 {
    t.Fatalf("total_docs_indexed = %d, want 17", got.TotalDocsIndexed)
  }
  if got.LastSuccessfulAnalysis == nil {
    t.Fatalf("mark success must set last_successful_index_date")
  }

  if err := repo.MarkError(ctx, tx, conn.ID); err != nil {
    t.Fatalf("mark error: %v", err)
  }
  got, err = repo.GetByID(ctx, tx, conn.ID)
  if err != nil {
    t.Fatalf("get: %v", err)
  }
  if got.Status != types.ConnectorStatusError {
    t.Fatalf("status = %q, want %q", got.Status, types.ConnectorStatusError)
  }
  if got.LastSuccessfulAnalysis == nil {
    t.Fatalf("mark error must keep the last successful index date")
  }
}

func TestConnectorRepoUpdate(t *testing.T) {
  db := testutil.DB(t)
  tx := testutil.Tx(t, db)
  ctx := context.Background()
  repo := NewConnectorRepo(db, testutil.Logger(t))
  conn := seedConnector(t, tx)

  conn.Name = "renamed"
  conn.Disabled = true
  if err := repo.Update(ctx, tx, conn); err != nil {
    t.Fatalf("update: %v", err)
  }
  got, err := repo.GetByID(ctx, tx, conn.ID)
  if err != nil {
    t.Fatalf("get: %v", err)
  }
  if got.Name != "renamed" || !got.Disabled {
    t.Fatalf("update not persisted: %+v", got)
  }
  if got.CanBeProcessed() {
    t.Fatalf("disabled connector must not be processable")
  }
}

func TestConnectorRepoMissingRow(t *testing.T) {
  db := testutil.DB(t)
  tx := testutil.Tx(t, db)
  ctx := context.Background()
  repo := NewConnectorRepo(db, testutil.Logger(t))

  err := repo.MarkProcessing(ctx, tx, 999999999)
  if err == nil || !strings.Contains(err.Error(), "not found") {
    t.Fatalf("status update on a missing connector must fail, got %v", err)
  }
}

func TestConnectorRepoValidation(t *testing.T) {
  repo := NewConnectorRepo(nil, testutil.Logger(t))
  ctx := context.Background()
  if _, err := repo.GetByID(ctx, nil, 0); err == nil {
    t.Fatalf("non-positive id must be rejected")
  }
  if err := repo.Update(ctx, nil, &types.Connector{}); err == nil {
    t.Fatalf("update without id must be rejected")
  }
  if err := repo.MarkSuccess(ctx, nil, -5, 1); err == nil {
    t.Fatalf("non-positive id must be rejected")
  }
}
