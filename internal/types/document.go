package types

import (
  "time"
  "github.com/google/uuid"
)

// Document is one registry row per indexed source. Crawled pages get their
// own row with ParentID pointing at the seed document.
type Document struct {
  ID              int64       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
  ParentID        *int64      `gorm:"column:parent_id;index" json:"parent_id,omitempty"`
  ConnectorID     int64       `gorm:"column:connector_id;not null;index" json:"connector_id"`
  SourceID        string      `gorm:"column:source_id;not null" json:"source_id"`
  URL             string      `gorm:"column:url" json:"url,omitempty"`
  Signature       string      `gorm:"column:signature" json:"signature,omitempty"`
  ChunkingSession *uuid.UUID  `gorm:"column:chunking_session;type:uuid" json:"chunking_session,omitempty"`
  Analyzed        bool        `gorm:"column:analyzed;not null;default:false" json:"analyzed"`
  CreationDate    time.Time   `gorm:"column:creation_date;not null;default:now()" json:"creation_date"`
  LastUpdate      *time.Time  `gorm:"column:last_update" json:"last_update,omitempty"`
}

func (Document) TableName() string {
  return "documents"
}
