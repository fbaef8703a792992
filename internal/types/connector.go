package types

import (
  "time"
  "github.com/google/uuid"
  "gorm.io/datatypes"
)

// Stored values of the connector status column. The control plane renders
// them verbatim, so they stay display strings.
const (
  ConnectorStatusReadyToProcess = "Ready to be Processed"
  ConnectorStatusPending        = "Pending"
  ConnectorStatusWorking        = "Working"
  ConnectorStatusSuccess        = "Completed Successfully"
  ConnectorStatusError          = "Completed with Errors"
  ConnectorStatusDisabled       = "Disabled"
  ConnectorStatusUnableProcess  = "Unable to Process"
)

type Connector struct {
  ID                      int64           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
  CredentialID            *int64          `gorm:"column:credential_id" json:"credential_id,omitempty"`
  Name                    string          `gorm:"column:name;not null" json:"name"`
  Type                    string          `gorm:"column:type;size:50;not null" json:"type"`
  ConnectorSpecificConfig datatypes.JSON  `gorm:"column:connector_specific_config;type:jsonb" json:"connector_specific_config,omitempty"`
  RefreshFreq             *int64          `gorm:"column:refresh_freq" json:"refresh_freq,omitempty"`
  UserID                  uuid.UUID       `gorm:"column:user_id;type:uuid;not null" json:"user_id"`
  TenantID                *uuid.UUID      `gorm:"column:tenant_id;type:uuid" json:"tenant_id,omitempty"`
  Disabled                bool            `gorm:"column:disabled;not null;default:false" json:"disabled"`
  LastSuccessfulAnalysis  *time.Time      `gorm:"column:last_successful_index_date" json:"last_successful_index_date,omitempty"`
  Status                  string          `gorm:"column:last_attempt_status" json:"last_attempt_status,omitempty"`
  TotalDocsIndexed        int64           `gorm:"column:total_docs_indexed;not null;default:0" json:"total_docs_indexed"`
  CreationDate            time.Time       `gorm:"column:creation_date;not null;default:now()" json:"creation_date"`
  LastUpdate              *time.Time      `gorm:"column:last_update" json:"last_update,omitempty"`
  DeletedDate             *time.Time      `gorm:"column:deleted_date" json:"deleted_date,omitempty"`
}

func (Connector) TableName() string {
  return "connectors"
}

// CanBeProcessed reports whether a job for this connector should run at all.
func (c *Connector) CanBeProcessed() bool {
  if c.Disabled || c.DeletedDate != nil {
    return false
  }
  switch c.Status {
  case ConnectorStatusDisabled, ConnectorStatusUnableProcess:
    return false
  }
  return true
}
