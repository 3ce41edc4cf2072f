package model

import "time"

// BlobRecord is one persisted face or selection record
type BlobRecord struct {
	Key       uint32    `gorm:"column:record_key;primaryKey;autoIncrement:false"`
	Size      int       `gorm:"not null"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the blob record model
func (BlobRecord) TableName() string {
	return "blob_records"
}
