package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClickModel mirrors the append-only 'clicks' table. CreatedAt is stamped
// by the API process on insert; callers cannot supply it.
type ClickModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CardID    uuid.UUID  `gorm:"type:uuid;not null;index:idx_clicks_card_created,priority:1"`
	Card      *CardModel `gorm:"foreignKey:CardID;constraint:OnDelete:CASCADE"`
	Type      string     `gorm:"type:varchar(64);not null"`
	TargetURL string     `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"autoCreateTime;not null;index:idx_clicks_card_created,priority:2,sort:desc"`
}

// TableName explicitly sets the table name for GORM.
func (ClickModel) TableName() string {
	return "clicks"
}

func (m *ClickModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
