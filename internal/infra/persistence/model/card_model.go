package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ContactJSON is the 'contact' JSON column.
type ContactJSON struct {
	Phone    string `json:"phone"`
	WhatsApp string `json:"whatsapp"`
	Email    string `json:"email"`
	Website  string `json:"website"`
}

// SocialLinkJSON is one element of the 'socials' JSON column.
type SocialLinkJSON struct {
	ID       string `json:"id"`
	Platform string `json:"platform"`
	Username string `json:"username"`
	Enabled  bool   `json:"enabled"`
}

// EnabledFieldsJSON is the 'enabled_fields' JSON column.
type EnabledFieldsJSON struct {
	Phone    bool `json:"phone"`
	WhatsApp bool `json:"whatsapp"`
	Email    bool `json:"email"`
	Website  bool `json:"website"`
	Address  bool `json:"address"`
	Gallery  bool `json:"gallery"`
}

// CardModel mirrors the 'cards' table. Nested card sections are JSON
// columns (JSONB on PostgreSQL).
type CardModel struct {
	ID            uuid.UUID                             `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID                             `gorm:"type:uuid;not null;index:idx_cards_user_created,priority:1"`
	Profile       *ProfileModel                         `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	ProfilePhoto  string                                `gorm:"type:text"`
	BannerPhoto   string                                `gorm:"type:text"`
	FullName      string                                `gorm:"type:varchar(255);not null"`
	BusinessName  string                                `gorm:"type:varchar(255)"`
	Role          string                                `gorm:"type:varchar(255)"`
	Tagline       string                                `gorm:"type:text"`
	Contact       datatypes.JSONType[ContactJSON]       `gorm:"not null"`
	Socials       datatypes.JSONSlice[SocialLinkJSON]   `gorm:"not null"`
	Address       string                                `gorm:"type:text"`
	Gallery       datatypes.JSONSlice[string]           `gorm:"not null"`
	QRCodeURL     string                                `gorm:"column:qr_code_url;type:text"`
	EnabledFields datatypes.JSONType[EnabledFieldsJSON] `gorm:"not null"`
	QRState       string                                `gorm:"column:qr_state;type:varchar(16);not null;index"`
	CreatedAt     time.Time                             `gorm:"index:idx_cards_user_created,priority:2,sort:desc"`
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (CardModel) TableName() string {
	return "cards"
}

func (m *CardModel) BeforeCreate(*gorm.DB) error {
	return ensureID(&m.ID)
}
