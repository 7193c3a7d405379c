package models

import "time"

// SocialLink stores an OAuth provider linkage for a user (usuarios_social).
// The provider flow itself lives in the client; the backend only keeps the
// linkage record.
type SocialLink struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"column:user_id;not null" json:"user_id"`
	Provider    string    `gorm:"column:provider;size:50;not null" json:"provider"`
	ProviderID  string    `gorm:"column:provider_id;size:200;not null" json:"provider_id"`
	Email       *string   `gorm:"column:email;size:150" json:"email,omitempty"`
	AccessToken *string   `gorm:"column:access_token;type:text" json:"-"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at" json:"updated_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName maps SocialLink to the original usuarios_social table.
func (SocialLink) TableName() string { return "usuarios_social" }
