package models

import "time"

// User represents a registered account in the `usuarios` table. Column names
// keep the original schema so existing clients and data remain compatible.
type User struct {
	ID               uint         `gorm:"primaryKey" json:"id"`
	Name             string       `gorm:"column:nombre;size:50;not null" json:"name"`
	Email            string       `gorm:"column:correo;size:100;uniqueIndex;not null" json:"email"`
	Password         string       `gorm:"column:password;size:128;not null" json:"-"`
	ProfilePhoto     *string      `gorm:"column:foto_perfil;size:100" json:"profile_photo,omitempty"`
	CreatedViaSocial bool         `gorm:"column:created_via_social;default:false" json:"created_via_social"`
	IsActive         bool         `gorm:"column:is_active;default:true" json:"is_active"`
	IsStaff          bool         `gorm:"column:is_staff;default:false" json:"-"`
	IsSuperuser      bool         `gorm:"column:is_superuser;default:false" json:"-"`
	RefreshTokenHash string       `gorm:"column:refresh_token_hash;size:64" json:"-"`
	LastAccessAt     *time.Time   `gorm:"column:ultimo_acceso;autoUpdateTime" json:"-"`
	CreatedAt        time.Time    `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        time.Time    `gorm:"column:updated_at" json:"updated_at"`

	// Relationships
	SocialLinks  []SocialLink          `gorm:"foreignKey:UserID" json:"social_links,omitempty"`
	Expenses     []Expense             `gorm:"foreignKey:UserID" json:"expenses,omitempty"`
	Incomes      []Income              `gorm:"foreignKey:UserID" json:"incomes,omitempty"`
	Goals        []SavingsGoal         `gorm:"foreignKey:UserID" json:"goals,omitempty"`
	Achievements []AchievementProgress `gorm:"foreignKey:UserID" json:"achievements,omitempty"`
}

// TableName maps User to the original usuarios table.
func (User) TableName() string { return "usuarios" }
