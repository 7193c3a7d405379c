package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AchievementCode identifies a milestone definition. The set is closed.
type AchievementCode string

const (
	AchievementFirstExpense      AchievementCode = "first-expense"
	AchievementFirstIncome       AchievementCode = "first-income"
	AchievementMonthlyExpenseCap AchievementCode = "monthly-expense-cap"
	AchievementMonthlySavings    AchievementCode = "monthly-savings"
	AchievementConsistencyStreak AchievementCode = "consistency-streak"
	AchievementSavingsGoal       AchievementCode = "savings-goal-reached"
)

// AchievementType is a fixed milestone definition (tipos_logros).
type AchievementType struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Name        string          `gorm:"column:nombre;size:100;not null" json:"name"`
	Code        AchievementCode `gorm:"column:tipo;size:50;uniqueIndex;not null" json:"code"`
	Description string          `gorm:"column:descripcion;type:text;not null" json:"description"`
	Icon        string          `gorm:"column:icono;size:100;default:trophy" json:"icon"`
	Color       string          `gorm:"column:color;size:50;default:#4f46e5" json:"color"`
	Target      decimal.Decimal `gorm:"column:meta;type:numeric(12,2);default:0" json:"target"`
	CreatedAt   time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

// TableName maps AchievementType to the original tipos_logros table.
func (AchievementType) TableName() string { return "tipos_logros" }

// AchievementProgress is one user's standing against one achievement type
// (logros_usuarios). At most one row exists per (user, type) pair; the
// unique index is the real idempotence guarantee under concurrent writes.
type AchievementProgress struct {
	ID                uint            `gorm:"primaryKey" json:"id"`
	UserID            uint            `gorm:"column:usuario_id;not null;uniqueIndex:idx_logros_usuario_tipo" json:"user_id"`
	AchievementTypeID uint            `gorm:"column:tipo_logro_id;not null;uniqueIndex:idx_logros_usuario_tipo" json:"achievement_type_id"`
	Progress          decimal.Decimal `gorm:"column:progreso_actual;type:numeric(12,2);default:0" json:"progress"`
	Completed         bool            `gorm:"column:completado;default:false" json:"completed"`
	CompletedAt       *time.Time      `gorm:"column:fecha_completado" json:"completed_at,omitempty"`
	CreatedAt         time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt         time.Time       `gorm:"column:updated_at" json:"updated_at"`

	AchievementType AchievementType `gorm:"foreignKey:AchievementTypeID;constraint:OnDelete:CASCADE" json:"achievement_type,omitempty"`
	User            User            `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName maps AchievementProgress to the original logros_usuarios table.
func (AchievementProgress) TableName() string { return "logros_usuarios" }
