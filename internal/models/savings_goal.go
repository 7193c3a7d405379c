package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// GoalStatus represents the lifecycle state of a savings goal. Transitions
// are not automated; completed is set on the write path when the saved
// amount reaches the target.
type GoalStatus string

const (
	GoalStatusActive    GoalStatus = "active"
	GoalStatusCompleted GoalStatus = "completed"
	GoalStatusExpired   GoalStatus = "expired"
)

// GoalIcons is the closed set of icons a savings goal may use.
var GoalIcons = []string{"🏠", "🚗", "✈️", "🎓", "💍", "🎁", "💼", "🏥", "🎯", "💰"}

// SavingsGoal is a named savings target for a user (metas).
type SavingsGoal struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"column:usuario_id;not null" json:"user_id"`
	Name          string          `gorm:"column:nombre_meta;size:200;not null" json:"name"`
	Description   *string         `gorm:"column:descripcion;type:text" json:"description,omitempty"`
	TargetAmount  decimal.Decimal `gorm:"column:meta_total;type:numeric(12,2);not null" json:"target_amount"`
	CurrentAmount decimal.Decimal `gorm:"column:monto_actual;type:numeric(12,2);default:0" json:"current_amount"`
	Icon          string          `gorm:"column:icono;size:10;default:🎯" json:"icon"`
	CreatedAt     time.Time       `gorm:"column:fecha_creacion;autoCreateTime" json:"created_at"`
	TargetDate    *time.Time      `gorm:"column:fecha_objetivo;type:date" json:"target_date,omitempty"`
	Status        GoalStatus      `gorm:"column:estado;size:20;default:active" json:"status"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName maps SavingsGoal to the original metas table.
func (SavingsGoal) TableName() string { return "metas" }

// Progress returns the saved percentage of the target amount.
// A goal with a zero (or negative) target reports 0.
func (g *SavingsGoal) Progress() float64 {
	if g.TargetAmount.IsPositive() {
		pct, _ := g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
		return pct
	}
	return 0
}

// DaysRemaining returns the whole days between now and the target date,
// clamped at zero. Goals without a target date return nil.
func (g *SavingsGoal) DaysRemaining(now time.Time) *int {
	if g.TargetDate == nil {
		return nil
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	target := time.Date(g.TargetDate.Year(), g.TargetDate.Month(), g.TargetDate.Day(), 0, 0, 0, 0, time.UTC)

	days := int(target.Sub(today).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return &days
}
