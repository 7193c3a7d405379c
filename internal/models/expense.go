package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single outgoing ledger entry (gastos). Amounts are fixed-point
// with two decimal places, up to twelve significant digits.
type Expense struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"column:usuario_id;not null" json:"user_id"`
	Amount        decimal.Decimal `gorm:"column:monto;type:numeric(12,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"column:forma_pago;size:100;not null" json:"payment_method"`
	Date          time.Time       `gorm:"column:fecha;type:date;not null" json:"date"`
	CategoryID    *uint           `gorm:"column:categoria_id" json:"category_id,omitempty"`
	Note          *string         `gorm:"column:nota;size:250" json:"note,omitempty"`

	// Deleting a category clears the reference but keeps the expense.
	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
	User     User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName maps Expense to the original gastos table.
func (Expense) TableName() string { return "gastos" }
