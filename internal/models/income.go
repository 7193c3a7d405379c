package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income is a single incoming ledger entry (ingresos).
type Income struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	UserID        uint            `gorm:"column:usuario_id;not null" json:"user_id"`
	Amount        decimal.Decimal `gorm:"column:monto;type:numeric(12,2);not null" json:"amount"`
	PaymentMethod string          `gorm:"column:forma_pago;size:100;not null" json:"payment_method"`
	Date          time.Time       `gorm:"column:fecha;type:date;not null" json:"date"`
	Note          *string         `gorm:"column:nota;size:250" json:"note,omitempty"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName maps Income to the original ingresos table.
func (Income) TableName() string { return "ingresos" }
