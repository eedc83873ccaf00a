package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// MenuItem is a dish offered by the canteen.
type MenuItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	Name      string          `json:"name" gorm:"size:100;not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}
