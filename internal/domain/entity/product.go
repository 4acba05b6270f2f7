package entity

import "time"

// Product representa un producto identificado por su código SKU (único).
type Product struct {
	ID          int64
	SKUCode     string
	Name        string
	Description string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
