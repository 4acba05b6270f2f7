package entity

import "time"

// Customer representa un cliente. Puede ser dueño de stock y/o el facturado en un despacho.
type Customer struct {
	ID          int64
	Name        string
	ContactInfo string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
