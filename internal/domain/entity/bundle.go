package entity

import "time"

// Bundle representa la composición de un producto padre a partir de
// cantidades de productos hijos. Ortogonal al conteo de inventario:
// el motor de alertas no lo lee.
type Bundle struct {
	ID              string
	ParentProductID string
	ChildProductID  string
	Quantity        int64
	CreatedAt       time.Time
}
