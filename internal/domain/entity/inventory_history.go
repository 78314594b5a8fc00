package entity

import "time"

// InventoryHistory registro de auditoría de transiciones de cantidad.
// Append-only: se escribe una vez por cambio, nunca se actualiza ni borra.
// El motor de alertas no lo lee; existe para auditoría y reportes.
type InventoryHistory struct {
	ID               string
	InventoryID      string
	PreviousQuantity int64
	NewQuantity      int64
	ChangedAt        time.Time
}
