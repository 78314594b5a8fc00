package entity

import "time"

// Company representa una organización/tenant del sistema. Es la raíz de
// identidad: toda bodega (y por convención todo producto vía inventario)
// resuelve a exactamente una Company.
type Company struct {
	ID        string
	Name      string
	Address   string
	Phone     string
	Email     string
	Status    string // active, suspended, inactive
	CreatedAt time.Time
	UpdatedAt time.Time
}
