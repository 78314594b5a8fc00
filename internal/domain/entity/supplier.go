package entity

import "time"

// Supplier representa un proveedor con su contacto.
type Supplier struct {
	ID           string
	Name         string
	ContactEmail string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ProductSupplier asocia un proveedor a un producto (muchos a muchos).
// IsPrimary marca al proveedor por defecto; a lo sumo uno por producto.
type ProductSupplier struct {
	ProductID  string
	SupplierID string
	IsPrimary  bool
	CreatedAt  time.Time
}
