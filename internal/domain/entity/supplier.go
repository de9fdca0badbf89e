package entity

// Supplier representa un proveedor. Los campos de contacto son texto libre
// y pueden quedar vacíos.
type Supplier struct {
	ID      int
	Name    string
	Contact string
	Email   string
	Phone   string
}
