package entity

// Category representa una categoría de productos (jerárquica opcional).
// No se comprueba la ausencia de ciclos en ParentID.
type Category struct {
	ID       int
	Name     string
	ParentID int // 0 si es raíz
}
