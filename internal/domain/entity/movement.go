package entity

import "time"

// Tipos de movimiento de stock.
const (
	MovementTypeIn         = "in"         // entrada
	MovementTypeOut        = "out"        // salida
	MovementTypeAdjustment = "adjustment" // ajuste manual
)

// Movement representa un movimiento de stock ligado a un producto.
// Quantity es siempre positiva; el signo lo aporta Type.
type Movement struct {
	ID        int
	ProductID int
	Type      string // in, out, adjustment
	Quantity  int
	Reason    string
	User      string
	Date      time.Time
}
