package inventory

import (
	"context"
	"fmt"
	"time"

	"github.com/tu-usuario/stock-erp/internal/domain"
	"github.com/tu-usuario/stock-erp/internal/domain/entity"
)

// AdjustStock registra un movimiento de stock y, para entradas y salidas,
// aplica la cantidad sobre el PRIMER variant del producto (el único que
// gestionan los diálogos). Una salida mayor que el stock del primer variant
// se rechaza sin tocar el store. Los movimientos de tipo adjustment solo
// dejan constancia: no mutan cantidades.
func (uc *UseCase) AdjustStock(ctx context.Context, productID int, movType string, quantity int, reason, user string) (entity.Movement, error) {
	if quantity <= 0 {
		return entity.Movement{}, fmt.Errorf("cantidad debe ser positiva: %w", domain.ErrInvalidInput)
	}
	switch movType {
	case entity.MovementTypeIn, entity.MovementTypeOut, entity.MovementTypeAdjustment:
	default:
		return entity.Movement{}, fmt.Errorf("tipo de movimiento %q: %w", movType, domain.ErrInvalidInput)
	}

	product, ok := uc.store.FindProductByID(productID)
	if !ok {
		return entity.Movement{}, fmt.Errorf("producto %d: %w", productID, domain.ErrNotFound)
	}

	switch movType {
	case entity.MovementTypeIn, entity.MovementTypeOut:
		if len(product.Variants) == 0 {
			return entity.Movement{}, fmt.Errorf("producto %d sin variants: %w", productID, domain.ErrInvalidInput)
		}
		if movType == entity.MovementTypeOut {
			if product.Variants[0].Quantity < quantity {
				return entity.Movement{}, fmt.Errorf("producto %d: %w", productID, domain.ErrInsufficientStock)
			}
			product.Variants[0].Quantity -= quantity
		} else {
			product.Variants[0].Quantity += quantity
		}
		product.UpdatedAt = time.Now()
		uc.store.UpdateProduct(product)
	}

	movement := entity.Movement{
		ID:        uc.store.NextMovementID(),
		ProductID: productID,
		Type:      movType,
		Quantity:  quantity,
		Reason:    reason,
		User:      user,
		Date:      time.Now(),
	}
	uc.store.AddMovement(movement)
	uc.saver.Save(ctx, uc.store)
	return movement, nil
}
