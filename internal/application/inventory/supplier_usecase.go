package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/stock-erp/internal/domain"
	"github.com/tu-usuario/stock-erp/internal/domain/entity"
)

// AddSupplier crea un proveedor. Solo el nombre es obligatorio; los campos
// de contacto son texto libre.
func (uc *UseCase) AddSupplier(ctx context.Context, name, contact, email, phone string) (entity.Supplier, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Supplier{}, fmt.Errorf("nombre de proveedor vacío: %w", domain.ErrInvalidInput)
	}
	sup := entity.Supplier{
		ID:      uc.store.NextSupplierID(),
		Name:    name,
		Contact: contact,
		Email:   email,
		Phone:   phone,
	}
	uc.store.AddSupplier(sup)
	uc.saver.Save(ctx, uc.store)
	return sup, nil
}

// UpdateSupplier reemplaza los datos de un proveedor existente.
func (uc *UseCase) UpdateSupplier(ctx context.Context, sup entity.Supplier) error {
	if strings.TrimSpace(sup.Name) == "" {
		return fmt.Errorf("nombre de proveedor vacío: %w", domain.ErrInvalidInput)
	}
	if !uc.store.UpdateSupplier(sup) {
		return fmt.Errorf("proveedor %d: %w", sup.ID, domain.ErrNotFound)
	}
	uc.saver.Save(ctx, uc.store)
	return nil
}

// DeleteSupplier elimina el proveedor sin cascada sobre los productos.
func (uc *UseCase) DeleteSupplier(ctx context.Context, id int) error {
	if !uc.store.RemoveSupplier(id) {
		return fmt.Errorf("proveedor %d: %w", id, domain.ErrNotFound)
	}
	uc.saver.Save(ctx, uc.store)
	return nil
}
