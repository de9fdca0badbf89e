package inventory

import (
	"context"
	"fmt"
	"strings"

	"github.com/tu-usuario/stock-erp/internal/domain"
	"github.com/tu-usuario/stock-erp/internal/domain/entity"
)

// AddCategory crea una categoría con el siguiente id libre. parentID 0
// indica raíz; no se verifica que el padre exista ni que no haya ciclos.
func (uc *UseCase) AddCategory(ctx context.Context, name string, parentID int) (entity.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return entity.Category{}, fmt.Errorf("nombre de categoría vacío: %w", domain.ErrInvalidInput)
	}
	cat := entity.Category{
		ID:       uc.store.NextCategoryID(),
		Name:     name,
		ParentID: parentID,
	}
	uc.store.AddCategory(cat)
	uc.saver.Save(ctx, uc.store)
	return cat, nil
}

// RenameCategory cambia el nombre de una categoría existente.
func (uc *UseCase) RenameCategory(ctx context.Context, id int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("nombre de categoría vacío: %w", domain.ErrInvalidInput)
	}
	cat, ok := uc.store.FindCategoryByID(id)
	if !ok {
		return fmt.Errorf("categoría %d: %w", id, domain.ErrNotFound)
	}
	cat.Name = name
	uc.store.UpdateCategory(cat)
	uc.saver.Save(ctx, uc.store)
	return nil
}

// DeleteCategory elimina la categoría. Los productos que la referencien
// quedan con el id colgando; los lectores resuelven ese id al bucket de
// reserva en vez de fallar.
func (uc *UseCase) DeleteCategory(ctx context.Context, id int) error {
	if !uc.store.RemoveCategory(id) {
		return fmt.Errorf("categoría %d: %w", id, domain.ErrNotFound)
	}
	uc.saver.Save(ctx, uc.store)
	return nil
}
