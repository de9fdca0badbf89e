package inventory

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/stock-erp/internal/domain"
	"github.com/tu-usuario/stock-erp/internal/domain/entity"
)

// ProductInput son los campos que gestionan los diálogos de alta/edición.
// Los diálogos solo manejan un variant (el primero); un producto puede
// tener más, pero nunca se crean por esta vía.
type ProductInput struct {
	Reference   string
	Name        string
	CategoryID  int
	SupplierID  int
	Price       decimal.Decimal
	Size        string
	Color       string
	Quantity    int
	PhotoPath   string
	Description string
}

func (in ProductInput) validate() error {
	if strings.TrimSpace(in.Reference) == "" || strings.TrimSpace(in.Name) == "" {
		return fmt.Errorf("referencia y nombre requeridos: %w", domain.ErrInvalidInput)
	}
	if in.Price.IsNegative() {
		return fmt.Errorf("precio negativo: %w", domain.ErrInvalidInput)
	}
	if in.Quantity < 0 {
		return fmt.Errorf("cantidad negativa: %w", domain.ErrInvalidInput)
	}
	return nil
}

// CreateProduct da de alta un producto con exactamente un variant, cuyo SKU
// se deriva de la referencia. No se comprueba que CategoryID o SupplierID
// resuelvan a algo: una referencia colgante se tolera en lectura.
func (uc *UseCase) CreateProduct(ctx context.Context, in ProductInput) (entity.Product, error) {
	if err := in.validate(); err != nil {
		return entity.Product{}, err
	}

	ref := strings.TrimSpace(in.Reference)
	now := time.Now()
	product := entity.Product{
		ID:          uc.store.NextProductID(),
		Reference:   ref,
		Name:        strings.TrimSpace(in.Name),
		CategoryID:  in.CategoryID,
		SupplierID:  in.SupplierID,
		Price:       in.Price,
		Variants:    []entity.Variant{entity.NewVariant(ref, in.Size, in.Color, in.Quantity)},
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if in.PhotoPath != "" {
		product.Photos = []string{in.PhotoPath}
	}

	uc.store.AddProduct(product)
	uc.saver.Save(ctx, uc.store)
	return product, nil
}

// EditProduct actualiza un producto existente con los campos del diálogo.
// Solo se reemplaza el primer variant; los demás, si existen, se conservan
// tal cual. CreatedAt no cambia; UpdatedAt se refresca siempre.
func (uc *UseCase) EditProduct(ctx context.Context, id int, in ProductInput) (entity.Product, error) {
	if err := in.validate(); err != nil {
		return entity.Product{}, err
	}
	product, ok := uc.store.FindProductByID(id)
	if !ok {
		return entity.Product{}, fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}

	ref := strings.TrimSpace(in.Reference)
	product.Reference = ref
	product.Name = strings.TrimSpace(in.Name)
	product.CategoryID = in.CategoryID
	product.SupplierID = in.SupplierID
	product.Price = in.Price
	product.Description = in.Description
	if in.PhotoPath != "" {
		product.Photos = append(product.Photos, in.PhotoPath)
	}

	variant := entity.NewVariant(ref, in.Size, in.Color, in.Quantity)
	if len(product.Variants) == 0 {
		product.Variants = []entity.Variant{variant}
	} else {
		product.Variants[0] = variant
	}
	product.UpdatedAt = time.Now()

	uc.store.UpdateProduct(product)
	uc.saver.Save(ctx, uc.store)
	return product, nil
}

// DeleteProduct elimina el producto. Sus movimientos históricos se
// conservan con el product_id colgando.
func (uc *UseCase) DeleteProduct(ctx context.Context, id int) error {
	if !uc.store.RemoveProduct(id) {
		return fmt.Errorf("producto %d: %w", id, domain.ErrNotFound)
	}
	uc.saver.Save(ctx, uc.store)
	return nil
}
