package usecase

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Andres06271/inventory-system-backend/internal/application/dto"
	"github.com/Andres06271/inventory-system-backend/internal/domain"
	"github.com/Andres06271/inventory-system-backend/internal/domain/entity"
	"github.com/Andres06271/inventory-system-backend/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock no se edita por
// aquí: solo a través del motor de movimientos de inventario.
type ProductUseCase struct {
	repo repository.ProductRepository
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo}
}

// Create crea un producto nuevo. Código único; precios >= 0; dimensiones
// opcionales pero estrictamente positivas si se envían.
func (uc *ProductUseCase) Create(in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	if err := validateProductDecimals(in.PurchasePrice, in.SalePrice, in.Width, in.Height, in.Depth); err != nil {
		return nil, err
	}
	if !entity.ProductType(in.ProductType).InRange() || !entity.ProductStatus(in.Status).InRange() {
		return nil, domain.ErrCodeOutOfRange
	}
	existing, err := uc.repo.GetByCode(in.Code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicate
	}
	now := time.Now()
	product := &entity.Product{
		Code:          in.Code,
		Name:          in.Name,
		ProductType:   entity.ProductType(in.ProductType),
		Size:          in.Size,
		Color:         in.Color,
		Brand:         in.Brand,
		Location:      in.Location,
		Width:         in.Width,
		Height:        in.Height,
		Depth:         in.Depth,
		Status:        entity.ProductStatus(in.Status),
		PurchasePrice: in.PurchasePrice,
		SalePrice:     in.SalePrice,
		StockQuantity: in.StockQuantity,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.repo.Create(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByID obtiene un producto por ID.
func (uc *ProductUseCase) GetByID(id int64) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// GetByCode obtiene un producto por su código único.
func (uc *ProductUseCase) GetByCode(code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCode(code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, nil
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto. No modifica StockQuantity: el stock se mueve
// solo con movimientos de inventario.
func (uc *ProductUseCase) Update(id int64, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	if err := dto.Validate(in); err != nil {
		return nil, domain.ErrInvalidInput
	}
	product, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	if in.Code != nil && *in.Code != product.Code {
		other, err := uc.repo.GetByCode(*in.Code)
		if err != nil {
			return nil, err
		}
		if other != nil {
			return nil, domain.ErrDuplicate
		}
		product.Code = *in.Code
	}
	if in.Name != nil {
		product.Name = *in.Name
	}
	if in.ProductType != nil {
		if !entity.ProductType(*in.ProductType).InRange() {
			return nil, domain.ErrCodeOutOfRange
		}
		product.ProductType = entity.ProductType(*in.ProductType)
	}
	if in.Status != nil {
		if !entity.ProductStatus(*in.Status).InRange() {
			return nil, domain.ErrCodeOutOfRange
		}
		product.Status = entity.ProductStatus(*in.Status)
	}
	if in.Size != nil {
		product.Size = in.Size
	}
	if in.Color != nil {
		product.Color = in.Color
	}
	if in.Brand != nil {
		product.Brand = in.Brand
	}
	if in.Location != nil {
		product.Location = in.Location
	}
	if in.Width != nil {
		product.Width = in.Width
	}
	if in.Height != nil {
		product.Height = in.Height
	}
	if in.Depth != nil {
		product.Depth = in.Depth
	}
	if in.PurchasePrice != nil {
		product.PurchasePrice = *in.PurchasePrice
	}
	if in.SalePrice != nil {
		product.SalePrice = *in.SalePrice
	}
	if err := validateProductDecimals(product.PurchasePrice, product.SalePrice, product.Width, product.Height, product.Depth); err != nil {
		return nil, err
	}
	product.UpdatedAt = time.Now()
	if err := uc.repo.Update(product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista productos paginados.
func (uc *ProductUseCase) List(page dto.PageRequest) (*dto.ProductListResponse, error) {
	page.DefaultPage()
	products, err := uc.repo.List(page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		items = append(items, *toProductResponse(p))
	}
	return &dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset},
	}, nil
}

// validateProductDecimals precios no negativos y dimensiones nil o > 0, como
// los checks del esquema.
func validateProductDecimals(purchase, sale decimal.Decimal, dims ...*decimal.Decimal) error {
	if purchase.IsNegative() || sale.IsNegative() {
		return domain.ErrInvalidInput
	}
	for _, d := range dims {
		if d != nil && !d.IsPositive() {
			return domain.ErrInvalidInput
		}
	}
	return nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	return &dto.ProductResponse{
		ID:            p.ID,
		Code:          p.Code,
		Name:          p.Name,
		ProductType:   int16(p.ProductType),
		Size:          p.Size,
		Color:         p.Color,
		Brand:         p.Brand,
		Location:      p.Location,
		Width:         p.Width,
		Height:        p.Height,
		Depth:         p.Depth,
		Status:        int16(p.Status),
		PurchasePrice: p.PurchasePrice,
		SalePrice:     p.SalePrice,
		StockQuantity: p.StockQuantity,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}
