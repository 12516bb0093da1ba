package products

import (
	"github.com/shopspring/decimal"

	"github.com/avasquez/products-api/models"
)

// ProductRepository is the data access contract the service runs against.
type ProductRepository interface {
	GetAllProducts() ([]models.Product, error)
	GetByID(id uint) (*models.Product, error)
	Save(product *models.Product) error
	DeleteByID(id uint) error
}

type ProductService interface {
	GetAllProducts() ([]models.Product, error)
	GetProductByID(id uint) (*models.Product, error)
	CreateProduct(product *models.Product) error
	UpdateProduct(id uint, name string, price decimal.Decimal) (*models.Product, error)
	DeleteProduct(id uint) error
}

type productService struct {
	repo ProductRepository
}

func NewProductService(repo ProductRepository) ProductService {
	return &productService{
		repo: repo,
	}
}

func (s *productService) GetAllProducts() ([]models.Product, error) {
	return s.repo.GetAllProducts()
}

func (s *productService) GetProductByID(id uint) (*models.Product, error) {
	return s.repo.GetByID(id)
}

// CreateProduct saves the product as-is. A caller-supplied ID is honored
// as an upsert rather than rejected.
func (s *productService) CreateProduct(product *models.Product) error {
	return s.repo.Save(product)
}

// UpdateProduct overwrites name and price on the stored record, leaving
// the ID untouched. Returns models.ErrProductNotFound when no record
// matches the id.
func (s *productService) UpdateProduct(id uint, name string, price decimal.Decimal) (*models.Product, error) {
	product, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	product.Name = name
	product.Price = price
	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(id uint) error {
	return s.repo.DeleteByID(id)
}
