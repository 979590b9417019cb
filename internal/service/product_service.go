package service

import (
	"strings"

	"github.com/simplyfresh/simplyfresh/internal/models"
	"github.com/simplyfresh/simplyfresh/internal/repository"
)

// ProductInput 商品创建/更新输入
type ProductInput struct {
	Name            string
	Category        string
	PriceAmount     models.Money
	Image           string
	QuantityInStock int
	IsActive        bool
	IsSpotlight     bool
}

// ProductService 商品服务
type ProductService struct {
	productRepo repository.ProductRepository
}

// NewProductService 创建商品服务
func NewProductService(productRepo repository.ProductRepository) *ProductService {
	return &ProductService{productRepo: productRepo}
}

// List 商品列表（公开接口仅返回上架商品）
func (s *ProductService) List(filter repository.ProductListFilter) ([]models.Product, int64, error) {
	return s.productRepo.List(filter)
}

// Spotlight 首页推荐商品
func (s *ProductService) Spotlight(limit int) ([]models.Product, error) {
	if limit <= 0 {
		limit = 8
	}
	products, _, err := s.productRepo.List(repository.ProductListFilter{
		Page:          1,
		PageSize:      limit,
		OnlyActive:    true,
		OnlySpotlight: true,
	})
	return products, err
}

// Get 商品详情
func (s *ProductService) Get(id uint, onlyActive bool) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	if onlyActive && !product.IsActive {
		return nil, ErrProductNotFound
	}
	return product, nil
}

// Create 创建商品
func (s *ProductService) Create(input ProductInput) (*models.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || input.PriceAmount.IsNegative() || input.QuantityInStock < 0 {
		return nil, ErrProductDataInvalid
	}
	count, err := s.productRepo.CountByName(name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrProductNameExists
	}
	product := &models.Product{
		Name:            name,
		Category:        strings.ToLower(strings.TrimSpace(input.Category)),
		PriceAmount:     input.PriceAmount,
		Image:           strings.TrimSpace(input.Image),
		QuantityInStock: input.QuantityInStock,
		IsActive:        input.IsActive,
		IsSpotlight:     input.IsSpotlight,
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Update 更新商品
func (s *ProductService) Update(id uint, input ProductInput) (*models.Product, error) {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, ErrProductNotFound
	}
	name := strings.TrimSpace(input.Name)
	if name == "" || input.PriceAmount.IsNegative() || input.QuantityInStock < 0 {
		return nil, ErrProductDataInvalid
	}
	count, err := s.productRepo.CountByName(name, &id)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrProductNameExists
	}

	product.Name = name
	product.Category = strings.ToLower(strings.TrimSpace(input.Category))
	product.PriceAmount = input.PriceAmount
	product.Image = strings.TrimSpace(input.Image)
	product.QuantityInStock = input.QuantityInStock
	product.IsActive = input.IsActive
	product.IsSpotlight = input.IsSpotlight
	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete 删除商品
func (s *ProductService) Delete(id uint) error {
	product, err := s.productRepo.GetByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return ErrProductNotFound
	}
	return s.productRepo.Delete(id)
}
