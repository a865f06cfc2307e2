package internal

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ordersdesk/orderboard/internal/model"
)

type IService interface {
	GetOrders(context.Context) ([]model.Order, error)
	GetOrderByID(context.Context, string) (model.Order, error)
	CreateOrder(context.Context, model.OrderInput) (string, error)
	UpdateShipTo(context.Context, string, model.Address) error
	DeleteOrder(context.Context, string) error
	GetProducts(context.Context, string) ([]model.Product, error)
	CreateProduct(context.Context, string, model.ProductInput) (string, error)
	DeleteProduct(context.Context, string, string) error
}

type Service struct {
	Repository IRepository
}

func NewService(Repository IRepository) *Service {
	return &Service{Repository: Repository}
}

func (s Service) GetOrders(ctx context.Context) ([]model.Order, error) {
	return s.Repository.GetOrders(ctx)
}

func (s Service) GetOrderByID(ctx context.Context, orderID string) (model.Order, error) {
	return s.Repository.GetOrderByID(ctx, orderID)
}

// CreateOrder assigns the order identity and stamps createdAt with the
// server-side D.M.Y form when the client left it empty.
func (s Service) CreateOrder(ctx context.Context, i model.OrderInput) (string, error) {
	if strings.TrimSpace(i.Summary.Customer) == "" {
		return "", ErrInvalidPayload
	}

	if i.Summary.CreatedAt == "" {
		i.Summary.CreatedAt = formatServerDate(time.Now())
	}

	id := uuid.NewString()
	err := s.Repository.CreateOrder(ctx, id, i)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s Service) UpdateShipTo(ctx context.Context, orderID string, a model.Address) error {
	return s.Repository.UpdateShipTo(ctx, orderID, a)
}

func (s Service) DeleteOrder(ctx context.Context, orderID string) error {
	return s.Repository.DeleteOrder(ctx, orderID)
}

func (s Service) GetProducts(ctx context.Context, orderID string) ([]model.Product, error) {
	_, err := s.Repository.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return s.Repository.GetProducts(ctx, orderID)
}

// CreateProduct validates the line item, computes its total price from
// price and quantity and assigns its identity within the order.
func (s Service) CreateProduct(ctx context.Context, orderID string, i model.ProductInput) (string, error) {
	if strings.TrimSpace(i.Name) == "" || i.Quantity <= 0 || i.Price.IsNegative() {
		return "", ErrInvalidPayload
	}

	_, err := s.Repository.GetOrderByID(ctx, orderID)
	if err != nil {
		return "", err
	}

	p := model.Product{
		ID:         uuid.NewString(),
		Name:       i.Name,
		Price:      i.Price,
		Currency:   i.Currency,
		Quantity:   i.Quantity,
		TotalPrice: i.Price.Mul(decimal.NewFromInt(int64(i.Quantity))),
	}

	err = s.Repository.CreateProduct(ctx, orderID, p)
	if err != nil {
		return "", err
	}
	return p.ID, nil
}

func (s Service) DeleteProduct(ctx context.Context, orderID, productID string) error {
	return s.Repository.DeleteProduct(ctx, orderID, productID)
}

// formatServerDate renders a time in the D.M.Y form the clients expect,
// without zero padding.
func formatServerDate(t time.Time) string {
	return t.Format("2.1.2006")
}
