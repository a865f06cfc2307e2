package internal

import (
	"context"
	"database/sql"
	"embed"
	"errors"

	_ "github.com/jackc/pgx/v4/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/ordersdesk/orderboard/internal/model"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

const (
	orderFields = "id, created_at, customer, status, shipped_at, " +
		"ship_name, ship_address, ship_zip, ship_region, ship_country, " +
		"first_name, last_name, customer_address, phone, email"
	productFields = "id, name, price, currency, quantity, total_price"
)

type IRepository interface {
	GetOrders(context.Context) ([]model.Order, error)
	GetOrderByID(context.Context, string) (model.Order, error)
	CreateOrder(context.Context, string, model.OrderInput) error
	UpdateShipTo(context.Context, string, model.Address) error
	DeleteOrder(context.Context, string) error
	GetProducts(context.Context, string) ([]model.Product, error)
	CreateProduct(context.Context, string, model.Product) error
	DeleteProduct(context.Context, string, string) error
}

type Repository struct {
	Conn   *sql.DB
	Logger *zap.SugaredLogger
}

func NewRepository(connString string, logger *zap.SugaredLogger) (*Repository, error) {
	conn, err := sql.Open("pgx", connString)
	if err != nil {
		return nil, err
	}

	goose.SetBaseFS(embedMigrations)
	err = goose.Up(conn, "migrations")
	if err != nil {
		return nil, err
	}

	return &Repository{Conn: conn, Logger: logger}, nil
}

func (r Repository) GetOrders(ctx context.Context) ([]model.Order, error) {
	rows, err := r.Conn.QueryContext(ctx, "SELECT "+orderFields+" FROM orders ORDER BY position")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []model.Order
	for rows.Next() {
		o, err := scanOrder(rows.Scan)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

func (r Repository) GetOrderByID(ctx context.Context, orderID string) (model.Order, error) {
	row := r.Conn.QueryRowContext(ctx, "SELECT "+orderFields+" FROM orders WHERE id = $1", orderID)

	o, err := scanOrder(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Order{}, ErrOrderNotFound
	}
	if err != nil {
		return model.Order{}, err
	}
	return o, nil
}

func (r Repository) CreateOrder(ctx context.Context, orderID string, i model.OrderInput) error {
	_, err := r.Conn.ExecContext(ctx,
		`INSERT INTO orders (`+orderFields+`)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`,
		orderID, i.Summary.CreatedAt, i.Summary.Customer, i.Summary.Status, i.Summary.ShippedAt,
		i.ShipTo.Name, i.ShipTo.Address, i.ShipTo.ZIP, i.ShipTo.Region, i.ShipTo.Country,
		i.CustomerInfo.FirstName, i.CustomerInfo.LastName, i.CustomerInfo.Address,
		i.CustomerInfo.Phone, i.CustomerInfo.Email)
	return err
}

func (r Repository) UpdateShipTo(ctx context.Context, orderID string, a model.Address) error {
	res, err := r.Conn.ExecContext(ctx,
		`UPDATE orders
		 SET ship_name = $1, ship_address = $2, ship_zip = $3, ship_region = $4, ship_country = $5
		 WHERE id = $6`,
		a.Name, a.Address, a.ZIP, a.Region, a.Country, orderID)
	if err != nil {
		return err
	}
	return requireAffected(res, ErrOrderNotFound)
}

func (r Repository) DeleteOrder(ctx context.Context, orderID string) error {
	res, err := r.Conn.ExecContext(ctx, "DELETE FROM orders WHERE id = $1", orderID)
	if err != nil {
		return err
	}
	return requireAffected(res, ErrOrderNotFound)
}

func (r Repository) GetProducts(ctx context.Context, orderID string) ([]model.Product, error) {
	rows, err := r.Conn.QueryContext(ctx,
		"SELECT "+productFields+" FROM products WHERE order_id = $1 ORDER BY position", orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []model.Product
	for rows.Next() {
		var p model.Product
		err = rows.Scan(&p.ID, &p.Name, &p.Price, &p.Currency, &p.Quantity, &p.TotalPrice)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}

func (r Repository) CreateProduct(ctx context.Context, orderID string, p model.Product) error {
	_, err := r.Conn.ExecContext(ctx,
		`INSERT INTO products (id, order_id, name, price, currency, quantity, total_price)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		p.ID, orderID, p.Name, p.Price, p.Currency, p.Quantity, p.TotalPrice)
	return err
}

func (r Repository) DeleteProduct(ctx context.Context, orderID, productID string) error {
	res, err := r.Conn.ExecContext(ctx,
		"DELETE FROM products WHERE id = $1 AND order_id = $2", productID, orderID)
	if err != nil {
		return err
	}
	return requireAffected(res, ErrProductNotFound)
}

func scanOrder(scan func(...interface{}) error) (model.Order, error) {
	var o model.Order
	err := scan(&o.ID, &o.Summary.CreatedAt, &o.Summary.Customer, &o.Summary.Status, &o.Summary.ShippedAt,
		&o.ShipTo.Name, &o.ShipTo.Address, &o.ShipTo.ZIP, &o.ShipTo.Region, &o.ShipTo.Country,
		&o.CustomerInfo.FirstName, &o.CustomerInfo.LastName, &o.CustomerInfo.Address,
		&o.CustomerInfo.Phone, &o.CustomerInfo.Email)
	return o, err
}

func requireAffected(res sql.Result, notFound error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return notFound
	}
	return nil
}
