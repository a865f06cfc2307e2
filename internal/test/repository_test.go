package test

import (
	"context"
	"errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/ordersdesk/orderboard/internal"
	"github.com/ordersdesk/orderboard/internal/model"
)

var orderColumns = []string{
	"id", "created_at", "customer", "status", "shipped_at",
	"ship_name", "ship_address", "ship_zip", "ship_region", "ship_country",
	"first_name", "last_name", "customer_address", "phone", "email",
}

func orderRow(rows *sqlmock.Rows, o model.Order) *sqlmock.Rows {
	return rows.AddRow(
		o.ID, o.Summary.CreatedAt, o.Summary.Customer, o.Summary.Status, o.Summary.ShippedAt,
		o.ShipTo.Name, o.ShipTo.Address, o.ShipTo.ZIP, o.ShipTo.Region, o.ShipTo.Country,
		o.CustomerInfo.FirstName, o.CustomerInfo.LastName, o.CustomerInfo.Address,
		o.CustomerInfo.Phone, o.CustomerInfo.Email)
}

var _ = Describe("Repository", func() {
	var (
		repo internal.Repository
		mock sqlmock.Sqlmock
	)
	BeforeEach(func() {
		db, m, err := sqlmock.New()
		Expect(err).ShouldNot(HaveOccurred())

		mock = m
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		repo = internal.Repository{
			Conn:   db,
			Logger: logger.Sugar(),
		}
	})
	AfterEach(func() {
		err := mock.ExpectationsWereMet()
		Expect(err).ShouldNot(HaveOccurred())
	})

	Context("orders", func() {
		It("GetOrders keeps the server-defined order", func() {
			expected := model.Order{
				ID:      "a",
				Summary: model.OrderSummary{CreatedAt: "2.4.2019", Customer: "Kevin Grant", Status: " Accepted", ShippedAt: "8.4.2019"},
				ShipTo:  model.Address{Name: "n", Address: "s", ZIP: "z", Region: "r", Country: "c"},
			}

			rows := orderRow(sqlmock.NewRows(orderColumns), expected)

			mock.ExpectQuery("SELECT (.+) FROM orders ORDER BY position").
				WillReturnRows(rows).RowsWillBeClosed()

			orders, err := repo.GetOrders(context.Background())
			Expect(err).ShouldNot(HaveOccurred())
			Expect(orders).To(Equal([]model.Order{expected}))
		})
		It("GetOrders with error", func() {
			mock.ExpectQuery("SELECT (.+) FROM orders ORDER BY position").
				WillReturnError(errors.New("some error"))

			_, err := repo.GetOrders(context.Background())
			Expect(err).Should(HaveOccurred())
		})
		It("GetOrderByID maps no rows onto ErrOrderNotFound", func() {
			mock.ExpectQuery("SELECT (.+) FROM orders WHERE id = \\$1").
				WithArgs("missing").WillReturnRows(sqlmock.NewRows(orderColumns))

			_, err := repo.GetOrderByID(context.Background(), "missing")
			Expect(err).Should(Equal(internal.ErrOrderNotFound))
		})
		It("CreateOrder inserts every field", func() {
			i := model.OrderInput{
				Summary:      model.OrderSummary{CreatedAt: "2.4.2019", Customer: "Kevin Grant", Status: " Accepted", ShippedAt: "8.4.2019"},
				ShipTo:       model.Address{Name: "n", Address: "s", ZIP: "z", Region: "r", Country: "c"},
				CustomerInfo: model.CustomerInfo{FirstName: "Kevin", LastName: "Grant", Address: "s", Phone: "p", Email: "e"},
			}

			mock.ExpectExec("INSERT INTO orders").
				WithArgs("id-1", "2.4.2019", "Kevin Grant", " Accepted", "8.4.2019",
					"n", "s", "z", "r", "c", "Kevin", "Grant", "s", "p", "e").
				WillReturnResult(sqlmock.NewResult(0, 1))

			Expect(repo.CreateOrder(context.Background(), "id-1", i)).Should(Succeed())
		})
		It("UpdateShipTo writes the five address columns", func() {
			a := model.Address{Name: "n", Address: "s", ZIP: "z", Region: "r", Country: "c"}

			mock.ExpectExec("UPDATE orders").
				WithArgs("n", "s", "z", "r", "c", "a").
				WillReturnResult(sqlmock.NewResult(0, 1))

			Expect(repo.UpdateShipTo(context.Background(), "a", a)).Should(Succeed())
		})
		It("DeleteOrder reports a missing order", func() {
			mock.ExpectExec("DELETE FROM orders WHERE id = \\$1").
				WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))

			err := repo.DeleteOrder(context.Background(), "missing")
			Expect(err).Should(Equal(internal.ErrOrderNotFound))
		})
	})

	Context("products", func() {
		It("GetProducts scopes rows by order id", func() {
			rows := sqlmock.NewRows([]string{"id", "name", "price", "currency", "quantity", "total_price"}).
				AddRow("p1", "Monitor", decimal.NewFromInt(10), "EUR", 1, decimal.NewFromInt(10))

			mock.ExpectQuery("SELECT (.+) FROM products WHERE order_id = \\$1 ORDER BY position").
				WithArgs("a").WillReturnRows(rows).RowsWillBeClosed()

			products, err := repo.GetProducts(context.Background(), "a")
			Expect(err).ShouldNot(HaveOccurred())
			Expect(products).To(HaveLen(1))
			Expect(products[0].Name).To(Equal("Monitor"))
		})
		It("CreateProduct inserts the computed total", func() {
			p := model.Product{
				ID: "p1", Name: "Cable", Price: decimal.RequireFromString("5.5"),
				Currency: "EUR", Quantity: 3, TotalPrice: decimal.RequireFromString("16.5"),
			}

			mock.ExpectExec("INSERT INTO products").
				WithArgs("p1", "a", "Cable", p.Price, "EUR", 3, p.TotalPrice).
				WillReturnResult(sqlmock.NewResult(0, 1))

			Expect(repo.CreateProduct(context.Background(), "a", p)).Should(Succeed())
		})
		It("DeleteProduct requires both identifiers", func() {
			mock.ExpectExec("DELETE FROM products WHERE id = \\$1 AND order_id = \\$2").
				WithArgs("p1", "a").WillReturnResult(sqlmock.NewResult(0, 1))

			Expect(repo.DeleteProduct(context.Background(), "a", "p1")).Should(Succeed())
		})
		It("DeleteProduct reports a row outside the order", func() {
			mock.ExpectExec("DELETE FROM products WHERE id = \\$1 AND order_id = \\$2").
				WithArgs("p1", "other").WillReturnResult(sqlmock.NewResult(0, 0))

			err := repo.DeleteProduct(context.Background(), "other", "p1")
			Expect(err).Should(Equal(internal.ErrProductNotFound))
		})
	})
})
