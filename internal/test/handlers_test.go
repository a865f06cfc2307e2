package test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang/mock/gomock"
	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/ordersdesk/orderboard/internal"
	mock_internal "github.com/ordersdesk/orderboard/internal/mock"
	"github.com/ordersdesk/orderboard/internal/model"
)

var _ = Describe("Handlers", func() {
	var (
		app *fiber.App
		srv *mock_internal.MockIService
	)
	BeforeEach(func() {
		ctrl := gomock.NewController(GinkgoT())

		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		srv = mock_internal.NewMockIService(ctrl)
		handlers := internal.NewHandlers(srv, logger.Sugar())

		app = fiber.New()
		handlers.Register(app)
	})

	request := func(method, target, body string) *http.Response {
		var reader io.Reader
		if body != "" {
			reader = strings.NewReader(body)
		}
		req := httptest.NewRequest(method, target, reader)
		req.Header.Set("Content-Type", "application/json; charset=utf-8")

		res, err := app.Test(req)
		Expect(err).ShouldNot(HaveOccurred())
		return res
	}

	readBody := func(res *http.Response) string {
		b, err := io.ReadAll(res.Body)
		Expect(err).ShouldNot(HaveOccurred())
		return string(b)
	}

	It("GET /api/Orders returns the JSON list", func() {
		srv.EXPECT().GetOrders(gomock.Any()).Return([]model.Order{{ID: "a"}}, nil)

		res := request(http.MethodGet, "/api/Orders", "")
		Expect(res.StatusCode).To(Equal(http.StatusOK))

		var orders []model.Order
		Expect(json.Unmarshal([]byte(readBody(res)), &orders)).Should(Succeed())
		Expect(orders).To(HaveLen(1))
	})

	It("GET /api/Orders returns an empty JSON array, not null", func() {
		srv.EXPECT().GetOrders(gomock.Any()).Return(nil, nil)

		res := request(http.MethodGet, "/api/Orders", "")
		Expect(readBody(res)).To(Equal("[]"))
	})

	It("GET /api/Orders maps a storage failure onto 500", func() {
		srv.EXPECT().GetOrders(gomock.Any()).Return(nil, errors.New("connection refused"))

		res := request(http.MethodGet, "/api/Orders", "")
		Expect(res.StatusCode).To(Equal(http.StatusInternalServerError))
	})

	It("POST /api/Orders answers with the plain-text id", func() {
		srv.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return("id-1", nil)

		res := request(http.MethodPost, "/api/Orders", `{"summary":{"customer":"Kevin Grant"}}`)
		Expect(res.StatusCode).To(Equal(http.StatusCreated))
		Expect(readBody(res)).To(Equal("id-1"))
	})

	It("PUT /api/Orders/{id} passes the shipTo body through", func() {
		a := model.Address{Name: "n", Address: "s", ZIP: "z", Region: "r", Country: "c"}
		srv.EXPECT().UpdateShipTo(gomock.Any(), "a", a).Return(nil)

		res := request(http.MethodPut, "/api/Orders/a",
			`{"shipTo":{"name":"n","address":"s","ZIP":"z","region":"r","country":"c"}}`)
		Expect(res.StatusCode).To(Equal(http.StatusOK))
		Expect(readBody(res)).To(Equal("updated"))
	})

	It("maps a missing order onto 404", func() {
		srv.EXPECT().GetOrderByID(gomock.Any(), "missing").Return(model.Order{}, internal.ErrOrderNotFound)

		res := request(http.MethodGet, "/api/Orders/missing", "")
		Expect(res.StatusCode).To(Equal(http.StatusNotFound))
	})

	It("maps an invalid payload onto 400", func() {
		srv.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return("", internal.ErrInvalidPayload)

		res := request(http.MethodPost, "/api/Orders", `{}`)
		Expect(res.StatusCode).To(Equal(http.StatusBadRequest))
	})

	It("DELETE /api/Orders/{id}/products/{pid} scopes the delete", func() {
		srv.EXPECT().DeleteProduct(gomock.Any(), "a", "p1").Return(nil)

		res := request(http.MethodDelete, "/api/Orders/a/products/p1", "")
		Expect(res.StatusCode).To(Equal(http.StatusOK))
		Expect(readBody(res)).To(Equal("deleted"))
	})
})
