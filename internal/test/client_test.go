package test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"

	"go.uber.org/zap"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/ordersdesk/orderboard/internal"
	"github.com/ordersdesk/orderboard/internal/model"
)

var _ = Describe("DataClient", func() {
	var (
		requests []*http.Request
		handler  http.HandlerFunc
		server   *httptest.Server
		client   *internal.DataClient
	)
	BeforeEach(func() {
		requests = nil
		logger, err := zap.NewDevelopment()
		Expect(err).ShouldNot(HaveOccurred())

		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requests = append(requests, r)
			handler(w, r)
		}))
		client = internal.NewDataClient(server.URL, logger.Sugar())
	})
	AfterEach(func() {
		server.Close()
	})

	respond := func(status int, body string) {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
			w.Write([]byte(body))
		}
	}

	It("parses GET /api/Orders as a JSON sequence", func() {
		respond(http.StatusOK, `[{"id":"a","summary":{"createdAt":"2.4.2019","customer":"Kevin Grant","status":" Accepted","shippedAt":"8.4.2019"},"shipTo":{"name":"n","address":"s","ZIP":"z","region":"r","country":"c"},"customerInfo":{"firstName":"Kevin","lastName":"Grant","address":"s","phone":"p","email":"e"}}]`)

		orders, err := client.FetchAllOrders(context.Background())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(orders).To(HaveLen(1))
		Expect(orders[0].ID).To(Equal("a"))
		Expect(orders[0].Summary.Status).To(Equal(" Accepted"))
		Expect(orders[0].ShipTo.Values()).To(Equal([5]string{"n", "s", "z", "r", "c"}))

		Expect(requests[0].Method).To(Equal(http.MethodGet))
		Expect(requests[0].URL.Path).To(Equal("/api/Orders"))
	})

	It("sends the JSON content type on every request", func() {
		respond(http.StatusOK, "deleted")

		_, err := client.DeleteOrder(context.Background(), "a")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(requests[0].Header.Get("Content-Type")).To(Equal("application/json; charset=utf-8"))
	})

	It("returns the raw body for mutations instead of parsing it", func() {
		respond(http.StatusCreated, "some-new-id")

		body, err := client.CreateOrder(context.Background(), model.OrderInput{})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(body).To(Equal("some-new-id"))

		Expect(requests[0].Method).To(Equal(http.MethodPost))
		Expect(requests[0].URL.Path).To(Equal("/api/Orders"))
	})

	It("substitutes both path segments for a product delete", func() {
		respond(http.StatusOK, "deleted")

		_, err := client.DeleteProduct(context.Background(), "o-1", "p-2")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(requests[0].Method).To(Equal(http.MethodDelete))
		Expect(requests[0].URL.Path).To(Equal("/api/Orders/o-1/products/p-2"))
	})

	It("rejects any status >= 400 with an HTTPError carrying the status", func() {
		respond(http.StatusNotFound, "")

		_, err := client.FetchOrderByID(context.Background(), "missing")
		Expect(err).Should(HaveOccurred())

		var httpErr *internal.HTTPError
		Expect(errors.As(err, &httpErr)).To(BeTrue())
		Expect(httpErr.Status).To(Equal(http.StatusNotFound))
	})

	It("maps a transport failure onto ErrNetwork", func() {
		server.Close()

		_, err := client.FetchAllOrders(context.Background())
		Expect(err).Should(HaveOccurred())
		Expect(errors.Is(err, internal.ErrNetwork)).To(BeTrue())
	})

	It("returns identical sequences on repeated fetches with no mutation", func() {
		respond(http.StatusOK, `[{"id":"a"},{"id":"b"}]`)

		first, err := client.FetchAllOrders(context.Background())
		Expect(err).ShouldNot(HaveOccurred())
		second, err := client.FetchAllOrders(context.Background())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(second).To(Equal(first))
	})
})
