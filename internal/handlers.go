package internal

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/ordersdesk/orderboard/internal/model"
)

// Handlers is the backend HTTP surface. GET responses are JSON; every
// mutation answers with a plain-text body, because clients re-fetch for
// state instead of parsing mutation responses.
type Handlers struct {
	Service IService
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, logger: logger}
}

func (h *Handlers) GetOrders(c *fiber.Ctx) error {
	orders, err := h.Service.GetOrders(c.Context())
	if err != nil {
		return h.sendError(c, "get orders", err)
	}

	if orders == nil {
		orders = []model.Order{}
	}
	return c.Status(fiber.StatusOK).JSON(orders)
}

func (h *Handlers) GetOrderByID(c *fiber.Ctx) error {
	order, err := h.Service.GetOrderByID(c.Context(), c.Params("order"))
	if err != nil {
		return h.sendError(c, "get order", err)
	}

	return c.Status(fiber.StatusOK).JSON(order)
}

func (h *Handlers) CreateOrder(c *fiber.Ctx) error {
	var i model.OrderInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on create order request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	id, err := h.Service.CreateOrder(c.Context(), i)
	if err != nil {
		return h.sendError(c, "create order", err)
	}

	return c.Status(fiber.StatusCreated).SendString(id)
}

func (h *Handlers) UpdateOrder(c *fiber.Ctx) error {
	var u model.ShipToUpdate

	if err := c.BodyParser(&u); err != nil {
		h.logger.Errorf("Error on update order request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	err := h.Service.UpdateShipTo(c.Context(), c.Params("order"), u.ShipTo)
	if err != nil {
		return h.sendError(c, "update order", err)
	}

	return c.Status(fiber.StatusOK).SendString("updated")
}

func (h *Handlers) DeleteOrder(c *fiber.Ctx) error {
	err := h.Service.DeleteOrder(c.Context(), c.Params("order"))
	if err != nil {
		return h.sendError(c, "delete order", err)
	}

	return c.Status(fiber.StatusOK).SendString("deleted")
}

func (h *Handlers) GetProducts(c *fiber.Ctx) error {
	products, err := h.Service.GetProducts(c.Context(), c.Params("order"))
	if err != nil {
		return h.sendError(c, "get products", err)
	}

	if products == nil {
		products = []model.Product{}
	}
	return c.Status(fiber.StatusOK).JSON(products)
}

func (h *Handlers) CreateProduct(c *fiber.Ctx) error {
	var i model.ProductInput

	if err := c.BodyParser(&i); err != nil {
		h.logger.Errorf("Error on create product request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	id, err := h.Service.CreateProduct(c.Context(), c.Params("order"), i)
	if err != nil {
		return h.sendError(c, "create product", err)
	}

	return c.Status(fiber.StatusCreated).SendString(id)
}

func (h *Handlers) DeleteProduct(c *fiber.Ctx) error {
	err := h.Service.DeleteProduct(c.Context(), c.Params("order"), c.Params("product"))
	if err != nil {
		return h.sendError(c, "delete product", err)
	}

	return c.Status(fiber.StatusOK).SendString("deleted")
}

func (h *Handlers) sendError(c *fiber.Ctx, op string, err error) error {
	h.logger.Errorf("Error on %s request: %s", op, err.Error())
	if errors.Is(err, ErrOrderNotFound) || errors.Is(err, ErrProductNotFound) {
		return c.SendStatus(fiber.StatusNotFound)
	}
	if errors.Is(err, ErrInvalidPayload) {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	return c.SendStatus(fiber.StatusInternalServerError)
}

// Register mounts the REST surface under /api.
func (h *Handlers) Register(app *fiber.App) {
	api := app.Group("/api")

	orders := api.Group("/Orders")
	orders.Get("/", h.GetOrders)
	orders.Post("/", h.CreateOrder)
	orders.Get("/:order", h.GetOrderByID)
	orders.Put("/:order", h.UpdateOrder)
	orders.Delete("/:order", h.DeleteOrder)

	orders.Get("/:order/products", h.GetProducts)
	orders.Post("/:order/products", h.CreateProduct)
	orders.Delete("/:order/products/:product", h.DeleteProduct)
}
