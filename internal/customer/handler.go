package customer

import (
	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

type registerRequest struct {
	Phone string `json:"phone"`
	Name  string `json:"name"`
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/customer", h.register)
	app.Get("/api/v1/customer/:phone", h.getCustomer)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	// staff listing of the whole ledger
	app.Get("/customers", h.getCustomers)
}

func (h *Handler) register(c *fiber.Ctx) error {
	payload := new(registerRequest)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if payload.Phone == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "phone is required"})
	}
	cust, err := h.service.Register(payload.Phone, payload.Name)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(cust)
}

func (h *Handler) getCustomer(c *fiber.Ctx) error {
	cust, err := h.service.Lookup(c.Params("phone"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Customer not found")
	}
	return c.JSON(cust)
}

func (h *Handler) getCustomers(c *fiber.Ctx) error {
	return c.JSON(h.service.List())
}
