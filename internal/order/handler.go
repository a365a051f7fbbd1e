package order

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/minseo040526/reccomendationaisystem/internal/customer"
)

type Handler struct {
	service   *Service
	customers *customer.Service
}

func NewHandler(service *Service, customers *customer.Service) *Handler {
	return &Handler{service: service, customers: customers}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/orders", h.placeOrder)
	app.Get("/api/v1/orders/:phone", h.getOrders)
}

type placeOrderRequest struct {
	Phone     string   `json:"phone"`
	Names     []string `json:"names"`
	Total     int      `json:"totalPrice"`
	UseCoupon bool     `json:"useCoupon"`
}

func (h *Handler) placeOrder(c *fiber.Ctx) error {
	req := new(placeOrderRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	// verify the coupon exists up front, but burn it only once the order
	// is actually placed — a rejected order must not cost a coupon
	if req.UseCoupon {
		cust, err := h.customers.Lookup(req.Phone)
		if err != nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"message": "customer not found"})
		}
		if cust.Coupons <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "no coupon available"})
		}
	}

	placed, err := h.service.Place(Order{
		Phone:      req.Phone,
		Names:      req.Names,
		TotalPrice: req.Total,
	})
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	if req.UseCoupon {
		if _, err := h.customers.RedeemCoupon(req.Phone); err != nil {
			log.Printf("warning: coupon not burned for %s after order %s: %v", req.Phone, placed.Code, err)
		}
	}

	// post-order bookkeeping on the ledger
	if _, err := h.customers.RecordVisit(req.Phone); err != nil {
		log.Printf("warning: visit not recorded for %s after order %s: %v", req.Phone, placed.Code, err)
	} else if _, err := h.customers.AppendOrder(req.Phone, placed.ID); err != nil {
		log.Printf("warning: order %s not linked to ledger for %s: %v", placed.Code, req.Phone, err)
	}

	return c.Status(fiber.StatusCreated).JSON(placed)
}

func (h *Handler) getOrders(c *fiber.Ctx) error {
	orders, err := h.service.ListByPhone(c.Params("phone"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(orders)
}
