package recommend

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// CouponLedger is the slice of the customer ledger the session layer needs
// for budget adjustment. *customer.Service satisfies it.
type CouponLedger interface {
	// CouponCredit returns the flat budget credit available to the phone,
	// 0 when the customer is unknown or has no coupons.
	CouponCredit(phone string) int
}

type Handler struct {
	service *Service
	coupons CouponLedger
}

func NewHandler(service *Service, coupons CouponLedger) *Handler {
	return &Handler{service: service, coupons: coupons}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Post("/api/v1/recommend", h.recommendBundles)
	app.Post("/api/v1/recommend/pairings", h.recommendPairings)
	app.Get("/api/v1/recommend/drinks", h.recommendDrinks)
}

type recommendRequest struct {
	Budget    int      `json:"budget"`
	Tags      []string `json:"tags"`
	Sweetness int      `json:"sweetness"`
	TopK      int      `json:"topK"`
	Phone     string   `json:"phone"`
	UseCoupon bool     `json:"useCoupon"`
}

type recommendResponse struct {
	Bundles       []Bundle `json:"bundles"`
	Budget        int      `json:"budget"`
	CouponApplied bool     `json:"couponApplied"`
}

func (h *Handler) recommendBundles(c *fiber.Ctx) error {
	req := new(recommendRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if len(req.Tags) > 3 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "at most 3 tags may be chosen"})
	}
	if req.Budget < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "budget must be >= 0"})
	}

	// budget adjustment happens here, before the engine sees the query
	budget := req.Budget
	applied := false
	if req.UseCoupon && req.Phone != "" && h.coupons != nil {
		if credit := h.coupons.CouponCredit(req.Phone); credit > 0 {
			budget += credit
			applied = true
		}
	}

	bundles, err := h.service.Bundles(Query{
		ChosenTags:      req.Tags,
		TargetSweetness: req.Sweetness,
		Budget:          budget,
		TopK:            req.TopK,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidQuery) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(recommendResponse{Bundles: bundles, Budget: budget, CouponApplied: applied})
}

func (h *Handler) recommendPairings(c *fiber.Ctx) error {
	req := new(recommendRequest)
	if err := c.BodyParser(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if len(req.Tags) > 3 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "at most 3 tags may be chosen"})
	}
	if req.Budget < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "budget must be >= 0"})
	}

	bundles, err := h.service.Pairings(Query{
		ChosenTags:      req.Tags,
		TargetSweetness: req.Sweetness,
		Budget:          req.Budget,
		TopK:            req.TopK,
	})
	if err != nil {
		if errors.Is(err, ErrInvalidQuery) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.JSON(recommendResponse{Bundles: bundles, Budget: req.Budget})
}

func (h *Handler) recommendDrinks(c *fiber.Ctx) error {
	category := c.Query("category")
	sweetness := 0
	if s := c.Query("sweetness"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": "sweetness must be an integer"})
		}
		sweetness = v
	}
	limit := 0
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 {
			limit = v
		}
	}
	return c.JSON(h.service.Drinks(category, sweetness, limit))
}
