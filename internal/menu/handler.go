package menu

import (
	"os"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(app *fiber.App) {
	app.Get("/api/v1/menu", h.getMenu)
	app.Get("/api/v1/menu/tags", h.getTags)
	app.Get("/api/v1/menu/categories", h.getCategories)
	app.Get("/api/v1/menu/:id<[0-9]+>", h.getItem)

	// dev-only endpoint to reseed the catalog — enabled when ALLOW_RESET_MENU=1
	app.Post("/dev/reset-menu", h.resetMenu)
}

func (h *Handler) RegisterProtectedRoutes(app *fiber.App) {
	app.Post("/api/v1/menu", h.createItem)
	app.Put("/api/v1/menu/:id<[0-9]+>", h.updateItem)
	app.Delete("/api/v1/menu/:id<[0-9]+>", h.deleteItem)
}

func (h *Handler) getMenu(c *fiber.Ctx) error {
	if cat := c.Query("category"); cat != "" {
		return c.JSON(h.service.ListDrinks(cat))
	}
	return c.JSON(h.service.List())
}

func (h *Handler) getTags(c *fiber.Ctx) error {
	return c.JSON(h.service.Tags())
}

func (h *Handler) getCategories(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"bakery": BakeryCategories,
		"drink":  DrinkCategories,
	})
}

func (h *Handler) getItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	it, err := h.service.GetByID(id)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Menu item not found")
	}
	return c.JSON(it)
}

// resetMenu replaces the catalog with the posted items, or re-imports the CSV
// configured in MENU_PATH when the body is empty.
func (h *Handler) resetMenu(c *fiber.Ctx) error {
	if os.Getenv("ALLOW_RESET_MENU") != "1" {
		return c.Status(fiber.StatusForbidden).SendString("reset not allowed")
	}

	var items []Item
	if err := c.BodyParser(&items); err != nil {
		path := os.Getenv("MENU_PATH")
		if path == "" {
			return c.Status(fiber.StatusBadRequest).SendString("no items posted and MENU_PATH not set")
		}
		if err := h.service.ImportCSV(path, DefaultLoaderConfig()); err != nil {
			return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}
		return c.JSON(h.service.List())
	}

	if err := h.service.ResetItems(items); err != nil {
		return c.Status(fiber.StatusInternalServerError).SendString(err.Error())
	}
	return c.JSON(items)
}

func validateItemPayload(it *Item) map[string]string {
	errs := map[string]string{}
	if it.Name == "" {
		errs["name"] = "name is required"
	}
	if it.Price < 0 {
		errs["price"] = "price must be >= 0"
	}
	if it.Sweetness < 0 || it.Sweetness > 5 {
		errs["sweetness"] = "sweetness must be between 0 and 5"
	}
	if it.Category != "" && !it.InCategories(BakeryCategories) && !it.InCategories(DrinkCategories) {
		errs["category"] = "invalid category"
	}
	return errs
}

func (h *Handler) createItem(c *fiber.Ctx) error {
	it := new(Item)
	if err := c.BodyParser(it); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateItemPayload(it); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	cfg := DefaultLoaderConfig()
	it.Popular = hasAnyTag(it.Tags, cfg.PopularSynonyms)
	now := time.Now().UTC().Format(time.RFC3339)
	if it.CreatedAt == nil {
		it.CreatedAt = &now
	}
	if it.UpdatedAt == nil {
		it.UpdatedAt = &now
	}

	created, err := h.service.Create(*it)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (h *Handler) updateItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}

	it := new(Item)
	if err := c.BodyParser(it); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": err.Error()})
	}
	if ves := validateItemPayload(it); len(ves) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": ves})
	}

	cfg := DefaultLoaderConfig()
	it.Popular = hasAnyTag(it.Tags, cfg.PopularSynonyms)
	now := time.Now().UTC().Format(time.RFC3339)
	it.UpdatedAt = &now

	updated, err := h.service.Update(id, *it)
	if err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Menu item not found")
	}
	return c.JSON(updated)
}

func (h *Handler) deleteItem(c *fiber.Ctx) error {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).SendString(err.Error())
	}
	if err := h.service.Delete(id); err != nil {
		return c.Status(fiber.StatusNotFound).SendString("Menu item not found")
	}
	return c.SendString("Menu item deleted")
}
