package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/BoostersSCM/Input-Management/internal/application/dto"
	"github.com/BoostersSCM/Input-Management/internal/application/receiving"
	cascade "github.com/BoostersSCM/Input-Management/internal/domain/receiving"
	"github.com/BoostersSCM/Input-Management/pkg/logger"
)

// sourceUnavailableMsg is surfaced to the UI when the read store is down.
// The dropdowns degrade to empty instead of failing the whole page.
const sourceUnavailableMsg = "scheduled-receipt data is temporarily unavailable"

// SourceHandler serves the cascading brand -> part -> PO dropdowns backed
// by the cached scheduled-receipt view.
type SourceHandler struct {
	cache *receiving.SourceCache
	log   *logger.Logger
}

// NewSourceHandler builds the handler.
func NewSourceHandler(cache *receiving.SourceCache, log *logger.Logger) *SourceHandler {
	return &SourceHandler{cache: cache, log: log}
}

// Brands godoc
// @Summary      List brands with pending scheduled receipts
// @Description  First stage of the cascade. When the read store cannot be
//               reached the options degrade to an empty list and the warning
//               field carries the reason.
// @Tags         source
// @Produce      json
// @Success      200  {object}  dto.OptionsResponse
// @Router       /api/source/brands [get]
func (h *SourceHandler) Brands(c *fiber.Ctx) error {
	rows, err := h.cache.Get(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("source read failed, degrading brand options")
		return c.JSON(dto.OptionsResponse{Options: []string{}, Warning: sourceUnavailableMsg})
	}
	opts := cascade.Brands(rows)
	if opts == nil {
		opts = []string{}
	}
	return c.JSON(dto.OptionsResponse{Options: opts})
}

// Parts godoc
// @Summary      List parts pending receipt for one brand
// @Tags         source
// @Produce      json
// @Param        brand  query  string  true  "brand selected in the first stage"
// @Success      200  {object}  dto.PartOptionsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/source/parts [get]
func (h *SourceHandler) Parts(c *fiber.Ctx) error {
	brand := c.Query("brand")
	if brand == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "brand is required",
		})
	}

	rows, err := h.cache.Get(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("source read failed, degrading part options")
		return c.JSON(dto.PartOptionsResponse{Options: []dto.PartOptionDTO{}, Warning: sourceUnavailableMsg})
	}

	parts := cascade.Parts(rows, brand)
	opts := make([]dto.PartOptionDTO, 0, len(parts))
	for _, p := range parts {
		opts = append(opts, dto.PartOptionDTO{Number: p.Number, Name: p.Name, Label: p.Label()})
	}
	return c.JSON(dto.PartOptionsResponse{Options: opts})
}

// Orders godoc
// @Summary      List purchase orders for one brand and part
// @Tags         source
// @Produce      json
// @Param        brand  query  string  true   "brand selected in the first stage"
// @Param        part   query  string  true   "part number selected in the second stage"
// @Success      200  {object}  dto.OptionsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/source/orders [get]
func (h *SourceHandler) Orders(c *fiber.Ctx) error {
	brand := c.Query("brand")
	part := c.Query("part")
	if brand == "" || part == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "brand and part are required",
		})
	}

	rows, err := h.cache.Get(c.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("source read failed, degrading order options")
		return c.JSON(dto.OptionsResponse{Options: []string{}, Warning: sourceUnavailableMsg})
	}

	opts := cascade.Orders(rows, brand, part)
	if opts == nil {
		opts = []string{}
	}
	return c.JSON(dto.OptionsResponse{Options: opts})
}

// Refresh godoc
// @Summary      Drop the cached scheduled-receipt view
// @Description  The next dropdown request re-reads the source store.
// @Tags         source
// @Success      204
// @Router       /api/source/refresh [post]
func (h *SourceHandler) Refresh(c *fiber.Ctx) error {
	h.cache.Invalidate()
	return c.SendStatus(fiber.StatusNoContent)
}
