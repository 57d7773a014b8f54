package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/BoostersSCM/Input-Management/internal/application/dto"
	"github.com/BoostersSCM/Input-Management/internal/application/receiving"
	"github.com/BoostersSCM/Input-Management/internal/domain"
	"github.com/BoostersSCM/Input-Management/internal/domain/entity"
	"github.com/BoostersSCM/Input-Management/pkg/logger"
)

// StagingHandler drives the per-session staging list: the editable grid,
// row commands and the final submission.
type StagingHandler struct {
	grid   *receiving.GridAdapter
	submit *receiving.SubmitUseCase
	cache  *receiving.SourceCache
	policy receiving.Policy
	log    *logger.Logger
	now    func() time.Time
}

// NewStagingHandler builds the handler.
func NewStagingHandler(grid *receiving.GridAdapter, submit *receiving.SubmitUseCase, cache *receiving.SourceCache, policy receiving.Policy, log *logger.Logger) *StagingHandler {
	return &StagingHandler{grid: grid, submit: submit, cache: cache, policy: policy, log: log, now: time.Now}
}

func (h *StagingHandler) list(c *fiber.Ctx) (*receiving.StagingList, error) {
	sess := GetSession(c)
	if sess == nil {
		return nil, c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL", Message: "session not resolved",
		})
	}
	return sess.Staging, nil
}

// Grid godoc
// @Summary      Render the session's staging list for the grid widget
// @Tags         staging
// @Produce      json
// @Param        X-Session-ID  header  string  false  "session handle; omitted starts a new session"
// @Success      200  {object}  dto.GridResponse
// @Router       /api/staging [get]
func (h *StagingHandler) Grid(c *fiber.Ctx) error {
	list, err := h.list(c)
	if list == nil {
		return err
	}
	return c.JSON(dto.GridResponse{
		Columns: h.grid.Columns(),
		Rows:    h.grid.Render(list),
		Total:   list.Len(),
	})
}

// AddRows godoc
// @Summary      Stage new pending receipt rows
// @Description  Rows picked from the filtered source view carry only PO,
//               part and version; name and scheduled quantity are resolved
//               from the cached view. Receiving date defaults to today and
//               LOT to empty.
// @Tags         staging
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AddRowsRequest  true  "rows to stage"
// @Success      200  {object}  dto.AddRowsResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/staging/rows [post]
func (h *StagingHandler) AddRows(c *fiber.Ctx) error {
	list, ferr := h.list(c)
	if list == nil {
		return ferr
	}

	var req dto.AddRowsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "request body is not valid JSON",
		})
	}
	if len(req.Rows) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "rows is empty",
		})
	}

	// A cache miss here only disables enrichment; manual rows still stage.
	source, err := h.cache.Get(c.Context())
	if err != nil {
		h.log.Warn().Err(err).Msg("source read failed, staging without enrichment")
	}

	seeds := make([]receiving.RowSeed, 0, len(req.Rows))
	for _, in := range req.Rows {
		seed, err := buildSeed(in, source)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: err.Error(),
			})
		}
		seeds = append(seeds, seed)
	}

	added := list.Add(seeds, h.policy, h.now())
	return c.JSON(dto.AddRowsResponse{Added: added, Total: list.Len()})
}

// buildSeed converts one request row into a seed, resolving the part name,
// version and scheduled quantity from the source view when the caller left
// them out (the pick-from-dropdown path).
func buildSeed(in dto.NewRowInput, source []entity.SourceRow) (receiving.RowSeed, error) {
	if in.PurchaseOrder == "" || in.PartNumber == "" {
		return receiving.RowSeed{}, errors.New("purchase_order and part_number are required")
	}

	seed := receiving.RowSeed{
		ReceivingDate: in.ReceivingDate,
		PurchaseOrder: in.PurchaseOrder,
		PartNumber:    in.PartNumber,
		PartName:      in.PartName,
		Version:       in.Version,
		Lot:           in.Lot,
		ExpiryDate:    in.ExpiryDate,
	}
	for _, r := range source {
		if r.PurchaseOrder != in.PurchaseOrder || r.PartNumber != in.PartNumber {
			continue
		}
		if in.Version != "" && r.Version != in.Version {
			continue
		}
		if seed.PartName == "" {
			seed.PartName = r.PartName
		}
		if seed.Version == "" {
			seed.Version = r.Version
		}
		seed.ScheduledQty = r.ScheduledQty
		break
	}
	if in.ConfirmedQty != "" {
		qty, err := receiving.CoerceQty(in.ConfirmedQty)
		if err != nil {
			return receiving.RowSeed{}, errors.New("confirmed_qty must be a non-negative integer")
		}
		seed.ConfirmedQty = &qty
	}
	return seed, nil
}

// EditCell godoc
// @Summary      Edit one cell of a staged row
// @Description  Invalid input and read-only columns are rejected with the
//               previous value retained.
// @Tags         staging
// @Accept       json
// @Produce      json
// @Param        index  path  int  true  "row index"
// @Param        body  body  dto.EditCellRequest  true  "column and raw value"
// @Success      200  {object}  dto.GridResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/staging/rows/{index} [patch]
func (h *StagingHandler) EditCell(c *fiber.Ctx) error {
	list, ferr := h.list(c)
	if list == nil {
		return ferr
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "index must be an integer",
		})
	}

	var req dto.EditCellRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "request body is not valid JSON",
		})
	}

	if err := h.grid.ApplyEdit(list, index, req.Column, req.Value); err != nil {
		switch {
		case errors.Is(err, domain.ErrIndexOutOfRange):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NOT_FOUND", Message: "no staged row at that index",
			})
		case errors.Is(err, domain.ErrReadOnlyColumn):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "READ_ONLY", Message: "column " + req.Column + " is not editable",
			})
		case errors.Is(err, domain.ErrUnknownColumn):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "unknown column " + req.Column,
			})
		default:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "invalid value for column " + req.Column,
			})
		}
	}

	return c.JSON(dto.GridResponse{
		Columns: h.grid.Columns(),
		Rows:    h.grid.Render(list),
		Total:   list.Len(),
	})
}

// Mark godoc
// @Summary      Toggle the deletion mark on one staged row
// @Tags         staging
// @Accept       json
// @Produce      json
// @Param        index  path  int  true  "row index"
// @Param        body  body  dto.MarkRowRequest  true  "desired mark state"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/staging/rows/{index}/mark [post]
func (h *StagingHandler) Mark(c *fiber.Ctx) error {
	list, ferr := h.list(c)
	if list == nil {
		return ferr
	}

	index, err := c.ParamsInt("index")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "index must be an integer",
		})
	}

	var req dto.MarkRowRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "request body is not valid JSON",
		})
	}

	if err := list.SetMark(index, req.Marked); err != nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NOT_FOUND", Message: "no staged row at that index",
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RemoveRows godoc
// @Summary      Remove staged rows
// @Description  Removes either the explicitly indexed rows (all-or-nothing,
//               any index out of range rejects the whole request) or every
//               deletion-marked row.
// @Tags         staging
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RemoveRowsRequest  true  "indices or marked"
// @Success      200  {object}  dto.GridResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/staging/rows [delete]
func (h *StagingHandler) RemoveRows(c *fiber.Ctx) error {
	list, ferr := h.list(c)
	if list == nil {
		return ferr
	}

	var req dto.RemoveRowsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "request body is not valid JSON",
		})
	}

	switch {
	case req.Marked && len(req.Indices) > 0:
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION", Message: "indices and marked are mutually exclusive",
		})
	case req.Marked:
		list.RemoveMarked()
	default:
		if err := list.Remove(req.Indices); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "VALIDATION", Message: "one or more indices are out of range",
			})
		}
	}

	return c.JSON(dto.GridResponse{
		Columns: h.grid.Columns(),
		Rows:    h.grid.Render(list),
		Total:   list.Len(),
	})
}

// Clear godoc
// @Summary      Drop every staged row in the session
// @Tags         staging
// @Success      204
// @Router       /api/staging [delete]
func (h *StagingHandler) Clear(c *fiber.Ctx) error {
	list, ferr := h.list(c)
	if list == nil {
		return ferr
	}
	list.Clear()
	return c.SendStatus(fiber.StatusNoContent)
}

// Submit godoc
// @Summary      Commit the staged rows as one receipt batch
// @Description  Every unmarked row must carry a LOT. The write is atomic:
//               on failure the staging list is left untouched and the store
//               error is surfaced verbatim so the operator can report it.
// @Tags         staging
// @Produce      json
// @Success      200  {object}  dto.SubmitResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /api/staging/submit [post]
func (h *StagingHandler) Submit(c *fiber.Ctx) error {
	list, ferr := h.list(c)
	if list == nil {
		return ferr
	}

	n, err := h.submit.Submit(c.Context(), list)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmptyBatch):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "EMPTY_BATCH", Message: "there are no rows to submit",
			})
		case errors.Is(err, domain.ErrMissingLot):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Code: "MISSING_LOT", Message: err.Error(),
			})
		case errors.Is(err, domain.ErrDuplicateRows):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Code: "DUPLICATE_ROWS", Message: err.Error(),
			})
		default:
			h.log.Error().Err(err).Msg("receipt batch commit failed")
			return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
				Code: "COMMIT_FAILED", Message: err.Error(),
			})
		}
	}

	return c.JSON(dto.SubmitResponse{Submitted: n})
}
