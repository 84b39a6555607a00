package handler

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/medassist-pro/api/internal/pkg/utils"
	"github.com/medassist-pro/api/internal/pkg/validator"
	"github.com/medassist-pro/api/internal/usecase"
	"github.com/medassist-pro/api/internal/usecase/dto"
	"go.uber.org/zap"
)

// MedicineHandler serves the symptom lookup and the catalog admin surface.
type MedicineHandler struct {
	medicineUC *usecase.MedicineUseCase
	logger     *zap.Logger
}

// NewMedicineHandler creates a new MedicineHandler.
func NewMedicineHandler(medicineUC *usecase.MedicineUseCase, logger *zap.Logger) *MedicineHandler {
	return &MedicineHandler{
		medicineUC: medicineUC,
		logger:     logger,
	}
}

// Search godoc
// @Summary Search medicine recommendations by symptom
// @Description Looks up the recommendation for a symptom. A hit is recorded in prescription history; a miss is a normal found=false response.
// @Tags Medicines
// @Produce json
// @Param symptom query string true "Symptom name"
// @Param user_id query string false "Optional user id recorded with the history entry"
// @Success 200 {object} utils.SuccessResponse{data=dto.MedicineSearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/medicines/search [get]
func (h *MedicineHandler) Search(c *fiber.Ctx) error {
	var req dto.MedicineSearchRequest
	req.Symptom = c.Query("symptom")
	if userID := c.Query("user_id"); userID != "" {
		req.UserID = &userID
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.medicineUC.Search(c.Context(), req, c.IP())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// List godoc
// @Summary List active medicines
// @Tags Medicines
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.MedicineListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/medicines [get]
func (h *MedicineHandler) List(c *fiber.Ctx) error {
	result, err := h.medicineUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// Create godoc
// @Summary Add a medicine
// @Tags Medicines
// @Accept json
// @Produce json
// @Param request body dto.CreateMedicineRequest true "Medicine entry"
// @Success 201 {object} utils.SuccessResponse{data=domain.Medicine}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/medicines [post]
func (h *MedicineHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMedicineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	medicine, err := h.medicineUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: medicine})
}

// Update godoc
// @Summary Update a medicine
// @Tags Medicines
// @Accept json
// @Produce json
// @Param id path int true "Medicine ID"
// @Param request body dto.UpdateMedicineRequest true "Updated fields"
// @Success 200 {object} utils.SuccessResponse{data=domain.Medicine}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/medicines/{id} [put]
func (h *MedicineHandler) Update(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid medicine ID"})
	}

	var req dto.UpdateMedicineRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	medicine, err := h.medicineUC.Update(c.Context(), id, req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, medicine, nil)
}

// Delete godoc
// @Summary Deactivate a medicine
// @Tags Medicines
// @Produce json
// @Param id path int true "Medicine ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/medicines/{id} [delete]
func (h *MedicineHandler) Delete(c *fiber.Ctx) error {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid medicine ID"})
	}

	if err := h.medicineUC.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// ListPrescriptions godoc
// @Summary List recent prescription history
// @Tags Medicines
// @Produce json
// @Param limit query int false "Maximum entries" default(50)
// @Success 200 {object} utils.SuccessResponse{data=dto.PrescriptionListResponse}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/prescriptions [get]
func (h *MedicineHandler) ListPrescriptions(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)

	result, err := h.medicineUC.ListPrescriptions(c.Context(), limit)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
		Limit: limit,
	})
}
