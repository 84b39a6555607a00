package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/medassist-pro/api/internal/pkg/utils"
	"github.com/medassist-pro/api/internal/pkg/validator"
	"github.com/medassist-pro/api/internal/usecase"
	"github.com/medassist-pro/api/internal/usecase/dto"
	"go.uber.org/zap"
)

// HospitalHandler serves geocoding and nearby-hospital resolution.
type HospitalHandler struct {
	hospitalUC          *usecase.HospitalUseCase
	defaultRadiusMeters int
	logger              *zap.Logger
}

// NewHospitalHandler creates a new HospitalHandler.
func NewHospitalHandler(hospitalUC *usecase.HospitalUseCase, defaultRadiusMeters int, logger *zap.Logger) *HospitalHandler {
	return &HospitalHandler{
		hospitalUC:          hospitalUC,
		defaultRadiusMeters: defaultRadiusMeters,
		logger:              logger,
	}
}

// Geocode godoc
// @Summary Geocode a free-text place name
// @Description Resolves a city or place query to up to 5 ranked coordinate candidates, restricted to the configured country.
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body dto.GeocodeRequest true "Place query"
// @Success 200 {object} utils.SuccessResponse{data=dto.GeocodeResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/locations/geocode [post]
func (h *HospitalHandler) Geocode(c *fiber.Ctx) error {
	var req dto.GeocodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.hospitalUC.Geocode(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// NearbyHospitals godoc
// @Summary Find nearby hospitals
// @Description Resolves hospitals around a coordinate (or a geocoded city query) within the radius, ordered by ascending distance. When the upstream POI source is unavailable the response carries deterministic demo data with fallback=true.
// @Tags Locations
// @Accept json
// @Produce json
// @Param request body dto.NearbyHospitalsRequest true "Center coordinate or city query plus radius in meters"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearbyHospitalsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/locations/nearby-hospitals [post]
func (h *HospitalHandler) NearbyHospitals(c *fiber.Ctx) error {
	var req dto.NearbyHospitalsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}

	if req.RadiusMeters == 0 {
		req.RadiusMeters = h.defaultRadiusMeters
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.hospitalUC.ResolveFacilities(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Count,
	})
}
