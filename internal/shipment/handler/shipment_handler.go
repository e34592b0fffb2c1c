package handler

import (
	"github.com/gofiber/fiber/v2"

	apperrors "github.com/itsaryankaushik/Shipsy-sub001/internal/errors"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/middleware"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/response"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/domain"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/dto"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/shipment/service"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/validation"
)

type ShipmentHandler struct {
	shipments *service.ShipmentService
}

func NewShipmentHandler(shipments *service.ShipmentService) *ShipmentHandler {
	return &ShipmentHandler{shipments: shipments}
}

func (h *ShipmentHandler) Create(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	var input dto.CreateShipmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, apperrors.NewValidationError("body", "invalid request body"))
	}

	if err := validation.Struct(input); err != nil {
		return response.Error(c, err)
	}

	shipment, err := h.shipments.Create(c.Context(), claims.UserID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, fiber.StatusCreated, "shipment created", dto.NewShipmentOutput(shipment))
}

func (h *ShipmentHandler) List(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	f := domain.Filter{
		Page:       c.QueryInt("page", 1),
		Limit:      c.QueryInt("limit", 10),
		Type:       domain.ShipmentType(c.Query("type")),
		Mode:       domain.ShipmentMode(c.Query("mode")),
		CustomerID: c.Query("customerId"),
	}
	if raw := c.Query("isDelivered"); raw != "" {
		delivered := c.QueryBool("isDelivered")
		f.IsDelivered = &delivered
	}
	f = f.Clamp()

	shipments, total, err := h.shipments.List(c.Context(), claims.UserID, f)
	if err != nil {
		return response.Error(c, err)
	}

	items := make([]dto.ShipmentOutput, 0, len(shipments))
	for i := range shipments {
		items = append(items, dto.NewShipmentOutput(&shipments[i]))
	}

	return response.OK(c, fiber.StatusOK, "", dto.ShipmentListOutput{
		Items: items,
		Page:  f.Page,
		Limit: f.Limit,
		Total: total,
	})
}

func (h *ShipmentHandler) Get(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	shipment, err := h.shipments.Get(c.Context(), claims.UserID, c.Params("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, fiber.StatusOK, "", dto.NewShipmentOutput(shipment))
}

func (h *ShipmentHandler) Update(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	var input dto.UpdateShipmentInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, apperrors.NewValidationError("body", "invalid request body"))
	}

	if err := validation.Struct(input); err != nil {
		return response.Error(c, err)
	}

	shipment, err := h.shipments.Update(c.Context(), claims.UserID, c.Params("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, fiber.StatusOK, "shipment updated", dto.NewShipmentOutput(shipment))
}

func (h *ShipmentHandler) MarkDelivered(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	shipment, err := h.shipments.MarkDelivered(c.Context(), claims.UserID, c.Params("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, fiber.StatusOK, "shipment delivered", dto.NewShipmentOutput(shipment))
}

func (h *ShipmentHandler) Delete(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	if err := h.shipments.Delete(c.Context(), claims.UserID, c.Params("id")); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, fiber.StatusOK, "shipment deleted", nil)
}

func (h *ShipmentHandler) Stats(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	stats, err := h.shipments.Stats(c.Context(), claims.UserID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, fiber.StatusOK, "", dto.NewStatsOutput(stats))
}
