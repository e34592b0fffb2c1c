package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/itsaryankaushik/Shipsy-sub001/internal/customer/domain"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/customer/dto"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/customer/service"
	apperrors "github.com/itsaryankaushik/Shipsy-sub001/internal/errors"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/middleware"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/response"
	"github.com/itsaryankaushik/Shipsy-sub001/internal/validation"
)

type CustomerHandler struct {
	customers *service.CustomerService
}

func NewCustomerHandler(customers *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	var input dto.CreateCustomerInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, apperrors.NewValidationError("body", "invalid request body"))
	}

	if err := validation.Struct(input); err != nil {
		return response.Error(c, err)
	}

	customer, err := h.customers.Create(c.Context(), claims.UserID, input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, fiber.StatusCreated, "customer created", dto.NewCustomerOutput(customer))
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	q := domain.ListQuery{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", domain.DefaultPageLimit),
		Search: c.Query("search"),
	}.Clamp()

	customers, total, err := h.customers.List(c.Context(), claims.UserID, q)
	if err != nil {
		return response.Error(c, err)
	}

	items := make([]dto.CustomerOutput, 0, len(customers))
	for i := range customers {
		items = append(items, dto.NewCustomerOutput(&customers[i]))
	}

	return response.OK(c, fiber.StatusOK, "", dto.CustomerListOutput{
		Items: items,
		Page:  q.Page,
		Limit: q.Limit,
		Total: total,
	})
}

func (h *CustomerHandler) Get(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	customer, err := h.customers.Get(c.Context(), claims.UserID, c.Params("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, fiber.StatusOK, "", dto.NewCustomerOutput(customer))
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	var input dto.UpdateCustomerInput
	if err := c.BodyParser(&input); err != nil {
		return response.Error(c, apperrors.NewValidationError("body", "invalid request body"))
	}

	if err := validation.Struct(input); err != nil {
		return response.Error(c, err)
	}

	customer, err := h.customers.Update(c.Context(), claims.UserID, c.Params("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, fiber.StatusOK, "customer updated", dto.NewCustomerOutput(customer))
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	claims := middleware.IdentityFromCtx(c)
	if claims == nil {
		return response.Error(c, apperrors.ErrUnauthorized)
	}

	if err := h.customers.Delete(c.Context(), claims.UserID, c.Params("id")); err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, fiber.StatusOK, "customer deleted", nil)
}
