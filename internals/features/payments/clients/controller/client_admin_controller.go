package controller

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"viajescaribe_backend/internals/features/payments/clients/dto"
	"viajescaribe_backend/internals/features/payments/clients/model"
	helper "viajescaribe_backend/internals/helpers"
)

type ClientAdminController struct {
	DB *gorm.DB
}

func NewClientAdminController(db *gorm.DB) *ClientAdminController {
	return &ClientAdminController{DB: db}
}

/* ======================= LIST ======================= */
// GET /api/a/clients?q=&page=&per_page=
func (ctrl *ClientAdminController) List(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.WithContext(c.UserContext()).Model(&model.ClientModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		like := "%" + search + "%"
		q = q.Where("client_contract_number ILIKE ? OR client_full_name ILIKE ?", like, like)
	}
	if status := strings.TrimSpace(c.Query("status")); status != "" {
		q = q.Where("client_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	var clients []model.ClientModel
	if err := q.
		Order("client_updated_at desc").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&clients).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", fiber.Map{
		"items":      dto.FromClientModels(clients),
		"pagination": helper.BuildPagination(paging, total, len(clients)),
	})
}

/* ======================= PAYMENTS ======================= */
// GET /api/a/clients/:id/payments
func (ctrl *ClientAdminController) Payments(c *fiber.Ctx) error {
	clientID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "client_id inválido")
	}

	var payments []model.ClientPaymentModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("client_payment_client_id = ?", clientID).
		Order("client_payment_date desc, client_payment_created_at desc").
		Find(&payments).Error; err != nil {
		return helper.Error(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.Success(c, "OK", dto.FromClientPaymentModels(payments))
}
