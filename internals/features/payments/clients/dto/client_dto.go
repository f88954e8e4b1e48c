package dto

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	m "viajescaribe_backend/internals/features/payments/clients/model"
)

/* ================== RESPONSES ================== */

type ClientResponse struct {
	ClientID             uuid.UUID      `json:"client_id"`
	ClientContractNumber string         `json:"client_contract_number"`
	ClientFullName       string         `json:"client_full_name"`
	ClientTotalAmount    float64        `json:"client_total_amount"`
	ClientTotalPaid      float64        `json:"client_total_paid"`
	ClientAdvancePayment float64        `json:"client_advance_payment"`
	ClientStatus         m.ClientStatus `json:"client_status"`
	ClientUpdatedAt      time.Time      `json:"client_updated_at"`
}

type ClientPaymentResponse struct {
	ClientPaymentID     uuid.UUID      `json:"client_payment_id"`
	ClientPaymentAmount float64        `json:"client_payment_amount"`
	ClientPaymentMethod string         `json:"client_payment_method"`
	ClientPaymentDate   datatypes.Date `json:"client_payment_date"`
}

// ContractStatusResponse alimenta la página de pago del sitio.
type ContractStatusResponse struct {
	Client   ClientResponse          `json:"client"`
	Payments []ClientPaymentResponse `json:"payments"`
}

type ClientListResponse struct {
	Items []ClientResponse `json:"items"`
	Total int64            `json:"total"`
}

/* ================== MAPPERS ================== */

func FromClientModel(x m.ClientModel) ClientResponse {
	return ClientResponse{
		ClientID:             x.ClientID,
		ClientContractNumber: x.ClientContractNumber,
		ClientFullName:       x.ClientFullName,
		ClientTotalAmount:    x.ClientTotalAmount,
		ClientTotalPaid:      x.ClientTotalPaid,
		ClientAdvancePayment: x.ClientAdvancePayment,
		ClientStatus:         x.ClientStatus,
		ClientUpdatedAt:      x.ClientUpdatedAt,
	}
}

func FromClientModels(list []m.ClientModel) []ClientResponse {
	out := make([]ClientResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromClientModel(it))
	}
	return out
}

func FromClientPaymentModel(x m.ClientPaymentModel) ClientPaymentResponse {
	return ClientPaymentResponse{
		ClientPaymentID:     x.ClientPaymentID,
		ClientPaymentAmount: x.ClientPaymentAmount,
		ClientPaymentMethod: x.ClientPaymentMethod,
		ClientPaymentDate:   x.ClientPaymentDate,
	}
}

func FromClientPaymentModels(list []m.ClientPaymentModel) []ClientPaymentResponse {
	out := make([]ClientPaymentResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromClientPaymentModel(it))
	}
	return out
}
