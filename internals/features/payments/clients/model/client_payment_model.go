package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const PaymentMethodOnline = "online"

// ClientPaymentModel es un abono acreditado a un contrato. Append-only:
// una fila por confirmación exitosa, fechada al día (sin hora).
type ClientPaymentModel struct {
	ClientPaymentID uuid.UUID `gorm:"column:client_payment_id;type:uuid;default:gen_random_uuid();primaryKey" json:"client_payment_id"`

	ClientPaymentClientID uuid.UUID `gorm:"column:client_payment_client_id;type:uuid;not null;index:idx_client_payments_client" json:"client_payment_client_id"`

	ClientPaymentAmount float64        `gorm:"column:client_payment_amount;type:numeric(12,2);not null;check:client_payment_amount > 0" json:"client_payment_amount"`
	ClientPaymentMethod string         `gorm:"column:client_payment_method;type:varchar(50);not null;default:'online'" json:"client_payment_method"`
	ClientPaymentDate   datatypes.Date `gorm:"column:client_payment_date;type:date;not null" json:"client_payment_date"`

	ClientPaymentCreatedAt time.Time `gorm:"column:client_payment_created_at;autoCreateTime" json:"client_payment_created_at"`
}

func (ClientPaymentModel) TableName() string { return "client_payments" }
