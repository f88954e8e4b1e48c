package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Estado del contrato, recalculado completo en cada confirmación.
type ClientStatus string

const (
	ClientStatusPending   ClientStatus = "pending"
	ClientStatusConfirmed ClientStatus = "confirmed"
	ClientStatusCompleted ClientStatus = "completed"
)

// ClientModel representa un contrato de viaje. Solo el flujo de confirmación
// de pago muta total_paid/status; nunca se crean ni borran contratos aquí.
type ClientModel struct {
	ClientID uuid.UUID `gorm:"column:client_id;type:uuid;default:gen_random_uuid();primaryKey" json:"client_id"`

	// número de contrato visible para el cliente; se busca sin distinguir mayúsculas
	ClientContractNumber string `gorm:"column:client_contract_number;type:varchar(50);not null;uniqueIndex" json:"client_contract_number"`
	ClientFullName       string `gorm:"column:client_full_name;type:varchar(120)" json:"client_full_name"`

	ClientTotalAmount    float64 `gorm:"column:client_total_amount;type:numeric(12,2);not null" json:"client_total_amount"`
	ClientTotalPaid      float64 `gorm:"column:client_total_paid;type:numeric(12,2);not null;default:0" json:"client_total_paid"`
	ClientAdvancePayment float64 `gorm:"column:client_advance_payment;type:numeric(12,2);not null;default:0" json:"client_advance_payment"`

	ClientStatus ClientStatus `gorm:"column:client_status;type:varchar(20);not null;default:'pending'" json:"client_status"`

	ClientCreatedAt time.Time      `gorm:"column:client_created_at;autoCreateTime" json:"client_created_at"`
	ClientUpdatedAt time.Time      `gorm:"column:client_updated_at;autoUpdateTime" json:"client_updated_at"`
	ClientDeletedAt gorm.DeletedAt `gorm:"column:client_deleted_at;index" json:"client_deleted_at,omitempty"`
}

func (ClientModel) TableName() string { return "clients" }
