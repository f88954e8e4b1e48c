package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	clientModel "viajescaribe_backend/internals/features/payments/clients/model"
)

// ResolveCredit aplica la regla de abono: gana el monto explícito positivo;
// si no vino, el anticipo pactado cuando todavía no hay pagos; si no, cero.
func ResolveCredit(explicit *float64, totalPaid, advancePayment float64) float64 {
	if explicit != nil && *explicit > 0 {
		return *explicit
	}
	if totalPaid <= 0 {
		return advancePayment
	}
	return 0
}

// DeriveStatus es función pura de (total_paid, total_amount) y se recalcula
// completo en cada confirmación, nunca incremental.
func DeriveStatus(totalPaid, totalAmount float64) clientModel.ClientStatus {
	switch {
	case totalPaid >= totalAmount:
		return clientModel.ClientStatusCompleted
	case totalPaid <= 0:
		return clientModel.ClientStatusPending
	default:
		return clientModel.ClientStatusConfirmed
	}
}

// ConfirmResult es el desenlace de una confirmación.
type ConfirmResult struct {
	NoOp      bool
	Credited  float64
	TotalPaid float64
	Status    clientModel.ClientStatus
}

// ConfirmPayment acredita un abono a un contrato dentro de una sola
// transacción. La fila del cliente se bloquea FOR UPDATE, de modo que
// confirmaciones concurrentes sobre el mismo contrato se serializan y
// ningún abono se pierde; el insert del pago y el update del acumulado
// se confirman o revierten juntos.
func ConfirmPayment(ctx context.Context, db *gorm.DB, contractNumber, method string, explicit *float64) (ConfirmResult, error) {
	var res ConfirmResult

	tx := db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return res, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	var cl clientModel.ClientModel
	if err := tx.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("LOWER(client_contract_number) = LOWER(?)", strings.TrimSpace(contractNumber)).
		Take(&cl).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return res, ErrContractNotFound
		}
		return res, err
	}

	credit := ResolveCredit(explicit, cl.ClientTotalPaid, cl.ClientAdvancePayment)
	if credit <= 0 {
		// nada que acreditar: éxito sin mutación
		tx.Rollback()
		res.NoOp = true
		res.TotalPaid = cl.ClientTotalPaid
		res.Status = cl.ClientStatus
		return res, nil
	}

	if strings.TrimSpace(method) == "" {
		method = clientModel.PaymentMethodOnline
	}

	now := time.Now()
	payment := clientModel.ClientPaymentModel{
		ClientPaymentClientID: cl.ClientID,
		ClientPaymentAmount:   credit,
		ClientPaymentMethod:   method,
		ClientPaymentDate:     datatypes.Date(now),
	}
	if err := tx.Create(&payment).Error; err != nil {
		tx.Rollback()
		return res, err
	}

	newTotal := cl.ClientTotalPaid + credit
	status := DeriveStatus(newTotal, cl.ClientTotalAmount)
	if err := tx.Model(&clientModel.ClientModel{}).
		Where("client_id = ?", cl.ClientID).
		Updates(map[string]interface{}{
			"client_total_paid": newTotal,
			"client_status":     status,
			"client_updated_at": now,
		}).Error; err != nil {
		tx.Rollback()
		return res, err
	}

	if err := tx.Commit().Error; err != nil {
		return res, err
	}

	res.Credited = credit
	res.TotalPaid = newTotal
	res.Status = status
	return res, nil
}
