package dto

import (
	"strconv"
	"strings"
)

/* ================== REQUESTS ================== */

// FlexAmount acepta el campo amount como número JSON o como cadena numérica
// ("350.50"), que es lo que manda el sitio según el método de pago elegido.
// Distingue tres casos: ausente, presente y válido, presente pero basura.
type FlexAmount struct {
	provided bool
	valid    bool
	value    float64
}

func (a *FlexAmount) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		unq, err := strconv.Unquote(s)
		if err != nil {
			a.provided = true
			return nil
		}
		s = strings.TrimSpace(unq)
		if s == "" {
			return nil
		}
	}
	a.provided = true
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	a.valid = true
	a.value = v
	return nil
}

func (a FlexAmount) Provided() bool { return a.provided }
func (a FlexAmount) Valid() bool    { return a.valid }
func (a FlexAmount) Value() float64 { return a.value }

// ConfirmPaymentRequest es el cuerpo de POST /api/payments/confirm.
type ConfirmPaymentRequest struct {
	ContractNumber string     `json:"contractNumber" validate:"required,min=1,max=50"`
	Method         string     `json:"method" validate:"omitempty,max=50"`
	Amount         FlexAmount `json:"amount" validate:"-"`
}

// ExplicitAmount regresa el monto explícito ya parseado, o nil si no vino.
func (r *ConfirmPaymentRequest) ExplicitAmount() *float64 {
	if !r.Amount.Provided() || !r.Amount.Valid() {
		return nil
	}
	v := r.Amount.Value()
	return &v
}

// CheckoutPreferenceRequest es el cuerpo de POST /api/payments/checkout.
// amount es el neto que la agencia quiere recibir.
type CheckoutPreferenceRequest struct {
	ClientID       string  `json:"clientId" validate:"required,max=64"`
	Amount         float64 `json:"amount" validate:"required,gt=0"`
	Description    string  `json:"description" validate:"omitempty,max=120"`
	ContractNumber string  `json:"contractNumber" validate:"required,min=1,max=50"`
}

/* ================== RESPONSES ================== */

type ConfirmPaymentResponse struct {
	Success  bool    `json:"success"`
	Credited float64 `json:"credited"`
}

type CheckoutPreferenceResponse struct {
	ID        string  `json:"id"`
	InitPoint string  `json:"init_point"`
	Total     float64 `json:"total"`
}
