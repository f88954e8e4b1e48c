package service

import (
	"fmt"
	"math"
)

// IVA aplicado únicamente sobre la comisión porcentual del procesador.
const ivaOnCommission = 1.16

// CeilToCent redondea hacia arriba al centavo. El epsilon evita que un valor
// que ya es un centavo exacto suba un centavo por ruido de punto flotante.
func CeilToCent(v float64) float64 {
	return math.Ceil(v*100-1e-9) / 100
}

// GrossUpAmount calcula el cargo bruto para que, después de la comisión de
// Mercado Pago (con IVA) y el cargo fijo, la agencia reciba el neto pedido.
//
//	bruto = (neto + fijo) / (1 − comisión/100 × 1.16), redondeado ↑ al centavo
//
// Una comisión de ~86.21% o más deja el denominador en cero o negativo (la
// comisión con IVA se comería todo el cargo); eso es configuración inválida.
func GrossUpAmount(net, commissionPercentage, fixedFee float64) (float64, error) {
	fraction := commissionPercentage / 100
	denom := 1 - fraction*ivaOnCommission
	if denom <= 0 {
		return 0, fmt.Errorf("%w: %.2f%%", ErrInvalidCommission, commissionPercentage)
	}
	return CeilToCent((net + fixedFee) / denom), nil
}
