package service

import "errors"

// Clases de error del flujo de pagos. Los controladores regresan el mensaje
// tal cual en {"error": ...} con HTTP 400; internamente se comparan con
// errors.Is para no depender del texto.
var (
	// el número de contrato no corresponde a ningún cliente
	ErrContractNotFound = errors.New("Contrato no encontrado")

	// falta el token de Mercado Pago para el modo activo
	ErrCredentialNotConfigured = errors.New("Token de Mercado Pago no configurado")

	// la comisión configurada (con IVA) absorbería el cargo completo
	ErrInvalidCommission = errors.New("Comisión de Mercado Pago inválida")
)
