package service

import (
	"context"
	"fmt"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

/* =========================================================
   Mercado Pago — checkout preferences
========================================================= */

// MercadoPagoClient crea preferencias de checkout con el SDK oficial.
type MercadoPagoClient struct {
	prefs preference.Client
}

// NewMercadoPagoClient arma el cliente con el token del modo activo; opts
// permite inyectar un requester propio en pruebas.
func NewMercadoPagoClient(accessToken string, opts ...config.Option) (*MercadoPagoClient, error) {
	cfg, err := config.New(accessToken, opts...)
	if err != nil {
		return nil, fmt.Errorf("mercado pago: %w", err)
	}
	return &MercadoPagoClient{prefs: preference.NewClient(cfg)}, nil
}

type PreferenceItem struct {
	Title      string
	Quantity   int
	UnitPrice  float64
	CurrencyID string
}

type PreferenceBackURLs struct {
	Success string
	Failure string
}

type PreferenceRequest struct {
	Items             []PreferenceItem
	ExternalReference string
	BackURLs          PreferenceBackURLs
	AutoReturn        string
}

type Preference struct {
	ID               string
	InitPoint        string
	SandboxInitPoint string
}

// CreatePreference crea la preferencia y regresa su id y la URL de pago
// hospedada. Los errores del API (respuestas no-2xx) se propagan tal cual.
func (mc *MercadoPagoClient) CreatePreference(ctx context.Context, pref PreferenceRequest) (*Preference, error) {
	items := make([]preference.ItemRequest, 0, len(pref.Items))
	for _, it := range pref.Items {
		items = append(items, preference.ItemRequest{
			Title:      it.Title,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			CurrencyID: it.CurrencyID,
		})
	}

	resp, err := mc.prefs.Create(ctx, preference.Request{
		Items:             items,
		ExternalReference: pref.ExternalReference,
		BackURLs: &preference.BackURLsRequest{
			Success: pref.BackURLs.Success,
			Failure: pref.BackURLs.Failure,
		},
		AutoReturn: pref.AutoReturn,
	})
	if err != nil {
		return nil, fmt.Errorf("mercado pago: %w", err)
	}

	return &Preference{
		ID:               resp.ID,
		InitPoint:        resp.InitPoint,
		SandboxInitPoint: resp.SandboxInitPoint,
	}, nil
}
