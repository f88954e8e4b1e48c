package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/mercadopago/sdk-go/pkg/config"
)

// testRequester redirige las llamadas del SDK al servidor de prueba.
type testRequester struct {
	target *url.URL
}

func (r testRequester) Do(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = r.target.Scheme
	req.URL.Host = r.target.Host
	return http.DefaultClient.Do(req)
}

func newTestClient(t *testing.T, srv *httptest.Server, token string) *MercadoPagoClient {
	t.Helper()
	target, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("url.Parse: %v", err)
	}
	mc, err := NewMercadoPagoClient(token, config.WithHTTPClient(testRequester{target: target}))
	if err != nil {
		t.Fatalf("NewMercadoPagoClient: %v", err)
	}
	return mc
}

func TestCreatePreference(t *testing.T) {
	var gotReq struct {
		Items []struct {
			Title      string  `json:"title"`
			Quantity   int     `json:"quantity"`
			UnitPrice  float64 `json:"unit_price"`
			CurrencyID string  `json:"currency_id"`
		} `json:"items"`
		ExternalReference string `json:"external_reference"`
		BackURLs          struct {
			Success string `json:"success"`
			Failure string `json:"failure"`
		} `json:"back_urls"`
		AutoReturn string `json:"auto_return"`
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, quiero POST", r.Method)
		}
		if r.URL.Path != "/checkout/preferences" {
			t.Errorf("path = %s, quiero /checkout/preferences", r.URL.Path)
		}
		if auth := r.Header.Get("Authorization"); auth != "Bearer tok-123" {
			t.Errorf("Authorization = %q", auth)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Fatalf("body inválido: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"pref-1","init_point":"https://mp.test/checkout/pref-1"}`))
	}))
	defer srv.Close()

	mc := newTestClient(t, srv, "tok-123")
	p, err := mc.CreatePreference(context.Background(), PreferenceRequest{
		Items: []PreferenceItem{
			{Title: "Anticipo de Reserva", Quantity: 1, UnitPrice: 528.46, CurrencyID: "MXN"},
		},
		ExternalReference: "client-42",
		BackURLs: PreferenceBackURLs{
			Success: "https://viajescaribe.mx/pago/CT-001?estado=exito",
			Failure: "https://viajescaribe.mx/pago/CT-001?estado=fallo",
		},
		AutoReturn: "approved",
	})
	if err != nil {
		t.Fatalf("error inesperado: %v", err)
	}

	if p.ID != "pref-1" {
		t.Errorf("id = %q", p.ID)
	}
	if p.InitPoint != "https://mp.test/checkout/pref-1" {
		t.Errorf("init_point = %q", p.InitPoint)
	}

	if len(gotReq.Items) != 1 {
		t.Fatalf("items = %d, quiero 1", len(gotReq.Items))
	}
	item := gotReq.Items[0]
	if item.UnitPrice != 528.46 || item.Quantity != 1 || item.CurrencyID != "MXN" {
		t.Errorf("item inesperado: %+v", item)
	}
	if item.Title != "Anticipo de Reserva" {
		t.Errorf("title = %q", item.Title)
	}
	if gotReq.ExternalReference != "client-42" {
		t.Errorf("external_reference = %q", gotReq.ExternalReference)
	}
	if gotReq.AutoReturn != "approved" {
		t.Errorf("auto_return = %q", gotReq.AutoReturn)
	}
	if gotReq.BackURLs.Success == "" || gotReq.BackURLs.Failure == "" {
		t.Errorf("back_urls incompletas: %+v", gotReq.BackURLs)
	}
}

func TestCreatePreferenceNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"invalid access token"}`))
	}))
	defer srv.Close()

	mc := newTestClient(t, srv, "tok-bad")
	_, err := mc.CreatePreference(context.Background(), PreferenceRequest{})
	if err == nil {
		t.Fatal("quiero error en respuesta 400")
	}
}

func TestCreatePreferenceMalformedJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`no soy json`))
	}))
	defer srv.Close()

	mc := newTestClient(t, srv, "tok-123")
	_, err := mc.CreatePreference(context.Background(), PreferenceRequest{})
	if err == nil {
		t.Fatal("quiero error con JSON inválido")
	}
}
