package backend_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/bizdash/internal/application/dto"
	"github.com/jhoicas/bizdash/internal/domain"
	"github.com/jhoicas/bizdash/internal/domain/analytics"
	"github.com/jhoicas/bizdash/internal/infrastructure/backend"
	"github.com/jhoicas/bizdash/pkg/logger"
)

func newClient(t *testing.T, h http.HandlerFunc, token string) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL+"/api/", 2*time.Second, backend.TokenFunc(func() string { return token }), logger.Nop())
}

func TestClient_EnviaBearerYPath(t *testing.T) {
	var gotAuth, gotPath, gotRange string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		gotRange = r.URL.Query().Get("dateRange")
		_, _ = w.Write([]byte(`{"totalSales": 50000, "monthlyData": [{"month":"Jan","sales":1}]}`))
	}, "tok-123")

	rep, err := backend.NewAPI(c).Overview(context.Background(), analytics.ThisMonth)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
	assert.Equal(t, "/api/analytics/overview", gotPath)
	assert.Equal(t, string(analytics.ThisMonth), gotRange)
	assert.Equal(t, "50000", rep.TotalSales.String())
	assert.Len(t, rep.Monthly, 1)
}

func TestClient_SinTokenNoEnviaAuthorization(t *testing.T) {
	var gotAuth []string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Values("Authorization")
		_, _ = w.Write([]byte(`[]`))
	}, "")

	_, err := backend.NewAPI(c).LowStockProducts(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_MensajeDelBackend(t *testing.T) {
	cases := map[string]string{
		`{"message":"Invalid credentials"}`:      "Invalid credentials",
		`{"error":"Email already registered"}`:   "Email already registered",
		`{"error":{"message":"Nested failure"}}`: "Nested failure",
		`{"detail":"Not allowed"}`:               "Not allowed",
		`{"detail":[{"msg":"field required"}]}`:  "field required",
	}
	for body, want := range cases {
		c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(body))
		}, "")
		_, err := backend.NewAPI(c).Login(context.Background(), dto.LoginRequest{Email: "a@b.c", Password: "x"})
		require.Error(t, err)
		assert.Equal(t, want, err.Error())
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}
}

func TestClient_MensajeGenericoConStatus(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`<html>oops</html>`))
	}, "t")

	_, err := backend.NewAPI(c).GetBusinessSettings(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Request failed with status 500", err.Error())
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)

	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 500, apiErr.Status)
}

func TestClient_401MapeaAUnauthorized(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Token expired","code":"TOKEN_EXPIRED"}`))
	}, "t")

	_, err := backend.NewAPI(c).ListInvoices(context.Background(), dto.InvoiceFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
	var apiErr *backend.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "TOKEN_EXPIRED", apiErr.Code)
}

func TestClient_ServidorCaido(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := backend.NewClient(url, time.Second, nil, logger.Nop())
	_, err := backend.NewAPI(c).GetBusinessSettings(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBackendUnavailable)
	assert.Equal(t, "Unable to reach the server", err.Error())
}

func TestClient_DesenvuelveData(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"data":{"token":"abc","user":{"id":7,"name":"Wanjiku","email":"w@x.ke"}}}`))
	}, "")

	resp, err := backend.NewAPI(c).Login(context.Background(), dto.LoginRequest{Email: "w@x.ke", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.BearerToken())
	require.NotNil(t, resp.User)
	assert.Equal(t, "7", resp.User.ID.String())
}

func TestClient_ListaBajoClave(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/service-billing/assignments/billable", r.URL.Path)
		_, _ = w.Write([]byte(`{"data":{"assignments":[{"id":"a1","status":"completed","price":"1500"}]}}`))
	}, "t")

	rows, err := backend.NewServiceBillingAPI(c).ListBillableAssignments(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "a1", rows[0].ID.String())
}

func TestClient_ListaAusenteEsVacia(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"total":0}`))
	}, "t")

	rows, err := backend.NewServiceBillingAPI(c).ListServices(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, rows)
	assert.Empty(t, rows)
}

func TestClient_CreateServiceInvoiceEnviaIdempotencyKey(t *testing.T) {
	var key string
	var body dto.CreateServiceInvoiceRequest
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		key = r.Header.Get("Idempotency-Key")
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"invoice":{"id":3,"invoice_number":"SINV-0003","total_amount":"1160"}}`))
	}, "t")

	inv, err := backend.NewServiceBillingAPI(c).CreateServiceInvoice(context.Background(),
		dto.CreateServiceInvoiceRequest{CustomerID: "9", AssignmentIDs: nil, PaymentMethod: "mpesa"}, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "key-1", key)
	assert.Equal(t, "mpesa", body.PaymentMethod)
	assert.Equal(t, "SINV-0003", inv.InvoiceNumber)
	assert.Equal(t, "1160", inv.TotalAmount.String())
}

func TestClient_LogoutUsaTokenExplicito(t *testing.T) {
	var gotAuth string
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}, "")

	require.NoError(t, backend.NewAPI(c).Logout(context.Background(), "old-token"))
	assert.Equal(t, "Bearer old-token", gotAuth)
}

func TestClient_ContextoCancelado(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}, "t")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := backend.NewAPI(c).GetBusinessSettings(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, domain.ErrBackendUnavailable)
}
