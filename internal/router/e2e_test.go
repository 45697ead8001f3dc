//go:build integration

package router

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/asbuyukgungor-bot/bus-erp/internal/config"
	"github.com/asbuyukgungor-bot/bus-erp/internal/dto"
	"github.com/asbuyukgungor-bot/bus-erp/internal/infra"
	"github.com/asbuyukgungor-bot/bus-erp/internal/model"
	"github.com/asbuyukgungor-bot/bus-erp/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
	"golang.org/x/crypto/bcrypt"
)

type e2eEnv struct {
	server *httptest.Server
	token  string
	stores *repository.Stores
}

func setupE2E(t *testing.T) *e2eEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("buserp_test"),
		tcPostgres.WithUsername("buserp"),
		tcPostgres.WithPassword("buserp"),
		tcPostgres.BasicWaitStrategies(),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Env:                  "test",
		StaticDir:            t.TempDir(),
		StoreDriver:          "postgres",
		DatabaseURL:          pgURL,
		RedisURL:             rdURL,
		AuthEnabled:          true,
		JWTSecret:            "e2e-secret",
		JWTExpirationMinutes: 30,
		LowStockThreshold:    10,
		PDFStoragePath:       t.TempDir(),
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)
	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	stores := repository.NewGormStores(db)

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, stores.Users.Create(ctx, &model.User{
		Username: "admin", PasswordHash: string(hash), Role: "admin",
	}))

	r := New(cfg, stores, db, rdb, nil, nil)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	form := url.Values{"username": {"admin"}, "password": {"admin"}}
	resp, err := srv.Client().Post(srv.URL+"/api/v1/token",
		"application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var tokenResp dto.TokenResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&tokenResp))

	return &e2eEnv{server: srv, token: tokenResp.AccessToken, stores: stores}
}

func (e *e2eEnv) do(t *testing.T, method, path, body string) *http.Response {
	t.Helper()
	var rdr io.Reader
	if body != "" {
		rdr = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, e.server.URL+path, rdr)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.token)
	resp, err := e.server.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func TestE2E_WorkOrderCycle(t *testing.T) {
	env := setupE2E(t)

	resp := env.do(t, http.MethodPost, "/api/v1/parts",
		`{"name":"Oil Filter","part_number":"OF-1022","supplier":"Supplier A","quantity":25,"price":"15.50"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/v1/vehicles",
		`{"name":"Bus-101","vin":"VIN101ABC","make":"Mercedes-Benz","model":"Tourismo","year":2021}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/v1/work-orders",
		`{"vehicle_vin":"VIN101ABC","description":"Oil change","items_used":[{"part_number":"OF-1022","quantity_used":2}]}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var created dto.WorkOrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	resp.Body.Close()
	require.NotEmpty(t, created.ID)

	// stock decremented in Postgres
	resp = env.do(t, http.MethodGet, "/api/v1/parts/OF-1022", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var part dto.PartResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&part))
	resp.Body.Close()
	assert.Equal(t, 23, part.Quantity)

	// status transition round-trips through the DB
	resp = env.do(t, http.MethodPut, "/api/v1/work-orders/"+created.ID, `{"status":"Completed"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var updated dto.WorkOrderResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&updated))
	resp.Body.Close()
	assert.Equal(t, "Completed", updated.Status)
	require.Len(t, updated.ItemsUsed, 1)
	assert.Equal(t, "OF-1022", updated.ItemsUsed[0].PartNumber)
}

func TestE2E_OversellRejected(t *testing.T) {
	env := setupE2E(t)

	resp := env.do(t, http.MethodPost, "/api/v1/parts",
		`{"name":"Brake Pad Set","part_number":"BP-4510","supplier":"Supplier B","quantity":8,"price":"75.00"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/v1/vehicles",
		`{"name":"Bus-101","vin":"VIN101ABC","make":"Mercedes-Benz","model":"Tourismo","year":2021}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = env.do(t, http.MethodPost, "/api/v1/work-orders",
		`{"vehicle_vin":"VIN101ABC","description":"Overdraw","items_used":[{"part_number":"BP-4510","quantity_used":9}]}`)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Contains(t, string(raw), "Not enough stock for part Brake Pad Set. Required: 9, Available: 8")

	// stock untouched
	resp = env.do(t, http.MethodGet, "/api/v1/parts/BP-4510", "")
	var part dto.PartResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&part))
	resp.Body.Close()
	assert.Equal(t, 8, part.Quantity)
}

func TestE2E_DashboardCached(t *testing.T) {
	env := setupE2E(t)

	resp := env.do(t, http.MethodGet, "/api/v1/dashboard-stats", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var first dto.DashboardStatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&first))
	resp.Body.Close()
	assert.Equal(t, 0, first.TotalParts)

	resp = env.do(t, http.MethodPost, "/api/v1/parts",
		`{"name":"Air Filter","part_number":"AF-220","supplier":"Supplier C","quantity":12,"price":"22.00"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// within the cache TTL the stale snapshot is served
	resp = env.do(t, http.MethodGet, "/api/v1/dashboard-stats", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var second dto.DashboardStatsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&second))
	resp.Body.Close()
	assert.Equal(t, 0, second.TotalParts)
}
