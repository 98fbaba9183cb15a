package chi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	dbmemory "github.com/kailas-cloud/bonfire/internal/db/memory"
	"github.com/kailas-cloud/bonfire/internal/domain"
	graphmemory "github.com/kailas-cloud/bonfire/internal/graph/memory"
	analyticsrepo "github.com/kailas-cloud/bonfire/internal/repository/analytics"
	"github.com/kailas-cloud/bonfire/internal/repository/document"
	gen "github.com/kailas-cloud/bonfire/internal/transport/generated"
	analyticsuc "github.com/kailas-cloud/bonfire/internal/usecase/analytics"
	cataloguc "github.com/kailas-cloud/bonfire/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/bonfire/internal/usecase/health"
	joinuc "github.com/kailas-cloud/bonfire/internal/usecase/join"
)

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("down") }

func newTestRouter(t *testing.T, graphPinger healthuc.Pinger) http.Handler {
	t.Helper()
	store := dbmemory.NewStore()
	g := graphmemory.NewStore()

	items := document.New[domain.Item, domain.ItemPatch](store, "test:", domain.CollectionItems)
	persons := document.New[domain.Person, domain.PersonPatch](store, "test:", domain.CollectionPersons)
	reviews := document.New[domain.Review, domain.ReviewPatch](store, "test:", domain.CollectionReviews)
	publishers := document.New[domain.Publisher, domain.PublisherPatch](store, "test:", domain.CollectionPublishers)
	transactions := document.New[domain.Transaction, domain.NoPatch](store, "test:", domain.CollectionTransactions)

	catalog := cataloguc.New(cataloguc.Repositories{
		Items:        items,
		Persons:      persons,
		Reviews:      reviews,
		Publishers:   publishers,
		Transactions: transactions,
	}, g)
	join := joinuc.New(g, items, persons)
	analytics := analyticsuc.New(analyticsrepo.New(items, reviews, publishers, transactions), persons)
	if graphPinger == nil {
		graphPinger = g
	}
	health := healthuc.New(store, graphPinger)

	r := chi.NewRouter()
	return gen.HandlerWithOptions(NewServer(catalog, join, analytics, health, zap.NewNop()), gen.ChiServerOptions{
		BaseRouter:       r,
		ErrorHandlerFunc: ParamErrorHandler,
	})
}

func do(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v), rr.Body.String())
	return v
}

func createPerson(t *testing.T, h http.Handler, handle string, balance float64) domain.Person {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/api/persons", map[string]any{
		"handle": handle, "email": handle + "@example.com", "balance": balance,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[gen.PersonMutation](t, rr).Data
}

func createItem(t *testing.T, h http.Handler, title string, price float64, tags ...string) domain.Item {
	t.Helper()
	rr := do(t, h, http.MethodPost, "/api/items", map[string]any{
		"title": title, "price": price, "tag_names": tags,
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	return decode[gen.ItemMutation](t, rr).Data
}

func TestItemsCRUD(t *testing.T) {
	h := newTestRouter(t, nil)
	it := createItem(t, h, "Hades", 24.99, "roguelike")

	rr := do(t, h, http.MethodGet, "/api/items/"+it.ID, nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Hades", decode[domain.Item](t, rr).Title)

	rr = do(t, h, http.MethodPatch, "/api/items/"+it.ID, map[string]any{"price": 19.99})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.InDelta(t, 19.99, decode[gen.ItemMutation](t, rr).Data.Price, 1e-9)

	rr = do(t, h, http.MethodGet, "/api/items?limit=10", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	page := decode[domain.Page[domain.Item]](t, rr)
	assert.Equal(t, 1, page.Total)

	rr = do(t, h, http.MethodDelete, "/api/items/"+it.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/items/"+it.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, gen.ErrorResponseCodeNotFound, decode[gen.ErrorResponse](t, rr).Code)
}

func TestErrorMapping(t *testing.T) {
	h := newTestRouter(t, nil)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		code   gen.ErrorResponseCode
	}{
		{"malformed id", http.MethodGet, "/api/items/not-a-uuid", nil, http.StatusBadRequest, gen.ErrorResponseCodeInvalidArgument},
		{"missing item", http.MethodGet, "/api/items/" + domain.NewID(), nil, http.StatusNotFound, gen.ErrorResponseCodeNotFound},
		{"missing title", http.MethodPost, "/api/items", map[string]any{"price": 1}, http.StatusBadRequest, gen.ErrorResponseCodeInvalidArgument},
		{"bad limit", http.MethodGet, "/api/items?limit=abc", nil, http.StatusBadRequest, gen.ErrorResponseCodeInvalidArgument},
		{"bad offset", http.MethodGet, "/api/persons?offset=1.5", nil, http.StatusBadRequest, gen.ErrorResponseCodeInvalidArgument},
		{"bad ranking limit", http.MethodGet, "/api/persons/" + domain.NewID() + "/buddies?limit=ten", nil, http.StatusBadRequest, gen.ErrorResponseCodeInvalidArgument},
		{"upper-case id", http.MethodGet, "/api/items/0190A2D4-8F7E-7C3B-9A1E-2B3C4D5E6F70", nil, http.StatusBadRequest, gen.ErrorResponseCodeInvalidArgument},
		{"negative limit", http.MethodGet, "/api/items/top-rated?limit=-1", nil, http.StatusBadRequest, gen.ErrorResponseCodeInvalidArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := do(t, h, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rr.Code)
			assert.Equal(t, tt.code, decode[gen.ErrorResponse](t, rr).Code)
		})
	}
}

func TestInvalidBody(t *testing.T) {
	h := newTestRouter(t, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/items", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, gen.ErrorResponseCodeBadRequest, decode[gen.ErrorResponse](t, rr).Code)
}

func TestPurchaseFlow(t *testing.T) {
	h := newTestRouter(t, nil)
	a := createPerson(t, h, "alice", 30)
	b := createPerson(t, h, "bob", 100)
	hades := createItem(t, h, "Hades", 24.99, "roguelike")

	rr := do(t, h, http.MethodPost, "/api/transactions", domain.PurchaseRequest{PersonID: b.ID, ItemID: hades.ID})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	receipt := decode[domain.Receipt](t, rr)
	assert.InDelta(t, 75.01, receipt.NewBalance, 1e-9)

	rr = do(t, h, http.MethodPost, "/api/transactions", domain.PurchaseRequest{PersonID: b.ID, ItemID: hades.ID})
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, gen.ErrorResponseCodeAlreadyOwned, decode[gen.ErrorResponse](t, rr).Code)

	tooMuch := 50.0
	rr = do(t, h, http.MethodPost, "/api/transactions", domain.PurchaseRequest{PersonID: a.ID, ItemID: hades.ID, AmountPaid: &tooMuch})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, gen.ErrorResponseCodeInsufficientFunds, decode[gen.ErrorResponse](t, rr).Code)

	rr = do(t, h, http.MethodPost, "/api/persons/"+a.ID+"/friends", gen.FriendRequest{FriendId: b.ID})
	require.Equal(t, http.StatusNoContent, rr.Code, rr.Body.String())

	rr = do(t, h, http.MethodGet, "/api/persons/"+a.ID+"/recommendations", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	recs := decode[[]domain.Recommendation](t, rr)
	require.Len(t, recs, 1)
	assert.Equal(t, "Hades", recs[0].Item.Title)
	assert.Equal(t, []string{"bob"}, recs[0].FriendNames)

	rr = do(t, h, http.MethodGet, "/api/persons/"+b.ID+"/library", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decode[[]domain.Item](t, rr), 1)

	rr = do(t, h, http.MethodGet, "/api/persons/"+b.ID+"/spending", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	sum := decode[domain.SpendingSummary](t, rr)
	assert.Equal(t, 1, sum.ItemsBought)

	rr = do(t, h, http.MethodDelete, "/api/persons/"+a.ID+"/friends/"+b.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = do(t, h, http.MethodGet, "/api/persons/"+a.ID+"/recommendations", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Empty(t, decode[[]domain.Recommendation](t, rr))
}

func TestHealthCheck(t *testing.T) {
	rr := do(t, newTestRouter(t, nil), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	resp := decode[gen.HealthResponse](t, rr)
	assert.Equal(t, gen.HealthResponseStatusOk, resp.Status)
	assert.Equal(t, "ok", resp.Checks[healthuc.ComponentGraph])

	rr = do(t, newTestRouter(t, failingPinger{}), http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusServiceUnavailable, rr.Code)
	resp = decode[gen.HealthResponse](t, rr)
	assert.Equal(t, gen.HealthResponseStatusDegraded, resp.Status)
	assert.Equal(t, "error", resp.Checks[healthuc.ComponentGraph])
}

func TestInvalidArgumentHandler_KeepsReason(t *testing.T) {
	rr := httptest.NewRecorder()
	err := errors.Join(errors.New("update item"), domain.InvalidArgument("price must not be negative"))
	require.True(t, invalidArgumentHandler(rr, err))

	resp := decode[gen.ErrorResponse](t, rr)
	assert.Equal(t, "invalid argument: price must not be negative", resp.Message)
}

func TestUnavailableMapsTo503(t *testing.T) {
	s := &Server{logger: zap.NewNop()}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	s.handleDomainError(rr, req, errors.Join(errors.New("json.get"), domain.ErrUnavailable))
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)

	rr = httptest.NewRecorder()
	s.handleDomainError(rr, req, errors.New("boom"))
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, gen.ErrorResponseCodeInternalError, decode[gen.ErrorResponse](t, rr).Code)
}

func TestParamBinding(t *testing.T) {
	h := newTestRouter(t, nil)
	for i := range 3 {
		createItem(t, h, fmt.Sprintf("Game %d", i), 9.99)
	}

	rr := do(t, h, http.MethodGet, "/api/items?limit=2&offset=1", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	page := decode[domain.Page[domain.Item]](t, rr)
	assert.Equal(t, 3, page.Total)
	assert.Equal(t, 2, page.Limit)
	assert.Equal(t, 1, page.Offset)
	assert.Len(t, page.Items, 2)

	rr = do(t, h, http.MethodGet, "/api/items?limit=x", nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode[gen.ErrorResponse](t, rr).Message, "limit")
}

func TestMetricsRoute(t *testing.T) {
	rr := do(t, newTestRouter(t, nil), http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
}
