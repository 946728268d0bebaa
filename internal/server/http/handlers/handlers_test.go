package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/jokistudio/portal/internal/domain/errors"
	"github.com/jokistudio/portal/internal/domain/model"
	"github.com/jokistudio/portal/internal/server/http/dto"
	"github.com/jokistudio/portal/internal/server/http/middleware"
	testhelpers "github.com/jokistudio/portal/internal/test"
	"github.com/jokistudio/portal/internal/usecase"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(t *testing.T, method, path, target string, handler gin.HandlerFunc, user *model.User, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	router := gin.New()
	router.Handle(method, path, func(c *gin.Context) {
		if user != nil {
			c.Set(middleware.UserContextKey, user)
		}
		handler(c)
	})

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func client() *model.User {
	return &model.User{ID: 7, Email: "budi@example.com", Name: "Budi", Role: model.RoleUser}
}

func administrator() *model.User {
	return &model.User{ID: 1, Email: "admin@example.com", Name: "Admin", Role: model.RoleAdmin}
}

func TestCurrentUser(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	if got := CurrentUser(c); got != nil {
		t.Fatalf("expected nil when not set, got %+v", got)
	}

	c.Set(middleware.UserContextKey, client())
	if got := CurrentUser(c); got == nil || got.ID != 7 {
		t.Fatalf("expected principal with ID 7, got %+v", got)
	}
}

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		domainErrors.ErrValidation:     http.StatusBadRequest,
		domainErrors.ErrInvalidState:   http.StatusBadRequest,
		domainErrors.ErrAuthentication: http.StatusUnauthorized,
		domainErrors.ErrAuthorization:  http.StatusForbidden,
		domainErrors.ErrNotFound:       http.StatusNotFound,
		errors.New("boom"):             http.StatusInternalServerError,
	}
	for err, want := range cases {
		if got := statusFor(fmt.Errorf("wrapped: %w", err)); got != want {
			t.Fatalf("statusFor(%v) = %d, want %d", err, got, want)
		}
	}
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/x", "/x", func(c *gin.Context) {
		writeError(c, errors.New("pgx: connection refused"))
	}, nil, nil)
	if resp.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", resp.Code)
	}
	var body dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	if body.Message != "terjadi kesalahan pada server" {
		t.Fatalf("expected generic message, got %q", body.Message)
	}
}

func TestAuthHandlerSignIn(t *testing.T) {
	facade := &testhelpers.FacadeStub{SignInFn: func(ctx context.Context, provider, token string) (*model.User, string, error) {
		if provider != "google" || token != "oauth-token" {
			t.Fatalf("unexpected credentials passed to facade: %q %q", provider, token)
		}
		return &model.User{ID: 7, Email: "budi@example.com", Name: "Budi", Role: model.RoleUser}, "session-abc", nil
	}}
	body, _ := json.Marshal(dto.SignInRequest{Provider: "google", AccessToken: "oauth-token"})

	resp := performRequest(t, http.MethodPost, "/signin", "/signin", NewAuthHandler(facade).SignIn, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var token dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &token); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if token.Token != "session-abc" || token.User.Email != "budi@example.com" {
		t.Fatalf("unexpected token response: %+v", token)
	}

	cookieSet := false
	for _, cookie := range resp.Result().Cookies() {
		if cookie.Name == "portal_session" && cookie.Value == "session-abc" {
			cookieSet = true
		}
	}
	if !cookieSet {
		t.Fatalf("expected session cookie to be set, got %v", resp.Result().Cookies())
	}
}

func TestAuthHandlerSignInRejected(t *testing.T) {
	facade := &testhelpers.FacadeStub{SignInFn: func(ctx context.Context, provider, token string) (*model.User, string, error) {
		return nil, "", fmt.Errorf("%w: token ditolak", domainErrors.ErrAuthentication)
	}}
	body, _ := json.Marshal(dto.SignInRequest{Provider: "google", AccessToken: "bad"})

	resp := performRequest(t, http.MethodPost, "/signin", "/signin", NewAuthHandler(facade).SignIn, nil, body)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", resp.Code)
	}
}

func TestAuthHandlerSignInMalformedBody(t *testing.T) {
	resp := performRequest(t, http.MethodPost, "/signin", "/signin", NewAuthHandler(&testhelpers.FacadeStub{}).SignIn, nil, []byte("{not json"))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
}

func TestAuthHandlerMobileLogin(t *testing.T) {
	facade := &testhelpers.FacadeStub{MobileLoginFn: func(ctx context.Context, email, password string) (*model.User, string, error) {
		if email != "admin@example.com" || password != "secret" {
			t.Fatalf("unexpected credentials passed to facade: %q %q", email, password)
		}
		return &model.User{ID: 1, Email: email, Role: model.RoleAdmin}, "bearer-xyz", nil
	}}
	body, _ := json.Marshal(dto.MobileLoginRequest{Email: "admin@example.com", Password: "secret"})

	resp := performRequest(t, http.MethodPost, "/login", "/login", NewAuthHandler(facade).MobileLogin, nil, body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var token dto.TokenResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &token); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if token.Token != "bearer-xyz" || token.User.Role != string(model.RoleAdmin) {
		t.Fatalf("unexpected token response: %+v", token)
	}
	if len(resp.Result().Cookies()) != 0 {
		t.Fatalf("mobile login must not set cookies, got %v", resp.Result().Cookies())
	}
}

func TestAuthHandlerRegisterFCM(t *testing.T) {
	var registered *string
	facade := &testhelpers.FacadeStub{RegisterFCMTokenFn: func(ctx context.Context, userID int64, token *string) error {
		if userID != 1 {
			t.Fatalf("unexpected user id %d", userID)
		}
		registered = token
		return nil
	}}

	body, _ := json.Marshal(dto.FCMTokenRequest{Token: "device-token"})
	resp := performRequest(t, http.MethodPost, "/fcm", "/fcm", NewAuthHandler(facade).RegisterFCM, administrator(), body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if registered == nil || *registered != "device-token" {
		t.Fatalf("expected token to reach facade, got %v", registered)
	}

	resp = performRequest(t, http.MethodPost, "/fcm", "/fcm", NewAuthHandler(facade).RegisterFCM, administrator(), []byte(`{"token":""}`))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for empty token, got %d", resp.Code)
	}
}

func TestAuthHandlerClearFCM(t *testing.T) {
	cleared := false
	facade := &testhelpers.FacadeStub{RegisterFCMTokenFn: func(ctx context.Context, userID int64, token *string) error {
		if token != nil {
			t.Fatalf("expected nil token, got %q", *token)
		}
		cleared = true
		return nil
	}}

	resp := performRequest(t, http.MethodDelete, "/fcm", "/fcm", NewAuthHandler(facade).ClearFCM, administrator(), nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if !cleared {
		t.Fatalf("expected facade to be called")
	}
}

func TestPesananHandlerCreate(t *testing.T) {
	deadline := time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC)
	facade := &testhelpers.FacadeStub{CreateOrderFn: func(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error) {
		if userID != 7 {
			t.Fatalf("unexpected user id %d", userID)
		}
		if draft.NamaAplikasi != "KasirKu" || len(draft.Teknologi) != 2 {
			t.Fatalf("unexpected draft: %+v", draft)
		}
		return &model.Order{ID: 10, UserID: userID, Nama: draft.Nama, NamaAplikasi: draft.NamaAplikasi, Status: model.OrderStatusPending, Deadline: draft.Deadline}, nil
	}}

	body, _ := json.Marshal(dto.OrderCreateRequest{
		Nama:         "Budi",
		NamaAplikasi: "KasirKu",
		Keperluan:    "Tugas akhir",
		Teknologi:    []string{"go", "flutter"},
		Fitur:        []string{"login"},
		Deadline:     deadline,
		AkunTiktok:   "@budi",
	})
	resp := performRequest(t, http.MethodPost, "/pesanan", "/pesanan", NewPesananHandler(facade).Create, client(), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}

	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if order.ID != 10 || order.Status != string(model.OrderStatusPending) {
		t.Fatalf("unexpected order response: %+v", order)
	}
}

func TestPesananHandlerCreateValidation(t *testing.T) {
	facade := &testhelpers.FacadeStub{CreateOrderFn: func(ctx context.Context, userID int64, draft model.OrderDraft) (*model.Order, error) {
		return nil, fmt.Errorf("%w: nama wajib diisi", domainErrors.ErrValidation)
	}}
	body, _ := json.Marshal(dto.OrderCreateRequest{})

	resp := performRequest(t, http.MethodPost, "/pesanan", "/pesanan", NewPesananHandler(facade).Create, client(), body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", resp.Code)
	}
	var errBody dto.ErrorResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &errBody); err != nil {
		t.Fatalf("unmarshal error body: %v", err)
	}
	if errBody.Message == "" {
		t.Fatalf("expected validation message in body")
	}
}

func TestPesananHandlerListClient(t *testing.T) {
	facade := &testhelpers.FacadeStub{
		MyOrdersFn: func(ctx context.Context, userID int64) ([]model.Order, error) {
			if userID != 7 {
				t.Fatalf("unexpected user id %d", userID)
			}
			return []model.Order{{ID: 1, UserID: 7, Status: model.OrderStatusProses}}, nil
		},
		AllOrdersFn: func(ctx context.Context, user *model.User) ([]model.OrderWithOwner, error) {
			t.Fatalf("clients must not hit the admin listing")
			return nil, nil
		},
	}

	resp := performRequest(t, http.MethodGet, "/pesanan", "/pesanan", NewPesananHandler(facade).List, client(), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var orders []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &orders); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != 1 {
		t.Fatalf("unexpected listing: %+v", orders)
	}
}

func TestPesananHandlerListAdmin(t *testing.T) {
	facade := &testhelpers.FacadeStub{AllOrdersFn: func(ctx context.Context, user *model.User) ([]model.OrderWithOwner, error) {
		return []model.OrderWithOwner{{
			Order:      model.Order{ID: 2, UserID: 7, Status: model.OrderStatusPending},
			OwnerName:  "Budi",
			OwnerEmail: "budi@example.com",
		}}, nil
	}}

	resp := performRequest(t, http.MethodGet, "/pesanan", "/pesanan?role=admin", NewPesananHandler(facade).List, administrator(), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var orders []dto.OrderOwnerResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &orders); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(orders) != 1 || orders[0].User.Email != "budi@example.com" {
		t.Fatalf("expected owner identity in admin listing: %+v", orders)
	}
}

func TestPesananHandlerListAdminParamIgnoredForClients(t *testing.T) {
	facade := &testhelpers.FacadeStub{
		MyOrdersFn: func(ctx context.Context, userID int64) ([]model.Order, error) {
			return []model.Order{{ID: 1, UserID: userID, Status: model.OrderStatusPending}}, nil
		},
		AllOrdersFn: func(ctx context.Context, user *model.User) ([]model.OrderWithOwner, error) {
			t.Fatalf("role=admin from a client must not reach the admin listing")
			return nil, nil
		},
	}

	resp := performRequest(t, http.MethodGet, "/pesanan", "/pesanan?role=admin", NewPesananHandler(facade).List, client(), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var orders []dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &orders); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != 1 {
		t.Fatalf("expected owned orders, got %+v", orders)
	}
}

func TestPesananHandlerListEmpty(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/pesanan", "/pesanan", NewPesananHandler(&testhelpers.FacadeStub{}).List, client(), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}
	if got := resp.Body.String(); got != "[]" {
		t.Fatalf("expected empty array, got %q", got)
	}
}

func TestPesananHandlerGet(t *testing.T) {
	facade := &testhelpers.FacadeStub{OrderFn: func(ctx context.Context, user *model.User, orderID int64) (*model.Order, error) {
		if orderID != 42 {
			t.Fatalf("unexpected order id %d", orderID)
		}
		return &model.Order{ID: 42, UserID: user.ID, Status: model.OrderStatusSelesai}, nil
	}}

	resp := performRequest(t, http.MethodGet, "/pesanan/:id", "/pesanan/42", NewPesananHandler(facade).Get, client(), nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	resp = performRequest(t, http.MethodGet, "/pesanan/:id", "/pesanan/abc", NewPesananHandler(facade).Get, client(), nil)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed id, got %d", resp.Code)
	}
}

func TestPesananHandlerGetNotFound(t *testing.T) {
	resp := performRequest(t, http.MethodGet, "/pesanan/:id", "/pesanan/5", NewPesananHandler(&testhelpers.FacadeStub{}).Get, client(), nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestPesananHandlerPatchStatus(t *testing.T) {
	facade := &testhelpers.FacadeStub{SetOrderStatusFn: func(ctx context.Context, user *model.User, orderID int64, next model.OrderStatus) (*model.Order, error) {
		if orderID != 3 || next != model.OrderStatusProses {
			t.Fatalf("unexpected status change: id=%d next=%s", orderID, next)
		}
		return &model.Order{ID: orderID, Status: next}, nil
	}}

	body, _ := json.Marshal(dto.OrderPatchRequest{PesananID: 3, Status: "PROSES"})
	resp := performRequest(t, http.MethodPatch, "/pesanan", "/pesanan", NewPesananHandler(facade).Patch, administrator(), body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if order.Status != string(model.OrderStatusProses) {
		t.Fatalf("unexpected order response: %+v", order)
	}
}

func TestPesananHandlerPatchProof(t *testing.T) {
	facade := &testhelpers.FacadeStub{AttachProofFn: func(ctx context.Context, user *model.User, orderID int64, kind usecase.ProofKind, dataURI string) (*model.Order, error) {
		if orderID != 3 || kind != usecase.ProofDeposit || dataURI != "data:image/png;base64,AAAA" {
			t.Fatalf("unexpected proof attach: id=%d kind=%s", orderID, kind)
		}
		url := "https://cdn.test/proof.png"
		return &model.Order{ID: orderID, Status: model.OrderStatusProses, BuktiDP: &url}, nil
	}}

	body, _ := json.Marshal(dto.OrderPatchRequest{PesananID: 3, JenisBukti: "buktiDP", Bukti: "data:image/png;base64,AAAA"})
	resp := performRequest(t, http.MethodPatch, "/pesanan", "/pesanan", NewPesananHandler(facade).Patch, client(), body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var order dto.OrderResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &order); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if order.BuktiDP == nil || *order.BuktiDP != "https://cdn.test/proof.png" {
		t.Fatalf("expected buktiDP in response: %+v", order)
	}
}

func TestPesananHandlerPatchValidation(t *testing.T) {
	handler := NewPesananHandler(&testhelpers.FacadeStub{})

	cases := []struct {
		name string
		body dto.OrderPatchRequest
	}{
		{"missing pesananId", dto.OrderPatchRequest{Status: "PROSES"}},
		{"both mutations", dto.OrderPatchRequest{PesananID: 3, Status: "PROSES", JenisBukti: "buktiDP"}},
		{"no mutation", dto.OrderPatchRequest{PesananID: 3}},
		{"unknown proof kind", dto.OrderPatchRequest{PesananID: 3, JenisBukti: "buktiLain", Bukti: "x"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body, _ := json.Marshal(tc.body)
			resp := performRequest(t, http.MethodPatch, "/pesanan", "/pesanan", handler.Patch, administrator(), body)
			if resp.Code != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d: %s", resp.Code, resp.Body.String())
			}
		})
	}
}

func TestPesananHandlerPatchForbidden(t *testing.T) {
	facade := &testhelpers.FacadeStub{SetOrderStatusFn: func(ctx context.Context, user *model.User, orderID int64, next model.OrderStatus) (*model.Order, error) {
		return nil, fmt.Errorf("%w: hanya admin", domainErrors.ErrAuthorization)
	}}

	body, _ := json.Marshal(dto.OrderPatchRequest{PesananID: 3, Status: "PROSES"})
	resp := performRequest(t, http.MethodPatch, "/pesanan", "/pesanan", NewPesananHandler(facade).Patch, client(), body)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403, got %d", resp.Code)
	}
}

func TestPortfolioHandlerList(t *testing.T) {
	facade := &testhelpers.FacadeStub{PortfoliosFn: func(ctx context.Context) ([]model.Portfolio, error) {
		return []model.Portfolio{{ID: 1, Nama: "Aplikasi Kasir", Image: "https://cdn.test/kasir.png"}}, nil
	}}

	resp := performRequest(t, http.MethodGet, "/portofolio", "/portofolio", NewPortfolioHandler(facade).List, nil, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", resp.Code)
	}

	var items []dto.PortfolioResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &items); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if len(items) != 1 || items[0].Nama != "Aplikasi Kasir" {
		t.Fatalf("unexpected listing: %+v", items)
	}
}

func TestPortfolioHandlerCreate(t *testing.T) {
	facade := &testhelpers.FacadeStub{CreatePortfolioFn: func(ctx context.Context, user *model.User, draft usecase.PortfolioDraft) (*model.Portfolio, error) {
		if !user.IsAdmin() {
			t.Fatalf("expected admin principal")
		}
		return &model.Portfolio{ID: 5, Nama: draft.Nama, Image: "https://cdn.test/p.png"}, nil
	}}

	body, _ := json.Marshal(dto.PortfolioRequest{Nama: "Toko Online", Deskripsi: "Web toko", TechStack: []string{"go"}, Link: "https://toko.example.com", Image: "data:image/png;base64,AAAA"})
	resp := performRequest(t, http.MethodPost, "/portofolio", "/portofolio", NewPortfolioHandler(facade).Create, administrator(), body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestPortfolioHandlerUpdate(t *testing.T) {
	facade := &testhelpers.FacadeStub{UpdatePortfolioFn: func(ctx context.Context, user *model.User, id int64, draft usecase.PortfolioDraft) (*model.Portfolio, error) {
		if id != 5 {
			t.Fatalf("unexpected id %d", id)
		}
		return &model.Portfolio{ID: id, Nama: draft.Nama}, nil
	}}

	body, _ := json.Marshal(dto.PortfolioRequest{Nama: "Toko Online v2"})
	resp := performRequest(t, http.MethodPut, "/portofolio/:id", "/portofolio/5", NewPortfolioHandler(facade).Update, administrator(), body)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = performRequest(t, http.MethodPut, "/portofolio/:id", "/portofolio/abc", NewPortfolioHandler(facade).Update, administrator(), body)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for malformed id, got %d", resp.Code)
	}
}

func TestPortfolioHandlerDelete(t *testing.T) {
	deleted := int64(0)
	facade := &testhelpers.FacadeStub{DeletePortfolioFn: func(ctx context.Context, user *model.User, id int64) error {
		deleted = id
		return nil
	}}

	resp := performRequest(t, http.MethodDelete, "/portofolio/:id", "/portofolio/9", NewPortfolioHandler(facade).Delete, administrator(), nil)
	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", resp.Code)
	}
	if deleted != 9 {
		t.Fatalf("expected id 9 to reach facade, got %d", deleted)
	}
}

func TestPortfolioHandlerDeleteNotFound(t *testing.T) {
	facade := &testhelpers.FacadeStub{DeletePortfolioFn: func(ctx context.Context, user *model.User, id int64) error {
		return domainErrors.ErrNotFound
	}}

	resp := performRequest(t, http.MethodDelete, "/portofolio/:id", "/portofolio/9", NewPortfolioHandler(facade).Delete, administrator(), nil)
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}
