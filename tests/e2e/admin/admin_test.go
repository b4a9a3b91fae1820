//go:build e2e

package admin_test

import (
	"net/http"
	"testing"

	"rodizio-reservas/internal/handler/dto/response"
	"rodizio-reservas/internal/pkg/cookie"
	"rodizio-reservas/internal/usecase/commands"
	"rodizio-reservas/tests/common/authtest"
	"rodizio-reservas/tests/common/httptest"
	"rodizio-reservas/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL        = "/api/admin/login"
	logoutURL       = "/api/admin/logout"
	settingsURL     = "/api/settings"
	pricesURL       = "/api/admin/settings/prices"
	addressURL      = "/api/admin/settings/address"
	popupURL        = "/api/admin/settings/popup"
	paymentURL      = "/api/admin/settings/payment"
	couponsURL      = "/api/admin/coupons"
	reservationsURL = "/api/admin/reservations"
	draftsURL       = "/api/drafts"
)

type AdminSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func TestAdminSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AdminSuite))
}

func (s *AdminSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *AdminSuite) login(t *testing.T) string {
	t.Helper()
	return authtest.LoginAdmin(t, s.Router, s.Config.Admin.Username, e2e.AdminPassword)
}

// =============================================================================
// TestLogin
// =============================================================================

func (s *AdminSuite) TestLogin() {
	tests := []struct {
		name           string
		username       string
		password       string
		expectedStatus int
	}{
		{name: "正常なログイン", username: "admin", password: e2e.AdminPassword, expectedStatus: http.StatusOK},
		{name: "間違ったパスワード", username: "admin", password: "wrong-password", expectedStatus: http.StatusUnauthorized},
		{name: "存在しないユーザー", username: "root", password: e2e.AdminPassword, expectedStatus: http.StatusUnauthorized},
		{name: "パスワード未入力", username: "admin", password: "", expectedStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			t := s.T()
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
				map[string]string{"username": tt.username, "password": tt.password}, "")
			require.Equal(t, tt.expectedStatus, w.Code, w.Body.String())

			tokenCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
			if tt.expectedStatus == http.StatusOK {
				require.NotNil(t, tokenCookie)
				require.Equal(t, "/api/admin", tokenCookie.Path)
			} else {
				require.Nil(t, tokenCookie)
			}
		})
	}
}

func (s *AdminSuite) TestAuthRequired() {
	s.Run("Error case: no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, pricesURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})

	s.Run("Error case: expired token", func() {
		token := s.jwtHelper.CreateExpiredToken(s.T(), "admin")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, pricesURL, nil, token)
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid or expired token")
	})

	s.Run("Normal case: cookie token is accepted", func() {
		t := s.T()
		token := s.login(t)
		w := httptest.PerformRequestWithCookies(t, s.Router, http.MethodGet, pricesURL, nil,
			[]*http.Cookie{{Name: cookie.AdminTokenCookieName, Value: token}}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	s.Run("Normal case: logout clears the cookie", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, logoutURL, nil, "")
		require.Equal(t, http.StatusNoContent, w.Code)
		tokenCookie := httptest.ExtractCookie(w, cookie.AdminTokenCookieName)
		require.NotNil(t, tokenCookie)
		require.Empty(t, tokenCookie.Value)
	})
}

// =============================================================================
// TestSettings - 管理画面の設定保存
// =============================================================================

func (s *AdminSuite) TestSettings() {
	s.Run("Normal case: saved prices are served publicly", func() {
		t := s.T()
		token := s.login(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, pricesURL,
			map[string]any{"adult": "75.5", "locationTitle": "Unidade Sul"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var saved struct {
			Message string `json:"message"`
		}
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &saved))
		require.Equal(t, commands.MsgPricesSaved, saved.Message)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, settingsURL, nil, "")
		require.Equal(t, http.StatusOK, w.Code)
		var all response.SettingsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &all))

		expected := response.FormattedPrices{Adult: "75.50", Child0to5: "0.00", Child6to10: "45.00"}
		if diff := cmp.Diff(expected, all.Prices.Formatted); diff != "" {
			t.Errorf("Prices mismatch (-want +got):\n%s", diff)
		}
		require.Equal(t, "Unidade Sul", all.Prices.LocationTitle)
		require.Equal(t, "Reserva de Rodízio", all.Prices.ReservationTitle)
	})

	s.Run("Error case: negative price is rejected", func() {
		t := s.T()
		token := s.login(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, pricesURL, map[string]any{"child6to10": "-1"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Invalid settings")

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, pricesURL, nil, token)
		var prices response.PricesResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &prices))
		require.Equal(t, "45.00", prices.Formatted.Child6to10)
	})

	s.Run("Normal case: address, popup and payment round trip", func() {
		t := s.T()
		token := s.login(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, addressURL, map[string]any{"address": "  Av. Paulista, 1000  "}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, popupURL, map[string]any{"title": "Promoção", "show": false}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		w = httptest.PerformRequest(t, s.Router, http.MethodPut, paymentURL, map[string]any{"pixKey": "pix@restaurante.com", "pixType": "Email"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, settingsURL, nil, "")
		var all response.SettingsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &all))

		require.Equal(t, "Av. Paulista, 1000", all.Address.Address)
		require.Equal(t, "https://maps.google.com?q=Av.+Paulista%2C+1000", all.Address.MapsURL)
		require.Equal(t, response.PopupResponse{Title: "Promoção", Show: false}, all.Popup)
		require.Equal(t, response.PaymentResponse{PixKey: "pix@restaurante.com", PixType: "Email"}, all.Payment)
	})

	s.Run("Error case: unknown pix type", func() {
		t := s.T()
		token := s.login(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPut, paymentURL, map[string]any{"pixType": "Boleto"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid request")
	})
}

// =============================================================================
// TestCoupons
// =============================================================================

func (s *AdminSuite) TestCoupons() {
	s.Run("Normal case: new coupon applies to a draft", func() {
		t := s.T()
		token := s.login(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, map[string]any{"code": "ANIVER", "discount": "15.5"}, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, draftsURL, nil, "")
		var draft response.DraftResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &draft))

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, draftsURL+"/"+draft.ID+"/coupon", map[string]any{"code": "ANIVER"}, "")
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &draft))
		require.Equal(t, "15.50", draft.Discount)
		require.Equal(t, "54.40", draft.Totals.Total)
	})

	s.Run("Error case: negative discount", func() {
		t := s.T()
		token := s.login(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, couponsURL, map[string]any{"code": "RUIM", "discount": "-1"}, token)
		httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Invalid coupon")
	})
}

// =============================================================================
// TestReservations - キーセットページネーション
// =============================================================================

func (s *AdminSuite) TestReservations() {
	s.Run("Normal case: newest first across pages", func() {
		t := s.T()

		var ids []string
		for range 3 {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, draftsURL, nil, "")
			var draft response.DraftResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &draft))

			w = httptest.PerformRequest(t, s.Router, http.MethodPost, draftsURL+"/"+draft.ID+"/submit", map[string]any{}, "")
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &draft))
			ids = append(ids, *draft.SubmittedID)
		}

		token := s.login(t)
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?limit=2", nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var page response.ReservationListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &page))
		require.Len(t, page.Reservations, 2)
		require.Equal(t, ids[2], page.Reservations[0].ID)
		require.Equal(t, ids[1], page.Reservations[1].ID)
		require.NotEmpty(t, page.NextCursor)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?limit=2&after="+page.NextCursor, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		var next response.ReservationListResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &next))
		require.Len(t, next.Reservations, 1)
		require.Equal(t, ids[0], next.Reservations[0].ID)
		require.Empty(t, next.NextCursor)
	})

	s.Run("Error case: malformed cursor", func() {
		t := s.T()
		token := s.login(t)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL+"?after=not-a-cursor", nil, token)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid cursor")
	})
}
