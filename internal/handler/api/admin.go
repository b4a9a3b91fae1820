package api

import (
	"net/http"
	"strconv"
	"time"

	reqdto "rodizio-reservas/internal/handler/dto/request"
	resdto "rodizio-reservas/internal/handler/dto/response"
	"rodizio-reservas/internal/handler/httperr"
	"rodizio-reservas/internal/pkg/config"
	"rodizio-reservas/internal/pkg/cookie"
	"rodizio-reservas/internal/pkg/errs"
	"rodizio-reservas/internal/usecase/commands"
	"rodizio-reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	auth         commands.AuthCommands
	coupons      commands.CouponCommands
	reservations queries.ReservationQueries
	cookieCfg    config.CookieConfig
}

func NewAdminHandler(auth commands.AuthCommands, coupons commands.CouponCommands, reservations queries.ReservationQueries, cfg config.Config) *AdminHandler {
	return &AdminHandler{
		auth:         auth,
		coupons:      coupons,
		reservations: reservations,
		cookieCfg:    cfg.Cookie,
	}
}

// @Summary Admin login
// @Description Sets the admin token cookie and also returns the token
// @Tags admin
// @Accept json
// @Produce json
// @Param request body reqdto.AdminLoginRequest true "Credentials"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Router /admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req reqdto.AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	result, err := h.auth.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errs.Is(err, commands.ErrInvalidCredentials):
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid username or password", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	cookie.SetAdminTokenCookie(c, h.cookieCfg, result.Token, time.Until(result.ExpiresAt))
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.Token,
		Username:    result.Username,
		ExpiresAt:   result.ExpiresAt,
	})
}

// @Summary Admin logout
// @Description The token is stateless; logout only clears the cookie
// @Tags admin
// @Success 204 "No Content"
// @Router /admin/logout [post]
func (h *AdminHandler) Logout(c *gin.Context) {
	cookie.ClearAdminTokenCookie(c, h.cookieCfg)
	c.Status(http.StatusNoContent)
}

// @Summary List reservations
// @Description Newest first with keyset pagination
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.ReservationListResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/reservations [get]
func (h *AdminHandler) ListReservations(c *gin.Context) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}

	items, next, err := h.reservations.List(c.Request.Context(), cursor, limit)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationList(items, next))
}

// @Summary Get reservation
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /admin/reservations/{id} [get]
func (h *AdminHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid reservation id", nil)
		return
	}
	view, err := h.reservations.GetByID(c.Request.Context(), id)
	if err != nil {
		if errs.Is(err, queries.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Create or replace coupon
// @Description Discount is a flat amount
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpsertCouponRequest true "Coupon"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/coupons [post]
func (h *AdminHandler) UpsertCoupon(c *gin.Context) {
	var req reqdto.UpsertCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	saved, err := h.coupons.Upsert(c.Request.Context(), req)
	if err != nil {
		if errs.Is(err, commands.ErrCouponValidation) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid coupon", gin.H{"reason": err.Error()})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to save coupon", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupon(saved))
}
