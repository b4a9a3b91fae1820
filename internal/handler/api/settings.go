package api

import (
	"net/http"

	reqdto "rodizio-reservas/internal/handler/dto/request"
	resdto "rodizio-reservas/internal/handler/dto/response"
	"rodizio-reservas/internal/handler/httperr"
	"rodizio-reservas/internal/pkg/errs"
	"rodizio-reservas/internal/usecase/commands"
	"rodizio-reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	cmds commands.SettingsCommands
	q    queries.SettingsQueries
}

func NewSettingsHandler(cmds commands.SettingsCommands, q queries.SettingsQueries) *SettingsHandler {
	return &SettingsHandler{cmds: cmds, q: q}
}

// @Summary Public settings
// @Description Prices, address, popup and payment settings with defaults applied
// @Tags settings
// @Produce json
// @Success 200 {object} resdto.SettingsResponse
// @Router /settings [get]
func (h *SettingsHandler) GetAll(c *gin.Context) {
	// a missing address only matters to the draft notice; defaults are served
	all, _ := h.q.GetAll(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromSettings(all))
}

// @Summary Get price settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PricesResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/settings/prices [get]
func (h *SettingsHandler) GetPrices(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromPriceSettings(h.q.GetPrices(c.Request.Context())))
}

// @Summary Save price settings
// @Description Omitted fields keep their stored value; negative prices are rejected
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdatePricesRequest true "Prices"
// @Success 200 {object} resdto.SavedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/settings/prices [put]
func (h *SettingsHandler) SavePrices(c *gin.Context) {
	var req reqdto.UpdatePricesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	saved, err := h.cmds.SavePrices(c.Request.Context(), req)
	if err != nil {
		abortSettingsError(c, err, commands.MsgPricesSaveFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.SavedResponse{Message: commands.MsgPricesSaved, Data: resdto.FromPriceSettings(*saved)})
}

// @Summary Get address
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.AddressResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/settings/address [get]
func (h *SettingsHandler) GetAddress(c *gin.Context) {
	address, _ := h.q.GetAddress(c.Request.Context())
	c.JSON(http.StatusOK, resdto.FromAddress(address))
}

// @Summary Save address
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdateAddressRequest true "Address"
// @Success 200 {object} resdto.SavedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/settings/address [put]
func (h *SettingsHandler) SaveAddress(c *gin.Context) {
	var req reqdto.UpdateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	saved, err := h.cmds.SaveAddress(c.Request.Context(), req)
	if err != nil {
		abortSettingsError(c, err, commands.MsgSettingsFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.SavedResponse{Message: commands.MsgSettingsSaved, Data: resdto.FromAddress(*saved)})
}

// @Summary Get popup settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PopupResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/settings/popup [get]
func (h *SettingsHandler) GetPopup(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromPopupSettings(h.q.GetPopup(c.Request.Context())))
}

// @Summary Save popup settings
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdatePopupRequest true "Popup"
// @Success 200 {object} resdto.SavedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/settings/popup [put]
func (h *SettingsHandler) SavePopup(c *gin.Context) {
	var req reqdto.UpdatePopupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	saved, err := h.cmds.SavePopup(c.Request.Context(), req)
	if err != nil {
		abortSettingsError(c, err, commands.MsgSettingsFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.SavedResponse{Message: commands.MsgSettingsSaved, Data: resdto.FromPopupSettings(*saved)})
}

// @Summary Get payment settings
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PaymentResponse
// @Failure 401 {object} httperr.Response
// @Router /admin/settings/payment [get]
func (h *SettingsHandler) GetPayment(c *gin.Context) {
	c.JSON(http.StatusOK, resdto.FromPaymentSettings(h.q.GetPayment(c.Request.Context())))
}

// @Summary Save payment settings
// @Description PIX key type is one of CPF, CNPJ, Email, Telefone, Aleatória
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.UpdatePaymentRequest true "Payment"
// @Success 200 {object} resdto.SavedResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /admin/settings/payment [put]
func (h *SettingsHandler) SavePayment(c *gin.Context) {
	var req reqdto.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	saved, err := h.cmds.SavePayment(c.Request.Context(), req)
	if err != nil {
		abortSettingsError(c, err, commands.MsgSettingsFailed)
		return
	}
	c.JSON(http.StatusOK, resdto.SavedResponse{Message: commands.MsgSettingsSaved, Data: resdto.FromPaymentSettings(*saved)})
}

func abortSettingsError(c *gin.Context, err error, failedMsg string) {
	switch {
	case errs.Is(err, commands.ErrSettingsValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid settings", gin.H{"reason": err.Error()})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, failedMsg, nil)
	}
}
