package api

import (
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	reqdto "rodizio-reservas/internal/handler/dto/request"
	resdto "rodizio-reservas/internal/handler/dto/response"
	"rodizio-reservas/internal/handler/httperr"
	"rodizio-reservas/internal/pkg/config"
	"rodizio-reservas/internal/pkg/errs"
	"rodizio-reservas/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type DraftHandler struct {
	cmds          commands.DraftCommands
	maxUploadSize int64
}

func NewDraftHandler(cmds commands.DraftCommands, cfg config.Config) *DraftHandler {
	return &DraftHandler{cmds: cmds, maxUploadSize: cfg.Server.MaxUploadSize}
}

// @Summary Start reservation draft
// @Description Open a reservation form session loaded with the current settings
// @Tags drafts
// @Produce json
// @Success 201 {object} resdto.DraftResponse
// @Router /drafts [post]
func (h *DraftHandler) Start(c *gin.Context) {
	state, err := h.cmds.Start(c.Request.Context())
	if err != nil {
		abortDraftError(c, err, nil)
		return
	}
	c.Header("Location", "/api/drafts/"+state.ID.String())
	c.JSON(http.StatusCreated, resdto.FromDraftState(state))
}

// @Summary Get reservation draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	state, err := h.cmds.Get(c.Request.Context(), id)
	respondDraft(c, state, err)
}

// @Summary Set party size
// @Description Resize the participant list, keeping the entries that remain
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.PartySizeRequest true "Party size"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /drafts/{id}/party-size [put]
func (h *DraftHandler) SetPartySize(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req reqdto.PartySizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	state, err := h.cmds.SetPartySize(c.Request.Context(), id, req.Count)
	respondDraft(c, state, err)
}

// @Summary Set participant name
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param index path int true "Participant index"
// @Param request body reqdto.ParticipantNameRequest true "Name"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /drafts/{id}/participants/{index}/name [put]
func (h *DraftHandler) SetParticipantName(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	index, ok := participantIndex(c)
	if !ok {
		return
	}
	var req reqdto.ParticipantNameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	state, err := h.cmds.SetParticipantName(c.Request.Context(), id, index, req.Name)
	respondDraft(c, state, err)
}

// @Summary Toggle participant age bracket
// @Description Selects the bracket, clearing the other one; selecting the current bracket clears it
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param index path int true "Participant index"
// @Param request body reqdto.BracketRequest true "Bracket"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /drafts/{id}/participants/{index}/bracket [post]
func (h *DraftHandler) ToggleBracket(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	index, ok := participantIndex(c)
	if !ok {
		return
	}
	var req reqdto.BracketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	state, err := h.cmds.ToggleBracket(c.Request.Context(), id, index, req.Bracket)
	respondDraft(c, state, err)
}

// @Summary Set contact phone
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.PhoneRequest true "Phone"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /drafts/{id}/phone [put]
func (h *DraftHandler) SetPhone(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req reqdto.PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	state, err := h.cmds.SetPhone(c.Request.Context(), id, req.Phone)
	respondDraft(c, state, err)
}

// @Summary Apply coupon
// @Description Looks the code up exactly; an unknown code keeps the current discount
// @Tags drafts
// @Accept json
// @Produce json
// @Param id path string true "Draft ID"
// @Param request body reqdto.CouponRequest true "Coupon"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /drafts/{id}/coupon [post]
func (h *DraftHandler) ApplyCoupon(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	var req reqdto.CouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	state, err := h.cmds.ApplyCoupon(c.Request.Context(), id, req.Code)
	respondDraft(c, state, err)
}

// @Summary Upload payment receipt
// @Tags drafts
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Draft ID"
// @Param file formData file true "Receipt"
// @Success 200 {object} resdto.DraftResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 413 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /drafts/{id}/receipt [post]
func (h *DraftHandler) UploadReceipt(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	fh, err := c.FormFile("file")
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Receipt file required", nil)
		return
	}
	file, closeFn, ok := h.openReceipt(c, fh)
	if !ok {
		return
	}
	defer closeFn()

	state, err := h.cmds.UploadReceipt(c.Request.Context(), id, *file)
	respondDraft(c, state, err)
}

// @Summary Refresh prices
// @Description Re-read the price schedule into the draft
// @Tags drafts
// @Produce json
// @Param id path string true "Draft ID"
// @Success 200 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Router /drafts/{id}/prices/refresh [post]
func (h *DraftHandler) RefreshPrices(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}
	state, err := h.cmds.RefreshPrices(c.Request.Context(), id)
	respondDraft(c, state, err)
}

// @Summary Submit reservation
// @Description Stores the reservation. A receipt attached as multipart "file" is uploaded first; a failed upload stores nothing.
// @Tags drafts
// @Accept json,multipart/form-data
// @Produce json
// @Param id path string true "Draft ID"
// @Param file formData file false "Receipt"
// @Success 201 {object} resdto.DraftResponse
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Failure 502 {object} httperr.Response
// @Router /drafts/{id}/submit [post]
func (h *DraftHandler) Submit(c *gin.Context) {
	id, ok := draftID(c)
	if !ok {
		return
	}

	var file *commands.ReceiptFile
	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		fh, err := c.FormFile("file")
		switch {
		case err == nil:
			f, closeFn, ok := h.openReceipt(c, fh)
			if !ok {
				return
			}
			defer closeFn()
			file = f
		case !errs.Is(err, http.ErrMissingFile):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid receipt upload", nil)
			return
		}
	}

	state, err := h.cmds.Submit(c.Request.Context(), id, file)
	if err != nil {
		abortDraftError(c, err, state)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromDraftState(state))
}

func (h *DraftHandler) openReceipt(c *gin.Context, fh *multipart.FileHeader) (*commands.ReceiptFile, func(), bool) {
	if fh.Size > h.maxUploadSize {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, errs.New("receipt too large"), "Receipt file too large", gin.H{"maxBytes": h.maxUploadSize})
		return nil, nil, false
	}
	f, err := fh.Open()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid receipt upload", nil)
		return nil, nil, false
	}
	return &commands.ReceiptFile{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Size:        fh.Size,
		Body:        f,
	}, func() { _ = f.Close() }, true
}

func draftID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid draft id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func participantIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid participant index", nil)
		return 0, false
	}
	return index, true
}

func respondDraft(c *gin.Context, state *commands.DraftState, err error) {
	if err != nil {
		abortDraftError(c, err, state)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDraftState(state))
}

// abortDraftError attaches the draft, when there is one, so the form can
// render the notification that came with the failure.
func abortDraftError(c *gin.Context, err error, state *commands.DraftState) {
	var detail any
	if state != nil {
		detail = resdto.FromDraftState(state)
	}

	switch {
	case errs.Is(err, commands.ErrDraftNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Draft not found", nil)
	case errs.Is(err, commands.ErrDraftSubmitted):
		httperr.AbortWithError(c, http.StatusConflict, err, "Reservation already submitted", detail)
	case errs.Is(err, commands.ErrDraftValidation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid draft data", detail)
	case errs.Is(err, commands.ErrCouponNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, commands.MsgCouponInvalid, detail)
	case errs.Is(err, commands.ErrCouponLookupFailed):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, commands.MsgCouponInvalid, detail)
	case errs.Is(err, commands.ErrReceiptUploadFailed):
		httperr.AbortWithError(c, http.StatusBadGateway, err, commands.MsgReceiptFailed, detail)
	case errs.Is(err, commands.ErrReservationNotStored):
		httperr.AbortWithError(c, http.StatusInternalServerError, err, commands.MsgReservationFailed, detail)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", detail)
	}
}
