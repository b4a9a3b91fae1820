package api

import (
	"net/http"

	reqdto "rodizio-reservas/internal/handler/dto/request"
	resdto "rodizio-reservas/internal/handler/dto/response"
	"rodizio-reservas/internal/handler/httperr"
	"rodizio-reservas/internal/pkg/errs"
	"rodizio-reservas/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PricingHandler struct {
	q queries.PricingQueries
}

func NewPricingHandler(q queries.PricingQueries) *PricingHandler {
	return &PricingHandler{q: q}
}

// @Summary Quote a party
// @Description Prices a party against the stored schedule without opening a draft
// @Tags pricing
// @Accept json
// @Produce json
// @Param request body reqdto.QuoteRequest true "Party"
// @Success 200 {object} resdto.QuoteResponse
// @Failure 400 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /pricing/quote [post]
func (h *PricingHandler) Quote(c *gin.Context) {
	var req reqdto.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	in, err := req.ToDomain()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	result, err := h.q.Quote(c.Request.Context(), in)
	if err != nil {
		if errs.Is(err, queries.ErrInvalidQuote) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid quote", gin.H{"reason": err.Error()})
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromQuoteResult(result))
}
