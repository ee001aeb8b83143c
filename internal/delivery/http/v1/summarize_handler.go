package v1

import (
	"net/http"

	"testimonial-wall-backend/internal/delivery/http/response"
	"testimonial-wall-backend/internal/domain"
	"testimonial-wall-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type SummarizeHandler struct {
	summarizeUC domain.SummarizeUsecase
}

// NewSummarizeHandler registers the summarize routes. The public route serves
// the wall's open summarize box; the protected route is the variant used from
// the authenticated submission flow.
func NewSummarizeHandler(public, protected *gin.RouterGroup, summarizeUC domain.SummarizeUsecase) {
	handler := &SummarizeHandler{
		summarizeUC: summarizeUC,
	}

	public.POST("/summarize", handler.Summarize)
	protected.POST("/testimonials/summarize", handler.Summarize)
}

// Summarize godoc
// @Summary      Summarize a testimonial
// @Description  Condense testimonial text into a single wall-ready sentence.
// @Tags         summarize
// @Accept       json
// @Produce      json
// @Param        summarize  body      domain.SummarizeRequest  true  "Text to summarize"
// @Success      200        {object}  response.Response
// @Failure      400        {object}  response.Response
// @Failure      500        {object}  response.Response
// @Failure      503        {object}  response.Response
// @Router       /summarize [post]
func (h *SummarizeHandler) Summarize(c *gin.Context) {
	var req domain.SummarizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("A valid \"text\" field is required."))
		return
	}

	summary, err := h.summarizeUC.Summarize(c.Request.Context(), req.Text)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Summary generated.", summary)
}
