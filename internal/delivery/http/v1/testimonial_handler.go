package v1

import (
	"net/http"

	"testimonial-wall-backend/internal/delivery/http/response"
	"testimonial-wall-backend/internal/domain"
	"testimonial-wall-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type TestimonialHandler struct {
	testimonialUC domain.TestimonialUsecase
}

// NewTestimonialHandler registers the two submission routes. Public and
// authenticated submission stay separate handlers on purpose: they have
// different trust boundaries and must not be merged.
func NewTestimonialHandler(public, protected *gin.RouterGroup, testimonialUC domain.TestimonialUsecase) {
	handler := &TestimonialHandler{
		testimonialUC: testimonialUC,
	}

	public.POST("/testimonials/submit", handler.SubmitPublic)
	protected.POST("/testimonials", handler.SubmitAuthenticated)
}

// SubmitPublic godoc
// @Summary      Submit a testimonial (anonymous)
// @Description  Public submission path. Requires a UUID-shaped user_id in the body.
// @Tags         testimonials
// @Accept       json
// @Produce      json
// @Param        testimonial  body      domain.TestimonialRequest  true  "Testimonial Data"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /testimonials/submit [post]
func (h *TestimonialHandler) SubmitPublic(c *gin.Context) {
	var req domain.TestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("author_name, testimonial_text and a UUID-format user_id are required."))
		return
	}

	if err := h.testimonialUC.SubmitPublic(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Thank you! Your testimonial has been submitted for review.", nil)
}

// SubmitAuthenticated godoc
// @Summary      Submit a testimonial (authenticated)
// @Description  Bearer-token submission path. The author identity comes from the token.
// @Tags         testimonials
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        testimonial  body      domain.AuthTestimonialRequest  true  "Testimonial Data"
// @Success      200          {object}  response.Response
// @Failure      400          {object}  response.Response
// @Failure      401          {object}  response.Response
// @Failure      500          {object}  response.Response
// @Router       /testimonials [post]
func (h *TestimonialHandler) SubmitAuthenticated(c *gin.Context) {
	var req domain.AuthTestimonialRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("author_name and testimonial_text are required."))
		return
	}

	if err := h.testimonialUC.SubmitAuthenticated(c.Request.Context(), &req); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Thank you! Your testimonial has been submitted for review.", nil)
}
