package api

import (
	"errors"
	"fmt"
	"net/http"

	reqdto "aaai-platform/internal/handler/dto/request"
	resdto "aaai-platform/internal/handler/dto/response"
	"aaai-platform/internal/handler/httperr"
	"aaai-platform/internal/pkg/config"
	"aaai-platform/internal/usecase/commands"
	"aaai-platform/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type PaymentHandler struct {
	cmds commands.CheckoutCommands
	q    queries.PaymentQueries
	cfg  config.Config
}

func NewPaymentHandler(cmds commands.CheckoutCommands, q queries.PaymentQueries, cfg config.Config) *PaymentHandler {
	return &PaymentHandler{cmds: cmds, q: q, cfg: cfg}
}

// @Summary Publishable key
// @Description Get the payment processor publishable key for the frontend
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.PublishableKeyResponse
// @Failure 500 {object} map[string]string
// @Router /stripe/publishable-key [get]
func (h *PaymentHandler) PublishableKey(c *gin.Context) {
	key := h.cfg.Stripe.PublishableKey
	if key == "" {
		httperr.AbortWithError(c, http.StatusInternalServerError, nil, "Failed to get Stripe configuration", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.PublishableKeyResponse{PublishableKey: key})
}

// @Summary List products
// @Description List active processor products with their active prices
// @Tags payments
// @Produce json
// @Success 200 {object} resdto.ProductListResponse
// @Failure 500 {object} map[string]string
// @Router /stripe/products [get]
func (h *PaymentHandler) ListProducts(c *gin.Context) {
	items, err := h.q.ProductsWithPrices(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list products", nil)
		return
	}
	c.JSON(http.StatusOK, resdto.FromProducts(items))
}

// @Summary Start checkout
// @Description Open a hosted checkout session for a course and return the redirect URL
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.CheckoutResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /checkout [post]
func (h *PaymentHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if req.CourseID == "" {
		httperr.AbortWithError(c, http.StatusBadRequest, nil, "Course ID is required", nil)
		return
	}

	result, err := h.cmds.StartCheckout(c.Request.Context(), commands.StartCheckoutInput{
		CourseID: req.CourseID,
		Email:    req.Email,
		Name:     req.Name,
		Phone:    req.Phone,
		BaseURL:  h.baseURL(c),
	})
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCourseNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Course not found", nil)
		case errors.Is(err, commands.ErrNoPriceAvailable):
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "No price found for this course", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to create checkout session", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.CheckoutResponse{URL: result.URL, SessionID: result.SessionID})
}

// baseURL is where the processor redirects the buyer after payment. Behind a
// proxy the forwarded proto wins over the raw connection scheme.
func (h *PaymentHandler) baseURL(c *gin.Context) string {
	if h.cfg.Server.PublicBaseURL != "" {
		return h.cfg.Server.PublicBaseURL
	}
	scheme := "http"
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	} else if c.Request.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, c.Request.Host)
}
