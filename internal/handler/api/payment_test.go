//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"aaai-platform/internal/handler/api"
	resdto "aaai-platform/internal/handler/dto/response"
	"aaai-platform/internal/pkg/config"
	"aaai-platform/internal/usecase"
	"aaai-platform/internal/usecase/commands"
	"aaai-platform/internal/usecase/queries"
	"aaai-platform/tests/common/builder"
	"aaai-platform/tests/common/httptest"
	commandsmock "aaai-platform/tests/mock/commands"
	queriesmock "aaai-platform/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
	mockQueries  *queriesmock.MockPaymentQueries
	cfg          config.Config
	handler      *api.PaymentHandler
}

func (s *PaymentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockPaymentQueries(s.mockCtrl)
	s.cfg = config.NewTestConfig()
	s.handler = api.NewPaymentHandler(s.mockCommands, s.mockQueries, s.cfg)

	s.router.GET("/stripe/publishable-key", s.handler.PublishableKey)
	s.router.GET("/stripe/products", s.handler.ListProducts)
	s.router.POST("/checkout", s.handler.Checkout)
}

func (s *PaymentHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentHandlerSuite(t *testing.T) {
	suite.Run(t, new(PaymentHandlerTestSuite))
}

func (s *PaymentHandlerTestSuite) TestPublishableKey() {
	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stripe/publishable-key", nil)

	var resp resdto.PublishableKeyResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Equal(s.cfg.Stripe.PublishableKey, resp.PublishableKey)
}

func (s *PaymentHandlerTestSuite) TestPublishableKeyMissing() {
	cfg := config.NewTestConfig()
	cfg.Stripe.PublishableKey = ""
	handler := api.NewPaymentHandler(s.mockCommands, s.mockQueries, cfg)
	router := gin.New()
	router.GET("/stripe/publishable-key", handler.PublishableKey)

	rec := httptest.PerformRequest(s.T(), router, http.MethodGet, "/stripe/publishable-key", nil)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to get Stripe configuration")
}

func (s *PaymentHandlerTestSuite) TestListProducts() {
	s.mockQueries.EXPECT().ProductsWithPrices(gomock.Any()).Return([]queries.ProductWithPrices{
		{
			Product: usecase.Product{ID: "prod_1", Name: "Foundation", Metadata: map[string]string{"courseId": "foundation"}},
			Prices:  []usecase.Price{{ID: "price_1", UnitAmount: 2500000, Currency: "inr"}},
		},
	}, nil)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/stripe/products", nil)

	var resp resdto.ProductListResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Require().Len(resp.Products, 1)
	s.Equal("prod_1", resp.Products[0].ID)
	s.Require().Len(resp.Products[0].Prices, 1)
	s.Equal(int64(2500000), resp.Products[0].Prices[0].UnitAmount)
}

func (s *PaymentHandlerTestSuite) TestCheckout() {
	reqBody := builder.NewCheckoutBuilder().BuildRequestDTO()

	s.mockCommands.EXPECT().StartCheckout(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, in commands.StartCheckoutInput) (*commands.StartCheckoutResult, error) {
			s.Equal("test-course", in.CourseID)
			s.Equal("buyer@example.com", in.Email)
			s.Equal(s.cfg.Server.PublicBaseURL, in.BaseURL)
			return &commands.StartCheckoutResult{URL: "https://pay.example.com/cs_1", SessionID: "cs_1"}, nil
		})

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", reqBody)

	var resp resdto.CheckoutResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &resp)
	s.Equal("https://pay.example.com/cs_1", resp.URL)
	s.Equal("cs_1", resp.SessionID)
}

func (s *PaymentHandlerTestSuite) TestCheckoutMissingCourseID() {
	reqBody := builder.NewCheckoutBuilder().WithCourseID("").BuildRequestDTO()

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", reqBody)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Course ID is required")
}

func (s *PaymentHandlerTestSuite) TestCheckoutCourseNotFound() {
	reqBody := builder.NewCheckoutBuilder().WithCourseID("missing").BuildRequestDTO()

	s.mockCommands.EXPECT().StartCheckout(gomock.Any(), gomock.Any()).
		Return(nil, commands.ErrCourseNotFound)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", reqBody)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Course not found")
}

func (s *PaymentHandlerTestSuite) TestCheckoutNoPrice() {
	reqBody := builder.NewCheckoutBuilder().BuildRequestDTO()

	s.mockCommands.EXPECT().StartCheckout(gomock.Any(), gomock.Any()).
		Return(nil, commands.ErrNoPriceAvailable)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", reqBody)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "No price found for this course")
}

func (s *PaymentHandlerTestSuite) TestCheckoutGatewayFailure() {
	reqBody := builder.NewCheckoutBuilder().BuildRequestDTO()

	s.mockCommands.EXPECT().StartCheckout(gomock.Any(), gomock.Any()).
		Return(nil, commands.ErrCheckoutFailed)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/checkout", reqBody)
	httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Failed to create checkout session")
}
