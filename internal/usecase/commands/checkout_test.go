//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"aaai-platform/internal/usecase"
	"aaai-platform/internal/usecase/commands"
	"aaai-platform/tests/common/builder"
	usecasemock "aaai-platform/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CheckoutTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockCtrl    *gomock.Controller
	mockRepo    *usecasemock.MockCatalogRepository
	mockGateway *usecasemock.MockPaymentGateway
	uc          commands.CheckoutCommands
}

func (s *CheckoutTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockRepo = usecasemock.NewMockCatalogRepository(s.mockCtrl)
	s.mockGateway = usecasemock.NewMockPaymentGateway(s.mockCtrl)
	s.uc = commands.NewCheckoutCommands(s.mockRepo, s.mockGateway)
}

func (s *CheckoutTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutSuite(t *testing.T) {
	suite.Run(t, new(CheckoutTestSuite))
}

func (s *CheckoutTestSuite) input() commands.StartCheckoutInput {
	return commands.StartCheckoutInput{
		CourseID: "test-course",
		Email:    "buyer@example.com",
		Name:     "Test Buyer",
		Phone:    "+911234567890",
		BaseURL:  "https://courses.example.com",
	}
}

func (s *CheckoutTestSuite) TestUnknownCourseReturnsNotFound() {
	s.mockRepo.EXPECT().GetCourse(gomock.Any(), "missing").Return(nil, nil)

	result, err := s.uc.StartCheckout(s.ctx, commands.StartCheckoutInput{CourseID: "missing"})
	s.Require().ErrorIs(err, commands.ErrCourseNotFound)
	s.Nil(result)
}

func (s *CheckoutTestSuite) TestRepositoryFailurePropagates() {
	s.mockRepo.EXPECT().GetCourse(gomock.Any(), "test-course").Return(nil, errors.New("connection refused"))

	_, err := s.uc.StartCheckout(s.ctx, s.input())
	s.Require().Error(err)
	s.NotErrorIs(err, commands.ErrCourseNotFound)
}

func (s *CheckoutTestSuite) TestReusesExistingProduct() {
	course := builder.NewCourseBuilder().BuildDomain()
	s.mockRepo.EXPECT().GetCourse(gomock.Any(), "test-course").Return(&course, nil)

	s.mockGateway.EXPECT().ListProducts(gomock.Any()).Return([]usecase.Product{
		{ID: "prod_other", Metadata: map[string]string{"courseId": "other"}},
		{ID: "prod_match", Metadata: map[string]string{"courseId": "test-course"}},
	}, nil)
	s.mockGateway.EXPECT().ListPrices(gomock.Any(), "prod_match").
		Return([]usecase.Price{{ID: "price_1", ProductID: "prod_match", UnitAmount: 2500000, Currency: "inr"}}, nil)

	var captured usecase.CheckoutSessionInput
	s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, in usecase.CheckoutSessionInput) (*usecase.CheckoutSession, error) {
			captured = in
			return &usecase.CheckoutSession{ID: "cs_123", URL: "https://pay.example.com/cs_123"}, nil
		})

	result, err := s.uc.StartCheckout(s.ctx, s.input())
	s.Require().NoError(err)
	s.Equal("https://pay.example.com/cs_123", result.URL)
	s.Equal("cs_123", result.SessionID)

	s.Equal("price_1", captured.PriceID)
	s.Equal("https://courses.example.com/payment/success?courseId=test-course", captured.SuccessURL)
	s.Equal("https://courses.example.com/payment/cancel?courseId=test-course", captured.CancelURL)
	s.Equal("buyer@example.com", captured.CustomerEmail)
	s.Equal("test-course", captured.Metadata["courseId"])
	s.Equal(course.Title, captured.Metadata["courseName"])
	s.Equal("Test Buyer", captured.Metadata["customerName"])
	s.Equal("+911234567890", captured.Metadata["customerPhone"])
}

func (s *CheckoutTestSuite) TestCreatesProductAndPriceWhenAbsent() {
	course := builder.NewCourseBuilder().WithPrice(42000).BuildDomain()
	s.mockRepo.EXPECT().GetCourse(gomock.Any(), "test-course").Return(&course, nil)

	s.mockGateway.EXPECT().ListProducts(gomock.Any()).Return(nil, nil)
	s.mockGateway.EXPECT().
		CreateProduct(gomock.Any(), course.Title, course.Description, map[string]string{"courseId": "test-course"}).
		Return(&usecase.Product{ID: "prod_new"}, nil)
	s.mockGateway.EXPECT().
		CreatePrice(gomock.Any(), "prod_new", int64(4200000), "inr").
		Return(&usecase.Price{ID: "price_new", ProductID: "prod_new"}, nil)
	s.mockGateway.EXPECT().ListPrices(gomock.Any(), "prod_new").
		Return([]usecase.Price{{ID: "price_new", ProductID: "prod_new"}}, nil)
	s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		Return(&usecase.CheckoutSession{ID: "cs_new", URL: "https://pay.example.com/cs_new"}, nil)

	result, err := s.uc.StartCheckout(s.ctx, s.input())
	s.Require().NoError(err)
	s.Equal("cs_new", result.SessionID)
}

func (s *CheckoutTestSuite) TestFallbackPriceWhenCourseHasNone() {
	course := builder.NewCourseBuilder().WithoutPrice().BuildDomain()
	s.mockRepo.EXPECT().GetCourse(gomock.Any(), "test-course").Return(&course, nil)

	s.mockGateway.EXPECT().ListProducts(gomock.Any()).Return(nil, nil)
	s.mockGateway.EXPECT().
		CreateProduct(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&usecase.Product{ID: "prod_new"}, nil)
	s.mockGateway.EXPECT().
		CreatePrice(gomock.Any(), "prod_new", int64(2500000), "inr").
		Return(&usecase.Price{ID: "price_new"}, nil)
	s.mockGateway.EXPECT().ListPrices(gomock.Any(), "prod_new").
		Return([]usecase.Price{{ID: "price_new"}}, nil)
	s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		Return(&usecase.CheckoutSession{ID: "cs_fb", URL: "u"}, nil)

	_, err := s.uc.StartCheckout(s.ctx, s.input())
	s.Require().NoError(err)
}

func (s *CheckoutTestSuite) TestNoPriceAvailable() {
	course := builder.NewCourseBuilder().BuildDomain()
	s.mockRepo.EXPECT().GetCourse(gomock.Any(), "test-course").Return(&course, nil)

	s.mockGateway.EXPECT().ListProducts(gomock.Any()).Return([]usecase.Product{
		{ID: "prod_match", Metadata: map[string]string{"courseId": "test-course"}},
	}, nil)
	s.mockGateway.EXPECT().ListPrices(gomock.Any(), "prod_match").Return(nil, nil)

	_, err := s.uc.StartCheckout(s.ctx, s.input())
	s.Require().ErrorIs(err, commands.ErrNoPriceAvailable)
}

func (s *CheckoutTestSuite) TestGatewayFailureMarkedAsCheckoutFailed() {
	course := builder.NewCourseBuilder().BuildDomain()
	s.mockRepo.EXPECT().GetCourse(gomock.Any(), "test-course").Return(&course, nil)
	s.mockGateway.EXPECT().ListProducts(gomock.Any()).Return(nil, errors.New("stripe is down"))

	_, err := s.uc.StartCheckout(s.ctx, s.input())
	s.Require().ErrorIs(err, commands.ErrCheckoutFailed)
}

func (s *CheckoutTestSuite) TestProductResolutionIsCachedAcrossCheckouts() {
	course := builder.NewCourseBuilder().BuildDomain()
	s.mockRepo.EXPECT().GetCourse(gomock.Any(), "test-course").Return(&course, nil).Times(2)

	// The product scan runs once; the second checkout hits the cache.
	s.mockGateway.EXPECT().ListProducts(gomock.Any()).Return([]usecase.Product{
		{ID: "prod_match", Metadata: map[string]string{"courseId": "test-course"}},
	}, nil).Times(1)
	s.mockGateway.EXPECT().ListPrices(gomock.Any(), "prod_match").
		Return([]usecase.Price{{ID: "price_1"}}, nil).Times(2)
	s.mockGateway.EXPECT().CreateCheckoutSession(gomock.Any(), gomock.Any()).
		Return(&usecase.CheckoutSession{ID: "cs", URL: "u"}, nil).Times(2)

	_, err := s.uc.StartCheckout(s.ctx, s.input())
	s.Require().NoError(err)
	_, err = s.uc.StartCheckout(s.ctx, s.input())
	s.Require().NoError(err)
}
