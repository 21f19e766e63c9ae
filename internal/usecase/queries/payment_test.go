//go:build unit

package queries_test

import (
	"context"
	"testing"

	"aaai-platform/internal/usecase"
	"aaai-platform/internal/usecase/queries"
	usecasemock "aaai-platform/tests/mock/usecase"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PaymentQueriesTestSuite struct {
	suite.Suite
	ctx         context.Context
	mockCtrl    *gomock.Controller
	mockGateway *usecasemock.MockPaymentGateway
	q           queries.PaymentQueries
}

func (s *PaymentQueriesTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.mockCtrl = gomock.NewController(s.T())
	s.mockGateway = usecasemock.NewMockPaymentGateway(s.mockCtrl)
	s.q = queries.NewPaymentQueries(s.mockGateway)
}

func (s *PaymentQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestPaymentQueriesSuite(t *testing.T) {
	suite.Run(t, new(PaymentQueriesTestSuite))
}

func (s *PaymentQueriesTestSuite) TestProductsWithPricesGroupsByProduct() {
	s.mockGateway.EXPECT().ListProducts(gomock.Any()).Return([]usecase.Product{
		{ID: "prod_a", Name: "Course A"},
		{ID: "prod_b", Name: "Course B"},
	}, nil)
	s.mockGateway.EXPECT().ListPrices(gomock.Any(), "").Return([]usecase.Price{
		{ID: "price_1", ProductID: "prod_a", UnitAmount: 2500000},
		{ID: "price_2", ProductID: "prod_a", UnitAmount: 1000000},
		{ID: "price_3", ProductID: "prod_b", UnitAmount: 4200000},
	}, nil)

	items, err := s.q.ProductsWithPrices(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(items, 2)
	s.Equal("prod_a", items[0].Product.ID)
	s.Len(items[0].Prices, 2)
	s.Equal("prod_b", items[1].Product.ID)
	s.Len(items[1].Prices, 1)
}

func (s *PaymentQueriesTestSuite) TestProductsWithPricesNoProducts() {
	s.mockGateway.EXPECT().ListProducts(gomock.Any()).Return(nil, nil)
	s.mockGateway.EXPECT().ListPrices(gomock.Any(), "").Return(nil, nil)

	items, err := s.q.ProductsWithPrices(s.ctx)
	s.Require().NoError(err)
	s.Empty(items)
}
