package services_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/movaro/transfer_offers_app/internal/apperrors"
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/movaro/transfer_offers_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByAbbreviation(ctx context.Context, abbreviation string) (*domain.Currency, error) {
	args := m.Called(ctx, abbreviation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) FindRate(ctx context.Context, providerID, fromCurrencyID, toCurrencyID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, providerID, fromCurrencyID, toCurrencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListRatesByProvider(ctx context.Context, providerID string) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Test Suite ---
type ConversionServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	mockRateRepo     *MockExchangeRateRepository
	service          *services.ConversionService

	providerID string
	eur        domain.Currency
	gbp        domain.Currency
	inr        domain.Currency
	usd        domain.Currency
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.service = services.NewConversionService(suite.mockCurrencyRepo, suite.mockRateRepo, "USD", testLogger())

	suite.providerID = "provider-1"
	suite.eur = domain.Currency{CurrencyID: "cur-eur", Abbreviation: "EUR", IsActive: true}
	suite.gbp = domain.Currency{CurrencyID: "cur-gbp", Abbreviation: "GBP", IsActive: true}
	suite.inr = domain.Currency{CurrencyID: "cur-inr", Abbreviation: "INR", IsActive: true}
	suite.usd = domain.Currency{CurrencyID: "cur-usd", Abbreviation: "USD", IsActive: true}
}

// --- Test Cases ---

func (suite *ConversionServiceTestSuite) TestConvert_SameCurrency() {
	ctx := context.Background()
	amount := decimal.NewFromFloat(100.567)

	conv, err := suite.service.Convert(ctx, amount, &suite.eur, &suite.eur, suite.providerID)

	suite.Require().NoError(err)
	suite.Require().NotNil(conv)
	suite.True(conv.ConvertedAmount.Equal(decimal.NewFromFloat(100.57)))
	suite.True(conv.ExchangeRate.Equal(decimal.NewFromInt(1)))
	suite.Equal([]string{"EUR"}, conv.Path)
	suite.True(conv.Identity())

	// No lookups happen for an identity conversion.
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRate")
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "FindCurrencyByAbbreviation")
}

func (suite *ConversionServiceTestSuite) TestConvert_DirectRate() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)
	directRate := &domain.ExchangeRate{
		ProviderID:     suite.providerID,
		FromCurrencyID: suite.eur.CurrencyID,
		ToCurrencyID:   suite.inr.CurrencyID,
		Rate:           decimal.NewFromFloat(90.5),
		IsActive:       true,
	}

	suite.mockRateRepo.On("FindRate", ctx, suite.providerID, suite.eur.CurrencyID, suite.inr.CurrencyID).
		Return(directRate, nil).Once()

	conv, err := suite.service.Convert(ctx, amount, &suite.eur, &suite.inr, suite.providerID)

	suite.Require().NoError(err)
	suite.True(conv.ConvertedAmount.Equal(decimal.NewFromFloat(9050.00)))
	suite.True(conv.ExchangeRate.Equal(decimal.NewFromFloat(90.5)))
	suite.Equal([]string{"EUR", "INR"}, conv.Path)
	suite.False(conv.Identity())

	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "FindCurrencyByAbbreviation")
}

func (suite *ConversionServiceTestSuite) TestConvert_PivotComposition() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)

	suite.mockRateRepo.On("FindRate", ctx, suite.providerID, suite.gbp.CurrencyID, suite.inr.CurrencyID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByAbbreviation", ctx, "USD").
		Return(&suite.usd, nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, suite.providerID, suite.gbp.CurrencyID, suite.usd.CurrencyID).
		Return(&domain.ExchangeRate{Rate: decimal.NewFromFloat(1.25)}, nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, suite.providerID, suite.usd.CurrencyID, suite.inr.CurrencyID).
		Return(&domain.ExchangeRate{Rate: decimal.NewFromInt(83)}, nil).Once()

	conv, err := suite.service.Convert(ctx, amount, &suite.gbp, &suite.inr, suite.providerID)

	suite.Require().NoError(err)
	// 100 * 1.25 = 125 USD, 125 * 83 = 10375 INR
	suite.True(conv.ConvertedAmount.Equal(decimal.NewFromInt(10375)))
	suite.True(conv.ExchangeRate.Equal(decimal.NewFromFloat(103.75)))
	suite.Equal([]string{"GBP", "USD", "INR"}, conv.Path)

	suite.mockRateRepo.AssertExpectations(suite.T())
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvert_NoPathAvailable() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)

	suite.mockRateRepo.On("FindRate", ctx, suite.providerID, suite.gbp.CurrencyID, suite.inr.CurrencyID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByAbbreviation", ctx, "USD").
		Return(&suite.usd, nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, suite.providerID, suite.gbp.CurrencyID, suite.usd.CurrencyID).
		Return(&domain.ExchangeRate{Rate: decimal.NewFromFloat(1.25)}, nil).Once()
	suite.mockRateRepo.On("FindRate", ctx, suite.providerID, suite.usd.CurrencyID, suite.inr.CurrencyID).
		Return(nil, apperrors.ErrNotFound).Once()

	conv, err := suite.service.Convert(ctx, amount, &suite.gbp, &suite.inr, suite.providerID)

	suite.Require().Error(err)
	suite.Nil(conv)
	suite.ErrorIs(err, apperrors.ErrConversionUnavailable)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvert_PivotCurrencyMissing() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)

	suite.mockRateRepo.On("FindRate", ctx, suite.providerID, suite.gbp.CurrencyID, suite.inr.CurrencyID).
		Return(nil, apperrors.ErrNotFound).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByAbbreviation", ctx, "USD").
		Return(nil, apperrors.ErrNotFound).Once()

	conv, err := suite.service.Convert(ctx, amount, &suite.gbp, &suite.inr, suite.providerID)

	suite.Require().Error(err)
	suite.Nil(conv)
	suite.ErrorIs(err, apperrors.ErrPivotCurrencyMissing)
}

func (suite *ConversionServiceTestSuite) TestConvert_NonPositiveAmount() {
	ctx := context.Background()

	conv, err := suite.service.Convert(ctx, decimal.Zero, &suite.eur, &suite.inr, suite.providerID)

	suite.Require().Error(err)
	suite.Nil(conv)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindRate")
}

func (suite *ConversionServiceTestSuite) TestConvert_InfrastructureErrorPropagates() {
	ctx := context.Background()
	amount := decimal.NewFromInt(100)
	dbErr := errors.New("connection reset")

	suite.mockRateRepo.On("FindRate", ctx, suite.providerID, suite.eur.CurrencyID, suite.inr.CurrencyID).
		Return(nil, dbErr).Once()

	conv, err := suite.service.Convert(ctx, amount, &suite.eur, &suite.inr, suite.providerID)

	suite.Require().Error(err)
	suite.Nil(conv)
	suite.ErrorIs(err, dbErr)
	suite.NotErrorIs(err, apperrors.ErrConversionUnavailable)
	// No pivot fallback on infrastructure errors.
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "FindCurrencyByAbbreviation")
}

// --- Run Suite ---
func TestConversionService(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
