package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/movaro/transfer_offers_app/internal/apperrors"
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/movaro/transfer_offers_app/internal/core/services"
	"github.com/movaro/transfer_offers_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TransferRuleRepository ---
type MockTransferRuleRepository struct {
	mock.Mock
}

func (m *MockTransferRuleRepository) FindActiveRules(ctx context.Context, sendCountryID, receiveCountryID string) ([]domain.TransferRule, error) {
	args := m.Called(ctx, sendCountryID, receiveCountryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TransferRule), args.Error(1)
}

func (m *MockTransferRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.TransferRule, error) {
	args := m.Called(ctx, ruleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransferRule), args.Error(1)
}

func (m *MockTransferRuleRepository) SaveTransferRule(ctx context.Context, rule domain.TransferRule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

// --- Mock ConversionService ---
type MockConversionService struct {
	mock.Mock
}

func (m *MockConversionService) Convert(ctx context.Context, amount decimal.Decimal, from, to *domain.Currency, providerID string) (*domain.Conversion, error) {
	args := m.Called(ctx, amount, from, to, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Conversion), args.Error(1)
}

// --- Test Suite ---
type OfferServiceTestSuite struct {
	suite.Suite
	mockRuleRepo     *MockTransferRuleRepository
	mockCurrencyRepo *MockCurrencyRepository
	mockConversion   *MockConversionService
	service          *services.OfferService

	sendCountryID    string
	receiveCountryID string
	eur              domain.Currency
	usd              domain.Currency
}

func (suite *OfferServiceTestSuite) SetupTest() {
	suite.mockRuleRepo = new(MockTransferRuleRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockConversion = new(MockConversionService)
	suite.service = services.NewOfferService(suite.mockRuleRepo, suite.mockCurrencyRepo, suite.mockConversion, testLogger())

	suite.sendCountryID = "country-send"
	suite.receiveCountryID = "country-recv"
	suite.eur = domain.Currency{CurrencyID: "cur-eur", Abbreviation: "EUR", IsActive: true}
	suite.usd = domain.Currency{CurrencyID: "cur-usd", Abbreviation: "USD", IsActive: true}
}

func (suite *OfferServiceTestSuite) corridorRequest() dto.EvaluateCorridorRequest {
	return dto.EvaluateCorridorRequest{
		SendCountryID:    suite.sendCountryID,
		ReceiveCountryID: suite.receiveCountryID,
	}
}

// makeRule builds an active rule with a percentage fee and no amount bounds
// beyond the given minimum.
func (suite *OfferServiceTestSuite) makeRule(ruleID, providerID string, feePct float64, transferCurrency domain.Currency) domain.TransferRule {
	return domain.TransferRule{
		RuleID:            ruleID,
		Provider:          domain.Provider{ProviderID: providerID, Name: "Provider " + providerID, IsActive: true},
		TransferCurrency:  transferCurrency,
		FeePercentage:     decimal.NewFromFloat(feePct),
		MinTransferAmount: decimal.Zero,
		TransferMethod:    "Online",
		IsActive:          true,
	}
}

// --- Test Cases ---

func (suite *OfferServiceTestSuite) TestEvaluateCorridor_AmountRequiresCurrency() {
	ctx := context.Background()
	req := suite.corridorRequest()
	amount := 100.0
	req.Amount = &amount

	offers, fromCurrency, err := suite.service.EvaluateCorridor(ctx, req)

	suite.Require().Error(err)
	suite.Nil(offers)
	suite.Nil(fromCurrency)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRuleRepo.AssertNotCalled(suite.T(), "FindActiveRules")
}

func (suite *OfferServiceTestSuite) TestEvaluateCorridor_NoRules() {
	ctx := context.Background()
	req := suite.corridorRequest()

	suite.mockRuleRepo.On("FindActiveRules", ctx, suite.sendCountryID, suite.receiveCountryID).
		Return([]domain.TransferRule{}, nil).Once()

	offers, _, err := suite.service.EvaluateCorridor(ctx, req)

	suite.Require().Error(err)
	suite.Nil(offers)
	suite.ErrorIs(err, apperrors.ErrNoRulesFound)
}

func (suite *OfferServiceTestSuite) TestEvaluateCorridor_NoCurrencyReturnsRuleTerms() {
	ctx := context.Background()
	req := suite.corridorRequest()
	rules := []domain.TransferRule{
		suite.makeRule("rule-a", "prov-a", 5, suite.usd),
		suite.makeRule("rule-b", "prov-b", 2, suite.usd),
	}

	suite.mockRuleRepo.On("FindActiveRules", ctx, suite.sendCountryID, suite.receiveCountryID).
		Return(rules, nil).Once()

	offers, fromCurrency, err := suite.service.EvaluateCorridor(ctx, req)

	suite.Require().NoError(err)
	suite.Nil(fromCurrency)
	suite.Require().Len(offers, 2)

	// Cheapest nominal fee first; no conversion data is populated.
	suite.Equal("rule-b", offers[0].RuleID)
	suite.Equal("rule-a", offers[1].RuleID)
	suite.Nil(offers[0].ConvertedAmount)
	suite.Nil(offers[0].ExchangeRate)
	suite.Equal([]string{"USD"}, offers[0].ConversionPath)

	suite.mockConversion.AssertNotCalled(suite.T(), "Convert")
}

func (suite *OfferServiceTestSuite) TestEvaluateCorridor_PercentageFee() {
	ctx := context.Background()
	req := suite.corridorRequest()
	req.FromCurrencyID = suite.eur.CurrencyID
	amount := 1000.0
	req.Amount = &amount

	rule := suite.makeRule("rule-a", "prov-a", 2, suite.usd)

	suite.mockRuleRepo.On("FindActiveRules", ctx, suite.sendCountryID, suite.receiveCountryID).
		Return([]domain.TransferRule{rule}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, suite.eur.CurrencyID).
		Return(&suite.eur, nil).Once()
	suite.mockConversion.On("Convert", mock.Anything, decimal.NewFromFloat(1000.0), &suite.eur, &suite.usd, "prov-a").
		Return(&domain.Conversion{
			ConvertedAmount: decimal.NewFromFloat(850.00),
			ExchangeRate:    decimal.NewFromFloat(0.85),
			Path:            []string{"EUR", "USD"},
		}, nil).Once()

	offers, fromCurrency, err := suite.service.EvaluateCorridor(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(fromCurrency)
	suite.Equal("EUR", fromCurrency.Abbreviation)
	suite.Require().Len(offers, 1)

	offer := offers[0]
	suite.True(offer.ConvertedAmount.Equal(decimal.NewFromFloat(850.00)))
	suite.True(offer.TransferFee.Equal(decimal.NewFromFloat(17.00)))
	suite.True(offer.AmountReceived.Equal(decimal.NewFromFloat(833.00)))
	suite.True(offer.EffectiveFeePercentage.Equal(decimal.NewFromInt(2)))
	suite.Equal([]string{"EUR", "USD"}, offer.ConversionPath)

	suite.mockConversion.AssertExpectations(suite.T())
}

func (suite *OfferServiceTestSuite) TestEvaluateCorridor_FixedFeeNormalization() {
	ctx := context.Background()
	req := suite.corridorRequest()
	req.FromCurrencyID = suite.eur.CurrencyID
	amount := 50.0
	req.Amount = &amount

	fixed := decimal.NewFromInt(5)
	rule := suite.makeRule("rule-a", "prov-a", 0, suite.eur)
	rule.FeeFixed = &fixed

	suite.mockRuleRepo.On("FindActiveRules", ctx, suite.sendCountryID, suite.receiveCountryID).
		Return([]domain.TransferRule{rule}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, suite.eur.CurrencyID).
		Return(&suite.eur, nil).Once()
	suite.mockConversion.On("Convert", mock.Anything, decimal.NewFromFloat(50.0), &suite.eur, &suite.eur, "prov-a").
		Return(&domain.Conversion{
			ConvertedAmount: decimal.NewFromInt(50),
			ExchangeRate:    decimal.NewFromInt(1),
			Path:            []string{"EUR"},
		}, nil).Once()

	offers, _, err := suite.service.EvaluateCorridor(ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(offers, 1)

	offer := offers[0]
	suite.True(offer.TransferFee.Equal(decimal.NewFromInt(5)))
	suite.True(offer.AmountReceived.Equal(decimal.NewFromInt(45)))
	// Flat 5 on 50 normalizes to an effective 10 percent.
	suite.True(offer.EffectiveFeePercentage.Equal(decimal.NewFromInt(10)))
	// The nominal percentage stays zero.
	suite.True(offer.FeePercentage.IsZero())
}

func (suite *OfferServiceTestSuite) TestEvaluateCorridor_OutOfRangeExcluded() {
	ctx := context.Background()
	req := suite.corridorRequest()
	req.FromCurrencyID = suite.eur.CurrencyID
	amount := 10.0
	req.Amount = &amount

	strict := suite.makeRule("rule-strict", "prov-a", 1, suite.usd)
	strict.MinTransferAmount = decimal.NewFromInt(100)
	open := suite.makeRule("rule-open", "prov-b", 3, suite.usd)

	suite.mockRuleRepo.On("FindActiveRules", ctx, suite.sendCountryID, suite.receiveCountryID).
		Return([]domain.TransferRule{strict, open}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, suite.eur.CurrencyID).
		Return(&suite.eur, nil).Once()
	suite.mockConversion.On("Convert", mock.Anything, decimal.NewFromFloat(10.0), &suite.eur, &suite.usd, mock.Anything).
		Return(&domain.Conversion{
			ConvertedAmount: decimal.NewFromFloat(8.50),
			ExchangeRate:    decimal.NewFromFloat(0.85),
			Path:            []string{"EUR", "USD"},
		}, nil).Twice()

	offers, _, err := suite.service.EvaluateCorridor(ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(offers, 1)
	suite.Equal("rule-open", offers[0].RuleID)
}

func (suite *OfferServiceTestSuite) TestEvaluateCorridor_AllRejected() {
	ctx := context.Background()
	req := suite.corridorRequest()
	req.FromCurrencyID = suite.eur.CurrencyID
	amount := 100.0
	req.Amount = &amount

	rule := suite.makeRule("rule-a", "prov-a", 2, suite.usd)

	suite.mockRuleRepo.On("FindActiveRules", ctx, suite.sendCountryID, suite.receiveCountryID).
		Return([]domain.TransferRule{rule}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, suite.eur.CurrencyID).
		Return(&suite.eur, nil).Once()
	suite.mockConversion.On("Convert", mock.Anything, mock.Anything, &suite.eur, &suite.usd, "prov-a").
		Return(nil, apperrors.ErrConversionUnavailable).Once()

	offers, _, err := suite.service.EvaluateCorridor(ctx, req)

	suite.Require().Error(err)
	suite.Nil(offers)
	suite.ErrorIs(err, apperrors.ErrNoValidOffers)
}

func (suite *OfferServiceTestSuite) TestEvaluateCorridor_InfrastructureErrorFailsEvaluation() {
	ctx := context.Background()
	req := suite.corridorRequest()
	req.FromCurrencyID = suite.eur.CurrencyID
	amount := 100.0
	req.Amount = &amount

	rule := suite.makeRule("rule-a", "prov-a", 2, suite.usd)
	dbErr := errors.New("connection reset")

	suite.mockRuleRepo.On("FindActiveRules", ctx, suite.sendCountryID, suite.receiveCountryID).
		Return([]domain.TransferRule{rule}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, suite.eur.CurrencyID).
		Return(&suite.eur, nil).Once()
	suite.mockConversion.On("Convert", mock.Anything, mock.Anything, &suite.eur, &suite.usd, "prov-a").
		Return(nil, dbErr).Once()

	offers, _, err := suite.service.EvaluateCorridor(ctx, req)

	suite.Require().Error(err)
	suite.Nil(offers)
	suite.ErrorIs(err, dbErr)
	suite.NotErrorIs(err, apperrors.ErrNoValidOffers)
}

func (suite *OfferServiceTestSuite) TestEvaluateCorridor_InactiveFromCurrency() {
	ctx := context.Background()
	req := suite.corridorRequest()
	req.FromCurrencyID = "cur-old"

	inactive := domain.Currency{CurrencyID: "cur-old", Abbreviation: "OLD", IsActive: false}
	rule := suite.makeRule("rule-a", "prov-a", 2, suite.usd)

	suite.mockRuleRepo.On("FindActiveRules", ctx, suite.sendCountryID, suite.receiveCountryID).
		Return([]domain.TransferRule{rule}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, "cur-old").
		Return(&inactive, nil).Once()

	offers, _, err := suite.service.EvaluateCorridor(ctx, req)

	suite.Require().Error(err)
	suite.Nil(offers)
	suite.ErrorIs(err, apperrors.ErrCurrencyInactive)
	suite.mockConversion.AssertNotCalled(suite.T(), "Convert")
}

func (suite *OfferServiceTestSuite) TestEvaluateCorridor_IdentityOutranksConversion() {
	ctx := context.Background()
	req := suite.corridorRequest()
	req.FromCurrencyID = suite.eur.CurrencyID

	// Same provider: one rule settles in the requested currency, the other
	// needs a conversion but charges less. The identity rule must win.
	identity := suite.makeRule("rule-identity", "prov-a", 5, suite.eur)
	converted := suite.makeRule("rule-converted", "prov-a", 1, suite.usd)

	suite.mockRuleRepo.On("FindActiveRules", ctx, suite.sendCountryID, suite.receiveCountryID).
		Return([]domain.TransferRule{identity, converted}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, suite.eur.CurrencyID).
		Return(&suite.eur, nil).Once()

	// No amount: a fixed probe of 100 surfaces the rate and path.
	suite.mockConversion.On("Convert", mock.Anything, decimal.NewFromInt(100), &suite.eur, &suite.eur, "prov-a").
		Return(&domain.Conversion{
			ConvertedAmount: decimal.NewFromInt(100),
			ExchangeRate:    decimal.NewFromInt(1),
			Path:            []string{"EUR"},
		}, nil).Once()
	suite.mockConversion.On("Convert", mock.Anything, decimal.NewFromInt(100), &suite.eur, &suite.usd, "prov-a").
		Return(&domain.Conversion{
			ConvertedAmount: decimal.NewFromInt(85),
			ExchangeRate:    decimal.NewFromFloat(0.85),
			Path:            []string{"EUR", "USD"},
		}, nil).Once()

	offers, _, err := suite.service.EvaluateCorridor(ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(offers, 1)
	suite.Equal("rule-identity", offers[0].RuleID)
}

func (suite *OfferServiceTestSuite) TestEvaluateCorridor_SameProviderFeeTieBreak() {
	ctx := context.Background()
	req := suite.corridorRequest()
	req.FromCurrencyID = suite.eur.CurrencyID
	amount := 1000.0
	req.Amount = &amount

	// One provider, two rules in the same rank bucket (both converted): the
	// lower effective fee percentage takes the provider slot.
	pricey := suite.makeRule("rule-pricey", "prov-a", 5, suite.usd)
	cheap := suite.makeRule("rule-cheap", "prov-a", 2, suite.usd)

	suite.mockRuleRepo.On("FindActiveRules", ctx, suite.sendCountryID, suite.receiveCountryID).
		Return([]domain.TransferRule{pricey, cheap}, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByID", ctx, suite.eur.CurrencyID).
		Return(&suite.eur, nil).Once()
	suite.mockConversion.On("Convert", mock.Anything, decimal.NewFromFloat(1000.0), &suite.eur, &suite.usd, "prov-a").
		Return(&domain.Conversion{
			ConvertedAmount: decimal.NewFromFloat(850.00),
			ExchangeRate:    decimal.NewFromFloat(0.85),
			Path:            []string{"EUR", "USD"},
		}, nil).Twice()

	offers, _, err := suite.service.EvaluateCorridor(ctx, req)

	suite.Require().NoError(err)
	suite.Require().Len(offers, 1)
	suite.Equal("rule-cheap", offers[0].RuleID)
	suite.True(offers[0].EffectiveFeePercentage.Equal(decimal.NewFromInt(2)))
	suite.mockConversion.AssertExpectations(suite.T())
}

func (suite *OfferServiceTestSuite) TestEvaluateCorridor_StableOrderOnTies() {
	ctx := context.Background()
	req := suite.corridorRequest()

	// Equal fees across providers: ordering falls back to provider ID order.
	rules := []domain.TransferRule{
		suite.makeRule("rule-z", "prov-z", 2, suite.usd),
		suite.makeRule("rule-a", "prov-a", 2, suite.usd),
	}

	suite.mockRuleRepo.On("FindActiveRules", ctx, suite.sendCountryID, suite.receiveCountryID).
		Return(rules, nil).Twice()

	offers, _, err := suite.service.EvaluateCorridor(ctx, req)
	suite.Require().NoError(err)
	suite.Require().Len(offers, 2)
	suite.Equal("rule-a", offers[0].RuleID)
	suite.Equal("rule-z", offers[1].RuleID)

	// A second evaluation yields the identical ordering.
	again, _, err := suite.service.EvaluateCorridor(ctx, req)
	suite.Require().NoError(err)
	suite.Require().Len(again, 2)
	suite.Equal(offers[0].RuleID, again[0].RuleID)
	suite.Equal(offers[1].RuleID, again[1].RuleID)
}

// --- Run Suite ---
func TestOfferService(t *testing.T) {
	suite.Run(t, new(OfferServiceTestSuite))
}
