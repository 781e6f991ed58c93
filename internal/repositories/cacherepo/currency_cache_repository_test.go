package cacherepo_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/movaro/transfer_offers_app/internal/core/domain"
	"github.com/movaro/transfer_offers_app/internal/repositories/cacherepo"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock inner CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
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

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

// --- Test Suite ---
type CachingCurrencyRepositoryTestSuite struct {
	suite.Suite
	mockInner *MockCurrencyRepository
	repo      *cacherepo.CachingCurrencyRepository

	usd domain.Currency
}

func (suite *CachingCurrencyRepositoryTestSuite) SetupTest() {
	suite.mockInner = new(MockCurrencyRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	suite.repo = cacherepo.NewCachingCurrencyRepository(suite.mockInner, time.Minute, time.Minute, 8, logger)

	suite.usd = domain.Currency{CurrencyID: "cur-usd", Abbreviation: "USD", Name: "US Dollar", IsActive: true}
}

// --- Test Cases ---

func (suite *CachingCurrencyRepositoryTestSuite) TestFindCurrencyByID_SecondLookupServedFromCache() {
	ctx := context.Background()
	suite.mockInner.On("FindCurrencyByID", ctx, suite.usd.CurrencyID).
		Return(&suite.usd, nil).Once()

	first, err := suite.repo.FindCurrencyByID(ctx, suite.usd.CurrencyID)
	suite.Require().NoError(err)
	suite.Equal("USD", first.Abbreviation)

	second, err := suite.repo.FindCurrencyByID(ctx, suite.usd.CurrencyID)
	suite.Require().NoError(err)
	suite.Equal("USD", second.Abbreviation)

	suite.mockInner.AssertNumberOfCalls(suite.T(), "FindCurrencyByID", 1)
}

func (suite *CachingCurrencyRepositoryTestSuite) TestFindCurrencyByAbbreviation_SecondLookupServedFromCache() {
	ctx := context.Background()
	suite.mockInner.On("FindCurrencyByAbbreviation", ctx, "USD").
		Return(&suite.usd, nil).Once()

	first, err := suite.repo.FindCurrencyByAbbreviation(ctx, "USD")
	suite.Require().NoError(err)
	suite.Equal(suite.usd.CurrencyID, first.CurrencyID)

	second, err := suite.repo.FindCurrencyByAbbreviation(ctx, "USD")
	suite.Require().NoError(err)
	suite.Equal(suite.usd.CurrencyID, second.CurrencyID)

	suite.mockInner.AssertNumberOfCalls(suite.T(), "FindCurrencyByAbbreviation", 1)
}

func (suite *CachingCurrencyRepositoryTestSuite) TestLookupErrorIsNotCached() {
	ctx := context.Background()
	dbErr := errors.New("connection reset")
	suite.mockInner.On("FindCurrencyByAbbreviation", ctx, "USD").
		Return(nil, dbErr).Once()
	suite.mockInner.On("FindCurrencyByAbbreviation", ctx, "USD").
		Return(&suite.usd, nil).Once()

	_, err := suite.repo.FindCurrencyByAbbreviation(ctx, "USD")
	suite.Require().ErrorIs(err, dbErr)

	// The failed lookup left nothing behind; the retry reaches the inner repo.
	found, err := suite.repo.FindCurrencyByAbbreviation(ctx, "USD")
	suite.Require().NoError(err)
	suite.Equal(suite.usd.CurrencyID, found.CurrencyID)

	suite.mockInner.AssertNumberOfCalls(suite.T(), "FindCurrencyByAbbreviation", 2)
}

func (suite *CachingCurrencyRepositoryTestSuite) TestSaveCurrencyInvalidatesBothCaches() {
	ctx := context.Background()
	suite.mockInner.On("FindCurrencyByID", ctx, suite.usd.CurrencyID).
		Return(&suite.usd, nil).Twice()
	suite.mockInner.On("FindCurrencyByAbbreviation", ctx, "USD").
		Return(&suite.usd, nil).Twice()
	suite.mockInner.On("SaveCurrency", ctx, suite.usd).
		Return(nil).Once()

	// Warm both caches.
	_, err := suite.repo.FindCurrencyByID(ctx, suite.usd.CurrencyID)
	suite.Require().NoError(err)
	_, err = suite.repo.FindCurrencyByAbbreviation(ctx, "USD")
	suite.Require().NoError(err)

	suite.Require().NoError(suite.repo.SaveCurrency(ctx, suite.usd))

	// Both lookups must go back to the inner repo after the write.
	_, err = suite.repo.FindCurrencyByID(ctx, suite.usd.CurrencyID)
	suite.Require().NoError(err)
	_, err = suite.repo.FindCurrencyByAbbreviation(ctx, "USD")
	suite.Require().NoError(err)

	suite.mockInner.AssertExpectations(suite.T())
}

func (suite *CachingCurrencyRepositoryTestSuite) TestSaveCurrencyErrorKeepsCaches() {
	ctx := context.Background()
	dbErr := errors.New("constraint violation")
	suite.mockInner.On("FindCurrencyByAbbreviation", ctx, "USD").
		Return(&suite.usd, nil).Once()
	suite.mockInner.On("SaveCurrency", ctx, suite.usd).
		Return(dbErr).Once()

	_, err := suite.repo.FindCurrencyByAbbreviation(ctx, "USD")
	suite.Require().NoError(err)

	suite.Require().ErrorIs(suite.repo.SaveCurrency(ctx, suite.usd), dbErr)

	// The failed write must not drop the cached entry.
	found, err := suite.repo.FindCurrencyByAbbreviation(ctx, "USD")
	suite.Require().NoError(err)
	suite.Equal(suite.usd.CurrencyID, found.CurrencyID)

	suite.mockInner.AssertNumberOfCalls(suite.T(), "FindCurrencyByAbbreviation", 1)
}

func (suite *CachingCurrencyRepositoryTestSuite) TestListCurrenciesAlwaysDelegates() {
	ctx := context.Background()
	suite.mockInner.On("ListCurrencies", ctx).
		Return([]domain.Currency{suite.usd}, nil).Twice()

	for i := 0; i < 2; i++ {
		currencies, err := suite.repo.ListCurrencies(ctx)
		suite.Require().NoError(err)
		suite.Require().Len(currencies, 1)
	}

	suite.mockInner.AssertNumberOfCalls(suite.T(), "ListCurrencies", 2)
}

// --- Run Suite ---
func TestCachingCurrencyRepository(t *testing.T) {
	suite.Run(t, new(CachingCurrencyRepositoryTestSuite))
}
