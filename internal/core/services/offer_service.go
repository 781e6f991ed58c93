package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/movaro/transfer_offers_app/internal/apperrors"
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	portsrepo "github.com/movaro/transfer_offers_app/internal/core/ports/repositories"
	portssvc "github.com/movaro/transfer_offers_app/internal/core/ports/services"
	"github.com/movaro/transfer_offers_app/internal/dto"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// probeAmount is the fixed amount converted when the caller supplies a source
// currency but no amount, purely to surface the rate and path for display.
var probeAmount = decimal.NewFromInt(100)

var hundred = decimal.NewFromInt(100)

// OfferService evaluates a corridor request into the ordered list of best
// offers, one per provider. Rules of one provider are evaluated concurrently
// and the winner is picked by (rank bucket, effective fee percentage);
// provider selections themselves run concurrently across providers.
type OfferService struct {
	ruleRepo       portsrepo.TransferRuleReader
	currencyReader portsrepo.CurrencyReader
	conversion     portssvc.ConversionSvcFacade
	logger         *slog.Logger
}

// NewOfferService creates a new OfferService.
func NewOfferService(
	ruleRepo portsrepo.TransferRuleReader,
	currencyReader portsrepo.CurrencyReader,
	conversion portssvc.ConversionSvcFacade,
	logger *slog.Logger,
) *OfferService {
	return &OfferService{
		ruleRepo:       ruleRepo,
		currencyReader: currencyReader,
		conversion:     conversion,
		logger:         logger,
	}
}

// EvaluateCorridor fetches the corridor's active rules, evaluates them against
// the optional source currency/amount and returns the ordered winners plus the
// resolved source currency (nil when none was requested).
func (s *OfferService) EvaluateCorridor(ctx context.Context, req dto.EvaluateCorridorRequest) ([]domain.Offer, *domain.Currency, error) {
	var amount *decimal.Decimal
	if req.Amount != nil {
		if req.FromCurrencyID == "" {
			return nil, nil, fmt.Errorf("%w: amount requires a source currency", apperrors.ErrValidation)
		}
		a := decimal.NewFromFloat(*req.Amount)
		if !a.IsPositive() {
			return nil, nil, fmt.Errorf("%w: amount must be greater than zero", apperrors.ErrValidation)
		}
		amount = &a
	}

	rules, err := s.ruleRepo.FindActiveRules(ctx, req.SendCountryID, req.ReceiveCountryID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch transfer rules: %w", err)
	}
	if len(rules) == 0 {
		return nil, nil, fmt.Errorf("%w: corridor %s -> %s", apperrors.ErrNoRulesFound, req.SendCountryID, req.ReceiveCountryID)
	}

	// Resolve the source currency once for all rules.
	var fromCurrency *domain.Currency
	if req.FromCurrencyID != "" {
		fromCurrency, err = s.currencyReader.FindCurrencyByID(ctx, req.FromCurrencyID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, nil, fmt.Errorf("%w: from currency %s", apperrors.ErrNotFound, req.FromCurrencyID)
			}
			return nil, nil, fmt.Errorf("failed to resolve from currency: %w", err)
		}
		if !fromCurrency.IsActive {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrCurrencyInactive, fromCurrency.Abbreviation)
		}
	}

	groups := groupRulesByProvider(rules)
	providerIDs := make([]string, 0, len(groups))
	for providerID := range groups {
		providerIDs = append(providerIDs, providerID)
	}
	sort.Strings(providerIDs)

	// One selection task per provider; a nil slot means every rule of that
	// provider was rejected.
	winners := make([]*domain.Offer, len(providerIDs))
	g, gctx := errgroup.WithContext(ctx)
	for i, providerID := range providerIDs {
		i, providerID := i, providerID
		g.Go(func() error {
			offer, err := s.selectBestOffer(gctx, groups[providerID], fromCurrency, amount)
			if err != nil {
				return err
			}
			winners[i] = offer
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, fmt.Errorf("corridor evaluation failed: %w", err)
	}

	offers := make([]domain.Offer, 0, len(winners))
	for _, w := range winners {
		if w == nil {
			continue
		}
		if w.ConvertedAmount != nil && w.ConvertedAmount.IsNegative() {
			s.logger.Warn("dropping offer with negative converted amount",
				slog.String("rule_id", w.RuleID),
			)
			continue
		}
		offers = append(offers, *w)
	}
	if len(offers) == 0 {
		return nil, nil, fmt.Errorf("%w: corridor %s -> %s", apperrors.ErrNoValidOffers, req.SendCountryID, req.ReceiveCountryID)
	}

	// Grouping order is a map artifact; the response contract is imposed here.
	sortOffers(offers, amount != nil)

	return offers, fromCurrency, nil
}

// groupRulesByProvider partitions rules by provider ID. No ordering is
// guaranteed on the result.
func groupRulesByProvider(rules []domain.TransferRule) map[string][]domain.TransferRule {
	groups := make(map[string][]domain.TransferRule)
	for _, rule := range rules {
		groups[rule.Provider.ProviderID] = append(groups[rule.Provider.ProviderID], rule)
	}
	return groups
}

// selectBestOffer evaluates all of one provider's rules concurrently and picks
// the winner by (rank bucket, effective fee percentage). Returns nil when
// every rule was rejected. Infrastructure errors propagate and cancel the
// sibling evaluations of the same group.
func (s *OfferService) selectBestOffer(
	ctx context.Context,
	rules []domain.TransferRule,
	fromCurrency *domain.Currency,
	amount *decimal.Decimal,
) (*domain.Offer, error) {
	// Fixed evaluation order keeps exact ties deterministic.
	sort.Slice(rules, func(i, j int) bool { return rules[i].RuleID < rules[j].RuleID })

	candidates := make([]*domain.Offer, len(rules))
	g, gctx := errgroup.WithContext(ctx)
	for i, rule := range rules {
		i, rule := i, rule
		g.Go(func() error {
			offer, err := s.evaluateRule(gctx, rule, fromCurrency, amount)
			if err != nil {
				if isRuleRejection(err) {
					s.logger.Info("rule excluded",
						slog.String("rule_id", rule.RuleID),
						slog.String("provider", rule.Provider.Name),
						slog.String("reason", err.Error()),
					)
					return nil
				}
				return fmt.Errorf("rule %s: %w", rule.RuleID, err)
			}
			candidates[i] = offer
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var best *domain.Offer
	for _, c := range candidates {
		if c == nil {
			continue
		}
		if best == nil || offerLess(c, best) {
			best = c
		}
	}
	return best, nil
}

// evaluateRule evaluates one rule against the optional source currency and
// amount, returning an offer or a rejection error.
func (s *OfferService) evaluateRule(
	ctx context.Context,
	rule domain.TransferRule,
	fromCurrency *domain.Currency,
	amount *decimal.Decimal,
) (*domain.Offer, error) {
	offer := newOfferFromRule(rule)

	// No currency requested: the offer carries the rule terms only.
	if fromCurrency == nil {
		return offer, nil
	}

	// Currency but no amount: convert a fixed probe purely to surface the
	// rate and path for display. The converted probe amount is discarded.
	if amount == nil {
		conv, err := s.conversion.Convert(ctx, probeAmount, fromCurrency, &rule.TransferCurrency, rule.Provider.ProviderID)
		if err != nil {
			return nil, err
		}
		offer.ExchangeRate = &conv.ExchangeRate
		offer.ConversionPath = conv.Path
		if !conv.Identity() {
			offer.RankBucket = domain.RankConverted
		}
		return offer, nil
	}

	conv, err := s.conversion.Convert(ctx, *amount, fromCurrency, &rule.TransferCurrency, rule.Provider.ProviderID)
	if err != nil {
		return nil, err
	}

	converted := conv.ConvertedAmount
	if converted.LessThan(rule.MinTransferAmount) ||
		(rule.MaxTransferAmount != nil && converted.GreaterThan(*rule.MaxTransferAmount)) {
		return nil, fmt.Errorf("%w: %s outside [%s, %s]",
			apperrors.ErrOutOfRange, converted, rule.MinTransferAmount, maxBoundString(rule.MaxTransferAmount))
	}

	var fee, effectivePct decimal.Decimal
	if rule.FixedFeeMode() {
		fee = rule.FeeFixed.Round(2)
		// Normalized for display only; the nominal percentage stays zero.
		effectivePct = fee.Div(converted).Mul(hundred)
	} else {
		fee = converted.Mul(rule.FeePercentage).Div(hundred).Round(2)
		effectivePct = rule.FeePercentage
	}
	received := converted.Sub(fee).Round(2)
	original := amount.Round(2)

	offer.OriginalAmount = &original
	offer.ConvertedAmount = &converted
	offer.TransferFee = &fee
	offer.AmountReceived = &received
	offer.EffectiveFeePercentage = &effectivePct
	offer.ExchangeRate = &conv.ExchangeRate
	offer.ConversionPath = conv.Path
	if !conv.Identity() {
		offer.RankBucket = domain.RankConverted
	}
	return offer, nil
}

// newOfferFromRule snapshots the rule terms into a rank-1 offer with the
// default single-element conversion path.
func newOfferFromRule(rule domain.TransferRule) *domain.Offer {
	return &domain.Offer{
		RuleID:            rule.RuleID,
		Provider:          rule.Provider,
		TransferCurrency:  rule.TransferCurrency,
		TransferMethod:    rule.TransferMethod,
		MinTransferTime:   rule.MinTransferTime,
		MaxTransferTime:   rule.MaxTransferTime,
		RequiredDocuments: rule.RequiredDocuments,
		MinTransferAmount: rule.MinTransferAmount,
		MaxTransferAmount: rule.MaxTransferAmount,
		FeePercentage:     rule.FeePercentage,
		ConversionPath:    []string{rule.TransferCurrency.Abbreviation},
		RankBucket:        domain.RankNoConversion,
	}
}

// isRuleRejection reports whether err excludes a single rule rather than
// failing the whole corridor evaluation.
func isRuleRejection(err error) bool {
	return errors.Is(err, apperrors.ErrConversionUnavailable) ||
		errors.Is(err, apperrors.ErrOutOfRange) ||
		errors.Is(err, apperrors.ErrPivotCurrencyMissing) ||
		errors.Is(err, apperrors.ErrValidation)
}

// offerLess orders offers by (rank bucket, effective fee percentage). A lower
// rank bucket wins outright.
func offerLess(a, b *domain.Offer) bool {
	if a.RankBucket != b.RankBucket {
		return a.RankBucket < b.RankBucket
	}
	return offerFeePct(a).LessThan(offerFeePct(b))
}

// offerFeePct is the fee percentage used for ranking: the effective
// percentage when a conversion was computed, the nominal one otherwise.
func offerFeePct(o *domain.Offer) decimal.Decimal {
	if o.EffectiveFeePercentage != nil {
		return *o.EffectiveFeePercentage
	}
	return o.FeePercentage
}

// sortOffers imposes the final response ordering: ascending realized fee
// ratio when an amount was supplied, ascending nominal fee percentage
// otherwise. The sort is stable, so exact ties keep provider-ID order.
func sortOffers(offers []domain.Offer, amountSupplied bool) {
	key := func(o *domain.Offer) decimal.Decimal {
		if amountSupplied && o.ConvertedAmount != nil && o.ConvertedAmount.IsPositive() {
			return o.ConvertedAmount.Sub(*o.AmountReceived).Div(*o.ConvertedAmount)
		}
		return o.FeePercentage
	}
	sort.SliceStable(offers, func(i, j int) bool {
		return key(&offers[i]).LessThan(key(&offers[j]))
	})
}

func maxBoundString(max *decimal.Decimal) string {
	if max == nil {
		return "inf"
	}
	return max.String()
}
