package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/movaro/transfer_offers_app/internal/apperrors"
	"github.com/movaro/transfer_offers_app/internal/core/domain"
	portsrepo "github.com/movaro/transfer_offers_app/internal/core/ports/repositories"
	"github.com/movaro/transfer_offers_app/internal/models"
	"github.com/movaro/transfer_offers_app/internal/utils/mapping"
)

type PgxTransferRuleRepository struct {
	BaseRepository
}

// newPgxTransferRuleRepository creates a new repository for transfer rule data.
func newPgxTransferRuleRepository(pool *pgxpool.Pool) portsrepo.TransferRuleRepositoryFacade {
	return &PgxTransferRuleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.TransferRuleRepositoryFacade = (*PgxTransferRuleRepository)(nil)

// ruleJoinSelect pulls a rule row together with the provider, both countries
// and the transfer currency it references. Time bounds are stored as whole
// seconds.
const ruleJoinSelect = `
	SELECT
		tr.rule_id, tr.fee_percentage, tr.fee_fixed, tr.min_transfer_amount, tr.max_transfer_amount,
		tr.transfer_method, tr.min_transfer_time_seconds, tr.max_transfer_time_seconds,
		tr.is_active, tr.created_at, tr.last_updated_at,
		p.provider_id, p.name, p.url, p.is_active, p.created_at, p.last_updated_at,
		sc.country_id, sc.name, sc.abbreviation, sc.local_currency_id, sc.is_active, sc.created_at, sc.last_updated_at,
		rc.country_id, rc.name, rc.abbreviation, rc.local_currency_id, rc.is_active, rc.created_at, rc.last_updated_at,
		c.currency_id, c.abbreviation, c.name, c.symbol, c.is_active, c.created_at, c.last_updated_at
	FROM transfer_rules tr
	JOIN providers p ON p.provider_id = tr.provider_id
	JOIN countries sc ON sc.country_id = tr.send_country_id
	JOIN countries rc ON rc.country_id = tr.receive_country_id
	JOIN currencies c ON c.currency_id = tr.transfer_currency_id
`

// ruleRow holds one joined rule row before documents are attached.
type ruleRow struct {
	rule     models.TransferRule
	provider models.Provider
	sendCtry models.Country
	recvCtry models.Country
	currency models.Currency
}

func scanRuleRow(row pgx.Row) (ruleRow, error) {
	var (
		rr         ruleRow
		minSeconds int64
		maxSeconds int64
	)
	err := row.Scan(
		&rr.rule.RuleID,
		&rr.rule.FeePercentage,
		&rr.rule.FeeFixed,
		&rr.rule.MinTransferAmount,
		&rr.rule.MaxTransferAmount,
		&rr.rule.TransferMethod,
		&minSeconds,
		&maxSeconds,
		&rr.rule.IsActive,
		&rr.rule.CreatedAt,
		&rr.rule.LastUpdatedAt,
		&rr.provider.ProviderID,
		&rr.provider.Name,
		&rr.provider.URL,
		&rr.provider.IsActive,
		&rr.provider.CreatedAt,
		&rr.provider.LastUpdatedAt,
		&rr.sendCtry.CountryID,
		&rr.sendCtry.Name,
		&rr.sendCtry.Abbreviation,
		&rr.sendCtry.LocalCurrencyID,
		&rr.sendCtry.IsActive,
		&rr.sendCtry.CreatedAt,
		&rr.sendCtry.LastUpdatedAt,
		&rr.recvCtry.CountryID,
		&rr.recvCtry.Name,
		&rr.recvCtry.Abbreviation,
		&rr.recvCtry.LocalCurrencyID,
		&rr.recvCtry.IsActive,
		&rr.recvCtry.CreatedAt,
		&rr.recvCtry.LastUpdatedAt,
		&rr.currency.CurrencyID,
		&rr.currency.Abbreviation,
		&rr.currency.Name,
		&rr.currency.Symbol,
		&rr.currency.IsActive,
		&rr.currency.CreatedAt,
		&rr.currency.LastUpdatedAt,
	)
	if err != nil {
		return ruleRow{}, err
	}
	rr.rule.MinTransferTime = time.Duration(minSeconds) * time.Second
	rr.rule.MaxTransferTime = time.Duration(maxSeconds) * time.Second
	rr.rule.ProviderID = rr.provider.ProviderID
	rr.rule.SendCountryID = rr.sendCtry.CountryID
	rr.rule.ReceiveCountryID = rr.recvCtry.CountryID
	rr.rule.TransferCurrencyID = rr.currency.CurrencyID
	return rr, nil
}

func (rr ruleRow) toDomain(documents []domain.Document) domain.TransferRule {
	return mapping.ToDomainTransferRule(
		rr.rule,
		mapping.ToDomainProvider(rr.provider),
		mapping.ToDomainCountry(rr.sendCtry),
		mapping.ToDomainCountry(rr.recvCtry),
		mapping.ToDomainCurrency(rr.currency),
		documents,
	)
}

// FindActiveRules retrieves the active rules for a corridor with their joined
// entities and required documents. Rules referencing an inactive provider,
// country or currency are filtered out.
func (r *PgxTransferRuleRepository) FindActiveRules(ctx context.Context, sendCountryID, receiveCountryID string) ([]domain.TransferRule, error) {
	query := ruleJoinSelect + `
	WHERE tr.send_country_id = $1 AND tr.receive_country_id = $2
		AND tr.is_active = TRUE
		AND p.is_active = TRUE
		AND sc.is_active = TRUE
		AND rc.is_active = TRUE
		AND c.is_active = TRUE
	ORDER BY tr.rule_id;
	`

	rows, err := r.Pool.Query(ctx, query, sendCountryID, receiveCountryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query rules for corridor %s->%s: %w", sendCountryID, receiveCountryID, err)
	}
	defer rows.Close()

	rrs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (ruleRow, error) {
		return scanRuleRow(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan rules for corridor %s->%s: %w", sendCountryID, receiveCountryID, err)
	}
	if len(rrs) == 0 {
		return []domain.TransferRule{}, nil
	}

	ruleIDs := make([]string, len(rrs))
	for i, rr := range rrs {
		ruleIDs[i] = rr.rule.RuleID
	}
	docsByRule, err := r.loadDocuments(ctx, ruleIDs)
	if err != nil {
		return nil, err
	}

	rules := make([]domain.TransferRule, len(rrs))
	for i, rr := range rrs {
		rules[i] = rr.toDomain(docsByRule[rr.rule.RuleID])
	}
	return rules, nil
}

// FindRuleByID retrieves a single rule with its joined entities and documents.
func (r *PgxTransferRuleRepository) FindRuleByID(ctx context.Context, ruleID string) (*domain.TransferRule, error) {
	query := ruleJoinSelect + ` WHERE tr.rule_id = $1;`

	rr, err := scanRuleRow(r.Pool.QueryRow(ctx, query, ruleID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rule by id %s: %w", ruleID, err)
	}

	docsByRule, err := r.loadDocuments(ctx, []string{ruleID})
	if err != nil {
		return nil, err
	}

	d := rr.toDomain(docsByRule[ruleID])
	return &d, nil
}

// SaveTransferRule persists a rule and replaces its document links in one
// transaction.
func (r *PgxTransferRuleRepository) SaveTransferRule(ctx context.Context, rule domain.TransferRule) error {
	m := mapping.ToModelTransferRule(rule)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	ruleQuery := `
		INSERT INTO transfer_rules (rule_id, provider_id, send_country_id, receive_country_id, transfer_currency_id,
			fee_percentage, fee_fixed, min_transfer_amount, max_transfer_amount, transfer_method,
			min_transfer_time_seconds, max_transfer_time_seconds, is_active, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (rule_id) DO UPDATE SET
			fee_percentage = EXCLUDED.fee_percentage,
			fee_fixed = EXCLUDED.fee_fixed,
			min_transfer_amount = EXCLUDED.min_transfer_amount,
			max_transfer_amount = EXCLUDED.max_transfer_amount,
			transfer_method = EXCLUDED.transfer_method,
			min_transfer_time_seconds = EXCLUDED.min_transfer_time_seconds,
			max_transfer_time_seconds = EXCLUDED.max_transfer_time_seconds,
			is_active = EXCLUDED.is_active,
			last_updated_at = EXCLUDED.last_updated_at;
	`

	_, err = tx.Exec(ctx, ruleQuery,
		m.RuleID,
		m.ProviderID,
		m.SendCountryID,
		m.ReceiveCountryID,
		m.TransferCurrencyID,
		m.FeePercentage,
		m.FeeFixed,
		m.MinTransferAmount,
		m.MaxTransferAmount,
		m.TransferMethod,
		int64(m.MinTransferTime/time.Second),
		int64(m.MaxTransferTime/time.Second),
		m.IsActive,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save transfer rule %s: %w", m.RuleID, err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM transfer_rule_documents WHERE rule_id = $1;`, m.RuleID)
	if err != nil {
		return fmt.Errorf("failed to clear document links for rule %s: %w", m.RuleID, err)
	}
	for _, doc := range rule.RequiredDocuments {
		_, err = tx.Exec(ctx,
			`INSERT INTO transfer_rule_documents (rule_id, document_id) VALUES ($1, $2);`,
			m.RuleID, doc.DocumentID,
		)
		if err != nil {
			return fmt.Errorf("failed to link document %s to rule %s: %w", doc.DocumentID, m.RuleID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transfer rule %s: %w", m.RuleID, err)
	}
	return nil
}

// loadDocuments fetches the active documents linked to the given rules,
// grouped by rule ID.
func (r *PgxTransferRuleRepository) loadDocuments(ctx context.Context, ruleIDs []string) (map[string][]domain.Document, error) {
	query := `
		SELECT trd.rule_id, d.document_id, d.name, d.is_active
		FROM transfer_rule_documents trd
		JOIN documents d ON d.document_id = trd.document_id
		WHERE trd.rule_id = ANY($1) AND d.is_active = TRUE
		ORDER BY d.name;
	`

	rows, err := r.Pool.Query(ctx, query, ruleIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query rule documents: %w", err)
	}
	defer rows.Close()

	docsByRule := make(map[string][]domain.Document)
	for rows.Next() {
		var (
			ruleID string
			doc    domain.Document
		)
		if err := rows.Scan(&ruleID, &doc.DocumentID, &doc.Name, &doc.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan rule document: %w", err)
		}
		docsByRule[ruleID] = append(docsByRule[ruleID], doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read rule documents: %w", err)
	}
	return docsByRule, nil
}
