package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var fineConfigColumns = []string{
	"id", "fine_per_day", "max_fine_amount", "grace_period_days", "is_active", "created_by", "created_at",
}

var paymentColumns = []string{"id", "issue_id", "amount", "method", "received_by_id", "created_at"}

func (r *repository) GetActiveFineConfig(ctx context.Context) (model.FineConfiguration, error) {
	q, args, err := qb.Select(fineConfigColumns...).
		From(fineConfigTableName).
		Where(sq.Eq{"is_active": true}).
		ToSql()
	if err != nil {
		return model.FineConfiguration{}, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return model.FineConfiguration{}, mapErr(err, errs.ErrConfigNotFound)
	}
	cfg, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.FineConfiguration])
	if err != nil {
		return model.FineConfiguration{}, mapErr(err, errs.ErrConfigNotFound)
	}
	return cfg, nil
}

// CreateDefaultFineConfig inserts cfg as active unless another active row already exists.
func (r *repository) CreateDefaultFineConfig(ctx context.Context, cfg model.FineConfiguration) error {
	q := fmt.Sprintf(`insert into %s (id, fine_per_day, max_fine_amount, grace_period_days, is_active, created_by)
	values (@id, @fine_per_day, @max_fine_amount, @grace_period_days, true, null)
	on conflict (is_active) where is_active do nothing`, fineConfigTableName)
	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"id":                uuid.NewString(),
		"fine_per_day":      cfg.FinePerDay,
		"max_fine_amount":   cfg.MaxFineAmount,
		"grace_period_days": cfg.GracePeriodDays,
	})
	if err != nil {
		return errors.Wrap(mapErr(err, errs.ErrConfigNotFound), "CreateDefaultFineConfig")
	}
	return nil
}

// ReplaceFineConfig deactivates the current configuration and activates cfg atomically.
// Concurrent replacements are serialized by a transaction-scoped advisory lock.
func (r *repository) ReplaceFineConfig(ctx context.Context, cfg model.FineConfiguration) (model.FineConfiguration, error) {
	var created model.FineConfiguration
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `select pg_advisory_xact_lock(hashtext('fine_configurations'))`); err != nil {
			return errors.Wrap(err, "advisory lock")
		}
		deactivate := fmt.Sprintf(`update %s set is_active = false where is_active`, fineConfigTableName)
		if _, err := tx.Exec(ctx, deactivate); err != nil {
			return errors.Wrap(err, "deactivate fine configuration")
		}
		q, args, err := qb.Insert(fineConfigTableName).
			Columns("id", "fine_per_day", "max_fine_amount", "grace_period_days", "is_active", "created_by").
			Values(uuid.NewString(), cfg.FinePerDay, cfg.MaxFineAmount, cfg.GracePeriodDays, true, cfg.CreatedBy).
			Suffix("returning " + strings.Join(fineConfigColumns, ", ")).
			ToSql()
		if err != nil {
			return err
		}
		rows, err := tx.Query(ctx, q, args...)
		if err != nil {
			return mapErr(err, errs.ErrConfigNotFound)
		}
		created, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.FineConfiguration])
		return mapErr(err, errs.ErrConfigNotFound)
	})
	if err != nil {
		return model.FineConfiguration{}, err
	}
	return created, nil
}

func (r *repository) ListFineConfigs(ctx context.Context) ([]model.FineConfiguration, error) {
	q, args, err := qb.Select(fineConfigColumns...).
		From(fineConfigTableName).
		OrderBy("created_at desc", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "ListFineConfigs")
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.FineConfiguration])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return items, nil
}

func (r *repository) CreatePayment(ctx context.Context, payment model.FinePayment) (model.FinePayment, error) {
	q, args, err := qb.Insert(paymentsTableName).
		Columns("id", "issue_id", "amount", "method", "received_by_id", "created_at").
		Values(payment.ID, payment.IssueID, payment.Amount, payment.Method, payment.ReceivedByID, payment.CreatedAt).
		Suffix("returning " + strings.Join(paymentColumns, ", ")).
		ToSql()
	if err != nil {
		return model.FinePayment{}, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return model.FinePayment{}, mapErr(err, errs.ErrIssueNotFound)
	}
	created, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.FinePayment])
	if err != nil {
		return model.FinePayment{}, mapErr(err, errs.ErrIssueNotFound)
	}
	return created, nil
}

func (r *repository) ListPayments(ctx context.Context, issueID string) ([]model.FinePayment, error) {
	q, args, err := qb.Select(paymentColumns...).
		From(paymentsTableName).
		Where(sq.Eq{"issue_id": issueID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "ListPayments")
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.FinePayment])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return items, nil
}
