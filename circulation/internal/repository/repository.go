package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

//go:generate go run github.com/golang/mock/mockgen -source=repository.go -destination=mocks/mock.go

type Repository interface {
	// WithTx runs fn in one transaction. The Repository passed to fn is bound to it.
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	GetBook(ctx context.Context, bookID string) (model.Book, error)
	ReserveCopy(ctx context.Context, bookID string) error
	ReleaseCopy(ctx context.Context, bookID string) error
	UserExists(ctx context.Context, userID string) (bool, error)

	HasOpenIssue(ctx context.Context, bookID, userID string) (bool, error)
	CreateIssue(ctx context.Context, issue model.Issue) (model.Issue, error)
	GetIssue(ctx context.Context, issueID string) (model.Issue, error)
	GetIssueForUpdate(ctx context.Context, issueID string) (model.Issue, error)
	UpdateIssue(ctx context.Context, issue model.Issue) (model.Issue, error)
	ListOpenIssueIDs(ctx context.Context) ([]string, error)
	MarkOverdue(ctx context.Context, now time.Time) ([]string, error)
	ListOverdueIssues(ctx context.Context, now time.Time) ([]model.OverdueBook, error)
	ListUserIssues(ctx context.Context, userID string) ([]model.Issue, error)
	ListIssuesWithFines(ctx context.Context, userID string) ([]model.Issue, error)

	GetActiveFineConfig(ctx context.Context) (model.FineConfiguration, error)
	CreateDefaultFineConfig(ctx context.Context, cfg model.FineConfiguration) error
	ReplaceFineConfig(ctx context.Context, cfg model.FineConfiguration) (model.FineConfiguration, error)
	ListFineConfigs(ctx context.Context) ([]model.FineConfiguration, error)

	CreatePayment(ctx context.Context, payment model.FinePayment) (model.FinePayment, error)
	ListPayments(ctx context.Context, issueID string) ([]model.FinePayment, error)
}

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

type repository struct {
	db  querier
	log *zap.Logger
}

func NewRepository(db querier, log *zap.Logger) (*repository, error) {
	if db == nil {
		return nil, errors.New("nil db")
	}
	return &repository{
		db:  db,
		log: log.Named("repo"),
	}, nil
}

const (
	booksTableName      = "books"
	usersTableName      = "users"
	issuesTableName     = "issues"
	fineConfigTableName = "fine_configurations"
	paymentsTableName   = "fine_payments"

	openIssuePairIndex = "issues_open_pair_uidx"
)

var qb = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func (r *repository) WithTx(ctx context.Context, fn func(repo Repository) error) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return fn(&repository{db: tx, log: r.log})
	})
}

// mapErr translates driver errors into errs kinds. notFound is returned for pgx.ErrNoRows.
func mapErr(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return notFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			if pgErr.ConstraintName == openIssuePairIndex {
				return errs.ErrAlreadyIssued
			}
			return fmt.Errorf("%w: %s", errs.ErrConflict, pgErr.ConstraintName)
		case pgerrcode.CheckViolation:
			return fmt.Errorf("%w: constraint %s", errs.ErrInternalConsistency, pgErr.ConstraintName)
		case pgerrcode.ForeignKeyViolation:
			return notFound
		case pgerrcode.InvalidTextRepresentation:
			return errs.ErrInvalidID
		}
	}
	return err
}
