package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
)

var issueColumns = []string{
	"id", "book_id", "issued_to_id", "processed_by_id", "issue_date", "expected_return_date",
	"actual_return_date", "fine_amount", "fine_settled", "status", "notes", "created_at", "updated_at",
}

var openStatuses = []string{string(model.IssueActive), string(model.IssueOverdue)}

func (r *repository) HasOpenIssue(ctx context.Context, bookID, userID string) (bool, error) {
	q := fmt.Sprintf(`select exists(select 1 from %s
	where book_id = @book_id and issued_to_id = @user_id and status in ('ACTIVE', 'OVERDUE'))`, issuesTableName)
	var exists bool
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"book_id": bookID, "user_id": userID}).Scan(&exists)
	if err != nil {
		return false, errors.Wrap(mapErr(err, errs.ErrIssueNotFound), "HasOpenIssue")
	}
	return exists, nil
}

func (r *repository) CreateIssue(ctx context.Context, issue model.Issue) (model.Issue, error) {
	q, args, err := qb.Insert(issuesTableName).
		Columns("id", "book_id", "issued_to_id", "processed_by_id", "issue_date", "expected_return_date",
			"fine_amount", "fine_settled", "status", "notes", "created_at", "updated_at").
		Values(issue.ID, issue.BookID, issue.IssuedToID, issue.ProcessedByID, issue.IssueDate, issue.ExpectedReturnDate,
			issue.FineAmount, issue.FineSettled, issue.Status, issue.Notes, issue.IssueDate, issue.IssueDate).
		Suffix("returning " + strings.Join(issueColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Issue{}, err
	}
	return r.queryIssue(ctx, q, args, errs.ErrBookNotFound)
}

func (r *repository) GetIssue(ctx context.Context, issueID string) (model.Issue, error) {
	q, args, err := qb.Select(issueColumns...).
		From(issuesTableName).
		Where(sq.Eq{"id": issueID}).
		ToSql()
	if err != nil {
		return model.Issue{}, err
	}
	return r.queryIssue(ctx, q, args, errs.ErrIssueNotFound)
}

// GetIssueForUpdate locks the row until the surrounding transaction ends.
func (r *repository) GetIssueForUpdate(ctx context.Context, issueID string) (model.Issue, error) {
	q, args, err := qb.Select(issueColumns...).
		From(issuesTableName).
		Where(sq.Eq{"id": issueID}).
		Suffix("for update").
		ToSql()
	if err != nil {
		return model.Issue{}, err
	}
	return r.queryIssue(ctx, q, args, errs.ErrIssueNotFound)
}

func (r *repository) UpdateIssue(ctx context.Context, issue model.Issue) (model.Issue, error) {
	q, args, err := qb.Update(issuesTableName).
		SetMap(map[string]any{
			"processed_by_id":    issue.ProcessedByID,
			"actual_return_date": issue.ActualReturnDate,
			"fine_amount":        issue.FineAmount,
			"fine_settled":       issue.FineSettled,
			"status":             issue.Status,
			"notes":              issue.Notes,
			"updated_at":         sq.Expr("now()"),
		}).
		Where(sq.Eq{"id": issue.ID}).
		Suffix("returning " + strings.Join(issueColumns, ", ")).
		ToSql()
	if err != nil {
		return model.Issue{}, err
	}
	return r.queryIssue(ctx, q, args, errs.ErrIssueNotFound)
}

func (r *repository) ListOpenIssueIDs(ctx context.Context) ([]string, error) {
	q, args, err := qb.Select("id").
		From(issuesTableName).
		Where(sq.Eq{"status": openStatuses}).
		OrderBy("expected_return_date").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryIDs(ctx, q, args...)
}

// MarkOverdue flips every late ACTIVE issue to OVERDUE and returns the ids it touched.
func (r *repository) MarkOverdue(ctx context.Context, now time.Time) ([]string, error) {
	q := fmt.Sprintf(`update %s set status = 'OVERDUE', updated_at = now()
	where status = 'ACTIVE' and actual_return_date is null and expected_return_date < @now
	returning id`, issuesTableName)
	return r.queryIDs(ctx, q, pgx.NamedArgs{"now": now})
}

func (r *repository) ListOverdueIssues(ctx context.Context, now time.Time) ([]model.OverdueBook, error) {
	q := fmt.Sprintf(`select i.id as issue_id, i.book_id, b.title, b.isbn, i.issued_to_id, i.issue_date,
	       i.expected_return_date, i.status, i.fine_amount
	from %s i
	join %s b on b.id = i.book_id
	where i.status in ('ACTIVE', 'OVERDUE')
	  and (i.status = 'OVERDUE' or i.expected_return_date < @now)
	order by i.expected_return_date, i.id`, issuesTableName, booksTableName)
	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"now": now})
	if err != nil {
		return nil, errors.Wrap(err, "ListOverdueIssues")
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.OverdueBook])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return items, nil
}

func (r *repository) ListUserIssues(ctx context.Context, userID string) ([]model.Issue, error) {
	q, args, err := qb.Select(issueColumns...).
		From(issuesTableName).
		Where(sq.Eq{"issued_to_id": userID}).
		OrderBy("issue_date desc", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryIssues(ctx, q, args...)
}

func (r *repository) ListIssuesWithFines(ctx context.Context, userID string) ([]model.Issue, error) {
	q, args, err := qb.Select(issueColumns...).
		From(issuesTableName).
		Where(sq.And{sq.Eq{"issued_to_id": userID}, sq.Gt{"fine_amount": 0}}).
		OrderBy("issue_date", "id").
		ToSql()
	if err != nil {
		return nil, err
	}
	return r.queryIssues(ctx, q, args...)
}

func (r *repository) queryIssue(ctx context.Context, q string, args []any, notFound error) (model.Issue, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return model.Issue{}, mapErr(err, notFound)
	}
	issue, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Issue])
	if err != nil {
		return model.Issue{}, mapErr(err, notFound)
	}
	return issue, nil
}

func (r *repository) queryIssues(ctx context.Context, q string, args ...any) ([]model.Issue, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, mapErr(err, errs.ErrIssueNotFound)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Issue])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return items, nil
}

func (r *repository) queryIDs(ctx context.Context, q string, args ...any) ([]string, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "query ids")
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("pgx.CollectRows: %w", err)
	}
	return ids, nil
}
