package repository

import (
	"context"
	"fmt"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// bookStatusExpr derives ISSUED from the copy count. Catalog states win.
const bookStatusExpr = `case when status <> 'AVAILABLE' then status
	when available_copies = 0 then 'ISSUED'
	else 'AVAILABLE' end as status`

func (r *repository) GetBook(ctx context.Context, bookID string) (model.Book, error) {
	q, args, err := qb.Select("id", "isbn", "title", "author", "total_copies", "available_copies", bookStatusExpr).
		From(booksTableName).
		Where(sq.Eq{"id": bookID}).
		ToSql()
	if err != nil {
		return model.Book{}, err
	}
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return model.Book{}, mapErr(err, errs.ErrBookNotFound)
	}
	book, err := pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Book])
	if err != nil {
		return model.Book{}, mapErr(err, errs.ErrBookNotFound)
	}
	return book, nil
}

func (r *repository) ReserveCopy(ctx context.Context, bookID string) error {
	q := fmt.Sprintf(`update %s set available_copies = available_copies - 1
	where id = @id and available_copies > 0 and status = 'AVAILABLE'`, booksTableName)
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": bookID})
	if err != nil {
		return mapErr(err, errs.ErrBookNotFound)
	}
	if tag.RowsAffected() == 0 {
		return errs.ErrNoCopiesAvailable
	}
	return nil
}

func (r *repository) ReleaseCopy(ctx context.Context, bookID string) error {
	q := fmt.Sprintf(`update %s set available_copies = available_copies + 1
	where id = @id and available_copies < total_copies`, booksTableName)
	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": bookID})
	if err != nil {
		return mapErr(err, errs.ErrBookNotFound)
	}
	if tag.RowsAffected() == 0 {
		r.log.Error("release copy: available copies already at total", zap.String("bookID", bookID))
		return fmt.Errorf("%w: book %s has no copy on loan to release", errs.ErrInternalConsistency, bookID)
	}
	return nil
}

func (r *repository) UserExists(ctx context.Context, userID string) (bool, error) {
	q := fmt.Sprintf(`select exists(select 1 from %s where id = $1)`, usersTableName)
	var exists bool
	if err := r.db.QueryRow(ctx, q, userID).Scan(&exists); err != nil {
		return false, errors.Wrap(mapErr(err, errs.ErrUserNotFound), "UserExists")
	}
	return exists, nil
}
