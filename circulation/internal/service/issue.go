package service

import (
	"context"
	"errors"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/fine"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// IssueBook lends one copy of bookID to issuedToID. The duplicate check, the copy
// reservation and the issue insert share one transaction.
func (s *Service) IssueBook(ctx context.Context, bookID, issuedToID, processedByID string) (model.Issue, error) {
	ctx, span := s.startSpan(ctx, "IssueBook", attribute.String("book.id", bookID), attribute.String("user.id", issuedToID))
	if err := validateIDs(bookID, issuedToID, processedByID); err != nil {
		return model.Issue{}, finish(span, err)
	}

	now := s.clock()
	var created model.Issue
	err := s.repo.WithTx(ctx, func(repo repository.Repository) error {
		book, err := repo.GetBook(ctx, bookID)
		if err != nil {
			return err
		}
		exists, err := repo.UserExists(ctx, issuedToID)
		if err != nil {
			return err
		}
		if !exists {
			return errs.ErrUserNotFound
		}
		if !book.Status.Circulates() {
			return errs.ErrBookUnavailable
		}
		open, err := repo.HasOpenIssue(ctx, bookID, issuedToID)
		if err != nil {
			return err
		}
		if open {
			return errs.ErrAlreadyIssued
		}
		if err = repo.ReserveCopy(ctx, bookID); err != nil {
			return err
		}
		created, err = repo.CreateIssue(ctx, model.Issue{
			ID:                 uuid.NewString(),
			BookID:             bookID,
			IssuedToID:         issuedToID,
			ProcessedByID:      processedByID,
			IssueDate:          now,
			ExpectedReturnDate: now.Add(model.LoanPeriod),
			FineAmount:         decimal.Zero,
			FineSettled:        decimal.Zero,
			Status:             model.IssueActive,
		})
		return err
	})
	if err != nil {
		return model.Issue{}, finish(span, err)
	}

	s.log.Info("book issued",
		zap.String("issueID", created.ID),
		zap.String("bookID", bookID),
		zap.String("userID", issuedToID))
	s.publish(ctx, kafka.EventCirculation{
		EventType: kafka.EventBookIssued,
		IssueID:   created.ID,
		BookID:    bookID,
		UserID:    issuedToID,
		ActorID:   processedByID,
	})
	return created, finish(span, nil)
}

// ReturnBook closes the issue, freezes its fine and puts the copy back on the shelf.
func (s *Service) ReturnBook(ctx context.Context, issueID, processedByID string, additionalFine *decimal.Decimal) (model.Issue, error) {
	ctx, span := s.startSpan(ctx, "ReturnBook", attribute.String("issue.id", issueID))
	if err := validateIDs(issueID, processedByID); err != nil {
		return model.Issue{}, finish(span, err)
	}
	extra := decimal.Zero
	if additionalFine != nil {
		if additionalFine.IsNegative() {
			return model.Issue{}, finish(span, errs.ErrInvalidAdditionalFine)
		}
		extra = additionalFine.Round(2)
	}

	cfg, err := s.activeConfiguration(ctx)
	if err != nil {
		return model.Issue{}, finish(span, err)
	}

	now := s.clock()
	var returned model.Issue
	err = s.repo.WithTx(ctx, func(repo repository.Repository) error {
		issue, err := repo.GetIssueForUpdate(ctx, issueID)
		if err != nil {
			return err
		}
		if issue.Status == model.IssueReturned {
			return errs.ErrAlreadyReturned
		}
		settlement := decimal.Max(issue.FineAmount, fine.Outstanding(fine.Accrued(issue.ExpectedReturnDate, now, cfg), issue.FineSettled))

		issue.FineAmount = settlement.Add(extra)
		issue.Status = model.IssueReturned
		issue.ActualReturnDate = &now
		issue.ProcessedByID = processedByID
		if returned, err = repo.UpdateIssue(ctx, issue); err != nil {
			return err
		}
		return repo.ReleaseCopy(ctx, issue.BookID)
	})
	if err != nil {
		if errors.Is(err, errs.ErrInternalConsistency) {
			s.log.Error("return book aborted: inventory inconsistent",
				zap.String("issueID", issueID),
				zap.String("processedByID", processedByID),
				zap.Error(err))
		}
		return model.Issue{}, finish(span, err)
	}

	s.log.Info("book returned",
		zap.String("issueID", returned.ID),
		zap.String("bookID", returned.BookID),
		zap.Stringer("fine", returned.FineAmount))
	amount := returned.FineAmount
	s.publish(ctx, kafka.EventCirculation{
		EventType: kafka.EventBookReturned,
		IssueID:   returned.ID,
		BookID:    returned.BookID,
		UserID:    returned.IssuedToID,
		ActorID:   processedByID,
		Amount:    &amount,
	})
	return returned, finish(span, nil)
}

func (s *Service) GetIssue(ctx context.Context, issueID string) (model.Issue, error) {
	if err := validateIDs(issueID); err != nil {
		return model.Issue{}, err
	}
	return s.repo.GetIssue(ctx, issueID)
}

func (s *Service) ListUserIssues(ctx context.Context, userID string) ([]model.Issue, error) {
	if err := validateIDs(userID); err != nil {
		return nil, err
	}
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errs.ErrUserNotFound
	}
	return s.repo.ListUserIssues(ctx, userID)
}

// GetOverdueBooks lists open issues past their expected return date with the days overdue as of now.
func (s *Service) GetOverdueBooks(ctx context.Context) ([]model.OverdueBook, error) {
	ctx, span := s.startSpan(ctx, "GetOverdueBooks")
	now := s.clock()
	items, err := s.repo.ListOverdueIssues(ctx, now)
	if err != nil {
		return nil, finish(span, err)
	}
	for i := range items {
		items[i].OverdueDays = fine.OverdueDays(items[i].ExpectedReturnDate, now)
	}
	return items, finish(span, nil)
}

func (s *Service) ListOpenIssueIDs(ctx context.Context) ([]string, error) {
	return s.repo.ListOpenIssueIDs(ctx)
}

// MarkOverdueIssues moves every late ACTIVE issue to OVERDUE. Re-running is a no-op.
func (s *Service) MarkOverdueIssues(ctx context.Context) (model.OverdueSweepResult, error) {
	ctx, span := s.startSpan(ctx, "MarkOverdueIssues")
	ids, err := s.repo.MarkOverdue(ctx, s.clock())
	if err != nil {
		return model.OverdueSweepResult{}, finish(span, err)
	}
	for _, id := range ids {
		s.publish(ctx, kafka.EventCirculation{EventType: kafka.EventIssueOverdue, IssueID: id})
	}
	span.SetAttributes(attribute.Int("issues.marked", len(ids)))
	return model.OverdueSweepResult{Marked: int64(len(ids))}, finish(span, nil)
}
