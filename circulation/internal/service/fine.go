package service

import (
	"context"
	"errors"
	"strings"

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

// RecalculateFine brings the fine of an open issue up to date. Returned issues are left as is.
// Calling it twice without time passing changes nothing.
func (s *Service) RecalculateFine(ctx context.Context, issueID string) (model.Issue, error) {
	ctx, span := s.startSpan(ctx, "RecalculateFine", attribute.String("issue.id", issueID))
	if err := validateIDs(issueID); err != nil {
		return model.Issue{}, finish(span, err)
	}
	current, err := s.repo.GetIssue(ctx, issueID)
	if err != nil {
		return model.Issue{}, finish(span, err)
	}
	if current.Status == model.IssueReturned {
		return current, finish(span, nil)
	}

	cfg, err := s.activeConfiguration(ctx)
	if err != nil {
		return model.Issue{}, finish(span, err)
	}

	now := s.clock()
	var (
		result  model.Issue
		changed bool
	)
	err = s.repo.WithTx(ctx, func(repo repository.Repository) error {
		issue, err := repo.GetIssueForUpdate(ctx, issueID)
		if err != nil {
			return err
		}
		result = issue
		if issue.Status == model.IssueReturned {
			return nil
		}
		days := fine.OverdueDays(issue.ExpectedReturnDate, now)
		amount := decimal.Max(issue.FineAmount, fine.Outstanding(fine.Calculate(days, cfg), issue.FineSettled))
		status := issue.Status
		if days > max(cfg.GracePeriodDays, 0) {
			status = model.IssueOverdue
		}
		if amount.Equal(issue.FineAmount) && status == issue.Status {
			return nil
		}
		issue.FineAmount = amount
		issue.Status = status
		result, err = repo.UpdateIssue(ctx, issue)
		changed = err == nil
		return err
	})
	if err != nil {
		return model.Issue{}, finish(span, err)
	}
	if changed {
		amount := result.FineAmount
		s.publish(ctx, kafka.EventCirculation{
			EventType: kafka.EventFineRecalculated,
			IssueID:   result.ID,
			BookID:    result.BookID,
			UserID:    result.IssuedToID,
			Amount:    &amount,
		})
	}
	return result, finish(span, nil)
}

// RecordPayment takes amount off the outstanding fine and writes a ledger row.
func (s *Service) RecordPayment(ctx context.Context, issueID string, amount decimal.Decimal, method model.PaymentMethod, receivedByID string) (model.PaymentResult, error) {
	ctx, span := s.startSpan(ctx, "RecordPayment", attribute.String("issue.id", issueID))
	if err := validateIDs(issueID, receivedByID); err != nil {
		return model.PaymentResult{}, finish(span, err)
	}
	if !amount.IsPositive() || !amount.Equal(amount.Round(2)) {
		return model.PaymentResult{}, finish(span, errs.ErrInvalidPaymentAmount)
	}
	if !method.Valid() {
		return model.PaymentResult{}, finish(span, errs.ErrInvalidPaymentMethod)
	}

	now := s.clock()
	var res model.PaymentResult
	err := s.repo.WithTx(ctx, func(repo repository.Repository) error {
		issue, err := repo.GetIssueForUpdate(ctx, issueID)
		if err != nil {
			return err
		}
		if amount.GreaterThan(issue.FineAmount) {
			return errs.ErrInvalidPaymentAmount
		}
		issue.FineAmount = fine.Outstanding(issue.FineAmount, amount)
		issue.FineSettled = issue.FineSettled.Add(amount)
		if res.Issue, err = repo.UpdateIssue(ctx, issue); err != nil {
			return err
		}
		res.Payment, err = repo.CreatePayment(ctx, model.FinePayment{
			ID:           uuid.NewString(),
			IssueID:      issueID,
			Amount:       amount,
			Method:       method,
			ReceivedByID: receivedByID,
			CreatedAt:    now,
		})
		return err
	})
	if err != nil {
		return model.PaymentResult{}, finish(span, err)
	}

	s.log.Info("fine payment recorded",
		zap.String("issueID", issueID),
		zap.Stringer("amount", amount),
		zap.String("method", string(method)),
		zap.Stringer("remaining", res.Issue.FineAmount))
	s.publish(ctx, kafka.EventCirculation{
		EventType: kafka.EventFinePaid,
		IssueID:   issueID,
		BookID:    res.Issue.BookID,
		UserID:    res.Issue.IssuedToID,
		ActorID:   receivedByID,
		Amount:    &amount,
	})
	return res, finish(span, nil)
}

// WaiveFine forgives the outstanding fine. The issue status is not touched.
func (s *Service) WaiveFine(ctx context.Context, issueID, reason, actorID string) (model.Issue, error) {
	ctx, span := s.startSpan(ctx, "WaiveFine", attribute.String("issue.id", issueID))
	if err := validateIDs(issueID, actorID); err != nil {
		return model.Issue{}, finish(span, err)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return model.Issue{}, finish(span, errs.ErrWaiverReasonRequired)
	}

	var (
		waived model.Issue
		amount decimal.Decimal
	)
	err := s.repo.WithTx(ctx, func(repo repository.Repository) error {
		issue, err := repo.GetIssueForUpdate(ctx, issueID)
		if err != nil {
			return err
		}
		amount = issue.FineAmount
		issue.FineSettled = issue.FineSettled.Add(issue.FineAmount)
		issue.FineAmount = decimal.Zero
		issue.Notes = reason
		waived, err = repo.UpdateIssue(ctx, issue)
		return err
	})
	if err != nil {
		return model.Issue{}, finish(span, err)
	}

	s.log.Info("fine waived",
		zap.String("issueID", issueID),
		zap.String("actorID", actorID),
		zap.Stringer("amount", amount))
	s.publish(ctx, kafka.EventCirculation{
		EventType: kafka.EventFineWaived,
		IssueID:   issueID,
		BookID:    waived.BookID,
		UserID:    waived.IssuedToID,
		ActorID:   actorID,
		Amount:    &amount,
	})
	return waived, finish(span, nil)
}

func (s *Service) ListPayments(ctx context.Context, issueID string) ([]model.FinePayment, error) {
	if err := validateIDs(issueID); err != nil {
		return nil, err
	}
	if _, err := s.repo.GetIssue(ctx, issueID); err != nil {
		return nil, err
	}
	return s.repo.ListPayments(ctx, issueID)
}

// GetFineConfiguration returns the active configuration, installing the defaults when there is none.
func (s *Service) GetFineConfiguration(ctx context.Context) (model.FineConfiguration, error) {
	ctx, span := s.startSpan(ctx, "GetFineConfiguration")
	cfg, err := s.activeConfiguration(ctx)
	return cfg, finish(span, err)
}

func (s *Service) activeConfiguration(ctx context.Context) (model.FineConfiguration, error) {
	cfg, err := s.repo.GetActiveFineConfig(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, errs.ErrConfigNotFound) {
		return model.FineConfiguration{}, err
	}
	s.log.Info("no active fine configuration, installing defaults")
	if err = s.repo.CreateDefaultFineConfig(ctx, model.DefaultFineConfiguration()); err != nil {
		return model.FineConfiguration{}, err
	}
	return s.repo.GetActiveFineConfig(ctx)
}

func (s *Service) UpdateFineConfiguration(ctx context.Context, req model.FineConfigurationRequest, actorID string) (model.FineConfiguration, error) {
	ctx, span := s.startSpan(ctx, "UpdateFineConfiguration")
	if err := validateIDs(actorID); err != nil {
		return model.FineConfiguration{}, finish(span, err)
	}
	if !fine.ValidConfiguration(req) {
		return model.FineConfiguration{}, finish(span, errs.ErrInvalidFineConfig)
	}
	actor := actorID
	cfg, err := s.repo.ReplaceFineConfig(ctx, model.FineConfiguration{
		FinePerDay:      req.FinePerDay.Round(2),
		MaxFineAmount:   req.MaxFineAmount.Round(2),
		GracePeriodDays: req.GracePeriodDays,
		IsActive:        true,
		CreatedBy:       &actor,
	})
	if err != nil {
		return model.FineConfiguration{}, finish(span, err)
	}

	s.log.Info("fine configuration replaced",
		zap.String("configID", cfg.ID),
		zap.String("actorID", actorID),
		zap.Stringer("finePerDay", cfg.FinePerDay),
		zap.Stringer("maxFineAmount", cfg.MaxFineAmount),
		zap.Int("gracePeriodDays", cfg.GracePeriodDays))
	s.publish(ctx, kafka.EventCirculation{EventType: kafka.EventFineConfigured, ActorID: actorID})
	return cfg, finish(span, nil)
}

func (s *Service) FineConfigurationHistory(ctx context.Context) ([]model.FineConfiguration, error) {
	return s.repo.ListFineConfigs(ctx)
}

// GetUserOutstandingFines sums the unpaid fines across every issue of the user.
func (s *Service) GetUserOutstandingFines(ctx context.Context, userID string) (model.OutstandingFines, error) {
	ctx, span := s.startSpan(ctx, "GetUserOutstandingFines", attribute.String("user.id", userID))
	if err := validateIDs(userID); err != nil {
		return model.OutstandingFines{}, finish(span, err)
	}
	exists, err := s.repo.UserExists(ctx, userID)
	if err != nil {
		return model.OutstandingFines{}, finish(span, err)
	}
	if !exists {
		return model.OutstandingFines{}, finish(span, errs.ErrUserNotFound)
	}
	issues, err := s.repo.ListIssuesWithFines(ctx, userID)
	if err != nil {
		return model.OutstandingFines{}, finish(span, err)
	}
	total := decimal.Zero
	for _, issue := range issues {
		total = total.Add(issue.FineAmount)
	}
	return model.OutstandingFines{UserID: userID, Total: total, Issues: issues}, finish(span, nil)
}
