package handler

import (
	"context"

	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/scheduler"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
	"github.com/shopspring/decimal"
)

//go:generate go run github.com/golang/mock/mockgen -source=service.go -destination=mocks/mock.go

type CirculationService interface {
	IssueBook(ctx context.Context, bookID, issuedToID, processedByID string) (model.Issue, error)
	ReturnBook(ctx context.Context, issueID, processedByID string, additionalFine *decimal.Decimal) (model.Issue, error)
	GetIssue(ctx context.Context, issueID string) (model.Issue, error)
	ListUserIssues(ctx context.Context, userID string) ([]model.Issue, error)
	GetOverdueBooks(ctx context.Context) ([]model.OverdueBook, error)

	RecalculateFine(ctx context.Context, issueID string) (model.Issue, error)
	RecordPayment(ctx context.Context, issueID string, amount decimal.Decimal, method model.PaymentMethod, receivedByID string) (model.PaymentResult, error)
	ListPayments(ctx context.Context, issueID string) ([]model.FinePayment, error)
	WaiveFine(ctx context.Context, issueID, reason, actorID string) (model.Issue, error)
	GetUserOutstandingFines(ctx context.Context, userID string) (model.OutstandingFines, error)

	GetFineConfiguration(ctx context.Context) (model.FineConfiguration, error)
	UpdateFineConfiguration(ctx context.Context, req model.FineConfigurationRequest, actorID string) (model.FineConfiguration, error)
	FineConfigurationHistory(ctx context.Context) ([]model.FineConfiguration, error)
}

type SweepService interface {
	SweepFines(ctx context.Context) (model.SweepResult, error)
	SweepOverdue(ctx context.Context) (model.OverdueSweepResult, error)
}

var (
	_ CirculationService = (*service.Service)(nil)
	_ SweepService       = (*scheduler.Sweeper)(nil)
)
