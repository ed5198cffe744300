package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Astemirdum/library-circulation/circulation/internal/errs"
	"github.com/Astemirdum/library-circulation/circulation/internal/model"
	"github.com/Astemirdum/library-circulation/circulation/internal/repository"
	"github.com/Astemirdum/library-circulation/circulation/internal/service"
	"github.com/Astemirdum/library-circulation/pkg/kafka"
	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	repo_mocks "github.com/Astemirdum/library-circulation/circulation/internal/repository/mocks"
)

const (
	bookID    = "0d7c4e3e-5b0b-4a44-9a57-6f0f5d7f2b10"
	userID    = "5b0b5e43-6e36-4d0e-a1a3-7c3f9b1d2a20"
	staffID   = "9a2f6c1e-3d4b-4f5a-8e7d-1c2b3a4d5e30"
	issueID   = "e3b2c4d5-6f7a-4b8c-9d0e-1f2a3b4c5d40"
	otherUser = "11111111-2222-4333-8444-555555555555"
)

var now = time.Date(2024, 5, 20, 12, 0, 0, 0, time.UTC)

type recordingPublisher struct {
	mu     sync.Mutex
	events []kafka.EventCirculation
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event kafka.EventCirculation) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) types() []kafka.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]kafka.EventType, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.EventType)
	}
	return out
}

func newService(t *testing.T) (*service.Service, *repo_mocks.MockRepository, *recordingPublisher) {
	t.Helper()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	repo.EXPECT().
		WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repository.Repository) error) error {
			return fn(repo)
		}).
		AnyTimes()
	pub := &recordingPublisher{}
	svc := service.NewService(repo, zap.NewNop(),
		service.WithClock(func() time.Time { return now }),
		service.WithEventPublisher(pub))
	return svc, repo, pub
}

func defaultConfig() model.FineConfiguration {
	cfg := model.DefaultFineConfiguration()
	cfg.ID = "c0c0c0c0-0000-4000-8000-000000000001"
	return cfg
}

func requireDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	require.Truef(t, decimal.RequireFromString(want).Equal(got), "want %s got %s", want, got)
}

func openIssue(expected time.Time, fineAmount, settled string, status model.IssueStatus) model.Issue {
	return model.Issue{
		ID:                 issueID,
		BookID:             bookID,
		IssuedToID:         userID,
		ProcessedByID:      staffID,
		IssueDate:          expected.Add(-model.LoanPeriod),
		ExpectedReturnDate: expected,
		FineAmount:         decimal.RequireFromString(fineAmount),
		FineSettled:        decimal.RequireFromString(settled),
		Status:             status,
	}
}

func echoUpdate(_ context.Context, issue model.Issue) (model.Issue, error) {
	return issue, nil
}

func TestService_IssueBook(t *testing.T) {
	t.Parallel()
	availableBook := model.Book{ID: bookID, TotalCopies: 2, AvailableCopies: 1, Status: model.BookAvailable}

	tests := []struct {
		name         string
		bookID       string
		mockBehavior func(r *repo_mocks.MockRepository)
		wantErr      error
	}{
		{
			name:   "ok",
			bookID: bookID,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				gomock.InOrder(
					r.EXPECT().GetBook(gomock.Any(), bookID).Return(availableBook, nil),
					r.EXPECT().UserExists(gomock.Any(), userID).Return(true, nil),
					r.EXPECT().HasOpenIssue(gomock.Any(), bookID, userID).Return(false, nil),
					r.EXPECT().ReserveCopy(gomock.Any(), bookID).Return(nil),
					r.EXPECT().CreateIssue(gomock.Any(), gomock.Any()).DoAndReturn(
						func(_ context.Context, issue model.Issue) (model.Issue, error) { return issue, nil }),
				)
			},
		},
		{
			name:    "malformed book id",
			bookID:  "not-a-uuid",
			wantErr: errs.ErrInvalidID,
		},
		{
			name:   "book not found",
			bookID: bookID,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(gomock.Any(), bookID).Return(model.Book{}, errs.ErrBookNotFound)
			},
			wantErr: errs.ErrNotFound,
		},
		{
			name:   "borrower not found",
			bookID: bookID,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(gomock.Any(), bookID).Return(availableBook, nil)
				r.EXPECT().UserExists(gomock.Any(), userID).Return(false, nil)
			},
			wantErr: errs.ErrUserNotFound,
		},
		{
			name:   "book in maintenance",
			bookID: bookID,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				b := availableBook
				b.Status = model.BookMaintenance
				r.EXPECT().GetBook(gomock.Any(), bookID).Return(b, nil)
				r.EXPECT().UserExists(gomock.Any(), userID).Return(true, nil)
			},
			wantErr: errs.ErrBookUnavailable,
		},
		{
			name:   "already issued to borrower",
			bookID: bookID,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(gomock.Any(), bookID).Return(availableBook, nil)
				r.EXPECT().UserExists(gomock.Any(), userID).Return(true, nil)
				r.EXPECT().HasOpenIssue(gomock.Any(), bookID, userID).Return(true, nil)
			},
			wantErr: errs.ErrConflict,
		},
		{
			name:   "no copies left",
			bookID: bookID,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				b := availableBook
				b.AvailableCopies = 0
				b.Status = model.BookIssued
				r.EXPECT().GetBook(gomock.Any(), bookID).Return(b, nil)
				r.EXPECT().UserExists(gomock.Any(), userID).Return(true, nil)
				r.EXPECT().HasOpenIssue(gomock.Any(), bookID, userID).Return(false, nil)
				r.EXPECT().ReserveCopy(gomock.Any(), bookID).Return(errs.ErrNoCopiesAvailable)
			},
			wantErr: errs.ErrNoCopiesAvailable,
		},
		{
			name:   "insert failure surfaces",
			bookID: bookID,
			mockBehavior: func(r *repo_mocks.MockRepository) {
				r.EXPECT().GetBook(gomock.Any(), bookID).Return(availableBook, nil)
				r.EXPECT().UserExists(gomock.Any(), userID).Return(true, nil)
				r.EXPECT().HasOpenIssue(gomock.Any(), bookID, userID).Return(false, nil)
				r.EXPECT().ReserveCopy(gomock.Any(), bookID).Return(nil)
				r.EXPECT().CreateIssue(gomock.Any(), gomock.Any()).Return(model.Issue{}, errs.ErrAlreadyIssued)
			},
			wantErr: errs.ErrAlreadyIssued,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, pub := newService(t)
			if tt.mockBehavior != nil {
				tt.mockBehavior(repo)
			}
			issue, err := svc.IssueBook(context.Background(), tt.bookID, userID, staffID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, pub.types())
				return
			}
			require.NoError(t, err)
			require.Equal(t, model.IssueActive, issue.Status)
			require.Equal(t, now, issue.IssueDate)
			require.Equal(t, now.Add(14*24*time.Hour), issue.ExpectedReturnDate)
			require.Equal(t, staffID, issue.ProcessedByID)
			require.Nil(t, issue.ActualReturnDate)
			requireDecimal(t, "0", issue.FineAmount)
			require.NotEmpty(t, issue.ID)
			require.Equal(t, []kafka.EventType{kafka.EventBookIssued}, pub.types())
		})
	}
}

func TestService_ReturnBook(t *testing.T) {
	t.Parallel()
	five := decimal.RequireFromString("5")
	negative := decimal.RequireFromString("-1")

	tests := []struct {
		name       string
		issue      model.Issue
		additional *decimal.Decimal
		releaseErr error
		wantFine   string
		wantErr    error
	}{
		{
			name:     "same day return has no fine",
			issue:    openIssue(now.Add(model.LoanPeriod), "0", "0", model.IssueActive),
			wantFine: "0",
		},
		{
			name:     "ten days late",
			issue:    openIssue(now.Add(-10*24*time.Hour), "0", "0", model.IssueOverdue),
			wantFine: "90",
		},
		{
			name:       "ten days late with damage fee",
			issue:      openIssue(now.Add(-10*24*time.Hour), "0", "0", model.IssueOverdue),
			additional: &five,
			wantFine:   "95",
		},
		{
			name:     "partially paid fine is not charged twice",
			issue:    openIssue(now.Add(-10*24*time.Hour), "40", "50", model.IssueOverdue),
			wantFine: "40",
		},
		{
			name:     "waived fine stays waived",
			issue:    openIssue(now.Add(-10*24*time.Hour), "0", "90", model.IssueOverdue),
			wantFine: "0",
		},
		{
			name:    "already returned",
			issue:   openIssue(now.Add(-10*24*time.Hour), "90", "0", model.IssueReturned),
			wantErr: errs.ErrAlreadyReturned,
		},
		{
			name:       "negative additional fine",
			issue:      openIssue(now, "0", "0", model.IssueActive),
			additional: &negative,
			wantErr:    errs.ErrBadRequest,
		},
		{
			name:       "inventory inconsistency aborts",
			issue:      openIssue(now, "0", "0", model.IssueActive),
			releaseErr: errs.ErrInternalConsistency,
			wantErr:    errs.ErrInternalConsistency,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, pub := newService(t)
			if tt.additional == nil || !tt.additional.IsNegative() {
				repo.EXPECT().GetActiveFineConfig(gomock.Any()).Return(defaultConfig(), nil)
				repo.EXPECT().GetIssueForUpdate(gomock.Any(), issueID).Return(tt.issue, nil)
			}
			if tt.wantErr == nil || tt.releaseErr != nil {
				repo.EXPECT().UpdateIssue(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
				repo.EXPECT().ReleaseCopy(gomock.Any(), bookID).Return(tt.releaseErr)
			}

			got, err := svc.ReturnBook(context.Background(), issueID, otherUser, tt.additional)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, pub.types())
				return
			}
			require.NoError(t, err)
			require.Equal(t, model.IssueReturned, got.Status)
			require.NotNil(t, got.ActualReturnDate)
			require.Equal(t, now, *got.ActualReturnDate)
			require.Equal(t, otherUser, got.ProcessedByID)
			requireDecimal(t, tt.wantFine, got.FineAmount)
			require.Equal(t, []kafka.EventType{kafka.EventBookReturned}, pub.types())
		})
	}
}

func TestService_RecalculateFine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		issue      model.Issue
		wantUpdate bool
		wantFine   string
		wantStatus model.IssueStatus
	}{
		{
			name:       "basic fine",
			issue:      openIssue(now.Add(-10*24*time.Hour), "0", "0", model.IssueActive),
			wantUpdate: true,
			wantFine:   "90",
			wantStatus: model.IssueOverdue,
		},
		{
			name:       "fine cap",
			issue:      openIssue(now.Add(-200*24*time.Hour), "0", "0", model.IssueOverdue),
			wantUpdate: true,
			wantFine:   "1000",
			wantStatus: model.IssueOverdue,
		},
		{
			name:       "within grace stays active",
			issue:      openIssue(now.Add(-time.Hour), "0", "0", model.IssueActive),
			wantFine:   "0",
			wantStatus: model.IssueActive,
		},
		{
			name:       "within grace keeps swept overdue status",
			issue:      openIssue(now.Add(-time.Hour), "0", "0", model.IssueOverdue),
			wantFine:   "0",
			wantStatus: model.IssueOverdue,
		},
		{
			name:       "first day past grace",
			issue:      openIssue(now.Add(-25*time.Hour), "0", "0", model.IssueActive),
			wantUpdate: true,
			wantFine:   "10",
			wantStatus: model.IssueOverdue,
		},
		{
			name:       "not yet due is untouched",
			issue:      openIssue(now.Add(24*time.Hour), "0", "0", model.IssueActive),
			wantFine:   "0",
			wantStatus: model.IssueActive,
		},
		{
			name:       "already current is idempotent",
			issue:      openIssue(now.Add(-10*24*time.Hour), "90", "0", model.IssueOverdue),
			wantFine:   "90",
			wantStatus: model.IssueOverdue,
		},
		{
			name:       "payments are not resurrected",
			issue:      openIssue(now.Add(-10*24*time.Hour), "40", "50", model.IssueOverdue),
			wantFine:   "40",
			wantStatus: model.IssueOverdue,
		},
		{
			name:       "accrual continues after partial payment",
			issue:      openIssue(now.Add(-12*24*time.Hour), "40", "50", model.IssueOverdue),
			wantUpdate: true,
			wantFine:   "60",
			wantStatus: model.IssueOverdue,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, pub := newService(t)
			repo.EXPECT().GetIssue(gomock.Any(), issueID).Return(tt.issue, nil)
			repo.EXPECT().GetActiveFineConfig(gomock.Any()).Return(defaultConfig(), nil)
			repo.EXPECT().GetIssueForUpdate(gomock.Any(), issueID).Return(tt.issue, nil)
			if tt.wantUpdate {
				repo.EXPECT().UpdateIssue(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
			}

			got, err := svc.RecalculateFine(context.Background(), issueID)
			require.NoError(t, err)
			requireDecimal(t, tt.wantFine, got.FineAmount)
			require.Equal(t, tt.wantStatus, got.Status)
			if tt.wantUpdate {
				require.Equal(t, []kafka.EventType{kafka.EventFineRecalculated}, pub.types())
			} else {
				require.Empty(t, pub.types())
			}
		})
	}
}

func TestService_RecalculateFine_ReturnedIsNoop(t *testing.T) {
	t.Parallel()
	svc, repo, pub := newService(t)
	returned := openIssue(now.Add(-30*24*time.Hour), "12.50", "0", model.IssueReturned)
	repo.EXPECT().GetIssue(gomock.Any(), issueID).Return(returned, nil)

	got, err := svc.RecalculateFine(context.Background(), issueID)
	require.NoError(t, err)
	requireDecimal(t, "12.50", got.FineAmount)
	require.Equal(t, model.IssueReturned, got.Status)
	require.Empty(t, pub.types())
}

func TestService_RecordPayment(t *testing.T) {
	t.Parallel()
	d := decimal.RequireFromString
	tests := []struct {
		name        string
		fine        string
		amount      decimal.Decimal
		method      model.PaymentMethod
		lock        bool
		wantErr     error
		wantFine    string
		wantSettled string
	}{
		{name: "partial payment", fine: "90", amount: d("50"), method: model.PaymentCash, lock: true, wantFine: "40", wantSettled: "50"},
		{name: "full payment", fine: "40", amount: d("40"), method: model.PaymentCard, lock: true, wantFine: "0", wantSettled: "40"},
		{name: "overpayment", fine: "40", amount: d("50"), method: model.PaymentCash, lock: true, wantErr: errs.ErrInvalidPaymentAmount},
		{name: "zero amount", fine: "40", amount: d("0"), method: model.PaymentCash, wantErr: errs.ErrBadRequest},
		{name: "negative amount", fine: "40", amount: d("-3"), method: model.PaymentCash, wantErr: errs.ErrBadRequest},
		{name: "sub-cent amount", fine: "40", amount: d("0.001"), method: model.PaymentCash, wantErr: errs.ErrInvalidPaymentAmount},
		{name: "unknown method", fine: "40", amount: d("10"), method: "CHEQUE", wantErr: errs.ErrInvalidPaymentMethod},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, pub := newService(t)
			if tt.lock {
				repo.EXPECT().GetIssueForUpdate(gomock.Any(), issueID).
					Return(openIssue(now.Add(-10*24*time.Hour), tt.fine, "0", model.IssueOverdue), nil)
			}
			if tt.wantErr == nil {
				repo.EXPECT().UpdateIssue(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
				repo.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, p model.FinePayment) (model.FinePayment, error) {
						require.Equal(t, issueID, p.IssueID)
						require.Equal(t, tt.method, p.Method)
						require.Equal(t, staffID, p.ReceivedByID)
						return p, nil
					})
			}

			res, err := svc.RecordPayment(context.Background(), issueID, tt.amount, tt.method, staffID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				require.Empty(t, pub.types())
				return
			}
			require.NoError(t, err)
			requireDecimal(t, tt.wantFine, res.Issue.FineAmount)
			requireDecimal(t, tt.wantSettled, res.Issue.FineSettled)
			require.True(t, tt.amount.Equal(res.Payment.Amount))
			require.Equal(t, []kafka.EventType{kafka.EventFinePaid}, pub.types())
		})
	}
}

func TestService_WaiveFine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		fine    string
		reason  string
		wantErr error
	}{
		{name: "waive outstanding fine", fine: "90", reason: "damaged on issue"},
		{name: "waive zero fine", fine: "0", reason: "goodwill"},
		{name: "reason required", fine: "90", reason: "   ", wantErr: errs.ErrWaiverReasonRequired},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, _ := newService(t)
			if tt.wantErr == nil {
				repo.EXPECT().GetIssueForUpdate(gomock.Any(), issueID).
					Return(openIssue(now.Add(-10*24*time.Hour), tt.fine, "0", model.IssueOverdue), nil)
				repo.EXPECT().UpdateIssue(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
			}
			got, err := svc.WaiveFine(context.Background(), issueID, tt.reason, staffID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			requireDecimal(t, "0", got.FineAmount)
			requireDecimal(t, tt.fine, got.FineSettled)
			require.Equal(t, tt.reason, got.Notes)
			require.Equal(t, model.IssueOverdue, got.Status)
		})
	}
}

func TestService_GetFineConfiguration(t *testing.T) {
	t.Parallel()
	t.Run("active exists", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().GetActiveFineConfig(gomock.Any()).Return(defaultConfig(), nil)
		cfg, err := svc.GetFineConfiguration(context.Background())
		require.NoError(t, err)
		require.Equal(t, defaultConfig(), cfg)
	})
	t.Run("defaults installed when missing", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		gomock.InOrder(
			repo.EXPECT().GetActiveFineConfig(gomock.Any()).Return(model.FineConfiguration{}, errs.ErrConfigNotFound),
			repo.EXPECT().CreateDefaultFineConfig(gomock.Any(), model.DefaultFineConfiguration()).Return(nil),
			repo.EXPECT().GetActiveFineConfig(gomock.Any()).Return(defaultConfig(), nil),
		)
		cfg, err := svc.GetFineConfiguration(context.Background())
		require.NoError(t, err)
		requireDecimal(t, "10", cfg.FinePerDay)
		requireDecimal(t, "1000", cfg.MaxFineAmount)
		require.Equal(t, 1, cfg.GracePeriodDays)
	})
	t.Run("storage error", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().GetActiveFineConfig(gomock.Any()).Return(model.FineConfiguration{}, errors.New("db down"))
		_, err := svc.GetFineConfiguration(context.Background())
		require.EqualError(t, err, "db down")
	})
}

func TestService_UpdateFineConfiguration(t *testing.T) {
	t.Parallel()
	d := decimal.RequireFromString
	tests := []struct {
		name    string
		req     model.FineConfigurationRequest
		wantErr error
	}{
		{name: "ok", req: model.FineConfigurationRequest{FinePerDay: d("5"), MaxFineAmount: d("500"), GracePeriodDays: 2}},
		{name: "zero grace ok", req: model.FineConfigurationRequest{FinePerDay: d("5"), MaxFineAmount: d("500")}},
		{name: "zero per day", req: model.FineConfigurationRequest{FinePerDay: d("0"), MaxFineAmount: d("500")}, wantErr: errs.ErrInvalidFineConfig},
		{name: "negative max", req: model.FineConfigurationRequest{FinePerDay: d("1"), MaxFineAmount: d("-1")}, wantErr: errs.ErrInvalidFineConfig},
		{name: "negative grace", req: model.FineConfigurationRequest{FinePerDay: d("1"), MaxFineAmount: d("1"), GracePeriodDays: -1}, wantErr: errs.ErrBadRequest},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, repo, pub := newService(t)
			if tt.wantErr == nil {
				repo.EXPECT().ReplaceFineConfig(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, cfg model.FineConfiguration) (model.FineConfiguration, error) {
						require.True(t, cfg.IsActive)
						require.NotNil(t, cfg.CreatedBy)
						require.Equal(t, staffID, *cfg.CreatedBy)
						cfg.ID = "c0c0c0c0-0000-4000-8000-000000000002"
						return cfg, nil
					})
			}
			cfg, err := svc.UpdateFineConfiguration(context.Background(), tt.req, staffID)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.True(t, tt.req.FinePerDay.Equal(cfg.FinePerDay))
			require.Equal(t, tt.req.GracePeriodDays, cfg.GracePeriodDays)
			require.Equal(t, []kafka.EventType{kafka.EventFineConfigured}, pub.types())
		})
	}
}

func TestService_GetUserOutstandingFines(t *testing.T) {
	t.Parallel()
	t.Run("sums fines", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		issues := []model.Issue{
			openIssue(now.Add(-10*24*time.Hour), "90", "0", model.IssueOverdue),
			openIssue(now.Add(-40*24*time.Hour), "12.50", "0", model.IssueReturned),
		}
		repo.EXPECT().UserExists(gomock.Any(), userID).Return(true, nil)
		repo.EXPECT().ListIssuesWithFines(gomock.Any(), userID).Return(issues, nil)
		got, err := svc.GetUserOutstandingFines(context.Background(), userID)
		require.NoError(t, err)
		requireDecimal(t, "102.50", got.Total)
		require.Len(t, got.Issues, 2)
		require.Equal(t, userID, got.UserID)
	})
	t.Run("user missing", func(t *testing.T) {
		t.Parallel()
		svc, repo, _ := newService(t)
		repo.EXPECT().UserExists(gomock.Any(), userID).Return(false, nil)
		_, err := svc.GetUserOutstandingFines(context.Background(), userID)
		require.ErrorIs(t, err, errs.ErrNotFound)
	})
}

func TestService_GetOverdueBooks(t *testing.T) {
	t.Parallel()
	svc, repo, _ := newService(t)
	repo.EXPECT().ListOverdueIssues(gomock.Any(), now).Return([]model.OverdueBook{
		{IssueID: issueID, BookID: bookID, ExpectedReturnDate: now.Add(-3 * 24 * time.Hour), Status: model.IssueOverdue},
		{IssueID: issueID, BookID: bookID, ExpectedReturnDate: now.Add(-time.Hour), Status: model.IssueActive},
	}, nil)
	got, err := svc.GetOverdueBooks(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, 3, got[0].OverdueDays)
	require.Equal(t, 1, got[1].OverdueDays)
}

func TestService_MarkOverdueIssues(t *testing.T) {
	t.Parallel()
	svc, repo, pub := newService(t)
	repo.EXPECT().MarkOverdue(gomock.Any(), now).Return([]string{issueID, bookID}, nil)
	repo.EXPECT().MarkOverdue(gomock.Any(), now).Return([]string{}, nil)

	res, err := svc.MarkOverdueIssues(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(2), res.Marked)

	res, err = svc.MarkOverdueIssues(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(0), res.Marked)
	require.Equal(t, []kafka.EventType{kafka.EventIssueOverdue, kafka.EventIssueOverdue}, pub.types())
}

func TestService_PublishFailureDoesNotFailOperation(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	repo := repo_mocks.NewMockRepository(c)
	pub := &recordingPublisher{err: errors.New("broker down")}
	svc := service.NewService(repo, zap.NewNop(),
		service.WithClock(func() time.Time { return now }),
		service.WithEventPublisher(pub))
	repo.EXPECT().WithTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(repository.Repository) error) error { return fn(repo) })
	repo.EXPECT().GetIssueForUpdate(gomock.Any(), issueID).
		Return(openIssue(now.Add(-10*24*time.Hour), "90", "0", model.IssueOverdue), nil)
	repo.EXPECT().UpdateIssue(gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

	_, err := svc.WaiveFine(context.Background(), issueID, "lost in mail", staffID)
	require.NoError(t, err)
	require.Len(t, pub.types(), 1)
}
