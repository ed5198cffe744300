package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type BookStatus string

const (
	BookAvailable   BookStatus = "AVAILABLE"
	BookIssued      BookStatus = "ISSUED"
	BookMaintenance BookStatus = "MAINTENANCE"
	BookLost        BookStatus = "LOST"
)

// Circulates reports whether copies of the book may be lent at all.
func (s BookStatus) Circulates() bool {
	return s == BookAvailable || s == BookIssued
}

type Book struct {
	ID              string     `json:"id" db:"id"`
	ISBN            string     `json:"isbn" db:"isbn"`
	Title           string     `json:"title" db:"title"`
	Author          string     `json:"author" db:"author"`
	TotalCopies     int        `json:"totalCopies" db:"total_copies"`
	AvailableCopies int        `json:"availableCopies" db:"available_copies"`
	Status          BookStatus `json:"status" db:"status"`
}

type User struct {
	ID    string `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Role  string `json:"role" db:"role"`
}

type IssueStatus string

const (
	IssueActive   IssueStatus = "ACTIVE"
	IssueOverdue  IssueStatus = "OVERDUE"
	IssueReturned IssueStatus = "RETURNED"
)

func (s IssueStatus) Open() bool {
	return s == IssueActive || s == IssueOverdue
}

// LoanPeriod is the time between issue and expected return.
const LoanPeriod = 14 * 24 * time.Hour

type Issue struct {
	ID                 string          `json:"id" db:"id"`
	BookID             string          `json:"bookId" db:"book_id"`
	IssuedToID         string          `json:"issuedToId" db:"issued_to_id"`
	ProcessedByID      string          `json:"processedById" db:"processed_by_id"`
	IssueDate          time.Time       `json:"issueDate" db:"issue_date"`
	ExpectedReturnDate time.Time       `json:"expectedReturnDate" db:"expected_return_date"`
	ActualReturnDate   *time.Time      `json:"actualReturnDate" db:"actual_return_date"`
	FineAmount         decimal.Decimal `json:"fineAmount" db:"fine_amount"`
	FineSettled        decimal.Decimal `json:"fineSettled" db:"fine_settled"`
	Status             IssueStatus     `json:"status" db:"status"`
	Notes              string          `json:"notes" db:"notes"`
	CreatedAt          time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt          time.Time       `json:"updatedAt" db:"updated_at"`
}

type FineConfiguration struct {
	ID              string          `json:"id" db:"id"`
	FinePerDay      decimal.Decimal `json:"finePerDay" db:"fine_per_day"`
	MaxFineAmount   decimal.Decimal `json:"maxFineAmount" db:"max_fine_amount"`
	GracePeriodDays int             `json:"gracePeriodDays" db:"grace_period_days"`
	IsActive        bool            `json:"isActive" db:"is_active"`
	CreatedBy       *string         `json:"createdBy" db:"created_by"`
	CreatedAt       time.Time       `json:"createdAt" db:"created_at"`
}

// DefaultFineConfiguration is installed when no active configuration exists.
func DefaultFineConfiguration() FineConfiguration {
	return FineConfiguration{
		FinePerDay:      decimal.NewFromInt(10),
		MaxFineAmount:   decimal.NewFromInt(1000),
		GracePeriodDays: 1,
		IsActive:        true,
	}
}

type FineConfigurationRequest struct {
	FinePerDay      decimal.Decimal `json:"finePerDay"`
	MaxFineAmount   decimal.Decimal `json:"maxFineAmount"`
	GracePeriodDays int             `json:"gracePeriodDays"`
}

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentCard   PaymentMethod = "CARD"
	PaymentOnline PaymentMethod = "ONLINE"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCash, PaymentCard, PaymentOnline:
		return true
	}
	return false
}

type FinePayment struct {
	ID           string          `json:"id" db:"id"`
	IssueID      string          `json:"issueId" db:"issue_id"`
	Amount       decimal.Decimal `json:"amount" db:"amount"`
	Method       PaymentMethod   `json:"method" db:"method"`
	ReceivedByID string          `json:"receivedById" db:"received_by_id"`
	CreatedAt    time.Time       `json:"createdAt" db:"created_at"`
}

type IssueBookRequest struct {
	BookID     string `json:"bookId" validate:"required,uuid"`
	IssuedToID string `json:"issuedToId" validate:"required,uuid"`
}

type ReturnBookRequest struct {
	AdditionalFine *decimal.Decimal `json:"additionalFine,omitempty"`
}

type PaymentRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Method PaymentMethod   `json:"method" validate:"required"`
}

type WaiveRequest struct {
	Reason string `json:"reason" validate:"required"`
}

type OverdueBook struct {
	IssueID            string          `json:"issueId" db:"issue_id"`
	BookID             string          `json:"bookId" db:"book_id"`
	Title              string          `json:"title" db:"title"`
	ISBN               string          `json:"isbn" db:"isbn"`
	IssuedToID         string          `json:"issuedToId" db:"issued_to_id"`
	IssueDate          time.Time       `json:"issueDate" db:"issue_date"`
	ExpectedReturnDate time.Time       `json:"expectedReturnDate" db:"expected_return_date"`
	Status             IssueStatus     `json:"status" db:"status"`
	FineAmount         decimal.Decimal `json:"fineAmount" db:"fine_amount"`
	OverdueDays        int             `json:"overdueDays" db:"-"`
}

type OutstandingFines struct {
	UserID string          `json:"userId"`
	Total  decimal.Decimal `json:"total"`
	Issues []Issue         `json:"issues"`
}

type SweepResult struct {
	Total        int `json:"total"`
	Recalculated int `json:"recalculated"`
	Failed       int `json:"failed"`
}

type OverdueSweepResult struct {
	Marked int64 `json:"marked"`
}

type PaymentResult struct {
	Payment FinePayment `json:"payment"`
	Issue   Issue       `json:"issue"`
}
