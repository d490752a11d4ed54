// Package tripsplitv1 defines the request and response messages of the
// tripsplit.v1.TripService RPC API. Messages are encoded as JSON.
package tripsplitv1

import "github.com/shopspring/decimal"

type Trip struct {
	Id        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

type Participant struct {
	Name           string `json:"name"`
	PaymentAddress string `json:"payment_address,omitempty"`
}

type Expense struct {
	Id          string          `json:"id,omitempty"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Payer       string          `json:"payer"`
	Involved    []string        `json:"involved"`
	CreatedAt   int64           `json:"created_at,omitempty"`
}

// MemberBalance is one participant's net position. Positive means the
// participant is owed money.
type MemberBalance struct {
	MemberName string          `json:"member_name"`
	NetBalance decimal.Decimal `json:"net_balance"`
	TotalPaid  decimal.Decimal `json:"total_paid"`
	TotalOwed  decimal.Decimal `json:"total_owed"`
}

// Settlement is one payment instruction. PaymentLink is empty when the
// recipient has no payment address.
type Settlement struct {
	From        string          `json:"from"`
	To          string          `json:"to"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentLink string          `json:"payment_link,omitempty"`
}

type CreateTripRequest struct {
	Name string `json:"name"`
}

type CreateTripResponse struct {
	Trip *Trip `json:"trip"`
}

type GetTripRequest struct {
	TripId string `json:"trip_id"`
}

type GetTripResponse struct {
	Trip         *Trip          `json:"trip"`
	Participants []*Participant `json:"participants"`
}

type ListTripsRequest struct{}

type ListTripsResponse struct {
	Trips []*Trip `json:"trips"`
}

type RegisterParticipantRequest struct {
	TripId         string `json:"trip_id"`
	Name           string `json:"name"`
	PaymentAddress string `json:"payment_address"`
}

type RegisterParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type RecordExpenseRequest struct {
	TripId      string          `json:"trip_id"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Payer       string          `json:"payer"`
	Involved    []string        `json:"involved"`
}

type RecordExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct {
	TripId string `json:"trip_id"`
}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type GetSettlementsRequest struct {
	TripId string `json:"trip_id"`
}

type GetSettlementsResponse struct {
	Balances    []*MemberBalance `json:"balances"`
	Settlements []*Settlement    `json:"settlements"`
	Currency    string           `json:"currency"`
}

// CalculateSettlementsRequest carries a full roster and ledger inline; nothing
// is read from or written to storage.
type CalculateSettlementsRequest struct {
	Participants []*Participant `json:"participants"`
	Expenses     []*Expense     `json:"expenses"`
}

type CalculateSettlementsResponse struct {
	Balances    []*MemberBalance `json:"balances"`
	Settlements []*Settlement    `json:"settlements"`
	Currency    string           `json:"currency"`
}

func (x *GetTripRequest) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}

func (x *RegisterParticipantRequest) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}

func (x *RecordExpenseRequest) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}

func (x *ListExpensesRequest) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}

func (x *GetSettlementsRequest) GetTripId() string {
	if x != nil {
		return x.TripId
	}
	return ""
}
