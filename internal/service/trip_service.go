package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"
	"github.com/shopspring/decimal"

	"github.com/mmynk/tripsplit/internal/metrics"
	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/paylink"
	"github.com/mmynk/tripsplit/internal/settlement"
	"github.com/mmynk/tripsplit/internal/storage"
	pb "github.com/mmynk/tripsplit/pkg/api/tripsplitv1"
	"github.com/mmynk/tripsplit/pkg/api/tripsplitv1/tripsplitv1connect"
)

// Ensure TripService implements the Connect handler interface
var _ tripsplitv1connect.TripServiceHandler = (*TripService)(nil)

// TripService implements the Connect TripService
type TripService struct {
	store     storage.Store
	tolerance decimal.Decimal
	links     paylink.Builder
	metrics   *metrics.Metrics
}

// Option configures a TripService.
type Option func(*TripService)

// WithTolerance sets the balance magnitude treated as settled.
func WithTolerance(tolerance decimal.Decimal) Option {
	return func(s *TripService) { s.tolerance = tolerance }
}

// WithPaymentLinks sets the builder used for settlement payment links.
func WithPaymentLinks(b paylink.Builder) Option {
	return func(s *TripService) { s.links = b }
}

// WithMetrics records settlement computations on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *TripService) { s.metrics = m }
}

// NewTripService creates a new TripService with the given storage backend.
func NewTripService(store storage.Store, opts ...Option) *TripService {
	s := &TripService{
		store:     store,
		tolerance: settlement.DefaultTolerance,
		links:     paylink.NewBuilder("", ""),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateTrip creates a new trip.
func (s *TripService) CreateTrip(ctx context.Context, req *connect.Request[pb.CreateTripRequest]) (*connect.Response[pb.CreateTripResponse], error) {
	slog.Info("CreateTrip request received", "name", req.Msg.Name)

	trip := &models.Trip{Name: strings.TrimSpace(req.Msg.Name)}

	// Save to storage (generates ID, name and CreatedAt)
	if err := s.store.CreateTrip(ctx, trip); err != nil {
		slog.Error("CreateTrip failed", "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Trip created", "trip_id", trip.ID)

	return connect.NewResponse(&pb.CreateTripResponse{Trip: tripToProto(trip)}), nil
}

// GetTrip retrieves a trip and its roster.
func (s *TripService) GetTrip(ctx context.Context, req *connect.Request[pb.GetTripRequest]) (*connect.Response[pb.GetTripResponse], error) {
	tripID := req.Msg.TripId
	slog.Info("GetTrip request received", "trip_id", tripID)

	if tripID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("trip_id required"))
	}

	trip, err := s.store.GetTrip(ctx, tripID)
	if err != nil {
		slog.Error("GetTrip failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	participants, err := s.store.ListParticipants(ctx, tripID)
	if err != nil {
		slog.Error("GetTrip failed - could not list participants", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.GetTripResponse{
		Trip:         tripToProto(trip),
		Participants: participantsToProto(participants),
	}), nil
}

// ListTrips retrieves all trips.
func (s *TripService) ListTrips(ctx context.Context, req *connect.Request[pb.ListTripsRequest]) (*connect.Response[pb.ListTripsResponse], error) {
	slog.Info("ListTrips request received")

	trips, err := s.store.ListTrips(ctx)
	if err != nil {
		slog.Error("ListTrips failed", "error", err)
		return nil, toConnectError(err)
	}

	protoTrips := make([]*pb.Trip, len(trips))
	for i, trip := range trips {
		protoTrips[i] = tripToProto(trip)
	}

	slog.Info("ListTrips successful", "count", len(trips))

	return connect.NewResponse(&pb.ListTripsResponse{Trips: protoTrips}), nil
}

// RegisterParticipant adds a person to a trip's roster.
func (s *TripService) RegisterParticipant(ctx context.Context, req *connect.Request[pb.RegisterParticipantRequest]) (*connect.Response[pb.RegisterParticipantResponse], error) {
	tripID := req.Msg.TripId
	name := strings.TrimSpace(req.Msg.Name)
	slog.Info("RegisterParticipant request received", "trip_id", tripID, "name", name)

	if tripID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("trip_id required"))
	}
	// Uniqueness is enforced by the store; only the name shape is checked here
	if err := settlement.ValidateParticipant(name, nil); err != nil {
		return nil, toConnectError(err)
	}

	participant := &models.Participant{
		Name:           name,
		PaymentAddress: strings.TrimSpace(req.Msg.PaymentAddress),
	}
	if err := s.store.AddParticipant(ctx, tripID, participant); err != nil {
		slog.Error("RegisterParticipant failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Participant registered", "trip_id", tripID, "name", name)

	return connect.NewResponse(&pb.RegisterParticipantResponse{
		Participant: participantToProto(*participant),
	}), nil
}

// RecordExpense validates an expense against the trip's roster and stores it.
func (s *TripService) RecordExpense(ctx context.Context, req *connect.Request[pb.RecordExpenseRequest]) (*connect.Response[pb.RecordExpenseResponse], error) {
	tripID := req.Msg.TripId
	slog.Info("RecordExpense request received",
		"trip_id", tripID,
		"payer", req.Msg.Payer,
		"involved_count", len(req.Msg.Involved),
	)

	if tripID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("trip_id required"))
	}

	roster, err := s.store.ListParticipants(ctx, tripID)
	if err != nil {
		slog.Error("RecordExpense failed - could not list participants", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}
	if len(roster) == 0 {
		if _, err := s.store.GetTrip(ctx, tripID); err != nil {
			return nil, toConnectError(err)
		}
	}

	expense := &models.Expense{
		TripID:      tripID,
		Description: strings.TrimSpace(req.Msg.Description),
		Amount:      req.Msg.Amount,
		Payer:       strings.TrimSpace(req.Msg.Payer),
		Involved:    trimNames(req.Msg.Involved),
	}

	if err := settlement.ValidateExpense(expenseToSettlement(*expense), rosterNames(roster)); err != nil {
		slog.Warn("RecordExpense rejected", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("RecordExpense failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("Expense recorded", "trip_id", tripID, "expense_id", expense.ID, "amount", expense.Amount)

	return connect.NewResponse(&pb.RecordExpenseResponse{Expense: expenseToProto(*expense)}), nil
}

// ListExpenses returns a trip's expenses in recording order.
func (s *TripService) ListExpenses(ctx context.Context, req *connect.Request[pb.ListExpensesRequest]) (*connect.Response[pb.ListExpensesResponse], error) {
	tripID := req.Msg.TripId
	slog.Info("ListExpenses request received", "trip_id", tripID)

	if tripID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("trip_id required"))
	}
	if _, err := s.store.GetTrip(ctx, tripID); err != nil {
		return nil, toConnectError(err)
	}

	expenses, err := s.store.ListExpenses(ctx, tripID)
	if err != nil {
		slog.Error("ListExpenses failed", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	protoExpenses := make([]*pb.Expense, len(expenses))
	for i, e := range expenses {
		protoExpenses[i] = expenseToProto(e)
	}

	return connect.NewResponse(&pb.ListExpensesResponse{Expenses: protoExpenses}), nil
}

// GetSettlements computes balances and settlement instructions for a trip
// from one consistent snapshot of its roster and expenses.
func (s *TripService) GetSettlements(ctx context.Context, req *connect.Request[pb.GetSettlementsRequest]) (*connect.Response[pb.GetSettlementsResponse], error) {
	tripID := req.Msg.TripId
	slog.Info("GetSettlements request received", "trip_id", tripID)

	if tripID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, fmt.Errorf("trip_id required"))
	}

	ledger, err := s.store.Snapshot(ctx, tripID)
	if err != nil {
		slog.Error("GetSettlements failed - could not read ledger", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	balances, settlements, err := s.settle(ledger.Participants, ledger.Expenses)
	if err != nil {
		slog.Error("GetSettlements failed - calculation error", "trip_id", tripID, "error", err)
		return nil, toConnectError(err)
	}

	slog.Info("GetSettlements successful",
		"trip_id", tripID,
		"expenses_count", len(ledger.Expenses),
		"members_count", len(balances),
		"settlements_count", len(settlements),
	)

	return connect.NewResponse(&pb.GetSettlementsResponse{
		Balances:    balances,
		Settlements: settlements,
		Currency:    s.links.Currency,
	}), nil
}

// CalculateSettlements runs the settlement engine on an inline roster and
// ledger without touching storage.
func (s *TripService) CalculateSettlements(ctx context.Context, req *connect.Request[pb.CalculateSettlementsRequest]) (*connect.Response[pb.CalculateSettlementsResponse], error) {
	slog.Info("CalculateSettlements request received",
		"participants_count", len(req.Msg.Participants),
		"expenses_count", len(req.Msg.Expenses),
	)

	participants := make([]models.Participant, 0, len(req.Msg.Participants))
	for _, p := range req.Msg.Participants {
		if p == nil {
			continue
		}
		participants = append(participants, models.Participant{
			Name:           strings.TrimSpace(p.Name),
			PaymentAddress: strings.TrimSpace(p.PaymentAddress),
		})
	}
	expenses := make([]models.Expense, 0, len(req.Msg.Expenses))
	for _, e := range req.Msg.Expenses {
		if e == nil {
			continue
		}
		expenses = append(expenses, models.Expense{
			Description: e.Description,
			Amount:      e.Amount,
			Payer:       strings.TrimSpace(e.Payer),
			Involved:    trimNames(e.Involved),
		})
	}

	for i, p := range participants {
		if err := settlement.ValidateParticipant(p.Name, rosterList(participants[:i])); err != nil {
			return nil, toConnectError(err)
		}
	}

	balances, settlements, err := s.settle(participants, expenses)
	if err != nil {
		slog.Warn("CalculateSettlements rejected", "error", err)
		return nil, toConnectError(err)
	}

	return connect.NewResponse(&pb.CalculateSettlementsResponse{
		Balances:    balances,
		Settlements: settlements,
		Currency:    s.links.Currency,
	}), nil
}

// settle runs the engine and attaches a payment link to each instruction.
func (s *TripService) settle(participants []models.Participant, expenses []models.Expense) ([]*pb.MemberBalance, []*pb.Settlement, error) {
	calcExpenses := make([]settlement.Expense, len(expenses))
	for i, e := range expenses {
		calcExpenses[i] = expenseToSettlement(e)
	}

	result, err := settlement.Compute(rosterList(participants), calcExpenses, s.tolerance)
	if err != nil {
		s.metrics.ObserveSettlementError()
		return nil, nil, err
	}
	s.metrics.ObserveSettlement(len(result.Edges))

	addresses := make(map[string]string, len(participants))
	for _, p := range participants {
		addresses[p.Name] = p.PaymentAddress
	}

	pbBalances := make([]*pb.MemberBalance, len(result.Balances))
	for i, bal := range result.Balances {
		pbBalances[i] = &pb.MemberBalance{
			MemberName: bal.MemberName,
			NetBalance: bal.NetBalance,
			TotalPaid:  bal.TotalPaid,
			TotalOwed:  bal.TotalOwed,
		}
	}

	pbSettlements := make([]*pb.Settlement, len(result.Edges))
	for i, edge := range result.Edges {
		slog.Debug("Settlement instruction",
			"from", edge.From,
			"to", edge.To,
			"amount", edge.Amount.StringFixed(2),
		)
		pbSettlements[i] = &pb.Settlement{
			From:        edge.From,
			To:          edge.To,
			Amount:      edge.Amount,
			PaymentLink: s.links.Link(addresses[edge.To], edge.To, edge.Amount),
		}
	}

	return pbBalances, pbSettlements, nil
}
