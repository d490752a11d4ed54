// Package tripsplitv1connect wires tripsplit.v1.TripService to Connect
// handlers and clients, in the shape protoc-gen-connect-go would produce.
package tripsplitv1connect

import (
	"context"
	"net/http"
	"strings"

	"connectrpc.com/connect"

	tripsplitv1 "github.com/mmynk/tripsplit/pkg/api/tripsplitv1"
)

// TripServiceName is the fully-qualified name of the TripService service.
const TripServiceName = "tripsplit.v1.TripService"

// DefaultReadMaxBytes caps the size of a request message accepted by the
// handler. Callers may pass their own connect.WithReadMaxBytes to override it.
const DefaultReadMaxBytes = 1 << 20

// Procedure paths, used for routing and in interceptors.
const (
	TripServiceCreateTripProcedure           = "/tripsplit.v1.TripService/CreateTrip"
	TripServiceGetTripProcedure              = "/tripsplit.v1.TripService/GetTrip"
	TripServiceListTripsProcedure            = "/tripsplit.v1.TripService/ListTrips"
	TripServiceRegisterParticipantProcedure  = "/tripsplit.v1.TripService/RegisterParticipant"
	TripServiceRecordExpenseProcedure        = "/tripsplit.v1.TripService/RecordExpense"
	TripServiceListExpensesProcedure         = "/tripsplit.v1.TripService/ListExpenses"
	TripServiceGetSettlementsProcedure       = "/tripsplit.v1.TripService/GetSettlements"
	TripServiceCalculateSettlementsProcedure = "/tripsplit.v1.TripService/CalculateSettlements"
)

// TripServiceHandler is implemented by the server.
type TripServiceHandler interface {
	CreateTrip(context.Context, *connect.Request[tripsplitv1.CreateTripRequest]) (*connect.Response[tripsplitv1.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[tripsplitv1.GetTripRequest]) (*connect.Response[tripsplitv1.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[tripsplitv1.ListTripsRequest]) (*connect.Response[tripsplitv1.ListTripsResponse], error)
	RegisterParticipant(context.Context, *connect.Request[tripsplitv1.RegisterParticipantRequest]) (*connect.Response[tripsplitv1.RegisterParticipantResponse], error)
	RecordExpense(context.Context, *connect.Request[tripsplitv1.RecordExpenseRequest]) (*connect.Response[tripsplitv1.RecordExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[tripsplitv1.ListExpensesRequest]) (*connect.Response[tripsplitv1.ListExpensesResponse], error)
	GetSettlements(context.Context, *connect.Request[tripsplitv1.GetSettlementsRequest]) (*connect.Response[tripsplitv1.GetSettlementsResponse], error)
	CalculateSettlements(context.Context, *connect.Request[tripsplitv1.CalculateSettlementsRequest]) (*connect.Response[tripsplitv1.CalculateSettlementsResponse], error)
}

// TripServiceClient is a client for tripsplit.v1.TripService.
type TripServiceClient interface {
	CreateTrip(context.Context, *connect.Request[tripsplitv1.CreateTripRequest]) (*connect.Response[tripsplitv1.CreateTripResponse], error)
	GetTrip(context.Context, *connect.Request[tripsplitv1.GetTripRequest]) (*connect.Response[tripsplitv1.GetTripResponse], error)
	ListTrips(context.Context, *connect.Request[tripsplitv1.ListTripsRequest]) (*connect.Response[tripsplitv1.ListTripsResponse], error)
	RegisterParticipant(context.Context, *connect.Request[tripsplitv1.RegisterParticipantRequest]) (*connect.Response[tripsplitv1.RegisterParticipantResponse], error)
	RecordExpense(context.Context, *connect.Request[tripsplitv1.RecordExpenseRequest]) (*connect.Response[tripsplitv1.RecordExpenseResponse], error)
	ListExpenses(context.Context, *connect.Request[tripsplitv1.ListExpensesRequest]) (*connect.Response[tripsplitv1.ListExpensesResponse], error)
	GetSettlements(context.Context, *connect.Request[tripsplitv1.GetSettlementsRequest]) (*connect.Response[tripsplitv1.GetSettlementsResponse], error)
	CalculateSettlements(context.Context, *connect.Request[tripsplitv1.CalculateSettlementsRequest]) (*connect.Response[tripsplitv1.CalculateSettlementsResponse], error)
}

// NewTripServiceHandler builds an HTTP handler from the service implementation.
// It returns the path on which to mount the handler and the handler itself.
func NewTripServiceHandler(svc TripServiceHandler, opts ...connect.HandlerOption) (string, http.Handler) {
	opts = append([]connect.HandlerOption{
		connect.WithCodec(jsonCodec{}),
		connect.WithReadMaxBytes(DefaultReadMaxBytes),
	}, opts...)

	createTrip := connect.NewUnaryHandler(TripServiceCreateTripProcedure, svc.CreateTrip, opts...)
	getTrip := connect.NewUnaryHandler(TripServiceGetTripProcedure, svc.GetTrip, opts...)
	listTrips := connect.NewUnaryHandler(TripServiceListTripsProcedure, svc.ListTrips, opts...)
	registerParticipant := connect.NewUnaryHandler(TripServiceRegisterParticipantProcedure, svc.RegisterParticipant, opts...)
	recordExpense := connect.NewUnaryHandler(TripServiceRecordExpenseProcedure, svc.RecordExpense, opts...)
	listExpenses := connect.NewUnaryHandler(TripServiceListExpensesProcedure, svc.ListExpenses, opts...)
	getSettlements := connect.NewUnaryHandler(TripServiceGetSettlementsProcedure, svc.GetSettlements, opts...)
	calculateSettlements := connect.NewUnaryHandler(TripServiceCalculateSettlementsProcedure, svc.CalculateSettlements, opts...)

	return "/" + TripServiceName + "/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case TripServiceCreateTripProcedure:
			createTrip.ServeHTTP(w, r)
		case TripServiceGetTripProcedure:
			getTrip.ServeHTTP(w, r)
		case TripServiceListTripsProcedure:
			listTrips.ServeHTTP(w, r)
		case TripServiceRegisterParticipantProcedure:
			registerParticipant.ServeHTTP(w, r)
		case TripServiceRecordExpenseProcedure:
			recordExpense.ServeHTTP(w, r)
		case TripServiceListExpensesProcedure:
			listExpenses.ServeHTTP(w, r)
		case TripServiceGetSettlementsProcedure:
			getSettlements.ServeHTTP(w, r)
		case TripServiceCalculateSettlementsProcedure:
			calculateSettlements.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

type tripServiceClient struct {
	createTrip           *connect.Client[tripsplitv1.CreateTripRequest, tripsplitv1.CreateTripResponse]
	getTrip              *connect.Client[tripsplitv1.GetTripRequest, tripsplitv1.GetTripResponse]
	listTrips            *connect.Client[tripsplitv1.ListTripsRequest, tripsplitv1.ListTripsResponse]
	registerParticipant  *connect.Client[tripsplitv1.RegisterParticipantRequest, tripsplitv1.RegisterParticipantResponse]
	recordExpense        *connect.Client[tripsplitv1.RecordExpenseRequest, tripsplitv1.RecordExpenseResponse]
	listExpenses         *connect.Client[tripsplitv1.ListExpensesRequest, tripsplitv1.ListExpensesResponse]
	getSettlements       *connect.Client[tripsplitv1.GetSettlementsRequest, tripsplitv1.GetSettlementsResponse]
	calculateSettlements *connect.Client[tripsplitv1.CalculateSettlementsRequest, tripsplitv1.CalculateSettlementsResponse]
}

// NewTripServiceClient constructs a client for tripsplit.v1.TripService.
// baseURL is the server root, e.g. http://localhost:8080.
func NewTripServiceClient(httpClient connect.HTTPClient, baseURL string, opts ...connect.ClientOption) TripServiceClient {
	baseURL = strings.TrimRight(baseURL, "/")
	opts = append([]connect.ClientOption{connect.WithCodec(jsonCodec{})}, opts...)
	return &tripServiceClient{
		createTrip: connect.NewClient[tripsplitv1.CreateTripRequest, tripsplitv1.CreateTripResponse](
			httpClient, baseURL+TripServiceCreateTripProcedure, opts...),
		getTrip: connect.NewClient[tripsplitv1.GetTripRequest, tripsplitv1.GetTripResponse](
			httpClient, baseURL+TripServiceGetTripProcedure, opts...),
		listTrips: connect.NewClient[tripsplitv1.ListTripsRequest, tripsplitv1.ListTripsResponse](
			httpClient, baseURL+TripServiceListTripsProcedure, opts...),
		registerParticipant: connect.NewClient[tripsplitv1.RegisterParticipantRequest, tripsplitv1.RegisterParticipantResponse](
			httpClient, baseURL+TripServiceRegisterParticipantProcedure, opts...),
		recordExpense: connect.NewClient[tripsplitv1.RecordExpenseRequest, tripsplitv1.RecordExpenseResponse](
			httpClient, baseURL+TripServiceRecordExpenseProcedure, opts...),
		listExpenses: connect.NewClient[tripsplitv1.ListExpensesRequest, tripsplitv1.ListExpensesResponse](
			httpClient, baseURL+TripServiceListExpensesProcedure, opts...),
		getSettlements: connect.NewClient[tripsplitv1.GetSettlementsRequest, tripsplitv1.GetSettlementsResponse](
			httpClient, baseURL+TripServiceGetSettlementsProcedure, opts...),
		calculateSettlements: connect.NewClient[tripsplitv1.CalculateSettlementsRequest, tripsplitv1.CalculateSettlementsResponse](
			httpClient, baseURL+TripServiceCalculateSettlementsProcedure, opts...),
	}
}

func (c *tripServiceClient) CreateTrip(ctx context.Context, req *connect.Request[tripsplitv1.CreateTripRequest]) (*connect.Response[tripsplitv1.CreateTripResponse], error) {
	return c.createTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) GetTrip(ctx context.Context, req *connect.Request[tripsplitv1.GetTripRequest]) (*connect.Response[tripsplitv1.GetTripResponse], error) {
	return c.getTrip.CallUnary(ctx, req)
}

func (c *tripServiceClient) ListTrips(ctx context.Context, req *connect.Request[tripsplitv1.ListTripsRequest]) (*connect.Response[tripsplitv1.ListTripsResponse], error) {
	return c.listTrips.CallUnary(ctx, req)
}

func (c *tripServiceClient) RegisterParticipant(ctx context.Context, req *connect.Request[tripsplitv1.RegisterParticipantRequest]) (*connect.Response[tripsplitv1.RegisterParticipantResponse], error) {
	return c.registerParticipant.CallUnary(ctx, req)
}

func (c *tripServiceClient) RecordExpense(ctx context.Context, req *connect.Request[tripsplitv1.RecordExpenseRequest]) (*connect.Response[tripsplitv1.RecordExpenseResponse], error) {
	return c.recordExpense.CallUnary(ctx, req)
}

func (c *tripServiceClient) ListExpenses(ctx context.Context, req *connect.Request[tripsplitv1.ListExpensesRequest]) (*connect.Response[tripsplitv1.ListExpensesResponse], error) {
	return c.listExpenses.CallUnary(ctx, req)
}

func (c *tripServiceClient) GetSettlements(ctx context.Context, req *connect.Request[tripsplitv1.GetSettlementsRequest]) (*connect.Response[tripsplitv1.GetSettlementsResponse], error) {
	return c.getSettlements.CallUnary(ctx, req)
}

func (c *tripServiceClient) CalculateSettlements(ctx context.Context, req *connect.Request[tripsplitv1.CalculateSettlementsRequest]) (*connect.Response[tripsplitv1.CalculateSettlementsResponse], error) {
	return c.calculateSettlements.CallUnary(ctx, req)
}
