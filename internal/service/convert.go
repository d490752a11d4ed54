package service

import (
	"strings"

	"github.com/mmynk/tripsplit/internal/models"
	"github.com/mmynk/tripsplit/internal/settlement"
	pb "github.com/mmynk/tripsplit/pkg/api/tripsplitv1"
)

func tripToProto(trip *models.Trip) *pb.Trip {
	return &pb.Trip{
		Id:        trip.ID,
		Name:      trip.Name,
		CreatedAt: trip.CreatedAt,
	}
}

func participantToProto(p models.Participant) *pb.Participant {
	return &pb.Participant{
		Name:           p.Name,
		PaymentAddress: p.PaymentAddress,
	}
}

func participantsToProto(participants []models.Participant) []*pb.Participant {
	out := make([]*pb.Participant, len(participants))
	for i, p := range participants {
		out[i] = participantToProto(p)
	}
	return out
}

func expenseToProto(e models.Expense) *pb.Expense {
	return &pb.Expense{
		Id:          e.ID,
		Description: e.Description,
		Amount:      e.Amount,
		Payer:       e.Payer,
		Involved:    e.Involved,
		CreatedAt:   e.CreatedAt,
	}
}

func expenseToSettlement(e models.Expense) settlement.Expense {
	return settlement.Expense{
		Description: e.Description,
		Amount:      e.Amount,
		Payer:       e.Payer,
		Involved:    e.Involved,
	}
}

// rosterList returns participant names in roster order.
func rosterList(participants []models.Participant) []string {
	names := make([]string, len(participants))
	for i, p := range participants {
		names[i] = p.Name
	}
	return names
}

// rosterNames returns the set of participant names.
func rosterNames(participants []models.Participant) map[string]bool {
	set := make(map[string]bool, len(participants))
	for _, p := range participants {
		set[p.Name] = true
	}
	return set
}

// trimNames trims each name and drops blanks.
func trimNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}
