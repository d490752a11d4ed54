package models

// Trip groups one roster of participants with the expenses they share.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string

	// Name is the display name of the trip (e.g., "Goa 2026").
	Name string

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64
}

// Ledger is a consistent snapshot of a trip's roster and expenses, read
// together so that every expense refers to a participant in Participants.
type Ledger struct {
	Trip         Trip
	Participants []Participant // Registration order
	Expenses     []Expense     // Recording order
}

// Names returns the participant names in registration order.
func (l *Ledger) Names() []string {
	names := make([]string, len(l.Participants))
	for i, p := range l.Participants {
		names[i] = p.Name
	}
	return names
}

// Participant looks up a participant by name.
func (l *Ledger) Participant(name string) (Participant, bool) {
	for _, p := range l.Participants {
		if p.Name == name {
			return p, true
		}
	}
	return Participant{}, false
}
