package models

// Participant is a person registered on a trip.
//
// Participants are created on registration and never mutated or deleted.
type Participant struct {
	// Name identifies the participant within its trip.
	// It must not contain the involved-list delimiter ";".
	Name string

	// PaymentAddress is an external payment-routing identifier such as a UPI
	// handle (e.g., "asha@okaxis"). It is only used to build payment links.
	PaymentAddress string

	// JoinedAt is the Unix timestamp when the participant registered.
	JoinedAt int64
}
