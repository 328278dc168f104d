package model

import "slices"

type Status string

const (
	StatusDraft          Status = "DRAFT"
	StatusPendingPayment Status = "PENDING_PAYMENT"
	StatusConfirmed      Status = "CONFIRMED"
	StatusCancelled      Status = "CANCELLED"
	StatusCompleted      Status = "COMPLETED"
)

var transitions = map[Status][]Status{
	StatusDraft:          {StatusPendingPayment, StatusConfirmed, StatusCancelled},
	StatusPendingPayment: {StatusConfirmed, StatusCancelled},
	StatusConfirmed:      {StatusCompleted, StatusCancelled},
}

// Statuses lists every status in lifecycle order.
func Statuses() []Status {
	return []Status{StatusDraft, StatusPendingPayment, StatusConfirmed, StatusCancelled, StatusCompleted}
}

// HoldingStatuses are the statuses that occupy a room on their check-in date.
func HoldingStatuses() []Status {
	return []Status{StatusConfirmed, StatusPendingPayment}
}

func (s Status) IsValid() bool {
	return slices.Contains(Statuses(), s)
}

// IsTerminal reports whether no transition leaves s.
func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}

func (s Status) HoldsRoom() bool {
	return slices.Contains(HoldingStatuses(), s)
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// Staying in the same status is always allowed.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}

	return slices.Contains(transitions[s], next)
}

func (s Status) String() string {
	return string(s)
}

// PaymentOutcome is the gateway verdict settled against a booking.
type PaymentOutcome string

const (
	PaymentSucceeded PaymentOutcome = "succeeded"
	PaymentFailed    PaymentOutcome = "failed"
)
