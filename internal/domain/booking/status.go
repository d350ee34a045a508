package booking

import "github.com/northlightstudio/studio-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusUnconfirmed Status = "unconfirmed"
	StatusConfirmed   Status = "confirmed"
	StatusDenied      Status = "denied"
)

type PaymentStatus string

const (
	PaymentUnpaid      PaymentStatus = "unpaid"
	PaymentDepositPaid PaymentStatus = "deposit paid"
	PaymentPaid        PaymentStatus = "paid"
)

type PaymentMethod string

const (
	MethodNone    PaymentMethod = "none"
	MethodVenmo   PaymentMethod = "venmo"
	MethodCashapp PaymentMethod = "cashapp"
	MethodZelle   PaymentMethod = "zelle"
	MethodCash    PaymentMethod = "cash"
)

// ===============================
// Validations
// ===============================

func IsValidStatus(s string) bool {
	switch Status(s) {
	case StatusUnconfirmed, StatusConfirmed, StatusDenied:
		return true
	}
	return false
}

func IsValidPaymentStatus(s string) bool {
	switch PaymentStatus(s) {
	case PaymentUnpaid, PaymentDepositPaid, PaymentPaid:
		return true
	}
	return false
}

func IsValidPaymentMethod(s string) bool {
	switch PaymentMethod(s) {
	case MethodNone, MethodVenmo, MethodCashapp, MethodZelle, MethodCash:
		return true
	}
	return false
}

// CanTransition checks a status change. Transitions are one-way from
// unconfirmed; setting the current status again is a permitted no-op.
func CanTransition(current, next Status) error {
	if current == next {
		return nil
	}
	if current != StatusUnconfirmed {
		return httperr.ErrBusiness("invalid_state")
	}
	if next != StatusConfirmed && next != StatusDenied {
		return httperr.ErrBusiness("invalid_status")
	}
	return nil
}

func InitialStatus() Status {
	return StatusUnconfirmed
}
