package service

import "github.com/Matousse/Rebel-sub000/internal/proof/model"

// PaymentGate applies the first-free pricing policy of a lineage.
type PaymentGate struct {
	fee uint64
}

// NewPaymentGate returns a gate charging fee for every version after the
// first. A zero fee falls back to DefaultFixedFee.
func NewPaymentGate(fee uint64) PaymentGate {
	if fee == 0 {
		fee = DefaultFixedFee
	}
	return PaymentGate{fee: fee}
}

// Fee returns the fixed fee for paid versions.
func (g PaymentGate) Fee() uint64 {
	return g.fee
}

// Terms returns the initial payment state for a new version.
func (g PaymentGate) Terms(version uint32) (isPaid bool, cost uint64) {
	if version == 1 {
		return true, 0
	}
	return false, g.fee
}

// CanAnchor reports whether p may be submitted for anchoring.
func (g PaymentGate) CanAnchor(p model.Proof) bool {
	return p.IsPaid
}
