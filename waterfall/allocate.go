package waterfall

import (
	"math"

	"github.com/TimothyAndrewChowles/Mortgage-Backed-Security/config"
)

// AllocateLosses writes credit losses down the capital structure bottom-up:
// the least senior tranche absorbs first, then the next, walking toward the
// senior slice until the loss is exhausted (to within epsilon).
//
// Loss beyond total tranche capacity is absorbed silently — the structure is
// wiped out and the excess has nowhere to go. Losses must be applied before
// any payment allocation in the same month.
func AllocateLosses(loss float64, tranches []Tranche) {
	eps := config.GetConfig().Epsilon
	for i := len(tranches) - 1; i >= 0; i-- {
		hit := math.Min(tranches[i].Balance, loss)
		tranches[i].Balance -= hit
		loss -= hit
		if loss <= eps {
			break
		}
	}
}

// PayInterest pays tranche coupons top-down from the available interest
// cash, each tranche capped at its accrual. Shortfalls are not carried
// forward as arrears; the unpaid amount is simply lost to the tranche for
// the month. The unspent remainder is returned so it can roll into the
// principal bucket.
//
// Balances are not touched. paid is indexed like tranches.
func PayInterest(available float64, tranches []Tranche) (paid []float64, leftover float64) {
	paid = make([]float64, len(tranches))
	for i := range tranches {
		p := math.Min(tranches[i].InterestDue(), available)
		available -= p
		paid[i] = p
	}
	return paid, available
}

// PayPrincipal distributes the principal bucket strictly sequentially: the
// most senior outstanding tranche is paid down in full before any junior
// tranche receives a unit. Tranche balances are reduced in place.
//
// paid is indexed like tranches.
func PayPrincipal(available float64, tranches []Tranche) (paid []float64) {
	paid = make([]float64, len(tranches))
	for i := range tranches {
		p := math.Min(tranches[i].Balance, available)
		tranches[i].Balance -= p
		available -= p
		paid[i] = p
	}
	return paid
}
