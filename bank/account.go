// Package bank models simple accounts with a transaction history and a
// bank-level registry.
//
// Conventions:
//   - Failures are package sentinel errors matched with errors.Is; no
//     panics, no error strings in return values.
//   - Timestamps come from an injectable clock (WithClock), never from a
//     hidden global source, so histories are reproducible in tests.
//   - Bank holds accounts by composition; an account registry is not a
//     kind of account.
package bank

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrOwnerRequired indicates an empty owner name.
	ErrOwnerRequired = errors.New("bank: owner name required")

	// ErrUnknownAccountType indicates an AccountType outside the enum.
	ErrUnknownAccountType = errors.New("bank: unknown account type")

	// ErrNegativeOpening indicates an opening balance < 0.
	ErrNegativeOpening = errors.New("bank: opening balance must be >= 0")

	// ErrNonPositiveAmount indicates a deposit/withdraw/transfer amount <= 0.
	ErrNonPositiveAmount = errors.New("bank: amount must be positive")

	// ErrInsufficientFunds indicates a withdrawal or transfer beyond the
	// current balance.
	ErrInsufficientFunds = errors.New("bank: insufficient funds")

	// ErrNilAccount indicates a nil transfer destination.
	ErrNilAccount = errors.New("bank: nil account")

	// ErrAccountNotFound indicates an unknown owner in a Bank lookup.
	ErrAccountNotFound = errors.New("bank: account not found")

	// ErrDuplicateOwner indicates a CreateAccount for an owner that
	// already holds an account.
	ErrDuplicateOwner = errors.New("bank: owner already has an account")
)

// AccountType selects the interest schedule.
type AccountType int

const (
	// Checking accrues no interest.
	Checking AccountType = iota

	// Savings accrues the base annual rate.
	Savings

	// MortgageLoan accrues 2× the base annual rate.
	MortgageLoan

	// PrivateLoan accrues 5× the base annual rate.
	PrivateLoan
)

// String returns a stable lowercase type name.
func (t AccountType) String() string {
	switch t {
	case Checking:
		return "checking"
	case Savings:
		return "savings"
	case MortgageLoan:
		return "mortgage-loan"
	case PrivateLoan:
		return "private-loan"
	default:
		return "unknown"
	}
}

// BaseAnnualRate is the reference annual interest rate; each account
// type scales it by a fixed multiplier (see interestMultiplier).
const BaseAnnualRate = 0.02

func (t AccountType) interestMultiplier() float64 {
	switch t {
	case Savings:
		return 1
	case MortgageLoan:
		return 2
	case PrivateLoan:
		return 5
	default:
		return 0
	}
}

func (t AccountType) valid() bool {
	return t >= Checking && t <= PrivateLoan
}

// Transaction is one immutable history entry.
type Transaction struct {
	// Action names the operation: "open", "deposit", "withdraw",
	// "interest", or "transfer to/from <owner>".
	Action string

	// Amount is the money moved by the operation.
	Amount float64

	// Balance is the account balance immediately after the operation.
	Balance float64

	// At is the clock reading when the operation was recorded.
	At time.Time
}

// AccountOption customizes account construction.
type AccountOption func(*Account)

// WithClock replaces the timestamp source (default time.Now). Tests
// inject a fixed clock to get reproducible histories.
func WithClock(now func() time.Time) AccountOption {
	return func(a *Account) {
		if now != nil {
			a.now = now
		}
	}
}

// Account is a single bank account with an append-only transaction log.
// Not safe for concurrent use.
type Account struct {
	owner   string
	typ     AccountType
	balance float64
	log     []Transaction
	now     func() time.Time
}

// NewAccount opens an account for owner with the given type and opening
// balance. The opening balance is the history's first entry.
//
// Errors: ErrOwnerRequired, ErrUnknownAccountType, ErrNegativeOpening.
func NewAccount(owner string, typ AccountType, opening float64, opts ...AccountOption) (*Account, error) {
	if owner == "" {
		return nil, ErrOwnerRequired
	}
	if !typ.valid() {
		return nil, ErrUnknownAccountType
	}
	if opening < 0 {
		return nil, ErrNegativeOpening
	}

	a := &Account{owner: owner, typ: typ, now: time.Now}
	for _, opt := range opts {
		opt(a)
	}
	a.balance = opening
	a.record("open", opening)

	return a, nil
}

// Owner returns the owner name.
func (a *Account) Owner() string { return a.owner }

// Type returns the account type.
func (a *Account) Type() AccountType { return a.typ }

// Balance returns the current balance.
func (a *Account) Balance() float64 { return a.balance }

// Deposit credits amount.
//
// Errors: ErrNonPositiveAmount.
func (a *Account) Deposit(amount float64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	a.balance += amount
	a.record("deposit", amount)

	return nil
}

// Withdraw debits amount.
//
// Errors: ErrNonPositiveAmount, ErrInsufficientFunds.
func (a *Account) Withdraw(amount float64) error {
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if amount > a.balance {
		return fmt.Errorf("withdraw %v with balance %v: %w", amount, a.balance, ErrInsufficientFunds)
	}
	a.balance -= amount
	a.record("withdraw", amount)

	return nil
}

// Transfer moves amount to dst, recording matching entries on both
// sides. Validation happens before any state changes, so a failed
// transfer leaves both accounts untouched.
//
// Errors: ErrNilAccount, ErrNonPositiveAmount, ErrInsufficientFunds.
func (a *Account) Transfer(dst *Account, amount float64) error {
	if dst == nil {
		return ErrNilAccount
	}
	if amount <= 0 {
		return ErrNonPositiveAmount
	}
	if amount > a.balance {
		return fmt.Errorf("transfer %v with balance %v: %w", amount, a.balance, ErrInsufficientFunds)
	}

	a.balance -= amount
	a.record("transfer to "+dst.owner, amount)
	dst.balance += amount
	dst.record("transfer from "+a.owner, amount)

	return nil
}

// ApplyInterest credits one period of interest per the account type's
// schedule (BaseAnnualRate × multiplier) and returns the amount
// credited. Checking accounts accrue nothing and record nothing.
func (a *Account) ApplyInterest() float64 {
	interest := a.balance * BaseAnnualRate * a.typ.interestMultiplier()
	if interest == 0 {
		return 0
	}
	a.balance += interest
	a.record("interest", interest)

	return interest
}

// History returns a copy of the transaction log, oldest first.
func (a *Account) History() []Transaction {
	return append([]Transaction(nil), a.log...)
}

func (a *Account) record(action string, amount float64) {
	a.log = append(a.log, Transaction{
		Action:  action,
		Amount:  amount,
		Balance: a.balance,
		At:      a.now(),
	})
}
