package bank

// Bank is a registry of accounts keyed by owner, preserving creation
// order for listings. It composes accounts; it is not one.
type Bank struct {
	accounts map[string]*Account
	order    []string
	opts     []AccountOption
}

// NewBank returns an empty bank. Options (e.g. WithClock) are forwarded
// to every account the bank creates.
func NewBank(opts ...AccountOption) *Bank {
	return &Bank{
		accounts: make(map[string]*Account),
		opts:     opts,
	}
}

// CreateAccount opens and registers an account. One account per owner.
//
// Errors: ErrDuplicateOwner plus NewAccount's validation sentinels.
func (b *Bank) CreateAccount(owner string, typ AccountType, opening float64) (*Account, error) {
	if _, exists := b.accounts[owner]; exists {
		return nil, ErrDuplicateOwner
	}
	a, err := NewAccount(owner, typ, opening, b.opts...)
	if err != nil {
		return nil, err
	}
	b.accounts[owner] = a
	b.order = append(b.order, owner)

	return a, nil
}

// Account looks up an owner's account.
//
// Errors: ErrAccountNotFound.
func (b *Bank) Account(owner string) (*Account, error) {
	a, ok := b.accounts[owner]
	if !ok {
		return nil, ErrAccountNotFound
	}

	return a, nil
}

// TotalAssets sums all balances.
//
// Complexity: O(accounts).
func (b *Bank) TotalAssets() float64 {
	var total float64
	for _, owner := range b.order {
		total += b.accounts[owner].balance
	}

	return total
}

// Accounts lists all accounts in creation order.
func (b *Bank) Accounts() []*Account {
	out := make([]*Account, 0, len(b.order))
	for _, owner := range b.order {
		out = append(out, b.accounts[owner])
	}

	return out
}
