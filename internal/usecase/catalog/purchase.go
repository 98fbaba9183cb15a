package catalog

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/kailas-cloud/bonfire/internal/domain"
	"github.com/kailas-cloud/bonfire/internal/logger"
)

// Purchase buys one item for one person.
//
// Purchases by the same person run one at a time, from the balance read
// through the OWNS edge write. The transaction record and the balance
// deduction are authoritative and land together: a failed deduction removes
// the transaction again. The OWNS edge is written last; if that fails the
// receipt carries a graph_sync_failed warning and the purchase still stands.
func (s *Service) Purchase(ctx context.Context, req domain.PurchaseRequest) (domain.Receipt, error) {
	if err := req.Validate(); err != nil {
		return domain.Receipt{}, err
	}

	unlock := s.wallets.lock(req.PersonID)
	defer unlock()

	person, err := getOne(ctx, s.persons, "person", req.PersonID)
	if err != nil {
		return domain.Receipt{}, err
	}
	item, err := getOne(ctx, s.items, "item", req.ItemID)
	if err != nil {
		return domain.Receipt{}, err
	}

	amount := item.Price
	if req.AmountPaid != nil {
		amount = *req.AmountPaid
	}

	owned, err := s.graph.Owns(ctx, person.ID, item.ID)
	if err != nil {
		return domain.Receipt{}, fmt.Errorf("check ownership: %w", err)
	}
	if owned {
		return domain.Receipt{}, fmt.Errorf("%q already in library: %w", item.Title, domain.ErrAlreadyOwned)
	}
	if person.Balance < amount {
		return domain.Receipt{}, fmt.Errorf("need %.2f, have %.2f: %w", amount, person.Balance, domain.ErrInsufficientFunds)
	}

	tx := domain.Transaction{PersonID: person.ID, ItemID: item.ID, AmountPaid: amount}
	if err := s.transactions.Create(ctx, &tx); err != nil {
		return domain.Receipt{}, fmt.Errorf("record transaction: %w", err)
	}

	balance := roundCents(person.Balance - amount)
	if _, err := s.persons.Update(ctx, person.ID, domain.PersonPatch{Balance: &balance}); err != nil {
		err = fmt.Errorf("deduct balance: %w", err)
		if _, derr := s.transactions.Delete(ctx, tx.ID); derr != nil {
			logger.FromContext(ctx).Error("purchase rollback failed",
				zap.String("transaction_id", tx.ID),
				zap.Error(derr),
			)
			return domain.Receipt{}, errors.Join(err, fmt.Errorf("remove transaction %s: %w", tx.ID, derr))
		}
		return domain.Receipt{}, err
	}

	receipt := domain.Receipt{Transaction: tx, NewBalance: balance}
	if err := s.graph.MergeOwnership(ctx, person.ID, item.ID, tx.CreatedAt); err != nil {
		s.graphWarning(ctx, &receipt.Warnings, "purchase", err)
	}
	return receipt, nil
}

func (s *Service) GetTransaction(ctx context.Context, id string) (domain.Transaction, error) {
	return getOne(ctx, s.transactions, "transaction", id)
}

func (s *Service) ListTransactions(ctx context.Context, limit, offset int) (domain.Page[domain.Transaction], error) {
	return page(ctx, s, s.transactions, limit, offset)
}

// RevokeOwnership removes the OWNS edge without touching transaction history.
func (s *Service) RevokeOwnership(ctx context.Context, personID, itemID string) error {
	if err := domain.ValidateIDs([]string{personID, itemID}); err != nil {
		return err
	}
	if err := s.graph.DeleteOwnership(ctx, personID, itemID); err != nil {
		return fmt.Errorf("delete ownership: %w", err)
	}
	return nil
}
