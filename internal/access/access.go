// Package access answers whether a principal may read or mutate a list or
// one of its items. Every check re-reads current ownership from storage.
package access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
)

type listOwnerReader interface {
	GetOwnerID(ctx context.Context, listID uuid.UUID) (uuid.UUID, error)
}

type itemListReader interface {
	GetListID(ctx context.Context, itemID uuid.UUID) (uuid.UUID, error)
}

// Checker evaluates ownership predicates against storage.
type Checker struct {
	lists listOwnerReader
	items itemListReader
}

// NewChecker creates a Checker.
func NewChecker(lists listOwnerReader, items itemListReader) *Checker {
	return &Checker{lists: lists, items: items}
}

// CanViewList reports whether p may read l: the list is public or p owns it.
func CanViewList(l domain.List, p domain.Principal) bool {
	return l.Public || p.Is(l.OwnerID)
}

// IsListOwner reports whether p owns the list. Anonymous principals and
// missing lists yield false without error; only storage failures are returned.
func (c *Checker) IsListOwner(ctx context.Context, listID uuid.UUID, p domain.Principal) (bool, error) {
	if p.IsAnonymous() {
		return false, nil
	}

	ownerID, err := c.lists.GetOwnerID(ctx, listID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("resolve list owner: %w", err)
	}

	return p.Is(ownerID), nil
}

// IsItemOwner resolves the item's list and delegates to IsListOwner.
func (c *Checker) IsItemOwner(ctx context.Context, itemID uuid.UUID, p domain.Principal) (bool, error) {
	if p.IsAnonymous() {
		return false, nil
	}

	listID, err := c.items.GetListID(ctx, itemID)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("resolve item list: %w", err)
	}

	return c.IsListOwner(ctx, listID, p)
}

// RequireListOwner fails with domain.ErrUnauthorized unless p owns the list.
func (c *Checker) RequireListOwner(ctx context.Context, listID uuid.UUID, p domain.Principal) error {
	ok, err := c.IsListOwner(ctx, listID, p)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("list %s: %w", listID, domain.ErrUnauthorized)
	}
	return nil
}

// RequireItemOwner fails with domain.ErrUnauthorized unless p owns the
// item's list. On success it returns that list's id.
func (c *Checker) RequireItemOwner(ctx context.Context, itemID uuid.UUID, p domain.Principal) (uuid.UUID, error) {
	if p.IsAnonymous() {
		return uuid.Nil, fmt.Errorf("item %s: %w", itemID, domain.ErrUnauthorized)
	}

	listID, err := c.items.GetListID(ctx, itemID)
	if errors.Is(err, domain.ErrNotFound) {
		return uuid.Nil, fmt.Errorf("item %s: %w", itemID, domain.ErrUnauthorized)
	}
	if err != nil {
		return uuid.Nil, fmt.Errorf("resolve item list: %w", err)
	}

	if err := c.RequireListOwner(ctx, listID, p); err != nil {
		return uuid.Nil, err
	}
	return listID, nil
}
