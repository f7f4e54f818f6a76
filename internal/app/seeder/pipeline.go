// Package seeder loads demo users, lists and items through the regular
// services so the seeded data obeys the same rules as API traffic.
package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/ekshore/loot-list/internal/domain"
	"github.com/ekshore/loot-list/internal/service/auth"
	"github.com/ekshore/loot-list/internal/service/item"
	"github.com/ekshore/loot-list/internal/service/list"
)

type accountService interface {
	Register(ctx context.Context, input auth.RegisterInput) (*auth.AuthResult, error)
	Login(ctx context.Context, input auth.LoginInput) (*auth.AuthResult, error)
}

type listCreator interface {
	CreateList(ctx context.Context, p domain.Principal, input list.CreateListInput) (uuid.UUID, error)
}

type itemWriter interface {
	AddItem(ctx context.Context, listID uuid.UUID, p domain.Principal, input item.AddItemInput) (*domain.Item, error)
	MarkPurchased(ctx context.Context, itemID uuid.UUID) (time.Time, error)
}

// Stats counts what a run created.
type Stats struct {
	Users     int
	Lists     int
	Items     int
	Purchased int
}

// Pipeline seeds a Fixture.
type Pipeline struct {
	log      *slog.Logger
	accounts accountService
	lists    listCreator
	items    itemWriter
	cfg      Config
}

// NewPipeline creates a new seeding pipeline.
func NewPipeline(logger *slog.Logger, accounts accountService, lists listCreator, items itemWriter, cfg Config) *Pipeline {
	return &Pipeline{
		log:      logger.With("component", "seeder"),
		accounts: accounts,
		lists:    lists,
		items:    items,
		cfg:      cfg,
	}
}

// Run validates the whole fixture first and then seeds it. Users that already
// exist are logged in instead of registered, so lists are added to them.
// In dry-run mode only validation happens.
func (p *Pipeline) Run(ctx context.Context, f *Fixture) (Stats, error) {
	var stats Stats

	if err := f.Validate(); err != nil {
		return stats, err
	}
	if p.cfg.DryRun {
		p.log.InfoContext(ctx, "dry run: fixture is valid", slog.Int("users", len(f.Users)))
		return stats, nil
	}

	for _, u := range f.Users {
		principal, err := p.account(ctx, u)
		if err != nil {
			return stats, err
		}
		stats.Users++

		for _, l := range u.Lists {
			if err := p.seedList(ctx, principal, l, &stats); err != nil {
				return stats, fmt.Errorf("user %s: %w", u.Email, err)
			}
		}
	}

	p.log.InfoContext(ctx, "seeding completed",
		slog.Int("users", stats.Users),
		slog.Int("lists", stats.Lists),
		slog.Int("items", stats.Items),
		slog.Int("purchased", stats.Purchased),
	)
	return stats, nil
}

func (p *Pipeline) account(ctx context.Context, u FixtureUser) (domain.Principal, error) {
	res, err := p.accounts.Register(ctx, u.registerInput())
	if errors.Is(err, domain.ErrAlreadyExists) {
		p.log.InfoContext(ctx, "user exists, logging in", slog.String("email", u.Email))
		res, err = p.accounts.Login(ctx, auth.LoginInput{Email: u.Email, Password: u.Password})
	}
	if err != nil {
		return domain.Anonymous(), fmt.Errorf("account %s: %w", u.Email, err)
	}
	return domain.NewPrincipal(res.User.ID, res.User.Name), nil
}

func (p *Pipeline) seedList(ctx context.Context, principal domain.Principal, l FixtureList, stats *Stats) error {
	listID, err := p.lists.CreateList(ctx, principal, l.createInput())
	if err != nil {
		return fmt.Errorf("list %q: %w", l.Name, err)
	}
	stats.Lists++

	for _, it := range l.Items {
		created, err := p.items.AddItem(ctx, listID, principal, it.addInput())
		if err != nil {
			return fmt.Errorf("list %q item %q: %w", l.Name, it.Name, err)
		}
		stats.Items++

		if !it.Purchased {
			continue
		}
		if _, err := p.items.MarkPurchased(ctx, created.ID); err != nil {
			return fmt.Errorf("mark %q purchased: %w", it.Name, err)
		}
		stats.Purchased++
	}
	return nil
}
