package seeder

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"

	"github.com/ekshore/loot-list/internal/domain"
	"github.com/ekshore/loot-list/internal/service/auth"
	"github.com/ekshore/loot-list/internal/service/item"
	"github.com/ekshore/loot-list/internal/service/list"
)

// Fixture is the demo data set: users, their lists and the items on them.
type Fixture struct {
	Users []FixtureUser `yaml:"users"`
}

type FixtureUser struct {
	Email    string        `yaml:"email"`
	Name     string        `yaml:"name"`
	Password string        `yaml:"password"`
	Lists    []FixtureList `yaml:"lists"`
}

type FixtureList struct {
	Name    string        `yaml:"name"`
	Summary string        `yaml:"summary"`
	Public  bool          `yaml:"public"`
	Items   []FixtureItem `yaml:"items"`
}

type FixtureItem struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	URL         *string `yaml:"url"`
	Purchased   bool    `yaml:"purchased"`
}

// LoadFixture parses a YAML fixture file.
func LoadFixture(path string) (*Fixture, error) {
	var f Fixture
	if err := cleanenv.ReadConfig(path, &f); err != nil {
		return nil, fmt.Errorf("seeder fixture: read %s: %w", path, err)
	}
	return &f, nil
}

func (u FixtureUser) registerInput() auth.RegisterInput {
	return auth.RegisterInput{Email: u.Email, Name: u.Name, Password: u.Password}
}

func (l FixtureList) createInput() list.CreateListInput {
	return list.CreateListInput{Name: l.Name, Summary: l.Summary, Public: l.Public}
}

func (i FixtureItem) addInput() item.AddItemInput {
	return item.AddItemInput{Name: i.Name, Description: i.Description, URL: i.URL}
}

// Validate runs every input through the same rules the services apply and
// reports all failures at once, prefixed with their position in the file.
func (f *Fixture) Validate() error {
	var errs []error
	for ui, u := range f.Users {
		if err := u.registerInput().Validate(); err != nil {
			errs = append(errs, fmt.Errorf("users[%d]: %w", ui, err))
		}
		for li, l := range u.Lists {
			if err := l.createInput().Validate(); err != nil {
				errs = append(errs, fmt.Errorf("users[%d].lists[%d]: %w", ui, li, err))
			}
			for ii, it := range l.Items {
				if err := it.addInput().Validate(); err != nil {
					errs = append(errs, fmt.Errorf("users[%d].lists[%d].items[%d]: %w", ui, li, ii, err))
				}
			}
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", domain.ErrValidation, errors.Join(errs...))
}
