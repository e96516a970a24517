package store

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/crypto/bcrypt"

	"github.com/roadguard/roadguard-api/schema"
)

var ErrEmailTaken = fmt.Errorf("an account with this email already exists")

// CreateAccount registers an account with a bcrypt-hashed password.
func (s *RoadGuardStore) CreateAccount(email, password, name, phone string, role schema.AccountRole, location schema.Location) (*schema.Account, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if !role.Valid() {
		role = schema.RoleUser
	}

	a := schema.Account{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		PhoneNumber:  phone,
		Role:         role,
		Location:     location,
	}

	if err := s.ormDB.Create(&a).Error; err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	return &a, nil
}

// GetAccount returns the account with the given id
func (s *RoadGuardStore) GetAccount(id string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *RoadGuardStore) GetAccountByEmail(email string) (*schema.Account, error) {
	var a schema.Account
	if err := s.ormDB.Where("email = ?", email).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// ListMechanics returns the directory of mechanic accounts as projections,
// used by clients to pick an inline assignment hint.
func (s *RoadGuardStore) ListMechanics() ([]schema.AccountSummary, error) {
	var accounts []schema.Account
	if err := s.ormDB.Where("role = ?", schema.RoleMechanic).Order("name").Find(&accounts).Error; err != nil {
		return nil, err
	}

	mechanics := make([]schema.AccountSummary, 0, len(accounts))
	for i := range accounts {
		mechanics = append(mechanics, *accounts[i].Summary())
	}
	return mechanics, nil
}
