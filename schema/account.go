package schema

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
)

type AccountRole string

const (
	RoleUser     AccountRole = "user"
	RoleMechanic AccountRole = "mechanic"
	RoleAdmin    AccountRole = "admin"
)

func (r AccountRole) Valid() bool {
	return r == RoleUser || r == RoleMechanic || r == RoleAdmin
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func (l Location) Value() (driver.Value, error) {
	return json.Marshal(l)
}

func (l *Location) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed.")
	}
	return json.Unmarshal(source, l)
}

type Account struct {
	ID           uuid.UUID   `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	Email        string      `json:"email" gorm:"unique_index;not null"`
	PasswordHash string      `json:"-"`
	Name         string      `json:"name"`
	PhoneNumber  string      `json:"phone_number"`
	Role         AccountRole `json:"role" sql:"default:'user'"`
	Location     Location    `json:"location" gorm:"type:jsonb" sql:"default '{}'"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// AccountSummary is the projection of an account that is safe to embed
// in responses visible to other parties of a request.
type AccountSummary struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Location Location `json:"location"`
}

func (a *Account) Summary() *AccountSummary {
	return &AccountSummary{
		ID:       a.ID.String(),
		Name:     a.Name,
		Location: a.Location,
	}
}
