package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is externally managed reference data; this service never
// creates or mutates rows outside of test seeding.
type Customer struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Name      string    `gorm:"column:name;not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null;column:email" json:"email"`
	Age       *int      `gorm:"column:age" json:"age,omitempty"`
	Location  string    `gorm:"column:location" json:"location,omitempty"`
	Gender    string    `gorm:"column:gender" json:"gender,omitempty"`
	CreatedAt time.Time `gorm:"not null;default:now()" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;default:now()" json:"updated_at"`
}

func (Customer) TableName() string { return "customers" }
