package user

import "time"

// User carries the identity referenced by property owners and chat members.
// Account management itself lives outside this service.
type User struct {
	ID        uint      `json:"user_id" gorm:"primaryKey;column:user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name,omitempty"`
	Email     string    `json:"email,omitempty" gorm:"uniqueIndex"`
	CreatedAt time.Time `json:"createdAt"`
}

func (User) TableName() string {
	return "users"
}
