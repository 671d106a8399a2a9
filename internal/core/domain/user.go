package domain

import "time"

// User is the owner of accounts, categories, transactions, budgets and debts.
type User struct {
	UserID         string    `json:"userID"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	FullName       string    `json:"fullName"`
	CreatedAt      time.Time `json:"createdAt"`
}
