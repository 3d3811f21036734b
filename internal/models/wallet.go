package models

import (
	"fmt"
	"time"
)

// CustomReward is a user-defined redeemable item paid for with detox coins.
// Coins are a derived currency, not a stored balance.
type CustomReward struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Cost         int        `json:"cost"` // coins
	Description  string     `json:"description,omitempty"`
	Redeemed     bool       `json:"redeemed"`
	RedeemedDate *time.Time `json:"redeemed_date,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func (r *CustomReward) Validate() error {
	if r.Title == "" {
		return fmt.Errorf("reward title cannot be empty")
	}
	if r.Cost <= 0 {
		return fmt.Errorf("reward cost must be a positive number of coins")
	}
	return nil
}
