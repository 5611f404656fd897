package domain

import (
	"errors"
	"time"
)

// ErrRecipeNotFound covers both a missing id and an ownership mismatch on
// writes, so responses never reveal whether a recipe exists.
var ErrRecipeNotFound = errors.New("recipe not found")

type Recipe struct {
	ID           string
	Title        string
	Ingredients  []string
	Instructions string
	CookingTime  *int // minutes, nil when not provided
	Servings     *int
	ImageURL     *string
	OwnerID      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
