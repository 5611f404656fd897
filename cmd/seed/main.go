// seed inserts demo users and recipes into the local dev database.
// Run: DATABASE_URL=... go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/erkebulan/recipeshare/internal/auth"
	"github.com/erkebulan/recipeshare/internal/domain"
	"github.com/erkebulan/recipeshare/internal/infrastructure/postgres"
)

const seedPassword = "seed-password-123"

type userSpec struct {
	username string
	email    string
}

type recipeSpec struct {
	owner        string // username
	title        string
	ingredients  []string
	instructions string
	cookingTime  int
	servings     int
}

var users = []userSpec{
	{"alice", "alice@seed.local"},
	{"bob", "bob@seed.local"},
}

var recipes = []recipeSpec{
	{"alice", "Tomato Soup", []string{"tomatoes", "onion", "vegetable stock", "basil"},
		"Sweat the onion, add chopped tomatoes and stock, simmer 25 minutes, blend and finish with basil.", 35, 4},
	{"alice", "Garlic Flatbread", []string{"flour", "yogurt", "garlic", "butter"},
		"Mix flour and yogurt into a dough, rest 20 minutes, roll thin and fry. Brush with garlic butter.", 40, 6},
	{"bob", "Beef Plov", []string{"beef", "rice", "carrots", "onion", "cumin"},
		"Brown the beef, layer carrots and onion, add rice and water, cook covered until the rice is tender.", 90, 8},
	{"bob", "Cold Noodle Salad", []string{"noodles", "cucumber", "soy sauce", "sesame oil"},
		"Cook and chill the noodles, toss with sliced cucumber and the dressing, rest 10 minutes before serving.", 20, 2},
}

func main() {
	ctx := context.Background()

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL is required")
	}

	if err := postgres.RunMigrations(ctx, databaseURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	pool, err := postgres.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)

	ownerIDs := make(map[string]string, len(users))
	for _, u := range users {
		hash, err := auth.HashPassword(seedPassword)
		if err != nil {
			log.Fatalf("hash password: %v", err)
		}

		created, err := userRepo.Create(ctx, u.username, u.email, hash)
		if err != nil {
			if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrUsernameTaken) {
				existing, findErr := userRepo.FindByEmail(ctx, u.email)
				if findErr != nil {
					log.Fatalf("find existing user %s: %v", u.email, findErr)
				}
				ownerIDs[u.username] = existing.ID
				fmt.Printf("user %s already present\n", u.username)
				continue
			}
			log.Fatalf("create user %s: %v", u.username, err)
		}
		ownerIDs[u.username] = created.ID
		fmt.Printf("created user %s (password %q)\n", u.username, seedPassword)
	}

	for _, r := range recipes {
		cookingTime, servings := r.cookingTime, r.servings
		created, err := recipeRepo.Create(ctx, &domain.Recipe{
			Title:        r.title,
			Ingredients:  r.ingredients,
			Instructions: r.instructions,
			CookingTime:  &cookingTime,
			Servings:     &servings,
			OwnerID:      ownerIDs[r.owner],
		})
		if err != nil {
			log.Fatalf("create recipe %q: %v", r.title, err)
		}
		fmt.Printf("created recipe %q (%s) for %s\n", created.Title, created.ID, r.owner)
	}
}
