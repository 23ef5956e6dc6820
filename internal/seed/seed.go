// Package seed loads the demo trading-card catalog into a store.
package seed

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/crypto/bcrypt"

	"PokeHunter/internal/catalog"
)

const DemoUsername = "collector"

// Counts of what Load creates on an empty store.
const (
	ProductTypeCount = 3
	CollectionCount  = 2
	ProductCount     = 45
	ArticleCount     = 2
)

// Load creates the demo collector and the full demo catalog. The collector
// is skipped when a user with that name already exists; everything else is
// appended, so callers reset persistent stores first.
func Load(ctx context.Context, store catalog.Store, demoPassword string) error {
	if err := ensureCollector(ctx, store, demoPassword); err != nil {
		return err
	}

	typeIDs := make(map[typeKey]int, len(productTypes))
	for key, npt := range productTypes {
		pt, err := store.CreateProductType(ctx, npt)
		if err != nil {
			return fmt.Errorf("seed product type %q: %w", npt.Name, err)
		}
		typeIDs[typeKey(key)] = pt.ID
	}

	setIDs := make(map[setKey]int, len(collections))
	for _, c := range collections {
		created, err := store.CreateCollection(ctx, c.NewCollection)
		if err != nil {
			return fmt.Errorf("seed collection %q: %w", c.Name, err)
		}
		setIDs[c.key] = created.ID
	}

	for _, lang := range []string{"en", "it"} {
		for _, c := range cards {
			np := c.product(lang, setIDs[c.set], typeIDs[singles])
			if _, err := store.CreateProduct(ctx, np); err != nil {
				return fmt.Errorf("seed card %q (%s): %w", c.name, lang, err)
			}
		}
	}

	for _, s := range sealedProducts {
		np := s.NewProduct
		np.CollectionID = setIDs[s.set]
		np.ProductTypeID = typeIDs[s.kind]
		if _, err := store.CreateProduct(ctx, np); err != nil {
			return fmt.Errorf("seed product %q: %w", np.Name, err)
		}
	}

	for _, na := range articles {
		if _, err := store.CreateArticle(ctx, na); err != nil {
			return fmt.Errorf("seed article %q: %w", na.Title, err)
		}
	}
	return nil
}

func ensureCollector(ctx context.Context, store catalog.Store, password string) error {
	_, ok, err := store.GetUserByUsername(ctx, DemoUsername)
	if err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	if ok {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if _, err := store.CreateUser(ctx, catalog.NewUser{Username: DemoUsername, Password: string(hash)}); err != nil {
		return fmt.Errorf("seed user: %w", err)
	}
	return nil
}

func (c card) product(lang string, collectionID, productTypeID int) catalog.NewProduct {
	prices := c.prices
	if lang == "it" {
		prices = catalog.Prices{
			Cardmarket: cents(prices.Cardmarket * italianFactor.Cardmarket),
			Ebay:       cents(prices.Ebay * italianFactor.Ebay),
			Tcgplayer:  cents(prices.Tcgplayer * italianFactor.Tcgplayer),
		}
	}

	number, rarity := c.number, c.rarity
	return catalog.NewProduct{
		Name:          c.name,
		NameIt:        c.name,
		Description:   c.description,
		DescriptionIt: c.descriptionIt,
		CollectionID:  collectionID,
		ProductTypeID: productTypeID,
		CardNumber:    &number,
		Rarity:        &rarity,
		Language:      lang,
		ImageURL:      cdn + c.image,
		Prices:        &prices,
	}
}

func cents(v float64) float64 {
	return math.Round(v*100) / 100
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
