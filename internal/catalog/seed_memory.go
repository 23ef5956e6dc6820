package catalog

import (
	"context"
	"time"
)

func ptr(s string) *string { return &s }

// seed loads the fixed demo catalog.
func (s *MemStore) seed() {
	singles := s.seedProductType(NewProductType{
		Name:          "Single Cards",
		NameIt:        "Carte Singole",
		Description:   "Individual Pokemon cards",
		DescriptionIt: "Carte Pokemon individuali",
	})
	packs := s.seedProductType(NewProductType{
		Name:          "Booster Packs",
		NameIt:        "Buste",
		Description:   "Booster packs containing random cards",
		DescriptionIt: "Buste contenenti carte casuali",
	})
	etb := s.seedProductType(NewProductType{
		Name:          "Elite Trainer Box",
		NameIt:        "Elite Trainer Box",
		Description:   "Complete trainer boxes with packs and accessories",
		DescriptionIt: "Scatole complete con buste e accessori",
	})

	paldea := s.seedCollection(NewCollection{
		Name:          "Paldea Evolved",
		NameIt:        "Paldea Evolved",
		Description:   "The latest expansion featuring Paldea region Pokemon",
		DescriptionIt: "L'ultima espansione con Pokemon della regione di Paldea",
		ImageURL:      "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=400&h=300&fit=crop",
		ReleaseDate:   time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC),
	})
	sv := s.seedCollection(NewCollection{
		Name:          "Scarlet & Violet",
		NameIt:        "Scarlatto e Violetto",
		Description:   "Base set of the Scarlet & Violet series",
		DescriptionIt: "Set base della serie Scarlatto e Violetto",
		ImageURL:      "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop",
		ReleaseDate:   time.Date(2023, time.March, 31, 0, 0, 0, 0, time.UTC),
	})

	products := []NewProduct{
		{
			Name:          "Charizard VMAX",
			NameIt:        "Charizard VMAX",
			Description:   "Rare Charizard VMAX card",
			DescriptionIt: "Carta rara Charizard VMAX",
			CollectionID:  paldea.ID,
			ProductTypeID: singles.ID,
			CardNumber:    ptr("020/189"),
			Rarity:        ptr("Rare"),
			Language:      "en",
			ImageURL:      "https://images.unsplash.com/photo-1542273917363-3b1817f69a2d?w=300&h=400&fit=crop",
			Prices:        &Prices{Cardmarket: 89.99, Ebay: 95.00, Tcgplayer: 92.50},
		},
		{
			Name:          "Pikachu V",
			NameIt:        "Pikachu V",
			Description:   "Electric-type Pokemon V card",
			DescriptionIt: "Carta Pokemon V di tipo Elettro",
			CollectionID:  sv.ID,
			ProductTypeID: singles.ID,
			CardNumber:    ptr("025/198"),
			Rarity:        ptr("Ultra Rare"),
			Language:      "en",
			ImageURL:      "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=300&h=400&fit=crop",
			Prices:        &Prices{Cardmarket: 45.99, Ebay: 52.00, Tcgplayer: 48.75},
		},
		{
			Name:          "Mewtwo EX",
			NameIt:        "Mewtwo EX",
			Description:   "Psychic-type legendary Pokemon EX",
			DescriptionIt: "Pokemon EX leggendario di tipo Psico",
			CollectionID:  sv.ID,
			ProductTypeID: singles.ID,
			CardNumber:    ptr("150/198"),
			Rarity:        ptr("EX"),
			Language:      "en",
			ImageURL:      "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=400&fit=crop",
			Prices:        &Prices{Cardmarket: 67.50, Ebay: 72.00, Tcgplayer: 69.25},
		},
		{
			Name:          "Garchomp V",
			NameIt:        "Garchomp V",
			Description:   "Dragon-type Pokemon V card",
			DescriptionIt: "Carta Pokemon V di tipo Drago",
			CollectionID:  paldea.ID,
			ProductTypeID: singles.ID,
			CardNumber:    ptr("445/189"),
			Rarity:        ptr("Ultra Rare"),
			Language:      "en",
			ImageURL:      "https://images.unsplash.com/photo-1542273917363-3b1817f69a2d?w=300&h=400&fit=crop",
			Prices:        &Prices{Cardmarket: 32.99, Ebay: 38.00, Tcgplayer: 35.50},
		},
		{
			Name:          "Lucario VMAX",
			NameIt:        "Lucario VMAX",
			Description:   "Fighting-type Pokemon VMAX",
			DescriptionIt: "Pokemon VMAX di tipo Lotta",
			CollectionID:  sv.ID,
			ProductTypeID: singles.ID,
			CardNumber:    ptr("448/198"),
			Rarity:        ptr("VMAX"),
			Language:      "en",
			ImageURL:      "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=300&h=400&fit=crop",
			Prices:        &Prices{Cardmarket: 78.99, Ebay: 85.00, Tcgplayer: 81.25},
		},
		{
			Name:          "Charizard VMAX",
			NameIt:        "Charizard VMAX",
			Description:   "Rare Charizard VMAX card",
			DescriptionIt: "Carta rara Charizard VMAX",
			CollectionID:  paldea.ID,
			ProductTypeID: singles.ID,
			CardNumber:    ptr("020/189"),
			Rarity:        ptr("Rare"),
			Language:      "it",
			ImageURL:      "https://images.unsplash.com/photo-1542273917363-3b1817f69a2d?w=300&h=400&fit=crop",
			Prices:        &Prices{Cardmarket: 75.99, Ebay: 82.00, Tcgplayer: 78.50},
		},
		{
			Name:          "Pikachu V",
			NameIt:        "Pikachu V",
			Description:   "Electric-type Pokemon V card",
			DescriptionIt: "Carta Pokemon V di tipo Elettro",
			CollectionID:  sv.ID,
			ProductTypeID: singles.ID,
			CardNumber:    ptr("025/198"),
			Rarity:        ptr("Ultra Rare"),
			Language:      "it",
			ImageURL:      "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=300&h=400&fit=crop",
			Prices:        &Prices{Cardmarket: 38.99, Ebay: 44.00, Tcgplayer: 41.25},
		},
		{
			Name:          "Mewtwo EX",
			NameIt:        "Mewtwo EX",
			Description:   "Psychic-type legendary Pokemon EX",
			DescriptionIt: "Pokemon EX leggendario di tipo Psico",
			CollectionID:  sv.ID,
			ProductTypeID: singles.ID,
			CardNumber:    ptr("150/198"),
			Rarity:        ptr("EX"),
			Language:      "it",
			ImageURL:      "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=400&fit=crop",
			Prices:        &Prices{Cardmarket: 58.50, Ebay: 63.00, Tcgplayer: 60.25},
		},
		{
			Name:          "Garchomp V",
			NameIt:        "Garchomp V",
			Description:   "Dragon-type Pokemon V card",
			DescriptionIt: "Carta Pokemon V di tipo Drago",
			CollectionID:  paldea.ID,
			ProductTypeID: singles.ID,
			CardNumber:    ptr("445/189"),
			Rarity:        ptr("Ultra Rare"),
			Language:      "it",
			ImageURL:      "https://images.unsplash.com/photo-1542273917363-3b1817f69a2d?w=300&h=400&fit=crop",
			Prices:        &Prices{Cardmarket: 28.99, Ebay: 33.00, Tcgplayer: 30.50},
		},
		{
			Name:          "Lucario VMAX",
			NameIt:        "Lucario VMAX",
			Description:   "Fighting-type Pokemon VMAX",
			DescriptionIt: "Pokemon VMAX di tipo Lotta",
			CollectionID:  sv.ID,
			ProductTypeID: singles.ID,
			CardNumber:    ptr("448/198"),
			Rarity:        ptr("VMAX"),
			Language:      "it",
			ImageURL:      "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=300&h=400&fit=crop",
			Prices:        &Prices{Cardmarket: 68.99, Ebay: 74.00, Tcgplayer: 71.25},
		},
		{
			Name:          "Paldea Evolved Booster Pack",
			NameIt:        "Busta Paldea Evolved",
			Description:   "11 card booster pack",
			DescriptionIt: "Busta da 11 carte",
			CollectionID:  paldea.ID,
			ProductTypeID: packs.ID,
			Language:      "en",
			ImageURL:      "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=400&fit=crop",
			Prices:        &Prices{Cardmarket: 3.99, Ebay: 4.50, Tcgplayer: 4.25},
		},
		{
			Name:          "Scarlet & Violet Booster Pack",
			NameIt:        "Busta Scarlatto e Violetto",
			Description:   "11 card booster pack",
			DescriptionIt: "Busta da 11 carte",
			CollectionID:  sv.ID,
			ProductTypeID: packs.ID,
			Language:      "en",
			ImageURL:      "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=400&fit=crop",
			Prices:        &Prices{Cardmarket: 4.25, Ebay: 4.75, Tcgplayer: 4.50},
		},
		{
			Name:          "Paldea Evolved Elite Trainer Box",
			NameIt:        "Elite Trainer Box Paldea Evolved",
			Description:   "Contains 9 booster packs and accessories",
			DescriptionIt: "Contiene 9 buste e accessori",
			CollectionID:  paldea.ID,
			ProductTypeID: etb.ID,
			Language:      "en",
			ImageURL:      "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=300&h=400&fit=crop",
			Prices:        &Prices{Cardmarket: 39.99, Ebay: 45.00, Tcgplayer: 42.50},
		},
	}
	for _, p := range products {
		must(s.CreateProduct(context.Background(), p))
	}

	s.seedArticle(NewArticle{
		Title:    "Paldea Evolved: Complete Set Review & Investment Guide",
		Content:  "Discover the most valuable cards from the latest expansion and learn which ones are worth adding to your collection.",
		Excerpt:  "Complete guide to Paldea Evolved set with investment tips",
		Author:   "PokeHunter Team",
		Category: "Featured",
		Language: "en",
		ImageURL: "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=800&h=400&fit=crop",
		Featured: true,
	})
	s.seedArticle(NewArticle{
		Title:    "Pack Opening Strategy: Maximizing Your Pulls",
		Content:  "Learn the best techniques and timing for opening booster packs to get the most value.",
		Excerpt:  "Best practices for booster pack opening",
		Author:   "PokeHunter Team",
		Category: "Strategy",
		Language: "en",
		ImageURL: "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=200&fit=crop",
	})
}

func (s *MemStore) seedProductType(npt NewProductType) ProductType {
	return must(s.CreateProductType(context.Background(), npt))
}

func (s *MemStore) seedCollection(nc NewCollection) Collection {
	return must(s.CreateCollection(context.Background(), nc))
}

func (s *MemStore) seedArticle(na NewArticle) {
	must(s.CreateArticle(context.Background(), na))
}

// must panics on err; the demo catalog is fixed, so a failure is a bug.
func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}
