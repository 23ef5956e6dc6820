package catalog

import (
	"context"
	"reflect"
	"testing"
	"time"
)

var testClock = time.Date(2025, time.May, 4, 12, 30, 0, 0, time.UTC)

// testStore is a Store whose clock the test controls.
type testStore struct {
	Store
	setNow func(time.Time)
}

type fixture struct {
	singles, packs int
	paldea, sv     int
}

func seedFixture(t *testing.T, s Store) fixture {
	t.Helper()
	ctx := context.Background()

	singles, err := s.CreateProductType(ctx, NewProductType{Name: "Single Cards", NameIt: "Carte Singole", Description: "Singles", DescriptionIt: "Singole"})
	if err != nil {
		t.Fatalf("create product type: %v", err)
	}
	packs, err := s.CreateProductType(ctx, NewProductType{Name: "Booster Packs", NameIt: "Buste", Description: "Packs", DescriptionIt: "Buste"})
	if err != nil {
		t.Fatalf("create product type: %v", err)
	}
	paldea, err := s.CreateCollection(ctx, NewCollection{
		Name: "Paldea Evolved", NameIt: "Paldea Evolved", Description: "Paldea", DescriptionIt: "Paldea",
		ImageURL: "https://example.com/paldea.png", ReleaseDate: time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create collection: %v", err)
	}
	sv, err := s.CreateCollection(ctx, NewCollection{
		Name: "Scarlet & Violet", NameIt: "Scarlatto e Violetto", Description: "Base set", DescriptionIt: "Set base",
		ImageURL: "https://example.com/sv.png", ReleaseDate: time.Date(2023, time.March, 31, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create collection: %v", err)
	}
	return fixture{singles: singles.ID, packs: packs.ID, paldea: paldea.ID, sv: sv.ID}
}

func newCard(name, lang string, collectionID, typeID int) NewProduct {
	return NewProduct{
		Name:          name,
		NameIt:        name,
		Description:   "Fire-type Pokemon ex",
		DescriptionIt: "Pokemon ex di tipo Fuoco",
		CollectionID:  collectionID,
		ProductTypeID: typeID,
		CardNumber:    ptr("1/198"),
		Rarity:        ptr("Ultra Rare"),
		Language:      lang,
		ImageURL:      "https://example.com/" + name + ".png",
		Prices:        &Prices{Cardmarket: 10.5, Ebay: 11, Tcgplayer: 10.75},
	}
}

func mustCreateProduct(t *testing.T, s Store, np NewProduct) Product {
	t.Helper()
	p, err := s.CreateProduct(context.Background(), np)
	if err != nil {
		t.Fatalf("create product %q: %v", np.Name, err)
	}
	return p
}

func productNames(ps []Product) []string {
	out := make([]string, 0, len(ps))
	for _, p := range ps {
		out = append(out, p.Name+"/"+p.Language)
	}
	return out
}

// testStoreContract checks the behaviour both backends share.
func testStoreContract(t *testing.T, newStore func(t *testing.T) testStore) {
	ctx := context.Background()

	t.Run("empty store", func(t *testing.T) {
		s := newStore(t)

		products, err := s.GetProducts(ctx, ProductFilter{})
		if err != nil {
			t.Fatalf("get products: %v", err)
		}
		if len(products) != 0 {
			t.Fatalf("expected no products, got %d", len(products))
		}
		if _, ok, err := s.GetProduct(ctx, 1); err != nil || ok {
			t.Fatalf("expected missing product, ok=%v err=%v", ok, err)
		}
		if _, ok, err := s.GetUser(ctx, 1); err != nil || ok {
			t.Fatalf("expected missing user, ok=%v err=%v", ok, err)
		}
		if _, ok, err := s.GetUserByUsername(ctx, "nobody"); err != nil || ok {
			t.Fatalf("expected missing username, ok=%v err=%v", ok, err)
		}
		if _, ok, err := s.GetArticle(ctx, 0); err != nil || ok {
			t.Fatalf("expected missing article, ok=%v err=%v", ok, err)
		}
		if _, ok, err := s.GetCollection(ctx, -1); err != nil || ok {
			t.Fatalf("expected missing collection, ok=%v err=%v", ok, err)
		}
		items, err := s.GetUserCollection(ctx, 1)
		if err != nil || len(items) != 0 {
			t.Fatalf("expected empty user collection, got %v err=%v", items, err)
		}
	})

	t.Run("users", func(t *testing.T) {
		s := newStore(t)

		u, err := s.CreateUser(ctx, NewUser{Username: "ash", Password: "pikachu"})
		if err != nil {
			t.Fatalf("create user: %v", err)
		}
		if u.ID != 1 {
			t.Fatalf("expected first user id 1, got %d", u.ID)
		}

		got, ok, err := s.GetUserByUsername(ctx, "ash")
		if err != nil || !ok {
			t.Fatalf("get by username: ok=%v err=%v", ok, err)
		}
		if got != u {
			t.Fatalf("expected %+v, got %+v", u, got)
		}
		if _, ok, _ := s.GetUserByUsername(ctx, "ASH"); ok {
			t.Fatalf("username lookup must be exact")
		}

		byID, ok, err := s.GetUser(ctx, u.ID)
		if err != nil || !ok || byID != u {
			t.Fatalf("get user: %+v ok=%v err=%v", byID, ok, err)
		}
	})

	t.Run("ids are sequential per entity", func(t *testing.T) {
		s := newStore(t)
		f := seedFixture(t, s)

		if f.singles != 1 || f.packs != 2 {
			t.Fatalf("expected product type ids 1,2 got %d,%d", f.singles, f.packs)
		}
		if f.paldea != 1 || f.sv != 2 {
			t.Fatalf("expected collection ids 1,2 got %d,%d", f.paldea, f.sv)
		}

		a := mustCreateProduct(t, s, newCard("Koraidon ex", "en", f.sv, f.singles))
		b := mustCreateProduct(t, s, newCard("Miraidon ex", "en", f.sv, f.singles))
		if a.ID != 1 || b.ID != 2 {
			t.Fatalf("expected product ids 1,2 got %d,%d", a.ID, b.ID)
		}
	})

	t.Run("product round trip", func(t *testing.T) {
		s := newStore(t)
		f := seedFixture(t, s)

		card := mustCreateProduct(t, s, newCard("Koraidon ex", "en", f.sv, f.singles))
		got, ok, err := s.GetProduct(ctx, card.ID)
		if err != nil || !ok {
			t.Fatalf("get product: ok=%v err=%v", ok, err)
		}
		if !reflect.DeepEqual(got, card) {
			t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, card)
		}

		pack := newCard("Booster Pack", "en", f.paldea, f.packs)
		pack.CardNumber, pack.Rarity = nil, nil
		created := mustCreateProduct(t, s, pack)
		got, _, err = s.GetProduct(ctx, created.ID)
		if err != nil {
			t.Fatalf("get product: %v", err)
		}
		if got.CardNumber != nil || got.Rarity != nil {
			t.Fatalf("expected absent card number and rarity, got %v %v", got.CardNumber, got.Rarity)
		}
		if got.Prices != (Prices{Cardmarket: 10.5, Ebay: 11, Tcgplayer: 10.75}) {
			t.Fatalf("unexpected prices: %+v", got.Prices)
		}
	})

	t.Run("returned products are copies", func(t *testing.T) {
		s := newStore(t)
		f := seedFixture(t, s)
		p := mustCreateProduct(t, s, newCard("Koraidon ex", "en", f.sv, f.singles))

		*p.CardNumber = "999/999"
		list, _ := s.GetProducts(ctx, ProductFilter{})
		*list[0].Rarity = "Common"
		list[0].Name = "changed"

		got, _, _ := s.GetProduct(ctx, p.ID)
		if *got.CardNumber != "1/198" || *got.Rarity != "Ultra Rare" || got.Name != "Koraidon ex" {
			t.Fatalf("stored product was mutated: %+v", got)
		}
	})

	t.Run("product filters", func(t *testing.T) {
		s := newStore(t)
		f := seedFixture(t, s)

		mustCreateProduct(t, s, newCard("Koraidon ex", "en", f.sv, f.singles))
		mustCreateProduct(t, s, newCard("Koraidon ex", "it", f.sv, f.singles))
		mustCreateProduct(t, s, newCard("Pikachu ex", "en", f.paldea, f.singles))
		pack := newCard("Paldea Evolved Booster Pack", "en", f.paldea, f.packs)
		pack.NameIt = "Busta Paldea Evolved"
		pack.Description = "11 card booster pack"
		pack.DescriptionIt = "Busta da 11 carte"
		mustCreateProduct(t, s, pack)

		cases := []struct {
			name string
			f    ProductFilter
			want []string
		}{
			{"no filter", ProductFilter{}, []string{"Koraidon ex/en", "Koraidon ex/it", "Pikachu ex/en", "Paldea Evolved Booster Pack/en"}},
			{"collection", ProductFilter{CollectionID: f.paldea}, []string{"Pikachu ex/en", "Paldea Evolved Booster Pack/en"}},
			{"product type", ProductFilter{ProductTypeID: f.packs}, []string{"Paldea Evolved Booster Pack/en"}},
			{"language", ProductFilter{Language: "it"}, []string{"Koraidon ex/it"}},
			{"conjunction", ProductFilter{CollectionID: f.sv, Language: "en"}, []string{"Koraidon ex/en"}},
			{"search name case insensitive", ProductFilter{Search: "PIKA"}, []string{"Pikachu ex/en"}},
			{"search italian name", ProductFilter{Search: "busta"}, []string{"Paldea Evolved Booster Pack/en"}},
			{"search description", ProductFilter{Search: "booster pack"}, []string{"Paldea Evolved Booster Pack/en"}},
			{"search with filter", ProductFilter{Search: "koraidon", Language: "it"}, []string{"Koraidon ex/it"}},
			{"unknown collection", ProductFilter{CollectionID: 99}, []string{}},
			{"search is literal", ProductFilter{Search: "%"}, []string{}},
			{"underscore is literal", ProductFilter{Search: "_"}, []string{}},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				got, err := s.GetProducts(ctx, tc.f)
				if err != nil {
					t.Fatalf("get products: %v", err)
				}
				if names := productNames(got); !reflect.DeepEqual(names, tc.want) {
					t.Fatalf("expected %v, got %v", tc.want, names)
				}
			})
		}
	})

	t.Run("search folds non-ASCII case", func(t *testing.T) {
		s := newStore(t)
		f := seedFixture(t, s)

		np := newCard("Évoli", "it", f.sv, f.singles)
		mustCreateProduct(t, s, np)
		mustCreateProduct(t, s, newCard("Eevee", "en", f.sv, f.singles))

		for _, term := range []string{"évoli", "ÉVOLI", "Évo"} {
			got, err := s.GetProducts(ctx, ProductFilter{Search: term})
			if err != nil {
				t.Fatalf("search %q: %v", term, err)
			}
			if names := productNames(got); len(names) != 1 || names[0] != "Évoli/it" {
				t.Fatalf("search %q: expected Évoli only, got %v", term, names)
			}
		}
	})

	t.Run("collections and product types", func(t *testing.T) {
		s := newStore(t)
		f := seedFixture(t, s)

		cols, err := s.GetCollections(ctx)
		if err != nil || len(cols) != 2 {
			t.Fatalf("expected 2 collections, got %d err=%v", len(cols), err)
		}
		c, ok, err := s.GetCollection(ctx, f.sv)
		if err != nil || !ok {
			t.Fatalf("get collection: ok=%v err=%v", ok, err)
		}
		if c.NameIt != "Scarlatto e Violetto" {
			t.Fatalf("unexpected collection: %+v", c)
		}
		if !c.ReleaseDate.Equal(time.Date(2023, time.March, 31, 0, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected release date: %v", c.ReleaseDate)
		}

		types, err := s.GetProductTypes(ctx)
		if err != nil || len(types) != 2 {
			t.Fatalf("expected 2 product types, got %d err=%v", len(types), err)
		}
		pt, ok, err := s.GetProductType(ctx, f.packs)
		if err != nil || !ok || pt.Name != "Booster Packs" {
			t.Fatalf("get product type: %+v ok=%v err=%v", pt, ok, err)
		}
		if _, ok, _ := s.GetProductType(ctx, 42); ok {
			t.Fatalf("expected missing product type")
		}
	})

	t.Run("articles", func(t *testing.T) {
		s := newStore(t)
		s.setNow(testClock)

		en, err := s.CreateArticle(ctx, NewArticle{
			Title: "Set review", Content: "Body", Excerpt: "Short", Author: "PokeHunter Team",
			Category: "Featured", Language: "en", ImageURL: "https://example.com/a.png", Featured: true,
		})
		if err != nil {
			t.Fatalf("create article: %v", err)
		}
		if !en.PublishedAt.Equal(testClock) {
			t.Fatalf("expected publishedAt %v, got %v", testClock, en.PublishedAt)
		}
		if _, err := s.CreateArticle(ctx, NewArticle{
			Title: "Recensione", Content: "Testo", Excerpt: "Breve", Author: "PokeHunter Team",
			Category: "Strategy", Language: "it", ImageURL: "https://example.com/b.png",
		}); err != nil {
			t.Fatalf("create article: %v", err)
		}

		all, err := s.GetArticles(ctx, "")
		if err != nil || len(all) != 2 {
			t.Fatalf("expected 2 articles, got %d err=%v", len(all), err)
		}
		it, err := s.GetArticles(ctx, "it")
		if err != nil || len(it) != 1 || it[0].Title != "Recensione" {
			t.Fatalf("expected the italian article, got %+v err=%v", it, err)
		}
		none, err := s.GetArticles(ctx, "de")
		if err != nil || len(none) != 0 {
			t.Fatalf("expected no german articles, got %d err=%v", len(none), err)
		}

		got, ok, err := s.GetArticle(ctx, en.ID)
		if err != nil || !ok {
			t.Fatalf("get article: ok=%v err=%v", ok, err)
		}
		if got.Title != en.Title || !got.Featured || !got.PublishedAt.Equal(en.PublishedAt) {
			t.Fatalf("unexpected article: %+v", got)
		}
	})

	t.Run("user collection", func(t *testing.T) {
		s := newStore(t)
		s.setNow(testClock)
		f := seedFixture(t, s)

		ash, err := s.CreateUser(ctx, NewUser{Username: "ash", Password: "x"})
		if err != nil {
			t.Fatalf("create user: %v", err)
		}
		misty, err := s.CreateUser(ctx, NewUser{Username: "misty", Password: "x"})
		if err != nil {
			t.Fatalf("create user: %v", err)
		}
		p1 := mustCreateProduct(t, s, newCard("Koraidon ex", "en", f.sv, f.singles))
		p2 := mustCreateProduct(t, s, newCard("Miraidon ex", "en", f.sv, f.singles))

		uc, err := s.AddToUserCollection(ctx, NewUserCollection{UserID: ash.ID, ProductID: p1.ID})
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if uc.ID != 1 || !uc.AddedAt.Equal(testClock) {
			t.Fatalf("unexpected entry: %+v", uc)
		}
		if _, err := s.AddToUserCollection(ctx, NewUserCollection{UserID: ash.ID, ProductID: p2.ID}); err != nil {
			t.Fatalf("add: %v", err)
		}
		if _, err := s.AddToUserCollection(ctx, NewUserCollection{UserID: misty.ID, ProductID: p1.ID}); err != nil {
			t.Fatalf("add: %v", err)
		}

		items, err := s.GetUserCollection(ctx, ash.ID)
		if err != nil || len(items) != 2 {
			t.Fatalf("expected 2 entries for ash, got %d err=%v", len(items), err)
		}
		if items[0].ProductID != p1.ID || items[1].ProductID != p2.ID {
			t.Fatalf("unexpected entries: %+v", items)
		}

		removed, err := s.RemoveFromUserCollection(ctx, ash.ID, p1.ID)
		if err != nil || !removed {
			t.Fatalf("remove: removed=%v err=%v", removed, err)
		}
		removed, err = s.RemoveFromUserCollection(ctx, ash.ID, p1.ID)
		if err != nil || removed {
			t.Fatalf("second remove should report nothing removed: removed=%v err=%v", removed, err)
		}

		items, _ = s.GetUserCollection(ctx, ash.ID)
		if len(items) != 1 || items[0].ProductID != p2.ID {
			t.Fatalf("unexpected entries after remove: %+v", items)
		}
		others, _ := s.GetUserCollection(ctx, misty.ID)
		if len(others) != 1 || others[0].ProductID != p1.ID {
			t.Fatalf("other user's collection changed: %+v", others)
		}
	})
	t.Run("collector scenario", func(t *testing.T) {
		s := newStore(t)

		if _, err := s.CreateUser(ctx, NewUser{Username: "collector", Password: "x"}); err != nil {
			t.Fatalf("create user: %v", err)
		}
		col, err := s.CreateCollection(ctx, NewCollection{
			Name: "Test Set", NameIt: "Set di prova", Description: "d", DescriptionIt: "d",
			ImageURL: "https://example.com/set.png", ReleaseDate: testClock,
		})
		if err != nil {
			t.Fatalf("create collection: %v", err)
		}
		pt, err := s.CreateProductType(ctx, NewProductType{Name: "Cards", NameIt: "Carte", Description: "d", DescriptionIt: "d"})
		if err != nil {
			t.Fatalf("create product type: %v", err)
		}
		np := newCard("Test Card", "en", col.ID, pt.ID)
		np.Prices = &Prices{Cardmarket: 10.0, Ebay: 12.0, Tcgplayer: 11.0}
		p := mustCreateProduct(t, s, np)

		got, err := s.GetProducts(ctx, ProductFilter{CollectionID: col.ID})
		if err != nil || len(got) != 1 || got[0].ID != p.ID {
			t.Fatalf("expected exactly the new product, got %v err=%v", productNames(got), err)
		}

		if _, err := s.AddToUserCollection(ctx, NewUserCollection{UserID: 1, ProductID: p.ID}); err != nil {
			t.Fatalf("add: %v", err)
		}
		items, _ := s.GetUserCollection(ctx, 1)
		if len(items) != 1 || items[0].ProductID != p.ID {
			t.Fatalf("expected one entry for the product, got %+v", items)
		}

		if removed, err := s.RemoveFromUserCollection(ctx, 1, p.ID); err != nil || !removed {
			t.Fatalf("remove: removed=%v err=%v", removed, err)
		}
		items, _ = s.GetUserCollection(ctx, 1)
		if len(items) != 0 {
			t.Fatalf("expected empty collection, got %+v", items)
		}
	})
}
