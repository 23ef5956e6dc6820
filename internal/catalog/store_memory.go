package catalog

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"
	"time"
)

type MemStore struct {
	mu  sync.RWMutex
	now func() time.Time

	users           map[int]User
	articles        map[int]Article
	collections     map[int]Collection
	productTypes    map[int]ProductType
	products        map[int]Product
	userCollections map[int]UserCollection

	nextUserID           int
	nextArticleID        int
	nextCollectionID     int
	nextProductTypeID    int
	nextProductID        int
	nextUserCollectionID int
}

// NewMemStore returns a store preloaded with the demo catalog.
func NewMemStore() *MemStore {
	s := newEmptyMemStore()
	s.seed()
	return s
}

func newEmptyMemStore() *MemStore {
	return &MemStore{
		now: time.Now,

		users:           map[int]User{},
		articles:        map[int]Article{},
		collections:     map[int]Collection{},
		productTypes:    map[int]ProductType{},
		products:        map[int]Product{},
		userCollections: map[int]UserCollection{},

		nextUserID:           1,
		nextArticleID:        1,
		nextCollectionID:     1,
		nextProductTypeID:    1,
		nextProductID:        1,
		nextUserCollectionID: 1,
	}
}

func (s *MemStore) Ping(ctx context.Context) error { return nil }

// inOrder returns the values of m by ascending id, which is insertion order.
func inOrder[T any](m map[int]T, keep func(T) bool) []T {
	out := make([]T, 0, len(m))
	for _, id := range slices.Sorted(maps.Keys(m)) {
		if v := m[id]; keep == nil || keep(v) {
			out = append(out, v)
		}
	}
	return out
}

func (s *MemStore) GetUser(ctx context.Context, id int) (User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	return u, ok, nil
}

func (s *MemStore) GetUserByUsername(ctx context.Context, username string) (User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range inOrder(s.users, nil) {
		if u.Username == username {
			return u, true, nil
		}
	}
	return User{}, false, nil
}

func (s *MemStore) CreateUser(ctx context.Context, nu NewUser) (User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := User{ID: s.nextUserID, Username: nu.Username, Password: nu.Password}
	s.nextUserID++
	s.users[u.ID] = u
	return u, nil
}

func (s *MemStore) GetArticles(ctx context.Context, language string) ([]Article, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return inOrder(s.articles, func(a Article) bool {
		return language == "" || a.Language == language
	}), nil
}

func (s *MemStore) GetArticle(ctx context.Context, id int) (Article, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	a, ok := s.articles[id]
	return a, ok, nil
}

func (s *MemStore) CreateArticle(ctx context.Context, na NewArticle) (Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	a := Article{
		ID:          s.nextArticleID,
		Title:       na.Title,
		Content:     na.Content,
		Excerpt:     na.Excerpt,
		Author:      na.Author,
		Category:    na.Category,
		Language:    na.Language,
		ImageURL:    na.ImageURL,
		Featured:    na.Featured,
		PublishedAt: s.now().UTC(),
	}
	s.nextArticleID++
	s.articles[a.ID] = a
	return a, nil
}

func (s *MemStore) GetCollections(ctx context.Context) ([]Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return inOrder(s.collections, nil), nil
}

func (s *MemStore) GetCollection(ctx context.Context, id int) (Collection, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[id]
	return c, ok, nil
}

func (s *MemStore) CreateCollection(ctx context.Context, nc NewCollection) (Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c := Collection{
		ID:            s.nextCollectionID,
		Name:          nc.Name,
		NameIt:        nc.NameIt,
		Description:   nc.Description,
		DescriptionIt: nc.DescriptionIt,
		ImageURL:      nc.ImageURL,
		ReleaseDate:   nc.ReleaseDate,
	}
	s.nextCollectionID++
	s.collections[c.ID] = c
	return c, nil
}

func (s *MemStore) GetProductTypes(ctx context.Context) ([]ProductType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return inOrder(s.productTypes, nil), nil
}

func (s *MemStore) GetProductType(ctx context.Context, id int) (ProductType, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pt, ok := s.productTypes[id]
	return pt, ok, nil
}

func (s *MemStore) CreateProductType(ctx context.Context, npt NewProductType) (ProductType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pt := ProductType{
		ID:            s.nextProductTypeID,
		Name:          npt.Name,
		NameIt:        npt.NameIt,
		Description:   npt.Description,
		DescriptionIt: npt.DescriptionIt,
	}
	s.nextProductTypeID++
	s.productTypes[pt.ID] = pt
	return pt, nil
}

// GetProducts applies the equality filters and then the search term. The
// search covers name, nameIt and description only; descriptionIt is not
// searched here, unlike in GormStore.
func (s *MemStore) GetProducts(ctx context.Context, f ProductFilter) ([]Product, error) {
	term := strings.ToLower(f.Search)

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := inOrder(s.products, func(p Product) bool {
		if f.CollectionID != 0 && p.CollectionID != f.CollectionID {
			return false
		}
		if f.ProductTypeID != 0 && p.ProductTypeID != f.ProductTypeID {
			return false
		}
		if f.Language != "" && p.Language != f.Language {
			return false
		}
		if term == "" {
			return true
		}
		return strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.NameIt), term) ||
			strings.Contains(strings.ToLower(p.Description), term)
	})

	for i := range out {
		out[i] = out[i].clone()
	}
	return out, nil
}

func (s *MemStore) GetProduct(ctx context.Context, id int) (Product, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.products[id]
	if !ok {
		return Product{}, false, nil
	}
	return p.clone(), true, nil
}

func (s *MemStore) CreateProduct(ctx context.Context, np NewProduct) (Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := Product{
		ID:            s.nextProductID,
		Name:          np.Name,
		NameIt:        np.NameIt,
		Description:   np.Description,
		DescriptionIt: np.DescriptionIt,
		CollectionID:  np.CollectionID,
		ProductTypeID: np.ProductTypeID,
		CardNumber:    cloneString(np.CardNumber),
		Rarity:        cloneString(np.Rarity),
		Language:      np.Language,
		ImageURL:      np.ImageURL,
		Prices:        pricesOf(np.Prices),
	}
	s.nextProductID++
	s.products[p.ID] = p
	return p.clone(), nil
}

func (s *MemStore) GetUserCollection(ctx context.Context, userID int) ([]UserCollection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return inOrder(s.userCollections, func(uc UserCollection) bool {
		return uc.UserID == userID
	}), nil
}

func (s *MemStore) AddToUserCollection(ctx context.Context, nuc NewUserCollection) (UserCollection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	uc := UserCollection{
		ID:        s.nextUserCollectionID,
		UserID:    nuc.UserID,
		ProductID: nuc.ProductID,
		AddedAt:   s.now().UTC(),
	}
	s.nextUserCollectionID++
	s.userCollections[uc.ID] = uc
	return uc, nil
}

// RemoveFromUserCollection deletes the oldest entry for the pair, if any.
func (s *MemStore) RemoveFromUserCollection(ctx context.Context, userID, productID int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, id := range slices.Sorted(maps.Keys(s.userCollections)) {
		uc := s.userCollections[id]
		if uc.UserID == userID && uc.ProductID == productID {
			delete(s.userCollections, id)
			return true, nil
		}
	}
	return false, nil
}

var (
	_ Store  = (*MemStore)(nil)
	_ Pinger = (*MemStore)(nil)
)
