package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	pingTimeout  = 1 * time.Second
	queryTimeout = 3 * time.Second
)

type userRow struct {
	ID       int    `gorm:"primaryKey"`
	Username string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
}

func (userRow) TableName() string { return "users" }

type articleRow struct {
	ID          int       `gorm:"primaryKey"`
	Title       string    `gorm:"not null"`
	Content     string    `gorm:"type:text;not null"`
	Excerpt     string    `gorm:"not null"`
	Author      string    `gorm:"not null"`
	Category    string    `gorm:"not null"`
	Language    string    `gorm:"size:8;index;not null"`
	ImageURL    string    `gorm:"not null"`
	Featured    bool      `gorm:"not null;default:false"`
	PublishedAt time.Time `gorm:"index;not null"`
}

func (articleRow) TableName() string { return "articles" }

type collectionRow struct {
	ID            int       `gorm:"primaryKey"`
	Name          string    `gorm:"not null"`
	NameIt        string    `gorm:"not null"`
	Description   string    `gorm:"type:text;not null"`
	DescriptionIt string    `gorm:"type:text;not null"`
	ImageURL      string    `gorm:"not null"`
	ReleaseDate   time.Time `gorm:"not null"`
}

func (collectionRow) TableName() string { return "collections" }

type productTypeRow struct {
	ID            int    `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	NameIt        string `gorm:"not null"`
	Description   string `gorm:"type:text;not null"`
	DescriptionIt string `gorm:"type:text;not null"`
}

func (productTypeRow) TableName() string { return "product_types" }

type productRow struct {
	ID            int    `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	NameIt        string `gorm:"not null"`
	Description   string `gorm:"type:text;not null"`
	DescriptionIt string `gorm:"type:text;not null"`
	CollectionID  int    `gorm:"index;not null"`
	ProductTypeID int    `gorm:"index;not null"`
	CardNumber    *string
	Rarity        *string
	Language      string                     `gorm:"size:8;index;not null"`
	ImageURL      string                     `gorm:"not null"`
	Prices        datatypes.JSONType[Prices] `gorm:"not null"`

	Collection  collectionRow  `gorm:"foreignKey:CollectionID"`
	ProductType productTypeRow `gorm:"foreignKey:ProductTypeID"`
}

func (productRow) TableName() string { return "products" }

type userCollectionRow struct {
	ID        int       `gorm:"primaryKey"`
	UserID    int       `gorm:"index;not null"`
	ProductID int       `gorm:"index;not null"`
	AddedAt   time.Time `gorm:"not null"`

	User    userRow    `gorm:"foreignKey:UserID"`
	Product productRow `gorm:"foreignKey:ProductID"`
}

func (userCollectionRow) TableName() string { return "user_collections" }

// Migrate creates or updates the catalog tables.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&userRow{},
		&articleRow{},
		&collectionRow{},
		&productTypeRow{},
		&productRow{},
		&userCollectionRow{},
	)
	if err != nil {
		return fmt.Errorf("migrate catalog: %w", err)
	}
	return nil
}

type GormStore struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db, now: time.Now}
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return withTimeout(ctx, pingTimeout, func(ctx context.Context) error {
		return sqlDB.PingContext(ctx)
	})
}

// Reset removes every catalog row, children first.
func (s *GormStore) Reset(ctx context.Context) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			for _, m := range []any{
				&userCollectionRow{},
				&productRow{},
				&articleRow{},
				&collectionRow{},
				&productTypeRow{},
				&userRow{},
			} {
				if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error; err != nil {
					return fmt.Errorf("reset catalog: %w", err)
				}
			}
			return nil
		})
	})
}

// first loads a single row by id; a missing row is reported as ok=false.
func first[R any](ctx context.Context, db *gorm.DB, id int) (R, bool, error) {
	var row R
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return db.WithContext(ctx).Where("id = ?", id).Take(&row).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return row, false, nil
	}
	if err != nil {
		return row, false, err
	}
	return row, true, nil
}

func find[R any](ctx context.Context, q *gorm.DB) ([]R, error) {
	var rows []R
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return q.WithContext(ctx).Find(&rows).Error
	})
	return rows, err
}

func (s *GormStore) insert(ctx context.Context, row any) error {
	return withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Omit(clause.Associations).Create(row).Error
	})
}

func (s *GormStore) GetUser(ctx context.Context, id int) (User, bool, error) {
	row, ok, err := first[userRow](ctx, s.db, id)
	if err != nil {
		return User{}, false, fmt.Errorf("get user: %w", err)
	}
	return row.toUser(), ok, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (User, bool, error) {
	var row userRow
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		return s.db.WithContext(ctx).Where("username = ?", username).Take(&row).Error
	})
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return User{}, false, nil
	}
	if err != nil {
		return User{}, false, fmt.Errorf("get user by username: %w", err)
	}
	return row.toUser(), true, nil
}

func (s *GormStore) CreateUser(ctx context.Context, nu NewUser) (User, error) {
	row := userRow{Username: nu.Username, Password: nu.Password}
	if err := s.insert(ctx, &row); err != nil {
		return User{}, fmt.Errorf("create user: %w", err)
	}
	return row.toUser(), nil
}

// GetArticles returns the newest articles first.
func (s *GormStore) GetArticles(ctx context.Context, language string) ([]Article, error) {
	q := s.db.Order("published_at DESC").Order("id DESC")
	if language != "" {
		q = q.Where("language = ?", language)
	}
	rows, err := find[articleRow](ctx, q)
	if err != nil {
		return nil, fmt.Errorf("get articles: %w", err)
	}
	out := make([]Article, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toArticle())
	}
	return out, nil
}

func (s *GormStore) GetArticle(ctx context.Context, id int) (Article, bool, error) {
	row, ok, err := first[articleRow](ctx, s.db, id)
	if err != nil {
		return Article{}, false, fmt.Errorf("get article: %w", err)
	}
	return row.toArticle(), ok, nil
}

func (s *GormStore) CreateArticle(ctx context.Context, na NewArticle) (Article, error) {
	row := articleRow{
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
	if err := s.insert(ctx, &row); err != nil {
		return Article{}, fmt.Errorf("create article: %w", err)
	}
	return row.toArticle(), nil
}

func (s *GormStore) GetCollections(ctx context.Context) ([]Collection, error) {
	rows, err := find[collectionRow](ctx, s.db.Order("id"))
	if err != nil {
		return nil, fmt.Errorf("get collections: %w", err)
	}
	out := make([]Collection, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toCollection())
	}
	return out, nil
}

func (s *GormStore) GetCollection(ctx context.Context, id int) (Collection, bool, error) {
	row, ok, err := first[collectionRow](ctx, s.db, id)
	if err != nil {
		return Collection{}, false, fmt.Errorf("get collection: %w", err)
	}
	return row.toCollection(), ok, nil
}

func (s *GormStore) CreateCollection(ctx context.Context, nc NewCollection) (Collection, error) {
	row := collectionRow{
		Name:          nc.Name,
		NameIt:        nc.NameIt,
		Description:   nc.Description,
		DescriptionIt: nc.DescriptionIt,
		ImageURL:      nc.ImageURL,
		ReleaseDate:   nc.ReleaseDate.UTC(),
	}
	if err := s.insert(ctx, &row); err != nil {
		return Collection{}, fmt.Errorf("create collection: %w", err)
	}
	return row.toCollection(), nil
}

func (s *GormStore) GetProductTypes(ctx context.Context) ([]ProductType, error) {
	rows, err := find[productTypeRow](ctx, s.db.Order("id"))
	if err != nil {
		return nil, fmt.Errorf("get product types: %w", err)
	}
	out := make([]ProductType, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toProductType())
	}
	return out, nil
}

func (s *GormStore) GetProductType(ctx context.Context, id int) (ProductType, bool, error) {
	row, ok, err := first[productTypeRow](ctx, s.db, id)
	if err != nil {
		return ProductType{}, false, fmt.Errorf("get product type: %w", err)
	}
	return row.toProductType(), ok, nil
}

func (s *GormStore) CreateProductType(ctx context.Context, npt NewProductType) (ProductType, error) {
	row := productTypeRow{
		Name:          npt.Name,
		NameIt:        npt.NameIt,
		Description:   npt.Description,
		DescriptionIt: npt.DescriptionIt,
	}
	if err := s.insert(ctx, &row); err != nil {
		return ProductType{}, fmt.Errorf("create product type: %w", err)
	}
	return row.toProductType(), nil
}

const searchClause = `(LOWER(name) LIKE ? ESCAPE '\' OR LOWER(name_it) LIKE ? ESCAPE '\'` +
	` OR LOWER(description) LIKE ? ESCAPE '\' OR LOWER(description_it) LIKE ? ESCAPE '\')`

// GetProducts ANDs the equality filters with a case-insensitive substring
// match over both names and both descriptions.
func (s *GormStore) GetProducts(ctx context.Context, f ProductFilter) ([]Product, error) {
	q := s.db.Order("id")
	if f.CollectionID != 0 {
		q = q.Where("collection_id = ?", f.CollectionID)
	}
	if f.ProductTypeID != 0 {
		q = q.Where("product_type_id = ?", f.ProductTypeID)
	}
	if f.Language != "" {
		q = q.Where("language = ?", f.Language)
	}
	if f.Search != "" {
		p := likePattern(f.Search)
		q = q.Where(searchClause, p, p, p, p)
	}

	rows, err := find[productRow](ctx, q)
	if err != nil {
		return nil, fmt.Errorf("get products: %w", err)
	}
	out := make([]Product, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toProduct())
	}
	return out, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}

func (s *GormStore) GetProduct(ctx context.Context, id int) (Product, bool, error) {
	row, ok, err := first[productRow](ctx, s.db, id)
	if err != nil {
		return Product{}, false, fmt.Errorf("get product: %w", err)
	}
	return row.toProduct(), ok, nil
}

func (s *GormStore) CreateProduct(ctx context.Context, np NewProduct) (Product, error) {
	row := productRow{
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
		Prices:        datatypes.NewJSONType(pricesOf(np.Prices)),
	}
	if err := s.insert(ctx, &row); err != nil {
		return Product{}, fmt.Errorf("create product: %w", err)
	}
	return row.toProduct(), nil
}

func (s *GormStore) GetUserCollection(ctx context.Context, userID int) ([]UserCollection, error) {
	rows, err := find[userCollectionRow](ctx, s.db.Where("user_id = ?", userID).Order("id"))
	if err != nil {
		return nil, fmt.Errorf("get user collection: %w", err)
	}
	out := make([]UserCollection, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toUserCollection())
	}
	return out, nil
}

func (s *GormStore) AddToUserCollection(ctx context.Context, nuc NewUserCollection) (UserCollection, error) {
	row := userCollectionRow{
		UserID:    nuc.UserID,
		ProductID: nuc.ProductID,
		AddedAt:   s.now().UTC(),
	}
	if err := s.insert(ctx, &row); err != nil {
		return UserCollection{}, fmt.Errorf("add to user collection: %w", err)
	}
	return row.toUserCollection(), nil
}

// RemoveFromUserCollection deletes every entry for the pair and reports
// whether any row was affected.
func (s *GormStore) RemoveFromUserCollection(ctx context.Context, userID, productID int) (bool, error) {
	var affected int64
	err := withTimeout(ctx, queryTimeout, func(ctx context.Context) error {
		res := s.db.WithContext(ctx).
			Where("user_id = ? AND product_id = ?", userID, productID).
			Delete(&userCollectionRow{})
		affected = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return false, fmt.Errorf("remove from user collection: %w", err)
	}
	return affected > 0, nil
}

func (r userRow) toUser() User {
	return User{ID: r.ID, Username: r.Username, Password: r.Password}
}

func (r articleRow) toArticle() Article {
	return Article{
		ID:          r.ID,
		Title:       r.Title,
		Content:     r.Content,
		Excerpt:     r.Excerpt,
		Author:      r.Author,
		Category:    r.Category,
		Language:    r.Language,
		ImageURL:    r.ImageURL,
		Featured:    r.Featured,
		PublishedAt: r.PublishedAt.UTC(),
	}
}

func (r collectionRow) toCollection() Collection {
	return Collection{
		ID:            r.ID,
		Name:          r.Name,
		NameIt:        r.NameIt,
		Description:   r.Description,
		DescriptionIt: r.DescriptionIt,
		ImageURL:      r.ImageURL,
		ReleaseDate:   r.ReleaseDate.UTC(),
	}
}

func (r productTypeRow) toProductType() ProductType {
	return ProductType{
		ID:            r.ID,
		Name:          r.Name,
		NameIt:        r.NameIt,
		Description:   r.Description,
		DescriptionIt: r.DescriptionIt,
	}
}

func (r productRow) toProduct() Product {
	return Product{
		ID:            r.ID,
		Name:          r.Name,
		NameIt:        r.NameIt,
		Description:   r.Description,
		DescriptionIt: r.DescriptionIt,
		CollectionID:  r.CollectionID,
		ProductTypeID: r.ProductTypeID,
		CardNumber:    r.CardNumber,
		Rarity:        r.Rarity,
		Language:      r.Language,
		ImageURL:      r.ImageURL,
		Prices:        r.Prices.Data(),
	}
}

func (r userCollectionRow) toUserCollection() UserCollection {
	return UserCollection{
		ID:        r.ID,
		UserID:    r.UserID,
		ProductID: r.ProductID,
		AddedAt:   r.AddedAt.UTC(),
	}
}

func withTimeout(parent context.Context, d time.Duration, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(parent, d)
	defer cancel()
	return fn(ctx)
}

var (
	_ Store  = (*GormStore)(nil)
	_ Pinger = (*GormStore)(nil)
)
