package catalog

import "context"

// ProductFilter narrows GetProducts. Zero-valued fields do not filter;
// ids start at 1, so 0 never names a real record.
type ProductFilter struct {
	CollectionID  int
	ProductTypeID int
	Language      string
	Search        string
}

// Store is implemented by MemStore and GormStore. Lookups report a missing
// record with ok=false and a nil error.
type Store interface {
	GetUser(ctx context.Context, id int) (User, bool, error)
	GetUserByUsername(ctx context.Context, username string) (User, bool, error)
	CreateUser(ctx context.Context, u NewUser) (User, error)

	GetArticles(ctx context.Context, language string) ([]Article, error)
	GetArticle(ctx context.Context, id int) (Article, bool, error)
	CreateArticle(ctx context.Context, a NewArticle) (Article, error)

	GetCollections(ctx context.Context) ([]Collection, error)
	GetCollection(ctx context.Context, id int) (Collection, bool, error)
	CreateCollection(ctx context.Context, c NewCollection) (Collection, error)

	GetProductTypes(ctx context.Context) ([]ProductType, error)
	GetProductType(ctx context.Context, id int) (ProductType, bool, error)
	CreateProductType(ctx context.Context, pt NewProductType) (ProductType, error)

	GetProducts(ctx context.Context, f ProductFilter) ([]Product, error)
	GetProduct(ctx context.Context, id int) (Product, bool, error)
	CreateProduct(ctx context.Context, p NewProduct) (Product, error)

	GetUserCollection(ctx context.Context, userID int) ([]UserCollection, error)
	AddToUserCollection(ctx context.Context, uc NewUserCollection) (UserCollection, error)
	RemoveFromUserCollection(ctx context.Context, userID, productID int) (bool, error)
}

// Pinger is implemented by stores that can report backend readiness.
type Pinger interface {
	Ping(ctx context.Context) error
}
