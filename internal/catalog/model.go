package catalog

import "time"

type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

type Article struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Excerpt     string    `json:"excerpt"`
	Author      string    `json:"author"`
	Category    string    `json:"category"`
	Language    string    `json:"language"`
	ImageURL    string    `json:"imageUrl"`
	Featured    bool      `json:"featured"`
	PublishedAt time.Time `json:"publishedAt"`
}

// Collection is a card-set release.
type Collection struct {
	ID            int       `json:"id"`
	Name          string    `json:"name"`
	NameIt        string    `json:"nameIt"`
	Description   string    `json:"description"`
	DescriptionIt string    `json:"descriptionIt"`
	ImageURL      string    `json:"imageUrl"`
	ReleaseDate   time.Time `json:"releaseDate"`
}

type ProductType struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	NameIt        string `json:"nameIt"`
	Description   string `json:"description"`
	DescriptionIt string `json:"descriptionIt"`
}

// Prices holds the current price of a product on each tracked marketplace.
type Prices struct {
	Cardmarket float64 `json:"cardmarket" validate:"gte=0"`
	Ebay       float64 `json:"ebay" validate:"gte=0"`
	Tcgplayer  float64 `json:"tcgplayer" validate:"gte=0"`
}

type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	NameIt        string  `json:"nameIt"`
	Description   string  `json:"description"`
	DescriptionIt string  `json:"descriptionIt"`
	CollectionID  int     `json:"collectionId"`
	ProductTypeID int     `json:"productTypeId"`
	CardNumber    *string `json:"cardNumber"`
	Rarity        *string `json:"rarity"`
	Language      string  `json:"language"`
	ImageURL      string  `json:"imageUrl"`
	Prices        Prices  `json:"prices"`
}

type UserCollection struct {
	ID        int       `json:"id"`
	UserID    int       `json:"userId"`
	ProductID int       `json:"productId"`
	AddedAt   time.Time `json:"addedAt"`
}

type NewUser struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type NewArticle struct {
	Title    string `json:"title" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Excerpt  string `json:"excerpt" validate:"required"`
	Author   string `json:"author" validate:"required"`
	Category string `json:"category" validate:"required"`
	Language string `json:"language" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
	Featured bool   `json:"featured"`
}

type NewCollection struct {
	Name          string    `json:"name" validate:"required"`
	NameIt        string    `json:"nameIt" validate:"required"`
	Description   string    `json:"description" validate:"required"`
	DescriptionIt string    `json:"descriptionIt" validate:"required"`
	ImageURL      string    `json:"imageUrl" validate:"required"`
	ReleaseDate   time.Time `json:"releaseDate" validate:"required"`
}

type NewProductType struct {
	Name          string `json:"name" validate:"required"`
	NameIt        string `json:"nameIt" validate:"required"`
	Description   string `json:"description" validate:"required"`
	DescriptionIt string `json:"descriptionIt" validate:"required"`
}

type NewProduct struct {
	Name          string  `json:"name" validate:"required"`
	NameIt        string  `json:"nameIt" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	DescriptionIt string  `json:"descriptionIt" validate:"required"`
	CollectionID  int     `json:"collectionId" validate:"required,gt=0"`
	ProductTypeID int     `json:"productTypeId" validate:"required,gt=0"`
	CardNumber    *string `json:"cardNumber"`
	Rarity        *string `json:"rarity"`
	Language      string  `json:"language" validate:"required"`
	ImageURL      string  `json:"imageUrl" validate:"required"`
	Prices        *Prices `json:"prices" validate:"required"`
}

type NewUserCollection struct {
	UserID    int `json:"userId" validate:"required,gt=0"`
	ProductID int `json:"productId" validate:"required,gt=0"`
}

func (p Product) clone() Product {
	p.CardNumber = cloneString(p.CardNumber)
	p.Rarity = cloneString(p.Rarity)
	return p
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}

// pricesOf treats a missing price block as all zeros.
func pricesOf(p *Prices) Prices {
	if p == nil {
		return Prices{}
	}
	return *p
}
