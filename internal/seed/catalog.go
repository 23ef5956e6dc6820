package seed

import "PokeHunter/internal/catalog"

const cdn = "https://dz3we2x72f7ol.cloudfront.net/expansions/"

// Italian copies of the English singles are priced off the English ones
// with one factor per marketplace.
var italianFactor = catalog.Prices{Cardmarket: 0.85, Ebay: 0.88, Tcgplayer: 0.87}

type setKey int

const (
	scarletViolet setKey = iota
	paldeaEvolved
)

type typeKey int

const (
	singles typeKey = iota
	packs
	eliteTrainerBox
)

var productTypes = []catalog.NewProductType{
	singles: {
		Name:          "Single Cards",
		NameIt:        "Carte Singole",
		Description:   "Individual Pokemon cards",
		DescriptionIt: "Carte Pokemon individuali",
	},
	packs: {
		Name:          "Booster Packs",
		NameIt:        "Buste",
		Description:   "Booster packs containing random cards",
		DescriptionIt: "Buste contenenti carte casuali",
	},
	eliteTrainerBox: {
		Name:          "Elite Trainer Box",
		NameIt:        "Elite Trainer Box",
		Description:   "Complete trainer boxes with packs and accessories",
		DescriptionIt: "Scatole complete con buste e accessori",
	},
}

// collections is in insertion order; Paldea Evolved gets the lower id.
var collections = []struct {
	key setKey
	catalog.NewCollection
}{
	{paldeaEvolved, catalog.NewCollection{
		Name:          "Paldea Evolved",
		NameIt:        "Paldea Evolved",
		Description:   "The latest expansion featuring Paldea region Pokemon",
		DescriptionIt: "L'ultima espansione con Pokemon della regione di Paldea",
		ImageURL:      "https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=400&h=300&fit=crop",
		ReleaseDate:   date(2024, 6, 9),
	}},
	{scarletViolet, catalog.NewCollection{
		Name:          "Scarlet & Violet",
		NameIt:        "Scarlatto e Violetto",
		Description:   "Base set of the Scarlet & Violet series",
		DescriptionIt: "Set base della serie Scarlatto e Violetto",
		ImageURL:      "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=300&fit=crop",
		ReleaseDate:   date(2023, 3, 31),
	}},
}

type card struct {
	set           setKey
	name          string
	description   string
	descriptionIt string
	number        string
	rarity        string
	image         string
	prices        catalog.Prices
}

var cards = []card{
	{scarletViolet, "Koraidon ex", "Legendary Fighting-type Pokemon ex", "Pokemon ex leggendario di tipo Lotta",
		"125/198", "Ultra Rare", "scarlet-violet/en-us/SV01_EN_125.png", catalog.Prices{Cardmarket: 89.99, Ebay: 95.00, Tcgplayer: 92.50}},
	{scarletViolet, "Miraidon ex", "Legendary Electric-type Pokemon ex", "Pokemon ex leggendario di tipo Elettro",
		"81/198", "Ultra Rare", "scarlet-violet/en-us/SV01_EN_81.png", catalog.Prices{Cardmarket: 78.99, Ebay: 82.00, Tcgplayer: 80.25}},
	{scarletViolet, "Spidops ex", "Bug-type Pokemon ex", "Pokemon ex di tipo Coleottero",
		"19/198", "Ultra Rare", "scarlet-violet/en-us/SV01_EN_19.png", catalog.Prices{Cardmarket: 12.99, Ebay: 15.00, Tcgplayer: 13.75}},
	{scarletViolet, "Arcanine ex", "Fire-type Pokemon ex", "Pokemon ex di tipo Fuoco",
		"31/198", "Ultra Rare", "scarlet-violet/en-us/SV01_EN_31.png", catalog.Prices{Cardmarket: 18.99, Ebay: 22.00, Tcgplayer: 20.50}},
	{scarletViolet, "Floragato", "Grass-type Pokemon evolution", "Pokemon evoluzione di tipo Erba",
		"8/198", "Common", "scarlet-violet/en-us/SV01_EN_8.png", catalog.Prices{Cardmarket: 2.99, Ebay: 3.50, Tcgplayer: 3.25}},
	{scarletViolet, "Meowscarada", "Grass/Dark-type starter evolution", "Evoluzione starter di tipo Erba/Buio",
		"9/198", "Rare", "scarlet-violet/en-us/SV01_EN_9.png", catalog.Prices{Cardmarket: 8.99, Ebay: 10.00, Tcgplayer: 9.50}},
	{scarletViolet, "Crocalor", "Fire-type Pokemon evolution", "Pokemon evoluzione di tipo Fuoco",
		"26/198", "Common", "scarlet-violet/en-us/SV01_EN_26.png", catalog.Prices{Cardmarket: 3.99, Ebay: 4.50, Tcgplayer: 4.25}},
	{scarletViolet, "Skeledirge", "Fire/Ghost-type starter evolution", "Evoluzione starter di tipo Fuoco/Spettro",
		"27/198", "Rare", "scarlet-violet/en-us/SV01_EN_27.png", catalog.Prices{Cardmarket: 9.99, Ebay: 11.00, Tcgplayer: 10.50}},
	{scarletViolet, "Quaxwell", "Water-type Pokemon evolution", "Pokemon evoluzione di tipo Acqua",
		"53/198", "Common", "scarlet-violet/en-us/SV01_EN_53.png", catalog.Prices{Cardmarket: 2.99, Ebay: 3.50, Tcgplayer: 3.25}},
	{scarletViolet, "Quaquaval", "Water/Fighting-type starter evolution", "Evoluzione starter di tipo Acqua/Lotta",
		"54/198", "Rare", "scarlet-violet/en-us/SV01_EN_54.png", catalog.Prices{Cardmarket: 8.99, Ebay: 10.00, Tcgplayer: 9.50}},

	{paldeaEvolved, "Meowscarada ex", "Grass/Dark-type starter Pokemon ex", "Pokemon ex starter di tipo Erba/Buio",
		"15/193", "Ultra Rare", "paldea-evolved/en-us/SV02_EN_15.png", catalog.Prices{Cardmarket: 45.99, Ebay: 52.00, Tcgplayer: 48.75}},
	{paldeaEvolved, "Skeledirge ex", "Fire/Ghost-type starter Pokemon ex", "Pokemon ex starter di tipo Fuoco/Spettro",
		"33/193", "Ultra Rare", "paldea-evolved/en-us/SV02_EN_33.png", catalog.Prices{Cardmarket: 42.99, Ebay: 48.00, Tcgplayer: 45.50}},
	{paldeaEvolved, "Quaquaval ex", "Water/Fighting-type starter Pokemon ex", "Pokemon ex starter di tipo Acqua/Lotta",
		"58/193", "Ultra Rare", "paldea-evolved/en-us/SV02_EN_58.png", catalog.Prices{Cardmarket: 38.99, Ebay: 44.00, Tcgplayer: 41.25}},
	{paldeaEvolved, "Forretress ex", "Bug/Steel-type Pokemon ex", "Pokemon ex di tipo Coleottero/Acciaio",
		"5/193", "Ultra Rare", "paldea-evolved/en-us/SV02_EN_5.png", catalog.Prices{Cardmarket: 22.99, Ebay: 26.00, Tcgplayer: 24.50}},
	{paldeaEvolved, "Slowking ex", "Water/Psychic-type Pokemon ex", "Pokemon ex di tipo Acqua/Psico",
		"61/193", "Ultra Rare", "paldea-evolved/en-us/SV02_EN_61.png", catalog.Prices{Cardmarket: 28.99, Ebay: 32.00, Tcgplayer: 30.50}},
	{paldeaEvolved, "Chien-Pao ex", "Dark/Ice-type legendary Pokemon ex", "Pokemon ex leggendario di tipo Buio/Ghiaccio",
		"61/193", "Ultra Rare", "paldea-evolved/en-us/SV02_EN_127.png", catalog.Prices{Cardmarket: 67.99, Ebay: 75.00, Tcgplayer: 71.25}},
	{paldeaEvolved, "Ting-Lu ex", "Dark/Ground-type legendary Pokemon ex", "Pokemon ex leggendario di tipo Buio/Terra",
		"103/193", "Ultra Rare", "paldea-evolved/en-us/SV02_EN_103.png", catalog.Prices{Cardmarket: 58.99, Ebay: 65.00, Tcgplayer: 62.25}},
	{paldeaEvolved, "Chi-Yu ex", "Dark/Fire-type legendary Pokemon ex", "Pokemon ex leggendario di tipo Buio/Fuoco",
		"40/193", "Ultra Rare", "paldea-evolved/en-us/SV02_EN_40.png", catalog.Prices{Cardmarket: 78.99, Ebay: 85.00, Tcgplayer: 81.25}},
	{paldeaEvolved, "Wo-Chien ex", "Dark/Grass-type legendary Pokemon ex", "Pokemon ex leggendario di tipo Buio/Erba",
		"20/193", "Ultra Rare", "paldea-evolved/en-us/SV02_EN_20.png", catalog.Prices{Cardmarket: 52.99, Ebay: 58.00, Tcgplayer: 55.50}},
	{paldeaEvolved, "Pikachu ex", "Electric-type Pokemon ex", "Pokemon ex di tipo Elettro",
		"85/193", "Ultra Rare", "paldea-evolved/en-us/SV02_EN_85.png", catalog.Prices{Cardmarket: 89.99, Ebay: 98.00, Tcgplayer: 93.50}},
	{paldeaEvolved, "Dedenne ex", "Electric/Fairy-type Tera Pokemon ex", "Pokemon ex Teracristal di tipo Elettro/Folletto",
		"86/193", "Ultra Rare", "paldea-evolved/en-us/SV02_EN_86.png", catalog.Prices{Cardmarket: 32.99, Ebay: 38.00, Tcgplayer: 35.50}},
}

type sealed struct {
	set  setKey
	kind typeKey
	catalog.NewProduct
}

var sealedProducts = []sealed{
	{paldeaEvolved, packs, catalog.NewProduct{
		Name:          "Paldea Evolved Booster Pack",
		NameIt:        "Busta Paldea Evolved",
		Description:   "11 card booster pack",
		DescriptionIt: "Busta da 11 carte",
		Language:      "en",
		ImageURL:      cdn + "paldea-evolved/en-us/SV02_EN_127.png",
		Prices:        &catalog.Prices{Cardmarket: 3.99, Ebay: 4.50, Tcgplayer: 4.25},
	}},
	{scarletViolet, packs, catalog.NewProduct{
		Name:          "Scarlet & Violet Booster Pack",
		NameIt:        "Busta Scarlatto e Violetto",
		Description:   "11 card booster pack",
		DescriptionIt: "Busta da 11 carte",
		Language:      "en",
		ImageURL:      cdn + "scarlet-violet/en-us/SV01_EN_125.png",
		Prices:        &catalog.Prices{Cardmarket: 4.25, Ebay: 4.75, Tcgplayer: 4.50},
	}},
	{paldeaEvolved, eliteTrainerBox, catalog.NewProduct{
		Name:          "Paldea Evolved Elite Trainer Box",
		NameIt:        "Elite Trainer Box Paldea Evolved",
		Description:   "Contains 9 booster packs and accessories",
		DescriptionIt: "Contiene 9 buste e accessori",
		Language:      "en",
		ImageURL:      cdn + "paldea-evolved/en-us/SV02_EN_61.png",
		Prices:        &catalog.Prices{Cardmarket: 39.99, Ebay: 45.00, Tcgplayer: 42.50},
	}},
}

var articles = []catalog.NewArticle{
	{
		Title:    "Paldea Evolved: Complete Set Review & Investment Guide",
		Content:  "Discover the most valuable cards from the latest expansion and learn which ones are worth adding to your collection.",
		Excerpt:  "Complete guide to Paldea Evolved set with investment tips",
		Author:   "PokeHunter Team",
		Category: "Featured",
		Language: "en",
		ImageURL: cdn + "paldea-evolved/en-us/SV02_EN_127.png",
		Featured: true,
	},
	{
		Title:    "Pack Opening Strategy: Maximizing Your Pulls",
		Content:  "Learn the best techniques and timing for opening booster packs to get the most value.",
		Excerpt:  "Best practices for booster pack opening",
		Author:   "PokeHunter Team",
		Category: "Strategy",
		Language: "en",
		ImageURL: cdn + "scarlet-violet/en-us/SV01_EN_81.png",
	},
}
