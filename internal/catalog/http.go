package catalog

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"PokeHunter/internal/database"
	"PokeHunter/pkg/kit"
)

const readyTimeout = 1 * time.Second

var validate = validator.New(validator.WithRequiredStructEnabled())

type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		kit.WriteError(w, r, http.StatusNotFound, "Not found", nil)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		kit.WriteError(w, r, http.StatusMethodNotAllowed, "Method not allowed", nil)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Get("/readyz", s.ready)

	r.Route("/api", func(r chi.Router) {
		r.Get("/articles", s.listArticles)
		r.Get("/articles/{id}", s.getArticle)
		r.Post("/articles", s.createArticle)

		r.Get("/collections", s.listCollections)
		r.Get("/collections/{id}", s.getCollection)

		r.Get("/product-types", s.listProductTypes)

		r.Get("/products", s.listProducts)
		r.Get("/products/{id}", s.getProduct)
		r.Post("/products", s.createProduct)

		r.Get("/user-collections/{userId}", s.listUserCollection)
		r.Post("/user-collections", s.addToUserCollection)
		r.Delete("/user-collections/{userId}/{productId}", s.removeFromUserCollection)
	})

	return r
}

func (s *Server) ready(w http.ResponseWriter, r *http.Request) {
	p, ok := s.Store.(Pinger)
	if !ok {
		w.WriteHeader(http.StatusOK)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
	defer cancel()

	if err := p.Ping(ctx); err != nil {
		s.logger().Warn("readyz failed", zap.Error(err))
		kit.WriteError(w, r, http.StatusServiceUnavailable, "not ready", nil)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (s *Server) listArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := s.Store.GetArticles(r.Context(), r.URL.Query().Get("language"))
	if err != nil {
		s.fail(w, r, "Failed to fetch articles", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, articles)
}

func (s *Server) getArticle(w http.ResponseWriter, r *http.Request) {
	a, ok, err := s.Store.GetArticle(r.Context(), pathID(r, "id"))
	if err != nil {
		s.fail(w, r, "Failed to fetch article", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Article not found", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, a)
}

func (s *Server) createArticle(w http.ResponseWriter, r *http.Request) {
	var in NewArticle
	if !s.decode(w, r, &in, "Invalid article data") {
		return
	}

	a, err := s.Store.CreateArticle(r.Context(), in)
	if err != nil {
		s.reject(w, r, "Invalid article data", err)
		return
	}
	kit.WriteJSON(w, http.StatusCreated, a)
}

func (s *Server) listCollections(w http.ResponseWriter, r *http.Request) {
	collections, err := s.Store.GetCollections(r.Context())
	if err != nil {
		s.fail(w, r, "Failed to fetch collections", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, collections)
}

func (s *Server) getCollection(w http.ResponseWriter, r *http.Request) {
	c, ok, err := s.Store.GetCollection(r.Context(), pathID(r, "id"))
	if err != nil {
		s.fail(w, r, "Failed to fetch collection", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Collection not found", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, c)
}

func (s *Server) listProductTypes(w http.ResponseWriter, r *http.Request) {
	types, err := s.Store.GetProductTypes(r.Context())
	if err != nil {
		s.fail(w, r, "Failed to fetch product types", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, types)
}

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := ProductFilter{
		CollectionID:  queryInt(q.Get("collectionId")),
		ProductTypeID: queryInt(q.Get("productTypeId")),
		Language:      q.Get("language"),
		Search:        q.Get("search"),
	}

	products, err := s.Store.GetProducts(r.Context(), f)
	if err != nil {
		s.fail(w, r, "Failed to fetch products", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	p, ok, err := s.Store.GetProduct(r.Context(), pathID(r, "id"))
	if err != nil {
		s.fail(w, r, "Failed to fetch product", err)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "Product not found", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) createProduct(w http.ResponseWriter, r *http.Request) {
	var in NewProduct
	if !s.decode(w, r, &in, "Invalid product data") {
		return
	}

	p, err := s.Store.CreateProduct(r.Context(), in)
	if err != nil {
		s.reject(w, r, "Invalid product data", err)
		return
	}
	kit.WriteJSON(w, http.StatusCreated, p)
}

func (s *Server) listUserCollection(w http.ResponseWriter, r *http.Request) {
	items, err := s.Store.GetUserCollection(r.Context(), pathID(r, "userId"))
	if err != nil {
		s.fail(w, r, "Failed to fetch user collection", err)
		return
	}
	kit.WriteJSON(w, http.StatusOK, items)
}

func (s *Server) addToUserCollection(w http.ResponseWriter, r *http.Request) {
	var in NewUserCollection
	if !s.decode(w, r, &in, "Invalid user collection data") {
		return
	}

	uc, err := s.Store.AddToUserCollection(r.Context(), in)
	if err != nil {
		s.reject(w, r, "Invalid user collection data", err)
		return
	}
	kit.WriteJSON(w, http.StatusCreated, uc)
}

func (s *Server) removeFromUserCollection(w http.ResponseWriter, r *http.Request) {
	userID := pathID(r, "userId")
	productID := pathID(r, "productId")

	removed, err := s.Store.RemoveFromUserCollection(r.Context(), userID, productID)
	if err != nil {
		s.fail(w, r, "Failed to remove item from collection", err)
		return
	}
	if !removed {
		kit.WriteError(w, r, http.StatusNotFound, "User collection item not found", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, map[string]string{"message": "Item removed from collection"})
}

// decode reads and validates a create payload, answering 400 with msg on
// failure.
func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any, msg string) bool {
	if err := kit.DecodeJSON(w, r, v); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, msg, nil)
		return false
	}
	if err := validate.Struct(v); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, msg, validationDetails(err))
		return false
	}
	return true
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.logger().Error(msg, zap.Error(err), zap.String("path", r.URL.Path))
	kit.WriteError(w, r, http.StatusInternalServerError, msg, nil)
}

func (s *Server) reject(w http.ResponseWriter, r *http.Request, msg string, err error) {
	s.logger().Warn(msg,
		zap.Error(err),
		zap.String("path", r.URL.Path),
		zap.Bool("constraint_violation", database.IsConstraintViolation(err)),
	)
	kit.WriteError(w, r, http.StatusBadRequest, msg, nil)
}

func (s *Server) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// validationDetails maps each failing field to the tag it failed.
func validationDetails(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Namespace()] = fe.Tag()
	}
	return out
}

// pathID parses a numeric path parameter. Anything unparsable becomes 0,
// which never names a record.
func pathID(r *http.Request, name string) int {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil {
		return 0
	}
	return id
}

func queryInt(v string) int {
	if v == "" {
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	return n
}
