package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mwhite7112/woodpantry-drinks/internal/logging"
	"github.com/mwhite7112/woodpantry-drinks/internal/service"
)

var validate = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report JSON field names in validation messages.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// NewRouter wires up all routes with the provided Service. allowedOrigins
// feeds the CORS middleware; leave it empty to allow any origin.
func NewRouter(svc *service.Service, allowedOrigins ...string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(logging.Middleware)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{"X-Request-Id"},
		MaxAge:         300,
	}))

	r.Get("/healthz", handleHealthz)
	r.Get("/health", handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Post("/create-account", handleCreateAccount(svc))
	r.Post("/login", handleLogin(svc))
	r.Post("/update-password", handleUpdatePassword(svc))

	r.Get("/random-drink", handleRandomDrink(svc))
	r.Get("/drink/{name}", handleGetDrink(svc))
	r.Get("/drink/{name}/alcoholic", handleIsAlcoholic(svc))
	r.Post("/count-alcoholic", handleCountAlcoholic(svc))

	r.Post("/create-drink", handleCreateDrink(svc))
	r.Post("/remove-drink", handleRemoveDrink(svc))
	r.Get("/list-drinks", handleListDrinks(svc))

	return r
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("ok")) //nolint:errcheck
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	jsonOK(w, map[string]string{"status": "healthy"})
}

// --- accounts ---

type accountRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type updatePasswordRequest struct {
	Username    string `json:"username" validate:"required"`
	NewPassword string `json:"new_password" validate:"required"`
}

type messageResponse struct {
	Message string `json:"message"`
}

func handleCreateAccount(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req accountRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if _, err := svc.CreateAccount(r.Context(), req.Username, req.Password); err != nil {
			serviceError(w, "failed to create account", err)
			return
		}
		jsonStatus(w, http.StatusCreated, messageResponse{Message: "Account created successfully"})
	}
}

func handleLogin(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req accountRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if _, err := svc.Login(r.Context(), req.Username, req.Password); err != nil {
			serviceError(w, "login failed", err)
			return
		}
		jsonOK(w, messageResponse{Message: "Login successful"})
	}
}

func handleUpdatePassword(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req updatePasswordRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		if _, err := svc.UpdatePassword(r.Context(), req.Username, req.NewPassword); err != nil {
			serviceError(w, "failed to update password", err)
			return
		}
		jsonOK(w, messageResponse{Message: "Password updated successfully"})
	}
}

// --- lookup ---

type drinkResponse struct {
	Status string              `json:"status"`
	Drink  service.DrinkRecord `json:"drink"`
}

func handleRandomDrink(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.FetchRandom(r.Context())
		if err != nil {
			serviceError(w, "failed to fetch random drink", err)
			return
		}
		jsonOK(w, drinkResponse{Status: "success", Drink: rec})
	}
}

func handleGetDrink(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := svc.FetchByName(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			serviceError(w, "failed to fetch drink", err)
			return
		}
		jsonOK(w, drinkResponse{Status: "success", Drink: rec})
	}
}

type alcoholicResponse struct {
	Status      string `json:"status"`
	Name        string `json:"name"`
	IsAlcoholic bool   `json:"is_alcoholic"`
}

func handleIsAlcoholic(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		alcoholic, err := svc.IsAlcoholic(r.Context(), name)
		if err != nil {
			serviceError(w, "failed to check drink", err)
			return
		}
		jsonOK(w, alcoholicResponse{Status: "success", Name: name, IsAlcoholic: alcoholic})
	}
}

type countAlcoholicRequest struct {
	Names []string `json:"names" validate:"required"`
}

type countAlcoholicResponse struct {
	Status         string `json:"status"`
	Total          int    `json:"total"`
	AlcoholicCount int    `json:"alcoholic_count"`
}

func handleCountAlcoholic(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req countAlcoholicRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		count, err := svc.CountAlcoholic(r.Context(), req.Names)
		if err != nil {
			serviceError(w, "failed to count alcoholic drinks", err)
			return
		}
		jsonOK(w, countAlcoholicResponse{Status: "success", Total: len(req.Names), AlcoholicCount: count})
	}
}

// --- list ---

type drinkNameRequest struct {
	Name string `json:"name" validate:"required"`
}

func handleCreateDrink(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req drinkNameRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		result, err := svc.AddDrink(r.Context(), req.Name)
		if errors.Is(err, service.ErrNotFound) {
			jsonError(w, "Drink not found.", http.StatusNotFound)
			return
		}
		if err != nil {
			serviceError(w, "failed to add drink", err)
			return
		}
		status := http.StatusCreated
		if result.Updated {
			status = http.StatusOK
		}
		jsonStatus(w, status, result)
	}
}

func handleRemoveDrink(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req drinkNameRequest
		if !decodeRequest(w, r, &req) {
			return
		}
		result, err := svc.RemoveDrink(req.Name)
		if err != nil {
			serviceError(w, "failed to remove drink", err)
			return
		}
		jsonOK(w, result)
	}
}

type listResponse struct {
	Names  []string              `json:"names"`
	Drinks []service.DrinkRecord `json:"drinks,omitempty"`
}

// handleListDrinks returns the sorted names; ?full=true adds the records.
func handleListDrinks(svc *service.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("full") != "true" {
			jsonOK(w, listResponse{Names: svc.ListNames()})
			return
		}
		drinks := svc.ListDrinks()
		names := make([]string, len(drinks))
		for i, d := range drinks {
			names[i] = d.Name
		}
		jsonOK(w, listResponse{Names: names, Drinks: drinks})
	}
}

// --- helpers ---

// decodeRequest decodes and validates a JSON body, writing a 400 on failure.
func decodeRequest(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		jsonError(w, "invalid request body", http.StatusBadRequest)
		return false
	}
	if err := validate.Struct(v); err != nil {
		jsonError(w, validationMessage(err), http.StatusBadRequest)
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid request body"
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if fe.Tag() == "required" {
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
			continue
		}
		msgs = append(msgs, fmt.Sprintf("%s is invalid", fe.Field()))
	}
	return strings.Join(msgs, "; ")
}

// serviceError maps service sentinels to HTTP statuses. Client errors carry
// the service message; server errors log the cause and return msg.
func serviceError(w http.ResponseWriter, msg string, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		jsonError(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, service.ErrInvalidCredentials):
		jsonError(w, "invalid credentials", http.StatusUnauthorized)
	case errors.Is(err, service.ErrNotFound):
		jsonError(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, service.ErrConflict):
		jsonError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, service.ErrTransport):
		jsonError(w, msg+": drink database unavailable", http.StatusBadGateway, err)
	default:
		jsonError(w, msg, http.StatusInternalServerError, err)
	}
}

func jsonOK(w http.ResponseWriter, v any) {
	jsonStatus(w, http.StatusOK, v)
}

func jsonStatus(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func jsonError(w http.ResponseWriter, msg string, status int, errs ...error) {
	if status >= 500 && len(errs) > 0 {
		slog.Error(msg, "status", status, "error", errs[0])
	}
	jsonStatus(w, status, map[string]string{"error": msg})
}
