package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mfaisal/user-api/internal/api/shared"
	"github.com/mfaisal/user-api/internal/domain"
	"github.com/mfaisal/user-api/internal/service"
)

// UserHandler handles user-related HTTP requests.
// Each handler is a thin adapter: decode the request, call exactly one
// service method, serialize the result. Not-found translation lives in
// UserCtx so the keyed handlers never repeat it.
type UserHandler struct {
	userService service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger.With("component", "user_handler"),
	}
}

// UserCtx is the existence-check middleware for the /{userID} subtree.
// It resolves the path-supplied ID through the service before the handler
// runs: a missing row short-circuits with 404 "User not found", otherwise
// the resolved user is passed forward in the request context so handlers
// avoid a second lookup.
func (h *UserHandler) UserCtx(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := getPathID(r, "userID")
		if err != nil {
			h.logger.Debug("invalid userID path parameter", "error", err.Error())
			HandleAPIError(w, r, err, "")
			return
		}

		user, err := h.userService.GetUser(r.Context(), id)
		if err != nil {
			HandleAPIError(w, r, err, "")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userFromContext returns the user resolved by UserCtx.
// A missing value means the route was wired without the middleware.
func userFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(shared.UserContextKey).(*domain.User)
	return user, ok && user != nil
}

// ListUsers handles GET /users requests.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userService.ListUsers(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}

	// An empty table serializes as [], not null.
	if users == nil {
		users = []domain.User{}
	}

	shared.RespondWithJSON(w, r, http.StatusOK, users)
}

// CreateUser handles POST /users requests.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req UserInput
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err))
		return
	}

	user, err := h.userService.CreateUser(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, user)
}

// GetUser handles GET /users/{userID} requests.
// The row was already resolved by UserCtx; no second lookup happens here.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, nil, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, user)
}

// UpdateUser handles PUT /users/{userID} requests.
// Every field is overwritten from the request body; this is a full replace,
// not a partial patch.
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, nil, "")
		return
	}

	var req UserInput
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithError(w, r, http.StatusUnprocessableEntity, SanitizeValidationError(err))
		return
	}

	updated, err := h.userService.UpdateUser(r.Context(), user.ID, req.Name, req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, updated)
}

// DeleteUser handles DELETE /users/{userID} requests.
// Responds with the now-detached row snapshot.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		HandleAPIError(w, r, nil, "")
		return
	}

	deleted, err := h.userService.DeleteUser(r.Context(), user.ID)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, deleted)
}

// Routes returns the user endpoints as a mountable chi router. The keyed
// subtree goes through UserCtx so get/update/delete share one not-found
// path.
func (h *UserHandler) Routes() chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ListUsers)
	r.Post("/", h.CreateUser)

	r.Route("/{userID}", func(r chi.Router) {
		r.Use(h.UserCtx)
		r.Get("/", h.GetUser)
		r.Put("/", h.UpdateUser)
		r.Delete("/", h.DeleteUser)
	})

	return r
}
