package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"github.com/heartmarshall/tringgo-backend/internal/service/review"
)

type reviewService interface {
	Create(ctx context.Context, input review.CreateInput) (*domain.Review, error)
	Update(ctx context.Context, id uuid.UUID, input review.UpdateInput) (*domain.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListMine(ctx context.Context) ([]domain.Review, error)
	ListForPlace(ctx context.Context, placeID uuid.UUID) ([]domain.Review, error)
}

type savedPlaceService interface {
	List(ctx context.Context) ([]domain.SavedPlace, error)
	Add(ctx context.Context, placeID uuid.UUID) error
	Remove(ctx context.Context, placeID uuid.UUID) error
}

// TravelerHandler serves reviews and saved places.
type TravelerHandler struct {
	reviews reviewService
	saved   savedPlaceService
	log     *slog.Logger
}

// NewTravelerHandler creates a TravelerHandler.
func NewTravelerHandler(reviews reviewService, saved savedPlaceService, logger *slog.Logger) *TravelerHandler {
	return &TravelerHandler{reviews: reviews, saved: saved, log: logger.With("handler", "traveler")}
}

type createReviewRequest struct {
	PlaceID string `json:"place_id"`
	Rating  int    `json:"rating"`
	Title   string `json:"title"`
	Text    string `json:"text"`
}

// CreateReview handles POST /reviews.
func (h *TravelerHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var req createReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	placeID, err := uuid.Parse(req.PlaceID)
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("place_id", "must be a UUID"))
		return
	}

	rv, err := h.reviews.Create(r.Context(), review.CreateInput{
		PlaceID: placeID,
		Rating:  req.Rating,
		Title:   req.Title,
		Text:    req.Text,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toReview(*rv))
}

type updateReviewRequest struct {
	Rating *int    `json:"rating"`
	Title  *string `json:"title"`
	Text   *string `json:"text"`
}

// UpdateReview handles PATCH /reviews/{id}.
func (h *TravelerHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	rv, err := h.reviews.Update(r.Context(), id, review.UpdateInput(req))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReview(*rv))
}

// DeleteReview handles DELETE /reviews/{id}.
func (h *TravelerHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.reviews.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MyReviews handles GET /reviews/mine.
func (h *TravelerHandler) MyReviews(w http.ResponseWriter, r *http.Request) {
	list, err := h.reviews.ListMine(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toReview))
}

// PlaceReviews handles GET /places/{id}/reviews.
func (h *TravelerHandler) PlaceReviews(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	list, err := h.reviews.ListForPlace(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toReview))
}

type savedPlaceResponse struct {
	Place   placeResponse `json:"place"`
	SavedAt time.Time     `json:"saved_at"`
}

// ListSaved handles GET /saved-places.
func (h *TravelerHandler) ListSaved(w http.ResponseWriter, r *http.Request) {
	list, err := h.saved.List(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, func(sp domain.SavedPlace) savedPlaceResponse {
		return savedPlaceResponse{Place: toPlace(sp.Place), SavedAt: sp.CreatedAt}
	}))
}

type savePlaceRequest struct {
	PlaceID string `json:"place_id"`
}

// SavePlace handles POST /saved-places.
func (h *TravelerHandler) SavePlace(w http.ResponseWriter, r *http.Request) {
	var req savePlaceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	placeID, err := uuid.Parse(req.PlaceID)
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("place_id", "must be a UUID"))
		return
	}
	if err := h.saved.Add(r.Context(), placeID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// UnsavePlace handles DELETE /saved-places/{placeID}.
func (h *TravelerHandler) UnsavePlace(w http.ResponseWriter, r *http.Request) {
	placeID, err := uuidParam(r, "placeID")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	if err := h.saved.Remove(r.Context(), placeID); err != nil {
		respondError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
