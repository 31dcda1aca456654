package rest

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
	"github.com/heartmarshall/tringgo-backend/internal/service/directory"
	"github.com/heartmarshall/tringgo-backend/internal/service/merchant"
)

type directoryService interface {
	ListAreas(ctx context.Context) ([]domain.Area, error)
	GetArea(ctx context.Context, id uuid.UUID) (*domain.Area, error)
	ListPlaces(ctx context.Context, q directory.PlaceQuery) ([]domain.Place, error)
	GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error)
	UploadPlaceImage(ctx context.Context, placeID uuid.UUID, upload directory.ImageUpload) (*domain.Place, error)
	ListServices(ctx context.Context, q directory.ServiceQuery) ([]domain.Service, error)
	CreateService(ctx context.Context, input directory.CreateServiceInput) (*domain.Service, error)
	UpdateService(ctx context.Context, id uuid.UUID, input directory.UpdateServiceInput) (*domain.Service, error)
}

type exploreService interface {
	Explore(ctx context.Context, input merchant.ExploreInput) ([]domain.MerchantProfile, error)
}

// DirectoryHandler serves the public catalog and its admin writes.
type DirectoryHandler struct {
	dir       directoryService
	merchants exploreService
	maxUpload int64
	log       *slog.Logger
}

// NewDirectoryHandler creates a DirectoryHandler.
func NewDirectoryHandler(dir directoryService, merchants exploreService, maxUpload int64, logger *slog.Logger) *DirectoryHandler {
	return &DirectoryHandler{
		dir:       dir,
		merchants: merchants,
		maxUpload: maxUpload,
		log:       logger.With("handler", "directory"),
	}
}

// ListAreas handles GET /areas.
func (h *DirectoryHandler) ListAreas(w http.ResponseWriter, r *http.Request) {
	areas, err := h.dir.ListAreas(r.Context())
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(areas, toArea))
}

// GetArea handles GET /areas/{id}.
func (h *DirectoryHandler) GetArea(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	area, err := h.dir.GetArea(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toArea(*area))
}

// ListPlaces handles GET /places?area_id=&area=&category=&top_rated=&limit=.
func (h *DirectoryHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	areaID, err := optionalUUID("area_id", q.Get("area_id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	topRated, err := queryBool(r, "top_rated")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	places, err := h.dir.ListPlaces(r.Context(), directory.PlaceQuery{
		AreaID:   areaID,
		Area:     strings.TrimSpace(q.Get("area")),
		Category: domain.PlaceCategory(strings.ToUpper(q.Get("category"))),
		TopRated: topRated,
		Limit:    limit,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(places, toPlace))
}

// GetPlace handles GET /places/{id}.
func (h *DirectoryHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	p, err := h.dir.GetPlace(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlace(*p))
}

// UploadPlaceImage handles POST /places/{id}/image as multipart form data
// with the file in the "image" part.
func (h *DirectoryHandler) UploadPlaceImage(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload+64<<10)
	file, header, err := r.FormFile("image")
	if err != nil {
		respondError(w, r, h.log, domain.NewValidationError("image", "multipart field 'image' is required"))
		return
	}
	defer file.Close()

	// The declared part type is not trusted; sniff the leading bytes.
	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		respondError(w, r, h.log, err)
		return
	}
	head = head[:n]

	p, err := h.dir.UploadPlaceImage(r.Context(), id, directory.ImageUpload{
		Body:        io.MultiReader(bytes.NewReader(head), file),
		Size:        header.Size,
		ContentType: http.DetectContentType(head),
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPlace(*p))
}

// ListServices handles GET /services?area_id=&category=&limit=.
func (h *DirectoryHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	areaID, err := optionalUUID("area_id", r.URL.Query().Get("area_id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	services, err := h.dir.ListServices(r.Context(), directory.ServiceQuery{
		AreaID:   areaID,
		Category: domain.ServiceCategory(strings.ToUpper(r.URL.Query().Get("category"))),
		Limit:    limit,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(services, toService))
}

type createServiceRequest struct {
	Name      string     `json:"name"`
	Category  string     `json:"category"`
	AreaID    *uuid.UUID `json:"area_id"`
	Address   string     `json:"address"`
	Phone     string     `json:"phone"`
	OpenHours string     `json:"open_hours"`
	Notes     string     `json:"notes"`
}

// CreateService handles POST /services.
func (h *DirectoryHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req createServiceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	s, err := h.dir.CreateService(r.Context(), directory.CreateServiceInput{
		Name:      req.Name,
		Category:  domain.ServiceCategory(req.Category),
		AreaID:    req.AreaID,
		Address:   req.Address,
		Phone:     req.Phone,
		OpenHours: req.OpenHours,
		Notes:     req.Notes,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toService(*s))
}

type updateServiceRequest struct {
	Name      *string    `json:"name"`
	Category  *string    `json:"category"`
	AreaID    *uuid.UUID `json:"area_id"`
	Address   *string    `json:"address"`
	Phone     *string    `json:"phone"`
	OpenHours *string    `json:"open_hours"`
	Notes     *string    `json:"notes"`
	IsActive  *bool      `json:"is_active"`
}

// UpdateService handles PATCH /services/{id}.
func (h *DirectoryHandler) UpdateService(w http.ResponseWriter, r *http.Request) {
	id, err := uuidParam(r, "id")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	var req updateServiceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, h.log, err)
		return
	}

	input := directory.UpdateServiceInput{
		Name:      req.Name,
		AreaID:    req.AreaID,
		Address:   req.Address,
		Phone:     req.Phone,
		OpenHours: req.OpenHours,
		Notes:     req.Notes,
		IsActive:  req.IsActive,
	}
	if req.Category != nil {
		c := domain.ServiceCategory(strings.ToUpper(strings.TrimSpace(*req.Category)))
		input.Category = &c
	}

	s, err := h.dir.UpdateService(r.Context(), id, input)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toService(*s))
}

// ListMerchants handles GET /merchants?area_id=&verified=&limit=.
func (h *DirectoryHandler) ListMerchants(w http.ResponseWriter, r *http.Request) {
	areaID, err := optionalUUID("area_id", r.URL.Query().Get("area_id"))
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	verified, err := queryBool(r, "verified")
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	limit, err := queryInt(r, "limit", 50)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	ms, err := h.merchants.Explore(r.Context(), merchant.ExploreInput{
		AreaID:       areaID,
		VerifiedOnly: verified,
		Limit:        limit,
	})
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}

	resp, err := toMerchants(r.Context(), ms)
	if err != nil {
		respondError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
