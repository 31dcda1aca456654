package seeder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

// allPhases defines the canonical execution order.
var allPhases = []string{"areas", "places", "services"}

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Updated  int
	Skipped  int
	Errors   int
	Duration time.Duration
	Err      error
}

// Pipeline orchestrates the seeding phases.
type Pipeline struct {
	log      *slog.Logger
	areas    AreaRepo
	places   PlaceRepo
	services ServiceRepo
	cfg      Config
	results  map[string]PhaseResult

	// lowercased area name -> id
	areaIDs map[string]uuid.UUID
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, areas AreaRepo, places PlaceRepo, services ServiceRepo, cfg Config) *Pipeline {
	return &Pipeline{
		log:      log.With("component", "seeder"),
		areas:    areas,
		places:   places,
		services: services,
		cfg:      cfg,
		results:  make(map[string]PhaseResult),
		areaIDs:  make(map[string]uuid.UUID),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase recorded errors.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil || r.Errors > 0 {
			return true
		}
	}
	return false
}

// Run executes the pipeline over f. If phases is non-empty, only the listed
// phases run. Unknown phase names are an error.
func (p *Pipeline) Run(ctx context.Context, f *File, phases []string) error {
	// Step 1: Determine which phases to run.
	toRun := allPhases
	if len(phases) > 0 {
		filter := make(map[string]bool, len(phases))
		for _, ph := range phases {
			if !isKnownPhase(ph) {
				return fmt.Errorf("unknown phase %q", ph)
			}
			filter[ph] = true
		}
		var filtered []string
		for _, ph := range allPhases {
			if filter[ph] {
				filtered = append(filtered, ph)
			}
		}
		toRun = filtered
	}

	// Step 2: Execute phases in order.
	for _, phase := range toRun {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase), slog.Bool("dry_run", p.cfg.DryRun))

		var result PhaseResult
		switch phase {
		case "areas":
			result = p.runAreas(ctx, f.Areas)
		case "places":
			result = p.runPlaces(ctx, f.Places)
		case "services":
			result = p.runServices(ctx, f.Services)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("updated", result.Updated),
				slog.Int("skipped", result.Skipped),
				slog.Int("errors", result.Errors),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	// Step 3: Summary log.
	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func isKnownPhase(name string) bool {
	for _, ph := range allPhases {
		if ph == name {
			return true
		}
	}
	return false
}

// runAreas upserts every area. Existing areas get their description refreshed.
func (p *Pipeline) runAreas(ctx context.Context, seeds []AreaSeed) PhaseResult {
	var res PhaseResult
	for _, s := range seeds {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			p.rowError(&res, "areas", name, errors.New("name is required"))
			continue
		}

		existing, err := p.areas.GetByName(ctx, name)
		switch {
		case err == nil:
			p.areaIDs[strings.ToLower(name)] = existing.ID
		case errors.Is(err, domain.ErrNotFound):
			existing = nil
		default:
			res.Err = fmt.Errorf("get area %q: %w", name, err)
			return res
		}

		if p.cfg.DryRun {
			p.countUpsert(&res, existing != nil)
			if existing == nil {
				p.areaIDs[strings.ToLower(name)] = uuid.Nil
			}
			continue
		}

		a, err := p.areas.Create(ctx, domain.Area{Name: name, Description: strings.TrimSpace(s.Description)}, true)
		if err != nil {
			p.rowError(&res, "areas", name, err)
			continue
		}
		p.areaIDs[strings.ToLower(name)] = a.ID
		p.countUpsert(&res, existing != nil)
	}
	return res
}

// runPlaces inserts places whose name is not yet listed in their area.
func (p *Pipeline) runPlaces(ctx context.Context, seeds []PlaceSeed) PhaseResult {
	var res PhaseResult
	known := make(map[uuid.UUID]map[string]bool)

	for _, s := range seeds {
		place, err := s.toDomain()
		if err != nil {
			p.rowError(&res, "places", s.Name, err)
			continue
		}

		areaID, err := p.resolveArea(ctx, s.Area)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				p.rowError(&res, "places", s.Name, fmt.Errorf("unknown area %q", s.Area))
				continue
			}
			res.Err = err
			return res
		}
		place.AreaID = &areaID

		names, ok := known[areaID]
		if !ok {
			names, err = p.placeNames(ctx, areaID)
			if err != nil {
				res.Err = err
				return res
			}
			known[areaID] = names
		}
		key := strings.ToLower(place.Name)
		if names[key] {
			res.Skipped++
			continue
		}

		if !p.cfg.DryRun {
			if _, err := p.places.Create(ctx, place); err != nil {
				p.rowError(&res, "places", place.Name, err)
				continue
			}
		}
		names[key] = true
		res.Inserted++
	}
	return res
}

// runServices inserts services whose name is not yet listed in their area.
func (p *Pipeline) runServices(ctx context.Context, seeds []ServiceSeed) PhaseResult {
	var res PhaseResult
	known := make(map[uuid.UUID]map[string]bool)

	for _, s := range seeds {
		svc, err := s.toDomain()
		if err != nil {
			p.rowError(&res, "services", s.Name, err)
			continue
		}

		areaID, err := p.resolveArea(ctx, s.Area)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				p.rowError(&res, "services", s.Name, fmt.Errorf("unknown area %q", s.Area))
				continue
			}
			res.Err = err
			return res
		}
		svc.AreaID = &areaID

		names, ok := known[areaID]
		if !ok {
			names, err = p.serviceNames(ctx, areaID)
			if err != nil {
				res.Err = err
				return res
			}
			known[areaID] = names
		}
		key := strings.ToLower(svc.Name)
		if names[key] {
			res.Skipped++
			continue
		}

		if !p.cfg.DryRun {
			if _, err := p.services.Create(ctx, svc); err != nil {
				p.rowError(&res, "services", svc.Name, err)
				continue
			}
		}
		names[key] = true
		res.Inserted++
	}
	return res
}

// resolveArea maps an area name to its id, consulting the database for
// areas that were not part of this run. Returns ErrNotFound for unknown names.
func (p *Pipeline) resolveArea(ctx context.Context, name string) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, domain.ErrNotFound
	}
	if id, ok := p.areaIDs[strings.ToLower(name)]; ok {
		return id, nil
	}

	a, err := p.areas.GetByName(ctx, name)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, err
		}
		return uuid.Nil, fmt.Errorf("resolve area %q: %w", name, err)
	}
	p.areaIDs[strings.ToLower(name)] = a.ID
	return a.ID, nil
}

func (p *Pipeline) placeNames(ctx context.Context, areaID uuid.UUID) (map[string]bool, error) {
	names := make(map[string]bool)
	if areaID == uuid.Nil {
		return names, nil
	}
	existing, err := p.places.Query(ctx, domain.PlaceFilter{AreaID: &areaID, Limit: queryLimit})
	if err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	for _, pl := range existing {
		names[strings.ToLower(pl.Name)] = true
	}
	return names, nil
}

func (p *Pipeline) serviceNames(ctx context.Context, areaID uuid.UUID) (map[string]bool, error) {
	names := make(map[string]bool)
	if areaID == uuid.Nil {
		return names, nil
	}
	existing, err := p.services.Query(ctx, domain.ServiceFilter{AreaID: &areaID, Limit: queryLimit})
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	for _, s := range existing {
		names[strings.ToLower(s.Name)] = true
	}
	return names, nil
}

// queryLimit is clamped by the repositories to their own maximum.
const queryLimit = 1000

func (p *Pipeline) countUpsert(res *PhaseResult, existed bool) {
	if existed {
		res.Updated++
	} else {
		res.Inserted++
	}
}

func (p *Pipeline) rowError(res *PhaseResult, phase, name string, err error) {
	res.Errors++
	p.log.Warn("seed row rejected",
		slog.String("phase", phase),
		slog.String("name", name),
		slog.String("error", err.Error()),
	)
}

func (s PlaceSeed) toDomain() (domain.Place, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return domain.Place{}, errors.New("name is required")
	}

	category := domain.PlaceCategory(strings.ToUpper(strings.TrimSpace(s.Category)))
	if category == "" {
		category = domain.PlaceCategoryOther
	}
	if !category.IsValid() {
		return domain.Place{}, fmt.Errorf("invalid category %q", s.Category)
	}

	opens, err := clock(s.Opens)
	if err != nil {
		return domain.Place{}, err
	}
	closes, err := clock(s.Closes)
	if err != nil {
		return domain.Place{}, err
	}

	return domain.Place{
		Name:        name,
		Description: strings.TrimSpace(s.Description),
		Category:    category,
		Address:     strings.TrimSpace(s.Address),
		IsPopular:   s.Popular,
		OpeningTime: opens,
		ClosingTime: closes,
	}, nil
}

func (s ServiceSeed) toDomain() (domain.Service, error) {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		return domain.Service{}, errors.New("name is required")
	}

	category := domain.ServiceCategory(strings.ToUpper(strings.TrimSpace(s.Category)))
	if !category.IsValid() {
		return domain.Service{}, fmt.Errorf("invalid category %q", s.Category)
	}

	return domain.Service{
		Name:      name,
		Category:  category,
		Address:   strings.TrimSpace(s.Address),
		Phone:     strings.TrimSpace(s.Phone),
		OpenHours: strings.TrimSpace(s.OpenHours),
		Notes:     strings.TrimSpace(s.Notes),
		IsActive:  !s.Inactive,
	}, nil
}

// clock validates an HH:MM time of day. Empty means unset.
func clock(v string) (*string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil, nil
	}
	if _, err := time.Parse("15:04", v); err != nil {
		return nil, fmt.Errorf("invalid time %q, want HH:MM", v)
	}
	return &v, nil
}
