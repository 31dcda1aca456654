package chatbot

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/heartmarshall/tringgo-backend/internal/domain"
)

const (
	topPlacesLimit   = 10
	allPlacesLimit   = 50
	nearLimit        = 10
	allCategoryLimit = 20
)

// rule is one intent: the first rule whose match reports true handles the
// message. handle receives the lowercased, trimmed text.
type rule struct {
	name   string
	match  func(text string) bool
	handle func(ctx context.Context, text string) (string, error)
}

// serviceKind describes how one service category is asked for and listed.
type serviceKind struct {
	keywords  []string
	category  domain.ServiceCategory
	example   string // keyword used in the "specify an area" hint
	noun      string // used in "No {noun} found"
	allTitle  string
	nearTitle string
}

var serviceKinds = []serviceKind{
	{[]string{"hospital"}, domain.ServiceCategoryHospital, "hospitals", "hospitals", "All hospitals", "Hospitals"},
	{[]string{"police"}, domain.ServiceCategoryPolice, "police", "police stations", "All police stations", "Police stations"},
	{[]string{"atm"}, domain.ServiceCategoryATM, "atm", "ATMs", "All ATMs", "ATMs"},
	{[]string{"pharmacy", "pharmacies"}, domain.ServiceCategoryPharmacy, "pharmacy", "pharmacies", "All pharmacies", "Pharmacies"},
	{[]string{"transport"}, domain.ServiceCategoryTransport, "transport", "transport hubs", "All transport hubs", "Transport hubs"},
}

func (k serviceKind) mentioned(text string) bool {
	return slices.ContainsFunc(k.keywords, func(kw string) bool { return strings.Contains(text, kw) })
}

// Router classifies a chatbot message and produces its reply.
type Router struct {
	rules        []rule
	places       placeRepo
	services     serviceRepo
	transcript   transcriptRepo
	historyLimit int
}

// NewRouter builds the ordered rule list. Order matters: overlapping
// keywords resolve to the earliest rule.
func NewRouter(places placeRepo, services serviceRepo, transcript transcriptRepo, historyLimit int) *Router {
	r := &Router{
		places:       places,
		services:     services,
		transcript:   transcript,
		historyLimit: historyLimit,
	}

	r.rules = []rule{
		{name: "history", match: isHistory, handle: r.history},
		{name: "greeting", match: isGreeting, handle: constant(greetingReply)},
		{name: "help", match: contains("help"), handle: constant(helpReply)},
		{name: "top_places", match: isTopPlaces, handle: r.topPlaces},
		{name: "all_places", match: isAllPlaces, handle: r.allPlaces},
	}
	for _, k := range serviceKinds {
		r.rules = append(r.rules, rule{
			name:   "near_" + strings.ToLower(k.category.String()),
			match:  func(text string) bool { return k.mentioned(text) && strings.Contains(text, "near") },
			handle: r.servicesNear(k),
		})
	}
	r.rules = append(r.rules, rule{
		name:   "near_places",
		match:  func(text string) bool { return strings.Contains(text, "places") && strings.Contains(text, "near") },
		handle: r.placesNear,
	})
	for _, k := range serviceKinds {
		r.rules = append(r.rules, rule{
			name:   "all_" + strings.ToLower(k.category.String()),
			match:  func(text string) bool { return k.mentioned(text) && !strings.Contains(text, "near") },
			handle: r.allServices(k),
		})
	}
	return r
}

// Route returns the name of the matched intent and its reply. A message no
// rule matches gets the fallback reply under the name "fallback".
func (r *Router) Route(ctx context.Context, text string) (string, string, error) {
	for _, rl := range r.rules {
		if rl.match(text) {
			reply, err := rl.handle(ctx, text)
			return rl.name, reply, err
		}
	}
	return "fallback", fallbackReply, nil
}

// ---------------------------------------------------------------------------
// Matchers
// ---------------------------------------------------------------------------

func isHistory(text string) bool {
	return strings.Contains(text, "show history") || text == "history"
}

func isGreeting(text string) bool {
	return text == "hi" || text == "hello" || text == "hey"
}

func isTopPlaces(text string) bool {
	return strings.Contains(text, "top places") ||
		(strings.Contains(text, "top") && strings.Contains(text, "places"))
}

func isAllPlaces(text string) bool {
	return strings.Contains(text, "all places") || text == "places"
}

func contains(sub string) func(string) bool {
	return func(text string) bool { return strings.Contains(text, sub) }
}

func constant(reply string) func(context.Context, string) (string, error) {
	return func(context.Context, string) (string, error) { return reply, nil }
}

// areaAfterNear returns the trimmed text after the first "near".
func areaAfterNear(text string) string {
	_, after, found := strings.Cut(text, "near")
	if !found {
		return ""
	}
	return strings.TrimSpace(after)
}

func specifyArea(example string) string {
	return "Please specify an area after 'near', e.g. '" + example + " near Dhanmondi'."
}

// ---------------------------------------------------------------------------
// Handlers
// ---------------------------------------------------------------------------

func (r *Router) history(ctx context.Context, _ string) (string, error) {
	entries, err := r.transcript.Recent(ctx, r.historyLimit)
	if err != nil {
		return "", fmt.Errorf("recent transcript: %w", err)
	}
	if len(entries) == 0 {
		return noHistoryReply, nil
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Role.String() + ": " + e.Message
	}
	return strings.Join(lines, "\n"), nil
}

func (r *Router) topPlaces(ctx context.Context, _ string) (string, error) {
	places, err := r.places.Query(ctx, domain.PlaceFilter{OrderBy: domain.PlaceOrderRating, Limit: topPlacesLimit})
	if err != nil {
		return "", fmt.Errorf("top places: %w", err)
	}
	if len(places) == 0 {
		return noRatedPlacesReply, nil
	}
	blocks := make([]string, len(places))
	for i, p := range places {
		avg := p.AverageRating
		if p.ReviewCount == 0 {
			avg = 0
		}
		blocks[i] = formatPlace(i+1, p, &avg)
	}
	return listing("Top places by rating", blocks), nil
}

func (r *Router) allPlaces(ctx context.Context, _ string) (string, error) {
	places, err := r.places.Query(ctx, domain.PlaceFilter{Limit: allPlacesLimit})
	if err != nil {
		return "", fmt.Errorf("all places: %w", err)
	}
	if len(places) == 0 {
		return noPlacesReply, nil
	}
	blocks := make([]string, len(places))
	for i, p := range places {
		blocks[i] = formatPlace(i+1, p, nil)
	}
	return listing("All places", blocks), nil
}

func (r *Router) placesNear(ctx context.Context, text string) (string, error) {
	area := areaAfterNear(text)
	if area == "" {
		return specifyArea("places"), nil
	}
	places, err := r.places.Query(ctx, domain.PlaceFilter{AreaNameContains: area, Limit: nearLimit})
	if err != nil {
		return "", fmt.Errorf("places near %q: %w", area, err)
	}
	if len(places) == 0 {
		return "No places found near " + area + ".", nil
	}
	blocks := make([]string, len(places))
	for i, p := range places {
		blocks[i] = formatPlace(i+1, p, p.Rating())
	}
	return listing("Places near "+area, blocks), nil
}

func (r *Router) servicesNear(k serviceKind) func(context.Context, string) (string, error) {
	return func(ctx context.Context, text string) (string, error) {
		area := areaAfterNear(text)
		if area == "" {
			return specifyArea(k.example), nil
		}
		services, err := r.services.Query(ctx, domain.ServiceFilter{
			Category:         k.category,
			AreaNameContains: area,
			ActiveOnly:       true,
			Limit:            nearLimit,
		})
		if err != nil {
			return "", fmt.Errorf("%s near %q: %w", k.noun, area, err)
		}
		if len(services) == 0 {
			return "No " + k.noun + " found near " + area + ".", nil
		}
		return listing(k.nearTitle+" near "+area, serviceBlocks(services)), nil
	}
}

func (r *Router) allServices(k serviceKind) func(context.Context, string) (string, error) {
	return func(ctx context.Context, _ string) (string, error) {
		services, err := r.services.Query(ctx, domain.ServiceFilter{
			Category:   k.category,
			ActiveOnly: true,
			Limit:      allCategoryLimit,
		})
		if err != nil {
			return "", fmt.Errorf("all %s: %w", k.noun, err)
		}
		if len(services) == 0 {
			return "No " + k.noun + " found.", nil
		}
		return listing(k.allTitle, serviceBlocks(services)), nil
	}
}

func serviceBlocks(services []domain.Service) []string {
	blocks := make([]string, len(services))
	for i, s := range services {
		blocks[i] = formatService(i+1, s)
	}
	return blocks
}
