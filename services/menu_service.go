package services

import (
	"EmberHouse/config/environment"
	"EmberHouse/models"
	"EmberHouse/utils"
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// categoryCap is the maximum number of items one category keeps after
// merging and sorting.
const categoryCap = 9

// categoryEndpoints maps each category to its upstream endpoint paths.
// Order matters: when two endpoints return the same id, the earlier
// endpoint's record wins. Cocktails and beverages both read /drinks and are
// split by the keyword classifier.
var categoryEndpoints = map[models.Category][]string{
	models.CategoryBurgers:    {"/burgers"},
	models.CategorySandwiches: {"/sandwiches", "/breads"},
	models.CategorySides:      {"/fried-chicken", "/sausages", "/porks"},
	models.CategoryCocktails:  {"/drinks"},
	models.CategoryBeverages:  {"/drinks"},
	models.CategoryDesserts:   {"/desserts", "/ice-cream", "/chocolates"},
	models.CategoryMains:      {"/best-foods", "/steaks", "/bbqs"},
}

// MenuService aggregates the upstream endpoints into the displayable menu
// catalog. The fetched catalog is memoized for one cache window; failures
// are never cached.
type MenuService struct {
	Fetcher  *MenuFetchService
	CacheTTL time.Duration

	mu       sync.RWMutex
	cached   []models.MenuItem
	cachedAt time.Time
}

// NewMenuService initializes MenuService with the shared fetch service.
func NewMenuService() *MenuService {
	return &MenuService{
		Fetcher:  NewMenuFetchService(),
		CacheTTL: environment.GetMenuCacheTTL(),
	}
}

// FetchCategory fetches every endpoint mapped to one category concurrently,
// merges and deduplicates the results, sorts them for display and caps the
// list. Individual endpoint failures are logged and tolerated as long as
// anything usable remains; an empty result re-raises the last endpoint
// error, or reports the category unavailable.
func (s *MenuService) FetchCategory(ctx context.Context, category models.Category) ([]models.MenuItem, error) {
	paths, ok := categoryEndpoints[category]
	if !ok || len(paths) == 0 {
		return nil, utils.NewConfigError(string(category))
	}

	// results is indexed by endpoint position so the configured order
	// survives the concurrent fan-out; it is the dedup tie-break.
	results := make([][]models.MenuItem, len(paths))
	var lastErr error
	var mu sync.Mutex
	var wg sync.WaitGroup

	for i, path := range paths {
		wg.Add(1)
		go func(i int, path string) {
			defer wg.Done()
			items, err := s.Fetcher.FetchEndpoint(ctx, path, category)
			if err != nil {
				slog.Warn("menu endpoint fetch failed",
					"category", category, "endpoint", path, "error", err)
				mu.Lock()
				lastErr = err
				mu.Unlock()
				return
			}
			results[i] = items
		}(i, path)
	}
	wg.Wait()

	var merged []models.MenuItem
	seen := make(map[string]bool)
	for _, items := range results {
		for _, item := range items {
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			merged = append(merged, item)
		}
	}

	sortForDisplay(merged)
	if len(merged) > categoryCap {
		merged = merged[:categoryCap]
	}

	if len(merged) == 0 {
		if lastErr != nil {
			return nil, lastErr
		}
		return nil, utils.NewCategoryUnavailableError(string(category))
	}
	return merged, nil
}

// FetchAll runs FetchCategory for every category concurrently and merges the
// results in canonical category order. A whole-category outage never aborts
// the others; it only fails when every single category came back empty.
func (s *MenuService) FetchAll(ctx context.Context) ([]models.MenuItem, error) {
	if cached := s.cachedCatalog(); cached != nil {
		return cached, nil
	}

	results := make([][]models.MenuItem, len(models.Categories))
	var wg sync.WaitGroup

	for i, category := range models.Categories {
		wg.Add(1)
		go func(i int, category models.Category) {
			defer wg.Done()
			items, err := s.FetchCategory(ctx, category)
			if err != nil {
				slog.Warn("menu category fetch failed",
					"category", category, "error", err)
				return
			}
			results[i] = items
		}(i, category)
	}
	wg.Wait()

	var catalog []models.MenuItem
	seen := make(map[string]bool)
	for _, items := range results {
		for _, item := range items {
			if seen[item.ID] {
				continue
			}
			seen[item.ID] = true
			catalog = append(catalog, item)
		}
	}

	if len(catalog) == 0 {
		return nil, utils.NewCatalogUnavailableError()
	}

	s.storeCatalog(catalog)
	return catalog, nil
}

func (s *MenuService) cachedCatalog() []models.MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cached == nil || time.Since(s.cachedAt) > s.CacheTTL {
		return nil
	}
	return s.cached
}

func (s *MenuService) storeCatalog(catalog []models.MenuItem) {
	s.mu.Lock()
	s.cached = catalog
	s.cachedAt = time.Now()
	s.mu.Unlock()
}

// sortForDisplay orders a category list by ascending price with unpriced
// items last; price ties fall back to locale-aware title collation.
func sortForDisplay(items []models.MenuItem) {
	collator := collate.New(language.English)
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := items[i].Price, items[j].Price
		switch {
		case pi == nil && pj == nil:
			return collator.CompareString(items[i].Title, items[j].Title) < 0
		case pi == nil:
			return false
		case pj == nil:
			return true
		case *pi != *pj:
			return *pi < *pj
		default:
			return collator.CompareString(items[i].Title, items[j].Title) < 0
		}
	})
}
