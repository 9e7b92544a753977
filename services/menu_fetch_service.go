package services

import (
	"EmberHouse/config/environment"
	"EmberHouse/models"
	"EmberHouse/utils"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// menuRecordsSchema is the loose contract for one upstream payload: a JSON
// array of objects that each carry an id (string or number). Every other
// field is optional but must have a sane type when present; unknown extra
// fields are allowed.
const menuRecordsSchema = `{
	"type": "array",
	"items": {
		"type": "object",
		"required": ["id"],
		"properties": {
			"id": { "type": ["string", "number"] },
			"name": { "type": ["string", "null"] },
			"dsc": { "type": ["string", "null"] },
			"price": { "type": ["string", "number", "null"] },
			"img": { "type": ["string", "null"] },
			"country": { "type": ["string", "null"] }
		}
	}
}`

var menuRecordsValidator *jsonschema.Schema

func init() {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("menu-records.json", strings.NewReader(menuRecordsSchema)); err != nil {
		log.Fatalf("failed to add menu records schema resource: %v", err)
	}
	schema, err := compiler.Compile("menu-records.json")
	if err != nil {
		log.Fatalf("failed to compile menu records schema: %v", err)
	}
	menuRecordsValidator = schema
}

// MenuFetchService retrieves one upstream endpoint's payload and turns it
// into normalized menu items.
type MenuFetchService struct {
	BaseURL string
	Client  *http.Client
}

// NewMenuFetchService initializes MenuFetchService with the configured
// upstream base URL.
func NewMenuFetchService() *MenuFetchService {
	return &MenuFetchService{
		BaseURL: environment.GetMenuAPIBaseURL(),
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchEndpoint issues one GET, validates the payload shape, normalizes
// every record for the target category and deduplicates by id within this
// single call (first occurrence wins). Rejected records are skipped quietly.
func (s *MenuFetchService) FetchEndpoint(ctx context.Context, path string, category models.Category) ([]models.MenuItem, error) {
	endpointURL := s.BaseURL + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpointURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, utils.NewRequestError(endpointURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, utils.NewValidationError(string(category), endpointURL, err)
	}
	if err := menuRecordsValidator.Validate(payload); err != nil {
		return nil, utils.NewValidationError(string(category), endpointURL, err)
	}

	var records []models.RawRecord
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, utils.NewValidationError(string(category), endpointURL, err)
	}

	var items []models.MenuItem
	seen := make(map[string]bool)
	for _, record := range records {
		item := NormalizeRecord(record, category)
		if item == nil {
			continue
		}
		if seen[item.ID] {
			continue
		}
		seen[item.ID] = true
		items = append(items, *item)
	}
	return items, nil
}
