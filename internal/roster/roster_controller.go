package roster

import (
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/nextstarsoccer/nss-backend/config"
	"github.com/nextstarsoccer/nss-backend/pkg/metrics"
	"github.com/nextstarsoccer/nss-backend/pkg/responses"

	"github.com/gin-gonic/gin"
)

const rosterCacheTTL = 5 * time.Minute

// RosterController serves the alumni roster. Entries are fetched from the
// sheet on demand and cached briefly; a monotonic generation counter makes
// sure a slow fetch can never overwrite the result of a newer one.
type RosterController struct {
	sheets     *SheetsClient
	classifier *Classifier
	config     *config.Config

	mu        sync.Mutex
	entries   []Entry
	fetchedAt time.Time
	gen       uint64
}

func NewRosterController(sheets *SheetsClient, classifier *Classifier, cfg *config.Config) *RosterController {
	return &RosterController{
		sheets:     sheets,
		classifier: classifier,
		config:     cfg,
	}
}

type alumniResponse struct {
	Entries     []Entry  `json:"entries"`
	Total       int      `json:"total"`
	SortOptions []string `json:"sort_options"`
}

// GetAlumni godoc
// @Summary List alumni and professional players
// @Description Returns the roster filtered by search text, tier/region filters and sort order.
// @Tags Alumni
// @Produce json
// @Param search query string false "Free-text search over name and affiliation"
// @Param sort query string false "Sort order" Enums(Last Name A-Z, Last Name Z-A, First Name A-Z, First Name Z-A)
// @Param filters query string false "Comma-separated selected sub-filters (D1,D2,D3,North America,Europe,Oceania); omit for all"
// @Param refresh query bool false "Force a refetch from the roster sheet"
// @Success 200 {object} responses.SuccessResponse{data=alumniResponse}
// @Failure 502 {object} responses.ErrorResponse "Roster source unavailable"
// @Router /alumni [get]
func (rc *RosterController) GetAlumni(c *gin.Context) {
	entries, err := rc.loadEntries(c, c.Query("refresh") == "true")
	if err != nil {
		responses.SendError(c, http.StatusBadGateway, "Failed to fetch alumni data: "+err.Error())
		return
	}

	filters := filterStateFromParam(c.Query("filters"))
	sortOrder := c.DefaultQuery("sort", SortLastNameAZ)

	result := Query(entries, c.Query("search"), filters, sortOrder, rc.classifier)
	responses.SendSuccess(c, http.StatusOK, "", alumniResponse{
		Entries:     result,
		Total:       len(result),
		SortOptions: SortOptions,
	})
}

// GetFilterTree godoc
// @Summary Roster filter categories
// @Description Returns the fixed category/sub-filter tree used by the alumni page.
// @Tags Alumni
// @Produce json
// @Success 200 {object} responses.SuccessResponse
// @Router /alumni/filters [get]
func (rc *RosterController) GetFilterTree(c *gin.Context) {
	responses.SendSuccess(c, http.StatusOK, "", gin.H{
		"categories":   FilterTree,
		"sort_options": SortOptions,
	})
}

func (rc *RosterController) loadEntries(c *gin.Context, force bool) ([]Entry, error) {
	rc.mu.Lock()
	if !force && rc.entries != nil && time.Since(rc.fetchedAt) < rosterCacheTTL {
		entries := rc.entries
		rc.mu.Unlock()
		metrics.RecordRosterCacheHit()
		return entries, nil
	}
	rc.gen++
	gen := rc.gen
	rc.mu.Unlock()

	metrics.RecordRosterFetch()
	entries, err := rc.sheets.FetchEntries(c.Request.Context())
	if err != nil {
		metrics.RecordRosterFetchError()
		return nil, err
	}

	rc.mu.Lock()
	defer rc.mu.Unlock()
	if gen == rc.gen {
		rc.entries = entries
		rc.fetchedAt = time.Now()
	}
	// A stale fetch still serves its own caller; it just doesn't touch the cache.
	return entries, nil
}

// filterStateFromParam builds a FilterState from a comma-separated list of
// selected sub-filters. An empty parameter selects everything.
func filterStateFromParam(param string) FilterState {
	fs := NewFilterState()
	if strings.TrimSpace(param) == "" {
		return fs
	}

	selected := map[string]bool{}
	for _, part := range strings.Split(param, ",") {
		selected[strings.TrimSpace(part)] = true
	}

	for cat, subs := range FilterTree {
		all := true
		for _, sub := range subs {
			fs[sub] = selected[sub]
			all = all && fs[sub]
		}
		fs[cat] = all
	}
	return fs
}
