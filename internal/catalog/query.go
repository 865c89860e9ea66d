package catalog

import (
	"net/url"
	"sort"
	"strconv"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/adityav/starwars-portal/internal/models"
)

// PageSize is the fixed number of entries per page.
const PageSize = 5

type SortField string

const (
	SortByName   SortField = "name"
	SortByGender SortField = "gender"
)

type SortDir string

const (
	SortAsc  SortDir = "asc"
	SortDesc SortDir = "desc"
)

// Params are the ephemeral view parameters of one list request. They are
// owned by the caller and never persisted server-side.
type Params struct {
	Search string
	Sort   SortField
	Dir    SortDir
	Page   int
}

// ParseParams reads view parameters from the query string, falling back to
// defaults for anything missing or unrecognized.
func ParseParams(q url.Values) Params {
	p := Params{
		Search: q.Get("q"),
		Sort:   SortByName,
		Dir:    SortAsc,
		Page:   1,
	}
	if s := SortField(q.Get("sort")); s == SortByGender {
		p.Sort = s
	}
	if d := SortDir(q.Get("dir")); d == SortDesc {
		p.Dir = d
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		p.Page = n
	}
	return p
}

// ResultPage is one derived page of the catalog list view.
type ResultPage struct {
	Items      []models.Person `json:"items"`
	Page       int             `json:"page"`
	TotalPages int             `json:"total_pages"`
	TotalCount int             `json:"total_count"`
	NoResults  bool            `json:"no_results"`
}

// Run derives the visible page from the full entry list: filter, then sort,
// then paginate. It is pure; the input slice is not modified. A page number
// past the last page is clamped to the last page.
func Run(entries []models.Person, p Params) ResultPage {
	filtered := filter(entries, p.Search)
	if len(filtered) == 0 {
		return ResultPage{Items: []models.Person{}, Page: 1, TotalPages: 1, NoResults: true}
	}

	sortEntries(filtered, p.Sort, p.Dir)

	totalPages := (len(filtered) + PageSize - 1) / PageSize
	page := p.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > len(filtered) {
		end = len(filtered)
	}

	return ResultPage{
		Items:      filtered[start:end],
		Page:       page,
		TotalPages: totalPages,
		TotalCount: len(filtered),
	}
}

// filter keeps entries whose name contains the search text, case-insensitively,
// preserving the original relative order. Empty search keeps everything.
func filter(entries []models.Person, search string) []models.Person {
	out := make([]models.Person, 0, len(entries))
	needle := strings.ToLower(search)
	for _, e := range entries {
		if needle == "" || strings.Contains(strings.ToLower(e.Name), needle) {
			out = append(out, e)
		}
	}
	return out
}

// sortEntries orders in place by the selected field using locale-aware
// comparison. Stability for equal keys is not required.
func sortEntries(entries []models.Person, field SortField, dir SortDir) {
	col := collate.New(language.English)
	key := func(e models.Person) string {
		if field == SortByGender {
			return e.Gender
		}
		return e.Name
	}
	sort.Slice(entries, func(i, j int) bool {
		cmp := col.CompareString(key(entries[i]), key(entries[j]))
		if dir == SortDesc {
			cmp = -cmp
		}
		return cmp < 0
	})
}
