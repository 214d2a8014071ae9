package params

import (
	"fmt"
	"math"
	"net/url"
	"strconv"
	"strings"

	"wot/internal/apperr"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// URL: /toilets?pageable=true&page=2&size=30
// → ParsePage() → Page{Index:2, Size:30}
// → SQL: ... LIMIT 30 OFFSET 60
// Without pageable=true the listing is unbounded and ParsePage returns nil.
type Page struct {
	Index int `json:"page"`
	Size  int `json:"size"`
}

func (p *Page) Offset() int {
	return p.Index * p.Size
}

// Apply appends the LIMIT/OFFSET window to query, numbering placeholders after args.
// A nil page leaves the query untouched.
func (p *Page) Apply(query string, args []any) (string, []any) {
	if p == nil {
		return query, args
	}
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	return query, append(args, p.Size, p.Offset())
}

// ParsePage reads ?pageable=...&page=...&size=... . Careful, keys are case sensitive.
func ParsePage(q url.Values) (*Page, error) {
	if pageable := strings.TrimSpace(q.Get("pageable")); pageable == "" {
		return nil, nil
	} else if on, err := strconv.ParseBool(pageable); err != nil {
		return nil, apperr.Validation("pageable must be a boolean")
	} else if !on {
		return nil, nil
	}

	p := &Page{Size: DefaultPageSize}

	if pageStr := strings.TrimSpace(q.Get("page")); pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 0 {
			return nil, apperr.Validation("page must be a non-negative integer")
		}
		p.Index = page
	}

	if sizeStr := strings.TrimSpace(q.Get("size")); sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size <= 0 {
			return nil, apperr.Validation("size must be a positive integer")
		}
		p.Size = min(size, MaxPageSize)
	}

	if p.Index > math.MaxInt32/p.Size {
		return nil, apperr.Validation("page is too large")
	}

	return p, nil
}

// Int64List accepts both ?ids=1,2,3 and repeated ?ids=1&ids=2.
func Int64List(q url.Values, key string) ([]int64, error) {
	var out []int64
	for _, raw := range q[key] {
		for _, part := range strings.Split(raw, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := strconv.ParseInt(part, 10, 64)
			if err != nil {
				return nil, apperr.Validation("%s must be a list of integers", key)
			}
			out = append(out, id)
		}
	}
	return out, nil
}

// OptionalInt64 returns nil when the key is absent.
func OptionalInt64(q url.Values, key string) (*int64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, apperr.Validation("%s must be an integer", key)
	}
	return &v, nil
}

func OptionalString(q url.Values, key string) *string {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return nil
	}
	return &raw
}

// Float parses a required float parameter.
func Float(q url.Values, key string) (float64, error) {
	raw := strings.TrimSpace(q.Get(key))
	if raw == "" {
		return 0, apperr.Validation("%s is required", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, apperr.Validation("%s must be a number", key)
	}
	return v, nil
}
