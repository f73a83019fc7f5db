package params

import (
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"
)

const (
	DefaultPageNumber = 1
	DefaultPageSize   = 20
	MaxPageSize       = 100
)

// QueryParams carries common list-endpoint query parameters.
type QueryParams struct {
	PageNumber int
	PageSize   int
	Search     string

	extra url.Values
}

// NewQueryParams reads page_number, page_size and search from the request,
// clamping to sane bounds.
func NewQueryParams(c echo.Context) *QueryParams {
	p := &QueryParams{
		PageNumber: DefaultPageNumber,
		PageSize:   DefaultPageSize,
		Search:     c.QueryParam("search"),
		extra:      url.Values{},
	}

	if n, err := strconv.Atoi(c.QueryParam("page_number")); err == nil && n > 0 {
		p.PageNumber = n
	}
	if s, err := strconv.Atoi(c.QueryParam("page_size")); err == nil && s > 0 {
		if s > MaxPageSize {
			s = MaxPageSize
		}
		p.PageSize = s
	}

	return p
}

// Add records an extra filter parameter.
func (p *QueryParams) Add(key, value string) {
	if p.extra == nil {
		p.extra = url.Values{}
	}
	p.extra.Add(key, value)
}

// Get returns an extra filter parameter, empty if unset.
func (p *QueryParams) Get(key string) string {
	return p.extra.Get(key)
}

// Encode renders the params back to a query string.
func (p *QueryParams) Encode() string {
	v := url.Values{}
	for key, vals := range p.extra {
		for _, val := range vals {
			v.Add(key, val)
		}
	}
	v.Set("page_number", strconv.Itoa(p.PageNumber))
	v.Set("page_size", strconv.Itoa(p.PageSize))
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	return v.Encode()
}
