package utils

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PaginationParams struct {
	Page   int    `json:"page" form:"page"`
	Limit  int    `json:"limit" form:"limit"`
	Sort   string `json:"sort" form:"sort"`
	Order  string `json:"order" form:"order"`
	Search string `json:"search" form:"search"`
}

type PaginationMeta struct {
	CurrentPage int   `json:"current_page"`
	TotalPages  int   `json:"total_pages"`
	TotalCount  int64 `json:"total_count"`
	Limit       int   `json:"limit"`
	HasNext     bool  `json:"has_next"`
	HasPrev     bool  `json:"has_prev"`
}

func GetPaginationParams(c *gin.Context) *PaginationParams {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(DefaultPage)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(DefaultPageSize)))
	sort := c.DefaultQuery("sort", "created_at")
	order := c.DefaultQuery("order", "desc")
	search := c.Query("search")

	params := &PaginationParams{
		Page:   page,
		Limit:  limit,
		Sort:   sort,
		Order:  order,
		Search: search,
	}
	params.Normalize()
	return params
}

// Normalize clamps page and limit into their valid ranges and fixes the sort
// order to asc/desc.
func (p *PaginationParams) Normalize() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < MinPageSize {
		p.Limit = DefaultPageSize
	}
	if p.Limit > MaxPageSize {
		p.Limit = MaxPageSize
	}
	if p.Order != "asc" && p.Order != "desc" {
		p.Order = "desc"
	}
}

func (p *PaginationParams) GetSkip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

func (p *PaginationParams) GetLimit() int64 {
	return int64(p.Limit)
}

// GetSortMap translates sort/order into the field -> 1|-1 map adapters use.
func (p *PaginationParams) GetSortMap() map[string]int {
	if p.Sort == "" {
		return nil
	}
	dir := -1
	if p.Order == "asc" {
		dir = 1
	}
	return map[string]int{p.Sort: dir}
}

func CreatePaginationMeta(params *PaginationParams, total int64) *PaginationMeta {
	totalPages := int(math.Ceil(float64(total) / float64(params.Limit)))

	return &PaginationMeta{
		CurrentPage: params.Page,
		TotalPages:  totalPages,
		TotalCount:  total,
		Limit:       params.Limit,
		HasNext:     params.Page < totalPages,
		HasPrev:     params.Page > 1,
	}
}
