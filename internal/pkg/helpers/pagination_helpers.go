package helpers

import (
	"github.com/electives/cutoffs/internal/app/models/dto"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 200
	DefaultPage     = 1 // Default page is 1-based
)

// normalizePage applies the page and size defaults and caps size at MaxPageSize.
func normalizePage(page, size int) (int, int) {
	if size <= 0 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	if page < 1 {
		page = DefaultPage
	}
	return page, size
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
// page should be the 1-based page number. A page past the end is reported as
// requested so that it matches the empty slice Paginate returns for it.
func NewPaginationInfo(totalItems, page, size int) dto.PaginationInfo {
	page, size = normalizePage(page, size)

	totalPages := (totalItems + size - 1) / size
	if totalPages == 0 {
		// An empty listing still has one (empty) page
		totalPages = 1
	}

	return dto.PaginationInfo{
		CurrentPage: page,
		TotalPages:  totalPages,
		PageSize:    size,
		TotalItems:  totalItems,
	}
}

// CalculateSliceIndices calculates the start and end indices for slicing an array for pagination
func CalculateSliceIndices(page, size, totalItems int) (start, end int) {
	page, size = normalizePage(page, size)

	start = (page - 1) * size
	if start >= totalItems {
		return totalItems, totalItems
	}

	end = min(start+size, totalItems)
	return start, end
}

// Paginate returns the requested page of items together with its pagination metadata.
func Paginate[T any](items []T, page, size int) ([]T, dto.PaginationInfo) {
	info := NewPaginationInfo(len(items), page, size)
	start, end := CalculateSliceIndices(info.CurrentPage, info.PageSize, len(items))
	return items[start:end], info
}
