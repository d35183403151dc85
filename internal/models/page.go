package models

// Page is a bounded slice of an ordered post sequence, addressed by a
// 1-based page number. Out-of-range pages are represented as an empty page,
// never an error.
type Page struct {
	Items      []Post `json:"items"`
	Number     int    `json:"number"`
	Size       int    `json:"size"`
	TotalCount int64  `json:"total_count"`
	TotalPages int    `json:"total_pages"`
	HasNext    bool   `json:"has_next"`
	HasPrev    bool   `json:"has_prev"`
}

// NewPage assembles pagination metadata for one page of an ordered sequence
// with the given total length.
func NewPage(items []Post, number, size int, total int64) *Page {
	if items == nil {
		items = []Post{}
	}
	totalPages := int((total + int64(size) - 1) / int64(size))
	return &Page{
		Items:      items,
		Number:     number,
		Size:       size,
		TotalCount: total,
		TotalPages: totalPages,
		HasNext:    number < totalPages,
		HasPrev:    number > 1 && number <= totalPages+1,
	}
}
