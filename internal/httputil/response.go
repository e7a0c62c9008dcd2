package httputil

import (
	"encoding/json"
	"net/http"
)

// Response is the envelope every endpoint returns. Pagination is set only
// on list endpoints; Query only on search endpoints.
type Response struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
	Query      string      `json:"query,omitempty"`
	Error      string      `json:"error,omitempty"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPagination derives page-count metadata from a total row count.
func NewPagination(page, limit, total int) *Pagination {
	pages := 0
	if limit > 0 {
		pages = (total + limit - 1) / limit
	}
	return &Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	writeResponse(w, status, Response{Success: true, Data: data})
}

func WriteList(w http.ResponseWriter, data interface{}, p *Pagination) {
	writeResponse(w, http.StatusOK, Response{Success: true, Data: data, Pagination: p})
}

func WriteSearch(w http.ResponseWriter, query string, data interface{}, p *Pagination) {
	writeResponse(w, http.StatusOK, Response{Success: true, Data: data, Pagination: p, Query: query})
}

func WriteError(w http.ResponseWriter, status int, message string) {
	writeResponse(w, status, Response{Success: false, Error: message})
}

func writeResponse(w http.ResponseWriter, status int, resp Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(resp)
}
