package mockapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/toolshop-qa/api-test-harness/apidef"
)

// ProductsPerPage is the page size of GET /products.
const ProductsPerPage = 9

func (s *Server) listProducts(w http.ResponseWriter, r *http.Request) {
	field, direction, _ := strings.Cut(r.URL.Query().Get("sort"), ",")
	if s.broken {
		field = ""
	}
	all := s.store.sortedProducts(field, direction == "desc")

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}
	lastPage := (len(all) + ProductsPerPage - 1) / ProductsPerPage
	if lastPage == 0 {
		lastPage = 1
	}
	result := apidef.ProductPage{
		CurrentPage: page,
		Data:        []apidef.Product{},
		LastPage:    lastPage,
		PerPage:     ProductsPerPage,
		Total:       len(all),
	}
	start := (page - 1) * ProductsPerPage
	if start < len(all) {
		end := start + ProductsPerPage
		if end > len(all) {
			end = len(all)
		}
		result.Data = all[start:end]
		result.From = start + 1
		result.To = end
	}
	s.writeData(w, http.StatusOK, result)
}

func (s *Server) getProduct(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	p, ok := s.store.getProduct(id)
	if !ok {
		s.writeMessage(w, http.StatusNotFound, apidef.MessageNotFound)
		return
	}
	s.writeData(w, http.StatusOK, p)
}
