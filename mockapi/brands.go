package mockapi

import (
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/toolshop-qa/api-test-harness/apidef"
)

// brokenBrand is how a brand is serialized when the contract is deliberately broken.
type brokenBrand struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (s *Server) brandsBody(brands []apidef.Brand) interface{} {
	if !s.broken {
		return brands
	}
	ret := make([]brokenBrand, 0, len(brands))
	for _, b := range brands {
		ret = append(ret, brokenBrand{ID: strconv.Itoa(b.ID), Name: b.Name, Slug: b.Slug})
	}
	return ret
}

func (s *Server) listBrands(w http.ResponseWriter, r *http.Request) {
	s.writeData(w, http.StatusOK, s.brandsBody(s.store.listBrands()))
}

func (s *Server) searchBrands(w http.ResponseWriter, r *http.Request) {
	s.writeData(w, http.StatusOK, s.brandsBody(s.store.searchBrands(r.URL.Query().Get("q"))))
}

func (s *Server) getBrand(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	b, ok := s.store.getBrand(id)
	if !ok {
		s.writeMessage(w, http.StatusNotFound, apidef.MessageNotFound)
		return
	}
	s.writeData(w, http.StatusOK, b)
}

func (s *Server) createBrand(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)
	params, errs := parseBrandPayload(body, false)
	if errs != nil {
		s.writeValidationErrors(w, errs)
		return
	}
	b, ok := s.store.createBrand(params)
	if !ok {
		errs = make(apidef.ValidationErrors)
		nameTaken, slugTaken := s.store.conflicts(params, 0)
		if nameTaken {
			errs["name"] = []string{apidef.MessageBrandNameExists}
		}
		if slugTaken {
			errs["slug"] = []string{apidef.MessageBrandSlugExists}
		}
		s.writeValidationErrors(w, errs)
		return
	}
	s.debugLogger.Printf("mock API created brand %d (%q)", b.ID, b.Name)
	s.writeJSON(w, http.StatusCreated, apidef.ContentTypeJSON, b)
}

func (s *Server) updateBrand(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if _, ok := s.store.getBrand(id); !ok {
		s.writeMessage(w, http.StatusNotFound, apidef.MessageNotFound)
		return
	}
	body, _ := io.ReadAll(r.Body)
	params, errs := parseBrandPayload(body, true)
	if errs != nil {
		s.writeValidationErrors(w, errs)
		return
	}
	switch s.store.updateBrand(id, params) {
	case updateNotFound:
		s.writeMessage(w, http.StatusNotFound, apidef.MessageNotFound)
	case updateConflict:
		s.writeMessage(w, http.StatusUnprocessableEntity, apidef.MessageDuplicateEntry)
	default:
		s.writeJSON(w, http.StatusOK, apidef.ContentTypeJSON, apidef.SuccessResponse{Success: true})
	}
}

func (s *Server) deleteBrand(w http.ResponseWriter, r *http.Request) {
	switch s.auth.roleOf(r) {
	case "":
		s.writeMessage(w, http.StatusUnauthorized, apidef.MessageUnauthorized)
		return
	case roleUser:
		s.writeMessage(w, http.StatusForbidden, apidef.MessageForbidden)
		return
	}
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if !s.store.deleteBrand(id) {
		s.writeValidationErrors(w, apidef.ValidationErrors{"id": {apidef.MessageInvalidID}})
		return
	}
	s.debugLogger.Printf("mock API deleted brand %d", id)
	w.WriteHeader(http.StatusNoContent)
}
