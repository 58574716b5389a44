package mockapi

import (
	"sort"
	"strings"
	"sync"

	"github.com/toolshop-qa/api-test-harness/apidef"
)

type store struct {
	brands      map[int]apidef.Brand
	nextBrandID int
	products    []apidef.Product
	lock        sync.RWMutex
}

func newStore() *store {
	s := &store{brands: make(map[int]apidef.Brand)}
	for _, b := range seedBrands() {
		s.brands[b.ID] = b
		if b.ID >= s.nextBrandID {
			s.nextBrandID = b.ID + 1
		}
	}
	s.products = seedProducts()
	return s
}

func (s *store) listBrands() []apidef.Brand {
	s.lock.RLock()
	defer s.lock.RUnlock()
	ret := make([]apidef.Brand, 0, len(s.brands))
	for _, b := range s.brands {
		ret = append(ret, b)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].ID < ret[j].ID })
	return ret
}

func (s *store) searchBrands(q string) []apidef.Brand {
	q = strings.ToLower(q)
	ret := make([]apidef.Brand, 0)
	for _, b := range s.listBrands() {
		if strings.Contains(strings.ToLower(b.Name), q) {
			ret = append(ret, b)
		}
	}
	return ret
}

func (s *store) getBrand(id int) (apidef.Brand, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	b, ok := s.brands[id]
	return b, ok
}

// conflicts reports which of the fields of p are already used by a brand other than exceptID.
func (s *store) conflicts(p apidef.BrandParams, exceptID int) (name, slug bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.conflictsLocked(p, exceptID)
}

func (s *store) conflictsLocked(p apidef.BrandParams, exceptID int) (name, slug bool) {
	for id, b := range s.brands {
		if id == exceptID {
			continue
		}
		if p.Name != "" && b.Name == p.Name {
			name = true
		}
		if p.Slug != "" && b.Slug == p.Slug {
			slug = true
		}
	}
	return name, slug
}

// createBrand stores a new brand unless its name or slug is taken.
func (s *store) createBrand(p apidef.BrandParams) (apidef.Brand, bool) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if name, slug := s.conflictsLocked(p, 0); name || slug {
		return apidef.Brand{}, false
	}
	b := apidef.Brand{ID: s.nextBrandID, Name: p.Name, Slug: p.Slug}
	s.nextBrandID++
	s.brands[b.ID] = b
	return b, true
}

type updateResult int

const (
	updated updateResult = iota
	updateNotFound
	updateConflict
)

// updateBrand applies the non-empty fields of p.
func (s *store) updateBrand(id int, p apidef.BrandParams) updateResult {
	s.lock.Lock()
	defer s.lock.Unlock()
	b, ok := s.brands[id]
	if !ok {
		return updateNotFound
	}
	if name, slug := s.conflictsLocked(p, id); name || slug {
		return updateConflict
	}
	if p.Name != "" {
		b.Name = p.Name
	}
	if p.Slug != "" {
		b.Slug = p.Slug
	}
	s.brands[id] = b
	return updated
}

func (s *store) deleteBrand(id int) bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	if _, ok := s.brands[id]; !ok {
		return false
	}
	delete(s.brands, id)
	return true
}

func (s *store) getProduct(id int) (apidef.Product, bool) {
	for _, p := range s.products {
		if p.ID == id {
			return p, true
		}
	}
	return apidef.Product{}, false
}

// sortedProducts returns the products ordered by field ("name" or "price"), descending if desc.
// Unknown fields leave the products in id order.
func (s *store) sortedProducts(field string, desc bool) []apidef.Product {
	ret := append([]apidef.Product(nil), s.products...)
	var less func(a, b apidef.Product) bool
	switch field {
	case "name":
		less = func(a, b apidef.Product) bool { return a.Name < b.Name }
	case "price":
		less = func(a, b apidef.Product) bool { return a.Price < b.Price }
	default:
		return ret
	}
	sort.SliceStable(ret, func(i, j int) bool {
		if desc {
			return less(ret[j], ret[i])
		}
		return less(ret[i], ret[j])
	})
	return ret
}
