package data

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

const brandValidationDir = "brand-validation"

// BrandValidationCase is a POST /brands request that the API must reject, with the field
// messages it must return. ExpectedErrors maps a field to the first message listed for it.
// Fields named in UnexpectedFields must not appear in the response at all.
type BrandValidationCase struct {
	Name             string            `json:"name"`
	Payload          json.RawMessage   `json:"payload"`
	ExpectedStatus   int               `json:"expectedStatus"`
	ExpectedErrors   map[string]string `json:"expectedErrors"`
	UnexpectedFields []string          `json:"unexpectedFields"`
	Source           SourceInfo        `json:"-"`
}

// ExpectedFields returns the keys of ExpectedErrors in sorted order.
func (c BrandValidationCase) ExpectedFields() []string {
	ret := make([]string, 0, len(c.ExpectedErrors))
	for k := range c.ExpectedErrors {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

// LoadBrandValidationCases reads every validation case from data/data-files/brand-validation.
// Each call generates fresh random values.
func LoadBrandValidationCases() ([]BrandValidationCase, error) {
	sources, err := LoadAllDataFiles(brandValidationDir)
	if err != nil {
		return nil, err
	}
	ret := make([]BrandValidationCase, 0, len(sources))
	for _, source := range sources {
		var c BrandValidationCase
		if err := source.ParseInto(&c); err != nil {
			return nil, err
		}
		if c.Name == "" {
			c.Name = source.BaseName + source.ParamsString()
		}
		if len(c.Payload) == 0 {
			return nil, fmt.Errorf("validation case %q has no payload", c.Name)
		}
		if c.ExpectedStatus == 0 {
			c.ExpectedStatus = http.StatusUnprocessableEntity
		}
		c.Source = source
		ret = append(ret, c)
	}
	return ret, nil
}
