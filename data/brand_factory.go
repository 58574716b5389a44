package data

import "github.com/toolshop-qa/api-test-harness/apidef"

const (
	fixtureSuffixLength = 8
	uniqueSuffixLength  = 6
)

// NewBrandParams returns a brand payload of the form name_xxxxxxxx / slug_xxxxxxxx, suitable for a
// setup fixture.
func NewBrandParams() apidef.BrandParams {
	suffix := RandomString(fixtureSuffixLength)
	return apidef.BrandParams{Name: "name_" + suffix, Slug: "slug_" + suffix}
}

// UniqueBrandParams returns a brand payload of the form "new brand xxxxxx" / "new-brand-xxxxxx",
// as used by the create-then-update lifecycle.
func UniqueBrandParams() apidef.BrandParams {
	suffix := RandomString(uniqueSuffixLength)
	return apidef.BrandParams{Name: "new brand " + suffix, Slug: "new-brand-" + suffix}
}

// UpdatedBrandParams derives the payload used to rename an existing brand.
func UpdatedBrandParams(p apidef.BrandParams) apidef.BrandParams {
	return apidef.BrandParams{Name: p.Name + " upd", Slug: p.Slug + "-upd"}
}
