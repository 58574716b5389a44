package apidef

import (
	"fmt"
	"strconv"
)

// Paths of the resources the suite covers.
const (
	PathBrands       = "/brands"
	PathBrandsSearch = "/brands/search"
	PathProducts     = "/products"
	PathLogin        = "/users/login"
)

// BrandPath returns the path of a single brand.
func BrandPath(id int) string { return PathBrands + "/" + strconv.Itoa(id) }

// ProductPath returns the path of a single product.
func ProductPath(id int) string { return PathProducts + "/" + strconv.Itoa(id) }

// Header values the API promises on every response.
const (
	CacheControlValue      = "no-cache, private"
	AllowOriginValue       = "*"
	ContentTypeJSON        = "application/json"
	ContentTypeJSONCharset = "application/json;charset=UTF-8"
)

// AllowedJSONContentTypes are the Content-Type values accepted for a JSON response.
func AllowedJSONContentTypes() []string {
	return []string{ContentTypeJSONCharset, ContentTypeJSON}
}

// Messages returned by the API.
const (
	MessageUnauthorized     = "Unauthorized"
	MessageForbidden        = "Forbidden"
	MessageNotFound         = "Requested item not found"
	MessageDuplicateEntry   = "Duplicate Entry"
	MessageMethodNotAllowed = "Method is not allowed for the requested route"
	MessageBrandSlugExists  = "A brand already exists with this slug."
	MessageBrandNameExists  = "A brand already exists with this name."
	MessageInvalidID        = "The selected id is invalid."
)

// NonexistentID is a brand or product id that the API never assigns.
const NonexistentID = 99999999

// MaxBrandFieldLength is the longest name or slug the API accepts.
const MaxBrandFieldLength = 120

// RequiredMessage is the validation message for a missing field.
func RequiredMessage(field string) string {
	return fmt.Sprintf("The %s field is required.", field)
}

// StringMessage is the validation message for a field that is not a string.
func StringMessage(field string) string {
	return fmt.Sprintf("The %s must be a string.", field)
}

// MaxLengthMessage is the validation message for a field that is too long.
func MaxLengthMessage(field string, max int) string {
	return fmt.Sprintf("The %s may not be greater than %d characters.", field, max)
}
