package apidef

// BrandParams is the request body for creating or updating a brand.
type BrandParams struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Brand is a brand as returned by the API.
type Brand struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Params returns the fields of the brand that a client can set.
func (b Brand) Params() BrandParams {
	return BrandParams{Name: b.Name, Slug: b.Slug}
}

// LoginParams is the request body of POST /users/login.
type LoginParams struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the successful response of POST /users/login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// Category is a product category. ParentID is null for top-level categories.
type Category struct {
	ID       int    `json:"id"`
	ParentID *int   `json:"parent_id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
}

// ProductImage describes the image attached to a product.
type ProductImage struct {
	ID         int    `json:"id"`
	ByName     string `json:"by_name"`
	ByURL      string `json:"by_url"`
	SourceName string `json:"source_name"`
	SourceURL  string `json:"source_url"`
	FileName   string `json:"file_name"`
	Title      string `json:"title"`
}

// Product is a product as returned by the API, with its relations expanded.
type Product struct {
	ID              int           `json:"id"`
	Name            string        `json:"name"`
	Description     string        `json:"description"`
	Stock           int           `json:"stock"`
	Price           float64       `json:"price"`
	IsLocationOffer bool          `json:"is_location_offer"`
	IsRental        bool          `json:"is_rental"`
	BrandID         int           `json:"brand_id"`
	CategoryID      int           `json:"category_id"`
	ProductImageID  int           `json:"product_image_id"`
	ProductImage    *ProductImage `json:"product_image"`
	Category        *Category     `json:"category"`
	Brand           *Brand        `json:"brand"`
}

// ProductPage is one page of GET /products.
type ProductPage struct {
	CurrentPage int       `json:"current_page"`
	Data        []Product `json:"data"`
	From        int       `json:"from"`
	LastPage    int       `json:"last_page"`
	PerPage     int       `json:"per_page"`
	To          int       `json:"to"`
	Total       int       `json:"total"`
}

// MessageResponse is the body of most error responses.
type MessageResponse struct {
	Message string `json:"message"`
}

// ValidationErrors is the body of a 422 response: a list of messages for each invalid field.
type ValidationErrors map[string][]string

// First returns the first message for a field, or "" if there is none.
func (v ValidationErrors) First(field string) string {
	if len(v[field]) == 0 {
		return ""
	}
	return v[field][0]
}

// SuccessResponse is the body of a successful update.
type SuccessResponse struct {
	Success bool `json:"success"`
}
