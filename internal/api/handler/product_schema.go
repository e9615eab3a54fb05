package handler

type createProductRequest struct {
	Name     string  `json:"name"      validate:"required"`
	Price    float64 `json:"price"     validate:"required,gt=0"`
	ImageURL string  `json:"image_url" validate:"omitempty,url"`
}

// updateProductRequest is a partial update; only non-nil fields are applied.
type updateProductRequest struct {
	Name     *string  `json:"name"`
	Price    *float64 `json:"price"     validate:"omitempty,gt=0"`
	ImageURL *string  `json:"image_url" validate:"omitempty,url"`
}

type productLinks struct {
	Self string `json:"self"`
}

type productResponse struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Price     float64      `json:"price"`
	ImageURL  string       `json:"image_url,omitempty"`
	CreatedAt string       `json:"created_at"`
	Links     productLinks `json:"_links"`
}

type listProductsResponse struct {
	Total    int               `json:"total"`
	Products []productResponse `json:"products"`
}
