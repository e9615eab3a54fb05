package handler

type placeOrderRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	// Quantity defaults to 1 when omitted.
	Quantity int `json:"quantity" validate:"omitempty,gte=1"`
}

type orderProductResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name,omitempty"`
	Price float64 `json:"price,omitempty"`
}

type orderLinks struct {
	Self    string `json:"self"`
	Product string `json:"product"`
}

type orderResponse struct {
	ID        string               `json:"id"`
	Product   orderProductResponse `json:"product"`
	Quantity  int                  `json:"quantity"`
	CreatedAt string               `json:"created_at"`
	Links     orderLinks           `json:"_links"`
}

type listOrdersResponse struct {
	Total  int             `json:"total"`
	Orders []orderResponse `json:"orders"`
}
