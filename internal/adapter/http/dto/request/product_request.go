package request

// ProductRequest is the payload accepted by POST /products.
type ProductRequest struct {
	Name     string `json:"name" binding:"required"`
	Category string `json:"category" binding:"required"`
	Unit     string `json:"unit" binding:"required"`
}
