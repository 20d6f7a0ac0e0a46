package dto

// CreateBrandRequest alta de marca.
type CreateBrandRequest struct {
	Name string `json:"nombre"`
}

// BrandResponse representación de salida de una marca.
type BrandResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"nombre"`
}
