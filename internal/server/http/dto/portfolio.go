package dto

import "time"

// PortfolioRequest creates or rewrites a showcase item. Image is a base64
// data URI; on update an empty value keeps the stored image.
type PortfolioRequest struct {
	Nama      string   `json:"nama"`
	Deskripsi string   `json:"deskripsi"`
	TechStack []string `json:"techStack"`
	Link      string   `json:"link"`
	Image     string   `json:"image,omitempty"`
}

// PortfolioResponse is the public shape of a showcase item.
type PortfolioResponse struct {
	ID        int64     `json:"id"`
	Nama      string    `json:"nama"`
	Deskripsi string    `json:"deskripsi"`
	TechStack []string  `json:"techStack"`
	Link      string    `json:"link"`
	Image     string    `json:"image"`
	CreatedAt time.Time `json:"createdAt"`
}

// ErrorResponse carries a caller-facing failure message.
type ErrorResponse struct {
	Message string `json:"message"`
}
