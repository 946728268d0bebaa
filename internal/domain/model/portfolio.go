package model

import "time"

// Portfolio describes a showcased project on the public site.
type Portfolio struct {
	ID        int64
	Nama      string
	Deskripsi string
	TechStack []string
	Link      string
	Image     string
	CreatedAt time.Time
}
