package dto

import "time"

// OrderCreateRequest is the intake form of a pesanan.
type OrderCreateRequest struct {
	Nama         string    `json:"nama"`
	NamaAplikasi string    `json:"namaAplikasi"`
	Keperluan    string    `json:"keperluan"`
	Teknologi    []string  `json:"teknologi"`
	Fitur        []string  `json:"fitur"`
	Deadline     time.Time `json:"deadline"`
	AkunTiktok   string    `json:"akunTiktok"`
}

// OrderPatchRequest mutates one order. Exactly one of Status or
// JenisBukti+Bukti is expected: admins move the lifecycle, owners attach
// payment proofs.
type OrderPatchRequest struct {
	PesananID  int64  `json:"pesananId"`
	Status     string `json:"status,omitempty"`
	JenisBukti string `json:"jenisBukti,omitempty"`
	Bukti      string `json:"bukti,omitempty"`
}

// OrderResponse is the owner-facing shape of a pesanan.
type OrderResponse struct {
	ID             int64     `json:"id"`
	Nama           string    `json:"nama"`
	NamaAplikasi   string    `json:"namaAplikasi"`
	Keperluan      string    `json:"keperluan"`
	Teknologi      []string  `json:"teknologi"`
	Fitur          []string  `json:"fitur"`
	Deadline       time.Time `json:"deadline"`
	AkunTiktok     string    `json:"akunTiktok"`
	Status         string    `json:"status"`
	BuktiDP        *string   `json:"buktiDP"`
	BuktiPelunasan *string   `json:"buktiPelunasan"`
	CreatedAt      time.Time `json:"createdAt"`
}

// OrderOwnerResponse embeds the owner identity for admin listings.
type OrderOwnerResponse struct {
	OrderResponse
	User OwnerResponse `json:"user"`
}

// OwnerResponse names the account behind an order.
type OwnerResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}
