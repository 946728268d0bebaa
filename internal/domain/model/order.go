package model

import "time"

// OrderStatus describes the pesanan lifecycle.
type OrderStatus string

const (
	OrderStatusPending OrderStatus = "PENDING"
	OrderStatusProses  OrderStatus = "PROSES"
	OrderStatusSelesai OrderStatus = "SELESAI"
	OrderStatusDitolak OrderStatus = "DITOLAK"
)

// Valid reports whether s is one of the known lifecycle statuses.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusProses, OrderStatusSelesai, OrderStatusDitolak:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle permits moving from s to next.
// Transitions are forward-only: nothing leaves DITOLAK and nothing returns to
// PENDING.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if !next.Valid() || s == next {
		return false
	}
	switch s {
	case OrderStatusPending:
		return next == OrderStatusProses || next == OrderStatusDitolak
	case OrderStatusProses:
		return next == OrderStatusSelesai || next == OrderStatusDitolak
	case OrderStatusSelesai:
		return next == OrderStatusDitolak
	}
	return false
}

// Order describes a client engagement request (pesanan) and its lifecycle.
type Order struct {
	ID             int64
	UserID         int64
	Nama           string
	NamaAplikasi   string
	Keperluan      string
	Teknologi      []string
	Fitur          []string
	Deadline       time.Time
	AkunTiktok     string
	Status         OrderStatus
	BuktiDP        *string
	BuktiPelunasan *string
	CreatedAt      time.Time
}

// OrderDraft carries the descriptive fields supplied on intake.
type OrderDraft struct {
	Nama         string
	NamaAplikasi string
	Keperluan    string
	Teknologi    []string
	Fitur        []string
	Deadline     time.Time
	AkunTiktok   string
}

// OrderWithOwner pairs an order with its owner identity for admin listings.
type OrderWithOwner struct {
	Order
	OwnerName  string
	OwnerEmail string
}
