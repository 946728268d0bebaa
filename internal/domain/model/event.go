package model

// Event kinds emitted by the order lifecycle.
const (
	EventOrderCreated       = "order.created"
	EventOrderStatusChanged = "order.status_changed"
	EventProofUploaded      = "order.proof_uploaded"
)

// Event is the payload handed to notification dispatchers. Delivery is
// best-effort and fully outside the lifecycle's control.
type Event struct {
	Kind    string
	OrderID int64
	Title   string
	Body    string
	Meta    map[string]string
}
