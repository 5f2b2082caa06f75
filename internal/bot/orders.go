package bot

import "sync"

type OrderStatus string

const (
	StatusPending  OrderStatus = "pending"
	StatusAccepted OrderStatus = "accepted"
)

// Order is a finalized intake request waiting for an admin to act on it.
// Orders live in memory only and are lost on restart.
type Order struct {
	ID          int64
	UserID      int64
	DisplayName string
	Username    string
	OrderType   string
	Size        string
	ColorFabric string
	PhotoFileID string
	Phone       string
	Status      OrderStatus
}

// OrderStore holds pending orders keyed by a monotonically increasing ID.
// IDs are never reused; the counter resets on restart along with the map.
type OrderStore struct {
	mu     sync.Mutex
	nextID int64
	orders map[int64]*Order
}

func NewOrderStore() *OrderStore {
	return &OrderStore{
		nextID: 1,
		orders: make(map[int64]*Order),
	}
}

// Add assigns the next ID, marks the order pending and stores it.
func (s *OrderStore) Add(order Order) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	order.ID = s.nextID
	order.Status = StatusPending
	s.nextID++
	s.orders[order.ID] = &order
	return order.ID
}

// Get returns a copy of the order, if present.
func (s *OrderStore) Get(id int64) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok {
		return Order{}, false
	}
	return *order, true
}

// Accept transitions a pending order to accepted and removes it from the
// store in one critical section, so a second press on the same order always
// observes "not found". Returns the accepted order on success.
func (s *OrderStore) Accept(id int64) (Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	order, ok := s.orders[id]
	if !ok || order.Status != StatusPending {
		return Order{}, false
	}

	order.Status = StatusAccepted
	delete(s.orders, id)
	return *order, true
}
