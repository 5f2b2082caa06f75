package bot

import "testing"

func TestOrderStoreAssignsIncreasingIDs(t *testing.T) {
	store := NewOrderStore()

	first := store.Add(Order{UserID: 1})
	second := store.Add(Order{UserID: 2})
	if first != 1 || second != 2 {
		t.Errorf("Expected IDs 1 and 2, got %d and %d", first, second)
	}

	// Accepting must not free the ID for reuse.
	if _, ok := store.Accept(first); !ok {
		t.Fatal("Accept of pending order failed")
	}
	third := store.Add(Order{UserID: 3})
	if third != 3 {
		t.Errorf("Expected ID 3 after acceptance, got %d", third)
	}
}

func TestOrderStoreAcceptRemovesOrder(t *testing.T) {
	store := NewOrderStore()
	id := store.Add(Order{UserID: 42, Phone: "+251911111111"})

	order, ok := store.Accept(id)
	if !ok {
		t.Fatal("Accept of pending order failed")
	}
	if order.Status != StatusAccepted {
		t.Errorf("Expected status %q, got %q", StatusAccepted, order.Status)
	}
	if order.UserID != 42 {
		t.Errorf("Accept returned wrong order: %+v", order)
	}

	if _, ok := store.Get(id); ok {
		t.Error("Accepted order still present in store")
	}
}

func TestOrderStoreAcceptTwice(t *testing.T) {
	store := NewOrderStore()
	id := store.Add(Order{UserID: 42})

	if _, ok := store.Accept(id); !ok {
		t.Fatal("First accept failed")
	}
	if _, ok := store.Accept(id); ok {
		t.Error("Second accept succeeded, expected not-found")
	}
}

func TestOrderStoreAcceptUnknown(t *testing.T) {
	store := NewOrderStore()

	if _, ok := store.Accept(99); ok {
		t.Error("Accept of unknown order succeeded")
	}
}
