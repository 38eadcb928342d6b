package events

import "testing"

func TestPublishReachesCurrentSubscribers(t *testing.T) {
	bus := NewBus()

	got := 0
	unsubscribe := bus.Subscribe(func(e Event) {
		if _, ok := e.(FedEvent); !ok {
			t.Errorf("Unexpected event type %T", e)
		}
		got++
	})
	defer unsubscribe()

	bus.Publish(FedEvent{})
	bus.Publish(FedEvent{})

	if got != 2 {
		t.Errorf("Expected 2 deliveries, got %d", got)
	}
}

func TestLateSubscriberReceivesNothing(t *testing.T) {
	bus := NewBus()

	bus.Publish(FedEvent{}) // Nobody listening; no replay later.

	got := 0
	unsubscribe := bus.Subscribe(func(Event) { got++ })
	defer unsubscribe()

	if got != 0 {
		t.Errorf("Late subscriber received %d replayed events", got)
	}
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	bus := NewBus()

	got := 0
	unsubscribe := bus.Subscribe(func(Event) { got++ })

	bus.Publish(FedEvent{})
	unsubscribe()
	bus.Publish(FedEvent{})
	unsubscribe() // Idempotent.

	if got != 1 {
		t.Errorf("Expected 1 delivery, got %d", got)
	}
}

func TestMultipleSubscribers(t *testing.T) {
	bus := NewBus()

	first, second := 0, 0
	defer bus.Subscribe(func(Event) { first++ })()
	defer bus.Subscribe(func(Event) { second++ })()

	bus.Publish(FedEvent{})

	if first != 1 || second != 1 {
		t.Errorf("Expected both subscribers to receive the event, got %d and %d", first, second)
	}
}
