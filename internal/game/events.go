package game

import (
	"time"

	"github.com/8hfv9fwc/poker-sim/poker"
)

// EventType identifies a game event
type EventType string

const (
	EventTypeHandStart    EventType = "hand_start"
	EventTypeBlindPosted  EventType = "blind_posted"
	EventTypePlayerAction EventType = "player_action"
	EventTypeStreetChange EventType = "street_change"
	EventTypeBetReturned  EventType = "bet_returned"
	EventTypePotSettled   EventType = "pot_settled"
	EventTypePotAwarded   EventType = "pot_awarded"
	EventTypeHandEnd      EventType = "hand_end"
)

func (et EventType) String() string {
	return string(et)
}

// Event is a record emitted after every state transition. Events are a
// side-channel for narration and logging; correctness never depends on a
// subscriber being present.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// Observer receives game events
type Observer interface {
	OnEvent(event Event)
}

// HandStartEvent is published once blinds are posted and cards dealt
type HandStartEvent struct {
	Players    []*Player
	SmallBlind Chips
	BigBlind   Chips
	timestamp  time.Time
}

func (e HandStartEvent) EventType() EventType { return EventTypeHandStart }
func (e HandStartEvent) Timestamp() time.Time { return e.timestamp }

// BlindPostedEvent is published when a forced bet is committed
type BlindPostedEvent struct {
	Player    *Player
	Amount    Chips
	Big       bool
	timestamp time.Time
}

func (e BlindPostedEvent) EventType() EventType { return EventTypeBlindPosted }
func (e BlindPostedEvent) Timestamp() time.Time { return e.timestamp }

// PlayerActionEvent is published after an action is applied
type PlayerActionEvent struct {
	Player *Player
	Kind   ActionKind
	// Amount is the player's total round wager after the action
	Amount    Chips
	AllIn     bool
	Check     bool
	timestamp time.Time
}

func (e PlayerActionEvent) EventType() EventType { return EventTypePlayerAction }
func (e PlayerActionEvent) Timestamp() time.Time { return e.timestamp }

// StreetChangeEvent is published when community cards are dealt
type StreetChangeEvent struct {
	Street    Street
	Board     []poker.Card
	timestamp time.Time
}

func (e StreetChangeEvent) EventType() EventType { return EventTypeStreetChange }
func (e StreetChangeEvent) Timestamp() time.Time { return e.timestamp }

// BetReturnedEvent is published when an uncalled bet goes back to its owner
type BetReturnedEvent struct {
	Player    *Player
	Amount    Chips
	timestamp time.Time
}

func (e BetReturnedEvent) EventType() EventType { return EventTypeBetReturned }
func (e BetReturnedEvent) Timestamp() time.Time { return e.timestamp }

// PotSettledEvent is published when wagers are folded into a pot layer
type PotSettledEvent struct {
	PotIndex  int
	Value     Chips
	timestamp time.Time
}

func (e PotSettledEvent) EventType() EventType { return EventTypePotSettled }
func (e PotSettledEvent) Timestamp() time.Time { return e.timestamp }

// PotAwardedEvent is published per winner per pot at resolution
type PotAwardedEvent struct {
	Player    *Player
	Amount    Chips
	PotIndex  int
	Hand      string // winning hand description, empty on fold-out
	timestamp time.Time
}

func (e PotAwardedEvent) EventType() EventType { return EventTypePotAwarded }
func (e PotAwardedEvent) Timestamp() time.Time { return e.timestamp }

// HandEndEvent is published once the hand is resolved
type HandEndEvent struct {
	FoldOut   bool
	Board     []poker.Card
	timestamp time.Time
}

func (e HandEndEvent) EventType() EventType { return EventTypeHandEnd }
func (e HandEndEvent) Timestamp() time.Time { return e.timestamp }

func newBetReturnedEvent(p *Player, amount Chips) BetReturnedEvent {
	return BetReturnedEvent{Player: p, Amount: amount, timestamp: time.Now()}
}

func newPotSettledEvent(index int, value Chips) PotSettledEvent {
	return PotSettledEvent{PotIndex: index, Value: value, timestamp: time.Now()}
}

// EventBus fans events out to subscribers in registration order
type EventBus struct {
	observers []Observer
}

// NewEventBus creates an empty event bus
func NewEventBus() *EventBus {
	return &EventBus{}
}

// Subscribe adds an observer
func (b *EventBus) Subscribe(o Observer) {
	b.observers = append(b.observers, o)
}

// Publish delivers an event to every observer synchronously
func (b *EventBus) Publish(event Event) {
	for _, o := range b.observers {
		o.OnEvent(event)
	}
}
