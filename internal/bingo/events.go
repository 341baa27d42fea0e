package bingo

import (
	"time"
)

// EventType represents a game event type with type safety
type EventType string

// EventType constants for everything a game reports while it runs.
const (
	EventTypeGameStart     EventType = "game_start"
	EventTypeNumberDrawn   EventType = "number_drawn"
	EventTypeNumberMatched EventType = "number_matched"
	EventTypeWinner        EventType = "winner"
	EventTypeGameEnd       EventType = "game_end"
)

// String returns the string representation of the event type
func (et EventType) String() string {
	return string(et)
}

// Event is anything published on a game's event bus.
type Event interface {
	EventType() EventType
	Timestamp() time.Time
}

// GameStartEvent is published once, before the first draw.
type GameStartEvent struct {
	GameID    string
	Players   []string
	Numbers   NumberRange
	timestamp time.Time
}

func (e GameStartEvent) EventType() EventType { return EventTypeGameStart }
func (e GameStartEvent) Timestamp() time.Time { return e.timestamp }

// NewGameStartEvent creates a new game start event
func NewGameStartEvent(gameID string, players []string, numbers NumberRange, at time.Time) GameStartEvent {
	names := make([]string, len(players))
	copy(names, players)
	return GameStartEvent{
		GameID:    gameID,
		Players:   names,
		Numbers:   numbers,
		timestamp: at,
	}
}

// NumberDrawnEvent is published for every draw, before players are notified.
type NumberDrawnEvent struct {
	Number    int
	Sequence  int // 1-based position of this draw in the game
	Remaining int // numbers left in the pool after this draw
	timestamp time.Time
}

func (e NumberDrawnEvent) EventType() EventType { return EventTypeNumberDrawn }
func (e NumberDrawnEvent) Timestamp() time.Time { return e.timestamp }

// NewNumberDrawnEvent creates a new number drawn event
func NewNumberDrawnEvent(number, sequence, remaining int, at time.Time) NumberDrawnEvent {
	return NumberDrawnEvent{
		Number:    number,
		Sequence:  sequence,
		Remaining: remaining,
		timestamp: at,
	}
}

// NumberMatchedEvent is published by a player that crossed a number off its ticket.
type NumberMatchedEvent struct {
	Player    string
	Number    int
	Remaining int // numbers still on the player's ticket
	timestamp time.Time
}

func (e NumberMatchedEvent) EventType() EventType { return EventTypeNumberMatched }
func (e NumberMatchedEvent) Timestamp() time.Time { return e.timestamp }

// NewNumberMatchedEvent creates a new number matched event
func NewNumberMatchedEvent(player string, number, remaining int, at time.Time) NumberMatchedEvent {
	return NumberMatchedEvent{
		Player:    player,
		Number:    number,
		Remaining: remaining,
		timestamp: at,
	}
}

// WinnerEvent is published by a player whose ticket just became empty.
type WinnerEvent struct {
	Player    string
	Number    int // the draw that completed the ticket
	timestamp time.Time
}

func (e WinnerEvent) EventType() EventType { return EventTypeWinner }
func (e WinnerEvent) Timestamp() time.Time { return e.timestamp }

// NewWinnerEvent creates a new winner event
func NewWinnerEvent(player string, number int, at time.Time) WinnerEvent {
	return WinnerEvent{
		Player:    player,
		Number:    number,
		timestamp: at,
	}
}

// GameEndEvent is published after the round in which the game was stopped.
type GameEndEvent struct {
	GameID    string
	Winners   []string
	Draws     int
	timestamp time.Time
}

func (e GameEndEvent) EventType() EventType { return EventTypeGameEnd }
func (e GameEndEvent) Timestamp() time.Time { return e.timestamp }

// NewGameEndEvent creates a new game end event
func NewGameEndEvent(gameID string, winners []string, draws int, at time.Time) GameEndEvent {
	names := make([]string, len(winners))
	copy(names, winners)
	return GameEndEvent{
		GameID:    gameID,
		Winners:   names,
		Draws:     draws,
		timestamp: at,
	}
}

// EventSubscriber can subscribe to game events
type EventSubscriber interface {
	OnEvent(event Event)
}

// EventBus manages event publishing and subscription
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event Event)
}

// SimpleEventBus delivers events synchronously, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

// NewEventBus creates a new event bus
func NewEventBus() *SimpleEventBus {
	return &SimpleEventBus{}
}

// Subscribe adds a subscriber to receive events
func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes a subscriber from receiving events
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribers
func (bus *SimpleEventBus) Publish(event Event) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
