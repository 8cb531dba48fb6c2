package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionChanged    EventType = "SelectionChanged"
	EventNavigationRequested EventType = "NavigationRequested"
	EventContentShifted      EventType = "ContentShifted"
	EventDirectionChanged    EventType = "DirectionChanged"
	EventError               EventType = "Error"
	EventConfigLoaded        EventType = "ConfigLoaded"
	EventConfigSaved         EventType = "ConfigSaved"
	EventAppReady            EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionChangedEvent is emitted when the pager reports a new selected page
type SelectionChangedEvent struct {
	Index int
}

func (e SelectionChangedEvent) Type() EventType { return EventSelectionChanged }

// NavigationRequestedEvent is emitted when the user asks for a page programmatically
type NavigationRequestedEvent struct {
	From int
	To   int
}

func (e NavigationRequestedEvent) Type() EventType { return EventNavigationRequested }

// ContentShiftedEvent is emitted when the displayed page numbers are shifted
type ContentShiftedEvent struct {
	Shift int
}

func (e ContentShiftedEvent) Type() EventType { return EventContentShifted }

// DirectionChangedEvent is emitted when the layout direction is flipped
type DirectionChangedEvent struct {
	RightToLeft bool
}

func (e DirectionChangedEvent) Type() EventType { return EventDirectionChanged }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted once the first frame has been laid out
type AppReadyEvent struct {
	Width int
	Page  int
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
