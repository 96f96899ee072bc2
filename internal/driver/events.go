package driver

// Event is a progress notification emitted once per file during a
// directory run.
type Event struct {
	Path    string
	Index   int // 1-based среди всех файлов прогона
	Total   int
	Changed bool
	Err     error
}

// EventSink receives progress events. Implementations must be safe for
// concurrent Send calls.
type EventSink interface {
	Send(Event)
}

// ChannelSink доставляет события в канал (для TUI).
type ChannelSink chan Event

func (c ChannelSink) Send(e Event) { c <- e }

// NopSink drops all events.
type NopSink struct{}

func (NopSink) Send(Event) {}
