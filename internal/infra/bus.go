package infra

// EventType represents the type of pipeline event in the system
type EventType int

const (
	TableNormalized EventType = iota
	RecordsClassified
	RecordsMelted
	AggregateComputed
	ResultReused
)

// String returns the string representation of the EventType
func (et EventType) String() string {
	switch et {
	case TableNormalized:
		return "TableNormalized"
	case RecordsClassified:
		return "RecordsClassified"
	case RecordsMelted:
		return "RecordsMelted"
	case AggregateComputed:
		return "AggregateComputed"
	case ResultReused:
		return "ResultReused"
	default:
		return "Unknown"
	}
}

type Event interface{ EventType() EventType }
type Handler func(Event)
type Bus struct{ subs map[EventType][]Handler }

func NewBus() *Bus { return &Bus{subs: map[EventType][]Handler{}} }
func (b *Bus) Publish(e Event) {
	for _, h := range b.subs[e.EventType()] {
		h(e)
	}
}
func (b *Bus) Subscribe(evt EventType, h Handler) { b.subs[evt] = append(b.subs[evt], h) }
