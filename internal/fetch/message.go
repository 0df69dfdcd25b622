package fetch

// Source says where a Message came from.
type Source int

const (
	SourceRemote Source = iota
	SourceLocal
	SourceError
)

func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceLocal:
		return "local"
	case SourceError:
		return "error"
	default:
		return "unknown"
	}
}

// Message is replaced wholesale, never edited.
type Message struct {
	Text   string
	Source Source
}
