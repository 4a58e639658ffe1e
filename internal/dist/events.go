package dist

// Stage describes a high-level assembly phase.
type Stage string

const (
	// StageClean is the removal of a previous output tree.
	StageClean Stage = "clean"
	// StageIndex is the entry-document copy.
	StageIndex Stage = "index"
	// StageSource is the hand-written source tree copy.
	StageSource Stage = "source"
	// StageEngine is the compiled engine-output copy.
	StageEngine Stage = "engine"
	// StageAssets is the static assets copy.
	StageAssets Stage = "assets"
)

// Status captures progress state within a stage.
type Status string

const (
	// StatusQueued indicates the file is waiting to be copied.
	StatusQueued Status = "queued"
	// StatusWorking indicates the file is being copied.
	StatusWorking Status = "working"
	// StatusDone indicates the file was copied.
	StatusDone Status = "done"
	// StatusError indicates the copy failed.
	StatusError Status = "error"
)

// Event reports progress for a file (or for the overall run when File is empty).
type Event struct {
	File   string
	Stage  Stage
	Status Status
	Err    error
}

// ProgressSink consumes progress events.
type ProgressSink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}
