package recorder

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRound(_ *RoundSnapshot) error { return nil }
func (n *NoopRecorder) RecordGame(_ *GameEvent) error      { return nil }
func (n *NoopRecorder) RecordBatch(_ *BatchEvent) error    { return nil }
func (n *NoopRecorder) Close() error                       { return nil }
