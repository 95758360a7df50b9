package contact

// Recorder receives operation outcomes and book size updates.
type Recorder interface {
	ObserveOperation(operation, result string)
	SetSize(contacts, phones int)
}

type nopRecorder struct{}

func (nopRecorder) ObserveOperation(string, string) {}
func (nopRecorder) SetSize(int, int) {}
