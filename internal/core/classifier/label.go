package classifier

import "encoding/json"

// Label is the classifier's closed output enumeration
// class indexes in the model artifact map 0:HateSpeech 1:Offensive 2:Neutral
type Label int

const (
	// LabelHateSpeech is class index 0
	LabelHateSpeech Label = iota
	// LabelOffensive is class index 1
	LabelOffensive
	// LabelNeutral is class index 2
	LabelNeutral
)

var labelNames = [...]string{"Hate Speech", "Offensive", "Neutral"}

// String returns the display form of the label
func (l Label) String() string {
	if l < 0 || int(l) >= len(labelNames) {
		return "Unknown"
	}
	return labelNames[l]
}

// Valid reports whether l is one of the three known classes
func (l Label) Valid() bool { return l >= 0 && int(l) < len(labelNames) }

// MarshalJSON emits the display form so wire payloads read naturally
func (l Label) MarshalJSON() ([]byte, error) { return json.Marshal(l.String()) }

// UnmarshalJSON accepts the display form produced by MarshalJSON
func (l *Label) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	for i, name := range labelNames {
		if name == s {
			*l = Label(i)
			return nil
		}
	}
	return errUnknownLabel(s)
}

type errUnknownLabel string

func (e errUnknownLabel) Error() string { return "unknown label " + string(e) }
