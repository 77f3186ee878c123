package spaceweather

import "time"

// Forecast is the best-effort answer. Error is set only when the feed could
// not be read, so a nil NextPredictedEventUTC with an empty Error means the
// feed was read and no storm is predicted.
type Forecast struct {
	NextPredictedEventUTC *string `json:"next_predicted_event_utc"`
	RetrievedAtUTC        string  `json:"retrieved_at_utc"`
	Error                 string  `json:"error,omitempty"`
}

// Table is the decoded forecast product: a header row and loosely typed data
// rows as they appear upstream.
type Table struct {
	Header []string
	Rows   [][]any
}

// Config wires runtime knobs for the space weather domain.
type Config struct {
	Timeout        time.Duration
	StormThreshold float64
}
