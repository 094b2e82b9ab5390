package model

import (
	"encoding/json"

	"voice-timesheet/pkg/datemath"
)

// Minutes is a duration in whole minutes. The model is instructed to
// return a number, but replies occasionally carry text like "3-4 hours";
// unmarshaling normalizes either form.
type Minutes int

// UnmarshalJSON accepts a JSON number or a textual duration.
func (m *Minutes) UnmarshalJSON(data []byte) error {
	var n float64
	if err := json.Unmarshal(data, &n); err == nil {
		if n < 0 {
			n = 0
		}
		*m = Minutes(n + 0.5)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		*m = 0
		return nil
	}

	v, err := datemath.ParseDurationMinutes(s)
	if err != nil {
		return err
	}
	*m = Minutes(v)
	return nil
}

// MarshalJSON emits the plain number of minutes.
func (m Minutes) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(m))
}

// TimesheetEntry is the unit of output: one structured timesheet row
// extracted from a user submission. Created from the model's reply and
// never mutated after the processing timestamp is stamped.
type TimesheetEntry struct {
	ProjectCode           string  `json:"project_code"`
	ClientCode            string  `json:"client_code"`
	ProjectName           string  `json:"project_name"`
	TaskName              string  `json:"task_name"`
	TaskID                string  `json:"task_id"`
	BillingClassification *string `json:"billing_classification"`
	EntryDate             string  `json:"entry_date"`
	StartTime             *string `json:"start_time"`
	EndTime               *string `json:"end_time"`
	DurationMinutes       Minutes `json:"duration_minutes"`
	Comment               string  `json:"comment"`
	TranscriptExcerpt     string  `json:"transcript_excerpt"`
	TS                    string  `json:"ts"`
}
