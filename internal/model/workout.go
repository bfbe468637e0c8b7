package model

// Exercise is one entry in a day's workout. DurationSeconds is the guided
// time for the exercise; MediaURL points at the demonstration clip.
type Exercise struct {
	Name            string `json:"name"`
	Description     string `json:"description"`
	DurationSeconds int    `json:"duration_seconds"`
	MediaURL        string `json:"media_url"`
}
