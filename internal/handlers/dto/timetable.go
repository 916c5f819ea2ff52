package dto

// SlotForm mirrors one timetable entry as the client edits it. Position in
// the Slots array is the only identity a slot has.
type SlotForm struct {
	Day       string `json:"day"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Subject   string `json:"subject"`
}

type TimetableRequest struct {
	Slots []SlotForm `json:"slots"`
}

// TimetableResponse returns the saved document in insertion order plus the
// Monday-first sorted view. Only the Slots order is persisted.
type TimetableResponse struct {
	Slots  []SlotForm `json:"slots"`
	Sorted []SlotForm `json:"sorted"`
}
