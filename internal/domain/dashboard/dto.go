package dashboard

// DashboardResponse is the combined response for the supervisor home screen
type DashboardResponse struct {
	Stats TodayStatsResponse   `json:"stats"`
	Feed  []AttendanceFeedItem `json:"feed"`
}

// TodayStatsResponse contains today's headline attendance counts
type TodayStatsResponse struct {
	TotalGuards int64  `json:"total_guards"`
	Attended    int64  `json:"attended"` // distinct guards with any attended record
	Exited      int64  `json:"exited"`   // distinct guards currently checked out
	Late        int64  `json:"late"`
	Date        string `json:"date"` // Format: "YYYY-MM-DD"
}

// AttendanceFeedItem is one row of today's activity feed
type AttendanceFeedItem struct {
	RecordID  string  `json:"record_id"`
	GuardID   string  `json:"guard_id"`
	GuardName string  `json:"guard_name"`
	Status    string  `json:"status"`
	CheckIn   *string `json:"check_in,omitempty"`  // Format: "HH:MM"
	CheckOut  *string `json:"check_out,omitempty"` // Format: "HH:MM"
	Location  *string `json:"location,omitempty"`
}
