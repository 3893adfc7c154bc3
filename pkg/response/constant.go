package response

const (
	// DateFormat is the wire format for date-only fields.
	DateFormat = "2006-01-02"
	// DateTimeFormat is the wire format for datetime fields.
	DateTimeFormat = "2006-01-02 15:04:05"
)
