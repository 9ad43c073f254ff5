package errors

// ErrorCode identifies a class of application error
type ErrorCode int

const (
	ErrorCode_UNKNOWN ErrorCode = iota
	ErrorCode_HTTP_OK
	ErrorCode_INTERNAL
	ErrorCode_INVALID_ARGUMENT
	ErrorCode_NOT_FOUND
	ErrorCode_INVALID_RECORD
	ErrorCode_INVALID_STATUS
	ErrorCode_MEETING_NOT_FOUND
	ErrorCode_ACTION_ITEM_NOT_FOUND
	ErrorCode_SUMMARY_FETCH_FAILED
	ErrorCode_CALENDAR_FETCH_FAILED
	ErrorCode_EXECUTION_FAILED
)

var codeNames = map[ErrorCode]string{
	ErrorCode_UNKNOWN:               "UNKNOWN",
	ErrorCode_HTTP_OK:               "OK",
	ErrorCode_INTERNAL:              "INTERNAL",
	ErrorCode_INVALID_ARGUMENT:      "INVALID_ARGUMENT",
	ErrorCode_NOT_FOUND:             "NOT_FOUND",
	ErrorCode_INVALID_RECORD:        "INVALID_RECORD",
	ErrorCode_INVALID_STATUS:        "INVALID_STATUS",
	ErrorCode_MEETING_NOT_FOUND:     "MEETING_NOT_FOUND",
	ErrorCode_ACTION_ITEM_NOT_FOUND: "ACTION_ITEM_NOT_FOUND",
	ErrorCode_SUMMARY_FETCH_FAILED:  "SUMMARY_FETCH_FAILED",
	ErrorCode_CALENDAR_FETCH_FAILED: "CALENDAR_FETCH_FAILED",
	ErrorCode_EXECUTION_FAILED:      "EXECUTION_FAILED",
}

// String returns the symbolic name for the error code
func (c ErrorCode) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return "UNKNOWN"
}
