package lookup

import "strconv"

// StatusCode is the match progress classification of the primary source.
type StatusCode int

const (
	StatusPostponed   StatusCode = 60
	StatusCanceled    StatusCode = 70
	StatusInterrupted StatusCode = 80
	StatusEnded       StatusCode = 100 // ended within normal play time
	StatusAET         StatusCode = 110 // after extra time
	StatusAP          StatusCode = 120 // after penalties
)

var statusCodes = []StatusCode{
	StatusPostponed,
	StatusCanceled,
	StatusInterrupted,
	StatusEnded,
	StatusAET,
	StatusAP,
}

// IsValid checks if the code is one of the recognized match statuses
func (s StatusCode) IsValid() bool {
	switch s {
	case StatusPostponed, StatusCanceled, StatusInterrupted, StatusEnded, StatusAET, StatusAP:
		return true
	default:
		return false
	}
}

// Description returns a human readable label.
func (s StatusCode) Description() string {
	switch s {
	case StatusPostponed:
		return "Postponed"
	case StatusCanceled:
		return "Canceled"
	case StatusInterrupted:
		return "Interrupted"
	case StatusEnded:
		return "Ended"
	case StatusAET:
		return "AET"
	case StatusAP:
		return "AP"
	default:
		return "Unknown"
	}
}

// StatusCodes returns the recognized status codes in ascending order.
func StatusCodes() []StatusCode {
	out := make([]StatusCode, len(statusCodes))
	copy(out, statusCodes)
	return out
}

func statusCodeStrings() []string {
	out := make([]string, len(statusCodes))
	for i, s := range statusCodes {
		out[i] = strconv.Itoa(int(s))
	}
	return out
}
