package entity

// Notification is a composed push message.
type Notification struct {
	Title string
	Body  string
}

// TokenResult is the delivery outcome for a single push token.
type TokenResult struct {
	Token   string
	Success bool
	Error   error
}

// DeliveryReport summarizes one fan-out across all batches.
type DeliveryReport struct {
	SuccessCount  int
	FailureCount  int
	InvalidTokens []string
	Results       []TokenResult
}

// Merge folds another report into r.
func (r *DeliveryReport) Merge(other *DeliveryReport) {
	if other == nil {
		return
	}

	r.SuccessCount += other.SuccessCount
	r.FailureCount += other.FailureCount
	r.InvalidTokens = append(r.InvalidTokens, other.InvalidTokens...)
	r.Results = append(r.Results, other.Results...)
}
