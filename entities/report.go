package entities

// Report filed against an account.
type Report struct {
	ID          string `json:"id"`
	ActionTaken bool   `json:"action_taken"`
}
