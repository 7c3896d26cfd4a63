package requests

// Batch carries the full desired collection of one record type for a user.
type Batch[T any] struct {
	UserID string `json:"userId"`
	Items  []T    `json:"items" validate:"dive"`
}
