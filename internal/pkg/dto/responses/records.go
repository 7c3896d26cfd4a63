package responses

type BatchResult struct {
	Created []string `json:"created"`
	Updated []string `json:"updated"`
	Deleted []string `json:"deleted"`
}

type Deleted struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}
