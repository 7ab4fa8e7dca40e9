package status

type StatusResponse struct {
	Version      string `json:"version" extensions:"x-order:0"`
	CommitHash   string `json:"commit_hash" extensions:"x-order:1"`
	StoreBackend string `json:"store_backend" extensions:"x-order:2"`
}
