package dtos

// UploadResponse carries the public URL of a stored object.
type UploadResponse struct {
	URL string `json:"url"`
}

type VisitResponse struct {
	Visits int64 `json:"visits"`
}
