package domain

// ProcessRequest is the payload accepted by POST /records/process.
type ProcessRequest struct {
	SearchKey string `json:"searchKey"`
	FilterA   string `json:"filterA"`
	FilterB   string `json:"filterB"`
	FilterC   string `json:"filterC"`
}

// ProcessResponse is the payload returned by /records/process.
type ProcessResponse struct {
	SearchKey string    `json:"searchKey"`
	Count     int       `json:"count"`
	Records   []*Record `json:"records"`
}
