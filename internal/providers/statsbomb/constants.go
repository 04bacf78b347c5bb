package statsbomb

import "time"

const (
	providerName       = "statsbomb"
	defaultBaseURL     = "https://raw.githubusercontent.com/statsbomb/open-data/master/data"
	defaultHTTPTimeout = 15 * time.Second
	maxErrorBody       = 512
)
