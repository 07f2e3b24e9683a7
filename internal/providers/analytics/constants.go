package analytics

import "time"

const (
	providerName       = "analytics"
	defaultBaseURL     = "http://localhost:8000"
	defaultHTTPTimeout = 10 * time.Second
	maxErrorBody       = 512
	noGamesMessage     = "No games played"
	volatilitySuffix   = "_STD"
)
