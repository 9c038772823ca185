package domain

var (
	MessageFailedGetTrends = "failed to retrieve trends"
)
