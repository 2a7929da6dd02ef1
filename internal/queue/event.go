// Package queue defines message payloads exchanged over the message broker.
package queue

// ListingPublishedEvent is emitted when a job listing is created or updated.
// It carries enough information for downstream consumers (notification bots,
// analytics) to act without querying the primary database.
type ListingPublishedEvent struct {
    ListingID   uint64 `json:"listing_id"`
    CompanyName string `json:"company_name"`
    Designation string `json:"designation"`
    Location    string `json:"location"`
    Batch       string `json:"batch"`
    Deadline    string `json:"deadline,omitempty"`
    Action      string `json:"action"` // created | updated
    PublishedAt string `json:"published_at"`
}
