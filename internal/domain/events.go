package domain

// Event type constants used across the application for event bus subscriptions
// and metrics tracking.
//
// Event types follow the pattern: <entity>.<action> (e.g., "listing.sold")
const (
	// EventTypeUserCreated is published when an account is lazily created
	EventTypeUserCreated = "user.created"

	// EventTypeCaseOpened is published after a case opening commits
	EventTypeCaseOpened = "case.opened"

	// EventTypeListingCreated is published when an item is put up for sale
	EventTypeListingCreated = "listing.created"

	// EventTypeListingSold is published when a listing is bought
	EventTypeListingSold = "listing.sold"

	// EventTypeListingCancelled is published when a seller withdraws a listing
	EventTypeListingCancelled = "listing.cancelled"

	// EventTypeSignalsGranted is published when an admin credits a user
	EventTypeSignalsGranted = "signals.granted"
)
