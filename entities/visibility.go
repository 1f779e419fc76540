package entities

// Visibility is the visibility of a status.
type Visibility string

const (
	// VisibilityDirect is a direct message to the mentioned users only.
	VisibilityDirect Visibility = "direct"
	// VisibilityPrivate is only available to followers.
	VisibilityPrivate Visibility = "private"
	// VisibilityUnlisted is public but not shown in public timelines.
	VisibilityUnlisted Visibility = "unlisted"
	// VisibilityPublic is posted to public timelines.
	VisibilityPublic Visibility = "public"
)
