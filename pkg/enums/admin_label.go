package enums

// AdminStatusLabel is the coordinator-facing status shown in the review queue.
type AdminStatusLabel string

const (
	AdminNeedsReview    AdminStatusLabel = "Needs Review"
	AdminReviewed       AdminStatusLabel = "Reviewed"
	AdminActionRequired AdminStatusLabel = "Action Required"
)

func (l AdminStatusLabel) String() string {
	return string(l)
}
