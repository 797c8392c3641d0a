package domain

// Review is an embedded review document. The assistant only aggregates these
// (average rating, summary line); it never validates or mutates them.
type Review struct {
	User   string
	Text   string
	Rating float64
	Photos []string
	Source *string
}
