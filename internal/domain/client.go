package domain

// Client represents a returning client. Deduplicated best-effort by
// (name, phone) before creation; uniqueness is not enforced by storage.
type Client struct {
	ID    int64
	Name  string
	Phone *string
}
