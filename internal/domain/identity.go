package domain

// Identity is what the identity collaborator vouches for after verifying a
// credential. ID is the stable key punches are recorded under.
type Identity struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Role string `json:"role"`
}
