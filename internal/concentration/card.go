package concentration

// Card is an identity-only token. Both cards of a pair share one Identifier.
type Card struct {
	Identifier int  `json:"identifier"`
	FaceUp     bool `json:"face_up"`
	Matched    bool `json:"matched"`
}

// Equal reports whether two cards belong to the same pair.
func (that Card) Equal(other Card) bool {
	return that.Identifier == other.Identifier
}

// IdentifierFactory hands out card identifiers starting at 1.
// Each game owns its own factory.
type IdentifierFactory struct {
	last int
}

func NewIdentifierFactory() *IdentifierFactory {
	return &IdentifierFactory{}
}

// Next returns the next unused identifier.
func (that *IdentifierFactory) Next() int {
	that.last++
	return that.last
}
