package dto

// PlaceReorderInput carries an already-validated product reference and a
// positive quantity; the operation itself does not re-validate.
type PlaceReorderInput struct {
	ProductID int
	Quantity  int
}
