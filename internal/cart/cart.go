package cart

// Item is one line of a session's cart. The merge identity of an item is the
// (SessionID, ProductID, SelectedSize, SelectedColor) tuple: adding the same
// tuple again increments Quantity instead of inserting a duplicate line.
type Item struct {
	ID            string `json:"id"`
	SessionID     string `json:"sessionId"`
	ProductID     string `json:"productId"`
	Quantity      int    `json:"quantity"`
	SelectedSize  string `json:"selectedSize,omitempty"`
	SelectedColor string `json:"selectedColor,omitempty"`
	CreatedAt     string `json:"createdAt"`
}

func (i Item) sameSelection(other Item) bool {
	return i.SessionID == other.SessionID &&
		i.ProductID == other.ProductID &&
		i.SelectedSize == other.SelectedSize &&
		i.SelectedColor == other.SelectedColor
}
