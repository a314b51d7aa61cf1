package dashboard

// Mode is the order form state: either creating a new order or editing an
// existing one. The zero value is Creating.
type Mode struct {
	editingID string
}

func Creating() Mode { return Mode{} }

func Editing(orderID string) Mode { return Mode{editingID: orderID} }

func (m Mode) IsEditing() bool { return m.editingID != "" }

// OrderID returns the id under edit; ok is false while creating.
func (m Mode) OrderID() (id string, ok bool) {
	return m.editingID, m.editingID != ""
}

func (m Mode) String() string {
	if m.IsEditing() {
		return "editing:" + m.editingID
	}
	return "creating"
}
