package catalog

// Course is one purchasable curriculum unit. ID is stable and doubles as the
// foreign key for progress entries and for payment-processor product metadata.
type Course struct {
	ID             string
	Title          string
	Description    string
	Category       string
	Difficulty     string
	Color          string
	Icon           string
	EstimatedHours int
	Price          *int // rupees; nil means the fallback amount applies at checkout
	Weeks          string
	Modules        []Module
	Prerequisites  []string
	Technologies   []string
}

// Module has no lifecycle of its own; it is owned entirely by its Course.
type Module struct {
	ID        string
	Title     string
	Completed bool
}
