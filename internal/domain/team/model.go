package team

// Team is a coached club roster that games are scheduled for.
type Team struct {
	ID    string
	Name  string
	Short string
}
