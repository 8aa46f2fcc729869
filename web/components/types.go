package components

// FormDefaults seeds the generator form with its initial state.
type FormDefaults struct {
	URL    string
	Size   int
	Level  string
	Format string
}
