package prompt

// Style configures how a prompt is rendered. It is an explicit value handed
// to the prompter, never process-wide state.
type Style struct {
	// Prefix is printed before the question (e.g. ">" or "?").
	Prefix string

	// PrefixColor is the ANSI color for the prefix (e.g. "10" for light green).
	PrefixColor string
}

// DefaultStyle returns the prompt style used by the CLI.
func DefaultStyle() Style {
	return Style{
		Prefix:      ">",
		PrefixColor: "10",
	}
}
