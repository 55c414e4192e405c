package ports

// Prompter asks the user a yes/no question and blocks until it is answered.
//
//go:generate go run go.uber.org/mock/mockgen -source=prompter.go -destination=mocks/mock_prompter.go -package=mocks
type Prompter interface {
	// Confirm displays the message and returns the user's answer.
	// def is returned when the user just presses enter. It fails with
	// domain.ErrPromptUnavailable when no interactive surface exists.
	Confirm(msg string, def bool) (bool, error)
}
