package domain

// ProjectDescription holds the descriptive metadata block of a project manifest.
type ProjectDescription struct {
	// Summary is a one-line description of the project.
	Summary string

	// Maintainer names the person responsible for the project. It does not
	// have to be the code author.
	Maintainer string

	// License is the project's license identifier, empty for none.
	License string

	// Labels categorize the project (e.g. "web", "filesystem").
	Labels []string
}

// Project is the in-memory view of a rok.yaml project manifest.
type Project struct {
	// Name is the rock name of the project.
	Name string

	// Version is the project's own version.
	Version string

	// Lua constrains the Lua runtime versions the project supports.
	Lua PackageReq

	// Description holds the descriptive metadata block.
	Description ProjectDescription

	// Dependencies are the rocks the project requires.
	Dependencies []PackageReq
}
