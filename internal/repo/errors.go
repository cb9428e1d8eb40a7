package repo

// PathNotFoundError indicates the repository directory does not exist.
type PathNotFoundError struct {
	Path string
}

func (e *PathNotFoundError) Error() string {
	return "repository path does not exist: " + e.Path
}

// MissingReadmeError indicates no README file was found at the repository root.
type MissingReadmeError struct {
	Dir string
}

func (e *MissingReadmeError) Error() string {
	return "no README found in " + e.Dir
}

// IsPathNotFound checks if an error is a PathNotFoundError.
func IsPathNotFound(err error) bool {
	_, ok := err.(*PathNotFoundError)
	return ok
}

// IsMissingReadme checks if an error is a MissingReadmeError.
func IsMissingReadme(err error) bool {
	_, ok := err.(*MissingReadmeError)
	return ok
}
