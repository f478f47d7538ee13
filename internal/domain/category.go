package domain

// Category is the expected realizability of a specification
type Category int

const (
	Unrealizable Category = iota
	Realizable
)

// Directory names that encode the expected category of the files below them
const (
	RealizableDir   = "real"
	UnrealizableDir = "unreal"
)

func (c Category) String() string {
	if c == Realizable {
		return "realizable"
	}
	return "unrealizable"
}

// Dir returns the corpus directory name for the category
func (c Category) Dir() string {
	if c == Realizable {
		return RealizableDir
	}
	return UnrealizableDir
}

// CategoryFromDir maps a corpus directory name to its category
func CategoryFromDir(name string) (Category, bool) {
	switch name {
	case RealizableDir:
		return Realizable, true
	case UnrealizableDir:
		return Unrealizable, true
	}
	return Unrealizable, false
}
