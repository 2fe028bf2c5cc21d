package domain

// Key describes a single keypress as reported by the line editor
type Key struct {
	Name     string // "down", "up", "backspace", "n", ...
	Ctrl     bool
	Meta     bool
	Shift    bool
	Sequence string // raw text inserted by the key, if any
}

// Is reports whether the key has the given name and ctrl state
func (k Key) Is(name string, ctrl bool) bool {
	return k.Name == name && k.Ctrl == ctrl
}
