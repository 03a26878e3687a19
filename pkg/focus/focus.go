// Package focus tracks which widget receives keyboard input and moves focus
// in traversal order.
package focus

// Node is anything that can hold focus.
type Node interface {
	SetFocused(focused bool)
	Focused() bool
}

// disabler is implemented by nodes that can refuse focus.
type disabler interface {
	Disabled() bool
}

// Manager holds the focus traversal order and the primary focus.
type Manager struct {
	nodes   []Node
	primary Node
}

// NewManager returns an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register appends n to the traversal order.
func (m *Manager) Register(n Node) {
	for _, existing := range m.nodes {
		if existing == n {
			return
		}
	}
	m.nodes = append(m.nodes, n)
}

// Unregister removes n, dropping focus if it held it.
func (m *Manager) Unregister(n Node) {
	for i, existing := range m.nodes {
		if existing == n {
			m.nodes = append(m.nodes[:i], m.nodes[i+1:]...)
			break
		}
	}
	if m.primary == n {
		m.setPrimaryFocus(nil)
	}
}

// Nodes returns the traversal order.
func (m *Manager) Nodes() []Node {
	return append([]Node(nil), m.nodes...)
}

// PrimaryFocus returns the focused node, or nil.
func (m *Manager) PrimaryFocus() Node {
	return m.primary
}

// RequestFocus focuses n if it can receive focus. It reports whether n holds
// focus afterwards.
func (m *Manager) RequestFocus(n Node) bool {
	if !canReceiveFocus(n) {
		return false
	}
	m.setPrimaryFocus(n)
	return true
}

// Unfocus clears the primary focus.
func (m *Manager) Unfocus() {
	m.setPrimaryFocus(nil)
}

// NextFocus moves focus forward, wrapping around.
func (m *Manager) NextFocus() bool {
	return m.MoveFocus(1)
}

// PreviousFocus moves focus backward, wrapping around.
func (m *Manager) PreviousFocus() bool {
	return m.MoveFocus(-1)
}

// MoveFocus moves focus by delta positions, skipping nodes that cannot
// receive focus.
func (m *Manager) MoveFocus(delta int) bool {
	count := len(m.nodes)
	if count == 0 {
		return false
	}

	currentIndex := m.findCurrentFocusIndex()
	if currentIndex < 0 && delta < 0 {
		// Backward from nothing lands on the last node.
		currentIndex = count
	}

	for step := 1; step <= count; step++ {
		nextIndex := wrapIndex(currentIndex+delta*step, count)
		candidate := m.nodes[nextIndex]
		if canReceiveFocus(candidate) {
			m.setPrimaryFocus(candidate)
			return true
		}
	}
	return false
}

func canReceiveFocus(n Node) bool {
	if n == nil {
		return false
	}
	if d, ok := n.(disabler); ok && d.Disabled() {
		return false
	}
	return true
}

// findCurrentFocusIndex returns the index of the focused node, or -1 if none.
func (m *Manager) findCurrentFocusIndex() int {
	for i, n := range m.nodes {
		if n == m.primary {
			return i
		}
	}
	return -1
}

// wrapIndex wraps an index to stay within [0, count).
func wrapIndex(index, count int) int {
	index = index % count
	if index < 0 {
		index += count
	}
	return index
}

// setPrimaryFocus updates the primary focus to the given node.
func (m *Manager) setPrimaryFocus(n Node) {
	if m.primary == n {
		return
	}
	if m.primary != nil {
		m.primary.SetFocused(false)
	}
	m.primary = n
	if n != nil {
		n.SetFocused(true)
	}
}
