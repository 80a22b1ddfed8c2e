package tui

import "fmt"

// ChatMessage is one rendered line of a client-side thread.
type ChatMessage struct {
	Role    string
	Content string
}

// Threads holds the client-local conversation threads: an ordered set of
// named message lists plus the active thread name. Thread names double as
// server session ids. State is owned by the Bubble Tea model, not shared.
type Threads struct {
	order  []string
	byName map[string][]ChatMessage
	active string
	count  int
}

func NewThreads() *Threads {
	t := &Threads{byName: make(map[string][]ChatMessage)}
	t.New()
	return t
}

// Active returns the name of the active thread.
func (t *Threads) Active() string { return t.active }

// Names returns all thread names in creation order.
func (t *Threads) Names() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// New creates a fresh empty thread, makes it active and returns its name.
func (t *Threads) New() string {
	t.count++
	name := fmt.Sprintf("chat%d", t.count)
	t.order = append(t.order, name)
	t.byName[name] = nil
	t.active = name
	return name
}

// Switch makes the named thread active. Unknown names are ignored.
func (t *Threads) Switch(name string) bool {
	if _, ok := t.byName[name]; !ok {
		return false
	}
	t.active = name
	return true
}

// Next cycles to the thread created after the active one.
func (t *Threads) Next() string {
	for i, name := range t.order {
		if name == t.active {
			t.active = t.order[(i+1)%len(t.order)]
			break
		}
	}
	return t.active
}

// Append adds a message to the named thread.
func (t *Threads) Append(name string, msg ChatMessage) {
	if _, ok := t.byName[name]; !ok {
		return
	}
	t.byName[name] = append(t.byName[name], msg)
}

// Messages returns the messages of the named thread in order.
func (t *Threads) Messages(name string) []ChatMessage {
	return t.byName[name]
}
