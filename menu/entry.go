package menu

// Action is what a menu entry runs when it is chosen.
type Action interface {
	Invoke()
}

// ActionFunc adapts a plain function or closure to Action.
type ActionFunc func()

func (f ActionFunc) Invoke() {
	if f != nil {
		f()
	}
}

// Label is the text shown for an entry. Text labels live in RAM; bulk labels
// are NUL-terminated strings at Addr inside the engine's Store.
type Label struct {
	Text   string
	Addr   uint32
	InBulk bool
}

// Text returns a label held in local memory.
func Text(s string) Label { return Label{Text: s} }

// Bulk returns a label stored at addr in bulk storage.
func Bulk(addr uint32) Label { return Label{Addr: addr, InBulk: true} }

// caseBit is the ASCII bit that separates upper from lower case letters.
const caseBit = 0x20

// Entry is one selectable menu line. The zero value is not useful; build
// entries with NewEntry. Entries are values and are never modified.
type Entry struct {
	label  Label
	key    byte
	action Action
}

// NewEntry pairs a label, a selector key and an action. Nothing is validated.
func NewEntry(label Label, key byte, action Action) Entry {
	return Entry{label: label, key: key, action: action}
}

// Label returns the entry label and its storage location.
func (e Entry) Label() Label { return e.label }

// Key returns the selector as given to NewEntry.
func (e Entry) Key() byte { return e.key }

// Matches reports whether c selects this entry. Comparison forces the ASCII
// case bit on both sides, so 'a' and 'A' match. Selectors outside the letter
// ranges are reserved: symbols that differ only in that bit (for example
// '[' and '{') also compare equal.
func (e Entry) Matches(c byte) bool {
	return c|caseBit == e.key|caseBit
}

// Invoke runs the entry's action, if any.
func (e Entry) Invoke() {
	if e.action != nil {
		e.action.Invoke()
	}
}
