package models

// WordsList is a named selection of words studied together
type WordsList struct {
	Name    string `json:"name" db:"name"`
	Comment string `json:"comment" db:"comment"`
	Words   []Word `json:"words"`
}

// Foreigns returns the identity keys of the list words in order
func (l *WordsList) Foreigns() []string {
	keys := make([]string, 0, len(l.Words))
	for _, w := range l.Words {
		keys = append(keys, w.Foreign)
	}
	return keys
}
