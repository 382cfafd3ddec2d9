package util

// IDMap interns string labels into dense ids in first-appearance order.
type IDMap struct {
	strToID map[string]int
	idToStr []string
}

func NewIdMap() *IDMap {
	return &IDMap{
		strToID: make(map[string]int),
		idToStr: make([]string, 0),
	}
}

// GetID returns the id of label s, assigning the next free id when s is new.
func (m *IDMap) GetID(s string) int {
	if id, ok := m.strToID[s]; ok {
		return id
	}
	id := len(m.idToStr)
	m.strToID[s] = id
	m.idToStr = append(m.idToStr, s)
	return id
}

func (m *IDMap) Lookup(s string) (int, bool) {
	id, ok := m.strToID[s]
	return id, ok
}

func (m *IDMap) GetStr(id int) string {
	return m.idToStr[id]
}

func (m *IDMap) Size() int {
	return len(m.idToStr)
}

// Labels returns the labels ordered by id.
func (m *IDMap) Labels() []string {
	labels := make([]string, len(m.idToStr))
	copy(labels, m.idToStr)
	return labels
}
