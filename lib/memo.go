package lib

// memoStore backs Board.GetMemo/StoreMemo. It is shared by pointer across
// Clone/SubboardClone: a cached answer depends only on the inputs encoded
// in its key (cells, current masks, parameters), never on which clone
// computed it, so plain reference sharing is correct and cheaper than a
// copy-on-write scheme.
type memoStore struct {
	data map[string]interface{}
}

func newMemoStore() *memoStore {
	return &memoStore{data: make(map[string]interface{})}
}

// GetMemo looks up a previously stored payload by key.
func (b *Board) GetMemo(key string) (interface{}, bool) {
	v, ok := b.memo.data[key]
	return v, ok
}

// StoreMemo records a payload under key for later GetMemo calls, including
// from sibling clones.
func (b *Board) StoreMemo(key string, val interface{}) {
	b.memo.data[key] = val
}
