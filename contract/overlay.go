package contract

// overlay stages the writes of one operation on top of a base Store. Reads
// see pending writes first, then fall through to the base. Nothing touches
// the base until Commit, so an operation that fails part-way leaves no
// trace.
type overlay struct {
	base    Store
	writes  map[string]string
	deletes map[string]bool
}

func newOverlay(base Store) *overlay {
	return &overlay{
		base:    base,
		writes:  make(map[string]string),
		deletes: make(map[string]bool),
	}
}

func (o *overlay) Set(key, value string) {
	delete(o.deletes, key)
	o.writes[key] = value
}

func (o *overlay) Get(key string) *string {
	if o.deletes[key] {
		return nil
	}
	if val, ok := o.writes[key]; ok {
		return &val
	}
	return o.base.Get(key)
}

func (o *overlay) Delete(key string) {
	delete(o.writes, key)
	o.deletes[key] = true
}

// Commit flushes the staged writes and deletes into the base store.
func (o *overlay) Commit() {
	for key := range o.deletes {
		o.base.Delete(key)
	}
	for key, value := range o.writes {
		o.base.Set(key, value)
	}
	o.writes = make(map[string]string)
	o.deletes = make(map[string]bool)
}
