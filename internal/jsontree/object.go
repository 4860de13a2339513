package jsontree

// Member is a single key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// Object is a JSON object that remembers member insertion order.
type Object struct {
	members []Member
	index   map[string]int
}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{index: make(map[string]int)}
}

// Len returns the number of members.
func (o *Object) Len() int {
	if o == nil {
		return 0
	}
	return len(o.members)
}

// Get returns the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	if o == nil {
		return Value{}, false
	}
	i, ok := o.index[key]
	if !ok {
		return Value{}, false
	}
	return o.members[i].Value, true
}

// Has reports whether key is present.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Set stores value under key. An existing key keeps its position.
func (o *Object) Set(key string, value Value) {
	if i, ok := o.index[key]; ok {
		o.members[i].Value = value
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, Member{Key: key, Value: value})
}

// Delete removes key and reports whether it was present.
func (o *Object) Delete(key string) bool {
	i, ok := o.index[key]
	if !ok {
		return false
	}
	o.members = append(o.members[:i], o.members[i+1:]...)
	delete(o.index, key)
	for j := i; j < len(o.members); j++ {
		o.index[o.members[j].Key] = j
	}
	return true
}

// Rename moves the value stored under oldKey to newKey.
//
// If newKey is absent the member keeps oldKey's position. If newKey is
// already present its value is overwritten in place and the oldKey member
// is removed. Rename reports whether oldKey was present.
func (o *Object) Rename(oldKey, newKey string) bool {
	i, ok := o.index[oldKey]
	if !ok {
		return false
	}
	if oldKey == newKey {
		return true
	}
	if _, exists := o.index[newKey]; exists {
		value := o.members[i].Value
		o.Delete(oldKey)
		o.Set(newKey, value)
		return true
	}
	o.members[i].Key = newKey
	delete(o.index, oldKey)
	o.index[newKey] = i
	return true
}

// Keys returns the member keys in order.
func (o *Object) Keys() []string {
	keys := make([]string, 0, o.Len())
	if o == nil {
		return keys
	}
	for _, m := range o.members {
		keys = append(keys, m.Key)
	}
	return keys
}

// Members returns a copy of the members in order.
func (o *Object) Members() []Member {
	if o == nil {
		return nil
	}
	out := make([]Member, len(o.members))
	copy(out, o.members)
	return out
}
