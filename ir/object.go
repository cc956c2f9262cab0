package ir

// Pair is an object member. It owns its name and its value.
type Pair struct {
	name  []byte
	value Value
}

func (p *Pair) Name() string {
	return string(p.name)
}

// NameBytes returns the name block without copying.
func (p *Pair) NameBytes() []byte {
	return p.name
}

func (p *Pair) Value() *Value {
	return &p.value
}

// AllocName allocates a name block of n bytes for decoders to fill.
func (p *Pair) AllocName(n int) []byte {
	p.releaseName()
	p.name = p.value.allocator().Allocate(n)
	return p.name
}

func (p *Pair) setName(name string) {
	copy(p.AllocName(len(name)), name)
}

func (p *Pair) releaseName() {
	if p.name != nil {
		p.value.allocator().Deallocate(p.name)
		p.name = nil
	}
}

func (p *Pair) release() {
	p.releaseName()
	p.value.release()
}

// Object is an ordered sequence of pairs. Lookups scan linearly and the
// first pair with a matching name wins.
type Object struct {
	Container[Pair]
}

// Get returns the value of the first member called name, or the Empty
// sentinel when there is none. It never allocates.
func (o *Object) Get(name string) *Value {
	if o == nil {
		return Empty()
	}
	for p := range o.All() {
		if string(p.name) == name {
			return &p.value
		}
	}
	return Empty()
}

// Has reports whether a member called name exists.
func (o *Object) Has(name string) bool {
	return o.Get(name) != Empty()
}

// Field returns the value of the first member called name, appending a new
// Null member when there is none.
func (o *Object) Field(name string) *Value {
	for p := range o.All() {
		if string(p.name) == name {
			return &p.value
		}
	}
	return o.Append(name)
}

// Append adds a member called name without looking for an existing one and
// returns its value. Decoders use it to keep members in wire order.
func (o *Object) Append(name string) *Value {
	p := o.AppendPair()
	p.setName(name)
	return &p.value
}

// AppendPair adds an unnamed member.
func (o *Object) AppendPair() *Pair {
	p := o.create()
	p.value.alloc = o.allocator()
	return p
}

func (o *Object) release() {
	for p := range o.All() {
		p.release()
	}
	o.clear()
}

// Array is an ordered sequence of values.
type Array struct {
	Container[Value]
}

// Append adds a Null item and returns it.
func (a *Array) Append() *Value {
	v := a.create()
	v.alloc = a.allocator()
	return v
}

// Add appends an item holding x. See Value.Set for the accepted types.
func (a *Array) Add(x any) error {
	return a.Append().Set(x)
}

func (a *Array) AddObject() *Object {
	return a.Append().Object()
}

func (a *Array) AddArray() *Array {
	return a.Append().Array()
}

// At returns the i-th item by walking the list, or the Empty sentinel.
func (a *Array) At(i int) *Value {
	if a == nil || i < 0 {
		return Empty()
	}
	j := 0
	for v := range a.All() {
		if j == i {
			return v
		}
		j++
	}
	return Empty()
}

func (a *Array) release() {
	for v := range a.All() {
		v.release()
	}
	a.clear()
}
