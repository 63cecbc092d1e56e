package value

// Class is a Boop class: a name, an optional superclass, and its own
// method table (methods inherited from a superclass are not copied in;
// FindMethod walks the chain).
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

func (*Class) valueNode() {}

// FindMethod looks up name on the class itself, then its superclass
// chain, returning nil if no class in the chain declares it.
func (c *Class) FindMethod(name string) *Function {
	if m, ok := c.Methods[name]; ok {
		return m
	}
	if c.Superclass != nil {
		return c.Superclass.FindMethod(name)
	}
	return nil
}

// Instance is a live instance of a Class. Instances have identity:
// equality compares identity, not field contents (spec.md §3).
type Instance struct {
	Class  *Class
	Fields map[string]Value
}

func (*Instance) valueNode() {}

// NewInstance creates a fresh, fieldless instance of c.
func NewInstance(c *Class) *Instance {
	return &Instance{Class: c, Fields: make(map[string]Value)}
}

// GetField looks up a field by name; the method table is consulted by
// the evaluator instead, since binding a method result requires calling
// back into Function.Bind which this package already exposes directly.
func (i *Instance) GetField(name string) (Value, bool) {
	v, ok := i.Fields[name]
	return v, ok
}

// Set stores into the instance's field map, creating the field on first
// assignment.
func (i *Instance) Set(name string, v Value) {
	i.Fields[name] = v
}
