/*
File    : golox/internal/interpreter/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/token"
)

// Class is a Lox class value: a name, an optional superclass, and its
// own method table. Finding a method walks the superclass chain
// linearly, same as the data model requires.
type Class struct {
	Name       string
	Superclass *Class
	Methods    map[string]*Function
}

// NewClass builds a class value; methods holds only the methods
// declared directly on this class, not inherited ones.
func NewClass(name string, superclass *Class, methods map[string]*Function) *Class {
	return &Class{Name: name, Superclass: superclass, Methods: methods}
}

// findMethod looks up name on this class, then its superclass chain.
func (c *Class) findMethod(name string) (*Function, bool) {
	if fn, ok := c.Methods[name]; ok {
		return fn, true
	}
	if c.Superclass != nil {
		return c.Superclass.findMethod(name)
	}
	return nil, false
}

// Arity is the arity of the class's init method, or 0 if it has none.
func (c *Class) Arity() int {
	if init, ok := c.findMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Call constructs a new Instance, running its init method (if any)
// with args and discarding the method's own return value — the bound
// instance is always what a constructor call yields.
func (c *Class) Call(interp *Interpreter, args []Value) (Value, error) {
	instance := NewInstance(c)
	if init, ok := c.findMethod("init"); ok {
		if _, err := init.Bind(instance).Call(interp, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

func (c *Class) String() string {
	return "<class " + c.Name + ">"
}

// Instance is a Lox object: a reference to its class and its own field
// map. Methods are never copied onto an instance; getProperty resolves
// them against the class chain and binds "this" lazily.
type Instance struct {
	class  *Class
	fields map[string]Value
}

func NewInstance(class *Class) *Instance {
	return &Instance{class: class, fields: make(map[string]Value)}
}

func (i *Instance) String() string {
	return "<" + i.class.Name + " instance>"
}

// getProperty looks up a field, then a bound method; fields shadow
// methods of the same name. name is the property token, kept so a miss
// reports the right line.
func (i *Instance) getProperty(name token.Token) (Value, error) {
	if v, ok := i.fields[name.Lexeme]; ok {
		return v, nil
	}
	if method, ok := i.class.findMethod(name.Lexeme); ok {
		return method.Bind(i), nil
	}
	return nil, diagnostics.NewRuntimeError(name, "Undefined property '%s'.", name.Lexeme)
}

// setProperty unconditionally inserts or overwrites a field.
func (i *Instance) setProperty(name token.Token, value Value) {
	i.fields[name.Lexeme] = value
}
