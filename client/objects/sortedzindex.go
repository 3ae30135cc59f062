package objects

import (
	"fmt"
	"sort"
	"strings"
)

// SortedZIndexObject keeps its children ordered by z-index so that DrawTree
// paints higher layers last. Children with equal z-index keep insertion order.
type SortedZIndexObject struct {
	*BaseObject

	sorted []GameObject
}

var _ GameObject = &SortedZIndexObject{}

func NewSortedZIndexObject(id string) *SortedZIndexObject {
	return &SortedZIndexObject{
		BaseObject: NewBaseObject(id, nil),
	}
}

func (o *SortedZIndexObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)

	i := sort.Search(len(o.sorted), func(i int) bool {
		return o.sorted[i].GetZIndex() > child.GetZIndex()
	})
	o.sorted = append(o.sorted, nil)
	copy(o.sorted[i+1:], o.sorted[i:])
	o.sorted[i] = child
	return nil
}

func (o *SortedZIndexObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	for i, obj := range o.sorted {
		if obj == child {
			o.sorted = append(o.sorted[:i], o.sorted[i+1:]...)
			break
		}
	}
	return nil
}

// RemoveChildren drops every child whose id has the given prefix.
func (o *SortedZIndexObject) RemoveChildren(prefix string) error {
	for _, child := range snapshot(o.sorted) {
		if strings.HasPrefix(child.GetID(), prefix) {
			if err := o.RemoveChild(child.GetID()); err != nil {
				return err
			}
		}
	}
	return nil
}

func (o *SortedZIndexObject) GetChildren() []GameObject {
	return o.sorted
}
