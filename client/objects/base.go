package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}

// GameObject is a node in a scene's object tree.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	AddChild(id string, child GameObject) error
	RemoveChild(id string) error
	RemoveFromParent() error
}

// objectIndex keeps children in insertion order with lookup by id.
type objectIndex struct {
	ordered      []GameObject
	idxIDObjects map[string]GameObject
}

func newObjectIndex() *objectIndex {
	return &objectIndex{idxIDObjects: make(map[string]GameObject)}
}

func (x *objectIndex) Add(id string, o GameObject) {
	x.ordered = append(x.ordered, o)
	x.idxIDObjects[id] = o
}

func (x *objectIndex) Get(id string) GameObject {
	return x.idxIDObjects[id]
}

func (x *objectIndex) Remove(id string) {
	o, ok := x.idxIDObjects[id]
	if !ok {
		return
	}
	delete(x.idxIDObjects, id)
	for i, obj := range x.ordered {
		if obj == o {
			x.ordered = append(x.ordered[:i], x.ordered[i+1:]...)
			return
		}
	}
}

// BaseObject carries the tree bookkeeping. Concrete objects embed it and
// override the lifecycle methods they need.
type BaseObject struct {
	id       string
	zIndex   int
	parent   GameObject
	children *objectIndex
}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings under a SortedZIndexObject. Higher draws later.
	ZIndex int
}

var _ GameObject = &BaseObject{}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	if opts == nil {
		opts = &NewBaseObjectOpts{}
	}
	return &BaseObject{
		id:       id,
		zIndex:   opts.ZIndex,
		children: newObjectIndex(),
	}
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children.ordered
}

func (o *BaseObject) AddChild(id string, child GameObject) error {
	if o.children.Get(id) != nil {
		return fmt.Errorf("child object with id %s already exists", id)
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	o.children.Add(id, child)
	child.SetParent(o)
	return nil
}

func (o *BaseObject) RemoveChild(id string) error {
	child := o.children.Get(id)
	if child == nil {
		return fmt.Errorf("child object with id %s does not exist", id)
	}
	if err := DestroyTree(child); err != nil {
		return fmt.Errorf("failed to destroy child object tree: %v", err)
	}
	o.children.Remove(id)
	child.SetParent(nil)
	return nil
}

func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return fmt.Errorf("object %s has no parent", o.id)
	}
	return o.parent.RemoveChild(o.id)
}

// InitTree initializes o and then its children.
func InitTree(o GameObject) error {
	if err := o.Init(); err != nil {
		return fmt.Errorf("failed to initialize %s: %v", o.GetID(), err)
	}
	for _, child := range o.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of o before o itself.
func DestroyTree(o GameObject) error {
	for _, child := range snapshot(o.GetChildren()) {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := o.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy %s: %v", o.GetID(), err)
	}
	return nil
}

// UpdateTree updates o and then its children. Children may remove themselves
// during the walk.
func UpdateTree(o GameObject) error {
	if err := o.Update(); err != nil {
		return fmt.Errorf("failed to update %s: %v", o.GetID(), err)
	}
	for _, child := range snapshot(o.GetChildren()) {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

func DrawTree(o GameObject, screen *ebiten.Image) {
	o.Draw(screen)
	for _, child := range o.GetChildren() {
		DrawTree(child, screen)
	}
}

func snapshot(children []GameObject) []GameObject {
	return append([]GameObject(nil), children...)
}
