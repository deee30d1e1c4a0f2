package objects

import (
	"slices"
	"sort"
)

// LayerStack draws its children in ascending z-index order.
// Children sharing a z-index keep the order they were added in.
type LayerStack struct {
	*BaseObject

	layers []GameObject
}

var _ GameObject = &LayerStack{}

func NewLayerStack(id string) *LayerStack {
	return &LayerStack{
		BaseObject: NewBaseObject(id, nil),
	}
}

func (s *LayerStack) AddChild(id string, child GameObject) error {
	if err := s.BaseObject.AddChild(id, child); err != nil {
		return err
	}
	child.SetParent(s)
	i := sort.Search(len(s.layers), func(i int) bool {
		return s.layers[i].GetZIndex() > child.GetZIndex()
	})
	s.layers = slices.Insert(s.layers, i, child)
	return nil
}

func (s *LayerStack) RemoveChild(id string) error {
	if err := s.BaseObject.RemoveChild(id); err != nil {
		return err
	}
	s.layers = slices.DeleteFunc(s.layers, func(child GameObject) bool {
		return child.GetID() == id
	})
	return nil
}

func (s *LayerStack) GetChildren() []GameObject {
	return s.layers
}
