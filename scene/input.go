package scene

import (
	"fmt"
	"slices"

	"github.com/meghashyamc/geoviz/geometry"
	"github.com/meghashyamc/geoviz/logger"
)

// Coordinator dispatches pointer events to registered entities in
// registration order and owns the single current selection.
type Coordinator struct {
	objects  []Interactive
	selected Interactive
	onChange func()
	logger   logger.Logger
}

// NewCoordinator returns a coordinator that calls onChange whenever an event
// changes what should be on screen.
func NewCoordinator(log logger.Logger, onChange func()) *Coordinator {
	if log == nil {
		log = logger.Nop()
	}
	if onChange == nil {
		onChange = func() {}
	}
	return &Coordinator{
		onChange: onChange,
		logger:   log,
	}
}

func (c *Coordinator) Register(o Interactive) {
	c.objects = append(c.objects, o)
}

// Unregister removes o from dispatch, releasing the selection if o held it.
func (c *Coordinator) Unregister(o Interactive) {
	index := slices.Index(c.objects, o)
	if index == -1 {
		return
	}
	c.objects = slices.Delete(c.objects, index, index+1)
	if c.selected == o {
		o.Unselect()
		c.selected = nil
		c.onChange()
	}
}

func (c *Coordinator) Objects() []Interactive {
	return slices.Clone(c.objects)
}

// Selected returns the entity currently claimed by the pointer, or nil.
func (c *Coordinator) Selected() Interactive {
	return c.selected
}

func (c *Coordinator) HasSelection() bool {
	return c.selected != nil
}

// PointerDown offers the press to each entity in turn. The first one to claim
// it becomes the selection and the rest are skipped.
func (c *Coordinator) PointerDown(cursor geometry.Vector) {
	for _, o := range c.objects {
		if c.selected != nil {
			return
		}
		if o.Select(cursor) {
			c.selected = o
			c.logger.Debug("object selected", "object", fmt.Sprintf("%T", o), "cursor", cursor)
			c.onChange()
		}
	}
}

// PointerMove drags whatever is being dragged to cursor.
func (c *Coordinator) PointerMove(cursor geometry.Vector) {
	for _, o := range c.objects {
		if o.Drag(cursor) {
			c.onChange()
		}
	}
}

// PointerUp ends any drag and releases the selection.
func (c *Coordinator) PointerUp() {
	for _, o := range c.objects {
		o.Unselect()
		if c.selected == o {
			c.selected = nil
			c.logger.Debug("object released", "object", fmt.Sprintf("%T", o))
			c.onChange()
		}
	}
}
