package camera

import (
	"errors"
	"testing"
)

func TestNewPosition_SwapsReversedBounds(t *testing.T) {
	p, err := NewPosition(10, 0, 3, -3, Resolution{Width: 4, Height: 4})
	if err != nil {
		t.Fatalf("NewPosition: %v", err)
	}
	xmin, xmax, ymin, ymax := p.BBox()
	if xmin != 0 || xmax != 10 {
		t.Fatalf("expected x bounds [0,10], got [%g,%g]", xmin, xmax)
	}
	if ymin != -3 || ymax != 3 {
		t.Fatalf("expected y bounds [-3,3], got [%g,%g]", ymin, ymax)
	}
}

func TestNewPosition_KeepsOrderedBounds(t *testing.T) {
	p, err := NewPosition(-2, 1, 0.5, 0.5, Resolution{Width: 1, Height: 1})
	if err != nil {
		t.Fatalf("NewPosition: %v", err)
	}
	if p.XMin() != -2 || p.XMax() != 1 || p.YMin() != 0.5 || p.YMax() != 0.5 {
		t.Fatalf("unexpected bounds: %s", p)
	}
}

func TestNewPosition_RejectsNonPositiveResolution(t *testing.T) {
	cases := []Resolution{
		{Width: 0, Height: 5},
		{Width: 5, Height: -1},
		{Width: -3, Height: -3},
		{},
	}
	for _, res := range cases {
		_, err := NewPosition(0, 1, 0, 1, res)
		if !errors.Is(err, ErrInvalidResolution) {
			t.Errorf("%s: expected ErrInvalidResolution, got %v", res, err)
		}

		var ce *Error
		if !errors.As(err, &ce) {
			t.Fatalf("%s: expected *camera.Error, got %T", res, err)
		}
		if ce.Res != res {
			t.Errorf("expected error to carry %s, got %s", res, ce.Res)
		}
	}
}

func TestPosition_WithBBoxNormalizes(t *testing.T) {
	p := DefaultPosition().WithBBox(5, -5, 2, 1)

	xmin, xmax, ymin, ymax := p.BBox()
	if xmin != -5 || xmax != 5 || ymin != 1 || ymax != 2 {
		t.Fatalf("unexpected bbox after WithBBox: %s", p)
	}
	if p.Resolution() != (Resolution{Width: 800, Height: 600}) {
		t.Fatalf("WithBBox changed resolution: %s", p.Resolution())
	}
}

func TestPosition_WithResolution(t *testing.T) {
	base := DefaultPosition()

	p, err := base.WithResolution(Resolution{Width: 3, Height: 2})
	if err != nil {
		t.Fatalf("WithResolution: %v", err)
	}
	if p.Resolution() != (Resolution{Width: 3, Height: 2}) {
		t.Fatalf("unexpected resolution %s", p.Resolution())
	}
	if base.Resolution() != (Resolution{Width: 800, Height: 600}) {
		t.Fatalf("WithResolution modified the receiver")
	}

	if _, err := base.WithResolution(Resolution{Width: 3, Height: 0}); !errors.Is(err, ErrInvalidResolution) {
		t.Fatalf("expected ErrInvalidResolution, got %v", err)
	}
}

func TestDefaultPosition(t *testing.T) {
	p := DefaultPosition()
	xmin, xmax, ymin, ymax := p.BBox()
	if xmin != -1 || xmax != 1 || ymin != -1 || ymax != 1 {
		t.Fatalf("unexpected default bbox: %s", p)
	}
	if p.Resolution() != (Resolution{Width: 800, Height: 600}) {
		t.Fatalf("unexpected default resolution: %s", p.Resolution())
	}
}
