package model

import "testing"

func freeRegion(x, y, w, h int) Placement {
	return Placement{Corner: CornerPoint{X: x, Y: y}, Item: NewItem(w, h)}
}

func TestDetectOffcutsFiltersAndSorts(t *testing.T) {
	br := BinResult{
		Index: 2,
		Free: []Placement{
			freeRegion(0, 0, 2, 50), // too narrow
			freeRegion(10, 0, 20, 10),
			freeRegion(0, 60, 40, 40),
			freeRegion(50, 50, 10, 10), // too small by area
		},
	}
	offcuts := DetectOffcuts(br, OffcutLimits{MinSide: 5, MinArea: 150})

	if len(offcuts) != 2 {
		t.Fatalf("expected 2 offcuts, got %d", len(offcuts))
	}
	if offcuts[0].Width != 40 || offcuts[0].Y != 60 {
		t.Errorf("expected largest offcut first, got %+v", offcuts[0])
	}
	if offcuts[1].Area() != 200 {
		t.Errorf("expected second offcut area 200, got %d", offcuts[1].Area())
	}
	for _, o := range offcuts {
		if o.BinIndex != 2 {
			t.Errorf("expected bin index 2, got %d", o.BinIndex)
		}
		if o.ID == "" {
			t.Error("expected offcut ID")
		}
	}
}

func TestDetectOffcutsNoFreeSpace(t *testing.T) {
	if got := DetectOffcuts(BinResult{}, DefaultOffcutLimits()); len(got) != 0 {
		t.Errorf("expected no offcuts, got %d", len(got))
	}
}

func TestDetectAllOffcuts(t *testing.T) {
	result := PackResult{
		Bins: []BinResult{
			{Index: 0, Free: []Placement{freeRegion(0, 0, 3, 3)}},
			{Index: 1, Free: []Placement{freeRegion(0, 0, 4, 4), freeRegion(4, 0, 1, 1)}},
		},
	}
	all := DetectAllOffcuts(result, DefaultOffcutLimits())
	if len(all) != 3 {
		t.Fatalf("expected 3 offcuts, got %d", len(all))
	}
	if TotalOffcutArea(all) != 26 {
		t.Errorf("expected total area 26, got %d", TotalOffcutArea(all))
	}
}

func TestOffcutToBinPreset(t *testing.T) {
	o := Offcut{ID: "abc", Width: 30, Height: 12}
	p := o.ToBinPreset()
	if p.Width != 30 || p.Height != 12 {
		t.Errorf("expected 30x12, got %dx%d", p.Width, p.Height)
	}
	if p.Name != "Offcut abc" {
		t.Errorf("unexpected name %q", p.Name)
	}
}

func TestDetectOffcutsLargeRegionsAndTies(t *testing.T) {
	const big = 1 << 30
	br := BinResult{
		Free: []Placement{
			freeRegion(0, 0, 10, 10),
			freeRegion(0, 10, big, big),
			freeRegion(0, 20, 20, 5),
			freeRegion(0, 30, big, 3),
		},
	}
	offcuts := DetectOffcuts(br, DefaultOffcutLimits())

	want := []int{10, 30, 0, 20}
	if len(offcuts) != len(want) {
		t.Fatalf("expected %d offcuts, got %d", len(want), len(offcuts))
	}
	for i, y := range want {
		if offcuts[i].Y != y {
			t.Errorf("offcut %d: expected y=%d, got y=%d", i, y, offcuts[i].Y)
		}
	}
}
