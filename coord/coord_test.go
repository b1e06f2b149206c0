package coord

import "testing"

func TestHICANNOnWaferValid(t *testing.T) {
	if _, err := NewHICANNOnWafer(0, 0); err == nil {
		t.Fatalf("expected (0,0) to be outside the wafer mask")
	}
	if _, err := NewHICANNOnWafer(17, 7); err != nil {
		t.Fatalf("expected (17,7) to be a valid chip: %v", err)
	}
}

func TestHICANNNeighbors(t *testing.T) {
	h, err := NewHICANNOnWafer(17, 7)
	if err != nil {
		t.Fatal(err)
	}
	e, err := h.East()
	if err != nil {
		t.Fatal(err)
	}
	if e.X != 18 || e.Y != 7 {
		t.Fatalf("unexpected east neighbour: %v", e)
	}
	w, err := e.West()
	if err != nil {
		t.Fatal(err)
	}
	if w != h {
		t.Fatalf("east-then-west should return to origin, got %v", w)
	}
}

func TestHICANNNeighborOutOfMask(t *testing.T) {
	h, err := NewHICANNOnWafer(8, 0)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := h.West(); err == nil {
		t.Fatalf("expected west of leftmost chip in row to fail")
	}
}

func TestCrossbarExistsPeriodicity(t *testing.T) {
	h, _ := NewHLineOnHICANN(3)
	count := 0
	for _, v := range AllVLineOnHICANN() {
		if CrossbarExists(h, v) {
			count++
		}
	}
	if count != VLineCount/CrossbarPeriod {
		t.Fatalf("expected %d crossbar hits for hline 3, got %d", VLineCount/CrossbarPeriod, count)
	}
}

func TestDNCMergerHomeMerger0(t *testing.T) {
	for i := 0; i < DNCMergerCount; i++ {
		d := DNCMergerOnHICANN(i)
		if int(d.HomeMerger0()) != i {
			t.Fatalf("DNCMerger(%d) home leaf mismatch", i)
		}
	}
}

func TestMergerTreeMembers(t *testing.T) {
	m1 := Merger1OnHICANN(1)
	members := m1.Members()
	if len(members) != 2 || members[0] != 2 || members[1] != 3 {
		t.Fatalf("Merger1(1) should span leaves {2,3}, got %v", members)
	}
	m2 := Merger2OnHICANN(1)
	quad := m2.Members()
	if len(quad) != 4 || quad[0] != 4 || quad[3] != 7 {
		t.Fatalf("Merger2(1) should span leaves {4..7}, got %v", quad)
	}
}

func TestL1AddressRange(t *testing.T) {
	if _, err := NewL1Address(64); err == nil {
		t.Fatalf("expected out-of-range error for address 64")
	}
	a, err := NewL1Address(63)
	if err != nil || a.Value() != 63 {
		t.Fatalf("expected address 63 to be valid, got %v / %v", a, err)
	}
}
