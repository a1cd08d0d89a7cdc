package idd

import "testing"

func TestEverySchemaStartsWithHandle(t *testing.T) {
	for _, typ := range Types() {
		s, ok := Lookup(typ)
		if !ok {
			t.Fatalf("lookup %s failed", typ)
		}
		if len(s.Fields) == 0 || s.Fields[0].Kind != KindHandle {
			t.Fatalf("%s: field 0 must be the handle", typ)
		}
	}
}

func TestFanContainersReferenceConstantVolumeFans(t *testing.T) {
	for _, typ := range FanContainerTypes {
		s, ok := Lookup(typ)
		if !ok {
			t.Fatalf("missing container schema %s", typ)
		}
		f, ok := s.Field(FanContainerSupplyAirFanName)
		if !ok || !f.AllowsReference(FanConstantVolume) {
			t.Fatalf("%s: supply air fan field must reference %s", typ, FanConstantVolume)
		}
	}
}

func TestFieldBounds(t *testing.T) {
	s, _ := Lookup(FanConstantVolume)
	eff, _ := s.Field(FanConstantVolumeFanEfficiency)
	cases := map[float64]bool{0: false, 0.5: true, 1: true, 1.01: false}
	for v, want := range cases {
		if got := eff.InRange(v); got != want {
			t.Fatalf("InRange(%v) = %v, want %v", v, got, want)
		}
	}
	flow, _ := s.Field(FanConstantVolumeMaximumFlowRate)
	if !flow.Autosizable {
		t.Fatalf("maximum flow rate must be autosizable")
	}
	if idx, ok := s.FieldIndex("maximum flow rate"); !ok || idx != FanConstantVolumeMaximumFlowRate {
		t.Fatalf("FieldIndex returned %d, %v", idx, ok)
	}
}

func TestUniqueAndNamedFlags(t *testing.T) {
	lsc, _ := Lookup(LightingSimulationControl)
	if !lsc.Unique || lsc.Named() {
		t.Fatalf("lighting simulation control must be unique and unnamed")
	}
	fan, _ := Lookup(FanConstantVolume)
	if fan.Unique || !fan.Named() {
		t.Fatalf("fan must be named and not unique")
	}
}
