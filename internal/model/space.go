package model

import "github.com/kingrea/openstudio/internal/idd"

// Space carries the floor area and occupancy that per-area and per-person
// loads are computed against.
type Space struct {
	ModelObject
}

func NewSpace(m *Model) Space {
	return Space{m.mustAdd(idd.Space)}
}

// FloorArea is in m^2.
func (s Space) FloorArea() float64 { return s.getDouble(idd.SpaceFloorArea) }

func (s Space) SetFloorArea(v float64) bool { return s.setDouble(idd.SpaceFloorArea, v) }

func (s Space) NumberOfPeople() float64 { return s.getDouble(idd.SpaceNumberOfPeople) }

func (s Space) SetNumberOfPeople(v float64) bool { return s.setDouble(idd.SpaceNumberOfPeople, v) }

func (s Space) attributes() []Attribute {
	return append(s.ModelObject.attributes(),
		doubleAttr("floorArea", always(s.FloorArea), s.SetFloorArea, nil),
		doubleAttr("numberOfPeople", always(s.NumberOfPeople), s.SetNumberOfPeople, nil),
	)
}
