package model

import (
	"strings"

	"github.com/kingrea/openstudio/internal/idd"
)

// UtilityCostTariff is the parent of the ratchets that name it.
type UtilityCostTariff struct {
	ModelObject
}

// NewUtilityCostTariff adds a tariff metering meterName.
func NewUtilityCostTariff(m *Model, meterName string) UtilityCostTariff {
	t := UtilityCostTariff{m.mustAdd(idd.UtilityCostTariff)}
	t.SetOutputMeterName(meterName)
	return t
}

func (t UtilityCostTariff) OutputMeterName() string {
	return t.getString(idd.UtilityCostTariffOutputMeterName)
}

func (t UtilityCostTariff) SetOutputMeterName(v string) bool {
	return t.setString(idd.UtilityCostTariffOutputMeterName, v)
}

func (t UtilityCostTariff) ConversionFactorChoice() (string, bool) {
	return t.getOptionalString(idd.UtilityCostTariffConversionFactorChoice)
}

func (t UtilityCostTariff) SetConversionFactorChoice(v string) bool {
	return t.setString(idd.UtilityCostTariffConversionFactorChoice, v)
}

func (t UtilityCostTariff) GroupName() (string, bool) {
	return t.getOptionalString(idd.UtilityCostTariffGroupName)
}

func (t UtilityCostTariff) SetGroupName(v string) bool {
	return t.setString(idd.UtilityCostTariffGroupName, v)
}

// SetName renames the tariff and the tariff name of its ratchets.
func (t UtilityCostTariff) SetName(name string) bool {
	children := t.Ratchets()
	if !t.ModelObject.SetName(name) {
		return false
	}
	for _, r := range children {
		r.SetTariffName(t.Name())
	}
	return true
}

// Ratchets returns the ratchets whose tariff name matches t.
func (t UtilityCostTariff) Ratchets() []UtilityCostRatchet {
	var out []UtilityCostRatchet
	for _, r := range t.model.UtilityCostRatchets() {
		if name, ok := r.TariffName(); ok && strings.EqualFold(name, t.Name()) {
			out = append(out, r)
		}
	}
	return out
}

// Children returns the tariff's ratchets.
func (t UtilityCostTariff) Children() []ModelObject {
	var out []ModelObject
	for _, r := range t.Ratchets() {
		out = append(out, r.ModelObject)
	}
	return out
}

func (t UtilityCostTariff) AllowableChildTypes() []idd.ObjectType {
	return []idd.ObjectType{idd.UtilityCostRatchet}
}

func (t UtilityCostTariff) attributes() []Attribute {
	base := t.ModelObject.attributes()
	for i := range base {
		if base[i].Name == "name" {
			base[i].Set = func(v any) bool {
				s, ok := v.(string)
				return ok && t.SetName(s)
			}
		}
	}
	return append(base,
		stringAttr("outputMeterName", always(t.OutputMeterName), t.SetOutputMeterName, nil),
		stringAttr("conversionFactorChoice", t.ConversionFactorChoice, t.SetConversionFactorChoice, nil),
		stringAttr("groupName", t.GroupName, t.SetGroupName, nil),
	)
}

// UtilityCostRatchet computes a billing variable from the peak of prior
// periods. It belongs to the tariff it names.
type UtilityCostRatchet struct {
	ModelObject
}

// NewUtilityCostRatchet adds a ratchet under tariff.
func NewUtilityCostRatchet(tariff UtilityCostTariff) UtilityCostRatchet {
	r := UtilityCostRatchet{tariff.model.mustAdd(idd.UtilityCostRatchet)}
	r.SetParent(tariff)
	return r
}

func (r UtilityCostRatchet) TariffName() (string, bool) {
	return r.getOptionalString(idd.UtilityCostRatchetTariffName)
}

func (r UtilityCostRatchet) SetTariffName(v string) bool {
	return r.setString(idd.UtilityCostRatchetTariffName, v)
}

func (r UtilityCostRatchet) BaselineSourceVariable() (string, bool) {
	return r.getOptionalString(idd.UtilityCostRatchetBaselineSourceVariable)
}

func (r UtilityCostRatchet) SetBaselineSourceVariable(v string) bool {
	return r.setString(idd.UtilityCostRatchetBaselineSourceVariable, v)
}

func (r UtilityCostRatchet) AdjustmentSourceVariable() (string, bool) {
	return r.getOptionalString(idd.UtilityCostRatchetAdjustmentSourceVariable)
}

func (r UtilityCostRatchet) SetAdjustmentSourceVariable(v string) bool {
	return r.setString(idd.UtilityCostRatchetAdjustmentSourceVariable, v)
}

func (r UtilityCostRatchet) SeasonFrom() (string, bool) {
	return r.getOptionalString(idd.UtilityCostRatchetSeasonFrom)
}

func (r UtilityCostRatchet) SetSeasonFrom(v string) bool {
	return r.setString(idd.UtilityCostRatchetSeasonFrom, v)
}

func (r UtilityCostRatchet) SeasonTo() (string, bool) {
	return r.getOptionalString(idd.UtilityCostRatchetSeasonTo)
}

func (r UtilityCostRatchet) SetSeasonTo(v string) bool {
	return r.setString(idd.UtilityCostRatchetSeasonTo, v)
}

func (r UtilityCostRatchet) MultiplierValueOrVariableName() (string, bool) {
	return r.getOptionalString(idd.UtilityCostRatchetMultiplierValueOrVariableName)
}

func (r UtilityCostRatchet) SetMultiplierValueOrVariableName(v string) bool {
	return r.setString(idd.UtilityCostRatchetMultiplierValueOrVariableName, v)
}

func (r UtilityCostRatchet) OffsetValueOrVariableName() (string, bool) {
	return r.getOptionalString(idd.UtilityCostRatchetOffsetValueOrVariableName)
}

func (r UtilityCostRatchet) SetOffsetValueOrVariableName(v string) bool {
	return r.setString(idd.UtilityCostRatchetOffsetValueOrVariableName, v)
}

// Parent returns the tariff named by the ratchet.
func (r UtilityCostRatchet) Parent() (UtilityCostTariff, bool) {
	name, ok := r.TariffName()
	if !ok {
		return UtilityCostTariff{}, false
	}
	for _, t := range r.model.UtilityCostTariffs() {
		if strings.EqualFold(t.Name(), name) {
			return t, true
		}
	}
	return UtilityCostTariff{}, false
}

// SetParent moves the ratchet under tariff.
func (r UtilityCostRatchet) SetParent(tariff UtilityCostTariff) bool {
	if tariff.IsNil() || tariff.model != r.model {
		return false
	}
	return r.SetTariffName(tariff.Name())
}

// Children is always empty; ratchets have no children.
func (r UtilityCostRatchet) Children() []ModelObject { return nil }

func (r UtilityCostRatchet) AllowableChildTypes() []idd.ObjectType { return nil }

func (r UtilityCostRatchet) attributes() []Attribute {
	return append(r.ModelObject.attributes(),
		stringAttr("tariffName", r.TariffName, r.SetTariffName, nil),
		stringAttr("baselineSourceVariable", r.BaselineSourceVariable, r.SetBaselineSourceVariable, nil),
		stringAttr("adjustmentSourceVariable", r.AdjustmentSourceVariable, r.SetAdjustmentSourceVariable, nil),
		stringAttr("seasonFrom", r.SeasonFrom, r.SetSeasonFrom, nil),
		stringAttr("seasonTo", r.SeasonTo, r.SetSeasonTo, nil),
		stringAttr("multiplierValueOrVariableName", r.MultiplierValueOrVariableName, r.SetMultiplierValueOrVariableName, nil),
		stringAttr("offsetValueOrVariableName", r.OffsetValueOrVariableName, r.SetOffsetValueOrVariableName, nil),
	)
}
