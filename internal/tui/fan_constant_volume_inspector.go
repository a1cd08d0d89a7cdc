package tui

import (
	"go.uber.org/zap"

	"github.com/kingrea/openstudio/internal/binding"
	"github.com/kingrea/openstudio/internal/idd"
	"github.com/kingrea/openstudio/internal/model"
)

// FanConstantVolumeInspectorView edits the numeric fields of a constant
// volume fan. The maximum flow rate accepts "autosize".
type FanConstantVolumeInspectorView struct {
	*ModelObjectInspectorView
	schedule string
}

func NewFanConstantVolumeInspectorView(styles fieldStyles, logger *zap.Logger, isIP bool) *FanConstantVolumeInspectorView {
	v := &FanConstantVolumeInspectorView{
		ModelObjectInspectorView: newModelObjectInspectorView("Fan Constant Volume", styles, logger, isIP),
	}
	v.onSelectModelObject = v.selectFan
	v.onClearSelection = func() { v.schedule = "" }
	v.onUpdate = v.readSchedule
	return v
}

func (v *FanConstantVolumeInspectorView) selectFan(obj model.Object) {
	f, ok := obj.(model.FanConstantVolume)
	if !ok {
		v.logger.Warn("fan inspector given another type", zap.String("type", string(obj.IddObjectType())))
		return
	}
	v.bindName(f)
	v.readSchedule()

	v.addQuantity("Fan Efficiency", f.ModelObject, idd.FanConstantVolumeFanEfficiency, binding.DoubleCallbacks{
		Get: present(f.FanEfficiency),
		Set: f.SetFanEfficiency,
	})
	v.addQuantity("Pressure Rise", f.ModelObject, idd.FanConstantVolumePressureRise, binding.DoubleCallbacks{
		Get: present(f.PressureRise),
		Set: f.SetPressureRise,
	})
	v.addQuantity("Maximum Flow Rate", f.ModelObject, idd.FanConstantVolumeMaximumFlowRate, binding.DoubleCallbacks{
		Get:         f.MaximumFlowRate,
		Set:         f.SetMaximumFlowRate,
		Reset:       f.ResetMaximumFlowRate,
		Autosize:    f.AutosizeMaximumFlowRate,
		IsAutosized: f.IsMaximumFlowRateAutosized,
	})
	v.addQuantity("Motor Efficiency", f.ModelObject, idd.FanConstantVolumeMotorEfficiency, binding.DoubleCallbacks{
		Get: present(f.MotorEfficiency),
		Set: f.SetMotorEfficiency,
	})
	v.addQuantity("Motor In Airstream Fraction", f.ModelObject, idd.FanConstantVolumeMotorInAirstreamFraction, binding.DoubleCallbacks{
		Get: present(f.MotorInAirstreamFraction),
		Set: f.SetMotorInAirstreamFraction,
	})
	v.addText("End-Use Subcategory", f.ModelObject, binding.StringCallbacks{
		Get: present(f.EndUseSubcategory),
		Set: f.SetEndUseSubcategory,
	})
}

// readSchedule caches the availability schedule name. Reading it may repair
// a missing schedule, which itself is a change the view hears about.
func (v *FanConstantVolumeInspectorView) readSchedule() {
	obj, ok := v.Selected()
	if !ok {
		return
	}
	f, ok := obj.(model.FanConstantVolume)
	if !ok {
		return
	}
	v.schedule = f.AvailabilitySchedule().Name()
}

func (v *FanConstantVolumeInspectorView) View() string {
	out := v.ModelObjectInspectorView.View()
	if v.schedule == "" {
		return out
	}
	return out + "\n\n  " + v.styles.label.Render("Availability Schedule") + " " + statusStyle.Render(v.schedule)
}
