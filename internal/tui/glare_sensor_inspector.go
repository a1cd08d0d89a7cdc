package tui

import (
	"go.uber.org/zap"

	"github.com/kingrea/openstudio/internal/binding"
	"github.com/kingrea/openstudio/internal/idd"
	"github.com/kingrea/openstudio/internal/model"
)

// GlareSensorInspectorView lays out a glare sensor: name, position,
// rotations, number of view vectors and maximum glare index.
type GlareSensorInspectorView struct {
	*ModelObjectInspectorView
}

func NewGlareSensorInspectorView(styles fieldStyles, logger *zap.Logger, isIP bool) *GlareSensorInspectorView {
	v := &GlareSensorInspectorView{
		ModelObjectInspectorView: newModelObjectInspectorView("Glare Sensor", styles, logger, isIP),
	}
	v.onSelectModelObject = v.selectGlareSensor
	return v
}

func (v *GlareSensorInspectorView) selectGlareSensor(obj model.Object) {
	g, ok := obj.(model.GlareSensor)
	if !ok {
		v.logger.Warn("glare sensor inspector given another type", zap.String("type", string(obj.IddObjectType())))
		return
	}
	v.bindName(g)

	v.addQuantity("Position X-Coordinate", g.ModelObject, idd.GlareSensorPositionXCoordinate, binding.DoubleCallbacks{
		Get: present(g.PositionXCoordinate),
		Set: g.SetPositionXCoordinate,
	})
	v.addQuantity("Position Y-Coordinate", g.ModelObject, idd.GlareSensorPositionYCoordinate, binding.DoubleCallbacks{
		Get: present(g.PositionYCoordinate),
		Set: g.SetPositionYCoordinate,
	})
	v.addQuantity("Position Z-Coordinate", g.ModelObject, idd.GlareSensorPositionZCoordinate, binding.DoubleCallbacks{
		Get: present(g.PositionZCoordinate),
		Set: g.SetPositionZCoordinate,
	})
	v.addQuantity("Psi Rotation Around X-Axis", g.ModelObject, idd.GlareSensorPsiRotationAroundXAxis, binding.DoubleCallbacks{
		Get: present(g.PsiRotationAroundXAxis),
		Set: g.SetPsiRotationAroundXAxis,
	})
	v.addQuantity("Theta Rotation Around Y-Axis", g.ModelObject, idd.GlareSensorThetaRotationAroundYAxis, binding.DoubleCallbacks{
		Get: present(g.ThetaRotationAroundYAxis),
		Set: g.SetThetaRotationAroundYAxis,
	})
	v.addQuantity("Phi Rotation Around Z-Axis", g.ModelObject, idd.GlareSensorPhiRotationAroundZAxis, binding.DoubleCallbacks{
		Get: present(g.PhiRotationAroundZAxis),
		Set: g.SetPhiRotationAroundZAxis,
	})
	v.addAttributeInteger("Number of Glare View Vectors", g.ModelObject, "numberOfGlareViewVectors", binding.AttributeNames{
		IsDefaulted: "isNumberOfGlareViewVectorsDefaulted",
	})
	v.addQuantity("Maximum Allowable Glare Index", g.ModelObject, idd.GlareSensorMaximumAllowableDaylightGlareIndex, binding.DoubleCallbacks{
		Get:         g.MaximumAllowableDaylightGlareIndex,
		Set:         g.SetMaximumAllowableDaylightGlareIndex,
		Reset:       g.ResetMaximumAllowableDaylightGlareIndex,
		IsDefaulted: g.IsMaximumAllowableDaylightGlareIndexDefaulted,
	})
}
