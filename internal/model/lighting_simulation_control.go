package model

import "github.com/kingrea/openstudio/internal/idd"

// LightingSimulationControl selects which run periods the daylighting
// simulation covers. A model holds at most one; use
// Model.LightingSimulationControl to obtain it.
type LightingSimulationControl struct {
	ModelObject
}

func (l LightingSimulationControl) RunSimulationForDesignDays() bool {
	return l.getYesNo(idd.LightingSimulationControlRunSimulationForDesignDays)
}

func (l LightingSimulationControl) IsRunSimulationForDesignDaysDefaulted() bool {
	return l.IsEmpty(idd.LightingSimulationControlRunSimulationForDesignDays)
}

func (l LightingSimulationControl) SetRunSimulationForDesignDays(v bool) bool {
	return l.setYesNo(idd.LightingSimulationControlRunSimulationForDesignDays, v)
}

func (l LightingSimulationControl) ResetRunSimulationForDesignDays() {
	l.resetField(idd.LightingSimulationControlRunSimulationForDesignDays)
}

func (l LightingSimulationControl) RunSimulationForWeatherFileRunPeriods() bool {
	return l.getYesNo(idd.LightingSimulationControlRunSimulationForWeatherFileRunPeriods)
}

func (l LightingSimulationControl) IsRunSimulationForWeatherFileRunPeriodsDefaulted() bool {
	return l.IsEmpty(idd.LightingSimulationControlRunSimulationForWeatherFileRunPeriods)
}

func (l LightingSimulationControl) SetRunSimulationForWeatherFileRunPeriods(v bool) bool {
	return l.setYesNo(idd.LightingSimulationControlRunSimulationForWeatherFileRunPeriods, v)
}

func (l LightingSimulationControl) ResetRunSimulationForWeatherFileRunPeriods() {
	l.resetField(idd.LightingSimulationControlRunSimulationForWeatherFileRunPeriods)
}

func (l LightingSimulationControl) attributes() []Attribute {
	designDays := boolAttr("runSimulationForDesignDays", l.RunSimulationForDesignDays, l.SetRunSimulationForDesignDays)
	designDays.Reset = l.ResetRunSimulationForDesignDays
	weather := boolAttr("runSimulationForWeatherFileRunPeriods", l.RunSimulationForWeatherFileRunPeriods, l.SetRunSimulationForWeatherFileRunPeriods)
	weather.Reset = l.ResetRunSimulationForWeatherFileRunPeriods
	return append(l.ModelObject.attributes(),
		designDays,
		boolAttr("isRunSimulationForDesignDaysDefaulted", l.IsRunSimulationForDesignDaysDefaulted, nil),
		weather,
		boolAttr("isRunSimulationForWeatherFileRunPeriodsDefaulted", l.IsRunSimulationForWeatherFileRunPeriodsDefaulted, nil),
	)
}
