package idd

// Field indices. Index 0 is always the object handle.

// OS:Fan:ConstantVolume
const (
	FanConstantVolumeHandle = iota
	FanConstantVolumeName
	FanConstantVolumeAvailabilityScheduleName
	FanConstantVolumeFanEfficiency
	FanConstantVolumePressureRise
	FanConstantVolumeMaximumFlowRate
	FanConstantVolumeMotorEfficiency
	FanConstantVolumeMotorInAirstreamFraction
	FanConstantVolumeAirInletNodeName
	FanConstantVolumeAirOutletNodeName
	FanConstantVolumeEndUseSubcategory
)

// OS:OtherEquipment
const (
	OtherEquipmentHandle = iota
	OtherEquipmentName
	OtherEquipmentEquipmentDefinitionName
	OtherEquipmentSpaceName
	OtherEquipmentScheduleName
	OtherEquipmentMultiplier
	OtherEquipmentEndUseSubcategory
)

// OS:OtherEquipment:Definition
const (
	OtherEquipmentDefinitionHandle = iota
	OtherEquipmentDefinitionName
	OtherEquipmentDefinitionDesignLevelCalculationMethod
	OtherEquipmentDefinitionDesignLevel
	OtherEquipmentDefinitionPowerPerSpaceFloorArea
	OtherEquipmentDefinitionPowerPerPerson
	OtherEquipmentDefinitionFractionLatent
	OtherEquipmentDefinitionFractionRadiant
	OtherEquipmentDefinitionFractionLost
)

// OS:UtilityCost:Tariff
const (
	UtilityCostTariffHandle = iota
	UtilityCostTariffName
	UtilityCostTariffOutputMeterName
	UtilityCostTariffConversionFactorChoice
	UtilityCostTariffGroupName
)

// OS:UtilityCost:Ratchet
const (
	UtilityCostRatchetHandle = iota
	UtilityCostRatchetName
	UtilityCostRatchetTariffName
	UtilityCostRatchetBaselineSourceVariable
	UtilityCostRatchetAdjustmentSourceVariable
	UtilityCostRatchetSeasonFrom
	UtilityCostRatchetSeasonTo
	UtilityCostRatchetMultiplierValueOrVariableName
	UtilityCostRatchetOffsetValueOrVariableName
)

// OS:LightingSimulationControl
const (
	LightingSimulationControlHandle = iota
	LightingSimulationControlRunSimulationForDesignDays
	LightingSimulationControlRunSimulationForWeatherFileRunPeriods
)

// OS:Schedule:Constant
const (
	ScheduleConstantHandle = iota
	ScheduleConstantName
	ScheduleConstantScheduleTypeLimitsName
	ScheduleConstantValue
)

// OS:ScheduleTypeLimits
const (
	ScheduleTypeLimitsHandle = iota
	ScheduleTypeLimitsName
	ScheduleTypeLimitsLowerLimitValue
	ScheduleTypeLimitsUpperLimitValue
	ScheduleTypeLimitsNumericType
	ScheduleTypeLimitsUnitType
)

// OS:Space
const (
	SpaceHandle = iota
	SpaceName
	SpaceFloorArea
	SpaceNumberOfPeople
)

// OS:Glare:Sensor
const (
	GlareSensorHandle = iota
	GlareSensorName
	GlareSensorSpaceName
	GlareSensorPositionXCoordinate
	GlareSensorPositionYCoordinate
	GlareSensorPositionZCoordinate
	GlareSensorPsiRotationAroundXAxis
	GlareSensorThetaRotationAroundYAxis
	GlareSensorPhiRotationAroundZAxis
	GlareSensorNumberOfGlareViewVectors
	GlareSensorMaximumAllowableDaylightGlareIndex
)

// OS:ZoneHVAC:EquipmentList
const (
	ZoneHVACEquipmentListHandle = iota
	ZoneHVACEquipmentListName
)

// OS:ZoneHVAC:EquipmentList extensible group
const (
	ZoneHVACEquipmentListZoneEquipment = iota
	ZoneHVACEquipmentListZoneEquipmentCoolingSequence
	ZoneHVACEquipmentListZoneEquipmentHeatingOrNoLoadSequence
)

// Fan containers share one layout: handle, name, availability schedule,
// supply air fan.
const (
	FanContainerHandle = iota
	FanContainerName
	FanContainerAvailabilityScheduleName
	FanContainerSupplyAirFanName
)
