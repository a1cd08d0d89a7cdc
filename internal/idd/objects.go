package idd

func handleField() Field { return Field{Name: "Handle", Kind: KindHandle} }

func nameField() Field { return Field{Name: "Name", Kind: KindAlpha, Required: true} }

func atLeast(v float64) *Bound { return &Bound{Value: v} }

func above(v float64) *Bound { return &Bound{Value: v, Exclusive: true} }

func atMost(v float64) *Bound { return &Bound{Value: v} }

var yesNo = []string{"Yes", "No"}

var scheduleRef = []ObjectType{ScheduleConstant}

// FanContainerTypes lists the assemblies that may own a constant volume fan
// as their supply air fan.
var FanContainerTypes = []ObjectType{
	AirLoopHVACUnitarySystem,
	AirLoopHVACUnitaryHeatCoolVAVChangeoverBypass,
	AirTerminalSingleDuctParallelPIUReheat,
	AirLoopHVACUnitaryHeatPumpAirToAir,
	ZoneHVACFourPipeFanCoil,
	ZoneHVACPackagedTerminalAirConditioner,
	ZoneHVACPackagedTerminalHeatPump,
	ZoneHVACUnitHeater,
}

// ZoneHVACTypes is the subset of FanContainerTypes that are zone equipment.
var ZoneHVACTypes = []ObjectType{
	ZoneHVACFourPipeFanCoil,
	ZoneHVACPackagedTerminalAirConditioner,
	ZoneHVACPackagedTerminalHeatPump,
	ZoneHVACUnitHeater,
}

func init() {
	register(&Schema{
		Type: FanConstantVolume,
		Fields: []Field{
			handleField(),
			nameField(),
			{Name: "Availability Schedule Name", Kind: KindObject, Required: true, References: scheduleRef},
			{Name: "Fan Efficiency", Kind: KindReal, Default: "0.7", Min: above(0), Max: atMost(1)},
			{Name: "Pressure Rise", Kind: KindReal, Default: "250", Units: "Pa"},
			{Name: "Maximum Flow Rate", Kind: KindReal, Autosizable: true, Min: atLeast(0), Units: "m^3/s", IPUnits: "ft^3/s"},
			{Name: "Motor Efficiency", Kind: KindReal, Default: "0.9", Min: above(0), Max: atMost(1)},
			{Name: "Motor In Airstream Fraction", Kind: KindReal, Default: "1.0", Min: atLeast(0), Max: atMost(1)},
			{Name: "Air Inlet Node Name", Kind: KindAlpha},
			{Name: "Air Outlet Node Name", Kind: KindAlpha},
			{Name: "End-Use Subcategory", Kind: KindAlpha, Default: "General"},
		},
	})

	register(&Schema{
		Type: OtherEquipment,
		Fields: []Field{
			handleField(),
			nameField(),
			{Name: "Other Equipment Definition Name", Kind: KindObject, Required: true, References: []ObjectType{OtherEquipmentDefinition}},
			{Name: "Space or SpaceType Name", Kind: KindObject, References: []ObjectType{Space}},
			{Name: "Schedule Name", Kind: KindObject, References: scheduleRef},
			{Name: "Multiplier", Kind: KindReal, Default: "1.0", Min: above(0)},
			{Name: "End-Use Subcategory", Kind: KindAlpha, Default: "General"},
		},
	})

	register(&Schema{
		Type: OtherEquipmentDefinition,
		Fields: []Field{
			handleField(),
			nameField(),
			{Name: "Design Level Calculation Method", Kind: KindChoice, Default: "EquipmentLevel", Choices: []string{"EquipmentLevel", "Watts/Area", "Watts/Person"}},
			{Name: "Design Level", Kind: KindReal, Units: "W"},
			{Name: "Power per Space Floor Area", Kind: KindReal, Min: atLeast(0), Units: "W/m^2"},
			{Name: "Power per Person", Kind: KindReal, Min: atLeast(0), Units: "W/person"},
			{Name: "Fraction Latent", Kind: KindReal, Default: "0", Min: atLeast(0), Max: atMost(1)},
			{Name: "Fraction Radiant", Kind: KindReal, Default: "0", Min: atLeast(0), Max: atMost(1)},
			{Name: "Fraction Lost", Kind: KindReal, Default: "0", Min: atLeast(0), Max: atMost(1)},
		},
	})

	register(&Schema{
		Type: UtilityCostTariff,
		Fields: []Field{
			handleField(),
			nameField(),
			{Name: "Output Meter Name", Kind: KindAlpha, Required: true},
			{Name: "Conversion Factor Choice", Kind: KindChoice, Choices: []string{"UserDefined", "kWh", "Therm", "MMBtu", "MJ", "kBtu", "MCF", "CCF"}},
			{Name: "Group Name", Kind: KindAlpha},
		},
	})

	seasons := []string{"Annual", "Summer", "Winter", "Spring", "Fall", "Monthly"}
	register(&Schema{
		Type: UtilityCostRatchet,
		Fields: []Field{
			handleField(),
			nameField(),
			{Name: "Tariff Name", Kind: KindAlpha, Required: true},
			{Name: "Baseline Source Variable", Kind: KindAlpha, Required: true},
			{Name: "Adjustment Source Variable", Kind: KindAlpha, Required: true},
			{Name: "Season From", Kind: KindChoice, Choices: seasons},
			{Name: "Season To", Kind: KindChoice, Choices: seasons},
			{Name: "Multiplier Value or Variable Name", Kind: KindAlpha},
			{Name: "Offset Value or Variable Name", Kind: KindAlpha},
		},
	})

	register(&Schema{
		Type:   LightingSimulationControl,
		Unique: true,
		Fields: []Field{
			handleField(),
			{Name: "Run Simulation for Design Days", Kind: KindChoice, Default: "Yes", Choices: yesNo},
			{Name: "Run Simulation for Weather File Run Periods", Kind: KindChoice, Default: "Yes", Choices: yesNo},
		},
	})

	register(&Schema{
		Type: ScheduleConstant,
		Fields: []Field{
			handleField(),
			nameField(),
			{Name: "Schedule Type Limits Name", Kind: KindObject, References: []ObjectType{ScheduleTypeLimits}},
			{Name: "Value", Kind: KindReal, Default: "0"},
		},
	})

	register(&Schema{
		Type: ScheduleTypeLimits,
		Fields: []Field{
			handleField(),
			nameField(),
			{Name: "Lower Limit Value", Kind: KindReal},
			{Name: "Upper Limit Value", Kind: KindReal},
			{Name: "Numeric Type", Kind: KindChoice, Choices: []string{"Continuous", "Discrete"}},
			{Name: "Unit Type", Kind: KindChoice, Default: "Dimensionless", Choices: []string{"Dimensionless", "Temperature", "Power", "Availability", "OnOff"}},
		},
	})

	register(&Schema{
		Type: Space,
		Fields: []Field{
			handleField(),
			nameField(),
			{Name: "Floor Area", Kind: KindReal, Default: "0", Min: atLeast(0), Units: "m^2", IPUnits: "ft^2"},
			{Name: "Number of People", Kind: KindReal, Default: "0", Min: atLeast(0), Units: "people", IPUnits: "people"},
		},
	})

	register(&Schema{
		Type: GlareSensor,
		Fields: []Field{
			handleField(),
			nameField(),
			{Name: "Space Name", Kind: KindObject, References: []ObjectType{Space}},
			{Name: "Position X-Coordinate", Kind: KindReal, Default: "0", Units: "m", IPUnits: "ft"},
			{Name: "Position Y-Coordinate", Kind: KindReal, Default: "0", Units: "m", IPUnits: "ft"},
			{Name: "Position Z-Coordinate", Kind: KindReal, Default: "0", Units: "m", IPUnits: "ft"},
			{Name: "Psi Rotation Around X-Axis", Kind: KindReal, Default: "0", Units: "deg", IPUnits: "deg"},
			{Name: "Theta Rotation Around Y-Axis", Kind: KindReal, Default: "0", Units: "deg", IPUnits: "deg"},
			{Name: "Phi Rotation Around Z-Axis", Kind: KindReal, Default: "0", Units: "deg", IPUnits: "deg"},
			{Name: "Number of Glare View Vectors", Kind: KindInteger, Default: "1", Min: atLeast(1), Max: atMost(4)},
			{Name: "Maximum Allowable Daylight Glare Index", Kind: KindReal, Default: "22", Min: atLeast(0)},
		},
	})

	register(&Schema{
		Type: ZoneHVACEquipmentList,
		Fields: []Field{
			handleField(),
			nameField(),
		},
		Extensible: []Field{
			{Name: "Zone Equipment", Kind: KindObject, Required: true, References: ZoneHVACTypes},
			{Name: "Zone Equipment Cooling Sequence", Kind: KindInteger, Min: atLeast(1)},
			{Name: "Zone Equipment Heating or No-Load Sequence", Kind: KindInteger, Min: atLeast(1)},
		},
	})

	for _, t := range FanContainerTypes {
		register(&Schema{
			Type: t,
			Fields: []Field{
				handleField(),
				nameField(),
				{Name: "Availability Schedule Name", Kind: KindObject, References: scheduleRef},
				{Name: "Supply Air Fan Name", Kind: KindObject, References: []ObjectType{FanConstantVolume}},
			},
		})
	}
}
