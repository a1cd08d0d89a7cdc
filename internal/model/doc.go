// Package model provides typed, copyable views over workspace objects.
//
// Every wrapper (FanConstantVolume, OtherEquipment, UtilityCostRatchet, ...)
// embeds ModelObject, which is nothing more than a reference to the shared
// workspace object plus the owning Model. Copies of a wrapper therefore all
// observe the same underlying fields. Getters translate fields into Go types
// using the schema defaults, setters validate through the workspace and
// report failure as false rather than an error, matching how the inspectors
// consume them.
//
// Required references that turn out to be missing are repaired in place:
// a fan without an availability schedule is pointed at the model's
// "Always On Discrete" schedule on first read and a warning is logged.
package model
