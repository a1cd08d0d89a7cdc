// Package idd describes the OpenStudio Input Data Dictionary objects the model
// layer understands: the object type identifiers, the per-type field index
// constants, and the field schemas the workspace validates values against.
//
// Field indices are contract constants. Typed wrappers in the model package
// must address fields only through the constants declared here so a schema
// change surfaces as a compile error rather than a silently shifted field.
package idd
