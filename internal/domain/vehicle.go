package domain

// ============================================================
// Vehicle identity
// ============================================================

// Plate is a validated Brazilian license plate (old or Mercosul layout).
// Values exist only through schema.ParsePlate.
type Plate string

// Renavam is a validated national vehicle registry number: 11 digits with
// an embedded weighted mod-11 check digit.
type Renavam string

// CompleteVehicle is the vehicle record attached to a debts lookup.
// Everything beyond plate and renavam depends on what the state's registry
// exposes, so those fields are optional.
type CompleteVehicle struct {
	Renavam         Renavam
	Plate           Plate
	Document        *string
	Owner           *string
	Model           *string
	Color           *string
	FabricationYear *int
	ModelYear       *int
	Chassis         *string
	VenalValue      *string
}

// SimpleVehicle is the record returned by a plate lookup.
type SimpleVehicle struct {
	Plate   Plate
	Renavam Renavam
	State   State
}
