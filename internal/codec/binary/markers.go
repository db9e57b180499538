package binary

// ObjectEndMarkerByte and ArrayEndMarkerByte are the single-byte compact field headers
// that terminate a nested STObject (type 14, field 1) and STArray (type 15, field 1)
// respectively. They are ordinary field headers, not a distinct wire construct, but
// every STObject/STArray decoder needs to recognize them before trying to resolve them
// as a real field.
const (
	ObjectEndMarkerByte byte = 0xE1
	ArrayEndMarkerByte  byte = 0xF1
)
