package schema

// FieldClass classifies how a Map treats a field's presence.
type FieldClass uint8

const (
	// ClassRequired fields must be present in the input.
	ClassRequired FieldClass = iota
	// ClassOptional fields are validated only when present.
	ClassOptional
	// ClassDependent fields receive the whole input mapping instead of a single value.
	ClassDependent
)

func (c FieldClass) String() string {
	switch c {
	case ClassOptional:
		return "optional"
	case ClassDependent:
		return "dependent"
	default:
		return "required"
	}
}

// FieldKey names a field of a Map definition together with its class.
// Two keys denote the same field when their names are equal; the class is
// metadata used only for presence rules.
type FieldKey struct {
	Name  string
	Class FieldClass
}

// Required marks a field that must be present.
func Required(name string) FieldKey {
	return FieldKey{Name: name, Class: ClassRequired}
}

// Optional marks a field that is skipped when absent.
func Optional(name string) FieldKey {
	return FieldKey{Name: name, Class: ClassOptional}
}

// Dependent marks a field whose validator inspects the whole input mapping.
func Dependent(name string) FieldKey {
	return FieldKey{Name: name, Class: ClassDependent}
}

func (k FieldKey) String() string {
	return k.Name
}

// Equal compares field identity, ignoring the class.
func (k FieldKey) Equal(other FieldKey) bool {
	return k.Name == other.Name
}

func (k FieldKey) IsOptional() bool {
	return k.Class == ClassOptional
}

func (k FieldKey) IsDependent() bool {
	return k.Class == ClassDependent
}

// Fields is a Map definition: field keys to the validators applied to them.
type Fields map[FieldKey]Validator
