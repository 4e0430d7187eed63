package reflects

// Name returns the base type name of the given object, with pointers unwrapped.
// The subject must not be nil.
func Name(i interface{}) string {
	return BaseTypeOf(i).Name()
}
