package components

// Body holds the physical properties of an entity.
type Body struct {
	Radius            float64 // collision circle
	Mass              float64
	LinearDamping     float64
	AffectedByGravity bool
	Category          Kind
	Contacts          KindSet // kinds this body reports contacts with
}
