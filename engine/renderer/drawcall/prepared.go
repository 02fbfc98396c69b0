package drawcall

// PreparedList is the batch-ready form of one (camera, layer, pass) draw list. The three
// slices are index-aligned and keep the incoming visibility order.
type PreparedList struct {
	Records          []*DrawCall
	IsNewMaterial    []bool
	LightMaskChanged []bool
}

// Reset empties the list, keeping its storage.
func (l *PreparedList) Reset() {
	l.Records = l.Records[:0]
	l.IsNewMaterial = l.IsNewMaterial[:0]
	l.LightMaskChanged = l.LightMaskChanged[:0]
}

// Append adds one annotated record.
func (l *PreparedList) Append(dc *DrawCall, isNewMaterial, lightMaskChanged bool) {
	l.Records = append(l.Records, dc)
	l.IsNewMaterial = append(l.IsNewMaterial, isNewMaterial)
	l.LightMaskChanged = append(l.LightMaskChanged, lightMaskChanged)
}

// Len returns the number of records.
func (l *PreparedList) Len() int {
	return len(l.Records)
}
