package catalog

// DocExt is the document extension recognized during traversal, matched
// case-insensitively.
const DocExt = ".fcstd"

// Family describes one export format family recognized next to a document:
// an ordered list of extension spellings and the icon shown for its link.
type Family struct {
	Name string   // display name, used in the link title
	Exts []string // recognized spellings, probed in order
	Icon string   // icon filename inside the thumbnail directory
}

// Families lists the sibling-export families in declared order. Card
// rendering probes each family's extensions in order and links the first
// sibling that exists, so a part with both part.stp and part.STEP gets a
// single STEP link.
var Families = []Family{
	{Name: "STEP", Exts: []string{".stp", ".step", ".STP", ".STEP"}, Icon: "icon-step.svg"},
	{Name: "BREP", Exts: []string{".brp", ".brep", ".BRP", ".BREP"}, Icon: "icon-brep.svg"},
	{Name: "STL", Exts: []string{".stl", ".STL"}, Icon: "icon-stl.svg"},
}
