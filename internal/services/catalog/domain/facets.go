package domain

// Attribute field names as they appear under a session's attributes.
const (
	AttrTopics          = "topics"
	AttrServices        = "services"
	AttrIndustries      = "industries"
	AttrRoles           = "roles"
	AttrLevel           = "level"
	AttrSegments        = "segments"
	AttrAreasOfInterest = "areas_of_interest"
	AttrFeatures        = "features"
	AttrType            = "type"
)

// categoryFields maps public category keys to attribute field names.
var categoryFields = map[string]string{
	"topics":            AttrTopics,
	"services":          AttrServices,
	"industries":        AttrIndustries,
	"roles":             AttrRoles,
	"levels":            AttrLevel,
	"segments":          AttrSegments,
	"areas_of_interest": AttrAreasOfInterest,
	"features":          AttrFeatures,
	"types":             AttrType,
}

// CategoryKeys lists the recognized category keys in display order.
var CategoryKeys = []string{
	"topics",
	"services",
	"industries",
	"roles",
	"levels",
	"segments",
	"areas_of_interest",
	"features",
	"types",
}

// CategoryField resolves a category key to its attribute field.
func CategoryField(category string) (string, bool) {
	field, ok := categoryFields[category]
	return field, ok
}
