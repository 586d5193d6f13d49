package domain

// levelLabels maps short level codes to the display labels stored on sessions.
var levelLabels = map[string]string{
	"100": "100 – Foundational",
	"200": "200 – Intermediate",
	"300": "300 – Advanced",
	"400": "400 – Expert",
	"500": "500 – Distinguished",
}

// LevelCodes lists the recognized level codes in ascending order.
var LevelCodes = []string{"100", "200", "300", "400", "500"}

// LevelLabel returns the display label for a level code.
func LevelLabel(code string) (string, bool) {
	label, ok := levelLabels[code]
	return label, ok
}
