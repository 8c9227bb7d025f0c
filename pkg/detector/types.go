package detector

// Detection represents the result of dev-server detection
type Detection struct {
	Framework      string   `json:"framework"`
	Language       string   `json:"language"`
	Confidence     float64  `json:"confidence"`
	Signals        []string `json:"signals"`
	Command        string   `json:"command"`
	DetectedPort   int      `json:"detected_port,omitempty"`
	PackageManager string   `json:"package_manager,omitempty"`
}
