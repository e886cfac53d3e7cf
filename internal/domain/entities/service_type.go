package entities

import "fmt"

// ServiceType identifies the decoration service a budget was requested for.

type ServiceType string

const (
	ServiceBalloonArch    ServiceType = "balloon_arch"
	ServiceFullDecoration ServiceType = "full_decoration"
	ServicePanel          ServiceType = "panel"
	ServicePicnic         ServiceType = "picnic"
	ServiceCustom         ServiceType = "custom"
)

var serviceTypeLabels = map[ServiceType]string{
	ServiceBalloonArch:    "Balloon Arch",
	ServiceFullDecoration: "Full Decoration",
	ServicePanel:          "Panel Decoration",
	ServicePicnic:         "Picnic Setup",
	ServiceCustom:         "Custom Service",
}

// ParseServiceType validates a raw service type value.
func ParseServiceType(raw string) (ServiceType, error) {
	if _, ok := serviceTypeLabels[ServiceType(raw)]; ok {
		return ServiceType(raw), nil
	}
	return "", fmt.Errorf("unknown service type %q", raw)
}

// Label returns the human-facing name used in calendar titles and messages.
// Unknown values fall back to the raw string so projections never render empty.
func (s ServiceType) Label() string {
	if l, ok := serviceTypeLabels[s]; ok {
		return l
	}
	return string(s)
}
